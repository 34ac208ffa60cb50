// Package overlay draws the frame-stats text in the corner of the viewer.
package overlay

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"wadview/internal/config"
	"wadview/internal/graphics"
	renderer "wadview/internal/graphics/renderer"
	"wadview/internal/profiling"
)

// StatsSource reports per-frame counters worth showing.
type StatsSource interface {
	Stats() (drawn, culled, vertices int)
}

// Overlay renders FPS, camera state and profiling buckets as text.
type Overlay struct {
	font   *graphics.FontRenderer
	source StatsSource

	frames       int
	currentFPS   int
	lastFPSCheck time.Time
}

// New creates the overlay. source may be nil.
func New(source StatsSource) *Overlay {
	return &Overlay{source: source, lastFPSCheck: time.Now()}
}

// Init bakes the font atlas. A missing font file disables the overlay
// instead of failing the viewer.
func (o *Overlay) Init() error {
	atlas, err := graphics.BuildFontAtlas(config.GetFontPath(), 18)
	if err != nil {
		log.Printf("overlay disabled: %v", err)
		return nil
	}
	o.font, err = graphics.NewFontRenderer(atlas)
	if err != nil {
		return err
	}
	return nil
}

// Render draws the overlay text.
func (o *Overlay) Render(ctx renderer.RenderContext) {
	o.frames++
	if time.Since(o.lastFPSCheck) >= time.Second {
		o.currentFPS = o.frames
		o.frames = 0
		o.lastFPSCheck = time.Now()
	}

	if o.font == nil || !config.GetShowOverlay() {
		return
	}

	pos := ctx.Camera.Position
	lines := []string{
		fmt.Sprintf("FPS: %d", o.currentFPS),
		fmt.Sprintf("Pos: %.1f %.1f %.1f  Yaw: %.0f  Pitch: %.0f", pos.X(), pos.Y(), pos.Z(), ctx.Camera.Yaw, ctx.Camera.Pitch),
	}
	if o.source != nil {
		drawn, culled, vertices := o.source.Stats()
		lines = append(lines, fmt.Sprintf("Subsectors: %d drawn, %d culled  Vertices: %d", drawn, culled, vertices))
	}
	lines = append(lines, profiling.TopLines(4)...)

	o.font.RenderLines(lines, 10, 24, 20, 1, mgl32.Vec3{1, 1, 1})
}

// SetViewport updates the text projection.
func (o *Overlay) SetViewport(width, height int) {
	if o.font != nil {
		o.font.SetViewport(width, height)
	}
}

// Dispose frees the font renderer's GL resources. The font is nil when the
// atlas failed to bake.
func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
}
