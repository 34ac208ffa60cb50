package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"wadview/internal/config"
	"wadview/internal/graphics"
	"wadview/internal/profiling"
)

// Renderer owns the camera and drives the renderables each frame.
type Renderer struct {
	camera      *graphics.Camera
	renderables []Renderable
}

// New configures GL state, creates the camera and initializes all
// renderables in order.
func New(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	camera := graphics.NewCamera(width, height)
	camera.FOV = config.GetFOV()
	camera.FarPlane = config.GetCullDistance()

	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, fmt.Errorf("init renderable %T: %w", r, err)
		}
	}

	return &Renderer{camera: camera, renderables: rs}, nil
}

// Camera returns the camera driven by input handling.
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// Render draws one frame. The camera transform is snapshotted once here so
// every renderable sees the same view and projection.
func (r *Renderer) Render(dt float64) {
	gl.ClearColor(0.05, 0.05, 0.08, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.camera.FOV = config.GetFOV()

	ctx := RenderContext{
		Camera:    r.camera,
		Transform: r.camera.Transform(),
		DT:        dt,
	}

	for _, renderable := range r.renderables {
		func() {
			defer profiling.Track(fmt.Sprintf("render.%T", renderable))()
			renderable.Render(ctx)
		}()
	}
}

// SetViewport propagates a window resize. Dimensions are in window
// coordinates; the GL viewport is owned by the framebuffer-size callback,
// which has the pixel dimensions (they differ on HiDPI displays).
func (r *Renderer) SetViewport(width, height int) {
	r.camera.AspectRatio = float32(width) / float32(height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose releases all renderables' GL resources.
func (r *Renderer) Dispose() {
	for _, renderable := range r.renderables {
		renderable.Dispose()
	}
}
