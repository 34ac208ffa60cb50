package renderer

import (
	"testing"

	"wadview/internal/graphics"
)

type viewportRecorder struct {
	width  int
	height int
}

func (v *viewportRecorder) Init() error              { return nil }
func (v *viewportRecorder) Render(ctx RenderContext) {}
func (v *viewportRecorder) Dispose()                 {}
func (v *viewportRecorder) SetViewport(w, h int)     { v.width, v.height = w, h }

// The framebuffer-size callback owns gl.Viewport; a resize reaching the
// renderer must only touch the camera and the renderables, or HiDPI
// displays end up with a viewport in window coordinates.
func TestSetViewportUpdatesCameraAndRenderables(t *testing.T) {
	rec := &viewportRecorder{}
	r := &Renderer{
		camera:      graphics.NewCamera(1280, 800),
		renderables: []Renderable{rec},
	}

	r.SetViewport(1600, 900)

	if got, want := r.camera.AspectRatio, float32(1600)/float32(900); got != want {
		t.Fatalf("aspect ratio = %v, want %v", got, want)
	}
	if rec.width != 1600 || rec.height != 900 {
		t.Fatalf("renderable got %dx%d, want 1600x900", rec.width, rec.height)
	}
}
