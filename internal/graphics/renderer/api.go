package renderer

import (
	"wadview/internal/graphics"
	"wadview/internal/pipeline"
)

// RenderContext carries the per-frame state shared by all renderables. The
// camera transform is computed once per frame and is immutable for its
// duration; every draw in the frame observes the same matrices.
type RenderContext struct {
	Camera    *graphics.Camera
	Transform pipeline.CameraTransform
	DT        float64
}

// Renderable is one drawable feature with GL resource lifecycle.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
