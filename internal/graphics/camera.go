package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"wadview/internal/pipeline"
)

// Camera is a free-fly camera in map space (x/y horizontal, z up). It owns
// both halves of the per-draw camera state: the view matrix derived from
// position and orientation, and the perspective projection.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees around z, 0 looks along +x
	Pitch    float32 // degrees, positive looks up

	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera creates a camera for the given viewport size.
func NewCamera(width, height int) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         75,
		NearPlane:   1,
		FarPlane:    4096,
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	cp := cos(pitch)
	return mgl32.Vec3{cp * cos(yaw), cp * sin(yaw), sin(pitch)}
}

// Right returns the unit vector to the camera's right, level with the
// horizon.
func (c *Camera) Right() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	return mgl32.Vec3{sin(yaw), -cos(yaw), 0}
}

// ViewMatrix builds the world-to-eye transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), mgl32.Vec3{0, 0, 1})
}

// ProjectionMatrix builds the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Transform returns the per-draw camera state handed to the vertex stage.
func (c *Camera) Transform() pipeline.CameraTransform {
	return pipeline.CameraTransform{
		View:       c.ViewMatrix(),
		Projection: c.ProjectionMatrix(),
	}
}
