package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewMatrixCentersCamera(t *testing.T) {
	c := NewCamera(1280, 800)
	c.Position = mgl32.Vec3{128, -64, 48}
	c.Yaw = 30
	c.Pitch = -10

	eye := c.ViewMatrix().Mul4x1(c.Position.Vec4(1))
	for i := 0; i < 3; i++ {
		if eye[i] > 1e-4 || eye[i] < -1e-4 {
			t.Fatalf("camera position does not map to eye origin: %v", eye)
		}
	}
}

func TestForwardIsUnitAndRespectsYaw(t *testing.T) {
	c := NewCamera(1280, 800)
	c.Yaw = 90
	c.Pitch = 0

	f := c.Forward()
	if d := f.Len() - 1; d > 1e-5 || d < -1e-5 {
		t.Fatalf("forward not unit length: %v", f)
	}
	// Yaw 90 looks along +y.
	if f.Y() < 0.999 {
		t.Fatalf("yaw 90 forward: got %v, want +y", f)
	}

	r := c.Right()
	if dot := f.Dot(r); dot > 1e-5 || dot < -1e-5 {
		t.Fatalf("right not perpendicular to forward: dot %v", dot)
	}
}

func TestTransformMatchesMatrices(t *testing.T) {
	c := NewCamera(1280, 800)
	c.Position = mgl32.Vec3{10, 20, 30}
	c.Yaw = 45

	tr := c.Transform()
	if tr.View != c.ViewMatrix() || tr.Projection != c.ProjectionMatrix() {
		t.Fatal("Transform disagrees with ViewMatrix/ProjectionMatrix")
	}
}
