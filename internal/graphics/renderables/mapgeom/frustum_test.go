package mapgeom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testClip() mgl32.Mat4 {
	// Camera at origin looking along +x, z up.
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1})
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1, 1, 1000)
	return proj.Mul4(view)
}

func TestBoxInFrontIsVisible(t *testing.T) {
	planes := extractFrustumPlanes(testClip())
	if !aabbInFrustum(mgl32.Vec3{10, -5, -5}, mgl32.Vec3{20, 5, 5}, planes) {
		t.Fatal("box directly in front of camera culled")
	}
}

func TestBoxBehindIsCulled(t *testing.T) {
	planes := extractFrustumPlanes(testClip())
	if aabbInFrustum(mgl32.Vec3{-20, -5, -5}, mgl32.Vec3{-10, 5, 5}, planes) {
		t.Fatal("box behind camera not culled")
	}
}

func TestBoxBeyondFarPlaneIsCulled(t *testing.T) {
	planes := extractFrustumPlanes(testClip())
	if aabbInFrustum(mgl32.Vec3{2000, -5, -5}, mgl32.Vec3{2010, 5, 5}, planes) {
		t.Fatal("box beyond far plane not culled")
	}
}

func TestBoxStraddlingPlaneIsVisible(t *testing.T) {
	planes := extractFrustumPlanes(testClip())
	// Straddles the near plane.
	if !aabbInFrustum(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{3, 1, 1}, planes) {
		t.Fatal("box straddling the near plane culled")
	}
}
