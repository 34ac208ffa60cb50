package mapgeom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type plane struct {
	a, b, c, d float32
}

// extractFrustumPlanes builds the six clip planes from the combined
// projection*view matrix. Order: left, right, bottom, top, near, far.
func extractFrustumPlanes(clip mgl32.Mat4) [6]plane {
	// mgl32 stores column-major: element (row, col) is clip[col*4+row].
	row := func(r int) [4]float32 {
		return [4]float32{clip[r], clip[4+r], clip[8+r], clip[12+r]}
	}
	m0, m1, m2, m3 := row(0), row(1), row(2), row(3)

	var pl [6]plane
	pl[0] = normalizePlane(plane{m3[0] + m0[0], m3[1] + m0[1], m3[2] + m0[2], m3[3] + m0[3]})
	pl[1] = normalizePlane(plane{m3[0] - m0[0], m3[1] - m0[1], m3[2] - m0[2], m3[3] - m0[3]})
	pl[2] = normalizePlane(plane{m3[0] + m1[0], m3[1] + m1[1], m3[2] + m1[2], m3[3] + m1[3]})
	pl[3] = normalizePlane(plane{m3[0] - m1[0], m3[1] - m1[1], m3[2] - m1[2], m3[3] - m1[3]})
	pl[4] = normalizePlane(plane{m3[0] + m2[0], m3[1] + m2[1], m3[2] + m2[2], m3[3] + m2[3]})
	pl[5] = normalizePlane(plane{m3[0] - m2[0], m3[1] - m2[1], m3[2] - m2[2], m3[3] - m2[3]})
	return pl
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// aabbInFrustum tests a bounding box against the planes using the positive
// vertex for each plane's normal.
func aabbInFrustum(min, max mgl32.Vec3, planes [6]plane) bool {
	for _, p := range planes {
		px, py, pz := max.X(), max.Y(), max.Z()
		if p.a < 0 {
			px = min.X()
		}
		if p.b < 0 {
			py = min.Y()
		}
		if p.c < 0 {
			pz = min.Z()
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
