// Package pipeline implements the vertex stage of the map renderer: the
// camera transform applied to every vertex of a draw, plus the wire layout
// that the GPU host path binds (attribute slots, vertex packing, camera
// uniform block).
package pipeline

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraTransform is the per-draw camera state. The host supplies it once per
// draw and it is shared read-only by every vertex invocation of that draw.
// Matrices follow mgl32's column-major, M*v convention, so clip positions
// come out as projection * view * position.
type CameraTransform struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// VertexInput is one mesh vertex as stored in the vertex buffer: an
// object-space position and two independent UV sets. The third UV component
// selects the array layer of the diffuse texture or lightmap.
type VertexInput struct {
	Position      mgl32.Vec3
	TextureCoord  mgl32.Vec3
	LightmapCoord mgl32.Vec3
}

// VertexOutput is what the rasterizer receives: a clip-space position and
// the two UV sets, which are interpolated across the primitive.
type VertexOutput struct {
	ClipPos       mgl32.Vec4
	TextureCoord  mgl32.Vec3
	LightmapCoord mgl32.Vec3
}

// TransformVertex maps one vertex into clip space. The position is
// homogenized with w=1 and multiplied by view first, projection second;
// swapping that order renders garbage without failing, so it is pinned down
// by tests. Both UV sets pass through untouched.
//
// The function is total: it never validates its inputs. NaN or Inf positions
// and degenerate matrices propagate through the arithmetic into the output,
// as the rest of the pipeline expects.
func TransformVertex(in VertexInput, camera CameraTransform) VertexOutput {
	return VertexOutput{
		ClipPos:       camera.Projection.Mul4(camera.View).Mul4x1(in.Position.Vec4(1)),
		TextureCoord:  in.TextureCoord,
		LightmapCoord: in.LightmapCoord,
	}
}
