package pipeline

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex attribute slots, as declared by the map vertex shader.
const (
	AttrPosition      = 0
	AttrTextureCoord  = 1
	AttrLightmapCoord = 2
)

// Varying output slots handed to the rasterizer.
const (
	OutTextureCoord  = 0
	OutLightmapCoord = 1
)

// Byte layout of one packed VertexInput: three tightly packed vec3 float32
// attributes, 36 bytes per vertex.
const (
	PositionOffset      = 0
	TextureCoordOffset  = 12
	LightmapCoordOffset = 24
	VertexStride        = 36
)

// CameraBlockSize is the byte size of the packed CameraTransform uniform
// block: two column-major mat4s, view first. mat4 needs no padding under
// std140, so the packed form matches the GLSL block exactly.
const CameraBlockSize = 128

// CameraBlockBinding is the uniform buffer binding point the host reserves
// for the camera block.
const CameraBlockBinding = 0

func putVec3(dst []byte, v mgl32.Vec3) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v[2]))
}

// PackVertices serializes vertices into the interleaved little-endian form
// the vertex buffer is uploaded in.
func PackVertices(vertices []VertexInput) []byte {
	buf := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		base := buf[i*VertexStride:]
		putVec3(base[PositionOffset:], v.Position)
		putVec3(base[TextureCoordOffset:], v.TextureCoord)
		putVec3(base[LightmapCoordOffset:], v.LightmapCoord)
	}
	return buf
}

// PackCamera serializes the camera block for upload to the uniform buffer.
// mgl32 matrices are already column-major, so elements go out in index order.
func PackCamera(camera CameraTransform) []byte {
	buf := make([]byte, CameraBlockSize)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(camera.View[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(camera.Projection[i]))
	}
	return buf
}
