// Package mapgeom draws the level geometry. It owns the GPU side of the
// vertex-stage contract: vertex attributes at slots 0/1/2, the camera
// uniform block at binding 0, and the map shader that performs the transform
// per vertex on the GPU.
package mapgeom

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"wadview/internal/graphics"
	renderer "wadview/internal/graphics/renderer"
	"wadview/internal/level"
	"wadview/internal/lightmap"
	"wadview/internal/mapmesh"
	"wadview/internal/pipeline"
	"wadview/internal/profiling"
)

// MapGeometry renders one level's walls and flats.
type MapGeometry struct {
	level *level.Level
	mesh  *mapmesh.Mesh

	shader     *graphics.Shader
	vao        uint32
	vbo        uint32
	cameraUBO  uint32
	diffuseTex uint32
	lightTex   uint32

	// per-frame counters read by the overlay
	drawnGroups  int
	culledGroups int
}

// New creates the renderable for a level. GL work happens in Init.
func New(l *level.Level) *MapGeometry {
	return &MapGeometry{level: l}
}

// Init builds the mesh, uploads it and wires the shader to the vertex-stage
// contract.
func (m *MapGeometry) Init() error {
	var err error
	m.shader, err = graphics.NewShader(
		filepath.Join(graphics.ShadersDir, "map", "map.vert"),
		filepath.Join(graphics.ShadersDir, "map", "map.frag"),
	)
	if err != nil {
		return err
	}

	var textures map[string]mapmesh.TextureInfo
	m.diffuseTex, textures = buildPlaceholderTextures(m.level.TextureNames())
	m.lightTex = uploadLightmaps()

	m.mesh, err = mapmesh.Build(m.level, textures)
	if err != nil {
		return err
	}

	packed := pipeline.PackVertices(m.mesh.Vertices)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(packed), gl.Ptr(packed), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(pipeline.AttrPosition)
	gl.VertexAttribPointer(pipeline.AttrPosition, 3, gl.FLOAT, false, pipeline.VertexStride, gl.PtrOffset(pipeline.PositionOffset))
	gl.EnableVertexAttribArray(pipeline.AttrTextureCoord)
	gl.VertexAttribPointer(pipeline.AttrTextureCoord, 3, gl.FLOAT, false, pipeline.VertexStride, gl.PtrOffset(pipeline.TextureCoordOffset))
	gl.EnableVertexAttribArray(pipeline.AttrLightmapCoord)
	gl.VertexAttribPointer(pipeline.AttrLightmapCoord, 3, gl.FLOAT, false, pipeline.VertexStride, gl.PtrOffset(pipeline.LightmapCoordOffset))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	// Camera uniform block, rewritten once per draw.
	gl.GenBuffers(1, &m.cameraUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, m.cameraUBO)
	gl.BufferData(gl.UNIFORM_BUFFER, pipeline.CameraBlockSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	if err := m.shader.BindUniformBlock("CameraTransform", pipeline.CameraBlockBinding); err != nil {
		return fmt.Errorf("map shader: %w", err)
	}

	m.shader.Use()
	m.shader.SetInt("diffuseTextures", 0)
	m.shader.SetInt("lightmapTextures", 1)

	return nil
}

// Render uploads the frame's camera block and draws every subsector group
// that intersects the frustum.
func (m *MapGeometry) Render(ctx renderer.RenderContext) {
	defer profiling.Track("mapgeom.Render")()

	// Sector geometry is drawn two-sided: flats wind opposite ways for
	// floors and ceilings.
	gl.Disable(gl.CULL_FACE)
	defer gl.Enable(gl.CULL_FACE)

	m.shader.Use()

	// One camera state per draw, shared by every vertex.
	block := pipeline.PackCamera(ctx.Transform)
	gl.BindBuffer(gl.UNIFORM_BUFFER, m.cameraUBO)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(block), gl.Ptr(block))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, pipeline.CameraBlockBinding, m.cameraUBO)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, m.diffuseTex)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, m.lightTex)

	planes := extractFrustumPlanes(ctx.Transform.Projection.Mul4(ctx.Transform.View))

	gl.BindVertexArray(m.vao)
	m.drawnGroups, m.culledGroups = 0, 0
	for _, g := range m.mesh.Groups {
		if !aabbInFrustum(g.Min, g.Max, planes) {
			m.culledGroups++
			continue
		}
		m.drawnGroups++
		first, count := m.groupVertexRange(g)
		gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	}
	gl.BindVertexArray(0)
}

// groupVertexRange returns the contiguous vertex range a group's faces
// occupy. Faces are emitted in order by the mesher, so the range is dense.
func (m *MapGeometry) groupVertexRange(g mapmesh.Group) (first, count int) {
	faces := m.mesh.Faces[g.FirstFace : g.FirstFace+g.FaceCount]
	if len(faces) == 0 {
		return 0, 0
	}
	first = faces[0].FirstVertex
	last := faces[len(faces)-1]
	return first, last.FirstVertex + last.VertexCount - first
}

// Stats reports the last frame's culling results.
func (m *MapGeometry) Stats() (drawn, culled, vertices int) {
	return m.drawnGroups, m.culledGroups, len(m.mesh.Vertices)
}

// SetViewport is a no-op; the camera owns the aspect ratio.
func (m *MapGeometry) SetViewport(width, height int) {}

// Dispose releases GL resources.
func (m *MapGeometry) Dispose() {
	if m.shader != nil {
		m.shader.Delete()
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.cameraUBO != 0 {
		gl.DeleteBuffers(1, &m.cameraUBO)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.diffuseTex != 0 {
		gl.DeleteTextures(1, &m.diffuseTex)
	}
	if m.lightTex != 0 {
		gl.DeleteTextures(1, &m.lightTex)
	}
}

// uploadLightmaps bakes the 16 light-level layers into a texture array.
func uploadLightmaps() uint32 {
	layers := lightmap.Build()
	pixels := lightmap.Pack(layers)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, texture)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, lightmap.LayerSize, lightmap.LayerSize, int32(len(layers)),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
	return texture
}
