// Package mapmesh turns a level's sectors and sidedefs into the vertex
// stream the map renderer draws: wall quads and flat triangle fans carrying a
// diffuse UV and a lightmap UV per vertex. Coordinates follow the map
// convention, x/y horizontal and z up.
package mapmesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"wadview/internal/level"
	"wadview/internal/pipeline"
)

// TextureInfo is what the mesher needs to know about a texture: its pixel
// size (wall and flat UVs are expressed in texels) and the array layer it
// was packed into.
type TextureInfo struct {
	Width  float32
	Height float32
	Layer  float32
}

// Face is a run of vertices drawn with one texture.
type Face struct {
	FirstVertex int
	VertexCount int
	Texture     string
}

// Group is the face range produced from one subsector, with its bounds for
// culling.
type Group struct {
	FirstFace int
	FaceCount int
	Min       mgl32.Vec3
	Max       mgl32.Vec3
}

// Mesh is the complete geometry of a level, ready for packing and upload.
type Mesh struct {
	Vertices []pipeline.VertexInput
	Faces    []Face
	Groups   []Group
}

// Build meshes every subsector of the level. All referenced textures must be
// present in textures.
func Build(l *level.Level, textures map[string]TextureInfo) (*Mesh, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("mesh build: %w", err)
	}
	for _, name := range l.TextureNames() {
		if _, ok := textures[name]; !ok {
			return nil, fmt.Errorf("mesh build: no texture info for %q", name)
		}
	}

	b := &builder{level: l, textures: textures}
	for i := range l.Subsectors {
		b.meshSubsector(&l.Subsectors[i])
	}
	return &b.mesh, nil
}

type builder struct {
	level    *level.Level
	textures map[string]TextureInfo
	mesh     Mesh
}

func (b *builder) meshSubsector(ss *level.Subsector) {
	sector := &b.level.Sectors[ss.Sector]
	lightLayer := float32(sector.LightLevel >> 4)
	firstFace := len(b.mesh.Faces)

	for _, seg := range ss.Segs {
		if seg.Linedef == -1 {
			continue
		}
		b.meshSeg(seg, sector, lightLayer)
	}

	// Floor fan winds against seg order so it faces up.
	floorVerts := make([]mgl32.Vec2, len(ss.Segs))
	ceilVerts := make([]mgl32.Vec2, len(ss.Segs))
	for i, seg := range ss.Segs {
		ceilVerts[i] = seg.Start
		floorVerts[len(ss.Segs)-1-i] = seg.Start
	}
	b.pushFlat(floorVerts, sector.FloorHeight, sector.FloorFlat, lightLayer)
	b.pushFlat(ceilVerts, sector.CeilingHeight, sector.CeilingFlat, lightLayer)

	b.mesh.Groups = append(b.mesh.Groups, Group{
		FirstFace: firstFace,
		FaceCount: len(b.mesh.Faces) - firstFace,
		Min:       groupMin(b.mesh.Vertices, b.mesh.Faces[firstFace:]),
		Max:       groupMax(b.mesh.Vertices, b.mesh.Faces[firstFace:]),
	})
}

func (b *builder) meshSeg(seg level.Seg, frontSector *level.Sector, lightLayer float32) {
	linedef := &b.level.Linedefs[seg.Linedef]
	frontIndex := linedef.Sidedefs[seg.Side]
	if frontIndex == -1 {
		return
	}
	front := &b.level.Sidedefs[frontIndex]

	topPeg := [2]float32{1, 0}
	if linedef.Flags&level.FlagUpperUnpegged != 0 {
		topPeg = [2]float32{0, -1}
	}
	bottomPeg := [2]float32{0, -1}
	if linedef.Flags&level.FlagLowerUnpegged != 0 {
		bottomPeg = [2]float32{1, 0}
	}

	backIndex := linedef.Sidedefs[1-seg.Side]
	if backIndex == -1 {
		// One-sided wall: a single middle section spanning the sector.
		if front.MiddleTexture != "" {
			b.pushWall(seg, front, front.MiddleTexture,
				[2]float32{frontSector.FloorHeight, frontSector.CeilingHeight}, bottomPeg, lightLayer)
		}
		return
	}

	backSector := &b.level.Sectors[b.level.Sidedefs[backIndex].Sector]
	spans := [4]float32{
		frontSector.FloorHeight,
		max32(backSector.FloorHeight, frontSector.FloorHeight),
		min32(frontSector.CeilingHeight, backSector.CeilingHeight),
		frontSector.CeilingHeight,
	}

	if front.TopTexture != "" {
		b.pushWall(seg, front, front.TopTexture, [2]float32{spans[2], spans[3]}, topPeg, lightLayer)
	}
	if front.BottomTexture != "" {
		b.pushWall(seg, front, front.BottomTexture, [2]float32{spans[0], spans[1]}, bottomPeg, lightLayer)
	}
	if front.MiddleTexture != "" {
		b.pushWall(seg, front, front.MiddleTexture, [2]float32{spans[1], spans[2]}, bottomPeg, lightLayer)
	}
}

// pushWall emits one wall section as two triangles. Diffuse UVs are in
// texels relative to the texture size, offset by the sidedef offset; the
// vertical origin depends on the peg factor. The lightmap UV only selects a
// layer.
func (b *builder) pushWall(seg level.Seg, side *level.Sidedef, texture string, span [2]float32, peg [2]float32, lightLayer float32) {
	tex := b.textures[texture]
	b.mesh.Faces = append(b.mesh.Faces, Face{
		FirstVertex: len(b.mesh.Vertices),
		VertexCount: 6,
		Texture:     texture,
	})

	ends := [2]mgl32.Vec2{seg.Start, seg.End}
	width := seg.End.Sub(seg.Start).Len()
	height := span[1] - span[0]

	for _, hv := range [6][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 1}, {0, 1}, {0, 0}} {
		h, v := hv[0], hv[1]
		b.mesh.Vertices = append(b.mesh.Vertices, pipeline.VertexInput{
			Position: mgl32.Vec3{ends[h][0], ends[h][1], span[v]},
			TextureCoord: mgl32.Vec3{
				(side.TextureOffset[0] + width*float32(h)) / tex.Width,
				(side.TextureOffset[1] + height*peg[v]) / tex.Height,
				tex.Layer,
			},
			LightmapCoord: mgl32.Vec3{0, 0, lightLayer},
		})
	}
}

// pushFlat emits a horizontal polygon as a triangle fan anchored at the
// first vertex. Flat UVs are the map coordinates over the texture size.
func (b *builder) pushFlat(poly []mgl32.Vec2, z float32, texture string, lightLayer float32) {
	tex := b.textures[texture]
	b.mesh.Faces = append(b.mesh.Faces, Face{
		FirstVertex: len(b.mesh.Vertices),
		VertexCount: (len(poly) - 2) * 3,
		Texture:     texture,
	})

	first := poly[0]
	previous := poly[1]
	for _, vert := range poly[2:] {
		for _, p := range [3]mgl32.Vec2{first, previous, vert} {
			b.mesh.Vertices = append(b.mesh.Vertices, pipeline.VertexInput{
				Position:      mgl32.Vec3{p[0], p[1], z},
				TextureCoord:  mgl32.Vec3{p[0] / tex.Width, p[1] / tex.Height, tex.Layer},
				LightmapCoord: mgl32.Vec3{0, 0, lightLayer},
			})
		}
		previous = vert
	}
}

func groupMin(vertices []pipeline.VertexInput, faces []Face) mgl32.Vec3 {
	m := mgl32.Vec3{mgl32.MaxValue, mgl32.MaxValue, mgl32.MaxValue}
	for _, f := range faces {
		for _, v := range vertices[f.FirstVertex : f.FirstVertex+f.VertexCount] {
			for i := 0; i < 3; i++ {
				if v.Position[i] < m[i] {
					m[i] = v.Position[i]
				}
			}
		}
	}
	return m
}

func groupMax(vertices []pipeline.VertexInput, faces []Face) mgl32.Vec3 {
	m := mgl32.Vec3{-mgl32.MaxValue, -mgl32.MaxValue, -mgl32.MaxValue}
	for _, f := range faces {
		for _, v := range vertices[f.FirstVertex : f.FirstVertex+f.VertexCount] {
			for i := 0; i < 3; i++ {
				if v.Position[i] > m[i] {
					m[i] = v.Position[i]
				}
			}
		}
	}
	return m
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
