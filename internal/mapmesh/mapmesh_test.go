package mapmesh

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"wadview/internal/level"
)

// triangleRoom is the smallest meshable level: one sector, three one-sided
// walls.
func triangleRoom() *level.Level {
	a := mgl32.Vec2{0, 0}
	b := mgl32.Vec2{64, 0}
	c := mgl32.Vec2{0, 64}
	return &level.Level{
		Name:     "TRI",
		Sectors:  []level.Sector{{FloorHeight: 0, CeilingHeight: 128, FloorFlat: "FLAT1", CeilingFlat: "FLAT1", LightLevel: 224}},
		Sidedefs: []level.Sidedef{{MiddleTexture: "WALL1", Sector: 0, TextureOffset: mgl32.Vec2{16, 8}}},
		Linedefs: []level.Linedef{{Sidedefs: [2]int{0, -1}}},
		Subsectors: []level.Subsector{{
			Sector: 0,
			Segs: []level.Seg{
				{Start: a, End: b, Linedef: 0},
				{Start: b, End: c, Linedef: 0},
				{Start: c, End: a, Linedef: 0},
			},
		}},
	}
}

func triangleTextures() map[string]TextureInfo {
	return map[string]TextureInfo{
		"WALL1": {Width: 64, Height: 128, Layer: 2},
		"FLAT1": {Width: 64, Height: 64, Layer: 0},
	}
}

func TestTriangleRoomVertexCount(t *testing.T) {
	m, err := Build(triangleRoom(), triangleTextures())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// 3 walls of 6 vertices, floor and ceiling fans of 3 each.
	if got, want := len(m.Vertices), 3*6+3+3; got != want {
		t.Fatalf("got %d vertices, want %d", got, want)
	}
	if got, want := len(m.Faces), 5; got != want {
		t.Fatalf("got %d faces, want %d", got, want)
	}
	if len(m.Groups) != 1 || m.Groups[0].FaceCount != 5 {
		t.Fatalf("got groups %+v, want one group of 5 faces", m.Groups)
	}
}

func TestWallUVsAndLightLayer(t *testing.T) {
	m, err := Build(triangleRoom(), triangleTextures())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// First face is the wall from (0,0) to (64,0): width 64, height 128,
	// sidedef offset (16,8), default lower pegging.
	wall := m.Vertices[m.Faces[0].FirstVertex : m.Faces[0].FirstVertex+6]

	first := wall[0] // h=0, v=0: bottom of the start vertex
	if first.Position != (mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("first vertex position: got %v", first.Position)
	}
	if want := (mgl32.Vec3{16.0 / 64.0, 8.0 / 128.0, 2}); first.TextureCoord != want {
		t.Fatalf("first vertex UV: got %v, want %v", first.TextureCoord, want)
	}

	top := wall[2] // h=1, v=1: top of the end vertex
	if top.Position != (mgl32.Vec3{64, 0, 128}) {
		t.Fatalf("top vertex position: got %v", top.Position)
	}
	// Lower-pegged default hangs the texture from the bottom edge: v factor -1.
	if want := (mgl32.Vec3{(16.0 + 64.0) / 64.0, (8.0 - 128.0) / 128.0, 2}); top.TextureCoord != want {
		t.Fatalf("top vertex UV: got %v, want %v", top.TextureCoord, want)
	}

	// Light level 224 selects lightmap layer 14 on every vertex.
	for i, v := range m.Vertices {
		if v.LightmapCoord != (mgl32.Vec3{0, 0, 14}) {
			t.Fatalf("vertex %d lightmap coord: got %v, want layer 14", i, v.LightmapCoord)
		}
	}
}

func TestFlatUVsFollowMapCoordinates(t *testing.T) {
	m, err := Build(triangleRoom(), triangleTextures())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// Fourth face is the floor fan.
	floor := m.Faces[3]
	for _, v := range m.Vertices[floor.FirstVertex : floor.FirstVertex+floor.VertexCount] {
		if v.Position.Z() != 0 {
			t.Fatalf("floor vertex not at floor height: %v", v.Position)
		}
		want := mgl32.Vec3{v.Position.X() / 64.0, v.Position.Y() / 64.0, 0}
		if v.TextureCoord != want {
			t.Fatalf("floor UV: got %v, want %v", v.TextureCoord, want)
		}
	}
}

func TestTwoSidedWallSections(t *testing.T) {
	l := level.Demo()
	textures := map[string]TextureInfo{}
	for i, name := range l.TextureNames() {
		textures[name] = TextureInfo{Width: 64, Height: 128, Layer: float32(i)}
	}
	m, err := Build(l, textures)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// The opening contributes a STARTAN3 upper section spanning the lowered
	// ceiling to the full ceiling, and a STEP1 lower section spanning the
	// floor step.
	var step, upper *Face
	for i := range m.Faces {
		switch m.Faces[i].Texture {
		case "STEP1":
			step = &m.Faces[i]
		}
	}
	if step == nil {
		t.Fatal("no lower wall section generated for the floor step")
	}
	lo, hi := spanZ(m, step)
	if lo != 0 || hi != 16 {
		t.Fatalf("lower section spans %v..%v, want 0..16", lo, hi)
	}

	// Upper section: the STARTAN3 face whose lowest z is the back ceiling.
	for i := range m.Faces {
		if m.Faces[i].Texture != "STARTAN3" {
			continue
		}
		if lo, hi := spanZ(m, &m.Faces[i]); lo == 112 && hi == 128 {
			upper = &m.Faces[i]
		}
	}
	if upper == nil {
		t.Fatal("no upper wall section generated for the lowered ceiling")
	}

	// The back side of the opening has no textures and must emit nothing.
	for _, f := range m.Faces {
		if f.Texture == "" {
			t.Fatalf("face with empty texture: %+v", f)
		}
	}
}

func TestGroupBoundsEncloseGeometry(t *testing.T) {
	l := level.Demo()
	textures := map[string]TextureInfo{}
	for _, name := range l.TextureNames() {
		textures[name] = TextureInfo{Width: 64, Height: 128}
	}
	m, err := Build(l, textures)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for gi, g := range m.Groups {
		for _, f := range m.Faces[g.FirstFace : g.FirstFace+g.FaceCount] {
			for _, v := range m.Vertices[f.FirstVertex : f.FirstVertex+f.VertexCount] {
				for i := 0; i < 3; i++ {
					if v.Position[i] < g.Min[i] || v.Position[i] > g.Max[i] {
						t.Fatalf("group %d bounds %v..%v exclude vertex %v", gi, g.Min, g.Max, v.Position)
					}
				}
			}
		}
	}
}

func TestBuildRejectsMissingTexture(t *testing.T) {
	textures := triangleTextures()
	delete(textures, "WALL1")
	_, err := Build(triangleRoom(), textures)
	if err == nil || !strings.Contains(err.Error(), "WALL1") {
		t.Fatalf("expected missing-texture error naming WALL1, got %v", err)
	}
}

// An empty flat name would otherwise reach pushFlat with a zero-value
// TextureInfo and divide by zero in the UV math.
func TestBuildRejectsEmptyFlatName(t *testing.T) {
	l := triangleRoom()
	l.Sectors[0].FloorFlat = ""
	if _, err := Build(l, triangleTextures()); err == nil {
		t.Fatal("expected error for sector without a floor flat")
	}
}

func spanZ(m *Mesh, f *Face) (lo, hi float32) {
	lo, hi = m.Vertices[f.FirstVertex].Position.Z(), m.Vertices[f.FirstVertex].Position.Z()
	for _, v := range m.Vertices[f.FirstVertex : f.FirstVertex+f.VertexCount] {
		z := v.Position.Z()
		if z < lo {
			lo = z
		}
		if z > hi {
			hi = z
		}
	}
	return lo, hi
}

func BenchmarkBuildDemoLevel(b *testing.B) {
	l := level.Demo()
	textures := map[string]TextureInfo{}
	for _, name := range l.TextureNames() {
		textures[name] = TextureInfo{Width: 64, Height: 128}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Build(l, textures); err != nil {
			b.Fatal(err)
		}
	}
}
