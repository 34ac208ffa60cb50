package level

import "github.com/go-gl/mathgl/mgl32"

// Demo returns a small two-room map used when no level is supplied: a large
// bright room connected to a smaller, darker room through a two-sided
// opening with raised floor and lowered ceiling, so upper, lower and middle
// wall sections all occur.
func Demo() *Level {
	l := &Level{
		Name: "DEMO1",
		Sectors: []Sector{
			{FloorHeight: 0, CeilingHeight: 128, FloorFlat: "FLOOR4_8", CeilingFlat: "CEIL3_5", LightLevel: 224},
			{FloorHeight: 16, CeilingHeight: 112, FloorFlat: "FLAT14", CeilingFlat: "CEIL3_5", LightLevel: 144},
		},
		Sidedefs: []Sidedef{
			// 0: room A solid walls
			{MiddleTexture: "STARTAN3", Sector: 0},
			// 1: front of the opening, seen from room A
			{TopTexture: "STARTAN3", BottomTexture: "STEP1", Sector: 0},
			// 2: back of the opening, seen from room B
			{Sector: 1},
			// 3: room B solid walls
			{MiddleTexture: "TEKWALL1", Sector: 1, TextureOffset: mgl32.Vec2{16, 0}},
		},
		Linedefs: []Linedef{
			{Sidedefs: [2]int{0, -1}},                          // 0: room A perimeter
			{Sidedefs: [2]int{1, 2}, Flags: FlagLowerUnpegged}, // 1: opening
			{Sidedefs: [2]int{3, -1}},                          // 2: room B perimeter
		},
	}

	a := func(x, y float32) mgl32.Vec2 { return mgl32.Vec2{x, y} }

	// Room A: (0,0)-(256,256), counter-clockwise.
	roomA := []struct {
		start, end mgl32.Vec2
		linedef    int
	}{
		{a(0, 0), a(256, 0), 0},
		{a(256, 0), a(256, 64), 0},
		{a(256, 64), a(256, 192), 1},
		{a(256, 192), a(256, 256), 0},
		{a(256, 256), a(0, 256), 0},
		{a(0, 256), a(0, 0), 0},
	}
	// Room B: (256,64)-(512,192).
	roomB := []struct {
		start, end mgl32.Vec2
		linedef    int
	}{
		{a(256, 192), a(256, 64), 1},
		{a(256, 64), a(512, 64), 2},
		{a(512, 64), a(512, 192), 2},
		{a(512, 192), a(256, 192), 2},
	}

	ssA := Subsector{Sector: 0}
	for _, s := range roomA {
		side := 0
		ssA.Segs = append(ssA.Segs, Seg{Start: s.start, End: s.end, Linedef: s.linedef, Side: side})
	}
	ssB := Subsector{Sector: 1}
	for i, s := range roomB {
		side := 0
		if i == 0 {
			side = 1 // the opening's back side
		}
		ssB.Segs = append(ssB.Segs, Seg{Start: s.start, End: s.end, Linedef: s.linedef, Side: side})
	}
	l.Subsectors = []Subsector{ssA, ssB}

	return l
}
