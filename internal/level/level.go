// Package level holds the sector-map data model the mesher consumes:
// sectors, sidedefs, linedefs and the subsector polygons they are rendered
// from. Levels normally come out of the asset pipeline; this package only
// describes the in-memory form.
package level

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Linedef flags affecting texture pegging.
const (
	FlagUpperUnpegged = 0x0008
	FlagLowerUnpegged = 0x0010
)

// Sector is a floor/ceiling volume with a single light level. The light
// level's top four bits select the lightmap layer for all geometry in the
// sector.
type Sector struct {
	FloorHeight   float32
	CeilingHeight float32
	FloorFlat     string
	CeilingFlat   string
	LightLevel    uint16
}

// Sidedef describes one side of a linedef. Empty texture names mean the
// section is absent.
type Sidedef struct {
	TextureOffset mgl32.Vec2
	TopTexture    string
	BottomTexture string
	MiddleTexture string
	Sector        int
}

// Linedef joins two vertices and up to two sidedefs. A sidedef index of -1
// means that side is open.
type Linedef struct {
	Flags    uint16
	Sidedefs [2]int
}

// Seg is one edge of a subsector polygon. Linedef is -1 for implicit edges
// that close the polygon without map geometry behind them.
type Seg struct {
	Start   mgl32.Vec2
	End     mgl32.Vec2
	Linedef int
	Side    int
}

// Subsector is a convex polygon of segs lying in a single sector.
type Subsector struct {
	Sector int
	Segs   []Seg
}

// Level is a complete map.
type Level struct {
	Name       string
	Sectors    []Sector
	Sidedefs   []Sidedef
	Linedefs   []Linedef
	Subsectors []Subsector
}

// Validate checks cross-references so the mesher can index freely. Flat
// names must be present: unlike wall sections, a sector always has a floor
// and a ceiling.
func (l *Level) Validate() error {
	for i, s := range l.Sectors {
		if s.FloorFlat == "" {
			return fmt.Errorf("sector %d has no floor flat", i)
		}
		if s.CeilingFlat == "" {
			return fmt.Errorf("sector %d has no ceiling flat", i)
		}
	}
	for i, sd := range l.Sidedefs {
		if sd.Sector < 0 || sd.Sector >= len(l.Sectors) {
			return fmt.Errorf("sidedef %d references sector %d of %d", i, sd.Sector, len(l.Sectors))
		}
	}
	for i, ld := range l.Linedefs {
		for side, sd := range ld.Sidedefs {
			if sd != -1 && (sd < 0 || sd >= len(l.Sidedefs)) {
				return fmt.Errorf("linedef %d side %d references sidedef %d of %d", i, side, sd, len(l.Sidedefs))
			}
		}
	}
	for i, ss := range l.Subsectors {
		if ss.Sector < 0 || ss.Sector >= len(l.Sectors) {
			return fmt.Errorf("subsector %d references sector %d of %d", i, ss.Sector, len(l.Sectors))
		}
		if len(ss.Segs) < 3 {
			return fmt.Errorf("subsector %d has %d segs, need at least 3", i, len(ss.Segs))
		}
		for j, seg := range ss.Segs {
			if seg.Linedef != -1 && (seg.Linedef < 0 || seg.Linedef >= len(l.Linedefs)) {
				return fmt.Errorf("subsector %d seg %d references linedef %d of %d", i, j, seg.Linedef, len(l.Linedefs))
			}
		}
	}
	return nil
}

// TextureNames returns every texture and flat name the level references,
// deduplicated, in no particular order.
func (l *Level) TextureNames() []string {
	seen := make(map[string]struct{})
	add := func(name string) {
		if name != "" {
			seen[name] = struct{}{}
		}
	}
	for _, sd := range l.Sidedefs {
		add(sd.TopTexture)
		add(sd.BottomTexture)
		add(sd.MiddleTexture)
	}
	for _, s := range l.Sectors {
		add(s.FloorFlat)
		add(s.CeilingFlat)
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}
