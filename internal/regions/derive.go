package regions

import (
	"slices"

	"github.com/Garsondee/Resonant/internal/draw"
)

// Settings is the per-frame slice of configuration that shapes the sectors.
type Settings struct {
	Flank         FlankMode
	FrontSeparate bool
	RearSeparate  bool

	FrontBrush draw.Brush
	FlankBrush draw.Brush
	RearBrush  draw.Brush

	// ShowAbilityRange adds an outer band per sector drawn with
	// AbilityThickness.
	ShowAbilityRange bool
	AbilityThickness float32
}

// Zone names which side of the actor a sector covers.
type Zone int

const (
	ZoneFront Zone = iota
	ZoneFlank
	ZoneRear
)

var zoneNames = [...]string{"front", "flank", "rear"}

func (z Zone) String() string {
	if z < 0 || int(z) >= len(zoneNames) {
		return "unknown"
	}
	return zoneNames[z]
}

// Sector pairs an angular sector with the brush of its zone.
type Sector struct {
	Positional Positional
	Brush      draw.Brush
	Zone       Zone
}

// Pair is a region ready to draw. Ability marks the outer ability band.
type Pair struct {
	Region  Region
	Brush   draw.Brush
	Zone    Zone
	Ability bool
}

type frontKey struct {
	wide     bool
	separate bool
}

// frontTable is keyed by whether the flanks leave the wide front exposed
// (rear-only flanks) and whether the front is split down the middle.
var frontTable = map[frontKey][]Positional{
	{wide: true, separate: false}:  {Front180},
	{wide: true, separate: true}:   {FrontLeft90, FrontRight90},
	{wide: false, separate: false}: {Front90},
	{wide: false, separate: true}:  {FrontLeft45, FrontRight45},
}

var rearTable = map[bool][]Positional{
	false: {Rear},
	true:  {RearLeft, RearRight},
}

// FrontSectors returns the front sectors for s.
func FrontSectors(s Settings) []Positional {
	return slices.Clone(frontTable[frontKey{wide: s.Flank == FlankRearOnly, separate: s.FrontSeparate}])
}

// FlankSectors returns the flank sectors for s.
func FlankSectors(s Settings) []Positional {
	if info, ok := flankTable[s.Flank]; ok {
		return slices.Clone(info.sectors)
	}
	return slices.Clone(flankTable[FlankRearOnly].sectors)
}

// RearSectors returns the rear sectors for s.
func RearSectors(s Settings) []Positional {
	return slices.Clone(rearTable[s.RearSeparate])
}

// Positionals returns every sector paired with its zone brush, front first,
// then flank, then rear.
func Positionals(s Settings) []Sector {
	front, flank, rear := FrontSectors(s), FlankSectors(s), RearSectors(s)
	out := make([]Sector, 0, len(front)+len(flank)+len(rear))
	for _, p := range front {
		out = append(out, Sector{p, s.FrontBrush, ZoneFront})
	}
	for _, p := range flank {
		out = append(out, Sector{p, s.FlankBrush, ZoneFlank})
	}
	for _, p := range rear {
		out = append(out, Sector{p, s.RearBrush, ZoneRear})
	}
	return out
}

// FromSettings expands every sector into a melee band [0, melee] and, when
// enabled, an ability band [melee, ability] with the thinner ability stroke.
// Order follows Positionals with the melee band before the ability band.
func FromSettings(s Settings, melee, ability float64) []Pair {
	sectors := Positionals(s)
	n := len(sectors)
	if s.ShowAbilityRange {
		n *= 2
	}
	out := make([]Pair, 0, n)
	for _, sec := range sectors {
		out = append(out, Pair{
			Region: Region{sec.Positional, 0, melee},
			Brush:  sec.Brush,
			Zone:   sec.Zone,
		})
		if s.ShowAbilityRange {
			out = append(out, Pair{
				Region:  Region{sec.Positional, melee, ability},
				Brush:   draw.WithThickness(sec.Brush, s.AbilityThickness),
				Zone:    sec.Zone,
				Ability: true,
			})
		}
	}
	return out
}
