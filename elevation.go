package material

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// OpacityBreakpoint maps an elevation to a surface-tint opacity.
type OpacityBreakpoint struct {
	Elevation float64
	Opacity   float64
}

// OpacityTable is a piecewise-linear elevation→opacity lookup. Breakpoints
// are kept sorted by ascending elevation.
type OpacityTable struct {
	points []OpacityBreakpoint
}

// DefaultOpacityTable is the Material elevation overlay table.
var DefaultOpacityTable = NewOpacityTable([]OpacityBreakpoint{
	{0, 0},
	{1, .05},
	{3, .08},
	{6, .11},
	{8, .12},
	{12, .14},
})

// NewOpacityTable copies and sorts the given breakpoints.
func NewOpacityTable(points []OpacityBreakpoint) *OpacityTable {
	p := make([]OpacityBreakpoint, len(points))
	copy(p, points)
	sort.SliceStable(p, func(i, j int) bool { return p[i].Elevation < p[j].Elevation })
	return &OpacityTable{points: p}
}

// Breakpoints returns the sorted breakpoints. The returned slice MUST NOT be
// mutated.
func (t *OpacityTable) Breakpoints() []OpacityBreakpoint {
	return t.points
}

// Opacity returns the tint opacity for the given elevation. Elevations below
// the first breakpoint clamp to its opacity, elevations past the last one
// clamp to the last opacity, everything in between interpolates linearly.
// An empty table yields 0.
func (t *OpacityTable) Opacity(elevation float64) float64 {
	p := t.points
	if len(p) == 0 {
		return 0
	}
	if elevation < p[0].Elevation || math.IsNaN(elevation) {
		return p[0].Opacity
	}

	i := 0
	for elevation >= p[i].Elevation {
		if elevation == p[i].Elevation || i+1 == len(p) {
			return p[i].Opacity
		}
		i++
	}

	lower, upper := p[i-1], p[i]
	f := (elevation - lower.Elevation) / (upper.Elevation - lower.Elevation)
	return lower.Opacity + f*(upper.Opacity-lower.Opacity)
}

// OpacityForElevation looks up the surface-tint opacity in the default table.
func OpacityForElevation(elevation float64) float64 {
	return DefaultOpacityTable.Opacity(elevation)
}

// ApplySurfaceTint blends base toward tint by the elevation's tint opacity.
// The tint's alpha is ignored and the result keeps base's alpha. A nil tint
// returns base unchanged.
func ApplySurfaceTint(base Color, tint *Color, elevation float64) Color {
	if tint == nil {
		return base
	}
	amount := OpacityForElevation(elevation)
	if amount == 0 {
		return base
	}
	b := colorful.Color{R: base.R, G: base.G, B: base.B}
	c := b.BlendRgb(colorful.Color{R: tint.R, G: tint.G, B: tint.B}, amount)
	return Color{R: c.R, G: c.G, B: c.B, A: base.A}
}
