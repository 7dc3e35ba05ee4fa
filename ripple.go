package material

import "math"

const (
	rippleRadiusScale = 1.25
	rippleMaxAlpha    = 0.12
	rippleInnerStop   = 0.5
)

// Ripple is the press feedback of a surface. In grows from 0 to 1 while the
// press lands, Out grows from 0 to 1 as it fades after release. The two
// progress independently. Origin is relative to the shape's top-left.
type Ripple struct {
	Origin Vec2
	In     float64
	Out    float64
}

// Active reports whether the ripple should be drawn.
func (r Ripple) Active() bool {
	return r.In > 0 && r.Out < 1
}

// RippleGeometry returns the gradient parameters for r over shape. The
// center travels from the press point to the shape's centroid and the radius
// grows to 1.25 half-diagonals, both following In^power. alpha is the inner
// stop's alpha.
func RippleGeometry(shape Rect, r Ripple, power float64) (center Vec2, radius, alpha float64) {
	p := math.Pow(clamp01(r.In), power)
	origin := Vec2{shape.X + r.Origin.X, shape.Y + r.Origin.Y}
	c := shape.Center()
	center = Vec2{
		X: origin.X + (c.X-origin.X)*p,
		Y: origin.Y + (c.Y-origin.Y)*p,
	}
	radius = shape.HalfDiagonal() * p * rippleRadiusScale
	alpha = (1 - clamp01(r.Out)) * rippleMaxAlpha
	return center, radius, alpha
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
