package material

// TileMode selects how a gradient extends past its last stop.
type TileMode uint8

const (
	TileClamp  TileMode = iota // repeat the edge colors
	TileRepeat                 // restart the gradient
	TileMirror                 // reflect the gradient
)

// GradientStop is one color stop of a gradient. Offset is in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// RadialGradient paints concentric rings from Center out to Radius.
type RadialGradient struct {
	Center Vec2
	Radius float64
	Stops  []GradientStop
	Tile   TileMode
}

// Paint is a solid color, or a radial gradient when Gradient is non-nil.
type Paint struct {
	Color    Color
	Gradient *RadialGradient
}

// SolidPaint returns a paint filling with c.
func SolidPaint(c Color) Paint {
	return Paint{Color: c}
}

// Canvas is the set of drawing primitives a surface layer is painted with.
// Implementations decide how pixels are produced; the engine only decides
// what is drawn.
type Canvas interface {
	// Clear resets the canvas to transparent.
	Clear()
	// FillRoundedRect fills shape with p.
	FillRoundedRect(shape RoundedRect, p Paint)
	// StrokeRoundedRect outlines shape with a line of the given width.
	StrokeRoundedRect(shape RoundedRect, c Color, width float64)
	// DrawShadow draws only the drop shadow shape would cast: the shape's
	// silhouette offset by s.Offset, blurred by s.BlurRadius and painted in
	// c. The shape's own interior is left untouched.
	DrawShadow(shape RoundedRect, s ShadowData, c Color)
}

// SurfaceFrame is the interpolated state of a surface at one instant: all a
// layer needs to paint itself.
type SurfaceFrame struct {
	Shape          RoundedRect
	Elevation      float64
	Color          Color
	SurfaceTint    *Color // nil when the surface has no tint
	StateLayer     Color
	ShadowColor    Color
	OverlayOpacity float64
	Outline        Color
	OutlineWidth   float64
	Ripple         Ripple
	RipplePower    float64
}

// DrawBackground paints the background layer: the elevation shadow, then the
// tinted fill, then the outline if any.
func DrawBackground(c Canvas, f SurfaceFrame) {
	c.Clear()

	if f.Elevation > 0 && f.ShadowColor.A != 0 {
		if s, ok := ComputeShadow(f.Shape.Rect, f.Elevation); ok {
			c.DrawShadow(f.Shape, s, ShadowColor(f.ShadowColor))
		}
	}

	if f.Color.A != 0 {
		c.FillRoundedRect(f.Shape, SolidPaint(ApplySurfaceTint(f.Color, f.SurfaceTint, f.Elevation)))
	}

	if f.OutlineWidth > 0 && f.Outline.A != 0 {
		c.StrokeRoundedRect(f.Shape, f.Outline, f.OutlineWidth)
	}
}

// DrawOverlay paints the overlay layer: the state-layer wash at the current
// overlay opacity, then the ripple gradient while one is active. Both are
// confined to the rounded shape.
func DrawOverlay(c Canvas, f SurfaceFrame) {
	c.Clear()

	if a := f.StateLayer.A * f.OverlayOpacity; a > 0 {
		c.FillRoundedRect(f.Shape, SolidPaint(f.StateLayer.WithAlpha(a)))
	}

	if !f.Ripple.Active() {
		return
	}
	power := f.RipplePower
	if power <= 0 {
		power = DefaultRipplePower
	}
	center, radius, alpha := RippleGeometry(f.Shape.Rect, f.Ripple, power)
	if radius <= 0 || alpha <= 0 {
		return
	}
	c.FillRoundedRect(f.Shape, Paint{Gradient: &RadialGradient{
		Center: center,
		Radius: radius,
		Stops: []GradientStop{
			{Offset: rippleInnerStop, Color: f.StateLayer.WithAlpha(alpha * f.StateLayer.A)},
			{Offset: 1, Color: f.StateLayer.WithAlpha(0)},
		},
		Tile: TileClamp,
	}})
}
