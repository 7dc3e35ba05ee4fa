package material

import "math"

// Point light above the surface plane. Shadows grow and drift away from it as
// elevation rises.
const (
	lightHeight  = 600
	lightRadius  = 800
	lightOffsetX = -200
	lightOffsetY = -400

	shadowAlphaScale = 0.3
)

// ShadowData is the drop shadow for one surface at one elevation. It is
// derived on every paint, never stored.
type ShadowData struct {
	BlurRadius float64
	Offset     Vec2
}

func shadowOffset(elevation float64) Vec2 {
	if elevation == 0 {
		return Vec2{}
	}
	return Vec2{
		X: -lightOffsetX * elevation / lightHeight,
		Y: -lightOffsetY * elevation / lightHeight,
	}
}

// penumbraTangents returns the penumbra growth per unit of elevation along
// each axis for a shape of the given size.
func penumbraTangents(shape Rect) (tx, ty float64) {
	tx = (lightRadius + shape.Width*.5) / lightHeight
	ty = (lightRadius + shape.Height*.5) / lightHeight
	return tx, ty
}

// ComputeShadow returns the blur radius and offset of the shadow cast by
// shape at elevation. ok is false at elevation 0, where no shadow is drawn.
// The blur radius is the smaller of the two penumbra extents.
func ComputeShadow(shape Rect, elevation float64) (s ShadowData, ok bool) {
	if elevation == 0 {
		return ShadowData{}, false
	}
	tx, ty := penumbraTangents(shape)
	return ShadowData{
		BlurRadius: math.Min(elevation*tx, elevation*ty),
		Offset:     shadowOffset(elevation),
	}, true
}

// ComputePenumbraBounds returns the bounding box of the shadow cast by shape:
// the shape expanded by the penumbra on each side and translated by the
// shadow offset.
func ComputePenumbraBounds(shape Rect, elevation float64) Rect {
	if elevation == 0 {
		return shape
	}
	tx, ty := penumbraTangents(shape)
	return shape.Inflate(elevation*tx, elevation*ty).Offset(shadowOffset(elevation))
}

// ShadowColor returns the color a shadow is painted with for a surface whose
// shadow color property is c.
func ShadowColor(c Color) Color {
	return c.WithAlpha(c.A * shadowAlphaScale)
}
