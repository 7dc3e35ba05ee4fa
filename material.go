package material

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a layer is rasterized.
type Color struct {
	R, G, B, A float64
}

// ColorTransparent is the zero color. Surfaces start with every color
// property transparent until a style or theme assigns one.
var ColorTransparent = Color{}

// ColorBlack is opaque black, the usual shadow color.
var ColorBlack = Color{0, 0, 0, 1}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts c to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the centroid of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Inflate grows r by dx on the left and right and dy on the top and bottom.
// Negative values shrink it.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X - dx, r.Y - dy, r.Width + 2*dx, r.Height + 2*dy}
}

// Offset returns r translated by d.
func (r Rect) Offset(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// HalfDiagonal returns half the length of the rectangle's diagonal.
func (r Rect) HalfDiagonal() float64 {
	return math.Hypot(r.Width, r.Height) / 2
}

// CornerRadii holds one radius per corner in clockwise order starting at the
// top-left.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float64
}

// UniformCorners returns radii with r on every corner.
func UniformCorners(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// RoundedRect is the bounding shape of a surface: a rectangle plus four
// corner radii.
type RoundedRect struct {
	Rect  Rect
	Radii CornerRadii
}

// Normalized returns the shape with negative radii zeroed and all radii
// scaled down uniformly so that adjacent corners never overlap.
func (s RoundedRect) Normalized() RoundedRect {
	r := s.Radii
	r.TopLeft = math.Max(r.TopLeft, 0)
	r.TopRight = math.Max(r.TopRight, 0)
	r.BottomRight = math.Max(r.BottomRight, 0)
	r.BottomLeft = math.Max(r.BottomLeft, 0)

	w, h := math.Max(s.Rect.Width, 0), math.Max(s.Rect.Height, 0)
	scale := 1.0
	fit := func(side, a, b float64) {
		if sum := a + b; sum > side && sum > 0 {
			scale = math.Min(scale, side/sum)
		}
	}
	fit(w, r.TopLeft, r.TopRight)
	fit(w, r.BottomLeft, r.BottomRight)
	fit(h, r.TopLeft, r.BottomLeft)
	fit(h, r.TopRight, r.BottomRight)
	if scale < 1 {
		r.TopLeft *= scale
		r.TopRight *= scale
		r.BottomRight *= scale
		r.BottomLeft *= scale
	}
	s.Radii = r
	return s
}

// Contains reports whether (x, y) lies inside the rounded shape. Points
// inside a corner's bounding square are tested against that corner's circle.
func (s RoundedRect) Contains(x, y float64) bool {
	if !s.Rect.Contains(x, y) {
		return false
	}
	n := s.Normalized()
	r := n.Rect
	inCorner := func(cx, cy, rad float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= rad*rad
	}
	switch {
	case x < r.X+n.Radii.TopLeft && y < r.Y+n.Radii.TopLeft:
		return inCorner(r.X+n.Radii.TopLeft, r.Y+n.Radii.TopLeft, n.Radii.TopLeft)
	case x > r.X+r.Width-n.Radii.TopRight && y < r.Y+n.Radii.TopRight:
		return inCorner(r.X+r.Width-n.Radii.TopRight, r.Y+n.Radii.TopRight, n.Radii.TopRight)
	case x > r.X+r.Width-n.Radii.BottomRight && y > r.Y+r.Height-n.Radii.BottomRight:
		return inCorner(r.X+r.Width-n.Radii.BottomRight, r.Y+r.Height-n.Radii.BottomRight, n.Radii.BottomRight)
	case x < r.X+n.Radii.BottomLeft && y > r.Y+r.Height-n.Radii.BottomLeft:
		return inCorner(r.X+n.Radii.BottomLeft, r.Y+r.Height-n.Radii.BottomLeft, n.Radii.BottomLeft)
	}
	return true
}

// DeviceType identifies the kind of device that produced a pointer event.
type DeviceType uint8

const (
	DevicePointer DeviceType = iota // mouse, pen or trackpad; can hover
	DeviceTouch                     // finger on a touch screen; no hover
)

// SupportsHover reports whether the device can hover without contact.
func (d DeviceType) SupportsHover() bool {
	return d == DevicePointer
}

// EventType identifies a kind of event forwarded to an EntityStore.
type EventType uint8

const (
	EventStateChanged EventType = iota // a surface's interaction state changed
	EventClick                         // press then release inside the same surface
)
