package material

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// kappa places cubic Bézier control points so a quarter circle is
// approximated within 0.03%.
const kappa = 0.5522847498307936

// RasterCanvas is a CPU Canvas backed by a gg drawing context. Pixels are
// kept as premultiplied RGBA, ready to upload to a GPU texture.
type RasterCanvas struct {
	dc      *gg.Context
	scratch *gg.Context
	w, h    int

	// shadow buffers, one coverage value per pixel
	shadow []float32
	hole   []float32
	tmp    []float32
}

var _ Canvas = (*RasterCanvas)(nil)

// NewRasterCanvas creates a transparent canvas of the given size. Sizes
// below 1 are raised to 1.
func NewRasterCanvas(w, h int) *RasterCanvas {
	w, h = max(w, 1), max(h, 1)
	return &RasterCanvas{
		dc: gg.NewContext(w, h),
		w:  w,
		h:  h,
	}
}

// Width returns the canvas width in pixels.
func (c *RasterCanvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *RasterCanvas) Height() int { return c.h }

// Clear resets every pixel to transparent.
func (c *RasterCanvas) Clear() {
	c.dc.Clear()
}

// FillRoundedRect fills shape with a solid color or a radial gradient.
func (c *RasterCanvas) FillRoundedRect(shape RoundedRect, p Paint) {
	if shape.Rect.Width <= 0 || shape.Rect.Height <= 0 {
		return
	}
	roundedRectPath(c.dc, shape)
	c.dc.SetFillBrush(toBrush(p))
	_ = c.dc.Fill()
}

// StrokeRoundedRect outlines shape. The line is centered on the shape edge.
func (c *RasterCanvas) StrokeRoundedRect(shape RoundedRect, col Color, width float64) {
	if width <= 0 || shape.Rect.Width <= 0 || shape.Rect.Height <= 0 {
		return
	}
	roundedRectPath(c.dc, shape)
	c.dc.SetStrokeBrush(gg.Solid(toRGBA(col)))
	c.dc.SetLineWidth(width)
	_ = c.dc.Stroke()
}

// DrawShadow rasterizes the offset silhouette of shape, blurs it with three
// box passes approximating a Gaussian, removes the part under the shape
// itself and composites the rest in col.
func (c *RasterCanvas) DrawShadow(shape RoundedRect, s ShadowData, col Color) {
	if col.A <= 0 || shape.Rect.Width <= 0 || shape.Rect.Height <= 0 {
		return
	}
	n := c.w * c.h
	if len(c.shadow) != n {
		c.shadow = make([]float32, n)
		c.hole = make([]float32, n)
		c.tmp = make([]float32, n)
	}

	cast := shape
	cast.Rect = shape.Rect.Offset(s.Offset)
	c.coverage(cast, c.shadow)
	if r := boxRadius(s.BlurRadius); r > 0 {
		for range 3 {
			boxBlurH(c.shadow, c.tmp, c.w, c.h, r)
			boxBlurV(c.tmp, c.shadow, c.w, c.h, r)
		}
	}
	c.coverage(shape, c.hole)

	_ = c.dc.FlushGPU()
	pix := c.dc.ResizeTarget().Data()
	for i := range n {
		a := float64(c.shadow[i]*(1-c.hole[i])) * col.A
		if a <= 0 {
			continue
		}
		o := i * 4
		inv := 1 - a
		pix[o+0] = blendByte(col.R*a, pix[o+0], inv)
		pix[o+1] = blendByte(col.G*a, pix[o+1], inv)
		pix[o+2] = blendByte(col.B*a, pix[o+2], inv)
		pix[o+3] = blendByte(a, pix[o+3], inv)
	}
}

// Pixels returns the premultiplied RGBA pixel data, row-major, four bytes per
// pixel. The slice aliases the canvas and changes with it.
func (c *RasterCanvas) Pixels() []byte {
	_ = c.dc.FlushGPU()
	return c.dc.ResizeTarget().Data()
}

// Image returns a copy of the canvas contents.
func (c *RasterCanvas) Image() *image.RGBA {
	_ = c.dc.FlushGPU()
	return c.dc.ResizeTarget().ToImage()
}

// At returns the stored value of one pixel. Out-of-range pixels are
// transparent.
func (c *RasterCanvas) At(x, y int) Color {
	_ = c.dc.FlushGPU()
	p := c.dc.ResizeTarget().GetPixel(x, y)
	return Color{R: p.R, G: p.G, B: p.B, A: p.A}
}

// coverage renders the anti-aliased silhouette of shape into dst as values
// in [0, 1].
func (c *RasterCanvas) coverage(shape RoundedRect, dst []float32) {
	if c.scratch == nil {
		c.scratch = gg.NewContext(c.w, c.h)
	}
	c.scratch.Clear()
	roundedRectPath(c.scratch, shape)
	c.scratch.SetFillBrush(gg.Solid(gg.White))
	_ = c.scratch.Fill()
	_ = c.scratch.FlushGPU()

	pix := c.scratch.ResizeTarget().Data()
	for i := range dst {
		dst[i] = float32(pix[i*4+3]) / 255
	}
}

// roundedRectPath replaces the current path of dc with shape, one cubic per
// rounded corner, clockwise from the top-left.
func roundedRectPath(dc *gg.Context, shape RoundedRect) {
	n := shape.Normalized()
	r := n.Rect
	tl, tr, br, bl := n.Radii.TopLeft, n.Radii.TopRight, n.Radii.BottomRight, n.Radii.BottomLeft
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height

	dc.ClearPath()
	dc.MoveTo(x0+tl, y0)
	dc.LineTo(x1-tr, y0)
	if tr > 0 {
		dc.CubicTo(x1-tr+tr*kappa, y0, x1, y0+tr-tr*kappa, x1, y0+tr)
	}
	dc.LineTo(x1, y1-br)
	if br > 0 {
		dc.CubicTo(x1, y1-br+br*kappa, x1-br+br*kappa, y1, x1-br, y1)
	}
	dc.LineTo(x0+bl, y1)
	if bl > 0 {
		dc.CubicTo(x0+bl-bl*kappa, y1, x0, y1-bl+bl*kappa, x0, y1-bl)
	}
	dc.LineTo(x0, y0+tl)
	if tl > 0 {
		dc.CubicTo(x0, y0+tl-tl*kappa, x0+tl-tl*kappa, y0, x0+tl, y0)
	}
	dc.ClosePath()
}

func toRGBA(c Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toBrush(p Paint) gg.Brush {
	g := p.Gradient
	if g == nil {
		return gg.Solid(toRGBA(p.Color))
	}
	b := gg.NewRadialGradientBrush(g.Center.X, g.Center.Y, 0, g.Radius)
	for _, s := range g.Stops {
		b.AddColorStop(s.Offset, toRGBA(s.Color))
	}
	switch g.Tile {
	case TileRepeat:
		b.SetExtend(gg.ExtendRepeat)
	case TileMirror:
		b.SetExtend(gg.ExtendReflect)
	default:
		b.SetExtend(gg.ExtendPad)
	}
	return b
}

// boxRadius converts a blur radius to the radius of a box filter that, run
// three times, matches the Gaussian a blur of that radius is drawn with
// (sigma = 0.57735·radius + 0.5).
func boxRadius(blur float64) int {
	if blur <= 0 {
		return 0
	}
	sigma := 0.57735*blur + 0.5
	w := math.Sqrt(4*sigma*sigma + 1)
	return max(int(math.Round((w-1)/2)), 1)
}

// boxBlurH averages each row of src over a window of 2r+1 pixels into dst.
// Pixels past the edges count as zero.
func boxBlurH(src, dst []float32, w, h, r int) {
	scale := 1 / float32(2*r+1)
	for y := range h {
		row := src[y*w : (y+1)*w]
		out := dst[y*w : (y+1)*w]
		var sum float32
		for x := 0; x < r && x < w; x++ {
			sum += row[x]
		}
		for x := range w {
			if in := x + r; in < w {
				sum += row[in]
			}
			if rem := x - r - 1; rem >= 0 {
				sum -= row[rem]
			}
			out[x] = sum * scale
		}
	}
}

// boxBlurV is boxBlurH over columns.
func boxBlurV(src, dst []float32, w, h, r int) {
	scale := 1 / float32(2*r+1)
	for x := range w {
		var sum float32
		for y := 0; y < r && y < h; y++ {
			sum += src[y*w+x]
		}
		for y := range h {
			if in := y + r; in < h {
				sum += src[in*w+x]
			}
			if rem := y - r - 1; rem >= 0 {
				sum -= src[rem*w+x]
			}
			dst[y*w+x] = sum * scale
		}
	}
}

// blendByte composites a premultiplied source channel over a destination
// byte: src + dst·inv.
func blendByte(src float64, dst uint8, inv float64) uint8 {
	v := src*255 + float64(dst)*inv
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v + 0.5)
}
