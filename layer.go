package material

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Layer is one persistent offscreen texture of a surface. Its pixels are
// produced by a paint function on a RasterCanvas and uploaded to an
// ebiten.Image. Any number of invalidations between two flushes cost a
// single repaint.
type Layer struct {
	name string

	dirty         bool
	uploaded      bool
	invalidations int
	repaints      int

	canvas *RasterCanvas
	image  *ebiten.Image
}

// NewLayer creates an empty layer. It is dirty until first painted.
func NewLayer(name string) *Layer {
	return &Layer{name: name, dirty: true}
}

// Name returns the layer's debug name.
func (l *Layer) Name() string { return l.name }

// Invalidate marks the layer for repaint on the next flush.
func (l *Layer) Invalidate() {
	l.invalidations++
	l.dirty = true
}

// Dirty reports whether the layer needs a repaint.
func (l *Layer) Dirty() bool { return l.dirty }

// Invalidations returns how many times Invalidate has been called.
func (l *Layer) Invalidations() int { return l.invalidations }

// Repaints returns how many times the layer has actually been painted.
func (l *Layer) Repaints() int { return l.repaints }

// Canvas returns the raster canvas, or nil before the first paint.
func (l *Layer) Canvas() *RasterCanvas { return l.canvas }

// Raster repaints the canvas with paint if the layer is dirty or its size
// changed. It reports whether a repaint happened.
func (l *Layer) Raster(w, h int, paint func(Canvas)) bool {
	w, h = max(w, 1), max(h, 1)
	if l.canvas == nil || l.canvas.Width() != w || l.canvas.Height() != h {
		l.canvas = NewRasterCanvas(w, h)
		l.dirty = true
	}
	if !l.dirty {
		return false
	}
	paint(l.canvas)
	l.dirty = false
	l.uploaded = false
	l.repaints++
	return true
}

// Flush repaints the layer when needed and returns its texture, uploading
// the canvas only after a repaint.
func (l *Layer) Flush(w, h int, paint func(Canvas)) *ebiten.Image {
	l.Raster(w, h, paint)

	cw, ch := l.canvas.Width(), l.canvas.Height()
	if l.image != nil {
		if b := l.image.Bounds(); b.Dx() != cw || b.Dy() != ch {
			l.image.Deallocate()
			l.image = nil
		}
	}
	if l.image == nil {
		l.image = ebiten.NewImage(cw, ch)
		l.uploaded = false
	}
	if !l.uploaded {
		l.image.WritePixels(l.canvas.Pixels())
		l.uploaded = true
	}
	return l.image
}

// Dispose releases the texture and canvas. The layer repaints from scratch
// if flushed again.
func (l *Layer) Dispose() {
	if l.image != nil {
		l.image.Deallocate()
		l.image = nil
	}
	l.canvas = nil
	l.dirty = true
	l.uploaded = false
}
