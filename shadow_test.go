package material

import (
	"math"
	"testing"
)

func TestComputeShadowZeroElevation(t *testing.T) {
	shapes := []Rect{
		{0, 0, 100, 40},
		{10, 10, 0, 0},
		{-5, 3, 500, 900},
	}
	for _, r := range shapes {
		if _, ok := ComputeShadow(r, 0); ok {
			t.Errorf("ComputeShadow(%+v, 0) reported a shadow", r)
		}
	}
}

func TestComputeShadowValues(t *testing.T) {
	shape := Rect{Width: 200, Height: 100}

	s, ok := ComputeShadow(shape, 6)
	if !ok {
		t.Fatal("no shadow at elevation 6")
	}
	// tx = (800+100)/600 = 1.5, ty = (800+50)/600 = 1.41667; blur = 6*min.
	if want := 6 * 850.0 / 600; math.Abs(s.BlurRadius-want) > 1e-9 {
		t.Errorf("BlurRadius = %v, want %v", s.BlurRadius, want)
	}
	// Light sits up and to the left, so the shadow falls down and right.
	if math.Abs(s.Offset.X-2) > 1e-9 || math.Abs(s.Offset.Y-4) > 1e-9 {
		t.Errorf("Offset = %+v, want (2, 4)", s.Offset)
	}
}

func TestComputeShadowMonotonic(t *testing.T) {
	shape := Rect{X: 20, Y: 20, Width: 120, Height: 48}

	prev, _ := ComputeShadow(shape, 0.01)
	for e := 0.02; e <= 24; e += 0.01 {
		s, ok := ComputeShadow(shape, e)
		if !ok {
			t.Fatalf("no shadow at e=%v", e)
		}
		if s.BlurRadius < prev.BlurRadius {
			t.Fatalf("blur decreased at e=%v: %v < %v", e, s.BlurRadius, prev.BlurRadius)
		}
		if s.Offset.Len() < prev.Offset.Len() {
			t.Fatalf("offset decreased at e=%v", e)
		}
		prev = s
	}
}

func TestComputePenumbraBounds(t *testing.T) {
	shape := Rect{X: 10, Y: 20, Width: 200, Height: 100}

	if got := ComputePenumbraBounds(shape, 0); got != shape {
		t.Errorf("elevation 0 bounds = %+v, want shape", got)
	}

	got := ComputePenumbraBounds(shape, 6)
	// Grown by 6*1.5 = 9 horizontally and 6*850/600 = 8.5 vertically,
	// shifted by (2, 4).
	want := Rect{X: 10 - 9 + 2, Y: 20 - 8.5 + 4, Width: 218, Height: 117}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 ||
		math.Abs(got.Width-want.Width) > 1e-9 || math.Abs(got.Height-want.Height) > 1e-9 {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
}

func TestShadowColorScalesAlpha(t *testing.T) {
	got := ShadowColor(Color{0.1, 0.2, 0.3, 0.5})
	if got.R != 0.1 || got.G != 0.2 || got.B != 0.3 {
		t.Errorf("rgb changed: %+v", got)
	}
	if math.Abs(got.A-0.15) > 1e-12 {
		t.Errorf("A = %v, want 0.15", got.A)
	}
}
