package material

import (
	"math"
	"testing"
	"time"
)

// newTestSurface returns a surface whose properties are already activated,
// as if it had been drawn once.
func newTestSurface(t *testing.T) (*Surface, *Animator) {
	t.Helper()
	anim := NewAnimator()
	s := NewSurface("card", anim, SurfaceConfig{})
	s.SetBounds(Rect{X: 10, Y: 20, Width: 200, Height: 100})
	s.SetColor(Color{0.9, 0.9, 0.9, 1})
	s.SetStateLayerColor(ColorBlack)
	_ = s.Frame()
	return s, anim
}

// settle advances anim until nothing is running.
func settle(anim *Animator) {
	for i := 0; i < 1000 && anim.Len() > 0; i++ {
		anim.Update(0.05)
	}
}

func TestSurfaceDefaults(t *testing.T) {
	s := NewSurface("s", NewAnimator(), SurfaceConfig{})
	cfg := s.Config()
	if cfg.TweenDuration != 180*time.Millisecond ||
		cfg.RippleInDuration != 400*time.Millisecond ||
		cfg.RippleOutDuration != 700*time.Millisecond {
		t.Errorf("durations = %v %v %v", cfg.TweenDuration, cfg.RippleInDuration, cfg.RippleOutDuration)
	}
	if cfg.RipplePower != 0.5 || cfg.TouchSlop != 15 || cfg.ShadowMargin != 40 {
		t.Errorf("config = %+v", cfg)
	}
	if !s.Interactable {
		t.Error("new surface not interactable")
	}
	if s.ShadowColor() != ColorBlack {
		t.Errorf("shadow color = %+v, want black", s.ShadowColor())
	}
	if s.Color() != ColorTransparent || s.Elevation() != 0 {
		t.Error("unexpected initial color or elevation")
	}
}

func TestSurfaceNegativeShadowMarginDisables(t *testing.T) {
	s := NewSurface("s", NewAnimator(), SurfaceConfig{ShadowMargin: -1})
	s.SetBounds(Rect{X: 5, Y: 5, Width: 10, Height: 10})
	if got := s.BackgroundRect(); got != s.Bounds() {
		t.Errorf("BackgroundRect = %+v, want bounds", got)
	}
}

func TestSurfaceFirstAssignmentSnaps(t *testing.T) {
	anim := NewAnimator()
	s := NewSurface("s", anim, SurfaceConfig{})
	s.SetElevation(6)
	s.SetCorners(UniformCorners(12))
	s.SetColor(ColorWhite)

	if anim.Len() != 0 {
		t.Errorf("configuring a fresh surface started %d animations", anim.Len())
	}
	if s.Elevation() != 6 || s.Corners() != UniformCorners(12) || s.Color() != ColorWhite {
		t.Error("values did not snap")
	}
}

func TestSurfaceAnimatesAfterActivation(t *testing.T) {
	s, anim := newTestSurface(t)

	s.SetElevation(12)
	anim.Update(0.09) // half of 180ms
	if got := s.Elevation(); math.Abs(got-6) > 0.01 {
		t.Errorf("elevation half-way = %v, want 6", got)
	}
	settle(anim)
	if s.Elevation() != 12 {
		t.Errorf("elevation = %v, want 12", s.Elevation())
	}
}

func TestSurfaceInvalidationRouting(t *testing.T) {
	tests := []struct {
		name   string
		set    func(s *Surface)
		bg, ov bool
	}{
		{"elevation", func(s *Surface) { s.SetElevation(3) }, true, false},
		{"color", func(s *Surface) { s.SetColor(ColorWhite) }, true, false},
		{"tint", func(s *Surface) { s.SetSurfaceTint(ColorWhite) }, true, false},
		{"shadow", func(s *Surface) { s.SetShadowColor(ColorWhite) }, true, false},
		{"outline", func(s *Surface) { s.SetOutline(ColorBlack, 1) }, true, false},
		{"corners", func(s *Surface) { s.SetCorners(UniformCorners(8)) }, true, true},
		{"state layer", func(s *Surface) { s.SetStateLayerColor(ColorWhite) }, false, true},
		{"resize", func(s *Surface) { s.SetBounds(Rect{Width: 50, Height: 50}) }, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, anim := newTestSurface(t)
			bg0, ov0 := s.Background().Invalidations(), s.Overlay().Invalidations()

			tt.set(s)
			settle(anim)

			bg := s.Background().Invalidations() > bg0
			ov := s.Overlay().Invalidations() > ov0
			if bg != tt.bg || ov != tt.ov {
				t.Errorf("background=%v overlay=%v, want %v %v", bg, ov, tt.bg, tt.ov)
			}
		})
	}
}

func TestSurfaceMoveDoesNotRepaint(t *testing.T) {
	s, _ := newTestSurface(t)
	bg0, ov0 := s.Background().Invalidations(), s.Overlay().Invalidations()

	b := s.Bounds()
	b.X += 30
	s.SetBounds(b)

	if s.Background().Invalidations() != bg0 || s.Overlay().Invalidations() != ov0 {
		t.Error("moving without resizing invalidated a layer")
	}
}

func TestSurfaceOverlayFollowsState(t *testing.T) {
	s, anim := newTestSurface(t)

	s.HandlePointer(PointerEvent{Action: PointerEnter, Device: DevicePointer, Inside: true})
	settle(anim)
	if got := s.OverlayOpacity(); math.Abs(got-0.08) > 1e-9 {
		t.Errorf("hover overlay = %v, want 0.08", got)
	}

	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DevicePointer, X: 5, Y: 5, InContact: true, Inside: true})
	settle(anim)
	if got := s.OverlayOpacity(); math.Abs(got-0.12) > 1e-9 {
		t.Errorf("press overlay = %v, want 0.12", got)
	}

	s.HandlePointer(PointerEvent{Action: PointerExit})
	settle(anim)
	if got := s.OverlayOpacity(); got != 0 {
		t.Errorf("idle overlay = %v, want 0", got)
	}
}

func TestSurfaceRippleLifecycle(t *testing.T) {
	s, anim := newTestSurface(t)

	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DevicePointer, X: 30, Y: 40, InContact: true, Inside: true})
	if r := s.Ripple(); r.Origin != (Vec2{30, 40}) || r.In != 0 || r.Out != 0 {
		t.Fatalf("ripple on press = %+v", r)
	}

	anim.Update(0.2) // half of ripple-in
	if r := s.Ripple(); math.Abs(r.In-0.5) > 1e-3 {
		t.Errorf("ripple in = %v, want 0.5", r.In)
	}

	s.HandlePointer(PointerEvent{Action: PointerRelease, Device: DevicePointer, X: 30, Y: 40, Inside: true})
	inAtRelease := s.Ripple().In
	anim.Update(0.05)
	r := s.Ripple()
	if r.In < inAtRelease {
		t.Errorf("leaving pressed reset ripple in: %v < %v", r.In, inAtRelease)
	}
	if r.Out <= 0 {
		t.Errorf("ripple out not started: %v", r.Out)
	}

	settle(anim)
	if r := s.Ripple(); r.In != 1 || r.Out != 1 || r.Active() {
		t.Errorf("ripple after settle = %+v, want finished", r)
	}
}

func TestSurfaceRepressResetsRippleOut(t *testing.T) {
	s, anim := newTestSurface(t)
	pressEv := PointerEvent{Action: PointerPress, Device: DevicePointer, X: 1, Y: 1, InContact: true, Inside: true}
	releaseEv := PointerEvent{Action: PointerRelease, Device: DevicePointer, X: 1, Y: 1, Inside: true}

	s.HandlePointer(pressEv)
	anim.Update(0.1)
	s.HandlePointer(releaseEv)
	anim.Update(0.1)
	if s.Ripple().Out == 0 {
		t.Fatal("ripple out not running")
	}

	s.HandlePointer(pressEv)
	if r := s.Ripple(); r.Out != 0 || r.In != 0 {
		t.Errorf("re-press ripple = %+v, want out and in reset", r)
	}
	anim.Update(0.1)
	if s.Ripple().Out != 0 {
		t.Error("aborted ripple-out kept running")
	}
}

func TestSurfaceSetStatePressedStartsNoRipple(t *testing.T) {
	s, anim := newTestSurface(t)

	s.SetState(StatePressed)
	if s.Ripple() != (Ripple{}) || anim.Running(s.rippleInID) {
		t.Errorf("forced press started a ripple: %+v", s.Ripple())
	}
	settle(anim)
	if got := s.OverlayOpacity(); math.Abs(got-0.12) > 1e-9 {
		t.Errorf("forced press overlay = %v, want 0.12", got)
	}

	s.SetState(StateNone)
	if anim.Running(s.rippleOutID) {
		t.Error("leaving a forced press started a ripple fade")
	}

	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DevicePointer, X: 8, Y: 9, InContact: true, Inside: true})
	if !anim.Running(s.rippleInID) || s.Ripple().Origin != (Vec2{8, 9}) {
		t.Errorf("pointer press ripple = %+v", s.Ripple())
	}
}

func TestSurfaceSecondPressRestartsRipple(t *testing.T) {
	s, anim := newTestSurface(t)
	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DeviceTouch, X: 10, Y: 10, InContact: true, Inside: true})
	anim.Update(0.2)

	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DeviceTouch, X: 50, Y: 60, InContact: true, Inside: true})
	if r := s.Ripple(); r.Origin != (Vec2{50, 60}) || r.In != 0 {
		t.Errorf("second press ripple = %+v, want restart at 50,60", r)
	}
	if !anim.Running(s.rippleInID) {
		t.Error("second press did not run ripple-in")
	}
}

func TestSurfaceClick(t *testing.T) {
	s, _ := newTestSurface(t)
	var clicked *Surface
	s.OnClick = func(sf *Surface) { clicked = sf }

	var changes []InteractionState
	s.OnStateChange = func(sf *Surface, prev InteractionState) {
		changes = append(changes, sf.State())
	}

	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DeviceTouch, InContact: true, Inside: true})
	s.HandlePointer(PointerEvent{Action: PointerRelease, Device: DeviceTouch, Inside: true})

	if clicked != s {
		t.Error("OnClick not called with the surface")
	}
	if len(changes) != 2 || changes[0] != StatePressed || changes[1] != StateNone {
		t.Errorf("state changes = %v", changes)
	}
}

func TestSurfaceElevationForState(t *testing.T) {
	s, anim := newTestSurface(t)
	s.ElevationForState = func(st InteractionState) float64 {
		switch st {
		case StatePressed:
			return 12
		case StateHovered:
			return 1
		}
		return 0
	}

	s.HandlePointer(PointerEvent{Action: PointerEnter, Device: DevicePointer})
	settle(anim)
	if s.Elevation() != 1 {
		t.Errorf("hover elevation = %v, want 1", s.Elevation())
	}
	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DevicePointer, InContact: true, Inside: true})
	settle(anim)
	if s.Elevation() != 12 {
		t.Errorf("press elevation = %v, want 12", s.Elevation())
	}
}

func TestSurfaceFrame(t *testing.T) {
	s, _ := newTestSurface(t)
	s.SetCorners(CornerRadii{1, 2, 3, 4})
	s.SetOutline(ColorBlack, 2)

	f := s.Frame()
	if f.Shape.Rect != (Rect{Width: 200, Height: 100}) {
		t.Errorf("frame shape = %+v, want local bounds", f.Shape.Rect)
	}
	if f.SurfaceTint != nil {
		t.Error("transparent tint reported as a tint")
	}
	if f.OutlineWidth != 2 || f.RipplePower != 0.5 {
		t.Errorf("frame = %+v", f)
	}

	s.SetSurfaceTint(ColorWhite)
	for range 10 {
		s.anim.Update(0.05)
	}
	if f := s.Frame(); f.SurfaceTint == nil || *f.SurfaceTint != ColorWhite {
		t.Errorf("tint = %v, want white", f.SurfaceTint)
	}
}

func TestSurfaceContainsUsesCorners(t *testing.T) {
	anim := NewAnimator()
	s := NewSurface("s", anim, SurfaceConfig{})
	s.SetBounds(Rect{X: 100, Y: 100, Width: 100, Height: 100})
	s.SetCorners(UniformCorners(50))

	if !s.Contains(150, 150) {
		t.Error("center not contained")
	}
	if s.Contains(101, 101) {
		t.Error("rounded-off corner contained")
	}
	if s.Contains(99, 150) {
		t.Error("outside point contained")
	}
	// Hit testing does not activate the properties.
	s.SetCorners(UniformCorners(10))
	if anim.Len() != 0 {
		t.Error("Contains activated the corner property")
	}
}

func TestSurfaceReset(t *testing.T) {
	s, anim := newTestSurface(t)
	s.HandlePointer(PointerEvent{Action: PointerPress, Device: DevicePointer, InContact: true, Inside: true})
	s.SetElevation(8)
	anim.Update(0.05)

	s.Reset()
	if anim.Len() != 0 {
		t.Errorf("Reset left %d animations running", anim.Len())
	}
	if s.Ripple() != (Ripple{}) {
		t.Errorf("ripple after Reset = %+v", s.Ripple())
	}

	s.SetColor(ColorWhite)
	s.SetElevation(2)
	if anim.Len() != 0 {
		t.Error("assignments after Reset animated")
	}
	if s.Color() != ColorWhite || s.Elevation() != 2 {
		t.Error("assignments after Reset did not snap")
	}
}

func TestSurfaceResetMidFadeSnapsOverlay(t *testing.T) {
	s, anim := newTestSurface(t)
	s.HandlePointer(PointerEvent{Action: PointerEnter, Device: DevicePointer, Inside: true})
	settle(anim)
	s.HandlePointer(PointerEvent{Action: PointerExit})
	anim.Update(0.09) // half of the fade out

	s.Reset()
	_ = s.Frame()
	FilledCard.Apply(s, DefaultTheme())
	settle(anim)
	if got := s.OverlayOpacity(); got != 0 {
		t.Errorf("recycled overlay = %v, want 0", got)
	}
}

func TestSurfaceResetMidCrossfadeSnapsOnReapply(t *testing.T) {
	s, anim := newTestSurface(t)
	s.SetColor(ColorWhite)
	anim.Update(0.09)

	s.Reset()
	s.SetColor(ColorWhite)
	if got := s.Color(); got != ColorWhite {
		t.Errorf("color = %+v, want white", got)
	}
}

func TestSurfacePaintBackgroundOffsetsByMargin(t *testing.T) {
	s, _ := newTestSurface(t)
	var c recordingCanvas
	s.PaintBackground(&c)

	for _, op := range c.ops {
		if op.kind != "fill" {
			continue
		}
		if op.shape.Rect.X != 40 || op.shape.Rect.Y != 40 {
			t.Errorf("fill at %+v, want offset by margin 40", op.shape.Rect)
		}
		return
	}
	t.Fatal("no fill painted")
}

func TestSurfaceDispose(t *testing.T) {
	scene := NewScene()
	s := scene.NewSurface("s", SurfaceConfig{})
	s.SetBounds(Rect{Width: 10, Height: 10})

	s.Dispose()
	if !s.IsDisposed() {
		t.Error("not disposed")
	}
	if len(scene.Surfaces()) != 0 {
		t.Error("disposed surface still in scene")
	}

	s.HandlePointer(PointerEvent{Action: PointerEnter, Device: DevicePointer})
	if s.State() != StateNone {
		t.Error("disposed surface reacted to input")
	}
	s.Dispose() // second call is a no-op
}
