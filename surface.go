package material

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

// Surface defaults.
const (
	DefaultTweenDuration     = 180 * time.Millisecond
	DefaultRippleInDuration  = 400 * time.Millisecond
	DefaultRippleOutDuration = 700 * time.Millisecond
	DefaultRipplePower       = 0.5
	DefaultShadowMargin      = 40.0
)

// SurfaceConfig tunes a surface's timing and geometry. Zero fields take the
// package defaults.
type SurfaceConfig struct {
	// TweenDuration is how long every animated property takes to reach a new
	// target.
	TweenDuration time.Duration
	// Easing shapes property tweens. nil is linear.
	Easing ease.TweenFunc

	RippleInDuration  time.Duration
	RippleOutDuration time.Duration
	// RipplePower is the exponent applied to ripple-in progress before it
	// moves the ripple center and grows its radius.
	RipplePower float64

	// TouchSlop is how far a finger may wander before a press is abandoned.
	TouchSlop float64

	// ShadowMargin is how far the background layer extends past the surface
	// bounds on every side to leave room for the shadow.
	ShadowMargin float64
}

func (c SurfaceConfig) withDefaults() SurfaceConfig {
	if c.TweenDuration <= 0 {
		c.TweenDuration = DefaultTweenDuration
	}
	if c.RippleInDuration <= 0 {
		c.RippleInDuration = DefaultRippleInDuration
	}
	if c.RippleOutDuration <= 0 {
		c.RippleOutDuration = DefaultRippleOutDuration
	}
	if c.RipplePower <= 0 {
		c.RipplePower = DefaultRipplePower
	}
	if c.TouchSlop <= 0 {
		c.TouchSlop = DefaultTouchSlop
	}
	if c.ShadowMargin < 0 {
		c.ShadowMargin = 0
	} else if c.ShadowMargin == 0 {
		c.ShadowMargin = DefaultShadowMargin
	}
	return c
}

// Surface is an elevated, rounded Material surface such as a card or a
// button. Its seven visual properties tween toward their targets, input
// drives an interaction state, and the result is painted into two layers:
// a background (shadow and tinted fill) and an overlay (state layer and
// ripple). Each layer is repainted only when something it shows changed.
//
// Surface is not safe for concurrent use.
type Surface struct {
	// Name is used in logs and events.
	Name string

	// Interactable controls whether the scene routes pointer input here.
	Interactable bool

	// OnClick fires on a release inside the surface that ends a press.
	OnClick func(s *Surface)

	// OnStateChange fires after every change of interaction state.
	OnStateChange func(s *Surface, prev InteractionState)

	// ElevationForState, when set, retargets the elevation on every state
	// change.
	ElevationForState func(InteractionState) float64

	cfg    SurfaceConfig
	anim   *Animator
	bounds Rect

	elevation      *AnimatedFloat
	corners        *AnimatedCorners
	color          *AnimatedColor
	surfaceTint    *AnimatedColor
	stateLayer     *AnimatedColor
	shadowColor    *AnimatedColor
	overlayOpacity *AnimatedFloat

	outline      Color
	outlineWidth float64

	interaction Interaction

	ripple      Ripple
	rippleInID  AnimationID
	rippleOutID AnimationID
	// pressing is set while a pointer press is being handled.
	pressing bool

	background *Layer
	overlay    *Layer

	scene    *Scene
	disposed bool
}

// NewSurface creates an interactable surface driven by anim. Every color
// starts transparent except the shadow, which starts black; elevation and
// corner radii start at zero.
func NewSurface(name string, anim *Animator, cfg SurfaceConfig) *Surface {
	cfg = cfg.withDefaults()
	s := &Surface{
		Name:         name,
		Interactable: true,
		cfg:          cfg,
		anim:         anim,
		rippleInID:   NewAnimationID(),
		rippleOutID:  NewAnimationID(),
		background:   NewLayer(name + ".background"),
		overlay:      NewLayer(name + ".overlay"),
	}

	bg := s.background.Invalidate
	ov := s.overlay.Invalidate
	both := func() {
		bg()
		ov()
	}
	d := cfg.TweenDuration
	s.elevation = NewAnimated(anim, 0, d, LerpFloat, bg)
	s.corners = NewAnimated(anim, CornerRadii{}, d, LerpCorners, both)
	s.color = NewAnimated(anim, ColorTransparent, d, LerpColor, bg)
	s.surfaceTint = NewAnimated(anim, ColorTransparent, d, LerpColor, bg)
	s.stateLayer = NewAnimated(anim, ColorTransparent, d, LerpColor, ov)
	s.shadowColor = NewAnimated(anim, ColorBlack, d, LerpColor, bg)
	s.overlayOpacity = NewAnimated(anim, 0, d, LerpFloat, ov)
	if cfg.Easing != nil {
		for _, p := range s.floatProps() {
			p.SetEasing(cfg.Easing)
		}
		for _, p := range s.colorProps() {
			p.SetEasing(cfg.Easing)
		}
		s.corners.SetEasing(cfg.Easing)
	}

	s.interaction.TouchSlop = cfg.TouchSlop
	s.interaction.OnStateChanged = s.onStateChanged
	s.interaction.OnClick = s.onClick
	return s
}

func (s *Surface) floatProps() []*AnimatedFloat {
	return []*AnimatedFloat{s.elevation, s.overlayOpacity}
}

func (s *Surface) colorProps() []*AnimatedColor {
	return []*AnimatedColor{s.color, s.surfaceTint, s.stateLayer, s.shadowColor}
}

// Config returns the surface's effective configuration.
func (s *Surface) Config() SurfaceConfig { return s.cfg }

// Bounds returns the surface rectangle in scene coordinates.
func (s *Surface) Bounds() Rect { return s.bounds }

// SetBounds moves or resizes the surface. A size change repaints both layers.
func (s *Surface) SetBounds(r Rect) {
	if r.Width != s.bounds.Width || r.Height != s.bounds.Height {
		s.background.Invalidate()
		s.overlay.Invalidate()
	}
	s.bounds = r
}

// SetElevation sets the elevation target.
func (s *Surface) SetElevation(e float64) { s.elevation.SetTarget(e) }

// Elevation returns the current elevation.
func (s *Surface) Elevation() float64 { return s.elevation.Current() }

// SetCorners sets the corner radii target.
func (s *Surface) SetCorners(r CornerRadii) { s.corners.SetTarget(r) }

// Corners returns the current corner radii.
func (s *Surface) Corners() CornerRadii { return s.corners.Current() }

// SetColor sets the fill color target.
func (s *Surface) SetColor(c Color) { s.color.SetTarget(c) }

// Color returns the current fill color.
func (s *Surface) Color() Color { return s.color.Current() }

// SetSurfaceTint sets the surface-tint target. A fully transparent tint
// disables tinting.
func (s *Surface) SetSurfaceTint(c Color) { s.surfaceTint.SetTarget(c) }

// SurfaceTint returns the current surface tint.
func (s *Surface) SurfaceTint() Color { return s.surfaceTint.Current() }

// SetStateLayerColor sets the color of the state layer and ripple.
func (s *Surface) SetStateLayerColor(c Color) { s.stateLayer.SetTarget(c) }

// StateLayerColor returns the current state-layer color.
func (s *Surface) StateLayerColor() Color { return s.stateLayer.Current() }

// SetShadowColor sets the shadow color target.
func (s *Surface) SetShadowColor(c Color) { s.shadowColor.SetTarget(c) }

// ShadowColor returns the current shadow color.
func (s *Surface) ShadowColor() Color { return s.shadowColor.Current() }

// OverlayOpacity returns the current state-layer opacity.
func (s *Surface) OverlayOpacity() float64 { return s.overlayOpacity.Current() }

// SetOutline sets an outline drawn on the background layer. A zero width
// removes it. The outline does not animate.
func (s *Surface) SetOutline(c Color, width float64) {
	if c == s.outline && width == s.outlineWidth {
		return
	}
	s.outline, s.outlineWidth = c, width
	s.background.Invalidate()
}

// Outline returns the outline color and width.
func (s *Surface) Outline() (Color, float64) { return s.outline, s.outlineWidth }

// Ripple returns the current ripple.
func (s *Surface) Ripple() Ripple { return s.ripple }

// State returns the interaction state.
func (s *Surface) State() InteractionState { return s.interaction.State() }

// SetState overrides the interaction state, for states input never produces
// such as Selected or Disabled. Forcing StatePressed updates the state layer
// and elevation but starts no ripple; only a pointer press does.
func (s *Surface) SetState(st InteractionState) { s.interaction.Set(st) }

// HandlePointer applies one input event given in surface-local coordinates.
// A press while already pressed, such as a second finger, restarts the
// ripple from the new press point.
func (s *Surface) HandlePointer(ev PointerEvent) {
	if s.disposed {
		return
	}
	if ev.Action != PointerPress {
		s.interaction.Handle(ev)
		return
	}
	repress := s.interaction.State() == StatePressed
	s.pressing = true
	s.interaction.Handle(ev)
	s.pressing = false
	if repress && s.interaction.State() == StatePressed {
		s.startRipple()
	}
}

// Contains reports whether the scene point (x, y) is inside the rounded
// shape.
func (s *Surface) Contains(x, y float64) bool {
	return RoundedRect{Rect: s.bounds, Radii: s.corners.peek()}.Contains(x, y)
}

// Background returns the background layer.
func (s *Surface) Background() *Layer { return s.background }

// Overlay returns the overlay layer.
func (s *Surface) Overlay() *Layer { return s.overlay }

// Frame returns the current interpolated state in surface-local
// coordinates, with the shape's top-left at the origin. Reading a frame
// activates every animated property.
func (s *Surface) Frame() SurfaceFrame {
	f := SurfaceFrame{
		Shape: RoundedRect{
			Rect:  Rect{Width: s.bounds.Width, Height: s.bounds.Height},
			Radii: s.corners.Current(),
		},
		Elevation:      s.elevation.Current(),
		Color:          s.color.Current(),
		StateLayer:     s.stateLayer.Current(),
		ShadowColor:    s.shadowColor.Current(),
		OverlayOpacity: s.overlayOpacity.Current(),
		Outline:        s.outline,
		OutlineWidth:   s.outlineWidth,
		Ripple:         s.ripple,
		RipplePower:    s.cfg.RipplePower,
	}
	if tint := s.surfaceTint.Current(); tint.A != 0 {
		f.SurfaceTint = &tint
	}
	return f
}

// BackgroundRect returns the scene rectangle covered by the background
// layer: the bounds grown by the shadow margin.
func (s *Surface) BackgroundRect() Rect {
	m := s.cfg.ShadowMargin
	return s.bounds.Inflate(m, m)
}

// PaintBackground draws the background layer into c, whose origin is the
// top-left of BackgroundRect.
func (s *Surface) PaintBackground(c Canvas) {
	f := s.Frame()
	m := s.cfg.ShadowMargin
	f.Shape.Rect = f.Shape.Rect.Offset(Vec2{m, m})
	DrawBackground(c, f)
}

// PaintOverlay draws the overlay layer into c, whose origin is the surface's
// top-left.
func (s *Surface) PaintOverlay(c Canvas) {
	DrawOverlay(c, s.Frame())
}

// Reset prepares the surface for reuse with a new item: every animated
// property is deactivated so the next assignment snaps, and any ripple is
// dropped. Values derived from the interaction state snap to it at once,
// so a fade cut short by Reset does not linger on the new item.
func (s *Surface) Reset() {
	for _, p := range s.floatProps() {
		p.Reset()
	}
	for _, p := range s.colorProps() {
		p.Reset()
	}
	s.corners.Reset()

	s.anim.Abort(s.rippleInID)
	s.anim.Abort(s.rippleOutID)
	if s.ripple != (Ripple{}) {
		s.ripple = Ripple{}
		s.overlay.Invalidate()
	}
	s.applyStateTargets(s.interaction.State())
}

// Dispose stops all animations, releases both layers and removes the
// surface from its scene. A disposed surface ignores input.
func (s *Surface) Dispose() {
	if s.disposed {
		return
	}
	s.Reset()
	s.background.Dispose()
	s.overlay.Dispose()
	if s.scene != nil {
		s.scene.Remove(s)
	}
	s.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (s *Surface) IsDisposed() bool { return s.disposed }

func (s *Surface) onClick() {
	if s.OnClick != nil {
		s.OnClick(s)
	}
	if s.scene != nil {
		p := s.interaction.PressPoint()
		s.scene.emit(s, InteractionEvent{
			Type: EventClick, State: StatePressed, Prev: StatePressed, X: p.X, Y: p.Y,
		})
	}
}

func (s *Surface) startRipple() {
	s.anim.Abort(s.rippleOutID)
	s.ripple = Ripple{Origin: s.interaction.PressPoint()}
	s.overlay.Invalidate()
	s.anim.Animate(s.rippleInID, s.cfg.RippleInDuration, ease.Linear, func(p float64) {
		s.ripple.In = p
		s.overlay.Invalidate()
	})
}

// rippleHeld reports whether a ripple was started and has not begun fading.
func (s *Surface) rippleHeld() bool {
	return s.ripple.Out == 0 && (s.ripple.In > 0 || s.anim.Running(s.rippleInID))
}

func (s *Surface) applyStateTargets(st InteractionState) {
	s.overlayOpacity.SetTarget(OverlayOpacityForState(st))
	if s.ElevationForState != nil {
		if e := s.ElevationForState(st); !math.IsNaN(e) {
			s.elevation.SetTarget(e)
		}
	}
}

func (s *Surface) onStateChanged(prev InteractionState) {
	st := s.interaction.State()
	Logger().Debug("surface state", "surface", s.Name, "from", prev, "to", st)

	switch {
	case st == StatePressed:
		if s.pressing {
			s.startRipple()
		}
	case prev == StatePressed && s.rippleHeld():
		s.anim.Animate(s.rippleOutID, s.cfg.RippleOutDuration, ease.Linear, func(p float64) {
			s.ripple.Out = p
			s.overlay.Invalidate()
		})
	}

	s.applyStateTargets(st)

	if s.OnStateChange != nil {
		s.OnStateChange(s, prev)
	}
	if s.scene != nil {
		p := s.interaction.PressPoint()
		s.scene.emit(s, InteractionEvent{
			Type: EventStateChanged, State: st, Prev: prev, X: p.X, Y: p.Y,
		})
	}
}
