package material

import (
	"sync/atomic"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationID keys a run in an Animator. At most one run per ID is live.
type AnimationID uint64

var animationIDCounter atomic.Uint64

// NewAnimationID returns an ID no other caller has been given. Safe for
// concurrent use.
func NewAnimationID() AnimationID {
	return AnimationID(animationIDCounter.Add(1))
}

type animationRun struct {
	id         AnimationID
	tween      *gween.Tween
	onProgress func(p float64)
	stopped    bool
}

// Animator drives progress callbacks once per frame. Each run advances a
// progress value from 0 to 1 through a gween tween; the last callback of a
// run that completes is always p = 1.
//
// Starting a run under an ID that is already running aborts the old run
// first. An aborted run never calls back again. There is no queue: rapid
// restarts always supersede.
//
// Animator is not safe for concurrent use; drive it from the frame loop.
type Animator struct {
	runs []*animationRun
	byID map[AnimationID]*animationRun
}

// NewAnimator creates an idle animator.
func NewAnimator() *Animator {
	return &Animator{byID: make(map[AnimationID]*animationRun)}
}

// Animate starts a run under id lasting duration, shaping progress with fn
// (ease.Linear when nil). Runs started from inside a progress callback first
// tick on the next Update. A non-positive duration completes immediately
// with a single p = 1 callback.
func (a *Animator) Animate(id AnimationID, duration time.Duration, fn ease.TweenFunc, onProgress func(p float64)) {
	a.Abort(id)
	if duration <= 0 {
		if onProgress != nil {
			onProgress(1)
		}
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	r := &animationRun{
		id:         id,
		tween:      gween.New(0, 1, float32(duration.Seconds()), fn),
		onProgress: onProgress,
	}
	a.runs = append(a.runs, r)
	a.byID[id] = r
	Logger().Debug("animation start", "id", id, "duration", duration)
}

// Abort stops the run under id, if any. Safe to call for unknown IDs.
func (a *Animator) Abort(id AnimationID) {
	r, ok := a.byID[id]
	if !ok {
		return
	}
	r.stopped = true
	delete(a.byID, id)
	Logger().Debug("animation abort", "id", id)
}

// Running reports whether a run under id is live.
func (a *Animator) Running(id AnimationID) bool {
	_, ok := a.byID[id]
	return ok
}

// Len returns the number of live runs.
func (a *Animator) Len() int {
	return len(a.byID)
}

// Update advances every live run by dt seconds and calls its progress
// callback. Runs that reach the end are retired after their p = 1 callback.
func (a *Animator) Update(dt float32) {
	n := len(a.runs)
	for i := 0; i < n; i++ {
		r := a.runs[i]
		if r.stopped {
			continue
		}
		v, finished := r.tween.Update(dt)
		p := float64(v)
		if finished {
			p = 1
			r.stopped = true
			if a.byID[r.id] == r {
				delete(a.byID, r.id)
			}
		}
		if r.onProgress != nil {
			r.onProgress(p)
		}
	}

	live := a.runs[:0]
	for _, r := range a.runs {
		if !r.stopped {
			live = append(live, r)
		}
	}
	for i := len(live); i < len(a.runs); i++ {
		a.runs[i] = nil
	}
	a.runs = live
}

// Lerper interpolates between a and b at t, where t is normally in [0, 1].
type Lerper[T any] func(a, b T, t float64) T

// LerpFloat interpolates scalars linearly.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor interpolates each of the four channels independently.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: LerpFloat(a.R, b.R, t),
		G: LerpFloat(a.G, b.G, t),
		B: LerpFloat(a.B, b.B, t),
		A: LerpFloat(a.A, b.A, t),
	}
}

// LerpCorners interpolates each of the four corner radii independently.
func LerpCorners(a, b CornerRadii, t float64) CornerRadii {
	return CornerRadii{
		TopLeft:     LerpFloat(a.TopLeft, b.TopLeft, t),
		TopRight:    LerpFloat(a.TopRight, b.TopRight, t),
		BottomRight: LerpFloat(a.BottomRight, b.BottomRight, t),
		BottomLeft:  LerpFloat(a.BottomLeft, b.BottomLeft, t),
	}
}

// Animated is a property that tweens toward its target whenever the target
// changes.
//
// It starts unactivated. Until Current is read for the first time, target
// changes snap: the new value becomes current at once and invalidate is
// called, with no animation. This keeps a freshly configured surface from
// animating out of its placeholder values. Once activated, a target change
// freezes the live value as the new start (redirecting any in-flight run
// from where it is) and animates to the target over the property's duration.
type Animated[T comparable] struct {
	anim       *Animator
	id         AnimationID
	lerp       Lerper[T]
	invalidate func()
	duration   time.Duration
	easing     ease.TweenFunc

	start, current, target T
	activated              bool
}

// NewAnimated creates a property holding initial as its start, current and
// target value. invalidate may be nil.
func NewAnimated[T comparable](anim *Animator, initial T, duration time.Duration, lerp Lerper[T], invalidate func()) *Animated[T] {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Animated[T]{
		anim:       anim,
		id:         NewAnimationID(),
		lerp:       lerp,
		invalidate: invalidate,
		duration:   duration,
		start:      initial,
		current:    initial,
		target:     initial,
	}
}

// AnimatedFloat is a tweened scalar such as elevation or an opacity.
type AnimatedFloat = Animated[float64]

// AnimatedColor is a tweened color.
type AnimatedColor = Animated[Color]

// AnimatedCorners is a tweened set of corner radii.
type AnimatedCorners = Animated[CornerRadii]

// SetEasing sets the curve applied to progress. nil means linear.
func (a *Animated[T]) SetEasing(fn ease.TweenFunc) {
	a.easing = fn
}

// ID returns the key this property's runs are scheduled under.
func (a *Animated[T]) ID() AnimationID {
	return a.id
}

// Current returns the live value and activates the property.
func (a *Animated[T]) Current() T {
	a.activated = true
	return a.current
}

// peek returns the live value without activating the property.
func (a *Animated[T]) peek() T {
	return a.current
}

// Target returns the value the property is at or heading to.
func (a *Animated[T]) Target() T {
	return a.target
}

// Start returns the value the latest animation began from.
func (a *Animated[T]) Start() T {
	return a.start
}

// Activated reports whether Current has been read since creation or the
// last Reset.
func (a *Animated[T]) Activated() bool {
	return a.activated
}

// SetTarget retargets the property. Assigning the existing target is a no-op
// unless the property was Reset while short of it, in which case it snaps.
func (a *Animated[T]) SetTarget(v T) {
	if v == a.target && (a.activated || a.current == v) {
		return
	}
	a.target = v

	if !a.activated {
		a.start = v
		a.current = v
		a.invalidate()
		return
	}

	a.start = a.current
	a.anim.Animate(a.id, a.duration, a.easing, a.step)
}

func (a *Animated[T]) step(p float64) {
	if p >= 1 {
		a.current = a.target
		a.invalidate()
		return
	}
	a.current = a.lerp(a.start, a.target, p)
	a.invalidate()
}

// Reset deactivates the property so the next target change snaps, and
// aborts any in-flight run. Current and target are left as they are. Call it
// before rebinding a recycled surface to a new item.
func (a *Animated[T]) Reset() {
	a.activated = false
	a.anim.Abort(a.id)
}
