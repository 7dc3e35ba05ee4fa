package material

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge. For
// EventStateChanged, State is the new state and Prev the old one. For
// EventClick both are Pressed. X and Y are the press point in surface-local
// coordinates.
type InteractionEvent struct {
	Type    EventType
	Surface string
	State   InteractionState
	Prev    InteractionState
	X, Y    float64
}

// Scene owns an ordered list of surfaces, the animator driving all of their
// properties and the pointer routing into them. Surfaces added later are
// drawn above and hit-tested before earlier ones.
type Scene struct {
	// ClearColor fills the screen before surfaces are drawn. Transparent
	// leaves the screen as it is.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	anim     *Animator
	surfaces []*Surface
	store    EntityStore
	debug    bool
	updateFn func() error

	// Input state
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	focus        *Surface

	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates an empty scene with its own animator.
func NewScene() *Scene {
	return &Scene{
		anim:          NewAnimator(),
		ScreenshotDir: "screenshots",
	}
}

// Animator returns the animator that drives the scene's surfaces.
func (s *Scene) Animator() *Animator {
	return s.anim
}

// NewSurface creates a surface driven by the scene's animator and adds it on
// top of the others.
func (s *Scene) NewSurface(name string, cfg SurfaceConfig) *Surface {
	sf := NewSurface(name, s.anim, cfg)
	s.Add(sf)
	return sf
}

// Add puts sf on top of the scene. A surface already in a scene is moved.
func (s *Scene) Add(sf *Surface) {
	if s.debug {
		debugCheckDisposed(sf, "Add")
	}
	if sf.disposed {
		return
	}
	if sf.scene != nil {
		sf.scene.Remove(sf)
	}
	sf.scene = s
	s.surfaces = append(s.surfaces, sf)
	if s.debug {
		debugCheckSurfaceCount(len(s.surfaces))
	}
}

// Remove takes sf out of the scene and releases any pointer captured by it.
func (s *Scene) Remove(sf *Surface) {
	for i, c := range s.surfaces {
		if c != sf {
			continue
		}
		s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
		sf.scene = nil
		for p := range s.pointers {
			ps := &s.pointers[p]
			if ps.captured == sf {
				ps.captured = nil
			}
			if ps.hover == sf {
				ps.hover = nil
			}
		}
		if s.focus == sf {
			s.focus = nil
		}
		return
	}
}

// Surfaces returns the surfaces bottom to top. The returned slice MUST NOT
// be mutated.
func (s *Scene) Surfaces() []*Surface {
	return s.surfaces
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed
// surface use panics and per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetUpdateFunc sets a callback run once per Update after animations and
// input. A non-nil error stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFn = fn
}

// Update advances animations by one tick, then processes input and the test
// runner.
func (s *Scene) Update() error {
	s.Advance(float32(1.0 / float64(ebiten.TPS())))
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.updateFn != nil {
		return s.updateFn()
	}
	return nil
}

// Advance moves every running animation forward by dt seconds.
func (s *Scene) Advance(dt float32) {
	s.anim.Update(dt)
}

// Draw repaints dirty layers and composites every surface onto screen,
// background then overlay, bottom to top.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	for _, sf := range s.surfaces {
		b := sf.bounds
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		bgRect := sf.BackgroundRect()

		bgRepaint := sf.background.Dirty()
		ovRepaint := sf.overlay.Dirty()
		bg := sf.background.Flush(ceil(bgRect.Width), ceil(bgRect.Height), sf.PaintBackground)
		ov := sf.overlay.Flush(ceil(b.Width), ceil(b.Height), sf.PaintOverlay)
		if bgRepaint {
			stats.repaints++
		}
		if ovRepaint {
			stats.repaints++
		}

		var op ebiten.DrawImageOptions
		op.GeoM.Translate(bgRect.X, bgRect.Y)
		screen.DrawImage(bg, &op)

		op.GeoM.Reset()
		op.GeoM.Translate(b.X, b.Y)
		screen.DrawImage(ov, &op)
		stats.surfaces++
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		stats.animations = s.anim.Len()
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

func (s *Scene) emit(sf *Surface, ev InteractionEvent) {
	if s.store == nil {
		return
	}
	ev.Surface = sf.Name
	s.store.EmitEvent(ev)
}

func ceil(v float64) int {
	i := int(v)
	if float64(i) < v {
		i++
	}
	return i
}
