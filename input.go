package material

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	device   DeviceType
	lastX    float64
	lastY    float64
	captured *Surface // surface that received the press, until release
	hover    *Surface // surface the mouse is over without a button down
}

// hitTest returns the topmost interactable surface containing (x, y), or nil.
func (s *Scene) hitTest(x, y float64) *Surface {
	for i := len(s.surfaces) - 1; i >= 0; i-- {
		sf := s.surfaces[i]
		if sf.Interactable && !sf.disposed && sf.Contains(x, y) {
			return sf
		}
	}
	return nil
}

// processInput is called from Scene.Update() to handle all mouse and touch
// input. An injected event replaces real mouse input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
	s.processKeyboard()
}

// processKeyboard moves focus with Tab and Shift+Tab.
func (s *Scene) processKeyboard() {
	if !inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		return
	}
	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = -1
	}
	s.FocusNext(step)
}

// Focused returns the surface holding keyboard focus, or nil.
func (s *Scene) Focused() *Surface {
	return s.focus
}

// SetFocus moves keyboard focus to sf, or clears it when sf is nil.
func (s *Scene) SetFocus(sf *Surface) {
	if sf == s.focus {
		return
	}
	if old := s.focus; old != nil {
		old.HandlePointer(PointerEvent{Action: FocusOut})
	}
	s.focus = sf
	if sf != nil {
		sf.HandlePointer(PointerEvent{Action: FocusIn})
	}
}

// FocusNext moves focus step interactable surfaces forward (or backward when
// negative) in drawing order, wrapping around.
func (s *Scene) FocusNext(step int) {
	var candidates []*Surface
	cur := -1
	for _, sf := range s.surfaces {
		if !sf.Interactable || sf.disposed {
			continue
		}
		if sf == s.focus {
			cur = len(candidates)
		}
		candidates = append(candidates, sf)
	}
	n := len(candidates)
	if n == 0 {
		s.SetFocus(nil)
		return
	}
	next := 0
	if cur >= 0 {
		next = ((cur+step)%n + n) % n
	} else if step < 0 {
		next = n - 1
	}
	s.SetFocus(candidates[next])
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed, DevicePointer)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, DeviceTouch)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, DeviceTouch)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns one pointer sample in scene coordinates into surface
// events. A press captures its surface: moves and the release go there even
// when the pointer has left it, and hover changes are held back until the
// release.
func (s *Scene) processPointer(id int, x, y float64, pressed bool, device DeviceType) {
	ps := &s.pointers[id]

	if !ps.down && device.SupportsHover() {
		s.updateHover(ps, x, y)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.device = device
		ps.captured = s.hitTest(x, y)
		if sf := ps.captured; sf != nil {
			sf.HandlePointer(s.pointerEvent(sf, PointerPress, device, x, y, true))
		}

	case !pressed && ps.down:
		ps.down = false
		sf := ps.captured
		ps.captured = nil
		if sf != nil {
			ev := s.pointerEvent(sf, PointerRelease, ps.device, x, y, false)
			sf.HandlePointer(ev)
			if ev.Inside && device.SupportsHover() {
				ps.hover = sf
			} else if ps.hover == sf {
				ps.hover = nil
			}
		}
		if device.SupportsHover() {
			s.updateHover(ps, x, y)
		}

	case pressed && ps.down:
		if sf := ps.captured; sf != nil && (x != ps.lastX || y != ps.lastY) {
			sf.HandlePointer(s.pointerEvent(sf, PointerMove, ps.device, x, y, true))
		}
	}

	ps.lastX = x
	ps.lastY = y
}

// updateHover sends exit and enter events when the surface under a
// hover-capable pointer changes.
func (s *Scene) updateHover(ps *pointerState, x, y float64) {
	target := s.hitTest(x, y)
	if target == ps.hover {
		return
	}
	if old := ps.hover; old != nil {
		old.HandlePointer(s.pointerEvent(old, PointerExit, DevicePointer, x, y, false))
	}
	if target != nil {
		target.HandlePointer(s.pointerEvent(target, PointerEnter, DevicePointer, x, y, false))
	}
	ps.hover = target
}

// pointerEvent builds an event for sf from a scene-space sample.
func (s *Scene) pointerEvent(sf *Surface, a PointerAction, device DeviceType, x, y float64, contact bool) PointerEvent {
	b := sf.Bounds()
	return PointerEvent{
		Action:    a,
		Device:    device,
		X:         x - b.X,
		Y:         y - b.Y,
		InContact: contact,
		Inside:    sf.Contains(x, y),
	}
}

// CancelPointers abandons every press and hover in progress, as when the
// window loses focus.
func (s *Scene) CancelPointers() {
	for i := range s.pointers {
		ps := &s.pointers[i]
		for _, sf := range [...]*Surface{ps.captured, ps.hover} {
			if sf != nil {
				sf.HandlePointer(PointerEvent{Action: PointerCancel, Device: ps.device})
			}
		}
		*ps = pointerState{}
	}
}
