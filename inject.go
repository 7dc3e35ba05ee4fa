package material

// touchInjectSlot is the pointer slot injected touch events use.
const touchInjectSlot = 1

// syntheticPointerEvent represents a single injected pointer event in scene
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	device  DeviceType
}

func (s *Scene) inject(x, y float64, pressed bool, device DeviceType) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: pressed,
		device:  device,
	})
}

// InjectHover queues a mouse move to (x, y) with no button held. The event
// is consumed on the next frame's processInput call.
func (s *Scene) InjectHover(x, y float64) {
	s.inject(x, y, false, DevicePointer)
}

// InjectPress queues a left mouse button press at (x, y).
func (s *Scene) InjectPress(x, y float64) {
	s.inject(x, y, true, DevicePointer)
}

// InjectMove queues a mouse move to (x, y) with the button held down.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(x, y, true, DevicePointer)
}

// InjectRelease queues a mouse button release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(x, y, false, DevicePointer)
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectTouchPress queues a finger landing at (x, y).
func (s *Scene) InjectTouchPress(x, y float64) {
	s.inject(x, y, true, DeviceTouch)
}

// InjectTouchMove queues a finger moving to (x, y).
func (s *Scene) InjectTouchMove(x, y float64) {
	s.inject(x, y, true, DeviceTouch)
}

// InjectTouchRelease queues a finger lifting at (x, y).
func (s *Scene) InjectTouchRelease(x, y float64) {
	s.inject(x, y, false, DeviceTouch)
}

// InjectTap queues a finger press and release at (x, y). Consumes two frames.
func (s *Scene) InjectTap(x, y float64) {
	s.InjectTouchPress(x, y)
	s.InjectTouchRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves
// and a release at (toX, toY), all from the given device. Minimum frames
// is 2.
func (s *Scene) InjectDrag(device DeviceType, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.inject(fromX, fromY, true, device)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.inject(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, true, device)
	}
	s.inject(toX, toY, false, device)
}

// PendingInjections returns how many injected events have not been
// consumed yet.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real input
// should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	slot := 0
	if evt.device == DeviceTouch {
		slot = touchInjectSlot
	}
	s.processPointer(slot, evt.x, evt.y, evt.pressed, evt.device)
	return true
}
