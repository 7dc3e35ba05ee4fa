package material

// DefaultTouchSlop is how far a finger may travel from its press point before
// the press is abandoned.
const DefaultTouchSlop = 15.0

// PointerAction is the kind of a PointerEvent.
type PointerAction uint8

const (
	PointerEnter   PointerAction = iota // pointer moved onto the surface
	PointerPress                        // button or finger went down
	PointerRelease                      // button or finger went up
	PointerExit                         // pointer left the surface
	PointerMove                         // pointer moved
	PointerCancel                       // the platform took the gesture away
	FocusIn                             // keyboard focus arrived
	FocusOut                            // keyboard focus left
)

// PointerEvent is one input event in surface-local coordinates.
type PointerEvent struct {
	Action    PointerAction
	Device    DeviceType
	X, Y      float64
	InContact bool // a button or finger is down
	Inside    bool // the location is inside the surface's bounds
}

// Interaction turns input events into an InteractionState. Every change of
// state calls OnStateChanged with the previous state; a release inside the
// surface that ends a press calls OnClick first.
//
// The zero value is ready to use in StateNone with the default touch slop.
type Interaction struct {
	// TouchSlop overrides DefaultTouchSlop when positive.
	TouchSlop float64

	OnStateChanged func(prev InteractionState)
	OnClick        func()

	state  InteractionState
	press  Vec2
	device DeviceType
}

// State returns the current state.
func (in *Interaction) State() InteractionState {
	return in.state
}

// PressPoint returns where the latest press landed.
func (in *Interaction) PressPoint() Vec2 {
	return in.press
}

// Device returns the device of the latest press.
func (in *Interaction) Device() DeviceType {
	return in.device
}

// Set moves to s as an external override and fires OnStateChanged if the
// state changed.
func (in *Interaction) Set(s InteractionState) {
	in.transition(s)
}

// Handle applies one event. Events that do not apply in the current state
// are ignored. A disabled surface ignores all input.
func (in *Interaction) Handle(ev PointerEvent) {
	if in.state == StateDisabled {
		return
	}

	switch ev.Action {
	case PointerEnter:
		if !ev.InContact {
			in.transition(StateHovered)
		}

	case PointerPress:
		in.press = Vec2{ev.X, ev.Y}
		in.device = ev.Device
		in.transition(StatePressed)

	case PointerRelease:
		if !ev.Inside {
			in.transition(StateNone)
			return
		}
		if in.state == StatePressed && in.OnClick != nil {
			in.OnClick()
		}
		if ev.Device.SupportsHover() {
			in.transition(StateHovered)
		} else {
			in.transition(StateNone)
		}

	case PointerExit, PointerCancel:
		in.transition(StateNone)

	case PointerMove:
		if in.state != StatePressed || in.device != DeviceTouch {
			return
		}
		d := Vec2{ev.X - in.press.X, ev.Y - in.press.Y}
		if d.Len() > in.slop() {
			in.transition(StateNone)
		}

	case FocusIn:
		if in.state == StateNone || in.state == StateHovered {
			in.transition(StateFocused)
		}

	case FocusOut:
		if in.state == StateFocused {
			in.transition(StateNone)
		}
	}
}

func (in *Interaction) slop() float64 {
	if in.TouchSlop > 0 {
		return in.TouchSlop
	}
	return DefaultTouchSlop
}

func (in *Interaction) transition(s InteractionState) {
	prev := in.state
	if prev == s {
		return
	}
	in.state = s
	if in.OnStateChanged != nil {
		in.OnStateChanged(prev)
	}
}
