package material

// InteractionState is the discrete interaction state of a surface. Only
// None, Hovered, Focused and Pressed are produced from input; the rest are
// set by the host and read by the same overlay and elevation rules.
type InteractionState uint8

const (
	StateNone          InteractionState = iota // idle
	StateHovered                               // pointer over the surface without contact
	StateFocused                               // keyboard focus
	StatePressed                               // pointer or finger down on the surface
	StateDragged                               // being dragged by the host
	StateSelected                              // toggled or chosen from a set
	StateScrolledUnder                         // content scrolled underneath
	StateDisabled                              // ignores input
	StateError                                 // invalid
)

var stateNames = [...]string{
	StateNone:          "none",
	StateHovered:       "hovered",
	StateFocused:       "focused",
	StatePressed:       "pressed",
	StateDragged:       "dragged",
	StateSelected:      "selected",
	StateScrolledUnder: "scrolled-under",
	StateDisabled:      "disabled",
	StateError:         "error",
}

func (s InteractionState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// State-layer opacities.
const (
	pressedStateLayerOpacity = 0.12
	focusedStateLayerOpacity = 0.12
	hoveredStateLayerOpacity = 0.08
)

// OverlayOpacityForState returns the state-layer opacity for s.
func OverlayOpacityForState(s InteractionState) float64 {
	switch s {
	case StatePressed:
		return pressedStateLayerOpacity
	case StateFocused:
		return focusedStateLayerOpacity
	case StateHovered:
		return hoveredStateLayerOpacity
	default:
		return 0
	}
}
