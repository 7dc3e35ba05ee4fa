package material

// Style is a reusable look for a surface: which theme colors it takes, its
// shape and how its elevation follows the interaction state.
type Style struct {
	Name string

	Color       ColorRole
	StateLayer  ColorRole
	SurfaceTint ColorRole
	Shadow      ColorRole

	Outline      ColorRole
	OutlineWidth float64

	CornerRadius float64

	// Elevation is the resting elevation. StateElevation overrides it for
	// the listed states.
	Elevation      float64
	StateElevation map[InteractionState]float64
}

// Material component styles.
var (
	FilledButton = Style{
		Name:           "filled-button",
		Color:          RolePrimary,
		StateLayer:     RoleOnPrimary,
		SurfaceTint:    RolePrimary,
		Shadow:         RoleShadow,
		CornerRadius:   20,
		StateElevation: map[InteractionState]float64{StateHovered: 1},
	}

	ElevatedButton = Style{
		Name:         "elevated-button",
		Color:        RoleSurface,
		StateLayer:   RolePrimary,
		SurfaceTint:  RolePrimary,
		Shadow:       RoleShadow,
		CornerRadius: 20,
		StateElevation: map[InteractionState]float64{
			StatePressed: 12,
			StateHovered: 1,
		},
	}

	FilledCard = Style{
		Name:           "filled-card",
		Color:          RoleSurfaceVariant,
		StateLayer:     RoleOnSurfaceVariant,
		SurfaceTint:    RolePrimary,
		Shadow:         RoleShadow,
		CornerRadius:   12,
		StateElevation: map[InteractionState]float64{StateHovered: 1},
	}

	OutlinedCard = Style{
		Name:           "outlined-card",
		Color:          RoleSurface,
		StateLayer:     RoleOnSurface,
		SurfaceTint:    RolePrimary,
		Shadow:         RoleShadow,
		Outline:        RoleOutline,
		OutlineWidth:   1,
		CornerRadius:   12,
		StateElevation: map[InteractionState]float64{StateHovered: 1},
	}
)

// ElevationFor returns the elevation the style wants in state st.
func (st Style) ElevationFor(s InteractionState) float64 {
	if e, ok := st.StateElevation[s]; ok {
		return e
	}
	return st.Elevation
}

// Apply sets s's targets from the style and theme and installs the style's
// elevation rule. Before s has been drawn the values snap; afterwards they
// animate, so applying a new theme to a visible surface cross-fades it.
func (st Style) Apply(s *Surface, t Theme) {
	s.SetColor(t.Color(st.Color))
	s.SetStateLayerColor(t.Color(st.StateLayer))
	s.SetSurfaceTint(t.Color(st.SurfaceTint))
	if st.Shadow != RoleNone {
		s.SetShadowColor(t.Color(st.Shadow))
	}
	s.SetCorners(UniformCorners(st.CornerRadius))
	if st.Outline != RoleNone && st.OutlineWidth > 0 {
		s.SetOutline(t.Color(st.Outline), st.OutlineWidth)
	} else {
		s.SetOutline(ColorTransparent, 0)
	}
	s.ElevationForState = st.ElevationFor
	s.SetElevation(st.ElevationFor(s.State()))
}
