package material

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorRole names one color of a Theme.
type ColorRole string

const (
	RoleNone             ColorRole = ""
	RolePrimary          ColorRole = "primary"
	RoleOnPrimary        ColorRole = "onPrimary"
	RoleSurface          ColorRole = "surface"
	RoleOnSurface        ColorRole = "onSurface"
	RoleSurfaceVariant   ColorRole = "surfaceVariant"
	RoleOnSurfaceVariant ColorRole = "onSurfaceVariant"
	RoleOutline          ColorRole = "outline"
	RoleShadow           ColorRole = "shadow"
)

// Theme is a Material color scheme.
type Theme struct {
	Primary          Color
	OnPrimary        Color
	Surface          Color
	OnSurface        Color
	SurfaceVariant   Color
	OnSurfaceVariant Color
	Outline          Color
	Shadow           Color
}

// DefaultTheme returns the Material baseline light scheme.
func DefaultTheme() Theme {
	return Theme{
		Primary:          mustHex("#6750A4"),
		OnPrimary:        mustHex("#FFFFFF"),
		Surface:          mustHex("#FFFBFE"),
		OnSurface:        mustHex("#1C1B1F"),
		SurfaceVariant:   mustHex("#E7E0EC"),
		OnSurfaceVariant: mustHex("#49454F"),
		Outline:          mustHex("#79747E"),
		Shadow:           mustHex("#000000"),
	}
}

// DarkTheme returns the Material baseline dark scheme.
func DarkTheme() Theme {
	return Theme{
		Primary:          mustHex("#D0BCFF"),
		OnPrimary:        mustHex("#381E72"),
		Surface:          mustHex("#1C1B1F"),
		OnSurface:        mustHex("#E6E1E5"),
		SurfaceVariant:   mustHex("#49454F"),
		OnSurfaceVariant: mustHex("#CAC4D0"),
		Outline:          mustHex("#938F99"),
		Shadow:           mustHex("#000000"),
	}
}

// Color returns the color for role. RoleNone and unknown roles are
// transparent.
func (t Theme) Color(role ColorRole) Color {
	if p := t.slot(role); p != nil {
		return *p
	}
	return ColorTransparent
}

func (t *Theme) slot(role ColorRole) *Color {
	switch role {
	case RolePrimary:
		return &t.Primary
	case RoleOnPrimary:
		return &t.OnPrimary
	case RoleSurface:
		return &t.Surface
	case RoleOnSurface:
		return &t.OnSurface
	case RoleSurfaceVariant:
		return &t.SurfaceVariant
	case RoleOnSurfaceVariant:
		return &t.OnSurfaceVariant
	case RoleOutline:
		return &t.Outline
	case RoleShadow:
		return &t.Shadow
	}
	return nil
}

// ParseTheme reads a JSON object mapping role names to "#rrggbb" colors.
// Roles missing from the document keep their value in base.
//
// Example:
//
//	{"primary": "#006A6A", "onPrimary": "#FFFFFF"}
func ParseTheme(data []byte, base Theme) (Theme, error) {
	var raw map[ColorRole]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return base, fmt.Errorf("material: parse theme: %w", err)
	}
	t := base
	for role, hex := range raw {
		p := t.slot(role)
		if p == nil {
			return base, fmt.Errorf("material: theme: unknown color role %q", role)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return base, fmt.Errorf("material: theme %s: %w", role, err)
		}
		*p = Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return t, nil
}

// LoadTheme reads a theme file in the ParseTheme format, starting from the
// baseline light scheme.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("material: read theme: %w", err)
	}
	t, err := ParseTheme(data, DefaultTheme())
	if err != nil {
		return Theme{}, err
	}
	Logger().Info("theme loaded", "path", path)
	return t, nil
}

func mustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}
