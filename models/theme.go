package models

// Theme is the UI colour scheme flag persisted alongside the collections.
type Theme string

const (
	// ThemeLight is the light colour scheme.
	ThemeLight Theme = "light"

	// ThemeDark is the dark colour scheme and the default when no
	// preference has been persisted yet.
	ThemeDark Theme = "dark"
)

// DefaultTheme is applied when the persisted slot is absent or holds an
// unrecognized value. The default is literal dark; no system preference
// is consulted.
const DefaultTheme = ThemeDark

// ParseTheme maps a raw persisted string to a Theme, falling back to
// DefaultTheme for anything unrecognized.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s)
	default:
		return DefaultTheme
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
