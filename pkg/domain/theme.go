package domain

// Theme is the binary display mode persisted across sessions.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the preference key the theme is stored under.
const ThemeKey = "theme"

// ParseTheme maps a stored or user-supplied value to a Theme.
// Only "dark" and "light" are accepted.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	}
	return ThemeLight, false
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool { return t == ThemeDark }

func (t Theme) String() string { return string(t) }
