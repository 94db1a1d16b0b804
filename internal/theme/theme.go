// Package theme resolves the visitor's light/dark preference.
//
// A persisted choice (the theme cookie) always wins. Without one, the
// client hint for the OS color scheme is used, and light is the fallback.
package theme

import "strings"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

const (
	// CookieName stores the persisted preference.
	CookieName = "theme"
	// HintHeader carries the OS preference when the browser sends it.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"
)

// Parse returns the theme named by s and whether it was recognized.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Resolve picks the theme from a persisted value and the OS hint.
func Resolve(persisted, hint string) Theme {
	if t, ok := Parse(persisted); ok {
		return t
	}
	if t, ok := Parse(strings.Trim(hint, `"`)); ok {
		return t
	}
	return Light
}

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Class is the CSS class applied to the document root.
func (t Theme) Class() string {
	if t == Dark {
		return "dark"
	}
	return ""
}
