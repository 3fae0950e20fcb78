package views

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"dostext/internal/views/components"
)

// documentTheme resolves tag color names and applies the whole-widget
// foreground and background on top of the default theme.
type documentTheme struct {
	fyne.Theme
	foreground color.Color
	background color.Color
}

func newDocumentTheme(fg, bg color.Color) *documentTheme {
	return &documentTheme{Theme: theme.DefaultTheme(), foreground: fg, background: bg}
}

func (t *documentTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := components.ParseColorName(name); ok {
		return c
	}
	switch name {
	case theme.ColorNameForeground:
		if t.foreground != nil {
			return t.foreground
		}
	case theme.ColorNameInputBackground, theme.ColorNameBackground:
		if t.background != nil {
			return t.background
		}
	}
	return t.Theme.Color(name, variant)
}
