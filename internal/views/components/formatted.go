package components

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"dostext/internal/models"
)

const colorNamePrefix = "dostext-fg-"

// ColorNameFor maps a "#rrggbb" tag color onto a theme color name. The
// document theme resolves the name back with ParseColorName.
func ColorNameFor(hex string) fyne.ThemeColorName {
	return fyne.ThemeColorName(colorNamePrefix + strings.TrimPrefix(strings.ToLower(hex), "#"))
}

func ParseColorName(name fyne.ThemeColorName) (color.Color, bool) {
	s := string(name)
	if !strings.HasPrefix(s, colorNamePrefix) {
		return nil, false
	}
	c, err := colorful.Hex("#" + strings.TrimPrefix(s, colorNamePrefix))
	if err != nil {
		return nil, false
	}
	return c, true
}

// FormattedText renders the buffer with its style ranges applied.
type FormattedText struct {
	richText *widget.RichText
	scroll   *container.Scroll
}

func NewFormattedText(wrap bool) *FormattedText {
	ft := &FormattedText{richText: widget.NewRichText()}
	if wrap {
		ft.richText.Wrapping = fyne.TextWrapWord
	}
	ft.scroll = container.NewScroll(ft.richText)
	return ft
}

// Render replaces the rendered content with segs.
func (ft *FormattedText) Render(segs []models.Segment) {
	ft.richText.Segments = RichSegments(segs)
	ft.richText.Refresh()
}

// RichSegments converts style runs into rich text segments.
func RichSegments(segs []models.Segment) []widget.RichTextSegment {
	out := make([]widget.RichTextSegment, 0, len(segs))
	for _, s := range segs {
		style := widget.RichTextStyleInline
		style.TextStyle = fyne.TextStyle{Bold: s.Bold, Italic: s.Italic}
		if s.Foreground != "" {
			style.ColorName = ColorNameFor(s.Foreground)
		}
		out = append(out, &widget.TextSegment{Text: s.Text, Style: style})
	}
	return out
}

func (ft *FormattedText) Segments() []widget.RichTextSegment {
	return ft.richText.Segments
}

func (ft *FormattedText) GetContainer() fyne.CanvasObject {
	return ft.scroll
}
