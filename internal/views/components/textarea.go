package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"dostext/internal/models"
)

// TextArea is a multi-line entry that lets its owner see keyboard shortcuts.
// Intercept runs first and may consume a shortcut; AfterShortcut runs once
// the entry has handled one (cut, copy and paste in particular).
//
// The entry never wraps: CursorRow and CursorColumn then name a line and a
// rune within it, which is what the offset conversions rely on. Long lines
// scroll horizontally.
type TextArea struct {
	widget.Entry

	intercept     func(fyne.Shortcut) bool
	afterShortcut func(fyne.Shortcut)

	// anchor is the fixed end of the current selection, -1 when unknown.
	anchor int
}

func NewTextArea() *TextArea {
	t := &TextArea{anchor: -1}
	t.MultiLine = true
	t.Wrapping = fyne.TextWrapOff
	t.ExtendBaseWidget(t)
	return t
}

func (t *TextArea) SetShortcutHandlers(intercept func(fyne.Shortcut) bool, after func(fyne.Shortcut)) {
	t.intercept = intercept
	t.afterShortcut = after
}

// TypedShortcut overrides widget.Entry.
func (t *TextArea) TypedShortcut(s fyne.Shortcut) {
	if t.intercept != nil && t.intercept(s) {
		return
	}
	if _, ok := s.(*fyne.ShortcutSelectAll); ok {
		t.anchor = 0
	}
	t.Entry.TypedShortcut(s)
	if t.afterShortcut != nil {
		t.afterShortcut(s)
	}
}

// TypedKey overrides widget.Entry to note where a keyboard selection starts.
func (t *TextArea) TypedKey(key *fyne.KeyEvent) {
	t.trackAnchor(func() { t.Entry.TypedKey(key) })
}

// Tapped overrides widget.Entry; a shift click can start a selection.
func (t *TextArea) Tapped(e *fyne.PointEvent) {
	t.trackAnchor(func() { t.Entry.Tapped(e) })
}

// TypedRune overrides widget.Entry. Typing replaces any selection.
func (t *TextArea) TypedRune(r rune) {
	t.Entry.TypedRune(r)
	t.anchor = -1
}

// Dragged overrides widget.Entry to note where a mouse selection starts.
func (t *TextArea) Dragged(d *fyne.DragEvent) {
	t.trackAnchor(func() { t.Entry.Dragged(d) })
}

// DoubleTapped selects a word; the caret ends up at its end.
func (t *TextArea) DoubleTapped(e *fyne.PointEvent) {
	t.Entry.DoubleTapped(e)
	t.anchor = -1
}

// trackAnchor records the caret as the anchor when fn starts a selection.
func (t *TextArea) trackAnchor(fn func()) {
	hadSelection := t.SelectedText() != ""
	before := t.CaretOffset()
	fn()
	switch {
	case t.SelectedText() == "":
		t.anchor = -1
	case !hadSelection:
		t.anchor = before
	}
}

// CaretOffset returns the cursor as a rune offset into Text.
func (t *TextArea) CaretOffset() int {
	return models.OffsetOf([]rune(t.Text), t.CursorRow, t.CursorColumn)
}

// SetCaretOffset moves the cursor to the rune offset p.
func (t *TextArea) SetCaretOffset(p int) {
	row, col := models.LineColumnOf([]rune(t.Text), p)
	t.CursorRow = row
	t.CursorColumn = col
	t.Refresh()
}

// Selection returns the selected interval, if any.
func (t *TextArea) Selection() (int, int, bool) {
	return SelectionRange([]rune(t.Text), t.CaretOffset(), t.anchor, t.SelectedText())
}

// SelectionRange locates the selected text next to the caret. The entry only
// exposes the selected text and the cursor, and the cursor always sits at
// one end of the selection. A known anchor (>= 0) decides which end; without
// one the selection is taken to end at the caret when both sides match.
func SelectionRange(text []rune, caret, anchor int, selected string) (int, int, bool) {
	sel := []rune(selected)
	n := len(sel)
	if n == 0 || caret < 0 || caret > len(text) {
		return 0, 0, false
	}
	before := caret-n >= 0 && equalRunes(text[caret-n:caret], sel)
	after := caret+n <= len(text) && equalRunes(text[caret:caret+n], sel)

	if after && anchor == caret+n {
		return caret, caret + n, true
	}
	if before {
		return caret - n, caret, true
	}
	if after {
		return caret, caret + n, true
	}
	return 0, 0, false
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
