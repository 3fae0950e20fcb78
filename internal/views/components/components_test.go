package components

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dostext/internal/config"
	"dostext/internal/models"
)

func TestSelectionRange(t *testing.T) {
	text := []rune("one two one")

	start, end, ok := SelectionRange(text, 7, -1, "two")
	require.True(t, ok)
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)

	start, end, ok = SelectionRange(text, 4, -1, "two")
	require.True(t, ok)
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)

	_, _, ok = SelectionRange(text, 0, -1, "")
	assert.False(t, ok)
	_, _, ok = SelectionRange(text, 2, -1, "two")
	assert.False(t, ok)
}

func TestSelectionRangeUsesAnchorForRepeatedText(t *testing.T) {
	text := []rune("haha")

	start, end, ok := SelectionRange(text, 2, 4, "ha")
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	start, end, ok = SelectionRange(text, 2, 0, "ha")
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	start, end, ok = SelectionRange(text, 2, -1, "ha")
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestTextAreaBackwardKeyboardSelection(t *testing.T) {
	test.NewApp()
	ta := NewTextArea()
	w := test.NewWindow(ta)
	defer w.Close()

	test.Type(ta, "haha")
	ta.KeyDown(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})
	ta.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	ta.TypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	ta.KeyUp(&fyne.KeyEvent{Name: desktop.KeyShiftLeft})

	require.Equal(t, "ha", ta.SelectedText())
	assert.Equal(t, 2, ta.CaretOffset())
	start, end, ok := ta.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	ta.TypedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	_, _, ok = ta.Selection()
	assert.False(t, ok)
}

func TestTextAreaLongLinesDoNotWrap(t *testing.T) {
	test.NewApp()
	ta := NewTextArea()
	w := test.NewWindow(ta)
	w.Resize(fyne.NewSize(200, 200))
	defer w.Close()

	long := strings.Repeat("word ", 80)
	ta.SetText(long + "\nlast line")
	ta.SetCaretOffset(len(long) + 4)

	assert.Equal(t, fyne.TextWrapOff, ta.Wrapping)
	assert.Equal(t, 1, ta.CursorRow)
	assert.Equal(t, 4, ta.CursorColumn)
	assert.Equal(t, len(long)+4, ta.CaretOffset())
}

func TestTextAreaShortcutHooks(t *testing.T) {
	test.NewApp()
	ta := NewTextArea()
	w := test.NewWindow(ta)
	defer w.Close()

	var intercepted, after []string
	ta.SetShortcutHandlers(func(s fyne.Shortcut) bool {
		intercepted = append(intercepted, s.ShortcutName())
		return s.ShortcutName() == "Undo"
	}, func(s fyne.Shortcut) {
		after = append(after, s.ShortcutName())
	})

	test.Type(ta, "hello")
	ta.TypedShortcut(&fyne.ShortcutSelectAll{})

	assert.Equal(t, "hello", ta.SelectedText())
	start, end, ok := ta.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
	assert.Equal(t, []string{"SelectAll"}, intercepted)
	assert.Equal(t, []string{"SelectAll"}, after)
}

func TestTextAreaCaretOffset(t *testing.T) {
	test.NewApp()
	ta := NewTextArea()

	ta.SetText("ab\ncd")
	ta.SetCaretOffset(4)
	assert.Equal(t, 1, ta.CursorRow)
	assert.Equal(t, 1, ta.CursorColumn)
	assert.Equal(t, 4, ta.CaretOffset())
}

func TestPatternFilter(t *testing.T) {
	f := NewPatternFilter([]config.FileType{
		{Name: "Text", Pattern: "*.txt"},
		{Name: "Markdown", Pattern: "*.md"},
	})
	assert.True(t, f.MatchesName("notes.TXT"))
	assert.True(t, f.MatchesName("README.md"))
	assert.False(t, f.MatchesName("main.go"))
	assert.True(t, f.Matches(storage.NewFileURI("/tmp/a.txt")))

	all := NewPatternFilter(config.DefaultFileTypes())
	assert.True(t, all.MatchesName("main.go"))
	assert.True(t, all.MatchesName("Makefile"))
}

func TestToolbarHandlers(t *testing.T) {
	test.NewApp()
	tb := NewToolbar()

	var calls []string
	tb.SetBoldHandler(func() { calls = append(calls, "bold") })
	tb.SetItalicHandler(func() { calls = append(calls, "italic") })
	tb.SetUndoHandler(func() { calls = append(calls, "undo") })
	tb.SetRedoHandler(func() { calls = append(calls, "redo") })

	test.Tap(tb.boldButton)
	test.Tap(tb.italicButton)
	test.Tap(tb.undoButton) // disabled until there is history
	assert.Equal(t, []string{"bold", "italic"}, calls)

	tb.SetHistoryState(true, true)
	test.Tap(tb.undoButton)
	test.Tap(tb.redoButton)
	assert.Equal(t, []string{"bold", "italic", "undo", "redo"}, calls)
}

func TestStatusBar(t *testing.T) {
	test.NewApp()
	sb := NewStatusBar()
	assert.Equal(t, "Ready", sb.GetStatus())
	assert.Equal(t, "Ln 1, Col 1", sb.GetPosition())

	sb.SetStatus("Saved: /tmp/a.txt")
	sb.SetPosition(2, 4)
	sb.SetStats(12, 3)
	assert.Equal(t, "Saved: /tmp/a.txt", sb.GetStatus())
	assert.Equal(t, "Ln 3, Col 5", sb.GetPosition())
	assert.Equal(t, "12 chars, 3 words", sb.GetStats())
}

func TestRichSegments(t *testing.T) {
	segs := RichSegments([]models.Segment{
		{Text: "plain "},
		{Text: "loud", Bold: true, Italic: true, Foreground: "#ff0000"},
	})
	require.Len(t, segs, 2)

	loud, ok := segs[1].(*widget.TextSegment)
	require.True(t, ok)
	assert.Equal(t, "loud", loud.Text)
	assert.True(t, loud.Style.TextStyle.Bold)
	assert.True(t, loud.Style.TextStyle.Italic)
	assert.Equal(t, fyne.ThemeColorName("dostext-fg-ff0000"), loud.Style.ColorName)
	assert.True(t, loud.Style.Inline)
}

func TestColorNameRoundTrip(t *testing.T) {
	c, ok := ParseColorName(ColorNameFor("#00FF00"))
	require.True(t, ok)
	r, g, b, _ := c.RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0}, []uint32{r, g, b})

	_, ok = ParseColorName("foreground")
	assert.False(t, ok)
	_, ok = ParseColorName("dostext-fg-zzzzzz")
	assert.False(t, ok)
}
