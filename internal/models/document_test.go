package models

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func fgTag(t *testing.T, c color.Color) Tag {
	t.Helper()
	tag, ok := ForegroundTag(c)
	require.True(t, ok)
	return tag
}

func newDoc(t *testing.T, text string) *Document {
	t.Helper()
	d := NewDocument(100)
	d.Load(text)
	return d
}

func TestToggleBoldTwiceRestoresOriginal(t *testing.T) {
	d := newDoc(t, "Hello, World!")
	d.SelectAll()
	sel, ok := d.Selection()
	require.True(t, ok)

	assert.True(t, d.ToggleTag(TagBold, sel))
	want := []StyleRange{{Start: 0, End: 13, Tag: TagBold}}
	if diff := cmp.Diff(want, d.Ranges()); diff != "" {
		t.Fatalf("ranges after first toggle (-want +got):\n%s", diff)
	}

	assert.False(t, d.ToggleTag(TagBold, sel))
	assert.Empty(t, d.Ranges())
	assert.Equal(t, "Hello, World!", d.Text())
}

func TestToggleChecksOnlySelectionStart(t *testing.T) {
	d := newDoc(t, "abcdef")
	d.AddTag(TagItalic, 2, 4)

	// Starts untagged, so the whole selection becomes italic.
	assert.True(t, d.ToggleTag(TagItalic, Selection{Start: 0, End: 3}))
	assert.Equal(t, []StyleRange{{Start: 0, End: 4, Tag: TagItalic}}, d.Ranges())

	// Starts tagged, so the whole selection loses it.
	assert.False(t, d.ToggleTag(TagItalic, Selection{Start: 3, End: 6}))
	assert.Equal(t, []StyleRange{{Start: 0, End: 3, Tag: TagItalic}}, d.Ranges())
}

func TestAddTagMergesTouchingRanges(t *testing.T) {
	d := newDoc(t, "0123456789")
	d.AddTag(TagBold, 0, 3)
	d.AddTag(TagBold, 5, 7)
	d.AddTag(TagBold, 3, 5)

	assert.Equal(t, []StyleRange{{Start: 0, End: 7, Tag: TagBold}}, d.Ranges())
}

func TestRemoveTagSplitsRange(t *testing.T) {
	d := newDoc(t, "0123456789")
	d.AddTag(TagBold, 0, 10)
	d.RemoveTag(TagBold, 3, 6)

	want := []StyleRange{
		{Start: 0, End: 3, Tag: TagBold},
		{Start: 6, End: 10, Tag: TagBold},
	}
	if diff := cmp.Diff(want, d.Ranges()); diff != "" {
		t.Fatalf("ranges (-want +got):\n%s", diff)
	}
}

func TestForegroundReplacesOtherColors(t *testing.T) {
	d := newDoc(t, "0123456789")
	blue := color.RGBA{B: 0xff, A: 0xff}
	d.AddTag(fgTag(t, red), 0, 10)
	d.AddTag(fgTag(t, blue), 4, 6)

	want := []StyleRange{
		{Start: 0, End: 4, Tag: Tag{Kind: StyleForeground, Color: "#ff0000"}},
		{Start: 4, End: 6, Tag: Tag{Kind: StyleForeground, Color: "#0000ff"}},
		{Start: 6, End: 10, Tag: Tag{Kind: StyleForeground, Color: "#ff0000"}},
	}
	if diff := cmp.Diff(want, d.Ranges()); diff != "" {
		t.Fatalf("ranges (-want +got):\n%s", diff)
	}
}

func TestInsertShiftsAndExtendsRanges(t *testing.T) {
	d := newDoc(t, "abcdef")
	d.AddTag(TagBold, 2, 4)

	d.Insert(3, "XY") // strictly inside
	assert.Equal(t, []StyleRange{{Start: 2, End: 6, Tag: TagBold}}, d.Ranges())

	d.Insert(2, "<") // at start boundary
	assert.Equal(t, []StyleRange{{Start: 3, End: 7, Tag: TagBold}}, d.Ranges())

	d.Insert(7, ">") // at end boundary
	assert.Equal(t, []StyleRange{{Start: 3, End: 7, Tag: TagBold}}, d.Ranges())
	assert.Equal(t, "ab<cXYd>ef", d.Text())
}

func TestDeleteCollapsesRanges(t *testing.T) {
	d := newDoc(t, "0123456789")
	d.AddTag(TagBold, 2, 4)
	d.AddTag(TagBold, 6, 8)

	d.Delete(3, 7)
	assert.Equal(t, "012789", d.Text())
	assert.Equal(t, []StyleRange{{Start: 2, End: 4, Tag: TagBold}}, d.Ranges())

	d.Delete(0, 6)
	assert.Empty(t, d.Ranges())
	assert.True(t, d.IsEmpty())
}

func TestReplaceKeepsStylesOutsideEdit(t *testing.T) {
	d := newDoc(t, "Hello, World!")
	d.AddTag(TagBold, 0, 5)

	assert.True(t, d.Replace("Hello, Go World!"))
	assert.Equal(t, "Hello, Go World!", d.Text())
	assert.Equal(t, []StyleRange{{Start: 0, End: 5, Tag: TagBold}}, d.Ranges())

	assert.False(t, d.Replace("Hello, Go World!"))
}

func TestInsertAtCaretReplacesSelection(t *testing.T) {
	d := newDoc(t, "one two three")
	d.SetSelection(4, 7)
	d.InsertAtCaret("2")

	assert.Equal(t, "one 2 three", d.Text())
	assert.Equal(t, 5, d.Caret())
	_, ok := d.Selection()
	assert.False(t, ok)
}

func TestUndoRedo(t *testing.T) {
	d := newDoc(t, "abc")
	d.Insert(3, "d")
	d.AddTag(TagBold, 0, 2)

	require.True(t, d.Undo())
	assert.Empty(t, d.Ranges())
	require.True(t, d.Undo())
	assert.Equal(t, "abc", d.Text())
	assert.False(t, d.Undo())

	require.True(t, d.Redo())
	assert.Equal(t, "abcd", d.Text())
	require.True(t, d.Redo())
	assert.Equal(t, []StyleRange{{Start: 0, End: 2, Tag: TagBold}}, d.Ranges())
	assert.False(t, d.Redo())
}

func TestHistoryLimit(t *testing.T) {
	d := NewDocument(2)
	d.Insert(0, "a")
	d.Insert(1, "b")
	d.Insert(2, "c")

	assert.True(t, d.Undo())
	assert.True(t, d.Undo())
	assert.False(t, d.Undo())
	assert.Equal(t, "a", d.Text())
}

func TestNewEditClearsRedo(t *testing.T) {
	d := newDoc(t, "a")
	d.Insert(1, "b")
	d.Undo()
	d.Insert(1, "c")
	assert.False(t, d.CanRedo())
}

func TestLoadResetsState(t *testing.T) {
	d := newDoc(t, "abc")
	d.AddTag(TagBold, 0, 3)
	d.SelectAll()
	assert.True(t, d.Modified())

	d.Reset()
	assert.True(t, d.IsEmpty())
	assert.Empty(t, d.Ranges())
	assert.False(t, d.CanUndo())
	assert.False(t, d.Modified())
	_, ok := d.Selection()
	assert.False(t, ok)
}

func TestSetSelectionNormalizes(t *testing.T) {
	d := newDoc(t, "abcdef")
	d.SetSelection(5, 1)
	sel, ok := d.Selection()
	require.True(t, ok)
	assert.Equal(t, Selection{Start: 1, End: 5}, sel)

	d.SetSelection(3, 3)
	_, ok = d.Selection()
	assert.False(t, ok)

	d.SetSelection(-4, 99)
	sel, _ = d.Selection()
	assert.Equal(t, Selection{Start: 0, End: 6}, sel)
}

func TestLineColumnAndOffset(t *testing.T) {
	d := newDoc(t, "ab\ncde\n\nf")

	line, col := d.LineColumn(5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 2, col)

	text := []rune(d.Text())
	assert.Equal(t, 5, OffsetOf(text, 1, 2))
	assert.Equal(t, 6, OffsetOf(text, 1, 99))
	assert.Equal(t, 7, OffsetOf(text, 2, 0))
	assert.Equal(t, 9, OffsetOf(text, 3, 1))
	assert.Equal(t, 9, OffsetOf(text, 10, 0))
	assert.Equal(t, 0, OffsetOf(text, -1, -1))

	line, col = LineColumnOf(text, 99)
	assert.Equal(t, 3, line)
	assert.Equal(t, 1, col)
}

func TestSegments(t *testing.T) {
	d := newDoc(t, "plain bold both")
	d.AddTag(TagBold, 6, 15)
	d.AddTag(TagItalic, 11, 15)
	d.AddTag(fgTag(t, red), 11, 15)

	want := []Segment{
		{Text: "plain "},
		{Text: "bold ", Bold: true},
		{Text: "both", Bold: true, Italic: true, Foreground: "#ff0000"},
	}
	if diff := cmp.Diff(want, d.Segments()); diff != "" {
		t.Fatalf("segments (-want +got):\n%s", diff)
	}
}

func TestStatsCountsGraphemes(t *testing.T) {
	d := newDoc(t, "héllo wörld\n🇩🇪")
	s := d.Stats()
	assert.Equal(t, 3, s.Words)
	assert.Equal(t, 13, s.Characters)
}

func TestTagName(t *testing.T) {
	assert.Equal(t, "bold", TagBold.Name())
	assert.Equal(t, "foreground-ff0000", fgTag(t, red).Name())
}

func TestHexColorRejectsTransparent(t *testing.T) {
	hex, ok := HexColor(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	require.True(t, ok)
	assert.Equal(t, "#123456", hex)

	_, ok = HexColor(nil)
	assert.False(t, ok)
	_, ok = HexColor(color.Transparent)
	assert.False(t, ok)
	_, ok = ForegroundTag(color.NRGBA{R: 0xff})
	assert.False(t, ok)
}

func TestClearForeground(t *testing.T) {
	d := newDoc(t, "0123456789")
	d.AddTag(fgTag(t, red), 0, 10)
	d.AddTag(TagBold, 0, 10)

	d.ClearForeground(2, 5)

	want := []StyleRange{
		{Start: 0, End: 10, Tag: TagBold},
		{Start: 0, End: 2, Tag: Tag{Kind: StyleForeground, Color: "#ff0000"}},
		{Start: 5, End: 10, Tag: Tag{Kind: StyleForeground, Color: "#ff0000"}},
	}
	if diff := cmp.Diff(want, d.Ranges()); diff != "" {
		t.Fatalf("ranges (-want +got):\n%s", diff)
	}
	require.True(t, d.Undo())
	assert.Len(t, d.Ranges(), 2)
}
