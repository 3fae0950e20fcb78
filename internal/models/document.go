package models

import (
	"image/color"
	"strings"

	"github.com/rivo/uniseg"
)

// Selection is a half-open rune interval with Start < End.
type Selection struct {
	Start int
	End   int
}

// Document is the editable buffer: runes, caret, selection, style ranges and
// the whole-widget colors. Offsets are rune offsets.
type Document struct {
	text   []rune
	styles styleSet
	caret  int

	sel    Selection
	hasSel bool

	foreground color.Color
	background color.Color

	hist     history
	modified bool
}

// NewDocument creates an empty document keeping at most undoLimit undo steps.
func NewDocument(undoLimit int) *Document {
	return &Document{hist: history{limit: undoLimit}}
}

func (d *Document) Text() string { return string(d.text) }

func (d *Document) Len() int { return len(d.text) }

func (d *Document) IsEmpty() bool { return len(d.text) == 0 }

// Modified reports unsaved edits since the last Load, Reset or MarkSaved.
func (d *Document) Modified() bool { return d.modified }

func (d *Document) MarkSaved() { d.modified = false }

// Reset empties the buffer, styles and history.
func (d *Document) Reset() {
	d.Load("")
}

// Load replaces the whole content, dropping styles, selection and history.
func (d *Document) Load(text string) {
	d.text = []rune(text)
	d.styles.clear()
	d.caret = 0
	d.hasSel = false
	d.hist.reset()
	d.modified = false
}

func (d *Document) touch() {
	d.modified = true
}

func (d *Document) Caret() int { return d.caret }

func (d *Document) SetCaret(p int) {
	d.caret = clamp(p, 0, len(d.text))
}

// Selection returns the current selection, if any.
func (d *Document) Selection() (Selection, bool) {
	return d.sel, d.hasSel
}

// SetSelection selects [start, end) in either order. An empty interval clears
// the selection. The caret moves to the end of the selection.
func (d *Document) SetSelection(start, end int) {
	start, end = clamp(start, 0, len(d.text)), clamp(end, 0, len(d.text))
	if start > end {
		start, end = end, start
	}
	if start == end {
		d.hasSel = false
		return
	}
	d.sel = Selection{Start: start, End: end}
	d.hasSel = true
	d.caret = end
}

func (d *Document) ClearSelection() { d.hasSel = false }

func (d *Document) SelectAll() { d.SetSelection(0, len(d.text)) }

// SelectedText returns the selected runes as a string.
func (d *Document) SelectedText() (string, bool) {
	if !d.hasSel {
		return "", false
	}
	return string(d.text[d.sel.Start:d.sel.End]), true
}

// Insert puts s at offset p as one undoable step.
func (d *Document) Insert(p int, s string) {
	if s == "" {
		return
	}
	d.hist.record(d.snapshot())
	d.insert(clamp(p, 0, len(d.text)), []rune(s))
	d.touch()
}

// Delete removes [start, end) as one undoable step.
func (d *Document) Delete(start, end int) {
	start, end = clamp(start, 0, len(d.text)), clamp(end, 0, len(d.text))
	if start >= end {
		return
	}
	d.hist.record(d.snapshot())
	d.delete(start, end)
	d.touch()
}

// DeleteSelection removes the selected text and returns it.
func (d *Document) DeleteSelection() (string, bool) {
	text, ok := d.SelectedText()
	if !ok {
		return "", false
	}
	d.Delete(d.sel.Start, d.sel.End)
	return text, true
}

// InsertAtCaret inserts s at the caret, replacing the selection if there is
// one, and leaves the caret after the inserted text.
func (d *Document) InsertAtCaret(s string) {
	if s == "" {
		return
	}
	d.hist.record(d.snapshot())
	if d.hasSel {
		d.delete(d.sel.Start, d.sel.End)
	}
	d.insert(d.caret, []rune(s))
	d.touch()
}

// Replace makes the content equal to text by editing only the span that
// differs, so style ranges outside that span survive. It reports whether
// anything changed.
func (d *Document) Replace(text string) bool {
	next := []rune(text)
	prefix, suffix := commonAffixes(d.text, next)
	oldEnd := len(d.text) - suffix
	newEnd := len(next) - suffix
	if prefix == oldEnd && prefix == newEnd {
		return false
	}

	d.hist.record(d.snapshot())
	if prefix < oldEnd {
		d.delete(prefix, oldEnd)
	}
	if prefix < newEnd {
		inserted := make([]rune, newEnd-prefix)
		copy(inserted, next[prefix:newEnd])
		d.insert(prefix, inserted)
	}
	d.touch()
	return true
}

func (d *Document) insert(p int, rs []rune) {
	out := make([]rune, 0, len(d.text)+len(rs))
	out = append(out, d.text[:p]...)
	out = append(out, rs...)
	out = append(out, d.text[p:]...)
	d.text = out
	d.styles.insert(p, len(rs))
	if d.caret >= p {
		d.caret += len(rs)
	}
	d.hasSel = false
}

func (d *Document) delete(start, end int) {
	d.text = append(d.text[:start:start], d.text[end:]...)
	d.styles.delete(start, end)
	switch {
	case d.caret >= end:
		d.caret -= end - start
	case d.caret > start:
		d.caret = start
	}
	d.hasSel = false
}

// HasTag reports whether tag covers the rune at p.
func (d *Document) HasTag(tag Tag, p int) bool {
	return d.styles.has(tag, p)
}

// AddTag applies tag to [start, end). Adding a foreground color replaces any
// other foreground color on that span.
func (d *Document) AddTag(tag Tag, start, end int) {
	start, end = clamp(start, 0, len(d.text)), clamp(end, 0, len(d.text))
	if start >= end {
		return
	}
	d.hist.record(d.snapshot())
	if tag.Kind == StyleForeground {
		d.styles.remove(func(t Tag) bool { return t.Kind == StyleForeground }, start, end)
	}
	d.styles.add(tag, start, end)
	d.touch()
}

// RemoveTag strips tag from [start, end).
func (d *Document) RemoveTag(tag Tag, start, end int) {
	start, end = clamp(start, 0, len(d.text)), clamp(end, 0, len(d.text))
	if start >= end {
		return
	}
	d.hist.record(d.snapshot())
	d.styles.remove(func(t Tag) bool { return t == tag }, start, end)
	d.touch()
}

// ClearForeground removes every text color from [start, end).
func (d *Document) ClearForeground(start, end int) {
	start, end = clamp(start, 0, len(d.text)), clamp(end, 0, len(d.text))
	if start >= end {
		return
	}
	d.hist.record(d.snapshot())
	d.styles.remove(func(t Tag) bool { return t.Kind == StyleForeground }, start, end)
	d.touch()
}

// ToggleTag removes tag from sel when the rune at sel.Start carries it and
// adds it otherwise. Only the start rune is consulted, so a selection that
// begins untagged is fully tagged even if parts of it were already tagged.
// It returns true when the tag was added.
func (d *Document) ToggleTag(tag Tag, sel Selection) bool {
	if d.HasTag(tag, sel.Start) {
		d.RemoveTag(tag, sel.Start, sel.End)
		return false
	}
	d.AddTag(tag, sel.Start, sel.End)
	return true
}

// Ranges returns a copy of all style ranges ordered by start.
func (d *Document) Ranges() []StyleRange {
	return d.styles.clone()
}

// Segments splits the text into runs of uniform style.
func (d *Document) Segments() []Segment {
	return segmentsOf(d.text, d.styles.ranges)
}

func (d *Document) Foreground() color.Color { return d.foreground }

func (d *Document) Background() color.Color { return d.background }

// SetForeground sets the whole-widget text color.
func (d *Document) SetForeground(c color.Color) {
	d.foreground = c
}

// SetBackground sets the whole-widget background color.
func (d *Document) SetBackground(c color.Color) {
	d.background = c
}

// LineColumn converts a rune offset into zero based line and column.
func (d *Document) LineColumn(p int) (int, int) {
	return LineColumnOf(d.text, p)
}

// Stats summarises the buffer for the status bar.
type Stats struct {
	Words      int
	Characters int
}

func (d *Document) Stats() Stats {
	text := string(d.text)
	return Stats{
		Words:      len(strings.Fields(text)),
		Characters: uniseg.GraphemeClusterCount(text),
	}
}

func commonAffixes(a, b []rune) (prefix, suffix int) {
	n := min(len(a), len(b))
	for prefix < n && a[prefix] == b[prefix] {
		prefix++
	}
	for suffix < n-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	return prefix, suffix
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
