package models

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// StyleKind identifies what a Tag does to the text it covers.
type StyleKind int

const (
	StyleBold StyleKind = iota
	StyleItalic
	StyleForeground
)

func (k StyleKind) String() string {
	switch k {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleForeground:
		return "foreground"
	default:
		return "unknown"
	}
}

// Tag is a named style. Color is only set for StyleForeground and is always
// a lower case "#rrggbb" string so equal colors compare equal.
type Tag struct {
	Kind  StyleKind
	Color string
}

var (
	TagBold   = Tag{Kind: StyleBold}
	TagItalic = Tag{Kind: StyleItalic}
)

// ForegroundTag builds the tag that paints text in c. It reports false for
// colors HexColor rejects.
func ForegroundTag(c color.Color) (Tag, bool) {
	hex, ok := HexColor(c)
	if !ok {
		return Tag{}, false
	}
	return Tag{Kind: StyleForeground, Color: hex}, true
}

// HexColor formats c as "#rrggbb". Nil and fully transparent colors have no
// hex form and report false.
func HexColor(c color.Color) (string, bool) {
	if c == nil {
		return "", false
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "", false
	}
	return strings.ToLower(cf.Clamped().Hex()), true
}

// Name is the tag name as shown in logs and used as a theme color key.
func (t Tag) Name() string {
	if t.Kind == StyleForeground {
		return fmt.Sprintf("%s-%s", t.Kind, strings.TrimPrefix(t.Color, "#"))
	}
	return t.Kind.String()
}

// StyleRange applies Tag to the half-open rune interval [Start, End).
type StyleRange struct {
	Start int
	End   int
	Tag   Tag
}

func (r StyleRange) covers(p int) bool { return r.Start <= p && p < r.End }

// styleSet keeps ranges sorted by start. Ranges sharing a tag never overlap
// or touch.
type styleSet struct {
	ranges []StyleRange
}

func (s *styleSet) clone() []StyleRange {
	out := make([]StyleRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

func (s *styleSet) clear() { s.ranges = nil }

func (s *styleSet) has(tag Tag, p int) bool {
	for _, r := range s.ranges {
		if r.Tag == tag && r.covers(p) {
			return true
		}
	}
	return false
}

func (s *styleSet) add(tag Tag, start, end int) {
	if start >= end {
		return
	}
	merged := StyleRange{Start: start, End: end, Tag: tag}
	kept := s.ranges[:0]
	for _, r := range s.ranges {
		if r.Tag == tag && r.Start <= merged.End && r.End >= merged.Start {
			merged.Start = min(merged.Start, r.Start)
			merged.End = max(merged.End, r.End)
			continue
		}
		kept = append(kept, r)
	}
	s.ranges = append(kept, merged)
	s.sort()
}

func (s *styleSet) remove(match func(Tag) bool, start, end int) {
	if start >= end {
		return
	}
	out := make([]StyleRange, 0, len(s.ranges)+1)
	for _, r := range s.ranges {
		if !match(r.Tag) || r.End <= start || r.Start >= end {
			out = append(out, r)
			continue
		}
		if r.Start < start {
			out = append(out, StyleRange{Start: r.Start, End: start, Tag: r.Tag})
		}
		if r.End > end {
			out = append(out, StyleRange{Start: end, End: r.End, Tag: r.Tag})
		}
	}
	s.ranges = out
	s.sort()
}

// insert shifts ranges for n runes inserted at p. Text inserted strictly
// inside a range joins it; text at a boundary stays untagged.
func (s *styleSet) insert(p, n int) {
	if n <= 0 {
		return
	}
	for i := range s.ranges {
		r := &s.ranges[i]
		switch {
		case r.Start < p && p < r.End:
			r.End += n
		case r.Start >= p:
			r.Start += n
			r.End += n
		}
	}
}

// delete collapses [start, end) out of every range.
func (s *styleSet) delete(start, end int) {
	n := end - start
	if n <= 0 {
		return
	}
	shrink := func(x int) int {
		switch {
		case x <= start:
			return x
		case x <= end:
			return start
		default:
			return x - n
		}
	}

	out := s.ranges[:0]
	for _, r := range s.ranges {
		r.Start, r.End = shrink(r.Start), shrink(r.End)
		if r.Start < r.End {
			out = append(out, r)
		}
	}
	s.ranges = out
	s.normalize()
}

// normalize merges same-tag ranges that touch or overlap.
func (s *styleSet) normalize() {
	s.sort()
	out := make([]StyleRange, 0, len(s.ranges))
	last := map[Tag]int{}
	for _, r := range s.ranges {
		if i, ok := last[r.Tag]; ok && out[i].End >= r.Start {
			out[i].End = max(out[i].End, r.End)
			continue
		}
		last[r.Tag] = len(out)
		out = append(out, r)
	}
	s.ranges = out
}

func (s *styleSet) sort() {
	sort.SliceStable(s.ranges, func(i, j int) bool {
		a, b := s.ranges[i], s.ranges[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.Tag.Kind != b.Tag.Kind {
			return a.Tag.Kind < b.Tag.Kind
		}
		return a.Tag.Color < b.Tag.Color
	})
}

// Segment is a run of text with uniform styling.
type Segment struct {
	Text       string
	Bold       bool
	Italic     bool
	Foreground string
}

func segmentsOf(text []rune, ranges []StyleRange) []Segment {
	if len(text) == 0 {
		return nil
	}

	cuts := map[int]struct{}{0: {}, len(text): {}}
	for _, r := range ranges {
		cuts[r.Start] = struct{}{}
		cuts[r.End] = struct{}{}
	}
	points := make([]int, 0, len(cuts))
	for p := range cuts {
		if p >= 0 && p <= len(text) {
			points = append(points, p)
		}
	}
	sort.Ints(points)

	var out []Segment
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		seg := Segment{Text: string(text[a:b])}
		for _, r := range ranges {
			if !r.covers(a) {
				continue
			}
			switch r.Tag.Kind {
			case StyleBold:
				seg.Bold = true
			case StyleItalic:
				seg.Italic = true
			case StyleForeground:
				seg.Foreground = r.Tag.Color
			}
		}
		if n := len(out); n > 0 && sameStyle(out[n-1], seg) {
			out[n-1].Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}

func sameStyle(a, b Segment) bool {
	return a.Bold == b.Bold && a.Italic == b.Italic && a.Foreground == b.Foreground
}
