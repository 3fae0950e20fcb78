package models

// LineColumnOf converts a rune offset into a zero based line and column,
// lines being split at '\n'.
func LineColumnOf(text []rune, p int) (int, int) {
	p = clamp(p, 0, len(text))
	line, col := 0, 0
	for _, r := range text[:p] {
		if r == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// OffsetOf converts a zero based line and column into a rune offset. Out of
// range values are clamped to the nearest valid position.
func OffsetOf(text []rune, line, col int) int {
	p := 0
	for l := 0; l < line; l++ {
		i := indexRune(text[p:], '\n')
		if i < 0 {
			return len(text)
		}
		p += i + 1
	}
	end := len(text)
	if i := indexRune(text[p:], '\n'); i >= 0 {
		end = p + i
	}
	return clamp(p+max(col, 0), p, end)
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}
