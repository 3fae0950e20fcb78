package models

type snapshot struct {
	text   []rune
	ranges []StyleRange
	caret  int
}

type history struct {
	limit int
	undo  []snapshot
	redo  []snapshot
}

func (h *history) record(prev snapshot) {
	if h.limit <= 0 {
		return
	}
	h.undo = append(h.undo, prev)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

func (h *history) reset() {
	h.undo = nil
	h.redo = nil
}

func (d *Document) snapshot() snapshot {
	text := make([]rune, len(d.text))
	copy(text, d.text)
	return snapshot{text: text, ranges: d.styles.clone(), caret: d.caret}
}

func (d *Document) restore(s snapshot) {
	d.text = s.text
	d.styles.ranges = s.ranges
	d.caret = clamp(s.caret, 0, len(d.text))
	d.hasSel = false
}

func (d *Document) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Document) CanRedo() bool { return len(d.hist.redo) > 0 }

// Undo restores the state before the last edit. It reports false when there
// is nothing to undo.
func (d *Document) Undo() bool {
	n := len(d.hist.undo)
	if n == 0 {
		return false
	}
	prev := d.hist.undo[n-1]
	d.hist.undo = d.hist.undo[:n-1]
	d.hist.redo = append(d.hist.redo, d.snapshot())
	d.restore(prev)
	d.touch()
	return true
}

// Redo re-applies the last undone edit.
func (d *Document) Redo() bool {
	n := len(d.hist.redo)
	if n == 0 {
		return false
	}
	next := d.hist.redo[n-1]
	d.hist.redo = d.hist.redo[:n-1]
	d.hist.undo = append(d.hist.undo, d.snapshot())
	d.restore(next)
	d.touch()
	return true
}
