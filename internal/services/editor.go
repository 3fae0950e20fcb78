package services

import (
	"errors"
	"image/color"

	"dostext/internal/logger"
	"dostext/internal/models"
)

// Source tells the Editor whether an operation came from a menu or toolbar
// command or from a keyboard shortcut that the text widget already handled.
type Source int

const (
	SourceCommand Source = iota
	SourceShortcut
)

func (s Source) String() string {
	if s == SourceShortcut {
		return "shortcut"
	}
	return "command"
}

var (
	ErrNoSelection    = errors.New("no text selected")
	ErrEmptyClipboard = errors.New("clipboard is empty")
)

// EditorService implements clipboard and styling operations on the buffer.
// It owns the clipboard holder: the last text cut or copied.
type EditorService struct {
	doc       *models.Document
	clipboard Clipboard
	colors    ColorPicker
	presenter Presenter
	logger    logger.Logger

	holder string
}

func NewEditorService(doc *models.Document, clipboard Clipboard, colors ColorPicker, presenter Presenter, log logger.Logger) *EditorService {
	return &EditorService{
		doc:       doc,
		clipboard: clipboard,
		colors:    colors,
		presenter: presenter,
		logger:    log,
	}
}

// Holder returns the clipboard holder.
func (es *EditorService) Holder() string {
	return es.holder
}

// Cut moves the selection to the clipboard. For shortcuts the widget has
// already cut the text, so only the holder is refreshed.
func (es *EditorService) Cut(src Source) error {
	if src == SourceShortcut {
		es.syncFromClipboard("Cut")
		return nil
	}

	text, ok := es.doc.DeleteSelection()
	if !ok {
		return es.noSelection("cut")
	}
	es.store(text)
	es.presenter.DocumentChanged()
	es.presenter.UpdateStatus("Cut")
	return nil
}

// Copy puts the selection on the clipboard.
func (es *EditorService) Copy(src Source) error {
	if src == SourceShortcut {
		es.syncFromClipboard("Copied")
		return nil
	}

	text, ok := es.doc.SelectedText()
	if !ok {
		return es.noSelection("copy")
	}
	es.store(text)
	es.presenter.UpdateStatus("Copied")
	return nil
}

// Paste inserts the holder at the caret. For shortcuts the widget has
// already pasted from the OS clipboard and the holder follows it.
func (es *EditorService) Paste(src Source) error {
	if src == SourceShortcut {
		es.syncFromClipboard("Pasted")
		return nil
	}

	if es.holder == "" {
		es.presenter.UpdateStatus("Clipboard is empty")
		return ErrEmptyClipboard
	}
	es.doc.InsertAtCaret(es.holder)
	es.presenter.DocumentChanged()
	es.presenter.UpdateStatus("Pasted")
	return nil
}

func (es *EditorService) ToggleBold() error {
	return es.toggle(models.TagBold, "Bold")
}

func (es *EditorService) ToggleItalic() error {
	return es.toggle(models.TagItalic, "Italic")
}

func (es *EditorService) toggle(tag models.Tag, label string) error {
	sel, ok := es.doc.Selection()
	if !ok {
		return es.noSelection(tag.Name())
	}

	if es.doc.ToggleTag(tag, sel) {
		es.presenter.UpdateStatus(label + " on")
	} else {
		es.presenter.UpdateStatus(label + " off")
	}
	es.presenter.DocumentChanged()
	return nil
}

// TextColor asks for a color and paints the selection with it.
func (es *EditorService) TextColor() {
	if _, ok := es.doc.Selection(); !ok {
		_ = es.noSelection("text color")
		return
	}
	es.colors.PickColor("Text Color", func(c color.Color) {
		_ = es.ApplyTextColor(c)
	})
}

// AllTextColor asks for a color for the whole text.
func (es *EditorService) AllTextColor() {
	es.colors.PickColor("All Text Color", es.ApplyAllTextColor)
}

// BackgroundColor asks for a background color for the whole text area.
func (es *EditorService) BackgroundColor() {
	es.colors.PickColor("Background Color", es.ApplyBackgroundColor)
}

// ApplyTextColor tags the selection with a foreground color. A fully
// transparent color clears the text color of the selection instead.
func (es *EditorService) ApplyTextColor(c color.Color) error {
	sel, ok := es.doc.Selection()
	if !ok {
		return es.noSelection("text color")
	}
	tag, ok := models.ForegroundTag(c)
	if !ok {
		es.doc.ClearForeground(sel.Start, sel.End)
		es.presenter.DocumentChanged()
		es.presenter.UpdateStatus("Text color cleared")
		return nil
	}
	es.doc.AddTag(tag, sel.Start, sel.End)
	es.presenter.DocumentChanged()
	es.presenter.UpdateStatus("Text color " + tag.Color)
	return nil
}

// ApplyAllTextColor sets the whole-widget text color. A fully transparent
// color restores the theme color.
func (es *EditorService) ApplyAllTextColor(c color.Color) {
	hex, ok := models.HexColor(c)
	if !ok {
		es.doc.SetForeground(nil)
		es.presenter.DocumentChanged()
		es.presenter.UpdateStatus("All text color reset")
		return
	}
	es.doc.SetForeground(c)
	es.presenter.DocumentChanged()
	es.presenter.UpdateStatus("All text color " + hex)
}

func (es *EditorService) ApplyBackgroundColor(c color.Color) {
	hex, ok := models.HexColor(c)
	if !ok {
		es.doc.SetBackground(nil)
		es.presenter.DocumentChanged()
		es.presenter.UpdateStatus("Background color reset")
		return
	}
	es.doc.SetBackground(c)
	es.presenter.DocumentChanged()
	es.presenter.UpdateStatus("Background color " + hex)
}

func (es *EditorService) Undo() bool {
	if !es.doc.Undo() {
		es.presenter.UpdateStatus("Nothing to undo")
		return false
	}
	es.presenter.DocumentChanged()
	es.presenter.UpdateStatus("Undo")
	return true
}

func (es *EditorService) Redo() bool {
	if !es.doc.Redo() {
		es.presenter.UpdateStatus("Nothing to redo")
		return false
	}
	es.presenter.DocumentChanged()
	es.presenter.UpdateStatus("Redo")
	return true
}

func (es *EditorService) store(text string) {
	es.holder = text
	es.clipboard.SetContent(text)
}

func (es *EditorService) syncFromClipboard(status string) {
	es.holder = es.clipboard.Content()
	es.presenter.UpdateStatus(status)
	es.logger.Debug("EditorService", "clipboard holder synced", map[string]interface{}{
		"source": SourceShortcut.String(),
		"length": len(es.holder),
	})
}

func (es *EditorService) noSelection(op string) error {
	es.presenter.UpdateStatus("No text selected")
	es.logger.Debug("EditorService", "operation needs a selection", map[string]interface{}{
		"operation": op,
	})
	return ErrNoSelection
}
