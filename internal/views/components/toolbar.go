package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the style and history buttons above the text area
type Toolbar struct {
	container    *fyne.Container
	boldButton   *widget.Button
	italicButton *widget.Button
	undoButton   *widget.Button
	redoButton   *widget.Button

	// Event handlers
	boldHandler   func()
	italicHandler func()
	undoHandler   func()
	redoHandler   func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.boldButton = widget.NewButton("Bold", nil)
	t.italicButton = widget.NewButton("Italic", nil)

	t.undoButton = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), nil)
	t.undoButton.Disable()
	t.redoButton = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), nil)
	t.redoButton.Disable()
}

func (t *Toolbar) buildLayout() {
	styleSection := container.NewHBox(t.boldButton, t.italicButton)
	historySection := container.NewHBox(t.undoButton, t.redoButton)

	t.container = container.NewHBox(
		styleSection,
		widget.NewSeparator(),
		historySection,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.boldButton.OnTapped = func() {
		if t.boldHandler != nil {
			t.boldHandler()
		}
	}

	t.italicButton.OnTapped = func() {
		if t.italicHandler != nil {
			t.italicHandler()
		}
	}

	t.undoButton.OnTapped = func() {
		if t.undoHandler != nil {
			t.undoHandler()
		}
	}

	t.redoButton.OnTapped = func() {
		if t.redoHandler != nil {
			t.redoHandler()
		}
	}
}

func (t *Toolbar) SetBoldHandler(handler func()) {
	t.boldHandler = handler
}

func (t *Toolbar) SetItalicHandler(handler func()) {
	t.italicHandler = handler
}

func (t *Toolbar) SetUndoHandler(handler func()) {
	t.undoHandler = handler
}

func (t *Toolbar) SetRedoHandler(handler func()) {
	t.redoHandler = handler
}

// SetHistoryState enables undo and redo according to what the buffer allows
func (t *Toolbar) SetHistoryState(canUndo, canRedo bool) {
	setEnabled(t.undoButton, canUndo)
	setEnabled(t.redoButton, canRedo)
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
