package services

import (
	"image/color"

	"dostext/internal/config"
)

// Presenter is where services report what the window should show.
type Presenter interface {
	SetWindowTitle(title string)
	UpdateStatus(status string)
	// DocumentChanged asks the view to re-render the buffer.
	DocumentChanged()
}

// FilePicker asks the user for a path. fn is only called when the user
// confirms; cancelling leaves it uncalled.
type FilePicker interface {
	PickOpen(title string, types []config.FileType, fn func(path string))
	PickSave(title string, types []config.FileType, fn func(path string))
}

// ColorPicker asks the user for a color. fn is only called on confirmation.
type ColorPicker interface {
	PickColor(title string, fn func(c color.Color))
}

// Clipboard is the OS clipboard. fyne.Clipboard satisfies it.
type Clipboard interface {
	Content() string
	SetContent(content string)
}
