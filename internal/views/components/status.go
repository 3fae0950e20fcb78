package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const readyStatus = "Ready"

// StatusBar shows the last action, the caret position and buffer counts
type StatusBar struct {
	container     *fyne.Container
	statusLabel   *widget.Label
	positionLabel *widget.Label
	statsLabel    *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel(readyStatus)
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.positionLabel = widget.NewLabel(formatPosition(0, 0))
	sb.statsLabel = widget.NewLabel(formatStats(0, 0))
}

// buildLayout right aligns the labels like a classic editor status line
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		layout.NewSpacer(),
		sb.statusLabel,
		widget.NewSeparator(),
		sb.positionLabel,
		widget.NewSeparator(),
		sb.statsLabel,
	)
}

// SetStatus updates the last-action message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetPosition shows a zero based line and column as one based values
func (sb *StatusBar) SetPosition(line, column int) {
	sb.positionLabel.SetText(formatPosition(line, column))
}

func (sb *StatusBar) GetPosition() string {
	return sb.positionLabel.Text
}

func (sb *StatusBar) SetStats(characters, words int) {
	sb.statsLabel.SetText(formatStats(characters, words))
}

func (sb *StatusBar) GetStats() string {
	return sb.statsLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func formatPosition(line, column int) string {
	return fmt.Sprintf("Ln %d, Col %d", line+1, column+1)
}

func formatStats(characters, words int) string {
	return fmt.Sprintf("%d chars, %d words", characters, words)
}
