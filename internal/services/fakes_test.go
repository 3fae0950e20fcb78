package services

import (
	"image/color"

	"dostext/internal/config"
)

type fakePresenter struct {
	title    string
	statuses []string
	renders  int
}

func (p *fakePresenter) SetWindowTitle(title string) { p.title = title }
func (p *fakePresenter) UpdateStatus(status string)  { p.statuses = append(p.statuses, status) }
func (p *fakePresenter) DocumentChanged()            { p.renders++ }

func (p *fakePresenter) lastStatus() string {
	if len(p.statuses) == 0 {
		return ""
	}
	return p.statuses[len(p.statuses)-1]
}

// fakePicker answers every prompt with path; an empty path acts as cancel.
type fakePicker struct {
	path    string
	opens   int
	saves   int
	lastTyp []config.FileType
}

func (p *fakePicker) PickOpen(title string, types []config.FileType, fn func(string)) {
	p.opens++
	p.lastTyp = types
	if p.path != "" {
		fn(p.path)
	}
}

func (p *fakePicker) PickSave(title string, types []config.FileType, fn func(string)) {
	p.saves++
	p.lastTyp = types
	if p.path != "" {
		fn(p.path)
	}
}

type fakeColors struct {
	color  color.Color
	titles []string
}

func (c *fakeColors) PickColor(title string, fn func(color.Color)) {
	c.titles = append(c.titles, title)
	if c.color != nil {
		fn(c.color)
	}
}

type fakeClipboard struct {
	content string
}

func (c *fakeClipboard) Content() string           { return c.content }
func (c *fakeClipboard) SetContent(content string) { c.content = content }
