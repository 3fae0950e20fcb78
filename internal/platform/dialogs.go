package platform

import (
	"errors"
	"strings"

	"dostext/internal/config"
	"dostext/internal/logger"

	"github.com/sqweek/dialog"
)

// NativePicker shows the operating system's own open and save dialogs. The
// calls block the event loop until the dialog closes.
type NativePicker struct {
	logger   logger.Logger
	startDir string
}

func NewNativePicker(log logger.Logger, startDir string) *NativePicker {
	return &NativePicker{logger: log, startDir: startDir}
}

func (p *NativePicker) PickOpen(title string, types []config.FileType, fn func(path string)) {
	path, err := p.builder(title, types).Load()
	p.finish("open", path, err, fn)
}

func (p *NativePicker) PickSave(title string, types []config.FileType, fn func(path string)) {
	path, err := p.builder(title, types).Save()
	p.finish("save", path, err, fn)
}

func (p *NativePicker) builder(title string, types []config.FileType) *dialog.FileBuilder {
	b := dialog.File().Title(title)
	if p.startDir != "" {
		b = b.SetStartDir(p.startDir)
	}
	for _, ft := range types {
		b = b.Filter(ft.Name, Extension(ft.Pattern))
	}
	return b
}

func (p *NativePicker) finish(kind, path string, err error, fn func(string)) {
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err != nil {
		p.logger.Error("NativePicker", err, map[string]interface{}{logger.OpField: kind + " dialog"})
		return
	}
	if path != "" {
		fn(path)
	}
}

// Extension turns a "*.txt" pattern into the bare "txt" the native dialogs
// expect. "*.*" and "*" both become the wildcard "*".
func Extension(pattern string) string {
	ext := strings.TrimPrefix(strings.TrimSpace(pattern), "*")
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" || ext == "*" {
		return "*"
	}
	return ext
}
