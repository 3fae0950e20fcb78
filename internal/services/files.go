package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dostext/internal/config"
	"dostext/internal/logger"
	"dostext/internal/models"
)

const untitledName = "New File"

// ErrNoPath is returned when a save is requested without a destination.
var ErrNoPath = errors.New("no file path")

// FileService implements new, open, save and save-as against the local file
// system. It owns the reference to the file backing the buffer.
type FileService struct {
	doc       *models.Document
	picker    FilePicker
	presenter Presenter
	logger    logger.Logger

	appName   string
	fileTypes []config.FileType

	openPath string
}

func NewFileService(doc *models.Document, picker FilePicker, presenter Presenter, log logger.Logger, cfg config.Config) *FileService {
	return &FileService{
		doc:       doc,
		picker:    picker,
		presenter: presenter,
		logger:    log,
		appName:   cfg.App,
		fileTypes: cfg.FileTypes,
	}
}

// CurrentPath returns the open-file reference, or "" when untitled.
func (fs *FileService) CurrentPath() string {
	return fs.openPath
}

// DisplayName returns the base name of the open file or "New File".
func (fs *FileService) DisplayName() string {
	if fs.openPath == "" {
		return untitledName
	}
	return filepath.Base(fs.openPath)
}

func (fs *FileService) title() string {
	return fmt.Sprintf("%s - %s", fs.DisplayName(), fs.appName)
}

// New clears the buffer and forgets the open file.
func (fs *FileService) New() {
	fs.doc.Reset()
	fs.openPath = ""

	fs.presenter.DocumentChanged()
	fs.presenter.SetWindowTitle(fs.title())
	fs.presenter.UpdateStatus("New file")

	fs.logger.Info("FileService", "new file", nil)
}

// Open prompts for a file and loads it.
func (fs *FileService) Open() {
	fs.picker.PickOpen("Open File", fs.fileTypes, func(path string) {
		_ = fs.OpenPath(path)
	})
}

// OpenPath loads path into the buffer. The file is read before anything is
// touched, so a failed read leaves buffer, title and reference as they were.
func (fs *FileService) OpenPath(path string) error {
	if path == "" {
		return ErrNoPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("open %s: %w", path, err)
		fs.fail("open file", "Open failed", err, path)
		return err
	}

	fs.doc.Load(string(data))
	fs.openPath = path

	fs.presenter.DocumentChanged()
	fs.presenter.SetWindowTitle(fs.title())
	fs.presenter.UpdateStatus(path)

	fs.logger.Info("FileService", "file opened", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})
	return nil
}

// Save writes to the open file, or behaves like SaveAs when untitled.
func (fs *FileService) Save() {
	if fs.openPath == "" {
		fs.SaveAs()
		return
	}
	_ = fs.write(fs.openPath)
}

// SaveAs prompts for a destination and writes the buffer there.
func (fs *FileService) SaveAs() {
	fs.picker.PickSave("Save File", fs.fileTypes, func(path string) {
		_ = fs.SaveAsPath(path)
	})
}

// SaveAsPath writes the buffer to path and makes it the open file.
func (fs *FileService) SaveAsPath(path string) error {
	if path == "" {
		return ErrNoPath
	}
	if err := fs.write(path); err != nil {
		return err
	}
	fs.openPath = path
	fs.presenter.SetWindowTitle(fs.title())
	return nil
}

func (fs *FileService) write(path string) error {
	text := fs.doc.Text()
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		err = fmt.Errorf("save %s: %w", path, err)
		fs.fail("save file", "Save failed", err, path)
		return err
	}

	fs.doc.MarkSaved()
	fs.presenter.UpdateStatus("Saved: " + path)

	fs.logger.Info("FileService", "file saved", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return nil
}

func (fs *FileService) fail(op, prefix string, err error, path string) {
	fs.logger.Error("FileService", err, map[string]interface{}{
		logger.OpField: op,
		"path":         path,
	})
	fs.presenter.UpdateStatus(fmt.Sprintf("%s: %v", prefix, errors.Unwrap(err)))
}
