package controllers

import (
	"errors"

	"dostext/internal/config"
	"dostext/internal/logger"
	"dostext/internal/models"
	"dostext/internal/services"
	"dostext/internal/views"
)

// MainController connects the main view to the file and editor services and
// is the presenter both services report to.
type MainController struct {
	cfg    config.Config
	doc    *models.Document
	files  *services.FileService
	editor *services.EditorService
	logger logger.Logger

	mainView *views.MainView
	onClose  func()

	commands int
}

// NewMainController wires the services around doc and connects view.
func NewMainController(
	cfg config.Config,
	doc *models.Document,
	view *views.MainView,
	picker services.FilePicker,
	colors services.ColorPicker,
	clipboard services.Clipboard,
	log logger.Logger,
) *MainController {
	controller := &MainController{
		cfg:      cfg,
		doc:      doc,
		logger:   log,
		mainView: view,
	}
	controller.files = services.NewFileService(doc, picker, controller, log, cfg)
	controller.editor = services.NewEditorService(doc, clipboard, colors, controller, log)

	if fg, ok := cfg.ForegroundColor(); ok {
		doc.SetForeground(fg)
	}
	if bg, ok := cfg.BackgroundColor(); ok {
		doc.SetBackground(bg)
	}

	view.SetActions(controller.actions())
	view.SetWindowTitle(cfg.App)
	view.Render(doc)
	return controller
}

// SetCloseHandler sets what happens once closing the window is confirmed
func (mc *MainController) SetCloseHandler(fn func()) {
	mc.onClose = fn
}

func (mc *MainController) actions() views.Actions {
	return views.Actions{
		New:    mc.track(mc.files.New),
		Open:   mc.track(mc.files.Open),
		Save:   mc.track(mc.files.Save),
		SaveAs: mc.track(mc.files.SaveAs),
		Exit:   mc.RequestClose,

		Cut:   mc.Cut,
		Copy:  mc.Copy,
		Paste: mc.Paste,

		Undo: mc.track(func() { mc.editor.Undo() }),
		Redo: mc.track(func() { mc.editor.Redo() }),

		Bold:   mc.ToggleBold,
		Italic: mc.ToggleItalic,

		TextColor:       mc.TextColor,
		AllTextColor:    mc.track(mc.editor.AllTextColor),
		BackgroundColor: mc.track(mc.editor.BackgroundColor),

		TextChanged: mc.TextChanged,
		CursorMoved: mc.CursorMoved,
	}
}

func (mc *MainController) track(fn func()) func() {
	return func() {
		mc.commands++
		fn()
	}
}

// Files exposes the file service
func (mc *MainController) Files() *services.FileService {
	return mc.files
}

// Editor exposes the editor service
func (mc *MainController) Editor() *services.EditorService {
	return mc.editor
}

// Cut runs the editor cut. Commands first pick up the text area selection;
// on the shortcut path the text area has already done the edit.
func (mc *MainController) Cut(viaShortcut bool) {
	mc.clipboardOp(viaShortcut, mc.editor.Cut)
}

func (mc *MainController) Copy(viaShortcut bool) {
	mc.clipboardOp(viaShortcut, mc.editor.Copy)
}

func (mc *MainController) Paste(viaShortcut bool) {
	mc.clipboardOp(viaShortcut, mc.editor.Paste)
}

func (mc *MainController) clipboardOp(viaShortcut bool, op func(services.Source) error) {
	mc.commands++
	src := services.SourceCommand
	if viaShortcut {
		src = services.SourceShortcut
	} else {
		mc.mainView.CaptureSelection(mc.doc)
	}
	mc.handleError(op(src))
}

func (mc *MainController) ToggleBold() {
	mc.commands++
	mc.mainView.CaptureSelection(mc.doc)
	mc.handleError(mc.editor.ToggleBold())
}

func (mc *MainController) ToggleItalic() {
	mc.commands++
	mc.mainView.CaptureSelection(mc.doc)
	mc.handleError(mc.editor.ToggleItalic())
}

func (mc *MainController) TextColor() {
	mc.commands++
	mc.mainView.CaptureSelection(mc.doc)
	mc.editor.TextColor()
}

// TextChanged folds an edit typed into the text area back into the document
func (mc *MainController) TextChanged(text string) {
	if !mc.doc.Replace(text) {
		return
	}
	mc.doc.SetCaret(mc.mainView.CaretOffset())
	mc.mainView.Render(mc.doc)
}

// CursorMoved follows the text area caret
func (mc *MainController) CursorMoved() {
	mc.doc.SetCaret(mc.mainView.CaretOffset())
	mc.mainView.UpdatePosition(mc.doc)
}

// RequestClose closes the window, asking first when there are unsaved edits
func (mc *MainController) RequestClose() {
	if !mc.doc.Modified() {
		mc.close()
		return
	}
	mc.mainView.ShowConfirm(
		"Unsaved Changes",
		"Discard changes to "+mc.files.DisplayName()+"?",
		func(confirmed bool) {
			if confirmed {
				mc.close()
			}
		},
	)
}

func (mc *MainController) close() {
	if mc.onClose != nil {
		mc.onClose()
	}
}

// SetWindowTitle implements services.Presenter
func (mc *MainController) SetWindowTitle(title string) {
	mc.mainView.SetWindowTitle(title)
}

// UpdateStatus implements services.Presenter
func (mc *MainController) UpdateStatus(status string) {
	mc.mainView.UpdateStatus(status)
}

// DocumentChanged implements services.Presenter
func (mc *MainController) DocumentChanged() {
	mc.mainView.Render(mc.doc)
}

// handleError logs failures the services did not already report. Missing
// selections and an empty clipboard are expected and only reach the status
// bar.
func (mc *MainController) handleError(err error) {
	if err == nil || errors.Is(err, services.ErrNoSelection) || errors.Is(err, services.ErrEmptyClipboard) {
		return
	}
	mc.logger.Error("MainController", err, nil)
	mc.mainView.ShowError(err)
}

// Shutdown implements shutdown.Shutdownable
func (mc *MainController) Shutdown() {
	mc.logger.Info("MainController", "session finished", map[string]interface{}{
		"commands": mc.commands,
		"path":     mc.files.CurrentPath(),
		"modified": mc.doc.Modified(),
	})
}
