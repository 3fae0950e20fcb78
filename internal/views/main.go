package views

import (
	"image/color"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"

	"dostext/internal/config"
	"dostext/internal/models"
	"dostext/internal/views/components"
)

// Actions are the callbacks the view fires. The controller fills them in.
type Actions struct {
	New    func()
	Open   func()
	Save   func()
	SaveAs func()
	Exit   func()

	// viaShortcut is true when the text area already handled the keystroke.
	Cut   func(viaShortcut bool)
	Copy  func(viaShortcut bool)
	Paste func(viaShortcut bool)

	Undo func()
	Redo func()

	Bold   func()
	Italic func()

	TextColor       func()
	AllTextColor    func()
	BackgroundColor func()

	TextChanged func(text string)
	CursorMoved func()
}

// MainView is the editor window: toolbar, text area, formatted preview,
// status bar and menus. It owns the widgets and forwards user input through
// Actions; it never edits the document itself.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	textArea      *components.TextArea
	formatted     *components.FormattedText
	statusBar     *components.StatusBar
	background    *canvas.Rectangle
	themed        *container.ThemeOverride
	tabs          *container.AppTabs

	actions   Actions
	shortcuts map[string]func()
	rendering bool

	foreground      color.Color
	backgroundColor color.Color
	colorsApplied   bool
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window, cfg config.Config) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents(cfg)
	view.buildLayout(cfg)
	view.buildMenu()
	view.setupEventHandlers()
	view.registerShortcuts()

	return view
}

func (mv *MainView) initializeComponents(cfg config.Config) {
	mv.toolbar = components.NewToolbar()
	mv.textArea = components.NewTextArea()
	mv.formatted = components.NewFormattedText(cfg.WordWrap())
	mv.statusBar = components.NewStatusBar()
	mv.background = canvas.NewRectangle(color.Transparent)
}

func (mv *MainView) buildLayout(cfg config.Config) {
	mv.tabs = container.NewAppTabs(
		container.NewTabItem("Text", mv.textArea),
		container.NewTabItem("Formatted", mv.formatted.GetContainer()),
	)
	mv.tabs.OnSelected = func(*container.TabItem) {
		if mv.tabs.SelectedIndex() == 0 {
			mv.FocusText()
		}
	}

	fg, _ := cfg.ForegroundColor()
	bg, _ := cfg.BackgroundColor()
	if bg != nil {
		mv.background.FillColor = bg
	}
	mv.themed = container.NewThemeOverride(
		container.NewStack(mv.background, mv.tabs),
		newDocumentTheme(fg, bg),
	)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		mv.themed,                   // center
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) buildMenu() {
	newItem := fyne.NewMenuItem("New", mv.fire(func() func() { return mv.actions.New }))
	newItem.Shortcut = shortcutNew
	openItem := fyne.NewMenuItem("Open…", mv.fire(func() func() { return mv.actions.Open }))
	openItem.Shortcut = shortcutOpen
	saveItem := fyne.NewMenuItem("Save", mv.fire(func() func() { return mv.actions.Save }))
	saveItem.Shortcut = shortcutSave
	saveAsItem := fyne.NewMenuItem("Save As…", mv.fire(func() func() { return mv.actions.SaveAs }))
	saveAsItem.Shortcut = shortcutSaveAs
	exitItem := fyne.NewMenuItem("Exit", mv.fire(func() func() { return mv.actions.Exit }))
	exitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		newItem, openItem, saveItem, saveAsItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Cut", func() { mv.clipboardCommand(mv.actions.Cut) }),
		fyne.NewMenuItem("Copy", func() { mv.clipboardCommand(mv.actions.Copy) }),
		fyne.NewMenuItem("Paste", func() { mv.clipboardCommand(mv.actions.Paste) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Undo", mv.fire(func() func() { return mv.actions.Undo })),
		fyne.NewMenuItem("Redo", mv.fire(func() func() { return mv.actions.Redo })),
	)

	colorsMenu := fyne.NewMenu("Colors",
		fyne.NewMenuItem("Selected Text", mv.fire(func() func() { return mv.actions.TextColor })),
		fyne.NewMenuItem("All Text", mv.fire(func() func() { return mv.actions.AllTextColor })),
		fyne.NewMenuItem("Background", mv.fire(func() func() { return mv.actions.BackgroundColor })),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, colorsMenu))
}

// fire resolves the action lazily so menus can be built before SetActions.
func (mv *MainView) fire(get func() func()) func() {
	return func() {
		if fn := get(); fn != nil {
			fn()
		}
	}
}

func (mv *MainView) clipboardCommand(fn func(bool)) {
	if fn != nil {
		fn(false)
	}
}

func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetBoldHandler(mv.fire(func() func() { return mv.actions.Bold }))
	mv.toolbar.SetItalicHandler(mv.fire(func() func() { return mv.actions.Italic }))
	mv.toolbar.SetUndoHandler(mv.fire(func() func() { return mv.actions.Undo }))
	mv.toolbar.SetRedoHandler(mv.fire(func() func() { return mv.actions.Redo }))

	mv.textArea.OnChanged = func(text string) {
		if mv.rendering || mv.actions.TextChanged == nil {
			return
		}
		mv.actions.TextChanged(text)
	}
	mv.textArea.OnCursorChanged = func() {
		if !mv.rendering && mv.actions.CursorMoved != nil {
			mv.actions.CursorMoved()
		}
	}

	mv.textArea.SetShortcutHandlers(mv.interceptShortcut, mv.afterShortcut)
}

// SetActions connects the view to its controller
func (mv *MainView) SetActions(actions Actions) {
	mv.actions = actions
}

// Render shows the document: text area content and caret, formatted tab,
// colors and history buttons. The text area is only rewritten when its
// content differs, which keeps its selection intact across style changes.
func (mv *MainView) Render(doc *models.Document) {
	mv.rendering = true
	if mv.textArea.Text != doc.Text() {
		mv.textArea.SetText(doc.Text())
		mv.textArea.SetCaretOffset(doc.Caret())
	}
	mv.rendering = false

	mv.formatted.Render(doc.Segments())
	mv.applyColors(doc.Foreground(), doc.Background())
	mv.toolbar.SetHistoryState(doc.CanUndo(), doc.CanRedo())
	mv.UpdatePosition(doc)
}

// UpdatePosition refreshes the caret and count fields of the status bar
func (mv *MainView) UpdatePosition(doc *models.Document) {
	stats := doc.Stats()
	mv.statusBar.SetPosition(doc.LineColumn(doc.Caret()))
	mv.statusBar.SetStats(stats.Characters, stats.Words)
	mv.toolbar.SetHistoryState(doc.CanUndo(), doc.CanRedo())
}

// applyColors swaps the theme only when a whole-widget color changed.
func (mv *MainView) applyColors(fg, bg color.Color) {
	if mv.colorsApplied && sameColor(mv.foreground, fg) && sameColor(mv.backgroundColor, bg) {
		return
	}
	mv.colorsApplied = true
	mv.foreground, mv.backgroundColor = fg, bg

	mv.themed.Theme = newDocumentTheme(fg, bg)
	mv.background.FillColor = color.Transparent
	if bg != nil {
		mv.background.FillColor = bg
	}
	mv.background.Refresh()
	mv.themed.Refresh()
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// CaretOffset is the text area caret as a rune offset
func (mv *MainView) CaretOffset() int {
	return mv.textArea.CaretOffset()
}

// CaptureSelection copies the text area's caret and selection into doc. The
// caret may sit at either end of the selection.
func (mv *MainView) CaptureSelection(doc *models.Document) {
	if start, end, ok := mv.textArea.Selection(); ok {
		doc.SetSelection(start, end)
	} else {
		doc.ClearSelection()
	}
	doc.SetCaret(mv.textArea.CaretOffset())
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetWindowTitle updates the window title
func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
}

// PickOpen shows the Fyne open dialog filtered to types
func (mv *MainView) PickOpen(title string, types []config.FileType, fn func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		fn(path)
	}, mv.window)
	d.SetFilter(components.NewPatternFilter(types))
	mv.setStartLocation(d)
	d.Show()
}

// PickSave shows the Fyne save dialog
func (mv *MainView) PickSave(title string, types []config.FileType, fn func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		fn(path)
	}, mv.window)
	d.SetFilter(components.NewPatternFilter(types))
	d.SetFileName("untitled.txt")
	mv.setStartLocation(d)
	d.Show()
}

func (mv *MainView) setStartLocation(d *dialog.FileDialog) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	if dir, err := storage.ListerForURI(storage.NewFileURI(wd)); err == nil {
		d.SetLocation(dir)
	}
}

// PickColor shows the advanced color picker
func (mv *MainView) PickColor(title string, fn func(c color.Color)) {
	d := dialog.NewColorPicker(title, "Choose a color", fn, mv.window)
	d.Advanced = true
	d.Show()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// FocusText puts keyboard focus in the text area
func (mv *MainView) FocusText() {
	mv.window.Canvas().Focus(mv.textArea)
}

func (mv *MainView) GetTextArea() *components.TextArea {
	return mv.textArea
}

func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) GetFormatted() *components.FormattedText {
	return mv.formatted
}

var (
	shortcutNew    = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutOpen   = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutSave   = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutSaveAs = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
	shortcutBold   = &desktop.CustomShortcut{KeyName: fyne.KeyB, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutItalic = &desktop.CustomShortcut{KeyName: fyne.KeyI, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutUndo   = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutRedo   = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutRedoZ  = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
)

// registerShortcuts binds window level shortcuts. The same table serves the
// text area, which otherwise swallows every shortcut it has focus for.
func (mv *MainView) registerShortcuts() {
	bindings := []struct {
		shortcut fyne.Shortcut
		action   func() func()
	}{
		{shortcutNew, func() func() { return mv.actions.New }},
		{shortcutOpen, func() func() { return mv.actions.Open }},
		{shortcutSave, func() func() { return mv.actions.Save }},
		{shortcutSaveAs, func() func() { return mv.actions.SaveAs }},
		{shortcutBold, func() func() { return mv.actions.Bold }},
		{shortcutItalic, func() func() { return mv.actions.Italic }},
		{shortcutUndo, func() func() { return mv.actions.Undo }},
		{shortcutRedo, func() func() { return mv.actions.Redo }},
		{shortcutRedoZ, func() func() { return mv.actions.Redo }},
	}

	mv.shortcuts = make(map[string]func(), len(bindings)+2)
	for _, b := range bindings {
		run := mv.fire(b.action)
		mv.shortcuts[b.shortcut.ShortcutName()] = run
		mv.window.Canvas().AddShortcut(b.shortcut, func(fyne.Shortcut) { run() })
	}
	// Entries translate Ctrl+Z / Ctrl+Y into their own history shortcuts.
	mv.shortcuts["Undo"] = mv.fire(func() func() { return mv.actions.Undo })
	mv.shortcuts["Redo"] = mv.fire(func() func() { return mv.actions.Redo })
}

func (mv *MainView) interceptShortcut(s fyne.Shortcut) bool {
	run, ok := mv.shortcuts[s.ShortcutName()]
	if !ok {
		return false
	}
	run()
	return true
}

func (mv *MainView) afterShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCut:
		if mv.actions.Cut != nil {
			mv.actions.Cut(true)
		}
	case *fyne.ShortcutCopy:
		if mv.actions.Copy != nil {
			mv.actions.Copy(true)
		}
	case *fyne.ShortcutPaste:
		if mv.actions.Paste != nil {
			mv.actions.Paste(true)
		}
	}
}
