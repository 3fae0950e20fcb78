package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"dostext/internal/config"
	"dostext/internal/controllers"
	"dostext/internal/logger"
	"dostext/internal/models"
	"dostext/internal/platform"
	"dostext/internal/services"
	"dostext/internal/shutdown"
	"dostext/internal/views"
)

const (
	AppID      = "com.dostext.editor"
	AppVersion = "1.0.0"
)

// Application owns the window and the MVC components built around it
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	shutdown *shutdown.Manager
	logFile  *os.File
}

func main() {
	application, err := NewApplication()
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	setupGracefulShutdown(application)

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication loads the configuration and builds the window
func NewApplication() (*Application, error) {
	cfgPath := config.PathFromEnv()
	cfg, cfgErr := config.Load(cfgPath)

	level := determineLogLevel()
	appLogger, logFile, err := newLogger(level, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	if cfgErr != nil {
		appLogger.Warning("Application", "using default configuration", map[string]interface{}{
			"path":  cfgPath,
			"error": cfgErr.Error(),
		})
	}

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    cfg.App,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(cfg.App)
	width, height := cfg.Size()
	window.Resize(fyne.NewSize(width, height))
	window.CenterOnScreen()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"config":     cfgPath,
		"resolution": fmt.Sprintf("%.0fx%.0f", width, height),
		"go_version": runtime.Version(),
		"log_level":  level.String(),
	})

	document := models.NewDocument(cfg.UndoLimit)
	mainView := views.NewMainView(window, cfg)

	var picker services.FilePicker = mainView
	if cfg.NativeDialogs {
		wd, _ := os.Getwd()
		picker = platform.NewNativePicker(appLogger, wd)
	}

	var clip services.Clipboard = window.Clipboard()
	if cfg.SystemClipboard {
		system := platform.NewSystemClipboard(appLogger)
		if system.Available() {
			clip = system
		} else {
			appLogger.Warning("Application", "system clipboard unavailable, using window clipboard", nil)
		}
	}

	mainController := controllers.NewMainController(cfg, document, mainView, picker, mainView, clip, appLogger)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: mainController,
		view:       mainView,
		shutdown:   shutdown.NewManager(appLogger),
		logFile:    logFile,
	}

	application.shutdown.Register("controller", mainController)

	application.setupWindowEvents()

	appLogger.Info("Application", "initialized", map[string]interface{}{
		"native_dialogs":   cfg.NativeDialogs,
		"system_clipboard": cfg.SystemClipboard,
		"wrap":             cfg.WordWrap(),
		"undo_limit":       cfg.UndoLimit,
	})

	return application, nil
}

// Run shows the window and blocks in the Fyne event loop
func (a *Application) Run() error {
	a.logger.Info("Application", "starting UI", nil)
	a.view.FocusText()
	a.window.ShowAndRun()
	return a.finish()
}

// finish runs the shutdown sequence, then closes the log file it logs to
func (a *Application) finish() error {
	a.shutdown.Shutdown()

	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			return fmt.Errorf("close log file: %w", err)
		}
	}
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Debug("Application", "window close requested", nil)
		a.controller.RequestClose()
	})

	a.controller.SetCloseHandler(func() {
		a.window.Close()
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
	})
}

// setupGracefulShutdown quits the event loop on SIGINT or SIGTERM. Unsaved
// edits are not prompted for.
func setupGracefulShutdown(a *Application) {
	a.shutdown.Listen(func() {
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	})
}

func newLogger(level zerolog.Level, path string) (logger.Logger, *os.File, error) {
	if path == "" {
		return logger.NewConsoleLogger(level), nil, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return logger.NewMultiLogger(level, file), file, nil
}

// determineLogLevel reads LOG_LEVEL, falling back to DEBUG=1
func determineLogLevel() zerolog.Level {
	return logger.ParseLevel(os.Getenv("LOG_LEVEL"), os.Getenv("DEBUG") == "1")
}
