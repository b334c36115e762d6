package app

import (
	"context"
	"runtime"

	"cwc-viewer/internal/config"
	"cwc-viewer/internal/controllers"
	"cwc-viewer/internal/imaging"
	"cwc-viewer/internal/logger"
	"cwc-viewer/internal/schedule"
	"cwc-viewer/internal/shutdown"
	"cwc-viewer/internal/stadiums"
	"cwc-viewer/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "FIFA Club World Cup 2025"
	AppID      = "com.clubworldcup.schedule-viewer"
	AppVersion = "1.0.0"
)

// Application wires the schedule and stadium data to the main window.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     *logger.ZerologAdapter
	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

// NewApplication creates the window and all components from cfg.
func NewApplication(ctx context.Context, cfg config.Config) (*Application, error) {
	appLogger := logger.NewFromOptions(cfg.LoggerOptions())

	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	shutdownManager := shutdown.NewManager(ctx, appLogger)

	store := schedule.NewStore()
	directory := stadiums.NewDirectory()
	resolver := imaging.NewResolver(cfg.ImageDir, appLogger)

	controller := controllers.NewMainController(shutdownManager.Context(), store, directory, resolver, appLogger)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	shutdownManager.Register("controller", controller)

	appLogger.Info("Application", "application initialized", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
		"image_dir":  cfg.ImageDir,
		"matches":    store.Len(),
		"stadiums":   len(directory.ListCities()),
	})

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		controller: controller,
		view:       view,
		shutdown:   shutdownManager,
	}
	application.setupWindowEvents()
	application.setupMenus()

	return application, nil
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.controller.Start()
	a.view.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	// The logger outlives the shutdown manager so its final entries reach the file.
	a.logger.Shutdown()
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.shutdown.Shutdown()
	})
}
