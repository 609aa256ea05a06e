package app

import (
	"fmt"

	"fyne.io/fyne/v2"

	"portfolio/internal/assets"
	"portfolio/internal/config"
	"portfolio/internal/gui"
	"portfolio/internal/logger"
	"portfolio/internal/style"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	cfg        *config.Config
	options    Options
	logger     logger.Logger
	styleCtx   *style.Context
	guiManager *gui.Manager
	handlers   *Handlers
	lifecycle  *Lifecycle
}

// NewApplication bootstraps fonts and style on fyneApp, then builds the
// window and its page. A font that cannot be registered is a startup error.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	initial := initialVisuals(cfg.Style.Theme, fyneApp.Settings())

	s := style.Default()
	s.Visuals = initial
	styleCtx := style.NewContext(fyneApp.Settings(), s)

	application := &Application{
		fyneApp:  fyneApp,
		cfg:      cfg,
		options:  OptionsFrom(cfg.App),
		logger:   log,
		styleCtx: styleCtx,
	}

	if err := application.Bootstrap(); err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(application.options.Title)
	window.Resize(application.options.WindowSize)
	window.CenterOnScreen()
	window.SetMaster()
	application.window = window

	application.guiManager = gui.NewManager(styleCtx, gui.Options{
		Owner:      cfg.Profile.Owner,
		NameSize:   cfg.Style.NameSize,
		GlyphSize:  cfg.Style.GlyphSize,
		BarSpacing: cfg.Style.BarSpacing,
	}, log)
	window.SetContent(application.guiManager.GetMainContainer())

	application.lifecycle = NewLifecycle(fyneApp, log)
	application.setupHandlers()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":   cfg.App.Version,
		"title":     application.options.Title,
		"dark_mode": initial.Dark,
		"theme":     cfg.Style.Theme,
	})
	return application, nil
}

// Bootstrap registers the embedded font and applies the heading size.
// Running it again leaves the style unchanged.
func (a *Application) Bootstrap() error {
	s := a.styleCtx.Style()

	if err := s.Fonts.Register(a.cfg.Style.Font, assets.Font()); err != nil {
		return fmt.Errorf("register font %q: %w", a.cfg.Style.Font, err)
	}
	s.SetHeadingSize(a.cfg.Style.HeadingSize)
	a.styleCtx.SetStyle(s)

	a.logger.Debug("Application", "fonts registered", map[string]interface{}{
		"font":         a.cfg.Style.Font,
		"family":       s.Fonts.FontFamily(a.cfg.Style.Font),
		"heading_size": a.cfg.Style.HeadingSize,
	})
	return nil
}

func (a *Application) setupHandlers() {
	a.handlers = NewHandlers(a.guiManager, a.logger, a.cfg.Style.Theme == config.ThemeSystem,
		a.fyneApp.Settings().ThemeVariant())

	a.window.Canvas().AddShortcut(ThemeShortcut, a.handlers.HandleThemeShortcut)
	a.handlers.WatchSettings(a.lifecycle.Context(), a.fyneApp.Settings())

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})
}

// Run shows the window and blocks in the host run loop until the window
// is closed or the app quits. Call it from the main goroutine.
func (a *Application) Run() error {
	a.logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()
	a.logger.Info("Application", "run loop finished", nil)
	return nil
}

func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}

// ListenForSignals quits the app on SIGINT/SIGTERM.
func (a *Application) ListenForSignals() (stop func()) {
	return a.lifecycle.Listen()
}

func (a *Application) Options() Options {
	return a.options
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) GUI() *gui.Manager {
	return a.guiManager
}

func (a *Application) StyleContext() *style.Context {
	return a.styleCtx
}

func initialVisuals(mode string, settings fyne.Settings) style.Visuals {
	switch mode {
	case config.ThemeLight:
		return style.LightVisuals()
	case config.ThemeSystem:
		return style.VisualsFor(settings.ThemeVariant())
	default:
		return style.DarkVisuals()
	}
}
