package app

import (
	"fyne.io/fyne/v2"

	"portfolio/internal/config"
)

const (
	DefaultAppID        = "com.jajimenezluna.portfolio"
	DefaultTitle        = "Portfolio"
	DefaultCanvasID     = "canvas_id"
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768
)

// Options are the run options handed to the host framework: identity,
// window geometry and, on the web target, the page element to attach to.
type Options struct {
	AppID      string
	Title      string
	WindowSize fyne.Size
	CanvasID   string
}

func DefaultOptions() Options {
	return Options{
		AppID:      DefaultAppID,
		Title:      DefaultTitle,
		WindowSize: fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight),
		CanvasID:   DefaultCanvasID,
	}
}

// OptionsFrom starts from DefaultOptions and takes every field the app
// section sets.
func OptionsFrom(cfg config.AppConfig) Options {
	opts := DefaultOptions()

	if cfg.ID != "" {
		opts.AppID = cfg.ID
	}
	if cfg.Title != "" {
		opts.Title = cfg.Title
	}
	if cfg.WindowWidth > 0 {
		opts.WindowSize.Width = float32(cfg.WindowWidth)
	}
	if cfg.WindowHeight > 0 {
		opts.WindowSize.Height = float32(cfg.WindowHeight)
	}
	if cfg.CanvasID != "" {
		opts.CanvasID = cfg.CanvasID
	}
	return opts
}
