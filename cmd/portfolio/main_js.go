//go:build js && wasm

package main

import (
	"errors"
	"fmt"
	"syscall/js"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/logger"
)

func main() {
	appLogger := logger.NewBrowserConsoleLogger(zerolog.DebugLevel)

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("Main", err, nil)
		return
	}

	opts := app.OptionsFrom(cfg.App)
	if err := requireCanvas(opts.CanvasID); err != nil {
		appLogger.Error("Main", err, nil)
		return
	}

	application, err := app.NewApplication(fyneapp.NewWithID(opts.AppID), cfg, appLogger)
	if err != nil {
		appLogger.Error("Main", fmt.Errorf("failed to start: %w", err), nil)
		return
	}

	errc := application.Start()

	// Start has returned; main stays alive only because the wasm runtime
	// exits with it.
	if err := <-errc; err != nil {
		appLogger.Error("Main", fmt.Errorf("failed to start: %w", err), nil)
	}
}

// requireCanvas checks that the host page provides the element the app
// attaches to.
func requireCanvas(id string) error {
	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return errors.New("no document in this host")
	}
	if el := doc.Call("getElementById", id); el.IsNull() || el.IsUndefined() {
		return fmt.Errorf("host page has no element with id %q", id)
	}
	return nil
}
