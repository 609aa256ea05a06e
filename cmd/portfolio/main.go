//go:build !js

package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(os.Stdout, logger.ParseLevel(cfg.Log.Level), cfg.Log.JSON)

	opts := app.OptionsFrom(cfg.App)
	application, err := app.NewApplication(fyneapp.NewWithID(opts.AppID), cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	stop := application.ListenForSignals()
	defer stop()

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
