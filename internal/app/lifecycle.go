package app

import (
	"context"

	"fyne.io/fyne/v2"

	"portfolio/internal/logger"
	"portfolio/internal/shutdown"
)

// Lifecycle quits the host app exactly once, whether the request comes
// from the window, a signal or the caller.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(fyneApp fyne.App, log logger.Logger) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register(shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))

	return &Lifecycle{
		manager: manager,
		logger:  log,
	}
}

func (l *Lifecycle) Listen() (stop func()) {
	return l.manager.Listen()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

// Context is cancelled when shutdown starts.
func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
