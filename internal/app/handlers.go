package app

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"portfolio/internal/gui"
	"portfolio/internal/logger"
)

// ThemeShortcut toggles the theme from the keyboard (Ctrl+T, Cmd+T on macOS).
var ThemeShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyT,
	Modifier: fyne.KeyModifierShortcutDefault,
}

type Handlers struct {
	guiManager   *gui.Manager
	logger       logger.Logger
	followSystem bool

	mu          sync.Mutex
	lastVariant fyne.ThemeVariant
}

func NewHandlers(gm *gui.Manager, log logger.Logger, followSystem bool, variant fyne.ThemeVariant) *Handlers {
	return &Handlers{
		guiManager:   gm,
		logger:       log,
		followSystem: followSystem,
		lastVariant:  variant,
	}
}

func (h *Handlers) HandleThemeShortcut(fyne.Shortcut) {
	h.guiManager.Toggle()
}

// HandleSystemVariant follows an OS light/dark change when the configured
// theme is "system". Repeats of the last seen variant are ignored, so
// applying our own theme does not feed back into the toggle.
func (h *Handlers) HandleSystemVariant(variant fyne.ThemeVariant) {
	if !h.followSystem {
		return
	}

	h.mu.Lock()
	if variant == h.lastVariant {
		h.mu.Unlock()
		return
	}
	h.lastVariant = variant
	h.mu.Unlock()

	h.logger.Info("Handlers", "system theme changed", map[string]interface{}{
		"dark_mode": variant == theme.VariantDark,
	})
	h.guiManager.SetDark(variant == theme.VariantDark)
}

// WatchSettings forwards settings changes until ctx is done. Fyne cannot
// unregister a change listener, so after ctx is done the channel is still
// drained and changes are dropped; otherwise each later change would park
// a sender goroutine inside Fyne forever.
func (h *Handlers) WatchSettings(ctx context.Context, settings fyne.Settings) {
	if !h.followSystem {
		return
	}

	changes := make(chan fyne.Settings, 1)
	settings.AddChangeListener(changes)

	go func() {
		for {
			select {
			case s := <-changes:
				variant := s.ThemeVariant()
				fyne.Do(func() { h.HandleSystemVariant(variant) })
			case <-ctx.Done():
				for range changes {
				}
				return
			}
		}
	}()
}
