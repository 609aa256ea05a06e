// Package gui builds the portfolio window content and keeps it in step
// with the active theme.
package gui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"portfolio/internal/gui/components"
	"portfolio/internal/logger"
	"portfolio/internal/style"
)

type Options struct {
	Owner      string
	NameSize   float32
	GlyphSize  float32
	BarSpacing float32
}

// Manager owns the widgets of the single page. Update is the render pass:
// it reads the theme flag from the style context and redraws everything
// that depends on it.
type Manager struct {
	ctx    *style.Context
	logger logger.Logger

	header  *components.HeaderBar
	profile *components.ProfilePanel
	main    *fyne.Container

	mu     sync.Mutex
	frames uint64
}

func NewManager(ctx *style.Context, opts Options, log logger.Logger) *Manager {
	m := &Manager{
		ctx:     ctx,
		logger:  log,
		header:  components.NewHeaderBar(opts.GlyphSize, opts.BarSpacing),
		profile: components.NewProfilePanel(opts.Owner, opts.NameSize),
	}

	m.header.SetToggleHandler(m.Toggle)
	m.main = container.NewBorder(m.header.GetContainer(), nil, nil, nil, m.profile.GetContainer())

	ctx.OnVisualsChanged(func(style.Visuals) { m.Update() })
	m.Update()

	log.Info("GUIManager", "page created", map[string]interface{}{
		"owner":      opts.Owner,
		"name_size":  opts.NameSize,
		"glyph_size": opts.GlyphSize,
	})
	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.main
}

// Update syncs the toggle glyph, the name color and the debug label with
// the current visuals.
func (m *Manager) Update() {
	visuals := m.ctx.Visuals()
	fg := m.ctx.Theme().Color(theme.ColorNameForeground, visuals.Variant())

	m.header.SetDark(visuals.Dark)
	m.profile.Sync(visuals.Dark, fg)

	m.mu.Lock()
	m.frames++
	frames := m.frames
	m.mu.Unlock()

	m.logger.Debug("GUIManager", "page updated", map[string]interface{}{
		"dark_mode": visuals.Dark,
		"frame":     frames,
	})
}

// Toggle swaps the whole palette: dark becomes light and light becomes dark.
func (m *Manager) Toggle() {
	next := m.ctx.Visuals().Toggled()
	m.logger.Info("GUIManager", "theme toggled", map[string]interface{}{
		"dark_mode": next.Dark,
	})
	m.ctx.SetVisuals(next)
}

// SetDark selects a mode explicitly.
func (m *Manager) SetDark(dark bool) {
	if m.ctx.Visuals().Dark == dark {
		return
	}
	m.ctx.SetVisuals(style.Visuals{Dark: dark})
}

func (m *Manager) ThemeButton() fyne.Tappable {
	return m.header.ThemeButton
}

func (m *Manager) Glyph() string {
	return m.header.ThemeButton.Glyph()
}

func (m *Manager) DebugText() string {
	return m.profile.DebugText()
}

// Frames reports how many update passes have run.
func (m *Manager) Frames() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}
