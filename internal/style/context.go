package style

import (
	"sync"

	"fyne.io/fyne/v2"

	"portfolio/internal/fonts"
)

// Context holds the live Style and pushes a fresh Theme into the Fyne
// settings whenever it changes. Writes happen on the UI goroutine; the
// lock only covers readers elsewhere, such as logging.
type Context struct {
	mu        sync.RWMutex
	style     Style
	settings  fyne.Settings
	listeners []func(Visuals)
}

// NewContext applies s to settings immediately. settings may be nil, in
// which case the context only tracks state.
func NewContext(settings fyne.Settings, s Style) *Context {
	c := &Context{
		style:    s.Clone(),
		settings: settings,
	}
	c.apply()
	return c
}

// Style returns a copy of the current style.
func (c *Context) Style() Style {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.style.Clone()
}

func (c *Context) SetStyle(s Style) {
	c.mu.Lock()
	c.style = s.Clone()
	c.mu.Unlock()
	c.apply()
}

func (c *Context) Visuals() Visuals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.style.Visuals
}

// SetVisuals swaps the whole palette.
func (c *Context) SetVisuals(v Visuals) {
	c.mu.Lock()
	c.style.Visuals = v
	c.mu.Unlock()
	c.apply()
}

func (c *Context) SetFonts(defs *fonts.Definitions) {
	c.mu.Lock()
	c.style.Fonts = defs.Clone()
	c.mu.Unlock()
	c.apply()
}

// OnVisualsChanged registers fn to run after every apply.
func (c *Context) OnVisualsChanged(fn func(Visuals)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Theme builds the theme for the current style.
func (c *Context) Theme() *Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return NewTheme(c.style)
}

func (c *Context) apply() {
	th := c.Theme()
	if c.settings != nil {
		c.settings.SetTheme(th)
	}

	c.mu.RLock()
	listeners := append([]func(Visuals){}, c.listeners...)
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn(th.Visuals())
	}
}
