package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"portfolio/internal/gui/widgets"
)

// Glyphs shown on the theme toggle. The button offers the mode you would
// switch to: a sun while dark, a moon while light.
const (
	GlyphSun  = "🔅"
	GlyphMoon = "🌙"
)

func ToggleGlyph(dark bool) string {
	if dark {
		return GlyphSun
	}
	return GlyphMoon
}

// HeaderBar is the top bar holding the right-aligned theme toggle.
type HeaderBar struct {
	container     *fyne.Container
	ThemeButton   *widgets.GlyphButton
	toggleHandler func()
}

func NewHeaderBar(glyphSize, spacing float32) *HeaderBar {
	hb := &HeaderBar{}
	hb.setupToolbar(glyphSize, spacing)
	return hb
}

func (hb *HeaderBar) setupToolbar(glyphSize, spacing float32) {
	hb.ThemeButton = widgets.NewGlyphButton(GlyphSun, glyphSize, hb.onToggle)

	bar := container.NewBorder(
		nil, nil,
		space(spacing),
		container.NewHBox(hb.ThemeButton, space(spacing)),
	)
	hb.container = container.NewVBox(bar, widget.NewSeparator())
}

func space(width float32) fyne.CanvasObject {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(width, 0))
	return r
}

func (hb *HeaderBar) GetContainer() *fyne.Container {
	return hb.container
}

func (hb *HeaderBar) SetToggleHandler(handler func()) {
	hb.toggleHandler = handler
}

// SetDark updates the toggle glyph for the given mode.
func (hb *HeaderBar) SetDark(dark bool) {
	hb.ThemeButton.SetGlyph(ToggleGlyph(dark))
}

func (hb *HeaderBar) onToggle() {
	if hb.toggleHandler != nil {
		hb.toggleHandler()
	}
}
