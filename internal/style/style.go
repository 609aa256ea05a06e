// Package style owns the application's visual state: the light/dark
// visuals, text sizes and the registered fonts, and turns them into a
// fyne.Theme.
package style

import (
	"maps"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"portfolio/internal/fonts"
)

// Visuals selects the palette every widget is drawn with.
type Visuals struct {
	Dark bool
}

func DarkVisuals() Visuals  { return Visuals{Dark: true} }
func LightVisuals() Visuals { return Visuals{Dark: false} }

// Toggled returns the opposite palette.
func (v Visuals) Toggled() Visuals {
	if v.Dark {
		return LightVisuals()
	}
	return DarkVisuals()
}

func (v Visuals) Variant() fyne.ThemeVariant {
	if v.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// VisualsFor maps a Fyne variant back onto Visuals.
func VisualsFor(variant fyne.ThemeVariant) Visuals {
	return Visuals{Dark: variant == theme.VariantDark}
}

// TextStyle names a text role whose size the style can override.
type TextStyle int

const (
	Heading TextStyle = iota
)

// Style is a value; use Clone before mutating a copy obtained from a Context.
type Style struct {
	Visuals    Visuals
	TextStyles map[TextStyle]float32
	Fonts      *fonts.Definitions
}

// Default returns dark visuals with no size overrides and no registered fonts.
func Default() Style {
	return Style{
		Visuals:    DarkVisuals(),
		TextStyles: make(map[TextStyle]float32),
		Fonts:      fonts.NewDefinitions(),
	}
}

func (s Style) Clone() Style {
	c := Style{
		Visuals:    s.Visuals,
		TextStyles: maps.Clone(s.TextStyles),
	}
	if c.TextStyles == nil {
		c.TextStyles = make(map[TextStyle]float32)
	}
	if s.Fonts != nil {
		c.Fonts = s.Fonts.Clone()
	} else {
		c.Fonts = fonts.NewDefinitions()
	}
	return c
}

func (s *Style) SetHeadingSize(size float32) {
	if s.TextStyles == nil {
		s.TextStyles = make(map[TextStyle]float32)
	}
	s.TextStyles[Heading] = size
}

// TextSize reports the override for ts, if any.
func (s Style) TextSize(ts TextStyle) (float32, bool) {
	size, ok := s.TextStyles[ts]
	return size, ok && size > 0
}
