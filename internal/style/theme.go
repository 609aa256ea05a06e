package style

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"portfolio/internal/fonts"
)

// Theme is an immutable fyne.Theme built from a Style snapshot. The
// variant Fyne passes in is ignored: the style's visuals decide.
type Theme struct {
	base  fyne.Theme
	style Style
}

var _ fyne.Theme = (*Theme)(nil)

func NewTheme(s Style) *Theme {
	return &Theme{
		base:  theme.DefaultTheme(),
		style: s.Clone(),
	}
}

func (t *Theme) Visuals() Visuals {
	return t.style.Visuals
}

func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.style.Visuals.Variant())
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Symbol {
		return t.base.Font(style)
	}

	family := fonts.Proportional
	if style.Monospace {
		family = fonts.Monospace
	}
	if res := t.style.Fonts.Resolve(family); res != nil {
		return res
	}
	return t.base.Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameHeadingText {
		if size, ok := t.style.TextSize(Heading); ok {
			return size
		}
	}
	return t.base.Size(name)
}
