package style

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/assets"
	"portfolio/internal/fonts"
)

func TestVisualsToggled(t *testing.T) {
	assert.Equal(t, LightVisuals(), DarkVisuals().Toggled())
	assert.Equal(t, DarkVisuals(), LightVisuals().Toggled())
	assert.Equal(t, theme.VariantDark, DarkVisuals().Variant())
	assert.Equal(t, theme.VariantLight, LightVisuals().Variant())
	assert.Equal(t, DarkVisuals(), VisualsFor(theme.VariantDark))
	assert.Equal(t, LightVisuals(), VisualsFor(theme.VariantLight))
}

func TestStyleCloneIsIndependent(t *testing.T) {
	s := Default()
	s.SetHeadingSize(35)

	c := s.Clone()
	c.SetHeadingSize(12)
	c.Visuals = LightVisuals()

	size, ok := s.TextSize(Heading)
	require.True(t, ok)
	assert.Equal(t, float32(35), size)
	assert.True(t, s.Visuals.Dark)
}

func TestSetHeadingSizeOnZeroStyle(t *testing.T) {
	var s Style
	s.SetHeadingSize(35)

	size, ok := s.TextSize(Heading)
	assert.True(t, ok)
	assert.Equal(t, float32(35), size)

	s.SetHeadingSize(0)
	_, ok = s.TextSize(Heading)
	assert.False(t, ok, "non-positive sizes fall back to the theme default")
}

func TestThemeSizes(t *testing.T) {
	s := Default()
	s.SetHeadingSize(35)
	th := NewTheme(s)

	assert.Equal(t, float32(35), th.Size(theme.SizeNameHeadingText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameText), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))
}

func TestThemeColorsFollowVisuals(t *testing.T) {
	base := theme.DefaultTheme()

	dark := NewTheme(Style{Visuals: DarkVisuals()})
	light := NewTheme(Style{Visuals: LightVisuals()})

	// the variant Fyne asks for is overridden by the style
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestThemeFonts(t *testing.T) {
	base := theme.DefaultTheme()

	plain := NewTheme(Default())
	assert.Equal(t, base.Font(fyne.TextStyle{}), plain.Font(fyne.TextStyle{}))

	s := Default()
	require.NoError(t, s.Fonts.Register(assets.FontName, assets.Font()))
	th := NewTheme(s)

	assert.Equal(t, assets.Font(), th.Font(fyne.TextStyle{}))
	assert.Equal(t, assets.Font(), th.Font(fyne.TextStyle{Bold: true}))
	assert.Equal(t, assets.Font(), th.Font(fyne.TextStyle{Monospace: true}))
	assert.Equal(t, base.Font(fyne.TextStyle{Symbol: true}), th.Font(fyne.TextStyle{Symbol: true}))
}

func TestContextAppliesTheme(t *testing.T) {
	a := test.NewTempApp(t)

	ctx := NewContext(a.Settings(), Default())
	applied, ok := a.Settings().Theme().(*Theme)
	require.True(t, ok)
	assert.True(t, applied.Visuals().Dark)

	ctx.SetVisuals(LightVisuals())
	applied, ok = a.Settings().Theme().(*Theme)
	require.True(t, ok)
	assert.False(t, applied.Visuals().Dark)
	assert.False(t, ctx.Visuals().Dark)
}

func TestContextNotifiesListeners(t *testing.T) {
	ctx := NewContext(nil, Default())

	var seen []bool
	ctx.OnVisualsChanged(func(v Visuals) { seen = append(seen, v.Dark) })

	ctx.SetVisuals(ctx.Visuals().Toggled())
	ctx.SetVisuals(ctx.Visuals().Toggled())

	assert.Equal(t, []bool{false, true}, seen)
}

func TestContextStyleIsACopy(t *testing.T) {
	ctx := NewContext(nil, Default())

	s := ctx.Style()
	s.SetHeadingSize(99)
	s.Visuals = LightVisuals()

	_, ok := ctx.Style().TextSize(Heading)
	assert.False(t, ok)
	assert.True(t, ctx.Visuals().Dark)

	ctx.SetStyle(s)
	size, ok := ctx.Style().TextSize(Heading)
	assert.True(t, ok)
	assert.Equal(t, float32(99), size)
}

func TestContextSetFonts(t *testing.T) {
	ctx := NewContext(nil, Default())

	defs := fonts.NewDefinitions()
	require.NoError(t, defs.Register(assets.FontName, assets.Font()))
	ctx.SetFonts(defs)

	assert.Equal(t, []string{assets.FontName}, ctx.Style().Fonts.Families(fonts.Proportional))
	assert.Equal(t, assets.Font(), ctx.Theme().Font(fyne.TextStyle{}))
}

func TestContextSetFontsNil(t *testing.T) {
	ctx := NewContext(nil, Default())

	require.NotPanics(t, func() { ctx.SetFonts(nil) })
	assert.Empty(t, ctx.Style().Fonts.Families(fonts.Proportional))
	assert.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{}), ctx.Theme().Font(fyne.TextStyle{}))
}
