package widgets

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestGlyphButtonTapped(t *testing.T) {
	test.NewTempApp(t)

	taps := 0
	b := NewGlyphButton("x", 30, func() { taps++ })
	test.NewTempWindow(t, b)

	test.Tap(b)
	test.Tap(b)
	assert.Equal(t, 2, taps)
}

func TestGlyphButtonNilHandler(t *testing.T) {
	test.NewTempApp(t)

	b := NewGlyphButton("x", 30, nil)
	assert.NotPanics(t, func() { test.Tap(b) })
}

func TestGlyphButtonRendersGlyph(t *testing.T) {
	test.NewTempApp(t)

	b := NewGlyphButton("a", 30, nil)
	test.NewTempWindow(t, b)

	r := test.WidgetRenderer(b).(*glyphButtonRenderer)
	assert.Equal(t, "a", r.text.Text)
	assert.Equal(t, float32(30), r.text.TextSize)

	b.SetGlyph("b")
	assert.Equal(t, "b", b.Glyph())
	assert.Equal(t, "b", r.text.Text)
	assert.Equal(t, float32(30), b.TextSize())

	minSize := b.MinSize()
	assert.Greater(t, minSize.Width, r.text.MinSize().Width)
	assert.GreaterOrEqual(t, minSize.Height, r.text.MinSize().Height)
}
