package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// GlyphButton is a button whose face is a single glyph drawn at a fixed
// text size, independent of the theme's text size.
type GlyphButton struct {
	widget.BaseWidget

	OnTapped func()

	glyph string
	size  float32
}

var _ fyne.Tappable = (*GlyphButton)(nil)

func NewGlyphButton(glyph string, size float32, tapped func()) *GlyphButton {
	b := &GlyphButton{
		OnTapped: tapped,
		glyph:    glyph,
		size:     size,
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *GlyphButton) Glyph() string {
	return b.glyph
}

func (b *GlyphButton) SetGlyph(glyph string) {
	if b.glyph == glyph {
		return
	}
	b.glyph = glyph
	b.Refresh()
}

func (b *GlyphButton) TextSize() float32 {
	return b.size
}

func (b *GlyphButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

func (b *GlyphButton) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(color.Transparent)
	text := canvas.NewText(b.glyph, color.Transparent)
	text.Alignment = fyne.TextAlignCenter

	r := &glyphButtonRenderer{
		button:     b,
		background: background,
		text:       text,
		objects:    []fyne.CanvasObject{background, text},
	}
	r.applyTheme()
	return r
}

type glyphButtonRenderer struct {
	button     *GlyphButton
	background *canvas.Rectangle
	text       *canvas.Text
	objects    []fyne.CanvasObject
}

func (r *glyphButtonRenderer) applyTheme() {
	th := r.button.Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	r.background.FillColor = th.Color(theme.ColorNameButton, variant)
	r.background.CornerRadius = th.Size(theme.SizeNameInputRadius)

	r.text.Text = r.button.glyph
	r.text.TextSize = r.button.size
	r.text.Color = th.Color(theme.ColorNameForeground, variant)
}

func (r *glyphButtonRenderer) padding() float32 {
	return r.button.Theme().Size(theme.SizeNameInnerPadding)
}

func (r *glyphButtonRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	textSize := r.text.MinSize()
	r.text.Resize(textSize)
	r.text.Move(fyne.NewPos((size.Width-textSize.Width)/2, (size.Height-textSize.Height)/2))
}

func (r *glyphButtonRenderer) MinSize() fyne.Size {
	pad := r.padding()
	return r.text.MinSize().Add(fyne.NewSize(pad*2, pad))
}

func (r *glyphButtonRenderer) Refresh() {
	r.applyTheme()
	r.background.Refresh()
	r.text.Refresh()
}

func (r *glyphButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *glyphButtonRenderer) Destroy() {}
