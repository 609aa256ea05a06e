package components

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ProfilePanel is the central panel: the owner's name centered at the top
// and a label echoing the active theme flag.
type ProfilePanel struct {
	container  *fyne.Container
	nameText   *canvas.Text
	debugLabel *widget.Label
}

func NewProfilePanel(owner string, nameSize float32) *ProfilePanel {
	pp := &ProfilePanel{}
	pp.createComponents(owner, nameSize)
	pp.setupLayout()
	return pp
}

func (pp *ProfilePanel) createComponents(owner string, nameSize float32) {
	pp.nameText = canvas.NewText(owner, color.Black)
	pp.nameText.TextSize = nameSize
	pp.nameText.Alignment = fyne.TextAlignCenter

	pp.debugLabel = widget.NewLabel("")
}

func (pp *ProfilePanel) setupLayout() {
	pp.container = container.NewVBox(
		container.NewCenter(pp.nameText),
		pp.debugLabel,
	)
}

func (pp *ProfilePanel) GetContainer() *fyne.Container {
	return pp.container
}

// Sync redraws the panel for the active mode. fg is the theme foreground;
// canvas text does not follow theme changes on its own.
func (pp *ProfilePanel) Sync(dark bool, fg color.Color) {
	pp.nameText.Color = fg
	pp.nameText.Refresh()
	pp.debugLabel.SetText(strconv.FormatBool(dark))
}

func (pp *ProfilePanel) Name() *canvas.Text {
	return pp.nameText
}

func (pp *ProfilePanel) DebugText() string {
	return pp.debugLabel.Text
}
