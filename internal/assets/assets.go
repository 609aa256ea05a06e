// Package assets holds the resources compiled into the binary.
package assets

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

// FontName is the key the embedded font is registered under.
const FontName = "DejaVuSansMono"

//go:embed fonts/DejaVuSansMono.ttf
var fontData []byte

//go:embed profile.yaml
var profileData []byte

// Font returns the embedded font as a Fyne resource.
func Font() fyne.Resource {
	return fyne.NewStaticResource("DejaVuSansMono.ttf", fontData)
}

func Profile() []byte {
	return profileData
}
