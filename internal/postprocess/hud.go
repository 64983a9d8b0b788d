package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	hudText   = color.NRGBA{230, 230, 230, 255}
	hudShadow = color.NRGBA{0, 0, 0, 255}
)

// hudLineHeight matches basicfont.Face7x13.
const hudLineHeight = 13

// DrawHUD writes lines of text into the top-left corner of img with a
// one-pixel drop shadow.
func DrawHUD(img *image.NRGBA, lines []string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Face: face}
	for i, line := range lines {
		base := 6 + hudLineHeight*(i+1)
		d.Src = image.NewUniform(hudShadow)
		d.Dot = fixed.P(7, base+1)
		d.DrawString(line)

		d.Src = image.NewUniform(hudText)
		d.Dot = fixed.P(6, base)
		d.DrawString(line)
	}
}

// TextWidth is the advance of s in pixels in the HUD font.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}
