package main

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawLabel burns a one-line label into the frame's top-left corner so the
// viewport bounds survive in saved PNGs and screenshots.
func drawLabel(img *image.RGBA, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 13),
	}
	d.DrawString(text)
}
