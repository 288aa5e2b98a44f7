package main

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawHudText renders a line of status text directly into the framebuffer
// at pixel (x, y baseline), using the fixed 7x13 face so no font asset is
// needed.
func DrawHudText(fb *Framebuffer, x, y int, text string, c color.RGBA) {
	dst := &image.RGBA{
		Pix:    fb.Pix,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
