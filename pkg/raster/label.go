package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// canvas exposes a framebuffer as a draw.Image. It is kept off Framebuffer
// itself so terminal screens don't size themselves from its Bounds.
type canvas struct {
	fb *Framebuffer
}

func (c canvas) ColorModel() color.Model { return color.RGBAModel }

func (c canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.fb.Width, c.fb.Height) }

func (c canvas) At(x, y int) color.Color { return c.fb.GetPixel(x, y) }

func (c canvas) Set(x, y int, col color.Color) {
	c.fb.SetPixel(x, y, color.RGBAModel.Convert(col).(color.RGBA))
}

// LabelFace is the font used for viewport labels and overlay text.
var LabelFace font.Face = basicfont.Face7x13

// DrawString writes s with its top-left corner at (x, y).
func (fb *Framebuffer) DrawString(x, y int, s string, c color.RGBA) {
	d := font.Drawer{
		Dst:  canvas{fb},
		Src:  image.NewUniform(c),
		Face: LabelFace,
		Dot:  fixed.P(x, y+LabelFace.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// StringWidth returns the width of s in pixels.
func StringWidth(s string) int {
	return font.MeasureString(LabelFace, s).Ceil()
}
