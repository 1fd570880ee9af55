// Package raster is the pixel backend for the painter pipeline. A
// Framebuffer receives the screen-space triangles of each camera, fills or
// outlines them according to their render mode, and can be shown in a
// terminal or saved as an image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/taigrr/painter/pkg/render"
)

// Colors used by the framebuffer.
var (
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorYellow = color.RGBA{255, 255, 0, 255}
	ColorGrey   = color.RGBA{128, 128, 128, 255}
)

// Framebuffer is a 2D array of pixels. It implements render.Rasterizer and
// render.ViewportClearer.
type Framebuffer struct {
	Width  int          // Width in pixels (terminal columns)
	Height int          // Height in pixels (2x terminal rows due to half-blocks)
	Pixels []color.RGBA // Row-major pixel data

	Background color.RGBA // viewport fill
	Border     color.RGBA // viewport border and label
	Wire       color.RGBA // wireframe and outline strokes
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// Height should be 2x the desired terminal rows for half-block rendering.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:      width,
		Height:     height,
		Pixels:     make([]color.RGBA, width*height),
		Background: ColorBlack,
		Border:     ColorYellow,
		Wire:       ColorWhite,
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect draws a filled rectangle.
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	for py := max(y, 0); py < min(y+h, fb.Height); py++ {
		for px := max(x, 0); px < min(x+w, fb.Width); px++ {
			fb.Pixels[py*fb.Width+px] = c
		}
	}
}

// DrawRectOutline draws a rectangle outline.
func (fb *Framebuffer) DrawRectOutline(x, y, w, h int, c color.RGBA) {
	for px := x; px < x+w; px++ {
		fb.SetPixel(px, y, c)
		fb.SetPixel(px, y+h-1, c)
	}
	for py := y; py < y+h; py++ {
		fb.SetPixel(x, py, c)
		fb.SetPixel(x+w-1, py, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ClearViewport fills the inclusive rectangle (x1, y1)-(x2, y2) with the
// background. With border set it also draws a two pixel frame just outside
// the rectangle and writes label in its top-left corner.
func (fb *Framebuffer) ClearViewport(x1, y1, x2, y2 int, border bool, label string) {
	fb.DrawRect(x1, y1, x2-x1+1, y2-y1+1, fb.Background)
	if !border {
		return
	}
	for i := range 2 {
		fb.DrawRectOutline(x1-1-i, y1-1-i, x2-x1+3+2*i, y2-y1+3+2*i, fb.Border)
	}
	if label != "" {
		fb.DrawString(x1+2, y1+2, label, fb.Border)
	}
}

// DrawTriangles draws screen-space triangles in order, each according to
// its render mode. Later triangles paint over earlier ones.
func (fb *Framebuffer) DrawTriangles(tris []render.Triangle) {
	for _, tri := range tris {
		switch tri.Mode {
		case render.GreyFilled:
			fb.FillTriangle(tri, tri.Color)
		case render.GreyFilledOutline:
			fb.FillTriangle(tri, tri.Color)
			fb.StrokeTriangle(tri, fb.Wire)
		case render.Wireframe:
			fb.StrokeTriangle(tri, fb.Wire)
		case render.WireframeRGB:
			fb.StrokeTriangle(tri, tri.Color)
		case render.Textured:
			fb.TextureTriangle(tri)
		case render.TexturedOutline:
			fb.TextureTriangle(tri)
			fb.StrokeTriangle(tri, fb.Wire)
		}
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
