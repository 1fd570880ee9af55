package raster

import (
	"image/color"
	"math"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// edgeCoeffs returns A, B, C for edge(x,y) = A*x + B*y + C, the signed
// area of the parallelogram spanned by (x1-x0, y1-y0) and (x-x0, y-y0).
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1
	B = x1 - x0
	C = x0*y1 - x1*y0
	return
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

// scan calls shade for every pixel whose center lies inside the triangle,
// passing its barycentric coordinates. Either winding is accepted.
func (fb *Framebuffer) scan(p [3]math3d.Vec4, shade func(x, y int, b0, b1, b2 float64)) {
	area := (p[1].X-p[0].X)*(p[2].Y-p[0].Y) - (p[1].Y-p[0].Y)*(p[2].X-p[0].X)
	if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return
	}

	minX := int(math.Max(0, math.Floor(min3(p[0].X, p[1].X, p[2].X))))
	maxX := int(math.Min(float64(fb.Width-1), math.Ceil(max3(p[0].X, p[1].X, p[2].X))))
	minY := int(math.Max(0, math.Floor(min3(p[0].Y, p[1].Y, p[2].Y))))
	maxY := int(math.Min(float64(fb.Height-1), math.Ceil(max3(p[0].Y, p[1].Y, p[2].Y))))
	if minX > maxX || minY > maxY {
		return
	}

	// Edge 0: v1 -> v2, Edge 1: v2 -> v0, Edge 2: v0 -> v1. Dividing by
	// the signed area turns them into barycentrics for both windings.
	inv := 1 / area
	A0, B0, C0 := edgeCoeffs(p[1].X, p[1].Y, p[2].X, p[2].Y)
	A1, B1, C1 := edgeCoeffs(p[2].X, p[2].Y, p[0].X, p[0].Y)
	A2, B2, C2 := edgeCoeffs(p[0].X, p[0].Y, p[1].X, p[1].Y)
	A0, B0, C0 = A0*inv, B0*inv, C0*inv
	A1, B1, C1 = A1*inv, B1*inv, C1*inv
	A2, B2, C2 = A2*inv, B2*inv, C2*inv

	px := float64(minX) + 0.5
	py := float64(minY) + 0.5
	w0Row := A0*px + B0*py + C0
	w1Row := A1*px + B1*py + C1
	w2Row := A2*px + B2*py + C2

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				shade(x, y, w0, w1, w2)
			}
			w0 += A0
			w1 += A1
			w2 += A2
		}
		w0Row += B0
		w1Row += B1
		w2Row += B2
	}
}

// FillTriangle fills the triangle with a solid color.
func (fb *Framebuffer) FillTriangle(tri render.Triangle, c color.RGBA) {
	fb.scan(tri.P, func(x, y int, _, _, _ float64) {
		fb.Pixels[y*fb.Width+x] = c
	})
}

// StrokeTriangle draws the three edges of the triangle.
func (fb *Framebuffer) StrokeTriangle(tri render.Triangle, c color.RGBA) {
	for i := range 3 {
		a, b := tri.P[i], tri.P[(i+1)%3]
		fb.DrawLine(round(a.X), round(a.Y), round(b.X), round(b.Y), c)
	}
}

func round(f float64) int {
	return int(math.Round(f))
}

// TextureTriangle fills the triangle from its sprite, modulated by the
// triangle's shade. Texture coordinates are expected in the projected form
// (U/w, V/w, 1/w) and are interpolated perspective-correctly. Without a
// sprite the triangle is filled flat.
func (fb *Framebuffer) TextureTriangle(tri render.Triangle) {
	if tri.Sprite == nil {
		fb.FillTriangle(tri, tri.Color)
		return
	}
	t := tri.T
	fb.scan(tri.P, func(x, y int, b0, b1, b2 float64) {
		w := b0*t[0].W + b1*t[1].W + b2*t[2].W
		if w == 0 {
			return
		}
		u := (b0*t[0].U + b1*t[1].U + b2*t[2].U) / w
		v := (b0*t[0].V + b1*t[1].V + b2*t[2].V) / w
		fb.Pixels[y*fb.Width+x] = ModulateColor(tri.Sprite.Sample(u, v), tri.Color)
	})
}
