// Package render implements the painter geometry pipeline: model triangles
// are transformed, lit, culled, clipped, projected and screen-mapped per
// camera into an ordered list of 2D triangles for an external rasterizer.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/taigrr/painter/pkg/math3d"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// Grey creates an opaque grey of the given intensity.
func Grey(v uint8) Color {
	return Color{v, v, v, 255}
}

// RenderMode selects how a triangle is culled and drawn.
type RenderMode int

const (
	// Inherit defers to Options.Mode. Mesh triangles normally carry it.
	Inherit RenderMode = iota
	Invisible
	GreyFilled
	GreyFilledOutline
	Wireframe
	WireframeRGB
	Textured
	TexturedOutline
)

var modeNames = [...]string{
	Inherit:           "inherit",
	Invisible:         "invisible",
	GreyFilled:        "grey",
	GreyFilledOutline: "grey-outline",
	Wireframe:         "wireframe",
	WireframeRGB:      "wireframe-rgb",
	Textured:          "textured",
	TexturedOutline:   "textured-outline",
}

func (m RenderMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
	return modeNames[m]
}

// ModeNames lists the names accepted by ParseRenderMode in value order.
func ModeNames() []string {
	return append([]string(nil), modeNames[:]...)
}

// ParseRenderMode maps a mode name as printed by String back to its value.
func ParseRenderMode(s string) (RenderMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return RenderMode(i), nil
		}
	}
	return Inherit, fmt.Errorf("unknown render mode %q", s)
}

// IsWireframe reports whether the mode draws edges only. Wireframe modes
// skip backface culling so both faces are visible.
func (m RenderMode) IsWireframe() bool {
	return m == Wireframe || m == WireframeRGB
}

// IsTextured reports whether the mode samples the triangle's sprite.
func (m RenderMode) IsTextured() bool {
	return m == Textured || m == TexturedOutline
}

// HasOutline reports whether the mode draws edges on top of the fill.
func (m RenderMode) HasOutline() bool {
	return m == GreyFilledOutline || m == TexturedOutline
}

// Sprite is a read-only texture a rasterizer can sample. Triangles hold a
// borrowed reference; the owner keeps it alive for as long as any frame
// refers to it.
type Sprite interface {
	Sample(u, v float64) Color
}

// Triangle is a value-copied pipeline primitive. Vertices are ordered
// clockwise as seen from the front face.
type Triangle struct {
	P      [3]math3d.Vec4
	T      [3]math3d.TexCoord
	Color  Color
	Mode   RenderMode
	Sprite Sprite
}

// Tri creates a triangle from three points with default texture coordinates.
func Tri(a, b, c math3d.Vec4) Triangle {
	return Triangle{
		P: [3]math3d.Vec4{a, b, c},
		T: [3]math3d.TexCoord{math3d.UV(0, 0), math3d.UV(0, 0), math3d.UV(0, 0)},
	}
}

// Depth returns the mean Z of the three vertices.
func (t Triangle) Depth() float64 {
	return (t.P[0].Z + t.P[1].Z + t.P[2].Z) / 3
}

// Normal returns the unit face normal (p1-p0) × (p2-p0).
func (t Triangle) Normal() math3d.Vec3 {
	a := t.P[1].Sub(t.P[0]).Vec3()
	b := t.P[2].Sub(t.P[0]).Vec3()
	return a.Cross(b).Normalize()
}

// SignedArea returns twice the signed area of the triangle projected onto
// the XY plane. Its sign identifies the winding.
func (t Triangle) SignedArea() float64 {
	a := t.P[1].Sub(t.P[0])
	b := t.P[2].Sub(t.P[0])
	return a.X*b.Y - a.Y*b.X
}

// IsFinite reports whether all vertex coordinates are finite.
func (t Triangle) IsFinite() bool {
	return t.P[0].IsFinite() && t.P[1].IsFinite() && t.P[2].IsFinite()
}

// Transform returns a copy with every vertex multiplied by m.
func (t Triangle) Transform(m math3d.Mat4) Triangle {
	for i := range t.P {
		t.P[i] = m.MulVec4(t.P[i])
	}
	return t
}
