package demo

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// viewportMargin leaves room for the two pixel viewport border.
const viewportMargin = 2

// Viewport is an inclusive pixel rectangle.
type Viewport struct {
	X1, Y1, X2, Y2 int
}

// SplitViewports divides a width×height screen into n side-by-side
// viewports, each inset by the border margin.
func SplitViewports(width, height, n int) []Viewport {
	vps := make([]Viewport, n)
	for i := range n {
		left := width * i / n
		right := width * (i + 1) / n
		vps[i] = Viewport{
			X1: left + viewportMargin,
			Y1: viewportMargin,
			X2: right - 1 - viewportMargin,
			Y2: height - 1 - viewportMargin,
		}
	}
	return vps
}

// NewCamera creates a camera for vp from cfg.
func NewCamera(cfg Config, name string, vp Viewport) *render.Camera {
	return render.NewCamera(render.CameraConfig{
		Name:   name,
		X1:     vp.X1,
		Y1:     vp.Y1,
		X2:     vp.X2,
		Y2:     vp.Y2,
		FOV:    cfg.FOV,
		Near:   cfg.Near,
		Far:    cfg.Far,
		MinRGB: cfg.GreyMin,
		MaxRGB: cfg.GreyMax,
	})
}

// FrontCamera looks down +Z at the origin from distance.
func FrontCamera(cfg Config, vp Viewport, distance float64) *render.Camera {
	cam := NewCamera(cfg, "front", vp)
	cam.SetPosition(math3d.V3(0, 0, -distance))
	cam.RecalculateCamera()
	return cam
}

// SideCamera looks down -X at the origin from distance.
func SideCamera(cfg Config, vp Viewport, distance float64) *render.Camera {
	cam := NewCamera(cfg, "side", vp)
	cam.SetPosition(math3d.V3(distance, 0, 0))
	cam.SetRotation(0, math.Pi/2, 0)
	cam.RecalculateCamera()
	return cam
}

// Relayout moves each camera to its new viewport.
func Relayout(cams []*render.Camera, vps []Viewport) {
	for i, cam := range cams {
		if i >= len(vps) {
			return
		}
		vp := vps[i]
		cam.SetViewport(vp.X1, vp.Y1, vp.X2, vp.Y2)
	}
}
