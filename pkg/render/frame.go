package render

import (
	"github.com/taigrr/painter/pkg/math3d"
)

// DefaultLightDir is used when Options.LightDir is the zero vector.
var DefaultLightDir = math3d.V3(1, 1, 1)

// Options carries the per-frame pipeline settings. The zero value renders
// like DefaultOptions.
type Options struct {
	// Mode applies to triangles whose own mode is Inherit. Inherit here
	// means the default mode.
	Mode RenderMode

	// LightDir is the world-space direction used for Lambert shading.
	LightDir math3d.Vec3
}

// DefaultOptions returns grey-filled-with-outline rendering lit from
// DefaultLightDir.
func DefaultOptions() Options {
	return Options{Mode: GreyFilledOutline, LightDir: DefaultLightDir}
}

func (o Options) mode() RenderMode {
	if o.Mode == Inherit {
		return DefaultOptions().Mode
	}
	return o.Mode
}

func (o Options) light() math3d.Vec3 {
	if o.LightDir == (math3d.Vec3{}) {
		return DefaultLightDir
	}
	return o.LightDir
}

// Rasterizer consumes the final screen-space triangles of one camera,
// already ordered back to front. The slice is reused by the next frame and
// must not be retained.
type Rasterizer interface {
	DrawTriangles(tris []Triangle)
}

// ViewportClearer is implemented by rasterizers that can blank a viewport
// before a camera draws into it.
type ViewportClearer interface {
	ClearViewport(x1, y1, x2, y2 int, border bool, label string)
}

// MeshSource supplies model-space triangles. The returned slice is treated
// as read-only.
type MeshSource interface {
	Triangles() []Triangle
}

// BoundedSource is a MeshSource that knows its model-space bounds. Frame
// skips cameras whose frustum misses the transformed box.
type BoundedSource interface {
	MeshSource
	Bounds() AABB
}

// FrameStats counts triangles through one Render call, summed over cameras.
type FrameStats struct {
	Input     int // mesh triangles per camera
	Projected int // after cull and near/far clip
	Dropped   int // non-finite after projection
	Rendered  int // after viewport clip
	Skipped   int // cameras whose frustum missed the mesh bounds
}

// Frame drives a set of cameras over a mesh once per frame. It owns the
// depth buffer shared by all cameras.
type Frame struct {
	Cameras []*Camera
	Depth   *DepthBuffer
	Options Options

	// Border draws viewport borders and camera names when clearing.
	Border bool

	projected []Triangle
	rendered  []Triangle
}

// NewFrame creates a frame for a screen of the given size.
func NewFrame(screenWidth, screenHeight int, cams ...*Camera) *Frame {
	return &Frame{
		Cameras: cams,
		Depth:   NewDepthBuffer(screenWidth, screenHeight),
		Options: DefaultOptions(),
	}
}

// WorldTransform moves a model-space triangle into world space.
func WorldTransform(tri Triangle, world math3d.Mat4) Triangle {
	return tri.Transform(world)
}

// Render runs every camera over mesh and hands each camera's triangles to
// target. Cameras are processed in order; viewports are expected not to
// overlap.
func (f *Frame) Render(mesh MeshSource, world math3d.Mat4, target Rasterizer) FrameStats {
	var stats FrameStats
	tris := mesh.Triangles()
	clearer, _ := target.(ViewportClearer)

	bounded, hasBounds := mesh.(BoundedSource)
	var box AABB
	if hasBounds {
		box = bounded.Bounds().Transform(world)
	}

	for _, cam := range f.Cameras {
		cam.ClearCameraViewPort(clearer, f.Depth, f.Border)
		if hasBounds && !cam.Frustum().IntersectsAABB(box) {
			stats.Skipped++
			continue
		}

		f.projected = f.projected[:0]
		for _, tri := range tris {
			f.projected = cam.CullViewAndProjectTriangle(WorldTransform(tri, world), f.projected, f.Options)
		}
		stats.Input += len(tris)
		stats.Projected += len(f.projected)

		kept := f.projected[:0]
		for _, tri := range f.projected {
			if tri.IsFinite() {
				kept = append(kept, tri)
			}
		}
		dropped := len(f.projected) - len(kept)
		if dropped > 0 {
			Logger().Warn("dropped non-finite triangles", "camera", cam.Name, "count", dropped)
		}
		stats.Dropped += dropped

		f.rendered = cam.RasterizeTriangles(kept, f.rendered[:0])
		stats.Rendered += len(f.rendered)
		if target != nil {
			target.DrawTriangles(f.rendered)
		}
	}

	Logger().Debug("frame rendered",
		"cameras", len(f.Cameras),
		"input", stats.Input,
		"projected", stats.Projected,
		"dropped", stats.Dropped,
		"rendered", stats.Rendered,
		"skipped", stats.Skipped,
		"mode", f.Options.Mode.String())
	return stats
}
