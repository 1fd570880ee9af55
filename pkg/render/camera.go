package render

import (
	"sort"

	"github.com/taigrr/painter/pkg/math3d"
)

// Default projection parameters.
const (
	DefaultFOV  = 90.0
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// CameraConfig describes a camera at creation. Zero projection values fall
// back to DefaultFOV, DefaultNear and DefaultFar; a zero grey range falls
// back to [0, 255].
type CameraConfig struct {
	Name string

	// Viewport corners in absolute screen pixels, (X1, Y1) top-left.
	X1, Y1, X2, Y2 int

	FOV  float64 // degrees
	Near float64
	Far  float64

	MinRGB, MaxRGB int
}

// Camera owns a viewport, a view and a projection matrix and runs the
// per-triangle pipeline for that viewport.
//
// Position and the Euler angles are plain fields. Changing them has no
// effect until RecalculateCamera is called.
type Camera struct {
	Name string

	// Position in world space
	Position math3d.Vec4

	// Orientation (Euler angles in radians)
	Pitch float64 // around X
	Yaw   float64 // around Y
	Roll  float64 // around Z

	look, up, right math3d.Vec3

	view math3d.Mat4
	proj math3d.Mat4

	x1, y1, x2, y2 int
	width, height  int

	fov, near, far float64

	minRGB, maxRGB int
}

// NewCamera creates a camera at the origin looking down +Z.
func NewCamera(cfg CameraConfig) *Camera {
	c := &Camera{
		Name:     cfg.Name,
		Position: math3d.P(0, 0, 0),
		minRGB:   0,
		maxRGB:   255,
	}
	c.setViewport(cfg.X1, cfg.Y1, cfg.X2, cfg.Y2)
	c.SetRGBRange(cfg.MinRGB, cfg.MaxRGB)

	fov, near, far := cfg.FOV, cfg.Near, cfg.Far
	if fov == 0 {
		fov = DefaultFOV
	}
	if near == 0 {
		near = DefaultNear
	}
	if far == 0 {
		far = DefaultFar
	}
	c.UpdateCamera(fov, near, far)
	c.RecalculateCamera()
	return c
}

// SetRGBRange sets the grey range used for lighting. Ranges that violate
// 0 <= min < max <= 255 are ignored.
func (c *Camera) SetRGBRange(minVal, maxVal int) {
	if 0 <= minVal && minVal < maxVal && maxVal <= 255 {
		c.minRGB, c.maxRGB = minVal, maxVal
	}
}

// RGBRange returns the current grey range.
func (c *Camera) RGBRange() (minVal, maxVal int) {
	return c.minRGB, c.maxRGB
}

// UpdateCamera rebuilds the projection matrix. The aspect ratio comes from
// the viewport as height/width.
func (c *Camera) UpdateCamera(fovDeg, near, far float64) {
	c.fov, c.near, c.far = fovDeg, near, far
	c.proj = math3d.Projection(fovDeg, float64(c.height)/float64(c.width), near, far)
}

// SetViewport moves the camera's viewport and rebuilds the projection for
// the new aspect ratio. Call between frames only.
func (c *Camera) SetViewport(x1, y1, x2, y2 int) {
	c.setViewport(x1, y1, x2, y2)
	c.UpdateCamera(c.fov, c.near, c.far)
}

func (c *Camera) setViewport(x1, y1, x2, y2 int) {
	c.x1, c.y1, c.x2, c.y2 = x1, y1, x2, y2
	c.width, c.height = x2-x1, y2-y1
}

// Viewport returns the viewport corners.
func (c *Camera) Viewport() (x1, y1, x2, y2 int) {
	return c.x1, c.y1, c.x2, c.y2
}

// ViewportSize returns the cached viewport width and height.
func (c *Camera) ViewportSize() (width, height int) {
	return c.width, c.height
}

// Near returns the near plane distance.
func (c *Camera) Near() float64 { return c.near }

// Far returns the far plane distance.
func (c *Camera) Far() float64 { return c.far }

// FOV returns the field of view in degrees.
func (c *Camera) FOV() float64 { return c.fov }

// ViewMatrix returns the world-to-view matrix as of the last
// RecalculateCamera.
func (c *Camera) ViewMatrix() math3d.Mat4 { return c.view }

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 { return c.proj }

// Look returns the look direction.
func (c *Camera) Look() math3d.Vec3 { return c.look }

// Up returns the camera up direction.
func (c *Camera) Up() math3d.Vec3 { return c.up }

// Right returns the camera right direction.
func (c *Camera) Right() math3d.Vec3 { return c.right }

// SetPosition sets the camera position. Call RecalculateCamera afterwards.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos.Point()
}

// SetRotation sets pitch, yaw and roll in radians. Call RecalculateCamera
// afterwards.
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch, c.Yaw, c.Roll = pitch, yaw, roll
}

// MoveForward moves the camera along its look direction as of the last
// RecalculateCamera.
func (c *Camera) MoveForward(distance float64) {
	c.Position = c.Position.Add(c.look.Scale(distance).Point())
}

// MoveRight moves the camera along its right direction.
func (c *Camera) MoveRight(distance float64) {
	c.Position = c.Position.Add(c.right.Scale(distance).Point())
}

// MoveUp moves the camera along the world up axis.
func (c *Camera) MoveUp(distance float64) {
	c.Position = c.Position.Add(math3d.Up().Scale(distance).Point())
}

// RecalculateCamera rebuilds the camera basis and view matrix from the
// position and Euler angles. Rotations compose as Z·X·Y so yaw is the
// outermost axis.
func (c *Camera) RecalculateCamera() {
	rot := math3d.RotateZ(c.Roll).
		Mul(math3d.RotateX(c.Pitch)).
		Mul(math3d.RotateY(c.Yaw))

	c.look = rot.MulDir(math3d.Forward())
	c.up = rot.MulDir(math3d.Up())
	c.right = c.up.Cross(c.look)

	pos := c.Position.Vec3()
	c.view = math3d.QuickInverse(math3d.PointAt(pos, pos.Add(c.look), c.up))
}

// ClearCameraViewPort clears the camera's viewport on target, optionally
// with a border and the camera name, and zeroes the matching region of
// depth. Either argument may be nil.
func (c *Camera) ClearCameraViewPort(target ViewportClearer, depth *DepthBuffer, border bool) {
	if target != nil {
		target.ClearViewport(c.x1, c.y1, c.x2, c.y2, border, c.Name)
	}
	if depth != nil {
		depth.Clear(c.x1, c.y1, c.x2+1, c.y2+1)
	}
}

// CullViewAndProjectTriangle runs one world-space triangle through view
// transform, backface culling, lighting, near and far clipping, projection
// and screen mapping. Between zero and four triangles are appended to out.
//
// The triangle's own Mode wins unless it is Inherit. The effective mode is
// stamped on every output triangle.
func (c *Camera) CullViewAndProjectTriangle(tri Triangle, out []Triangle, opts Options) []Triangle {
	mode := tri.Mode
	if mode == Inherit {
		mode = opts.mode()
	}
	if mode == Invisible {
		return out
	}

	viewed := tri.Transform(c.view)
	viewed.Mode = mode

	// Camera sits at the view-space origin, so v0 is the camera ray.
	normal := viewed.Normal()
	if !normal.IsFinite() {
		return out
	}
	if !mode.IsWireframe() && normal.Dot(viewed.P[0].Vec3()) >= 0 {
		return out
	}

	light := c.view.MulDir(opts.light()).Normalize()
	lum := max(0, light.Dot(normal))
	if mode != WireframeRGB {
		viewed.Color = Grey(c.shade(lum))
	}

	n, nearClipped := ClipAgainstPlane(math3d.P(0, 0, c.near), math3d.V3(0, 0, 1), viewed)
	for i := range n {
		m, farClipped := ClipAgainstPlane(math3d.P(0, 0, c.far), math3d.V3(0, 0, -1), nearClipped[i])
		for j := range m {
			out = append(out, c.project(farClipped[j]))
		}
	}
	return out
}

// shade maps a luminance in [0, 1] linearly into the grey range.
func (c *Camera) shade(lum float64) uint8 {
	return uint8(int(lum*float64(c.maxRGB-c.minRGB)) + c.minRGB)
}

// project applies the projection, the perspective divide and the mapping
// from normalized device coordinates into the viewport.
func (c *Camera) project(tri Triangle) Triangle {
	w, h := float64(c.width), float64(c.height)
	for i := range tri.P {
		p := c.proj.MulVec4(tri.P[i])
		tri.T[i] = tri.T[i].Perspective(p.W)

		p = p.PerspectiveDivide()
		p.Y = -p.Y
		p.X = (p.X+1)*0.5*w + float64(c.x1)
		p.Y = (p.Y+1)*0.5*h + float64(c.y1)
		tri.P[i] = p
	}
	return tri
}

// ViewportPlanes returns the screen-space clip planes for the viewport in
// the order they are applied: top, bottom, left, right.
func (c *Camera) ViewportPlanes() [4]Plane {
	return [4]Plane{
		{Point: math3d.P(0, float64(c.y1)+0.1, 0), Normal: math3d.V3(0, 1, 0)},
		{Point: math3d.P(0, float64(c.y2)-1, 0), Normal: math3d.V3(0, -1, 0)},
		{Point: math3d.P(float64(c.x1)+0.1, 0, 0), Normal: math3d.V3(1, 0, 0)},
		{Point: math3d.P(float64(c.x2)-1, 0, 0), Normal: math3d.V3(-1, 0, 0)},
	}
}

// SortTriangles orders tris back to front by mean depth. Equal depths keep
// their input order.
func SortTriangles(tris []Triangle) {
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].Depth() > tris[j].Depth()
	})
}

// RasterizeTriangles sorts tris back to front and clips each against the
// four viewport edges. The result is appended to out and returned.
//
// Each edge only sees the triangles produced by the previous edge, so one
// input yields at most 2^4 outputs.
func (c *Camera) RasterizeTriangles(tris []Triangle, out []Triangle) []Triangle {
	SortTriangles(tris)

	planes := c.ViewportPlanes()
	var queue, next []Triangle
	for _, tri := range tris {
		queue = append(queue[:0], tri)
		for _, pl := range planes {
			next = next[:0]
			for _, t := range queue {
				n, clipped := pl.Clip(t)
				next = append(next, clipped[:n]...)
			}
			queue, next = next, queue
		}
		out = append(out, queue...)
	}
	return out
}
