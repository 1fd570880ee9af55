package render

import (
	"math"
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
)

func newTestCamera() *Camera {
	return NewCamera(CameraConfig{
		Name: "test",
		X1:   10,
		Y1:   20,
		X2:   210,
		Y2:   170,
		FOV:  90,
		Near: 0.1,
		Far:  20,
	})
}

// facing returns a triangle in the z plane whose front faces -Z, i.e. the
// default camera.
func facing(z float64) Triangle {
	return Tri(math3d.P(0, 0, z), math3d.P(0, 1, z), math3d.P(1, 1, z))
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera(CameraConfig{X2: 100, Y2: 50})

	if c.FOV() != DefaultFOV || c.Near() != DefaultNear || c.Far() != DefaultFar {
		t.Errorf("got fov=%v near=%v far=%v, want defaults", c.FOV(), c.Near(), c.Far())
	}
	if lo, hi := c.RGBRange(); lo != 0 || hi != 255 {
		t.Errorf("grey range = [%d, %d], want [0, 255]", lo, hi)
	}
	if w, h := c.ViewportSize(); w != 100 || h != 50 {
		t.Errorf("viewport size = %dx%d, want 100x50", w, h)
	}
	// aspect is height/width
	if got := c.ProjectionMatrix()[0][0]; math.Abs(got-0.5) > tol {
		t.Errorf("proj[0][0] = %v, want 0.5", got)
	}
}

func TestSetRGBRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
		wantLo int
		wantHi int
	}{
		{"valid", 32, 200, 32, 200},
		{"full", 0, 255, 0, 255},
		{"negative min", -1, 200, 10, 20},
		{"min equals max", 50, 50, 10, 20},
		{"min above max", 100, 50, 10, 20},
		{"max above 255", 0, 256, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCamera()
			c.SetRGBRange(10, 20)
			c.SetRGBRange(tt.lo, tt.hi)
			if lo, hi := c.RGBRange(); lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("got [%d, %d], want [%d, %d]", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestRecalculateCameraBasis(t *testing.T) {
	c := newTestCamera()

	if c.Look() != math3d.Forward() || c.Up() != math3d.Up() {
		t.Errorf("look = %v up = %v, want +Z and +Y", c.Look(), c.Up())
	}
	if got := c.Right(); math.Abs(got.Dot(c.Look())) > tol || math.Abs(got.Len()-1) > tol {
		t.Errorf("right = %v, want unit vector orthogonal to look", got)
	}
	// Right must be +X in view space, i.e. the screen's right.
	if got := c.ViewMatrix().MulVec4(c.Position.Add(c.Right().Point())); math.Abs(got.X-1) > tol {
		t.Errorf("position+right in view space = %v, want x = 1", got)
	}

	c.SetRotation(0.3, 1.1, -0.4)
	c.RecalculateCamera()
	look, up := c.Look(), c.Up()
	if math.Abs(look.Len()-1) > tol || math.Abs(up.Len()-1) > tol || math.Abs(look.Dot(up)) > tol {
		t.Errorf("basis not orthonormal: look=%v up=%v", look, up)
	}
	got := c.ViewMatrix().MulVec4(c.Position.Add(c.Right().Point()))
	if math.Abs(got.X-1) > tol || math.Abs(got.Y) > tol || math.Abs(got.Z) > tol {
		t.Errorf("rotated position+right in view space = %v, want (1, 0, 0)", got)
	}
}

func TestRecalculateCameraYaw(t *testing.T) {
	c := newTestCamera()
	c.SetRotation(0, math.Pi/2, 0)
	c.RecalculateCamera()

	// yaw keeps the camera level
	if got := c.Look(); math.Abs(got.Y) > tol || math.Abs(math.Abs(got.X)-1) > tol {
		t.Errorf("look = %v, want a horizontal axis", got)
	}
	if got := c.Up(); math.Abs(got.Y-1) > tol {
		t.Errorf("up = %v, want +Y", got)
	}
}

func TestViewMatrixMovesCameraToOrigin(t *testing.T) {
	c := newTestCamera()
	c.SetPosition(math3d.V3(0.5, 0.5, -2))
	c.SetRotation(0.2, -0.7, 0.1)
	c.RecalculateCamera()

	got := c.ViewMatrix().MulVec4(c.Position)
	if got.Vec3().Len() > tol {
		t.Errorf("camera position in view space = %v, want origin", got)
	}

	ahead := c.Position.Add(c.Look().Scale(3).Point())
	got = c.ViewMatrix().MulVec4(ahead)
	if math.Abs(got.X) > tol || math.Abs(got.Y) > tol || math.Abs(got.Z-3) > tol {
		t.Errorf("point ahead in view space = %v, want (0, 0, 3)", got)
	}
}

func TestPositionNeedsRecalculate(t *testing.T) {
	c := newTestCamera()
	before := c.ViewMatrix()
	c.SetPosition(math3d.V3(1, 2, 3))
	if c.ViewMatrix() != before {
		t.Error("view matrix changed before RecalculateCamera")
	}
	c.RecalculateCamera()
	if c.ViewMatrix() == before {
		t.Error("view matrix unchanged after RecalculateCamera")
	}
}

func TestMoveCamera(t *testing.T) {
	c := newTestCamera()
	c.MoveForward(2)
	c.MoveUp(1)
	if c.Position != math3d.P(0, 1, 2) {
		t.Errorf("position = %v, want (0, 1, 2)", c.Position)
	}
}

func TestMoveRightShiftsSceneLeft(t *testing.T) {
	c := newTestCamera()
	c.SetPosition(math3d.V3(0, 0, -3))
	c.RecalculateCamera()
	c.MoveRight(1)
	c.RecalculateCamera()

	if c.Position != math3d.P(1, 0, -3) {
		t.Errorf("position = %v, want (1, 0, -3)", c.Position)
	}
	if got := c.ViewMatrix().MulVec4(math3d.P(0, 0, 0)); got.X >= 0 {
		t.Errorf("origin in view space = %v, want it left of center", got)
	}
}

func TestCullViewAndProjectFrontFace(t *testing.T) {
	c := newTestCamera()
	opts := Options{Mode: GreyFilled, LightDir: math3d.V3(0, 0, -1)}

	out := c.CullViewAndProjectTriangle(facing(5), nil, opts)
	if len(out) != 1 {
		t.Fatalf("got %d triangles, want 1", len(out))
	}
	tri := out[0]
	if tri.Mode != GreyFilled {
		t.Errorf("mode = %v, want %v", tri.Mode, GreyFilled)
	}
	if tri.Color != Grey(255) {
		t.Errorf("color = %v, want full grey for a lit face", tri.Color)
	}

	// vertex (0,0,5) lands in the viewport center
	cx, cy := 10+100.0, 20+75.0
	if math.Abs(tri.P[0].X-cx) > tol || math.Abs(tri.P[0].Y-cy) > tol {
		t.Errorf("p0 = %v, want (%v, %v)", tri.P[0], cx, cy)
	}
	// +Y in world is up on screen
	if tri.P[1].Y >= tri.P[0].Y {
		t.Errorf("p1.y = %v, want above p0.y = %v", tri.P[1].Y, tri.P[0].Y)
	}
	for i, tc := range tri.T {
		if math.Abs(tc.W-0.2) > tol {
			t.Errorf("tex %d w = %v, want 1/5", i, tc.W)
		}
	}
}

func TestCullViewAndProjectBackFace(t *testing.T) {
	c := newTestCamera()
	back := facing(5)
	back.P[1], back.P[2] = back.P[2], back.P[1]

	tests := []struct {
		mode RenderMode
		want int
	}{
		{GreyFilled, 0},
		{GreyFilledOutline, 0},
		{Textured, 0},
		{TexturedOutline, 0},
		{Wireframe, 1},
		{WireframeRGB, 1},
		{Invisible, 0},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out := c.CullViewAndProjectTriangle(back, nil, Options{Mode: tt.mode})
			if len(out) != tt.want {
				t.Errorf("got %d triangles, want %d", len(out), tt.want)
			}
		})
	}
}

func TestCullViewAndProjectModeOverride(t *testing.T) {
	c := newTestCamera()

	tri := facing(5)
	tri.Mode = Invisible
	if out := c.CullViewAndProjectTriangle(tri, nil, Options{Mode: GreyFilled}); len(out) != 0 {
		t.Errorf("invisible triangle produced %d outputs", len(out))
	}

	tri.Mode = WireframeRGB
	tri.Color = RGB(200, 10, 10)
	out := c.CullViewAndProjectTriangle(tri, nil, Options{Mode: GreyFilled})
	if len(out) != 1 || out[0].Mode != WireframeRGB || out[0].Color != RGB(200, 10, 10) {
		t.Errorf("got %+v, want one WireframeRGB triangle keeping its color", out)
	}
}

func TestCullViewAndProjectZeroOptions(t *testing.T) {
	c := newTestCamera()

	out := c.CullViewAndProjectTriangle(facing(5), nil, Options{})
	if len(out) != 1 || out[0].Mode != GreyFilledOutline {
		t.Errorf("got %+v, want one triangle in the default mode", out)
	}
}

func TestCullViewAndProjectDegenerate(t *testing.T) {
	c := newTestCamera()

	tests := []struct {
		name string
		tri  Triangle
		mode RenderMode
		want int
	}{
		{"collinear filled", Tri(math3d.P(0, 0, 5), math3d.P(1, 1, 5), math3d.P(2, 2, 5)), GreyFilled, 0},
		{"infinite vertex filled", Tri(math3d.P(math.Inf(1), 0, 5), math3d.P(0, 1, 5), math3d.P(1, 1, 5)), GreyFilled, 0},
		{"nan vertex wireframe", Tri(math3d.P(math.NaN(), 0, 5), math3d.P(0, 1, 5), math3d.P(1, 1, 5)), Wireframe, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.CullViewAndProjectTriangle(tt.tri, nil, Options{Mode: tt.mode})
			if len(out) != tt.want {
				t.Errorf("got %d triangles, want %d", len(out), tt.want)
			}
		})
	}
}

func TestCullViewAndProjectShading(t *testing.T) {
	c := newTestCamera()
	c.SetRGBRange(32, 255)

	tests := []struct {
		name  string
		light math3d.Vec3
		want  uint8
	}{
		{"towards light", math3d.V3(0, 0, -1), 255},
		{"away from light", math3d.V3(0, 0, 1), 32},
		{"grazing", math3d.V3(1, 0, 0), 32},
		{"half", math3d.V3(0, math.Sqrt(3), -1), 143}, // int(0.5*223) + 32
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.CullViewAndProjectTriangle(facing(5), nil, Options{Mode: GreyFilled, LightDir: tt.light})
			if len(out) != 1 {
				t.Fatalf("got %d triangles, want 1", len(out))
			}
			if out[0].Color != Grey(tt.want) {
				t.Errorf("color = %v, want grey %d", out[0].Color, tt.want)
			}
		})
	}
}

func TestCullViewAndProjectNearFar(t *testing.T) {
	c := newTestCamera()

	tests := []struct {
		name string
		tri  Triangle
		want int
	}{
		{"behind camera", facing(-1), 0},
		{"beyond far", facing(25), 0},
		{"one vertex in front of near", Tri(math3d.P(0, 0, 3), math3d.P(0, 1, -1), math3d.P(1, 1, -1)), 1},
		{"two vertices in front of near", Tri(math3d.P(0, 0, 3), math3d.P(0, 1, 3), math3d.P(1, 1, -1)), 2},
		// near yields two triangles; far keeps one of the first and splits the second
		{"spanning near and far", Tri(math3d.P(0, 0, -1), math3d.P(0, 1, 30), math3d.P(1, 1, 30)), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := c.CullViewAndProjectTriangle(tt.tri, nil, Options{Mode: Wireframe})
			if len(out) != tt.want {
				t.Fatalf("got %d triangles, want %d", len(out), tt.want)
			}
			for _, tri := range out {
				for _, p := range tri.P {
					if p.Z < -tol || p.Z > 1+tol {
						t.Errorf("depth %v outside [0, 1]", p.Z)
					}
				}
			}
		})
	}
}

func TestCullViewAndProjectAppends(t *testing.T) {
	c := newTestCamera()
	out := []Triangle{facing(1)}
	out = c.CullViewAndProjectTriangle(facing(5), out, Options{Mode: GreyFilled})
	if len(out) != 2 || out[0] != facing(1) {
		t.Errorf("existing entries were not preserved: %v", out)
	}
}

func TestViewportClipIdempotent(t *testing.T) {
	c := newTestCamera()
	tri := Tri(math3d.P(50, 50, 0.5), math3d.P(100, 60, 0.5), math3d.P(70, 120, 0.5))

	out := c.RasterizeTriangles([]Triangle{tri}, nil)
	if len(out) != 1 || out[0] != tri {
		t.Errorf("got %v, want the inside triangle unchanged", out)
	}
}

func TestViewportClipBounds(t *testing.T) {
	c := newTestCamera()
	x1, y1, x2, y2 := c.Viewport()

	huge := []Triangle{
		Tri(math3d.P(-500, -500, 0.5), math3d.P(1000, -400, 0.5), math3d.P(100, 900, 0.5)),
		Tri(math3d.P(110, -50, 0.5), math3d.P(400, 95, 0.5), math3d.P(110, 300, 0.5)),
		Tri(math3d.P(-100, 95, 0.5), math3d.P(500, 90, 0.5), math3d.P(500, 100, 0.5)),
	}
	for i, tri := range huge {
		out := c.RasterizeTriangles([]Triangle{tri}, nil)
		if len(out) == 0 || len(out) > 16 {
			t.Errorf("triangle %d: got %d outputs, want 1..16", i, len(out))
		}
		for _, o := range out {
			for _, p := range o.P {
				if p.X < float64(x1)-tol || p.X > float64(x2)+tol || p.Y < float64(y1)-tol || p.Y > float64(y2)+tol {
					t.Errorf("triangle %d: vertex %v outside viewport", i, p)
				}
			}
		}
	}

	outside := Tri(math3d.P(300, 300, 0.5), math3d.P(400, 300, 0.5), math3d.P(300, 400, 0.5))
	if out := c.RasterizeTriangles([]Triangle{outside}, nil); len(out) != 0 {
		t.Errorf("triangle outside viewport produced %d outputs", len(out))
	}
}

func TestRasterizeTrianglesSortsBackToFront(t *testing.T) {
	c := newTestCamera()
	mk := func(z float64, tag uint8) Triangle {
		tri := Tri(math3d.P(50, 50, z), math3d.P(100, 60, z), math3d.P(70, 120, z))
		tri.Color = RGB(tag, 0, 0)
		return tri
	}

	out := c.RasterizeTriangles([]Triangle{mk(0.2, 1), mk(0.9, 2), mk(0.5, 3), mk(0.9, 4)}, nil)
	want := []uint8{2, 4, 3, 1}
	if len(out) != len(want) {
		t.Fatalf("got %d triangles, want %d", len(out), len(want))
	}
	for i, tag := range want {
		if out[i].Color.R != tag {
			t.Errorf("position %d: got tag %d, want %d", i, out[i].Color.R, tag)
		}
	}
}

type recordingClearer struct {
	x1, y1, x2, y2 int
	border         bool
	label          string
	calls          int
}

func (r *recordingClearer) ClearViewport(x1, y1, x2, y2 int, border bool, label string) {
	r.x1, r.y1, r.x2, r.y2 = x1, y1, x2, y2
	r.border, r.label = border, label
	r.calls++
}

func TestClearCameraViewPort(t *testing.T) {
	c := newTestCamera()
	depth := NewDepthBuffer(300, 200)
	for i := range depth.Data {
		depth.Data[i] = 1
	}

	var rc recordingClearer
	c.ClearCameraViewPort(&rc, depth, true)

	if rc.calls != 1 || rc.x1 != 10 || rc.y1 != 20 || rc.x2 != 210 || rc.y2 != 170 || !rc.border || rc.label != "test" {
		t.Errorf("unexpected clear call: %+v", rc)
	}
	// x2 and y2 are inclusive
	if depth.At(210, 170) != 0 || depth.At(10, 20) != 0 {
		t.Error("viewport corners not cleared")
	}
	if depth.At(211, 170) != 1 || depth.At(9, 20) != 1 || depth.At(10, 171) != 1 {
		t.Error("depth cleared outside the viewport")
	}

	// nil collaborators are allowed
	c.ClearCameraViewPort(nil, nil, false)
}

func TestSetViewportUpdatesProjection(t *testing.T) {
	c := newTestCamera()
	c.SetViewport(0, 0, 100, 100)
	if got := c.ProjectionMatrix()[0][0]; math.Abs(got-1) > tol {
		t.Errorf("proj[0][0] = %v, want 1 for a square viewport", got)
	}

	c.UpdateCamera(60, 1, 50)
	if c.Near() != 1 || c.Far() != 50 || c.FOV() != 60 {
		t.Errorf("got fov=%v near=%v far=%v", c.FOV(), c.Near(), c.Far())
	}
}
