package models

import (
	"math"
	"testing"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

const tol = 1e-9

type flatSprite struct{}

func (flatSprite) Sample(u, v float64) render.Color { return render.Grey(128) }

func vecNear(a, b math3d.Vec3) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestUnitCube(t *testing.T) {
	cube := UnitCube()

	if got := cube.TriangleCount(); got != 12 {
		t.Fatalf("TriangleCount() = %d, want 12", got)
	}
	if got := cube.VertexCount(); got != 36 {
		t.Errorf("VertexCount() = %d, want 36", got)
	}
	if !vecNear(cube.BoundsMin, math3d.V3(0, 0, 0)) || !vecNear(cube.BoundsMax, math3d.V3(1, 1, 1)) {
		t.Errorf("bounds = %v..%v, want unit cube", cube.BoundsMin, cube.BoundsMax)
	}
	if !vecNear(cube.Center(), math3d.V3(0.5, 0.5, 0.5)) {
		t.Errorf("Center() = %v", cube.Center())
	}
}

func TestUnitCubeFacesPointOutwards(t *testing.T) {
	center := math3d.V3(0.5, 0.5, 0.5)
	for i, tri := range UnitCube().Triangles() {
		mid := tri.P[0].Add(tri.P[1]).Add(tri.P[2]).Vec3().Scale(1.0 / 3)
		if d := tri.Normal().Dot(mid.Sub(center)); d <= 0 {
			t.Errorf("triangle %d normal %v points inwards", i, tri.Normal())
		}
		for j, p := range tri.P {
			if p.W != 1 {
				t.Errorf("triangle %d vertex %d W = %v, want 1", i, j, p.W)
			}
		}
	}
}

func TestTrianglesCache(t *testing.T) {
	cube := UnitCube()

	first := cube.Triangles()
	second := cube.Triangles()
	if &first[0] != &second[0] {
		t.Error("Triangles() rebuilt without changes")
	}

	cube.SetSprite(flatSprite{})
	cube.Mode = render.Textured
	cube.Invalidate()
	for i, tri := range cube.Triangles() {
		if tri.Sprite == nil || tri.Mode != render.Textured {
			t.Fatalf("triangle %d: sprite %v mode %v", i, tri.Sprite, tri.Mode)
		}
	}
}

func TestAddTriangle(t *testing.T) {
	m := NewMesh("tri")
	m.AddTriangle(
		[3]math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(0, 1, 0), math3d.V3(1, 1, 0)},
		[3]math3d.TexCoord{math3d.UV(0, 1), math3d.UV(0, 0), math3d.UV(1, 0)},
		-1,
	)

	tris := m.Triangles()
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	if tris[0].T[2] != math3d.UV(1, 0) {
		t.Errorf("T[2] = %v, want %v", tris[0].T[2], math3d.UV(1, 0))
	}
	if tris[0].Color != DefaultColor {
		t.Errorf("Color = %v, want %v", tris[0].Color, DefaultColor)
	}

	// Bounds is computed on demand, no CalculateBounds call needed.
	b := m.Bounds()
	if !vecNear(b.Min, math3d.V3(0, 0, 0)) || !vecNear(b.Max, math3d.V3(1, 1, 0)) {
		t.Errorf("Bounds() = %+v, want (0,0,0)..(1,1,0)", b)
	}
}

func TestFit(t *testing.T) {
	m := UnitCube()
	m.Transform(math3d.Scale(math3d.V3(4, 2, 1)))
	m.Fit(2)

	if !vecNear(m.Size(), math3d.V3(2, 1, 0.5)) {
		t.Errorf("Size() = %v, want (2, 1, 0.5)", m.Size())
	}
	if !vecNear(m.Center(), math3d.V3(0, 0, 0)) {
		t.Errorf("Center() = %v, want origin", m.Center())
	}
	if got := m.Triangles()[0].P[0]; !vecNear(got.Vec3(), m.Vertices[0].Position) {
		t.Errorf("Triangles() stale after Fit: %v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := UnitCube()
	c := m.Clone()
	c.Transform(math3d.Translate(math3d.V3(5, 0, 0)))

	if !vecNear(m.BoundsMin, math3d.V3(0, 0, 0)) {
		t.Errorf("original moved: %v", m.BoundsMin)
	}
	if !vecNear(c.BoundsMin, math3d.V3(5, 0, 0)) {
		t.Errorf("clone BoundsMin = %v, want (5, 0, 0)", c.BoundsMin)
	}
}
