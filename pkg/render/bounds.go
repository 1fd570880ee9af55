package render

import (
	"math"

	"github.com/taigrr/painter/pkg/math3d"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// Center returns the center of the box.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the box.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Transform returns the box bounding all eight corners of b after m.
func (b AABB) Transform(m math3d.Mat4) AABB {
	var out AABB
	for i := range 8 {
		corner := math3d.P(
			pick(i&1 != 0, b.Max.X, b.Min.X),
			pick(i&2 != 0, b.Max.Y, b.Min.Y),
			pick(i&4 != 0, b.Max.Z, b.Min.Z),
		)
		p := m.MulVec4(corner).Vec3()
		if i == 0 {
			out = AABB{Min: p, Max: p}
			continue
		}
		out.Min = math3d.V3(math.Min(out.Min.X, p.X), math.Min(out.Min.Y, p.Y), math.Min(out.Min.Z, p.Z))
		out.Max = math3d.V3(math.Max(out.Max.X, p.X), math.Max(out.Max.Y, p.Y), math.Max(out.Max.Z, p.Z))
	}
	return out
}

// ContainsPoint reports whether p lies inside the box, faces included.
func (b AABB) ContainsPoint(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// HalfSpace is the set of points where Normal·p + D >= 0.
type HalfSpace struct {
	Normal math3d.Vec3
	D      float64
}

// Distance returns the signed distance from the boundary to p. Positive is
// inside.
func (h HalfSpace) Distance(p math3d.Vec3) float64 {
	return h.Normal.Dot(p) + h.D
}

func (h HalfSpace) normalize() HalfSpace {
	l := h.Normal.Len()
	if l == 0 {
		return h
	}
	return HalfSpace{Normal: h.Normal.Scale(1 / l), D: h.D / l}
}

// Frustum is the view volume as six inward-facing half-spaces: left,
// right, bottom, top, near, far.
type Frustum [6]HalfSpace

// FrustumFromMatrix extracts the frustum of a combined view-projection
// matrix whose clip space has x, y in [-w, w] and z in [0, w].
//
// With row vectors, clip component j is the dot product of the point with
// column j, so the Gribb/Hartmann planes are built from columns.
func FrustumFromMatrix(m math3d.Mat4) Frustum {
	// w + sign*column j
	side := func(sign float64, j int) HalfSpace {
		return HalfSpace{
			Normal: math3d.V3(m[0][3]+sign*m[0][j], m[1][3]+sign*m[1][j], m[2][3]+sign*m[2][j]),
			D:      m[3][3] + sign*m[3][j],
		}.normalize()
	}
	near := HalfSpace{Normal: math3d.V3(m[0][2], m[1][2], m[2][2]), D: m[3][2]}.normalize()

	return Frustum{
		side(1, 0),
		side(-1, 0),
		side(1, 1),
		side(-1, 1),
		near,
		side(-1, 2),
	}
}

// IntersectsAABB reports whether any part of box may be inside the
// frustum. It is conservative: boxes near a frustum corner can pass
// without being visible.
func (f Frustum) IntersectsAABB(box AABB) bool {
	for _, h := range f {
		// Corner furthest along the normal.
		far := math3d.V3(
			pick(h.Normal.X >= 0, box.Max.X, box.Min.X),
			pick(h.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			pick(h.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if h.Distance(far) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p is inside every half-space.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for _, h := range f {
		if h.Distance(p) < 0 {
			return false
		}
	}
	return true
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// Frustum returns the camera's world-space view volume.
func (c *Camera) Frustum() Frustum {
	return FrustumFromMatrix(c.view.Mul(c.proj))
}
