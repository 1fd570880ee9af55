package render

import (
	"fmt"

	"github.com/taigrr/painter/pkg/math3d"
)

// Plane is an infinite plane given by a point on it and a normal pointing
// into the kept half-space.
type Plane struct {
	Point  math3d.Vec4
	Normal math3d.Vec3
}

// Distance returns the signed distance from the plane to p. The normal is
// assumed to be unit length.
func (pl Plane) Distance(p math3d.Vec4) float64 {
	return pl.Normal.Dot(p.Vec3()) - pl.Normal.Dot(pl.Point.Vec3())
}

// Clip is shorthand for ClipAgainstPlane(pl.Point, pl.Normal, tri).
func (pl Plane) Clip(tri Triangle) (int, [2]Triangle) {
	return ClipAgainstPlane(pl.Point, pl.Normal, tri)
}

// IntersectPlane returns where segment a→b crosses the plane and the
// parameter t along the segment. planeN must be unit length. A segment
// parallel to the plane yields non-finite results.
func IntersectPlane(planeP math3d.Vec4, planeN math3d.Vec3, a, b math3d.Vec4) (math3d.Vec4, float64) {
	pd := planeN.Dot(planeP.Vec3())
	ad := planeN.Dot(a.Vec3())
	bd := planeN.Dot(b.Vec3())
	t := (pd - ad) / (bd - ad)
	return a.Lerp(b, t), t
}

// ClipAgainstPlane splits tri against the plane and returns the number of
// output triangles (0, 1 or 2) and the triangles themselves. Vertices with
// a signed distance >= 0 are inside.
//
// Outputs keep the input's winding, color, mode and sprite. Texture
// coordinates of new vertices are interpolated with the same parameter as
// the position.
func ClipAgainstPlane(planeP math3d.Vec4, planeN math3d.Vec3, tri Triangle) (int, [2]Triangle) {
	planeN = planeN.Normalize()
	plane := Plane{Point: planeP, Normal: planeN}

	var inside, outside [3]int
	nIn, nOut := 0, 0
	for i, p := range tri.P {
		if plane.Distance(p) >= 0 {
			inside[nIn] = i
			nIn++
		} else {
			outside[nOut] = i
			nOut++
		}
	}

	var out [2]Triangle
	cut := func(from, to int) (math3d.Vec4, math3d.TexCoord) {
		p, t := IntersectPlane(planeP, planeN, tri.P[from], tri.P[to])
		return p, tri.T[from].Lerp(tri.T[to], t)
	}

	switch {
	case nIn == 0:
		return 0, out

	case nIn == 3:
		out[0] = tri
		return 1, out

	case nIn == 1 && nOut == 2:
		// Walk the edges leaving the inside vertex in winding order.
		in := inside[0]
		next, prev := (in+1)%3, (in+2)%3

		t := tri
		t.P[0], t.T[0] = tri.P[in], tri.T[in]
		t.P[1], t.T[1] = cut(in, next)
		t.P[2], t.T[2] = cut(in, prev)
		out[0] = t
		return 1, out

	case nIn == 2 && nOut == 1:
		// in0 → in1 → o is the input's cyclic order.
		o := outside[0]
		in0, in1 := (o+1)%3, (o+2)%3
		x0p, x0t := cut(in0, o)
		x1p, x1t := cut(in1, o)

		a := tri
		a.P[0], a.T[0] = tri.P[in0], tri.T[in0]
		a.P[1], a.T[1] = tri.P[in1], tri.T[in1]
		a.P[2], a.T[2] = x0p, x0t

		b := tri
		b.P[0], b.T[0] = tri.P[in1], tri.T[in1]
		b.P[1], b.T[1] = x1p, x1t
		b.P[2], b.T[2] = x0p, x0t

		out[0], out[1] = a, b
		return 2, out
	}

	Logger().Error("clip: impossible vertex classification",
		"inside", nIn, "outside", nOut, "triangle", tri.P)
	panic(fmt.Sprintf("render: clip classified %d inside and %d outside vertices", nIn, nOut))
}

// TriangleIntersectPlane returns the segment along which tri crosses the
// plane. ok is false when all three vertices lie on the same side.
func TriangleIntersectPlane(planeP math3d.Vec4, planeN math3d.Vec3, tri Triangle) (a, b math3d.Vec4, ok bool) {
	planeN = planeN.Normalize()
	plane := Plane{Point: planeP, Normal: planeN}

	var found []math3d.Vec4
	for i := range 3 {
		j := (i + 1) % 3
		di, dj := plane.Distance(tri.P[i]), plane.Distance(tri.P[j])
		if (di >= 0) == (dj >= 0) {
			continue
		}
		p, _ := IntersectPlane(planeP, planeN, tri.P[i], tri.P[j])
		found = append(found, p)
	}
	if len(found) < 2 {
		return math3d.Vec4{}, math3d.Vec4{}, false
	}
	return found[0], found[1], true
}
