package math3d

import "math"

// Vec4 is a homogeneous 3D point. W is 1 for points in model, world and
// view space and carries the depth divisor after projection.
//
// Point arithmetic (Add, Sub, Scale, Div) acts on X, Y and Z only and leaves
// W untouched, so a point stays a point through the pipeline.
type Vec4 struct {
	X, Y, Z, W float64
}

// P creates a point with W = 1.
func P(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// V4 creates a Vec4 with an explicit W.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec3 returns the X, Y, Z portion.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add offsets the point by b's X, Y, Z.
//
//nolint:st1016 // a+b naming convention is clearer for vector operations
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W}
}

// Sub returns the X, Y, Z difference, keeping a's W.
//
//nolint:st1016 // a-b naming convention is clearer for vector operations
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W}
}

// Scale multiplies X, Y, Z by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W}
}

// Div divides X, Y, Z by s. Division by zero yields IEEE Inf or NaN.
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W}
}

// Dot returns the dot product of the X, Y, Z parts.
//
//nolint:st1016 // a·b naming convention is clearer for vector operations
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the length of the X, Y, Z part.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize scales X, Y, Z to unit length. Unlike Vec3.Normalize there is no
// zero guard: a zero-length input produces NaN.
func (v Vec4) Normalize() Vec4 {
	return v.Div(v.Len())
}

// PerspectiveDivide divides X, Y, Z by W and returns a point (W = 1).
func (v Vec4) PerspectiveDivide() Vec4 {
	return Vec4{v.X / v.W, v.Y / v.W, v.Z / v.W, 1}
}

// Lerp interpolates every component including W.
//
//nolint:st1016 // a,b naming convention is clearer for interpolation
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return Vec4{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vec4) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z) && finite(v.W)
}
