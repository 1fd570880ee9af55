package math3d

import "math"

// Mat4 is a 4x4 matrix stored row-major and applied to row vectors:
//
//	v' = v · M
//
// For an affine transform the layout is:
//
//	| Xx Xy Xz 0 |   X,Y,Z = basis rows (rotation/scale)
//	| Yx Yy Yz 0 |   T = translation row
//	| Zx Zy Zz 0 |
//	| Tx Ty Tz 1 |
//
// a.Mul(b) applies a first, then b.
type Mat4 [4][4]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m[3][0], m[3][1], m[3][2] = v.X, v.Y, v.Z
	return m
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Projection creates a left-handed perspective projection.
// fovDeg is the field of view in degrees, aspect is viewport height/width.
// View-space z = near maps to 0 and z = far maps to 1 after the
// perspective divide; w receives the view-space z.
func Projection(fovDeg, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovDeg*0.5*math.Pi/180)
	q := far / (far - near)

	var m Mat4
	m[0][0] = aspect * f
	m[1][1] = f
	m[2][2] = q
	m[3][2] = -near * q
	m[2][3] = 1
	return m
}

// PointAt builds the camera-to-world matrix for a camera at pos facing
// target. Rows are right, up, forward and position; up is re-orthogonalised
// against forward.
func PointAt(pos, target, up Vec3) Mat4 {
	forward := target.Sub(pos).Normalize()
	newUp := up.Sub(forward.Scale(up.Dot(forward))).Normalize()
	right := newUp.Cross(forward)

	return Mat4{
		{right.X, right.Y, right.Z, 0},
		{newUp.X, newUp.Y, newUp.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}
}

// QuickInverse inverts a rotation+translation matrix by transposing the
// rotation block. The result is wrong for matrices that carry scale or
// projection.
func QuickInverse(m Mat4) Mat4 {
	var inv Mat4
	for r := range 3 {
		for c := range 3 {
			inv[r][c] = m[c][r]
		}
	}
	for c := range 3 {
		inv[3][c] = -(m[3][0]*inv[0][c] + m[3][1]*inv[1][c] + m[3][2]*inv[2][c])
	}
	inv[3][3] = 1
	return inv
}

// TransformComplete builds a world matrix from per-axis scale, Euler angles
// in radians (X = pitch, Y = yaw, Z = roll) and a translation. The yaw is
// applied first, then scale, roll, pitch and finally translation.
func TransformComplete(scale, angles, translation Vec3) Mat4 {
	return RotateY(angles.Y).
		Mul(Scale(scale)).
		Mul(RotateZ(angles.Z)).
		Mul(RotateX(angles.X)).
		Mul(Translate(translation))
}

// Mul multiplies two matrices: a * b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for r := range 4 {
		for c := range 4 {
			m[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return m
}

// MulVec4 transforms a homogeneous point, W included.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// MulDir transforms a direction (w=0, no translation).
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := range 4 {
		for c := range 4 {
			t[r][c] = m[c][r]
		}
	}
	return t
}

// Get returns the element at (row, col).
func (m Mat4) Get(row, col int) float64 {
	return m[row][col]
}

// Set sets the element at (row, col).
func (m *Mat4) Set(row, col int, val float64) {
	m[row][col] = val
}

// Translation extracts the translation row.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3][0], m[3][1], m[3][2]}
}
