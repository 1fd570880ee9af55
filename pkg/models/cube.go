package models

import "github.com/taigrr/painter/pkg/math3d"

// cubeFaces lists the unit cube corners per face, two clockwise triangles
// each, seen from outside.
var cubeFaces = [6]struct {
	name string
	tris [2][3]math3d.Vec3
}{
	{"south", [2][3]math3d.Vec3{{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}}, {{0, 0, 0}, {1, 1, 0}, {1, 0, 0}}}},
	{"east", [2][3]math3d.Vec3{{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}}, {{1, 0, 0}, {1, 1, 1}, {1, 0, 1}}}},
	{"north", [2][3]math3d.Vec3{{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}}, {{1, 0, 1}, {0, 1, 1}, {0, 0, 1}}}},
	{"west", [2][3]math3d.Vec3{{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}}, {{0, 0, 1}, {0, 1, 0}, {0, 0, 0}}}},
	{"top", [2][3]math3d.Vec3{{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}}, {{0, 1, 0}, {1, 1, 1}, {1, 1, 0}}}},
	{"bottom", [2][3]math3d.Vec3{{{1, 0, 1}, {0, 0, 1}, {0, 0, 0}}, {{1, 0, 1}, {0, 0, 0}, {1, 0, 0}}}},
}

// Texture coordinates shared by every face: V grows downwards, so the
// first corner of each face is the sprite's bottom-left.
var cubeUV = [2][3]math3d.TexCoord{
	{math3d.UV(0, 1), math3d.UV(0, 0), math3d.UV(1, 0)},
	{math3d.UV(0, 1), math3d.UV(1, 0), math3d.UV(1, 1)},
}

// UnitCube returns a cube spanning [0, 1] on each axis: 12 triangles with
// texture coordinates mapping the full sprite onto every face.
func UnitCube() *Mesh {
	m := NewMesh("cube")
	for _, face := range cubeFaces {
		for i, tri := range face.tris {
			m.AddTriangle(tri, cubeUV[i], -1)
		}
	}
	m.CalculateBounds()
	return m
}
