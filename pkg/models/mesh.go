// Package models provides the meshes fed to the painter pipeline: an
// indexed mesh type, a procedural unit cube and a glTF/GLB loader.
package models

import (
	"image"
	"image/color"
	"math"

	"github.com/taigrr/painter/pkg/math3d"
	"github.com/taigrr/painter/pkg/render"
)

// Mesh represents a 3D mesh with vertices, faces, and materials.
// Faces wind clockwise when seen from the front.
type Mesh struct {
	Name      string
	Vertices  []MeshVertex
	Faces     []Face
	Materials []Material

	// Sprite is attached to every triangle the mesh emits. It is borrowed,
	// never copied.
	Sprite render.Sprite

	// Mode is stamped on every emitted triangle. Inherit defers to the
	// frame options.
	Mode render.RenderMode

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3

	tris  []render.Triangle
	dirty bool
}

// MeshVertex holds all vertex attributes.
type MeshVertex struct {
	Position math3d.Vec3
	UV       math3d.TexCoord
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material represents a PBR material from GLTF. Only the base color
// reaches the pipeline, as the triangle color.
type Material struct {
	Name       string
	BaseColor  [4]float64  // RGBA in 0-1 range
	Metallic   float64     // 0 = dielectric, 1 = metal
	Roughness  float64     // 0 = smooth, 1 = rough
	BaseMap    image.Image // Optional base color texture
	HasTexture bool
}

// Color converts the base color to 8-bit RGBA.
func (m Material) Color() color.RGBA {
	c := func(f float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
	}
	return color.RGBA{c(m.BaseColor[0]), c(m.BaseColor[1]), c(m.BaseColor[2]), c(m.BaseColor[3])}
}

// DefaultColor is used for faces without a material.
var DefaultColor = render.RGB(255, 255, 255)

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]MeshVertex, 0),
		Faces:    make([]Face, 0),
		dirty:    true,
	}
}

// AddTriangle appends a face with its own three vertices.
func (m *Mesh) AddTriangle(p [3]math3d.Vec3, uv [3]math3d.TexCoord, material int) {
	base := len(m.Vertices)
	for i := range 3 {
		m.Vertices = append(m.Vertices, MeshVertex{Position: p[i], UV: uv[i]})
	}
	m.Faces = append(m.Faces, Face{V: [3]int{base, base + 1, base + 2}, Material: material})
	m.dirty = true
}

// Invalidate drops the cached triangle list. Call it after editing
// Vertices, Faces, Materials, Sprite or Mode directly.
func (m *Mesh) Invalidate() {
	m.dirty = true
}

// SetSprite attaches a sprite to every triangle.
func (m *Mesh) SetSprite(s render.Sprite) {
	m.Sprite = s
	m.dirty = true
}

// Triangles returns the mesh as model-space pipeline triangles. The slice
// is cached and shared between callers; treat it as read-only.
func (m *Mesh) Triangles() []render.Triangle {
	if !m.dirty && len(m.tris) == len(m.Faces) {
		return m.tris
	}

	m.tris = m.tris[:0]
	for _, f := range m.Faces {
		tri := render.Triangle{
			Color:  DefaultColor,
			Mode:   m.Mode,
			Sprite: m.Sprite,
		}
		if mat := m.GetMaterial(f.Material); mat != nil {
			tri.Color = mat.Color()
		}
		for i, vi := range f.V {
			v := m.Vertices[vi]
			tri.P[i] = v.Position.Point()
			tri.T[i] = v.UV
		}
		m.tris = append(m.tris, tri)
	}
	m.dirty = false
	return m.tris
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}

	lo := m.Vertices[0].Position
	hi := lo
	for _, v := range m.Vertices[1:] {
		p := v.Position
		lo = math3d.V3(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = math3d.V3(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}
	m.BoundsMin, m.BoundsMax = lo, hi
}

// Bounds recomputes and returns the bounding box, so Frame can reject the
// mesh per camera before transforming any triangle.
func (m *Mesh) Bounds() render.AABB {
	m.CalculateBounds()
	return render.AABB{Min: m.BoundsMin, Max: m.BoundsMax}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i].Position = mat.MulVec4(m.Vertices[i].Position.Point()).Vec3()
	}
	m.CalculateBounds()
	m.dirty = true
}

// Fit centers the mesh on the origin and scales it uniformly so its
// largest dimension equals size.
func (m *Mesh) Fit(size float64) {
	m.CalculateBounds()
	ext := m.Size()
	largest := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	if largest == 0 {
		return
	}
	s := size / largest
	m.Transform(math3d.Translate(m.Center().Negate()).Mul(math3d.Scale(math3d.V3(s, s, s))))
}

// Clone creates a deep copy of the mesh. The sprite stays shared.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]Material, len(m.Materials)),
		Sprite:    m.Sprite,
		Mode:      m.Mode,
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
		dirty:     true,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Materials, m.Materials)
	return clone
}

// GetFaceMaterial returns the material index for face i.
// Returns -1 if no material assigned.
func (m *Mesh) GetFaceMaterial(i int) int {
	return m.Faces[i].Material
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// MaterialCount returns the number of materials.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}
