package models

import (
	"image/color"
	"testing"
)

// TestMaterialDefaults verifies default material values.
func TestMaterialDefaults(t *testing.T) {
	m := Material{
		Name:      "test",
		BaseColor: [4]float64{1, 1, 1, 1},
		Metallic:  0,
		Roughness: 1,
	}

	if m.BaseColor[3] != 1 {
		t.Errorf("Expected alpha=1, got %f", m.BaseColor[3])
	}
	if m.HasTexture {
		t.Errorf("HasTexture should be false by default")
	}
}

func TestMaterialColor(t *testing.T) {
	tests := []struct {
		name string
		base [4]float64
		want color.RGBA
	}{
		{"white", [4]float64{1, 1, 1, 1}, color.RGBA{255, 255, 255, 255}},
		{"half red", [4]float64{0.5, 0, 0, 1}, color.RGBA{128, 0, 0, 255}},
		{"clamped", [4]float64{2, -1, 0, 1}, color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Material{BaseColor: tt.base}.Color()
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// TestFaceMaterialIndex verifies per-face material assignment.
func TestFaceMaterialIndex(t *testing.T) {
	mesh := NewMesh("test")

	mesh.Materials = []Material{
		{Name: "red", BaseColor: [4]float64{1, 0, 0, 1}},
		{Name: "green", BaseColor: [4]float64{0, 1, 0, 1}},
		{Name: "blue", BaseColor: [4]float64{0, 0, 1, 1}},
	}

	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}, Material: 0},    // red
		{V: [3]int{3, 4, 5}, Material: 1},    // green
		{V: [3]int{6, 7, 8}, Material: 2},    // blue
		{V: [3]int{9, 10, 11}, Material: -1}, // no material
	}

	if mesh.GetFaceMaterial(0) != 0 {
		t.Errorf("Face 0 should have material 0, got %d", mesh.GetFaceMaterial(0))
	}
	if mesh.GetFaceMaterial(1) != 1 {
		t.Errorf("Face 1 should have material 1, got %d", mesh.GetFaceMaterial(1))
	}
	if mesh.GetFaceMaterial(3) != -1 {
		t.Errorf("Face 3 should have material -1, got %d", mesh.GetFaceMaterial(3))
	}

	mat := mesh.GetMaterial(0)
	if mat == nil || mat.Name != "red" {
		t.Errorf("GetMaterial(0) should return 'red' material")
	}
	if mesh.GetMaterial(-1) != nil {
		t.Errorf("GetMaterial(-1) should return nil")
	}
	if mesh.GetMaterial(99) != nil {
		t.Errorf("GetMaterial(99) should return nil for out-of-bounds")
	}
}

// TestTrianglesUseFaceMaterial checks the material color reaches the
// pipeline triangles.
func TestTrianglesUseFaceMaterial(t *testing.T) {
	mesh := UnitCube()
	mesh.Materials = []Material{{Name: "red", BaseColor: [4]float64{1, 0, 0, 1}}}
	mesh.Faces[3].Material = 0
	mesh.Invalidate()

	tris := mesh.Triangles()
	if got := tris[3].Color; got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("face 3 color = %v, want red", got)
	}
	if got := tris[0].Color; got != DefaultColor {
		t.Errorf("face 0 color = %v, want %v", got, DefaultColor)
	}
}

// TestMeshClonePreservesMaterials verifies Clone copies materials.
func TestMeshClonePreservesMaterials(t *testing.T) {
	mesh := NewMesh("original")
	mesh.Materials = []Material{
		{Name: "mat1", BaseColor: [4]float64{1, 0, 0, 1}},
		{Name: "mat2", BaseColor: [4]float64{0, 1, 0, 1}},
	}
	mesh.Faces = []Face{
		{V: [3]int{0, 1, 2}, Material: 0},
		{V: [3]int{3, 4, 5}, Material: 1},
	}

	clone := mesh.Clone()

	if clone.MaterialCount() != mesh.MaterialCount() {
		t.Errorf("Clone should have %d materials, got %d", mesh.MaterialCount(), clone.MaterialCount())
	}

	clone.Materials[0].Name = "modified"
	if mesh.Materials[0].Name == "modified" {
		t.Errorf("Clone should have independent material copy")
	}

	if clone.GetFaceMaterial(0) != 0 || clone.GetFaceMaterial(1) != 1 {
		t.Errorf("Clone should preserve face material indices")
	}
}
