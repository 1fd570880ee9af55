package models

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/painter/pkg/math3d"
)

// ErrNoTriangles is returned when a document holds no triangle primitives.
var ErrNoTriangles = errors.New("models: no triangle primitives")

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// LeftHanded mirrors Z and reverses the winding so glTF's right-handed,
	// counter-clockwise faces become the pipeline's left-handed, clockwise
	// ones without mirroring the model.
	LeftHanded bool

	// FitSize, when positive, centers the mesh and scales its largest
	// dimension to this size.
	FitSize float64
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		LeftHanded: true,
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	loader := NewGLTFLoader()
	return loader.Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(filepath.Base(path), doc)
}

// FromDocument converts an already decoded document.
func (l *GLTFLoader) FromDocument(name string, doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh(name)
	mesh.Materials = readMaterials(doc)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoTriangles)
	}

	mesh.CalculateBounds()
	if l.FitSize > 0 {
		mesh.Fit(l.FitSize)
	}
	return mesh, nil
}

// readMaterials extracts base color and PBR factors.
func readMaterials(doc *gltf.Document) []Material {
	mats := make([]Material, 0, len(doc.Materials))
	for _, gm := range doc.Materials {
		mat := Material{
			Name:      gm.Name,
			BaseColor: [4]float64{1, 1, 1, 1},
			Metallic:  1,
			Roughness: 1,
		}
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			mat.BaseColor = pbr.BaseColorFactorOrDefault()
			mat.Metallic = pbr.MetallicFactorOrDefault()
			mat.Roughness = pbr.RoughnessFactorOrDefault()
			mat.HasTexture = pbr.BaseColorTexture != nil
		}
		mats = append(mats, mat)
	}
	return mats
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var uvs []math3d.TexCoord
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = readTexCoordAccessor(doc, uvIdx)
			if err != nil {
				return fmt.Errorf("read uvs: %w", err)
			}
		}

		material := -1
		if prim.Material != nil {
			material = *prim.Material
		}

		baseVertex := len(mesh.Vertices)
		for i, p := range positions {
			if l.LeftHanded {
				p.Z = -p.Z
			}
			v := MeshVertex{Position: p, UV: math3d.UV(0, 0)}
			if i < len(uvs) {
				v.UV = uvs[i]
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if a >= len(positions) || b >= len(positions) || c >= len(positions) {
				return fmt.Errorf("index out of range in triangle %d", i/3)
			}
			if l.LeftHanded {
				b, c = c, b
			}
			mesh.Faces = append(mesh.Faces, Face{
				V:        [3]int{baseVertex + a, baseVertex + b, baseVertex + c},
				Material: material,
			})
		}
	}
	mesh.Invalidate()
	return nil
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}

	result := make([]math3d.Vec3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

// readTexCoordAccessor reads TEXCOORD_0 data. glTF already puts V = 0 at
// the top of the image, which is what sprites expect.
func readTexCoordAccessor(doc *gltf.Document, accessorIdx int) ([]math3d.TexCoord, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	floats, ok := data.([][2]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC2")
	}

	result := make([]math3d.TexCoord, len(floats))
	for i, f := range floats {
		result[i] = math3d.UV(float64(f[0]), float64(f[1]))
	}
	return result, nil
}

// readIndices reads index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]

	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}

	switch v := data.(type) {
	case []uint8:
		return widen(v), nil
	case []uint16:
		return widen(v), nil
	case []uint32:
		return widen(v), nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

func widen[T uint8 | uint16 | uint32](v []T) []int {
	result := make([]int, len(v))
	for i, x := range v {
		result[i] = int(x)
	}
	return result
}

// readAccessorData reads raw data from a GLTF accessor.
func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer %d has no data (external buffers are not loaded)", bufferView.Buffer)
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	need := func(size int) error {
		if stride == 0 {
			stride = size
		}
		if count > 0 && start+(count-1)*stride+size > len(bufData) {
			return fmt.Errorf("accessor reads past end of buffer")
		}
		return nil
	}

	switch accessor.Type {
	case gltf.AccessorVec3:
		if err := need(12); err != nil {
			return nil, err
		}
		result := make([][3]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 3 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorVec2:
		if err := need(8); err != nil {
			return nil, err
		}
		result := make([][2]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 2 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			if err := need(1); err != nil {
				return nil, err
			}
			result := make([]uint8, count)
			for i := range count {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			if err := need(2); err != nil {
				return nil, err
			}
			result := make([]uint16, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		case gltf.ComponentUint:
			if err := need(4); err != nil {
				return nil, err
			}
			result := make([]uint32, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint32(bufData[offset]) |
					uint32(bufData[offset+1])<<8 |
					uint32(bufData[offset+2])<<16 |
					uint32(bufData[offset+3])<<24
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}

// LoadGLTFWithTextures loads a GLTF file and extracts embedded textures.
// Returns the mesh and a map of image index to encoded image data.
func LoadGLTFWithTextures(path string) (*Mesh, map[int][]byte, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := NewGLTFLoader().FromDocument(filepath.Base(path), doc)
	if err != nil {
		return nil, nil, err
	}

	textures := make(map[int][]byte)
	for i, img := range doc.Images {
		if img.BufferView != nil {
			bv := doc.BufferViews[*img.BufferView]
			buf := doc.Buffers[bv.Buffer]
			if buf.Data != nil {
				start := bv.ByteOffset
				end := start + bv.ByteLength
				textures[i] = buf.Data[start:end]
			}
		} else if img.URI != "" {
			data, err := os.ReadFile(filepath.Join(filepath.Dir(path), img.URI))
			if err == nil {
				textures[i] = data
			}
		}
	}

	return mesh, textures, nil
}

// LoadGLBWithTexture loads a GLB file and returns the mesh plus the first
// decodable embedded texture, which may be nil.
func LoadGLBWithTexture(path string) (*Mesh, image.Image, error) {
	mesh, textures, err := LoadGLTFWithTextures(path)
	if err != nil {
		return nil, nil, err
	}

	var textureImg image.Image
	for _, i := range slices.Sorted(maps.Keys(textures)) {
		img, _, err := image.Decode(bytes.NewReader(textures[i]))
		if err == nil {
			textureImg = img
			break
		}
	}

	return mesh, textureImg, nil
}
