package demo

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/taigrr/painter/pkg/models"
	"github.com/taigrr/painter/pkg/raster"
)

// Size of the scene's largest dimension after loading.
const sceneSize = 1.5

// maxTextureSide bounds loaded textures; larger ones are scaled down.
const maxTextureSide = 256

// LoadMesh loads the model at path, or the unit cube when path is empty,
// centers it on the origin and attaches a sprite: the texture at
// texturePath if given, else the model's embedded texture, else a
// checkerboard.
func LoadMesh(path, texturePath string) (*models.Mesh, error) {
	var (
		mesh     *models.Mesh
		embedded image.Image
		err      error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "":
		mesh = models.UnitCube()
	case ".glb", ".gltf":
		mesh, embedded, err = models.LoadGLBWithTexture(path)
		if err != nil {
			return nil, fmt.Errorf("load model: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
	mesh.Fit(sceneSize)

	var tex *raster.Texture
	switch {
	case texturePath != "":
		tex, err = raster.LoadTexture(texturePath)
		if err != nil {
			return nil, err
		}
	case embedded != nil:
		tex = raster.TextureFromImage(embedded)
	default:
		tex = raster.NewCheckerTexture(64, 64, 8, raster.ColorWhite, raster.ColorGrey)
	}
	mesh.SetSprite(tex.Fit(maxTextureSide))
	return mesh, nil
}
