package ssengine

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
)

// ErrNoImages is returned by LoadLayers for a directory without images.
var ErrNoImages = errors.New("ssengine: no images found")

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
}

// LoadImage decodes an image file into a surface on b.
func LoadImage(b Backend, path string) (Surface, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ssengine: load image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ssengine: decode %s: %w", path, err)
	}
	return b.NewSurfaceFromImage(img), nil
}

// LoadLayers loads every image in dir, ordered by file name, as sprite
// layers. Name slices so they sort bottom to top (00.png, 01.png, ...).
func LoadLayers(b Backend, dir string) ([]Surface, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ssengine: load layers: %w", err)
	}
	var layers []Surface
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		s, err := LoadImage(b, filepath.Join(dir, e.Name()))
		if err != nil {
			for _, l := range layers {
				l.Dispose()
			}
			return nil, err
		}
		layers = append(layers, s)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	return layers, nil
}
