package ssengine

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"
)

// fontSet loads one font file once and hands out a shared Font per point
// size, so widgets never create their own copies.
type fontSet struct {
	backend Backend
	data    []byte
	faces   map[float64]Font
}

func newFontSet(b Backend, path string) (*fontSet, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ssengine: load font: %w", err)
		}
	}
	return &fontSet{backend: b, data: data, faces: make(map[float64]Font)}, nil
}

func (fs *fontSet) face(size float64) (Font, error) {
	if f, ok := fs.faces[size]; ok {
		return f, nil
	}
	f, err := fs.backend.LoadFont(fs.data, size)
	if err != nil {
		return nil, fmt.Errorf("ssengine: font size %v: %w", size, err)
	}
	fs.faces[size] = f
	return f, nil
}

// LoadFontFile reads a TTF/OTF file and loads it at size on b.
func LoadFontFile(b Backend, path string, size float64) (Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ssengine: load font: %w", err)
	}
	return b.LoadFont(data, size)
}
