package ssengine

import (
	"errors"
	"math"
)

// ErrNoLayers is returned when a sprite is created without layer images.
var ErrNoLayers = errors.New("ssengine: sprite needs at least one layer")

// Sprite is a stack of layer images drawn bottom to top, each slice shifted
// up by the spread so the stack reads as a solid with height. Every layer is
// rotated independently around its own center, which gives the classic
// sprite-stacking look when Rotation changes.
//
// Position, Rotation and Height may be changed freely between frames.
type Sprite struct {
	// Position is the center of the base layer in canvas pixels.
	Position Vec2
	// Rotation in degrees, counter-clockwise.
	Rotation float64
	// Height is the virtual stack height in canvas pixels. NewSprite sets it
	// to the layer count (one pixel per slice).
	Height int

	layers []Surface
	scale  Size
	tf     Transformer
	cache  *rotationCache

	cachedRotations int
}

// NewSprite creates a sprite from layers ordered bottom to top. Each layer is
// copied at scale; a zero scale keeps the size of the first layer. The
// caller keeps ownership of the passed surfaces.
func NewSprite(tf Transformer, layers []Surface, scale Size, position Vec2) (*Sprite, error) {
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	if scale.IsZero() {
		w, h := layers[0].Size()
		scale = Size{w, h}
	}
	if scale.W <= 0 || scale.H <= 0 {
		return nil, errors.New("ssengine: sprite scale must be positive")
	}
	s := &Sprite{
		Position:        position,
		Height:          len(layers),
		tf:              tf,
		scale:           scale,
		cachedRotations: DefaultCachedRotations,
	}
	s.layers = make([]Surface, len(layers))
	for i, l := range layers {
		s.layers[i] = tf.Scale(l, scale.W, scale.H)
	}
	s.cache = newRotationCache(len(layers) * s.cachedRotations)
	return s, nil
}

// Layers returns the sprite's scaled layer images. The returned slice MUST
// NOT be mutated.
func (s *Sprite) Layers() []Surface {
	return s.layers
}

// Scale returns the current layer size.
func (s *Sprite) Scale() Size {
	return s.scale
}

// SetScale resizes every layer to size. Resizing works from the current
// layers, so shrinking then growing loses detail. The render cache is cleared.
func (s *Sprite) SetScale(size Size) {
	if size.W <= 0 || size.H <= 0 {
		return
	}
	s.scale = size
	for i, l := range s.layers {
		s.layers[i] = s.tf.Scale(l, size.W, size.H)
		l.Dispose()
	}
	s.cache.purge()
}

// SetCachedRotations bounds how many rotations per layer stay cached.
func (s *Sprite) SetCachedRotations(n int) {
	if n < 1 {
		n = 1
	}
	s.cachedRotations = n
	s.cache.resize(len(s.layers) * n)
}

// Spread returns the per-layer vertical offset for the current Height.
func (s *Sprite) Spread() int {
	return floorDiv(s.Height, len(s.layers))
}

// CacheMisses returns how many layer rotations Render has computed rather
// than reused from the cache.
func (s *Sprite) CacheMisses() int {
	return s.cache.misses
}

// CachedImages returns the number of rotated layer images held in the cache.
func (s *Sprite) CachedImages() int {
	return s.cache.len()
}

// Render draws every layer onto target, base layer first.
func (s *Sprite) Render(target Surface) {
	spread := s.Spread()
	rot := s.Rotation
	for i, layer := range s.layers {
		img := s.cache.get(layerKey{i, rot, spread}, func() Surface {
			return s.tf.Rotate(layer, rot)
		})
		w, h := img.Size()
		x := int(math.Floor(s.Position.X - float64(w/2)))
		y := int(math.Floor(s.Position.Y - float64(h/2) - float64(i*spread)))
		target.Blit(img, x, y)
	}
}

// Dispose releases the layer copies and every cached rotation.
func (s *Sprite) Dispose() {
	s.cache.purge()
	for _, l := range s.layers {
		l.Dispose()
	}
	s.layers = nil
}
