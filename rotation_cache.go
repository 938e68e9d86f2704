package ssengine

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCachedRotations is how many distinct (rotation, spread) pairs a
// sprite keeps per layer before the least recently used copies are evicted.
const DefaultCachedRotations = 8

// layerKey identifies one pre-rotated layer image.
type layerKey struct {
	layer    int
	rotation float64
	spread   int
}

// rotationCache memoizes rotated layer images. Entries are disposed when
// evicted or purged.
type rotationCache struct {
	entries *lru.Cache[layerKey, Surface]
	misses  int
}

func newRotationCache(size int) *rotationCache {
	if size < 1 {
		size = 1
	}
	c, err := lru.NewWithEvict(size, func(_ layerKey, img Surface) {
		img.Dispose()
	})
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &rotationCache{entries: c}
}

// get returns the cached image for k, calling rotate and storing the result
// on a miss.
func (c *rotationCache) get(k layerKey, rotate func() Surface) Surface {
	if img, ok := c.entries.Get(k); ok {
		return img
	}
	c.misses++
	img := rotate()
	c.entries.Add(k, img)
	return img
}

func (c *rotationCache) resize(size int) {
	if size < 1 {
		size = 1
	}
	c.entries.Resize(size)
}

func (c *rotationCache) purge() {
	c.entries.Purge()
}

func (c *rotationCache) len() int {
	return c.entries.Len()
}
