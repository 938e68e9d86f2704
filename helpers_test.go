package ssengine

import (
	"image"
	"image/color"
	"testing"
	"time"
)

// --- fake time ---

type fakeTime struct {
	t time.Time
}

func newFakeTime() *fakeTime {
	return &fakeTime{t: time.Unix(1_700_000_000, 0)}
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) sleep(d time.Duration) {
	f.t = f.t.Add(d)
}

func (f *fakeTime) advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func (f *fakeTime) clock() *FrameClock {
	return &FrameClock{Now: f.now, Sleep: f.sleep}
}

// --- engines ---

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	cfg.CanvasWidth, cfg.CanvasHeight = 16, 12
	cfg.FPS = 60
	return cfg
}

func newTestEngine(t *testing.T, cfg Config) (*Engine, *SoftwareBackend, *fakeTime) {
	t.Helper()
	b := NewSoftwareBackend()
	ft := newFakeTime()
	b.SetClock(ft.clock())
	e, err := NewEngine(b, cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e, b, ft
}

// --- surfaces ---

func solidLayer(b Backend, w, h int, c color.Color) Surface {
	s := b.NewSurface(w, h)
	s.Fill(c)
	return s
}

func pixelAt(s Surface, x, y int) color.NRGBA {
	return s.Snapshot().NRGBAAt(x, y)
}

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
)

// countingTransformer counts rotations and scales passed to the wrapped
// transformer.
type countingTransformer struct {
	Transformer
	rotations int
	scales    int
}

func (c *countingTransformer) Rotate(src Surface, degrees float64) Surface {
	c.rotations++
	return c.Transformer.Rotate(src, degrees)
}

func (c *countingTransformer) Scale(src Surface, w, h int) Surface {
	c.scales++
	return c.Transformer.Scale(src, w, h)
}

// blitRecord is one Blit call seen by a recordingSurface.
type blitRecord struct {
	x, y, w, h int
}

// recordingSurface logs draw calls before passing them to the wrapped
// surface. It must only be used as a destination.
type recordingSurface struct {
	Surface
	blits []blitRecord
	ops   []string
}

func (r *recordingSurface) Blit(src Surface, x, y int) {
	w, h := src.Size()
	r.blits = append(r.blits, blitRecord{x, y, w, h})
	r.ops = append(r.ops, "blit")
	r.Surface.Blit(src, x, y)
}

func (r *recordingSurface) FillRect(rect image.Rectangle, c color.Color) {
	r.ops = append(r.ops, "fill")
	r.Surface.FillRect(rect, c)
}

// stubFont renders every string as a 6px-per-rune block of the fg color.
type stubFont struct {
	b *SoftwareBackend
}

func (f stubFont) Measure(text string) (int, int) {
	return max(6*len([]rune(text)), 1), 10
}

func (f stubFont) Render(text string, fg, bg color.Color) Surface {
	w, h := f.Measure(text)
	s := f.b.NewSurface(w, h)
	s.Fill(fg)
	return s
}
