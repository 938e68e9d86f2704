package ssengine

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// redBlue returns a 2x1 surface with a red left pixel and a blue right one.
func redBlue(b *SoftwareBackend) Surface {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)
	return b.NewSurfaceFromImage(img)
}

func TestSoftwareRotateCounterClockwise(t *testing.T) {
	b := NewSoftwareBackend()
	out := b.Rotate(redBlue(b), 90)
	if w, h := out.Size(); w != 1 || h != 2 {
		t.Fatalf("size = %dx%d, want 1x2", w, h)
	}
	if got := pixelAt(out, 0, 0); got != blue {
		t.Errorf("top = %v, want blue", got)
	}
	if got := pixelAt(out, 0, 1); got != red {
		t.Errorf("bottom = %v, want red", got)
	}
}

func TestSoftwareRotateZeroKeepsPixels(t *testing.T) {
	b := NewSoftwareBackend()
	out := b.Rotate(redBlue(b), 0)
	if w, h := out.Size(); w != 2 || h != 1 {
		t.Fatalf("size = %dx%d, want 2x1", w, h)
	}
	if pixelAt(out, 0, 0) != red || pixelAt(out, 1, 0) != blue {
		t.Error("zero rotation changed pixels")
	}
}

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		w, h   int
		deg    float64
		rw, rh int
	}{
		{10, 20, 0, 10, 20},
		{10, 20, 90, 20, 10},
		{10, 20, 180, 10, 20},
		{10, 20, -90, 20, 10},
		{10, 20, 45, 22, 22},
	}
	for _, tt := range tests {
		rw, rh := rotatedSize(tt.w, tt.h, tt.deg)
		if rw != tt.rw || rh != tt.rh {
			t.Errorf("rotatedSize(%d, %d, %v) = %dx%d, want %dx%d", tt.w, tt.h, tt.deg, rw, rh, tt.rw, tt.rh)
		}
	}
}

func TestSoftwareScaleNearest(t *testing.T) {
	b := NewSoftwareBackend()
	out := b.Scale(redBlue(b), 4, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := red
			if x >= 2 {
				want = blue
			}
			if got := pixelAt(out, x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSoftwareBlitBlends(t *testing.T) {
	b := NewSoftwareBackend()
	dst := solidLayer(b, 4, 4, ColorWhite)
	src := solidLayer(b, 2, 2, Color{0, 0, 0, 0.5})
	dst.Blit(src, 1, 1)

	if got := pixelAt(dst, 0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("outside = %v, want white", got)
	}
	got := pixelAt(dst, 1, 1)
	if got.R < 120 || got.R > 135 || got.A != 255 {
		t.Errorf("blended = %v, want opaque mid gray", got)
	}
}

func TestSoftwareBlitScaledReplaces(t *testing.T) {
	b := NewSoftwareBackend()
	dst := solidLayer(b, 4, 4, ColorWhite)
	dst.BlitScaled(b.NewSurface(2, 2))
	if got := pixelAt(dst, 3, 3); got.A != 0 {
		t.Errorf("pixel = %v, want transparent", got)
	}
}

func TestSoftwareFillRectClips(t *testing.T) {
	b := NewSoftwareBackend()
	dst := b.NewSurface(4, 4)
	dst.FillRect(image.Rect(2, 2, 10, 10), Color{1, 0, 0, 1})
	if pixelAt(dst, 3, 3) != red {
		t.Error("inside corner not filled")
	}
	if pixelAt(dst, 1, 1).A != 0 {
		t.Error("outside rect was filled")
	}
}

func TestSoftwareFont(t *testing.T) {
	b := NewSoftwareBackend()
	f, err := b.LoadFont(goregular.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}
	w1, h := f.Measure("i")
	w2, _ := f.Measure("iiii")
	if h <= 0 || w2 <= w1 {
		t.Errorf("Measure: i=%dx%d iiii=%d", w1, h, w2)
	}

	img := f.Render("fps: 60.0", ColorWhite, ColorBlack)
	w, _ := img.Size()
	mw, _ := f.Measure("fps: 60.0")
	if w != mw {
		t.Errorf("rendered width %d, measured %d", w, mw)
	}
	snap := img.Snapshot()
	if snap.NRGBAAt(0, 0).A != 255 {
		t.Error("background should be opaque")
	}
	lit := false
	for i := 0; i < len(snap.Pix); i += 4 {
		if snap.Pix[i] > 200 {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("no glyph pixels rendered")
	}

	if _, err := b.LoadFont([]byte("not a font"), 12); err == nil {
		t.Error("expected parse error")
	}
}

func TestSoftwareOpenRejectsBadSize(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Open("x", 0, 10); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("err = %v, want ErrInvalidResolution", err)
	}
}

func TestSoftwareKeys(t *testing.T) {
	b := NewSoftwareBackend()
	const k = Key(10)
	if b.Input().KeyPressed(k) {
		t.Error("key down before SetKey")
	}
	b.SetKey(k, true)
	if !b.Input().KeyPressed(k) {
		t.Error("key up after SetKey(true)")
	}
}
