package ssengine

import (
	"image"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{40, 60, true},
		{25, 30, true},
		{9.9, 30, false},
		{40.1, 30, false},
		{25, 19.9, false},
		{25, 60.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectImage(t *testing.T) {
	r := Rect{X: 1.5, Y: 2, Width: 3, Height: 4}
	if got := r.Image(); got != image.Rect(1, 2, 4, 6) {
		t.Errorf("Image = %v", got)
	}
	if got := r.Offset(3, 3).Image(); got != image.Rect(4, 5, 7, 9) {
		t.Errorf("Offset.Image = %v", got)
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint32
	}{
		{"opaque red", Color{1, 0, 0, 1}, 0xffff, 0, 0, 0xffff},
		{"transparent", Color{1, 1, 1, 0}, 0, 0, 0, 0},
		{"clamped", Color{2, -1, 0, 1}, 0xffff, 0, 0, 0xffff},
		{"premultiplied", Color{1, 1, 1, 0.5}, 128 * 0x101, 128 * 0x101, 128 * 0x101, 128 * 0x101},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != tt.a {
				t.Errorf("RGBA = %d %d %d %d, want %d %d %d %d", r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestColorGray(t *testing.T) {
	r, g, b, a := ColorGray.RGBA()
	if r>>8 != 190 || g>>8 != 190 || b>>8 != 190 || a>>8 != 255 {
		t.Errorf("ColorGray = %d %d %d %d, want 190 190 190 255", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestRGB8(t *testing.T) {
	c := RGB8(255, 0, 51)
	if c != (Color{1, 0, 0.2, 1}) {
		t.Errorf("RGB8 = %+v", c)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{6, 3, 2},
		{-1, 3, -1},
		{-3, 3, -1},
		{-4, 3, -2},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
