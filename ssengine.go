package ssengine

import (
	"image"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens in RGBA, so a Color can be passed anywhere a
// color.Color is accepted.
type Color struct {
	R, G, B, A float64
}

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorGray  = RGB8(190, 190, 190) // the "gray" named color of the FPS readout
)

// RGBA implements color.Color with premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = to16(c.R * c.A)
	g = to16(c.G * c.A)
	b = to16(c.B * c.A)
	a = to16(c.A)
	return
}

// RGB8 builds an opaque Color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// to16 rounds a [0, 1] component to 8 bits and widens it to 16.
func to16(v float64) uint32 {
	return uint32(math.Round(clamp01(v)*255)) * 0x101
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Size is an integer width/height pair in pixels.
type Size struct {
	W, H int
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Image converts r to an integer image.Rectangle, truncating toward zero.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
