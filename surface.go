package ssengine

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Engine.Update when the backend reports a quit
// request (window closed, injected quit). It is the only non-error way a
// frame loop ends.
var ErrQuit = errors.New("ssengine: quit requested")

// Surface is a pixel surface that can be drawn onto and blitted elsewhere.
// Surfaces are only valid with the Backend that created them.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// Fill replaces every pixel with c.
	Fill(c color.Color)
	// FillRect alpha-blends a solid rectangle onto the surface.
	FillRect(r image.Rectangle, c color.Color)
	// Blit alpha-blends src with its top-left corner at (x, y).
	Blit(src Surface, x, y int)
	// BlitScaled replaces the whole surface with src stretched to fit, using
	// nearest-neighbor sampling.
	BlitScaled(src Surface)
	// Snapshot returns a straight-alpha copy of the surface pixels.
	Snapshot() *image.NRGBA
	// Dispose releases the surface. It must not be used afterwards.
	Dispose()
}

// Transformer produces rotated and resized copies of surfaces.
type Transformer interface {
	// Rotate returns src rotated counter-clockwise by degrees. The result
	// grows to the bounding box of the rotated content.
	Rotate(src Surface, degrees float64) Surface
	// Scale returns src resized to w x h with nearest-neighbor sampling.
	Scale(src Surface, w, h int) Surface
}

// Font renders text into new surfaces.
type Font interface {
	// Render rasterizes text in fg. A nil bg leaves the background transparent.
	Render(text string, fg, bg color.Color) Surface
	// Measure returns the pixel size Render would produce for text.
	Measure(text string) (w, h int)
}

// Key identifies a keyboard key.
type Key = ebiten.Key

// Input exposes live pointer and keyboard state in window coordinates.
type Input interface {
	CursorPosition() (x, y int)
	MousePressed() bool
	KeyPressed(k Key) bool
}

// Clock paces a frame loop and reports the measured frame rate.
type Clock interface {
	// Tick blocks as needed so that calls happen at most fps times per second.
	Tick(fps int)
	// FPS returns the measured frame rate, or 0 when no frame has been timed.
	FPS() float64
}

// Backend is the graphics/windowing collaborator the engine drives.
type Backend interface {
	Transformer

	// Open prepares a window of the given size and title.
	Open(title string, w, h int) error
	NewSurface(w, h int) Surface
	NewSurfaceFromImage(img image.Image) Surface
	LoadFont(data []byte, size float64) (Font, error)

	// PollEvents drains pending events and reports whether quit was requested.
	PollEvents() bool
	Input() Input
	SetTitle(title string)
	// Present shows screen as the current frame.
	Present(screen Surface)
	Clock() Clock
	// Loop calls frame until it returns an error and returns that error.
	Loop(frame func() error) error
}

// Injector is implemented by backends that accept synthetic input.
type Injector interface {
	InjectPress(x, y int)
	InjectMove(x, y int)
	InjectRelease(x, y int)
	InjectClick(x, y int)
	InjectQuit()
	Pending() int
}
