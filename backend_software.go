package ssengine

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// SoftwareBackend renders into in-memory RGBA images with no window. It is
// used for tests, tooling and as the base of the framebuffer backend.
// Input comes from the Set* methods or the injection queue.
type SoftwareBackend struct {
	title  string
	width  int
	height int

	input       softInput
	injectQueue []syntheticEvent
	clock       Clock

	presented int
	last      Surface
	polls     int
	quitAfter int
}

// NewSoftwareBackend returns a headless backend paced by a wall-clock
// FrameClock.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{
		input: softInput{keys: make(map[Key]bool)},
		clock: NewFrameClock(),
	}
}

// SetClock replaces the frame clock.
func (b *SoftwareBackend) SetClock(c Clock) {
	b.clock = c
}

// Open records the window size and title.
func (b *SoftwareBackend) Open(title string, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidResolution, w, h)
	}
	b.title, b.width, b.height = title, w, h
	return nil
}

func (b *SoftwareBackend) NewSurface(w, h int) Surface {
	return &softSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (b *SoftwareBackend) NewSurfaceFromImage(img image.Image) Surface {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &softSurface{img: dst}
}

// Rotate turns src counter-clockwise around its center into a canvas sized
// to the rotated bounding box.
func (b *SoftwareBackend) Rotate(src Surface, degrees float64) Surface {
	s := asSoft(src)
	w, h := s.Size()
	rw, rh := rotatedSize(w, h, degrees)
	dst := image.NewRGBA(image.Rect(0, 0, rw, rh))

	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	cx, cy := float64(w)/2, float64(h)/2
	dx, dy := float64(rw)/2, float64(rh)/2
	// src -> dst; y points down, so a positive angle turns counter-clockwise
	m := f64.Aff3{
		cos, sin, dx - cos*cx - sin*cy,
		-sin, cos, dy + sin*cx - cos*cy,
	}
	xdraw.NearestNeighbor.Transform(dst, m, s.img, s.img.Bounds(), xdraw.Src, nil)
	return &softSurface{img: dst}
}

// Scale resizes src with nearest-neighbor sampling.
func (b *SoftwareBackend) Scale(src Surface, w, h int) Surface {
	s := asSoft(src)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), s.img, s.img.Bounds(), xdraw.Src, nil)
	return &softSurface{img: dst}
}

// LoadFont parses TrueType data with freetype.
func (b *SoftwareBackend) LoadFont(data []byte, size float64) (Font, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("ssengine: parse font: %w", err)
	}
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	m := face.Metrics()
	return &softFont{
		face:   face,
		ascent: m.Ascent.Ceil(),
		height: (m.Ascent + m.Descent).Ceil(),
	}, nil
}

// PollEvents applies at most one injected event. It reports quit for an
// injected quit or once the QuitAfter frame budget is spent.
func (b *SoftwareBackend) PollEvents() bool {
	b.polls++
	if b.quitAfter > 0 && b.polls > b.quitAfter {
		return true
	}
	return b.processInjected()
}

func (b *SoftwareBackend) Input() Input {
	return &b.input
}

func (b *SoftwareBackend) SetTitle(title string) {
	b.title = title
}

// WindowSize returns the size passed to Open.
func (b *SoftwareBackend) WindowSize() Size {
	return Size{b.width, b.height}
}

// Title returns the current window title.
func (b *SoftwareBackend) Title() string {
	return b.title
}

func (b *SoftwareBackend) Present(screen Surface) {
	b.presented++
	b.last = screen
}

// Presented returns how many frames have been presented.
func (b *SoftwareBackend) Presented() int {
	return b.presented
}

// LastPresented returns the surface passed to the latest Present call.
func (b *SoftwareBackend) LastPresented() Surface {
	return b.last
}

func (b *SoftwareBackend) Clock() Clock {
	return b.clock
}

// Loop calls frame back to back until it fails.
func (b *SoftwareBackend) Loop(frame func() error) error {
	for {
		if err := frame(); err != nil {
			return err
		}
	}
}

// QuitAfter makes PollEvents report quit once n frames have been polled.
// Zero disables the limit.
func (b *SoftwareBackend) QuitAfter(n int) {
	b.quitAfter = n
	b.polls = 0
}

// SetCursor moves the pointer.
func (b *SoftwareBackend) SetCursor(x, y int) {
	b.input.x, b.input.y = x, y
}

// SetMousePressed sets the primary button state.
func (b *SoftwareBackend) SetMousePressed(pressed bool) {
	b.input.pressed = pressed
}

// SetKey sets the state of key k.
func (b *SoftwareBackend) SetKey(k Key, down bool) {
	b.input.keys[k] = down
}

// --- input ---

type softInput struct {
	x, y    int
	pressed bool
	keys    map[Key]bool
}

func (in *softInput) CursorPosition() (int, int) {
	return in.x, in.y
}

func (in *softInput) MousePressed() bool {
	return in.pressed
}

func (in *softInput) KeyPressed(k Key) bool {
	return in.keys[k]
}

// --- surfaces ---

type softSurface struct {
	img *image.RGBA
}

func asSoft(s Surface) *softSurface {
	ss, ok := s.(*softSurface)
	if !ok {
		panic(fmt.Sprintf("ssengine: %T is not a software surface", s))
	}
	return ss
}

// RGBA exposes the backing image.
func (s *softSurface) RGBA() *image.RGBA {
	return s.img
}

func (s *softSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *softSurface) Fill(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (s *softSurface) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (s *softSurface) Blit(src Surface, x, y int) {
	ss := asSoft(src)
	w, h := ss.Size()
	draw.Draw(s.img, image.Rect(x, y, x+w, y+h), ss.img, ss.img.Bounds().Min, draw.Over)
}

func (s *softSurface) BlitScaled(src Surface) {
	ss := asSoft(src)
	xdraw.NearestNeighbor.Scale(s.img, s.img.Bounds(), ss.img, ss.img.Bounds(), xdraw.Src, nil)
}

func (s *softSurface) Snapshot() *image.NRGBA {
	w, h := s.Size()
	return unpremultiply(s.img.Pix, w, h)
}

func (s *softSurface) Dispose() {}

// --- fonts ---

type softFont struct {
	face   font.Face
	ascent int
	height int
}

func (f *softFont) Measure(text string) (int, int) {
	return font.MeasureString(f.face, text).Ceil(), f.height
}

func (f *softFont) Render(text string, fg, bg color.Color) Surface {
	w, h := f.Measure(text)
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: f.face,
		Dot:  fixed.P(0, f.ascent),
	}
	d.DrawString(text)
	return &softSurface{img: img}
}

// rotatedSize returns the bounding box of a w x h rectangle turned by degrees.
func rotatedSize(w, h int, degrees float64) (int, int) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	rw := float64(w)*cos + float64(h)*sin
	rh := float64(w)*sin + float64(h)*cos
	// trim float noise so 90 degree turns stay exact
	return int(math.Ceil(rw - 1e-9)), int(math.Ceil(rh - 1e-9))
}
