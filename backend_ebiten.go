package ssengine

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenBackend runs the engine in an Ebitengine window. Surfaces are
// *ebiten.Image, fonts use text/v2 and pacing follows ebiten's TPS.
type EbitenBackend struct {
	width, height int
	presented     *ebitenSurface
	clock         tpsClock
	input         ebitenInput
}

// NewEbitenBackend returns a backend for a single Ebitengine window.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{}
}

// Open sets the window size and title. The window appears when Loop starts.
func (b *EbitenBackend) Open(title string, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidResolution, w, h)
	}
	b.width, b.height = w, h
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	return nil
}

func (b *EbitenBackend) NewSurface(w, h int) Surface {
	return &ebitenSurface{img: ebiten.NewImage(w, h)}
}

func (b *EbitenBackend) NewSurfaceFromImage(img image.Image) Surface {
	return &ebitenSurface{img: ebiten.NewImageFromImage(img)}
}

// Rotate draws src turned counter-clockwise onto a new image sized to the
// rotated bounding box.
func (b *EbitenBackend) Rotate(src Surface, degrees float64) Surface {
	s := asEbiten(src)
	w, h := s.Size()
	rw, rh := rotatedSize(w, h, degrees)
	dst := ebiten.NewImage(max(rw, 1), max(rh, 1))

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	// GeoM rotates clockwise on screen for positive angles
	op.GeoM.Rotate(-degrees * math.Pi / 180)
	op.GeoM.Translate(float64(rw)/2, float64(rh)/2)
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(s.img, &op)
	return &ebitenSurface{img: dst}
}

// Scale resizes src with nearest filtering.
func (b *EbitenBackend) Scale(src Surface, w, h int) Surface {
	s := asEbiten(src)
	dst := ebiten.NewImage(w, h)
	drawScaled(dst, s.img, ebiten.BlendSourceOver)
	return &ebitenSurface{img: dst}
}

// LoadFont loads TrueType/OpenType data as a text/v2 face.
func (b *EbitenBackend) LoadFont(data []byte, size float64) (Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ssengine: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &ebitenFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// PollEvents reports whether the user asked to close the window.
func (b *EbitenBackend) PollEvents() bool {
	return ebiten.IsWindowBeingClosed()
}

func (b *EbitenBackend) Input() Input {
	return &b.input
}

func (b *EbitenBackend) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Present keeps screen to be copied to the window in the next Draw.
func (b *EbitenBackend) Present(screen Surface) {
	b.presented = asEbiten(screen)
}

func (b *EbitenBackend) Clock() Clock {
	return &b.clock
}

// Loop runs the Ebitengine game loop, calling frame from the game's Update.
// ErrQuit from frame closes the window and is returned.
func (b *EbitenBackend) Loop(frame func() error) error {
	g := &ebitenGame{backend: b, frame: frame}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	if g.quit {
		return ErrQuit
	}
	return nil
}

// ebitenGame adapts the engine frame to ebiten.Game.
type ebitenGame struct {
	backend *EbitenBackend
	frame   func() error
	quit    bool
}

func (g *ebitenGame) Update() error {
	err := g.frame()
	if errors.Is(err, ErrQuit) {
		g.quit = true
		return ebiten.Termination
	}
	return err
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if g.backend.presented == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendCopy
	screen.DrawImage(g.backend.presented.img, &op)
}

func (g *ebitenGame) Layout(_, _ int) (int, int) {
	return g.backend.width, g.backend.height
}

// tpsClock paces through ebiten.SetTPS; ebiten does the sleeping.
type tpsClock struct {
	tps int
}

func (c *tpsClock) Tick(fps int) {
	if fps > 0 && fps != c.tps {
		c.tps = fps
		ebiten.SetTPS(fps)
	}
}

func (c *tpsClock) FPS() float64 {
	return ebiten.ActualTPS()
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (ebitenInput) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) KeyPressed(k Key) bool {
	return ebiten.IsKeyPressed(k)
}

// --- surfaces ---

type ebitenSurface struct {
	img *ebiten.Image
}

func asEbiten(s Surface) *ebitenSurface {
	es, ok := s.(*ebitenSurface)
	if !ok {
		panic(fmt.Sprintf("ssengine: %T is not an ebiten surface", s))
	}
	return es
}

// Image exposes the underlying *ebiten.Image for direct drawing.
func (s *ebitenSurface) Image() *ebiten.Image {
	return s.img
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) Fill(c color.Color) {
	s.img.Fill(c)
}

func (s *ebitenSurface) FillRect(r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(s.img, float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), c, false)
}

func (s *ebitenSurface) Blit(src Surface, x, y int) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	s.img.DrawImage(asEbiten(src).img, &op)
}

func (s *ebitenSurface) BlitScaled(src Surface) {
	drawScaled(s.img, asEbiten(src).img, ebiten.BlendCopy)
}

func (s *ebitenSurface) Snapshot() *image.NRGBA {
	w, h := s.Size()
	pixels := make([]byte, 4*w*h)
	s.img.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

func (s *ebitenSurface) Dispose() {
	s.img.Deallocate()
}

// drawScaled stretches src over all of dst with nearest filtering.
func drawScaled(dst, src *ebiten.Image, blend ebiten.Blend) {
	sb, db := src.Bounds(), dst.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.Filter = ebiten.FilterNearest
	op.Blend = blend
	dst.DrawImage(src, &op)
}

// --- fonts ---

type ebitenFont struct {
	face *text.GoTextFace
	lh   float64
}

func (f *ebitenFont) Measure(s string) (int, int) {
	w, h := text.Measure(s, f.face, f.lh)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

func (f *ebitenFont) Render(s string, fg, bg color.Color) Surface {
	w, h := f.Measure(s)
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	if bg != nil {
		img.Fill(bg)
	}
	op := &text.DrawOptions{}
	op.LineSpacing = f.lh
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(img, s, f.face, op)
	return &ebitenSurface{img: img}
}
