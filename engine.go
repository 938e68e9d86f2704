package ssengine

import (
	"errors"
	"fmt"
	"time"
)

// Engine owns the low-resolution canvas and the window surface and drives
// the frame loop: poll, clear, update hooks, sprites, upscale, FPS readout,
// after-update hooks, present, pace.
//
// Everything runs on the goroutine that calls Update (or Run). Hooks may
// mutate sprites, hooks and widgets freely between and during frames.
type Engine struct {
	// TargetFPS caps the loop rate.
	TargetFPS int
	// ShowFPSOnCaption appends the measured rate to the window title.
	ShowFPSOnCaption bool
	// ShowFPSOnWindow draws the measured rate near the window origin.
	ShowFPSOnWindow bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	backend Backend
	title   string
	width   int
	height  int
	cw, ch  int

	display Surface
	screen  Surface

	sprites []*Sprite
	hooks   hookRegistry
	fonts   *fontSet
	fps     fpsReadout

	debug           bool
	stats           Stats
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewEngine opens the window described by cfg on b and allocates the canvas
// and window surfaces. Missing font resources and invalid resolutions are
// reported here, before any frame runs.
func NewEngine(b Backend, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fonts, err := newFontSet(b, cfg.FontPath)
	if err != nil {
		return nil, err
	}
	fpsFont, err := fonts.face(float64(cfg.FPSFontSize))
	if err != nil {
		return nil, err
	}
	if err := b.Open(cfg.Title, cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("ssengine: open window: %w", err)
	}
	return &Engine{
		TargetFPS:        cfg.FPS,
		ShowFPSOnCaption: cfg.ShowFPSOnCaption,
		ShowFPSOnWindow:  cfg.ShowFPSOnWindow,
		ScreenshotDir:    cfg.ScreenshotDir,
		backend:          b,
		title:            cfg.Title,
		width:            cfg.Width,
		height:           cfg.Height,
		cw:               cfg.CanvasWidth,
		ch:               cfg.CanvasHeight,
		display:          b.NewSurface(cfg.CanvasWidth, cfg.CanvasHeight),
		screen:           b.NewSurface(cfg.Width, cfg.Height),
		fonts:            fonts,
		fps:              fpsReadout{font: fpsFont},
		debug:            cfg.Debug,
	}, nil
}

// Backend returns the backend the engine draws with.
func (e *Engine) Backend() Backend {
	return e.backend
}

// Display returns the low-resolution canvas sprites are rendered onto.
func (e *Engine) Display() Surface {
	return e.display
}

// Screen returns the window-resolution surface. Draw UI here from an
// after-update hook so it stays crisp.
func (e *Engine) Screen() Surface {
	return e.screen
}

// Input returns the backend's live input state.
func (e *Engine) Input() Input {
	return e.backend.Input()
}

// Resolution returns the window size.
func (e *Engine) Resolution() Size {
	return Size{e.width, e.height}
}

// CanvasResolution returns the low-resolution canvas size.
func (e *Engine) CanvasResolution() Size {
	return Size{e.cw, e.ch}
}

// CanvasPoint maps a window coordinate onto the canvas.
func (e *Engine) CanvasPoint(x, y int) Vec2 {
	return Vec2{
		X: float64(x) * float64(e.cw) / float64(e.width),
		Y: float64(y) * float64(e.ch) / float64(e.height),
	}
}

// Title returns the base window title.
func (e *Engine) Title() string {
	return e.title
}

// SetTitle changes the base window title.
func (e *Engine) SetTitle(title string) {
	e.title = title
	e.backend.SetTitle(title)
}

// Font returns the engine font at size points. Fonts are loaded once per
// size and shared by every caller.
func (e *Engine) Font(size float64) (Font, error) {
	return e.fonts.face(size)
}

// AddSprite appends s to the paint list. Later sprites paint over earlier ones.
func (e *Engine) AddSprite(s *Sprite) {
	e.sprites = append(e.sprites, s)
}

// RemoveSprite removes s from the paint list. It reports whether s was found.
func (e *Engine) RemoveSprite(s *Sprite) bool {
	for i, sp := range e.sprites {
		if sp == s {
			e.sprites = append(e.sprites[:i:i], e.sprites[i+1:]...)
			return true
		}
	}
	return false
}

// Sprites returns the paint list. The returned slice MUST NOT be mutated.
func (e *Engine) Sprites() []*Sprite {
	return e.sprites
}

// OnUpdate registers fn to run each frame after the canvas is cleared and
// before sprites are rendered. Hooks run in registration order.
func (e *Engine) OnUpdate(fn func() error) HookHandle {
	return e.hooks.add(PhaseUpdate, fn)
}

// AfterUpdate registers fn to run each frame after the canvas has been
// scaled onto the window and before the frame is presented.
func (e *Engine) AfterUpdate(fn func() error) HookHandle {
	return e.hooks.add(PhaseAfterUpdate, fn)
}

// SetOnUpdate replaces every update hook with fn. A nil fn clears the phase.
func (e *Engine) SetOnUpdate(fn func() error) HookHandle {
	return e.hooks.replace(PhaseUpdate, fn)
}

// SetAfterUpdate replaces every after-update hook with fn. A nil fn clears
// the phase.
func (e *Engine) SetAfterUpdate(fn func() error) HookHandle {
	return e.hooks.replace(PhaseAfterUpdate, fn)
}

// DeltaTime returns the measured seconds per frame, or 1/TargetFPS before
// any frame has been timed. It is 0 when neither rate is known.
func (e *Engine) DeltaTime() float64 {
	if fps := e.backend.Clock().FPS(); fps != 0 {
		return 1 / fps
	}
	if e.TargetFPS <= 0 {
		return 0
	}
	return 1 / float64(e.TargetFPS)
}

// FPS returns the measured frame rate.
func (e *Engine) FPS() float64 {
	return e.backend.Clock().FPS()
}

// Stats returns cumulative frame counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// SetDebugMode enables or disables per-frame timing logs on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Update runs exactly one frame. It returns ErrQuit when the backend
// reported a quit request, or the first error returned by a hook; the frame
// is abandoned in both cases.
func (e *Engine) Update() error {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	if e.backend.PollEvents() {
		return ErrQuit
	}

	var ft frameTiming
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.display.Fill(ColorBlack)
	if err := e.hooks.run(PhaseUpdate); err != nil {
		return err
	}

	if e.debug {
		ft.hookTime = time.Since(t0)
		t0 = time.Now()
	}

	for _, s := range e.sprites {
		s.Render(e.display)
		ft.layers += len(s.layers)
	}
	ft.sprites = len(e.sprites)
	e.stats.SpriteRenders += uint64(len(e.sprites))

	if e.debug {
		ft.renderTime = time.Since(t0)
		t0 = time.Now()
	}

	e.screen.BlitScaled(e.display)
	fps := e.backend.Clock().FPS()
	if e.ShowFPSOnCaption {
		e.backend.SetTitle(fmt.Sprintf("%s | fps: %.1f", e.title, fps))
	}
	if e.ShowFPSOnWindow {
		e.fps.draw(e.screen, fps)
	}

	if e.debug {
		ft.compositeTime = time.Since(t0)
		t0 = time.Now()
	}

	if err := e.hooks.run(PhaseAfterUpdate); err != nil {
		return err
	}

	if e.debug {
		ft.afterTime = time.Since(t0)
	}

	e.flushScreenshots()
	e.backend.Present(e.screen)
	e.backend.Clock().Tick(e.TargetFPS)
	e.stats.Frames++
	e.debugLog(ft)
	return nil
}

// Run hands Update to the backend loop until quit or an error. A quit
// request ends Run with a nil error; the caller decides whether to exit.
func (e *Engine) Run() error {
	err := e.backend.Loop(e.Update)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Dispose releases the canvas, window surface and FPS readout. Sprites are
// owned by the caller.
func (e *Engine) Dispose() {
	e.fps.dispose()
	e.display.Dispose()
	e.screen.Dispose()
}
