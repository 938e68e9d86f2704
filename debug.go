package ssengine

import (
	"fmt"
	"os"
	"time"
)

// Stats are cumulative counters since the engine was created.
type Stats struct {
	Frames        uint64 // completed frames
	SpriteRenders uint64 // Sprite.Render calls made by the frame loop
	Screenshots   uint64 // PNG files written
}

// frameTiming holds per-frame phase timings. Only populated when the engine
// is in debug mode.
type frameTiming struct {
	hookTime      time.Duration
	renderTime    time.Duration
	compositeTime time.Duration
	afterTime     time.Duration
	sprites       int
	layers        int
}

// debugLog prints timing and draw counts to stderr.
func (e *Engine) debugLog(ft frameTiming) {
	if !e.debug {
		return
	}
	total := ft.hookTime + ft.renderTime + ft.compositeTime + ft.afterTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[ssengine] frame %d | update: %v | sprites: %v | composite: %v | after: %v | total: %v\n",
		e.stats.Frames, ft.hookTime, ft.renderTime, ft.compositeTime, ft.afterTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[ssengine] sprites: %d | layer blits: %d | fps: %.1f\n",
		ft.sprites, ft.layers, e.backend.Clock().FPS())
}

// debugWarnf prints a warning to stderr regardless of debug mode.
func debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[ssengine] warning: "+format+"\n", args...)
}
