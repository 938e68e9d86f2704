package ssengine

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled capture of the window surface. The PNG is
// written to ScreenshotDir with a timestamped name right before the frame is
// presented, so UI drawn in after-update hooks is included. Safe to call
// from hooks.
func (e *Engine) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label.
func (e *Engine) flushScreenshots() {
	if len(e.screenshotQueue) == 0 {
		return
	}
	defer func() { e.screenshotQueue = e.screenshotQueue[:0] }()

	if err := os.MkdirAll(e.ScreenshotDir, 0o755); err != nil {
		debugWarnf("screenshot: mkdir %s: %v", e.ScreenshotDir, err)
		return
	}

	img := e.screen.Snapshot()
	stamp := time.Now().Format("20060102_150405")

	for _, label := range e.screenshotQueue {
		path := filepath.Join(e.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			debugWarnf("screenshot: %v", err)
			continue
		}
		e.stats.Screenshots++
	}
}

// unpremultiply converts premultiplied RGBA bytes to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
