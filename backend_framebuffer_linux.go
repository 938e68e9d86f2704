//go:build linux

package ssengine

import (
	"fmt"
	"image/color"

	fb "github.com/gonutz/framebuffer"
)

// FramebufferBackend renders in software and writes every presented frame
// to a Linux framebuffer device, stretched to the device size. Input is the
// software backend's injected or Set* state.
type FramebufferBackend struct {
	*SoftwareBackend
	dev *fb.Device
}

// OpenFramebuffer opens a framebuffer device such as /dev/fb0.
func OpenFramebuffer(path string) (*FramebufferBackend, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ssengine: open framebuffer %s: %w", path, err)
	}
	return &FramebufferBackend{SoftwareBackend: NewSoftwareBackend(), dev: dev}, nil
}

// Present records the frame and copies it to the device.
func (b *FramebufferBackend) Present(screen Surface) {
	b.SoftwareBackend.Present(screen)
	img := asSoft(screen).img
	sw, sh := img.Bounds().Dx(), img.Bounds().Dy()

	bounds := b.dev.Bounds()
	fw, fh := bounds.Dx(), bounds.Dy()
	for y := 0; y < fh; y++ {
		sy := y * sh / fh
		for x := 0; x < fw; x++ {
			p := img.RGBAAt(x*sw/fw, sy)
			b.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
}

// Close releases the device.
func (b *FramebufferBackend) Close() {
	b.dev.Close()
}
