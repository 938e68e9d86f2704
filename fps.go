package ssengine

import "fmt"

// fpsOffset is where the on-window readout is drawn.
const fpsOffset = 2

// fpsReadout draws "fps: N" in gray on black. The text image is only
// re-rendered when the formatted value changes.
type fpsReadout struct {
	font Font
	text string
	img  Surface
}

func (r *fpsReadout) draw(dst Surface, fps float64) {
	txt := fmt.Sprintf("fps: %.1f", fps)
	if txt != r.text || r.img == nil {
		if r.img != nil {
			r.img.Dispose()
		}
		r.img = r.font.Render(txt, ColorGray, ColorBlack)
		r.text = txt
	}
	dst.Blit(r.img, fpsOffset, fpsOffset)
}

func (r *fpsReadout) dispose() {
	if r.img != nil {
		r.img.Dispose()
		r.img = nil
	}
	r.text = ""
}
