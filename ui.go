package ssengine

import (
	"image"
	"math"
)

// buttonShadowOffset is how far the drop shadow sits below and right of a button.
const buttonShadowOffset = 3

// Default widget colors.
var (
	DefaultButtonColor    = RGB8(70, 70, 90)
	DefaultHighlightColor = RGB8(110, 110, 140)
	DefaultShadowColor    = Color{0, 0, 0, 0.6}
	DefaultTextColor      = ColorWhite
	DefaultOverlayTint    = Color{0, 0, 0, 0.5}
)

// Button is a fixed rectangle with centered text that calls OnClick once per
// press that starts while the cursor is over it. Buttons are drawn directly
// onto the window surface.
type Button struct {
	Rect           Rect
	Color          Color
	HighlightColor Color
	ShadowColor    Color
	OnClick        func()

	text      string
	textImg   Surface
	input     Input
	isPressed bool
}

// NewButton renders text once with font and returns a button covering rect.
// A mouse button already held when the button is created does not count as a
// press.
func NewButton(font Font, input Input, text string, rect Rect, onClick func()) *Button {
	return &Button{
		Rect:           rect,
		Color:          DefaultButtonColor,
		HighlightColor: DefaultHighlightColor,
		ShadowColor:    DefaultShadowColor,
		OnClick:        onClick,
		text:           text,
		textImg:        font.Render(text, DefaultTextColor, nil),
		input:          input,
		isPressed:      input.MousePressed(),
	}
}

// Text returns the button label.
func (b *Button) Text() string {
	return b.text
}

// Hovered reports whether the cursor is inside the button.
func (b *Button) Hovered() bool {
	x, y := b.input.CursorPosition()
	return b.Rect.Contains(float64(x), float64(y))
}

// Update polls the mouse. OnClick fires on the frame the primary button goes
// down while the cursor is inside; holding, or pressing outside and dragging
// in, does not fire again.
func (b *Button) Update() {
	pressed := b.input.MousePressed()
	if pressed && !b.isPressed && b.Hovered() && b.OnClick != nil {
		b.OnClick()
	}
	b.isPressed = pressed
}

// Reset latches the current mouse state, so a button held down now does not
// count as a press on the next Update. Call it before polling a button that
// has not been polled every frame.
func (b *Button) Reset() {
	b.isPressed = b.input.MousePressed()
}

// Draw paints the shadow, the body (highlighted while hovered) and the text.
func (b *Button) Draw(dst Surface) {
	dst.FillRect(b.Rect.Offset(buttonShadowOffset, buttonShadowOffset).Image(), b.ShadowColor)
	body := b.Color
	if b.Hovered() {
		body = b.HighlightColor
	}
	r := b.Rect.Image()
	dst.FillRect(r, body)
	tw, th := b.textImg.Size()
	dst.Blit(b.textImg, r.Min.X+(r.Dx()-tw)/2, r.Min.Y+(r.Dy()-th)/2)
}

// Dispose releases the rendered text.
func (b *Button) Dispose() {
	b.textImg.Dispose()
}

// Label is static text drawn at a fixed position. To change the text, build
// a new Label.
type Label struct {
	Position Vec2
	// Background is drawn behind the text when non-nil.
	Background *Color

	text    string
	textImg Surface
}

// NewLabel renders text once in fg.
func NewLabel(font Font, text string, position Vec2, fg Color) *Label {
	return &Label{
		Position: position,
		text:     text,
		textImg:  font.Render(text, fg, nil),
	}
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// Draw paints the background, if any, then the text.
func (l *Label) Draw(dst Surface) {
	x, y := int(math.Floor(l.Position.X)), int(math.Floor(l.Position.Y))
	w, h := l.textImg.Size()
	if l.Background != nil {
		dst.FillRect(image.Rect(x, y, x+w, y+h), *l.Background)
	}
	dst.Blit(l.textImg, x, y)
}

// Dispose releases the rendered text.
func (l *Label) Dispose() {
	l.textImg.Dispose()
}

// UIBase is a menu layer: a translucent tint over the whole window with
// labels and buttons on top.
type UIBase struct {
	overlay Surface
	labels  []*Label
	buttons []*Button
}

// NewUIBase builds the overlay for a window of size using backend b.
func NewUIBase(b Backend, size Size, tint Color) *UIBase {
	overlay := b.NewSurface(size.W, size.H)
	overlay.Fill(tint)
	return &UIBase{overlay: overlay}
}

// AddLabel appends a label; labels draw in insertion order.
func (u *UIBase) AddLabel(l *Label) {
	u.labels = append(u.labels, l)
}

// AddButton appends a button; buttons draw in insertion order, above labels.
func (u *UIBase) AddButton(b *Button) {
	u.buttons = append(u.buttons, b)
}

// Labels returns the labels. The returned slice MUST NOT be mutated.
func (u *UIBase) Labels() []*Label {
	return u.labels
}

// Buttons returns the buttons. The returned slice MUST NOT be mutated.
func (u *UIBase) Buttons() []*Button {
	return u.buttons
}

// Update draws the overlay, then every label, then each button followed by
// its click poll.
func (u *UIBase) Update(dst Surface) {
	dst.Blit(u.overlay, 0, 0)
	for _, l := range u.labels {
		l.Draw(dst)
	}
	for _, b := range u.buttons {
		b.Draw(dst)
		b.Update()
	}
}

// Reset re-latches every button, typically when the menu is shown again.
func (u *UIBase) Reset() {
	for _, b := range u.buttons {
		b.Reset()
	}
}

// Dispose releases the overlay and every widget.
func (u *UIBase) Dispose() {
	u.overlay.Dispose()
	for _, l := range u.labels {
		l.Dispose()
	}
	for _, b := range u.buttons {
		b.Dispose()
	}
}
