package ssengine

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticQuit
)

// syntheticEvent represents a single injected event. Pointer coordinates are
// window coordinates, identical to real mouse input.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    int
	pressed bool
}

// InjectPress queues a primary button press at (x, y). The event is applied
// on the next PollEvents call.
func (b *SoftwareBackend) InjectPress(x, y int) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (b *SoftwareBackend) InjectMove(x, y int) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a button release at (x, y).
func (b *SoftwareBackend) InjectRelease(x, y int) {
	b.injectQueue = append(b.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (b *SoftwareBackend) InjectClick(x, y int) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// InjectQuit queues a quit request behind any pending pointer events.
func (b *SoftwareBackend) InjectQuit() {
	b.injectQueue = append(b.injectQueue, syntheticEvent{kind: syntheticQuit})
}

// Pending returns the number of queued events.
func (b *SoftwareBackend) Pending() int {
	return len(b.injectQueue)
}

// processInjected pops one event and applies it to the input state. It
// reports whether the event was a quit request.
func (b *SoftwareBackend) processInjected() bool {
	if len(b.injectQueue) == 0 {
		return false
	}
	evt := b.injectQueue[0]
	copy(b.injectQueue, b.injectQueue[1:])
	b.injectQueue = b.injectQueue[:len(b.injectQueue)-1]

	if evt.kind == syntheticQuit {
		return true
	}
	b.input.x, b.input.y = evt.x, evt.y
	b.input.pressed = evt.pressed
	return false
}
