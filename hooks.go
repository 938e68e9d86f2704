package ssengine

// HookPhase selects the point in the frame where a hook runs.
type HookPhase uint8

const (
	PhaseUpdate      HookPhase = iota // after the canvas is cleared, before sprites render
	PhaseAfterUpdate                  // after the canvas is scaled onto the window
)

type hook struct {
	id uint32
	fn func() error
}

// hookRegistry keeps the ordered hooks of both phases.
type hookRegistry struct {
	update      []hook
	afterUpdate []hook
	nextID      uint32
}

// HookHandle allows removing a registered hook.
type HookHandle struct {
	id    uint32
	reg   *hookRegistry
	phase HookPhase
}

// Remove unregisters the hook so it no longer runs. Safe to call from inside
// a hook; the removal takes effect on the next frame.
func (h HookHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.phase {
	case PhaseUpdate:
		h.reg.update = removeHook(h.reg.update, h.id)
	case PhaseAfterUpdate:
		h.reg.afterUpdate = removeHook(h.reg.afterUpdate, h.id)
	}
}

func removeHook(s []hook, id uint32) []hook {
	for i := range s {
		if s[i].id == id {
			// copy so a running dispatch keeps iterating the old slice
			out := make([]hook, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func (r *hookRegistry) add(phase HookPhase, fn func() error) HookHandle {
	r.nextID++
	id := r.nextID
	switch phase {
	case PhaseUpdate:
		r.update = append(r.update, hook{id: id, fn: fn})
	case PhaseAfterUpdate:
		r.afterUpdate = append(r.afterUpdate, hook{id: id, fn: fn})
	}
	return HookHandle{id: id, reg: r, phase: phase}
}

func (r *hookRegistry) replace(phase HookPhase, fn func() error) HookHandle {
	switch phase {
	case PhaseUpdate:
		r.update = nil
	case PhaseAfterUpdate:
		r.afterUpdate = nil
	}
	if fn == nil {
		return HookHandle{}
	}
	return r.add(phase, fn)
}

// run calls the hooks of phase in registration order, stopping at the first
// error.
func (r *hookRegistry) run(phase HookPhase) error {
	hooks := r.update
	if phase == PhaseAfterUpdate {
		hooks = r.afterUpdate
	}
	for _, h := range hooks {
		if err := h.fn(); err != nil {
			return err
		}
	}
	return nil
}
