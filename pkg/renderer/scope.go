package renderer

import (
	"github.com/reflow-ui/reflow/internal/errors"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

// renderScope is the unified view of an instance's state handed to its
// render function and lifecycle callbacks. Reads resolve across state,
// props, and setup state in that order; "$slots" resolves to the slot map.
type renderScope struct {
	inst *Instance
}

// Get resolves a read. Unknown names are a diagnostic and resolve to nil.
func (s *renderScope) Get(name string) any {
	inst := s.inst
	if inst.state != nil && inst.state.Has(name) {
		return inst.state.Get(name)
	}
	if inst.props.Has(name) {
		return inst.props.Get(name)
	}
	if value, ok := inst.setupState[name]; ok {
		return value
	}
	if name == "$slots" {
		return inst.slots
	}
	inst.renderer.diag(errors.New("E004").WithDetail("key " + name))
	return nil
}

// Set resolves a write to the container that holds the name. Writing a
// prop or an unknown name is refused with a diagnostic.
func (s *renderScope) Set(name string, value any) {
	inst := s.inst
	if inst.state != nil && inst.state.Has(name) {
		inst.state.Set(name, value)
		return
	}
	if inst.props.Has(name) {
		inst.renderer.diag(errors.New("E003").WithDetail("prop " + name).
			WithSuggestion("emit an event and let the parent update the prop"))
		return
	}
	if _, ok := inst.setupState[name]; ok {
		inst.setupState[name] = value
		return
	}
	inst.renderer.diag(errors.New("E002").WithDetail("key " + name))
}

// Slots returns the parent-supplied slot thunks.
func (s *renderScope) Slots() vdom.Slots {
	return s.inst.slots
}

// Emit forwards to the instance's emit.
func (s *renderScope) Emit(event string, args ...any) {
	s.inst.Emit(event, args...)
}
