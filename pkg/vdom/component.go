package vdom

// ComponentDef describes a stateful component: its declared inputs, setup
// function, render function, and lifecycle callbacks. A ComponentDef is
// shared by every instance of the component; identity (pointer equality)
// is what the reconciler compares when deciding patch vs. replace.
type ComponentDef struct {
	// Name is used in diagnostics only.
	Name string

	// Props declares the component's inputs, mapping each name to its
	// default value. A default that is a func() any is invoked lazily when
	// the incoming prop is missing or nil. Incoming props not declared here
	// (and not event handlers) land in attrs instead.
	Props map[string]any

	// Setup runs once per instance before the first render. Its return
	// value is either a RenderFn (which becomes the instance's render
	// function) or a map[string]any recorded as setup state.
	Setup func(props PropsReader, ctx SetupContext) any

	// Data is the legacy state factory. The returned map becomes the
	// instance's reactive state.
	Data func() map[string]any

	// Render produces the subtree. Ignored when Setup returns a RenderFn.
	Render RenderFn

	// Lifecycle callbacks, in firing order.
	BeforeCreate  func()
	Created       func(RenderScope)
	BeforeMount   func(RenderScope)
	Mounted       func(RenderScope)
	BeforeUpdate  func(RenderScope)
	Updated       func(RenderScope)
	BeforeUnmount func(RenderScope)
	Unmounted     func(RenderScope)
}

// RenderFn produces a component's subtree from its unified state view.
type RenderFn func(RenderScope) *VNode

// RenderScope is the unified view of a component's state passed to its
// render function and lifecycle callbacks. Reads resolve across state,
// props, and setup state in that order; the key "$slots" resolves to the
// slot map. Writes resolve the same way; writing a prop or an unknown key
// is refused with a diagnostic.
type RenderScope interface {
	Get(name string) any
	Set(name string, value any)
	Slots() Slots
	Emit(event string, args ...any)
}

// PropsReader is the read-only view of an instance's reactive props handed
// to Setup. Reads are tracked like any other reactive read.
type PropsReader interface {
	Get(name string) any
	Has(name string) bool
}

// SetupContext carries the non-prop capabilities available during Setup.
type SetupContext struct {
	// Attrs are the incoming props that were not declared.
	Attrs map[string]any

	// Slots are the slot thunks supplied by the parent.
	Slots Slots

	// Emit invokes the parent-supplied handler for the named event.
	Emit func(event string, args ...any)
}

// Component creates a component vnode from a definition. Args may be Attr,
// []Attr, or Slots; string and *VNode args become the default slot.
func Component(def *ComponentDef, args ...any) *VNode {
	node := &VNode{
		Kind:  KindComponent,
		Def:   def,
		Props: make(Props),
	}
	applyComponentArgs(node, args)
	return node
}

// Func creates a function-component vnode. The function is re-invoked with
// the current props when a parent re-render passes changed props (per
// HasPropsChanged) or when reactive state it read changes.
func Func(fn func(Props) *VNode, args ...any) *VNode {
	node := &VNode{
		Kind:  KindFunc,
		Fn:    fn,
		Props: make(Props),
	}
	applyComponentArgs(node, args)
	return node
}

// applyComponentArgs folds constructor args into a component vnode.
func applyComponentArgs(node *VNode, args []any) {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			setProp(node, v)
		case []Attr:
			for _, a := range v {
				setProp(node, a)
			}
		case Slots:
			if node.Slots == nil {
				node.Slots = make(Slots, len(v))
			}
			for name, thunk := range v {
				node.Slots[name] = thunk
			}
		case Slot:
			ensureDefaultSlot(node, v)
		case *VNode:
			child := v
			ensureDefaultSlot(node, func() *VNode { return child })
		case string:
			text := v
			ensureDefaultSlot(node, func() *VNode { return Text(text) })
		}
	}
}

func ensureDefaultSlot(node *VNode, thunk Slot) {
	if node.Slots == nil {
		node.Slots = make(Slots, 1)
	}
	node.Slots["default"] = thunk
}
