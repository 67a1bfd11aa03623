package renderer

import (
	"reflect"

	"github.com/reflow-ui/reflow/internal/errors"
	"github.com/reflow-ui/reflow/pkg/reactive"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

// Instance is the per-mount bookkeeping for a component vnode. It owns the
// component's reactive props and state, its render effect, and the subtree
// the render function last produced.
type Instance struct {
	def      *vdom.ComponentDef
	renderer *Renderer

	// vnode is the component vnode currently bound to this instance.
	vnode *vdom.VNode

	// props holds the declared inputs, shallow-reactive.
	props *reactive.Map

	// attrs holds the undeclared incoming props, plain.
	attrs map[string]any

	// state is the reactive map from the legacy Data factory, or nil.
	state *reactive.Map

	// setupState is the map returned by Setup when it is not a render
	// function.
	setupState map[string]any

	// slots are the parent-supplied slot thunks.
	slots vdom.Slots

	// render produces the subtree; from Setup's return value or the
	// definition's Render field.
	render vdom.RenderFn

	// subTree is the vnode the render function last produced.
	subTree *vdom.VNode

	// isMounted flips after the first patch completes.
	isMounted bool

	// mounted are callbacks registered via OnMounted during Setup,
	// drained in registration order after the first host insertion.
	mounted []func()

	// effect is the reactive render loop.
	effect *reactive.Effect

	// scope is the unified state view handed to render and lifecycle.
	scope *renderScope

	// container and anchor fix where the subtree mounts.
	container any
	anchor    any
}

// currentInstance is the process-wide register naming the instance whose
// Setup is running, written only between acquire and release around the
// Setup call. Single-threaded execution makes the single slot safe.
var currentInstance *Instance

func setCurrentInstance(inst *Instance) *Instance {
	old := currentInstance
	currentInstance = inst
	return old
}

// OnMounted registers a callback on the component currently running its
// Setup. Callbacks fire in registration order, after the component's
// subtree is inserted into the host. Outside a Setup call this is a
// diagnostic no-op.
func OnMounted(fn func()) {
	if currentInstance == nil {
		Diagnostics(errors.New("E001"))
		return
	}
	currentInstance.mounted = append(currentInstance.mounted, fn)
}

// mountComponent instantiates a component vnode: resolves props, runs
// Setup, and attaches the reactive effect that renders and re-renders the
// subtree.
func (r *Renderer) mountComponent(vn *vdom.VNode, container any, anchor any) {
	r.metrics.countComponentMount()

	def := vn.Def
	isFunc := vn.Kind == vdom.KindFunc
	if isFunc {
		def = &vdom.ComponentDef{Name: "func"}
	}

	if def.BeforeCreate != nil {
		def.BeforeCreate()
	}

	declared, attrs := resolveProps(def.Props, vn.Props, isFunc)

	inst := &Instance{
		def:       def,
		renderer:  r,
		vnode:     vn,
		props:     reactive.NewMap(declared),
		attrs:     attrs,
		slots:     vn.Slots,
		render:    def.Render,
		container: container,
		anchor:    anchor,
	}
	if inst.slots == nil {
		inst.slots = vdom.Slots{}
	}
	if def.Data != nil {
		inst.state = reactive.NewMap(def.Data())
	}
	if isFunc {
		fn := vn.Fn
		inst.render = func(vdom.RenderScope) *vdom.VNode {
			return fn(trackedProps(inst.props))
		}
	}

	if def.Setup != nil {
		prev := setCurrentInstance(inst)
		result := def.Setup(inst.props.Readonly(), vdom.SetupContext{
			Attrs: inst.attrs,
			Slots: inst.slots,
			Emit:  inst.Emit,
		})
		setCurrentInstance(prev)

		switch v := result.(type) {
		case vdom.RenderFn:
			inst.render = v
		case func(vdom.RenderScope) *vdom.VNode:
			inst.render = v
		case map[string]any:
			inst.setupState = v
		case nil:
		default:
			r.diag(errors.Newf(errors.CategoryUsage,
				"setup returned %T; want a render function or a state map", result))
		}
	}

	if inst.render == nil {
		r.diag(errors.New("E020"))
		inst.render = func(vdom.RenderScope) *vdom.VNode {
			return vdom.Comment("missing render")
		}
	}

	inst.scope = &renderScope{inst: inst}
	vn.Inst = inst

	if def.Created != nil {
		def.Created(inst.scope)
	}

	var effOpts []reactive.EffectOption
	if r.scheduler != nil {
		effOpts = append(effOpts, reactive.WithScheduler(r.scheduler))
	}
	inst.effect = reactive.NewEffect(func() reactive.Cleanup {
		r.renderInstance(inst)
		return nil
	}, effOpts...)
}

// renderInstance is the body of a component's render effect: produce the
// subtree and mount or re-patch it, sequencing the lifecycle callbacks.
func (r *Renderer) renderInstance(inst *Instance) {
	r.metrics.countComponentRender()

	subTree := inst.render(inst.scope)

	if !inst.isMounted {
		if inst.def.BeforeMount != nil {
			inst.def.BeforeMount(inst.scope)
		}
		r.patch(nil, subTree, inst.container, inst.anchor)
		inst.isMounted = true
		inst.subTree = subTree
		inst.vnode.El = hostEl(subTree)

		// Registered callbacks first, then the option hook.
		for _, cb := range inst.mounted {
			cb()
		}
		inst.mounted = nil
		if inst.def.Mounted != nil {
			inst.def.Mounted(inst.scope)
		}
		return
	}

	if inst.def.BeforeUpdate != nil {
		inst.def.BeforeUpdate(inst.scope)
	}
	r.patch(inst.subTree, subTree, inst.container, inst.anchor)
	inst.subTree = subTree
	inst.vnode.El = hostEl(subTree)
	if inst.def.Updated != nil {
		inst.def.Updated(inst.scope)
	}
}

// patchComponent carries the instance over and synchronises props and
// attrs. The re-render, if any, is triggered by the reactive props writes;
// this function never patches the subtree itself.
func (r *Renderer) patchComponent(old, new *vdom.VNode) {
	inst, ok := old.Inst.(*Instance)
	if !ok || inst == nil {
		// Old vnode was never mounted; nothing to carry.
		return
	}

	new.Inst = inst
	new.El = old.El
	inst.vnode = new
	if new.Slots != nil {
		inst.slots = new.Slots
	}

	if !vdom.HasPropsChanged(old.Props, new.Props) {
		return
	}

	declared, attrs := resolveProps(inst.def.Props, new.Props, new.Kind == vdom.KindFunc)
	inst.attrs = attrs

	reactive.Batch(func() {
		for key, value := range declared {
			inst.props.Set(key, value)
		}
		for key := range inst.props.Snapshot() {
			if _, keep := declared[key]; !keep {
				inst.props.Delete(key)
			}
		}
	})
}

// Emit invokes the parent-supplied handler for the named event: "change"
// resolves to the onChange prop.
func (in *Instance) Emit(event string, args ...any) {
	name := vdom.EventPropName(event)
	handler, ok := in.props.Peek(name)
	if !ok {
		handler = in.attrs[name]
	}
	if handler == nil {
		return
	}
	if !in.invoke(handler, args) {
		in.renderer.diag(errors.New("E022").WithDetail("event " + event))
	}
}

// invoke calls a handler value with args, returning false when the value
// is not callable with that arity.
func (in *Instance) invoke(handler any, args []any) bool {
	switch h := handler.(type) {
	case func():
		h()
		return true
	case func(...any):
		h(args...)
		return true
	case func(any):
		var first any
		if len(args) > 0 {
			first = args[0]
		}
		h(first)
		return true
	}

	rv := reflect.ValueOf(handler)
	if rv.Kind() != reflect.Func {
		return false
	}
	rt := rv.Type()
	if !rt.IsVariadic() && rt.NumIn() != len(args) {
		return false
	}
	in2 := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in2[i] = reflect.Zero(rt.In(i))
		} else {
			in2[i] = reflect.ValueOf(a)
		}
	}
	rv.Call(in2)
	return true
}

// Props returns the instance's reactive props map.
func (in *Instance) Props() *reactive.Map { return in.props }

// Attrs returns the instance's plain attrs map.
func (in *Instance) Attrs() map[string]any { return in.attrs }

// SubTree returns the vnode the instance last rendered.
func (in *Instance) SubTree() *vdom.VNode { return in.subTree }

// IsMounted reports whether the first patch has completed.
func (in *Instance) IsMounted() bool { return in.isMounted }

// resolveProps splits incoming props against the declaration: declared
// keys and event handlers become props (missing or nil declared values
// take their defaults; defaults that are funcs are invoked), everything
// else becomes attrs. all routes every key to props (function components).
func resolveProps(decl map[string]any, incoming vdom.Props, all bool) (map[string]any, map[string]any) {
	props := make(map[string]any)
	attrs := make(map[string]any)

	for name, value := range incoming {
		_, isDeclared := decl[name]
		if all || isDeclared || vdom.IsEventProp(name) {
			if value == nil && isDeclared {
				value = propDefault(decl[name])
			}
			props[name] = value
		} else {
			attrs[name] = value
		}
	}

	for name, def := range decl {
		if _, present := props[name]; !present {
			props[name] = propDefault(def)
		}
	}

	return props, attrs
}

// propDefault materialises a declared default; func defaults are invoked.
func propDefault(def any) any {
	if fn, ok := def.(func() any); ok {
		return fn()
	}
	return def
}

// trackedProps reads every key of a reactive map so the current listener
// subscribes to all of them, returning a plain snapshot. Function
// components render from this.
func trackedProps(m *reactive.Map) vdom.Props {
	props := make(vdom.Props)
	for _, key := range m.Keys() {
		props[key] = m.Get(key)
	}
	return props
}
