// Package renderer is the Reflow core: a platform-agnostic reconciler
// that patches vnode trees against a host through an Adapter, producing a
// minimal sequence of host mutations.
//
// # Usage
//
//	r := renderer.New(adapter)
//	r.Render(vdom.Div(vdom.ID("x"), "hi"), container)  // mount
//	r.Render(vdom.Div(vdom.ID("x"), "bye"), container) // patch
//	r.Render(nil, container)                           // unmount
//
// The container is any comparable host node; the renderer remembers what
// it last rendered there.
//
// # Reconciliation
//
// The patch dispatcher routes each (old, new) pair by node kind. Ordered
// child sequences go through the keyed fast diff: common prefix and
// suffix are trimmed in O(total), and the remaining middle is resolved
// with a longest-increasing-subsequence pass, so the set of host moves is
// minimal for the chosen key matching.
//
// # Components
//
// Component vnodes get an Instance with shallow-reactive props; a render
// effect re-runs the component's render function and re-patches its
// subtree whenever tracked state changes. With a reactive.Scheduler
// attached (WithScheduler), re-renders coalesce until Flush.
//
// # Observability
//
// WithMetrics registers Prometheus counters for mounts, moves, removals,
// and render durations; WithTracing opens an OpenTelemetry span per
// render pass.
package renderer
