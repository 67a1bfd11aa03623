package renderer

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/reflow-ui/reflow/pkg/reactive"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

// Diagnostics receives usage errors: conditions that are refused but never
// abort execution. The default logs through the standard logger. Replace
// at startup if needed; package-level because the OnMounted register is
// package-level too.
var Diagnostics = func(err error) {
	log.Printf("reflow: %v", err)
}

// Renderer reconciles vnode trees against host containers through an
// Adapter. A Renderer is bound to one adapter for its lifetime.
type Renderer struct {
	adapter Adapter

	// roots associates each container with the vnode it last rendered.
	roots map[any]*vdom.VNode

	// scheduler, when set, coalesces component re-renders; callers drive
	// it with Flush. nil means re-renders run inline on write.
	scheduler *reactive.Scheduler

	// metrics is nil unless WithMetrics was given.
	metrics *rendererMetrics

	// tracer is nil unless WithTracing was given.
	tracer trace.Tracer

	// diag receives usage errors for this renderer.
	diag func(error)

	// debug enables sibling-key validation on every keyed reconcile.
	debug bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScheduler routes component re-renders through sched instead of
// running them inline on write. The caller is responsible for calling
// Flush (directly or via the renderer's Flush).
func WithScheduler(sched *reactive.Scheduler) Option {
	return func(r *Renderer) {
		r.scheduler = sched
	}
}

// WithMetrics registers Prometheus metrics on reg and records renderer
// activity against them.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Renderer) {
		r.metrics = newRendererMetrics(reg)
	}
}

// WithTracing enables an OpenTelemetry span per render pass, using the
// named tracer from the global provider.
func WithTracing(tracerName string) Option {
	return func(r *Renderer) {
		r.tracer = otel.Tracer(tracerName)
	}
}

// WithDiagnostics overrides the diagnostics sink for this renderer.
func WithDiagnostics(fn func(error)) Option {
	return func(r *Renderer) {
		r.diag = fn
	}
}

// WithDebug enables development-time validation (duplicate sibling keys).
func WithDebug() Option {
	return func(r *Renderer) {
		r.debug = true
	}
}

// New creates a renderer bound to the given host adapter.
func New(adapter Adapter, opts ...Option) *Renderer {
	r := &Renderer{
		adapter: adapter,
		roots:   make(map[any]*vdom.VNode),
		diag:    func(err error) { Diagnostics(err) },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render reconciles vnode into container. Passing a nil vnode unmounts
// whatever the container last rendered. The container owns its root vnode:
// rendering the same container twice patches, never remounts.
func (r *Renderer) Render(vnode *vdom.VNode, container any) {
	start := time.Now()
	var span trace.Span
	if r.tracer != nil {
		_, span = r.tracer.Start(context.Background(), "reflow.render")
		if vnode != nil {
			span.SetAttributes(attribute.String("reflow.root_kind", vnode.Kind.String()))
		} else {
			span.SetAttributes(attribute.Bool("reflow.unmount", true))
		}
		defer span.End()
	}

	old := r.roots[container]
	if vnode == nil {
		if old != nil {
			r.unmount(old)
			delete(r.roots, container)
		}
	} else {
		r.patch(old, vnode, container, nil)
		r.roots[container] = vnode
	}

	r.metrics.observeRender(time.Since(start))
}

// RootVNode returns the vnode last rendered into container, or nil.
func (r *Renderer) RootVNode(container any) *vdom.VNode {
	return r.roots[container]
}

// Flush drains the renderer's scheduler, running every coalesced
// component re-render once. No-op without a scheduler.
func (r *Renderer) Flush() {
	if r.scheduler != nil {
		r.scheduler.Flush()
	}
}
