package renderer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// rendererMetrics holds the Prometheus instruments for one renderer.
// All count* methods are nil-safe so the hot path stays branch-cheap when
// metrics are disabled.
type rendererMetrics struct {
	hostOps           *prometheus.CounterVec
	mounts            prometheus.Counter
	unmounts          prometheus.Counter
	moves             prometheus.Counter
	componentMounts   prometheus.Counter
	componentUnmounts prometheus.Counter
	componentRenders  prometheus.Counter
	renderDuration    prometheus.Histogram
}

// newRendererMetrics registers the renderer metrics on reg.
func newRendererMetrics(reg prometheus.Registerer) *rendererMetrics {
	factory := promauto.With(reg)

	return &rendererMetrics{
		hostOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reflow",
			Name:      "host_ops_total",
			Help:      "Total host mutations issued, by operation",
		}, []string{"op"}),

		mounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Name:      "mounts_total",
			Help:      "Total host elements mounted",
		}),

		unmounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Name:      "unmounts_total",
			Help:      "Total host nodes removed",
		}),

		moves: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Name:      "moves_total",
			Help:      "Total keyed-diff host moves",
		}),

		componentMounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Name:      "component_mounts_total",
			Help:      "Total component instances created",
		}),

		componentUnmounts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Name:      "component_unmounts_total",
			Help:      "Total component instances destroyed",
		}),

		componentRenders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Name:      "component_renders_total",
			Help:      "Total component render-effect runs",
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reflow",
			Name:      "render_duration_seconds",
			Help:      "Duration of top-level render passes",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *rendererMetrics) countMount() {
	if m != nil {
		m.mounts.Inc()
	}
}

func (m *rendererMetrics) countUnmount() {
	if m != nil {
		m.unmounts.Inc()
	}
}

func (m *rendererMetrics) countMove() {
	if m != nil {
		m.moves.Inc()
	}
}

func (m *rendererMetrics) countComponentMount() {
	if m != nil {
		m.componentMounts.Inc()
	}
}

func (m *rendererMetrics) countComponentUnmount() {
	if m != nil {
		m.componentUnmounts.Inc()
	}
}

func (m *rendererMetrics) countComponentRender() {
	if m != nil {
		m.componentRenders.Inc()
	}
}

func (m *rendererMetrics) observeRender(d time.Duration) {
	if m != nil {
		m.renderDuration.Observe(d.Seconds())
	}
}

// hostOp counts one host mutation by label.
func (r *Renderer) hostOp(op string) {
	if r.metrics != nil {
		r.metrics.hostOps.WithLabelValues(op).Inc()
	}
}
