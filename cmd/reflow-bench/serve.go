package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/reflow-ui/reflow/pkg/host/wire"
	"github.com/reflow-ui/reflow/pkg/reactive"
	"github.com/reflow-ui/reflow/pkg/renderer"
	"github.com/reflow-ui/reflow/pkg/vdom"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // demo server
}

// serveMetrics are the serve-mode Prometheus instruments.
type serveMetrics struct {
	connections prometheus.Gauge
	framesSent  prometheus.Counter
	frameBytes  prometheus.Counter
}

func newServeMetrics(reg prometheus.Registerer) *serveMetrics {
	factory := promauto.With(reg)
	return &serveMetrics{
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "reflow",
			Subsystem: "bench",
			Name:      "active_connections",
			Help:      "Number of connected demo clients",
		}),
		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Subsystem: "bench",
			Name:      "frames_sent_total",
			Help:      "Total mutation frames sent to clients",
		}),
		frameBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "reflow",
			Subsystem: "bench",
			Name:      "frame_bytes_total",
			Help:      "Total mutation frame bytes sent to clients",
		}),
	}
}

func serveCmd() *cobra.Command {
	var (
		addr string
		tick time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live demo component streaming mutation frames over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			metrics := newServeMetrics(reg)

			router := chi.NewRouter()
			router.Use(chimw.Recoverer)
			router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
			router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
				ws, err := upgrader.Upgrade(w, r, nil)
				if err != nil {
					return
				}
				metrics.connections.Inc()
				defer metrics.connections.Dec()
				streamDemo(wire.NewConn(ws), tick, metrics)
			})

			fmt.Printf("reflow-bench serve listening on %s (tick %v)\n", addr, tick)
			fmt.Printf("  ws endpoint:  ws://localhost%s/ws\n", addr)
			fmt.Printf("  metrics:      http://localhost%s/metrics\n", addr)
			return http.ListenAndServe(addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8766", "listen address")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "demo counter tick interval")
	return cmd
}

// counterDemo is the component streamed to each client: a ticking counter
// over a keyed list that rotates on every tick.
func counterDemo(count *reactive.Signal[int]) *vdom.ComponentDef {
	return &vdom.ComponentDef{
		Name: "counter-demo",
		Setup: func(props vdom.PropsReader, ctx vdom.SetupContext) any {
			return vdom.RenderFn(func(s vdom.RenderScope) *vdom.VNode {
				n := count.Get()
				items := make([]any, 5)
				for i := range items {
					k := strconv.Itoa((n + i) % 5)
					items[i] = vdom.Li(vdom.Key(k), k)
				}
				return vdom.Div(
					vdom.H1("tick "+strconv.Itoa(n)),
					vdom.Ul(items...),
				)
			})
		},
	}
}

// streamDemo drives one client connection: render, flush a frame per
// tick, stop when the peer goes away.
func streamDemo(conn *wire.Conn, tick time.Duration, metrics *serveMetrics) {
	defer conn.Close()

	adapter := wire.NewAdapter()
	container := adapter.NewContainer()
	sched := reactive.NewScheduler()
	r := renderer.New(adapter, renderer.WithScheduler(sched))

	count := reactive.NewSignal(0)
	r.Render(vdom.Component(counterDemo(count)), container)

	flush := func() error {
		frame := adapter.Flush()
		if frame == nil {
			return nil
		}
		if err := conn.WriteFrame(frame); err != nil {
			return err
		}
		metrics.framesSent.Inc()
		metrics.frameBytes.Add(float64(len(frame)))
		return nil
	}
	if err := flush(); err != nil {
		return
	}

	// Reads only to detect the peer closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, err := conn.ReadFrame(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			count.Update(func(n int) int { return n + 1 })
			r.Flush()
			if err := flush(); err != nil {
				return
			}
		}
	}
}
