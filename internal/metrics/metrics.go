// Package metrics instruments the listen command's long-running event
// loop. Opt-in, behind --metrics-addr: most invocations of wsctl are
// one-shot commands with nothing worth scraping.
package metrics

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the counters exported by a listen run.
type Registry struct {
	InstanceID string

	EventsApplied *prometheus.CounterVec
	EventsDropped *prometheus.CounterVec
	Transactions  prometheus.Counter

	registry *prometheus.Registry
}

// New constructs a fresh, independently registered metrics set tagged
// with a per-process instance id so concurrent `wsctl listen
// --metrics-addr` runs on one host don't collide on series.
func New() *Registry {
	instance := uuid.NewString()
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Registry{
		InstanceID: instance,
		EventsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "wsctl",
			Name:        "events_applied_total",
			Help:        "Workspace events applied at a transaction boundary, by event kind.",
			ConstLabels: prometheus.Labels{"instance": instance},
		}, []string{"kind"}),
		EventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "wsctl",
			Name:        "events_dropped_total",
			Help:        "Raw protocol events dropped by a dispatcher, by reason.",
			ConstLabels: prometheus.Labels{"instance": instance},
		}, []string{"reason"}),
		Transactions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   "wsctl",
			Name:        "transactions_committed_total",
			Help:        "Done-bounded transactions drained into the engine.",
			ConstLabels: prometheus.Labels{"instance": instance},
		}),
	}
	r.registry = reg
	return r
}

// Serve starts an HTTP server exposing /metrics on addr. Runs until
// the listener errors; callers typically run it in a goroutine.
func (r *Registry) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
