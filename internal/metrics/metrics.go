package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes, used as the "outcome" label.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeTransport = "transport"
	OutcomeStatus    = "status"
	OutcomeDecode    = "decode"
	OutcomeStale     = "stale"
)

// Recorder owns its own registry so tests and multiple servers never collide
// on the global default one.
type Recorder struct {
	registry *prometheus.Registry
	fetches  *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moviedetails",
			Subsystem: "tmdb",
			Name:      "fetch_total",
			Help:      "Movie detail fetches by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moviedetails",
			Subsystem: "tmdb",
			Name:      "fetch_duration_seconds",
			Help:      "Latency of movie detail fetches.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		r.fetches,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveFetch records one completed fetch. A nil Recorder is a no-op.
func (r *Recorder) ObserveFetch(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.fetches.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
