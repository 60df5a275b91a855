package statusfeed

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Metrics struct {
	registry *prometheus.Registry

	Fetches       prometheus.Counter
	FetchFailures prometheus.Counter

	AdvisoriesPublished prometheus.Counter
	AdvisoriesApplied   prometheus.Counter
	AdvisoryFailures    prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		Fetches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statusfeed_fetches_total",
			Help: "Total status feed fetches.",
		}),
		FetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statusfeed_fetch_failures_total",
			Help: "Total status feed fetches that failed after retries.",
		}),
		AdvisoriesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statusfeed_advisories_published_total",
			Help: "Total advisories published onto the process queue.",
		}),
		AdvisoriesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statusfeed_advisories_applied_total",
			Help: "Total advisories applied to the database.",
		}),
		AdvisoryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "statusfeed_advisory_failures_total",
			Help: "Total advisories rejected while decoding or applying.",
		}),
	}

	registry.MustRegister(m.Fetches, m.FetchFailures, m.AdvisoriesPublished, m.AdvisoriesApplied, m.AdvisoryFailures)

	return m
}

// Serve exposes the metrics endpoint on its own listener.
func (m *Metrics) Serve(listen string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(listen, mux); err != nil {
			log.Error().Err(err).Msg("Metrics listener stopped")
		}
	}()
}
