package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes of a submission.
const (
	OutcomeCreated   = "created"
	OutcomeInvalid   = "invalid"
	OutcomeCollision = "collision"
	OutcomeFailed    = "failed"
)

// Metrics holds all Prometheus metrics of the service. Every instance has its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	Submissions *prometheus.CounterVec
	Listings    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inquiry_submissions_total",
			Help: "Total number of submitted inquiry forms by outcome",
		}, []string{"outcome"}),
		Listings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inquiry_listings_total",
			Help: "Total number of times the record list was requested",
		}),
	}
	m.registry.MustRegister(m.Submissions, m.Listings)
	return m
}

func (m *Metrics) IncrementSubmissions(outcome string) {
	m.Submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementListings() {
	m.Listings.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
