package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "portal"

// Metrics holds the portal collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	fallbackReads    *prometheus.CounterVec
	branchFailures   *prometheus.CounterVec
	homepageDuration prometheus.Histogram
	homepageFailures prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fallbackReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_reads_total",
			Help:      "Reads served from generated data because the store is not configured",
		}, []string{"entity"}),
		branchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_branch_failures_total",
			Help:      "Search category branches that failed and were replaced by an empty list",
		}, []string{"category"}),
		homepageDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "homepage_duration_seconds",
			Help:      "Time spent composing the homepage aggregate",
			Buckets:   prometheus.DefBuckets,
		}),
		homepageFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "homepage_failures_total",
			Help:      "Homepage compositions aborted by a failed branch",
		}),
	}

	reg.MustRegister(m.fallbackReads, m.branchFailures, m.homepageDuration, m.homepageFailures)

	return m
}

func (m *Metrics) FallbackRead(entity string) {
	if m == nil {
		return
	}
	m.fallbackReads.WithLabelValues(entity).Inc()
}

func (m *Metrics) SearchBranchFailed(category string) {
	if m == nil {
		return
	}
	m.branchFailures.WithLabelValues(category).Inc()
}

// ObserveHomepage records one composition started at start.
func (m *Metrics) ObserveHomepage(start time.Time, err error) {
	if m == nil {
		return
	}
	m.homepageDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.homepageFailures.Inc()
	}
}
