package scheduler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/insurance-admin/internal/service/insurancepackage"
)

const (
	outcomeSuccess   = "success"
	outcomeFailed    = "failed"
	outcomeCancelled = "cancelled"
	outcomeSkipped   = "skipped"
)

// Metrics holds the recalculation collectors. A nil *Metrics records nothing.
type Metrics struct {
	Runs        *prometheus.CounterVec
	Packages    *prometheus.CounterVec
	Duration    prometheus.Histogram
	LastSuccess prometheus.Gauge
}

// NewMetrics registers the scheduler collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "insurance_admin_recalc_runs_total",
			Help: "Package status recalculation runs by outcome",
		}, []string{"outcome"}),
		Packages: f.NewCounterVec(prometheus.CounterOpts{
			Name: "insurance_admin_recalc_packages_total",
			Help: "Packages processed by recalculation runs by result",
		}, []string{"result"}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "insurance_admin_recalc_duration_seconds",
			Help:    "Duration of package status recalculation runs",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 14),
		}),
		LastSuccess: f.NewGauge(prometheus.GaugeOpts{
			Name: "insurance_admin_recalc_last_success_timestamp_seconds",
			Help: "Unix time of the last successful recalculation run",
		}),
	}
}

func (m *Metrics) observeRun(outcome string, r insurancepackage.RecalcResult, d time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(outcome).Inc()
	if outcome == outcomeSkipped {
		return
	}
	m.Packages.WithLabelValues("updated").Add(float64(r.Updated))
	m.Packages.WithLabelValues("unchanged").Add(float64(r.Unchanged))
	m.Packages.WithLabelValues("failed").Add(float64(r.Failed))
	m.Duration.Observe(d.Seconds())
}

func (m *Metrics) markSuccess(at time.Time) {
	if m == nil {
		return
	}
	m.LastSuccess.Set(float64(at.Unix()))
}
