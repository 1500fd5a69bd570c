package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements Recorder with Prometheus collectors.
type Prometheus struct {
	analyses *prometheus.CounterVec
	records  *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates and registers the analysis collectors.
//
// reg defaults to prometheus.DefaultRegisterer and namespace to "pairtime".
// It panics if the collectors are already registered with reg.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "pairtime"
	}

	p := &Prometheus{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "total",
			Help:      "Total analyses by kind and outcome (found, no_overlap, invalid, read_error).",
		}, []string{"kind", "outcome"}),
		records: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "records",
			Help:      "Assignment records parsed per successful analysis.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9), // 1 .. 65536
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Time spent parsing and aggregating one input.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms .. ~1s
		}, []string{"kind"}),
	}

	reg.MustRegister(p.analyses, p.records, p.duration)
	return p
}

// ObserveAnalysis records one analysis.
// Record counts are only observed when the input parsed.
func (p *Prometheus) ObserveAnalysis(kind string, outcome Outcome, records int, elapsed time.Duration) {
	p.analyses.WithLabelValues(kind, string(outcome)).Inc()
	p.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	if outcome == OutcomeFound || outcome == OutcomeNoOverlap {
		p.records.WithLabelValues(kind).Observe(float64(records))
	}
}
