// Package metrics exposes custody and settlement activity to Prometheus.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iamramakanthreddyk/fuelsync-new-sub000/internal/audit"
)

const namespace = "fuelsync"

// Recorder counts state transitions from audit events and holds the integrity gauge.
// It is an audit.Sink and an integrity reporter.
type Recorder struct {
	registry *prometheus.Registry

	transitions        *prometheus.CounterVec
	settlements        *prometheus.CounterVec
	settlementVariance prometheus.Histogram
	brokenLinks        prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handover_transitions_total",
			Help:      "Handovers entering a status, by stage",
		},
		[]string{"stage", "status"},
	)

	r.settlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_recorded_total",
			Help:      "Settlements recorded, by resulting status",
		},
		[]string{"status"},
	)

	r.settlementVariance = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_variance_abs",
			Help:      "Absolute cash variance of recorded settlements in currency units",
			Buckets:   []float64{0, 10, 50, 100, 250, 500, 1000, 5000},
		},
	)

	r.brokenLinks = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "integrity_broken_links",
			Help:      "Broken handover chain links found by the last full scan",
		},
	)

	r.registry.MustRegister(
		r.transitions,
		r.settlements,
		r.settlementVariance,
		r.brokenLinks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Record implements audit.Sink.
func (r *Recorder) Record(_ context.Context, e audit.Event) {
	switch e.EntityType {
	case audit.EntityHandover:
		r.transitions.WithLabelValues(e.Stage, e.After.Status).Inc()
	case audit.EntitySettlement:
		r.settlements.WithLabelValues(e.After.Status).Inc()

		if e.After.Variance != nil {
			r.settlementVariance.Observe(e.After.Variance.Abs().InexactFloat64())
		}
	}
}

func (r *Recorder) SetBrokenLinks(n int) {
	r.brokenLinks.Set(float64(n))
}

// WatchDropped exports a counter backed by fn, typically the audit dispatcher's drop count.
func (r *Recorder) WatchDropped(fn func() uint64) {
	r.registry.MustRegister(prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_dropped_total",
			Help:      "Audit events dropped because the dispatch queue was full or closed",
		},
		func() float64 { return float64(fn()) },
	))
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
