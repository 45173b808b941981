// Package metrics exports Dispatcher activity to Prometheus
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thatguystone/assetmin"
)

// Result label values
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// A Collector is an assetmin.Observer that records every call
type Collector struct {
	total    *prometheus.CounterVec
	saved    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Collector and registers it with reg
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetmin_minify_total",
				Help: "Minifications by asset type and result.",
			},
			[]string{"asset_type", "result"}),

		saved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetmin_minify_bytes_saved_total",
				Help: "Bytes removed by minification.",
			},
			[]string{"asset_type"}),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "assetmin_minify_duration_seconds",
				Help:    "Time spent minifying.",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"asset_type"}),
	}

	for _, col := range []prometheus.Collector{c.total, c.saved, c.duration} {
		err := reg.Register(col)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Observe implements assetmin.Observer
func (c *Collector) Observe(ev assetmin.Event) {
	at := ev.AssetType.String()

	switch {
	case ev.Err != nil:
		c.total.WithLabelValues(at, ResultError).Inc()

	case ev.Skipped:
		c.total.WithLabelValues(at, ResultSkipped).Inc()
		return

	default:
		c.total.WithLabelValues(at, ResultOK).Inc()
		if ev.In > ev.Out {
			c.saved.WithLabelValues(at).Add(float64(ev.In - ev.Out))
		}
	}

	c.duration.WithLabelValues(at).Observe(ev.Took.Seconds())
}
