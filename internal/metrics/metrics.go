// Package metrics exposes Prometheus collectors for long multi-trial
// solver runs: completed trial count, current best tour length, and
// a histogram of per-trial improvement gains.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collectors bundles the solver's Prometheus metrics. Register them
// once against a prometheus.Registerer (or the default one) before
// starting trials.
type Collectors struct {
	TrialsTotal  prometheus.Counter
	BestLength   prometheus.Gauge
	TrialGain    prometheus.Histogram
}

// NewCollectors builds and registers a fresh Collectors set.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		TrialsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tsplk",
			Name:      "trials_total",
			Help:      "Number of Lin-Kernighan trials completed.",
		}),
		BestLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tsplk",
			Name:      "best_tour_length",
			Help:      "Length of the best tour found so far.",
		}),
		TrialGain: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tsplk",
			Name:      "trial_gain",
			Help:      "Improvement (startLength - improvedLength) per trial.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.TrialsTotal, c.BestLength, c.TrialGain)
	return c
}

// Observe records one completed trial's outcome.
func (c *Collectors) Observe(startLength, improvedLength, bestLength int) {
	c.TrialsTotal.Inc()
	c.BestLength.Set(float64(bestLength))
	c.TrialGain.Observe(float64(startLength - improvedLength))
}
