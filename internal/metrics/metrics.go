package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Drill holds the collectors updated by a drill session.
type Drill struct {
	Attempts  *prometheus.CounterVec
	Passes    prometheus.Counter
	Remaining prometheus.Gauge
}

// NewDrill creates the drill collectors and registers them on reg.
func NewDrill(reg prometheus.Registerer) (*Drill, error) {
	d := &Drill{
		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kanaprac",
			Name:      "attempts_total",
			Help:      "Answers submitted, by result.",
		}, []string{"result"}),
		Passes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kanaprac",
			Name:      "passes_total",
			Help:      "Full passes through the vocabulary.",
		}),
		Remaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "kanaprac",
			Name:      "remaining_keys",
			Help:      "Keys not yet answered correctly in the current pass.",
		}),
	}
	for _, c := range []prometheus.Collector{d.Attempts, d.Passes, d.Remaining} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Observe records one answer and the pool state after it.
func (d *Drill) Observe(correct, passCompleted bool, remaining int) {
	if d == nil {
		return
	}
	result := "wrong"
	if correct {
		result = "correct"
	}
	d.Attempts.WithLabelValues(result).Inc()
	if passCompleted {
		d.Passes.Inc()
	}
	d.Remaining.Set(float64(remaining))
}
