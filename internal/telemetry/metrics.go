package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the training metrics.
type Metrics struct {
	Steps        prometheus.Counter
	Loss         prometheus.Gauge
	StepDuration prometheus.Histogram
	GraphNodes   prometheus.Gauge
}

// NewMetrics creates the training metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nodegrad_train_steps_total",
			Help: "Total number of optimizer steps",
		}),
		Loss: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nodegrad_train_loss",
			Help: "Summed loss of the last step",
		}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nodegrad_train_step_seconds",
			Help:    "Duration of one forward/backward/update step",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		GraphNodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nodegrad_graph_nodes",
			Help: "Nodes recorded for one sample in the last step",
		}),
	}

	for _, c := range []prometheus.Collector{m.Steps, m.Loss, m.StepDuration, m.GraphNodes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
