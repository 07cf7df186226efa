package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/simplecontainer/apimethod/pkg/static"
)

func NewCounter(name string, help string, labels []string) *Counter {
	return &Counter{
		metric: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: static.METRICS_NS,
				Name:      name,
				Help:      help,
			},
			labels,
		),
	}
}

func NewHistogram(name string, help string, labels []string) *Histogram {
	return &Histogram{
		metric: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: static.METRICS_NS,
				Name:      name,
				Help:      help,
				Buckets:   prometheus.DefBuckets,
			},
			labels,
		),
	}
}

// NewRequests builds the request metrics and registers them with registerer.
// A nil registerer leaves them unregistered.
func NewRequests(registerer prometheus.Registerer) (*Requests, error) {
	requests := &Requests{
		Total:    NewCounter("requests_total", "Total outbound requests", []string{"method", "status"}),
		Duration: NewHistogram("request_duration_seconds", "Outbound request duration", []string{"method", "status"}),
	}

	if registerer == nil {
		return requests, nil
	}

	for _, metric := range []Metric{requests.Total, requests.Duration} {
		if err := metric.Register(registerer); err != nil {
			return nil, err
		}
	}

	return requests, nil
}

func (c *Counter) Register(registerer prometheus.Registerer) error {
	return registerer.Register(c.metric)
}

func (c *Counter) Increment(labels ...string) {
	c.metric.WithLabelValues(labels...).Inc()
}

func (c *Counter) Get() *prometheus.CounterVec {
	return c.metric
}

func (h *Histogram) Register(registerer prometheus.Registerer) error {
	return registerer.Register(h.metric)
}

func (h *Histogram) Observe(value float64, labels ...string) {
	h.metric.WithLabelValues(labels...).Observe(value)
}

func (h *Histogram) Get() *prometheus.HistogramVec {
	return h.metric
}
