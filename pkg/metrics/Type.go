package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric is an interface that all Prometheus metrics must implement.
type Metric interface {
	Register(registerer prometheus.Registerer) error
}

type Counter struct {
	metric *prometheus.CounterVec
}

type Histogram struct {
	metric *prometheus.HistogramVec
}

// Requests groups the metrics recorded for every outbound round trip.
type Requests struct {
	Total    *Counter
	Duration *Histogram
}
