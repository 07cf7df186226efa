package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequests(t *testing.T) {
	registry := prometheus.NewRegistry()

	requests, err := NewRequests(registry)
	require.NoError(t, err)

	requests.Total.Increment("GET", "2xx")
	requests.Total.Increment("GET", "2xx")
	requests.Duration.Observe(0.5, "GET", "2xx")

	assert.Equal(t, float64(2), testutil.ToFloat64(requests.Total.Get().WithLabelValues("GET", "2xx")))
	assert.Equal(t, 1, testutil.CollectAndCount(requests.Duration.Get()))

	_, err = NewRequests(registry)
	assert.Error(t, err)
}

func TestNewRequestsUnregistered(t *testing.T) {
	requests, err := NewRequests(nil)
	require.NoError(t, err)

	requests.Total.Increment("POST", "5xx")
	assert.Equal(t, float64(1), testutil.ToFloat64(requests.Total.Get().WithLabelValues("POST", "5xx")))
}
