package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/simplecontainer/apimethod/pkg/contracts/itransport"
	"github.com/simplecontainer/apimethod/pkg/logger"
	"github.com/simplecontainer/apimethod/pkg/metrics"
	"go.uber.org/zap"
)

// Instrumented records metrics for every round trip of the wrapped transport.
type Instrumented struct {
	next    itransport.Transport
	metrics *metrics.Requests
	logger  *zap.Logger
}

func NewInstrumented(next itransport.Transport, requests *metrics.Requests, log *zap.Logger) *Instrumented {
	if log == nil {
		log = logger.Log
	}

	return &Instrumented{
		next:    next,
		metrics: requests,
		logger:  log,
	}
}

func (instrumented *Instrumented) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := instrumented.next.Do(req)
	took := time.Since(start)

	status := "error"

	if err == nil && resp != nil {
		status = StatusClass(resp.StatusCode)
	}

	if instrumented.metrics != nil {
		instrumented.metrics.Total.Increment(req.Method, status)
		instrumented.metrics.Duration.Observe(took.Seconds(), req.Method, status)
	}

	instrumented.logger.Debug("round trip", zap.String("method", req.Method), zap.String("host", req.URL.Host), zap.String("status", status), zap.Duration("took", took))

	return resp, err
}

func StatusClass(statusCode int) string {
	if statusCode < 100 || statusCode > 599 {
		return "unknown"
	}

	return fmt.Sprintf("%dxx", statusCode/100)
}
