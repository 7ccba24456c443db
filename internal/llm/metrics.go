package llm

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	modelRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askd",
			Subsystem: "model",
			Name:      "requests_total",
			Help:      "Total number of outbound model calls",
		},
		[]string{"backend", "model", "outcome"},
	)

	modelRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "askd",
			Subsystem: "model",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound model calls in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		},
		[]string{"backend", "model"},
	)
)

func init() {
	prometheus.MustRegister(modelRequestsTotal, modelRequestDuration)
}

func observe(backend, model string, err error, dur time.Duration) {
	modelRequestsTotal.WithLabelValues(backend, model, outcome(err)).Inc()
	modelRequestDuration.WithLabelValues(backend, model).Observe(dur.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}
