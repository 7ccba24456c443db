package assistant

import "github.com/prometheus/client_golang/prometheus"

var (
	evaluationRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "askd",
			Subsystem: "evaluation",
			Name:      "runs_total",
			Help:      "Evaluation runs by suite and result",
		},
		[]string{"suite", "result"},
	)

	evaluationLastPassed = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "askd",
			Subsystem: "evaluation",
			Name:      "last_passed",
			Help:      "Passed cases in the last completed run",
		},
		[]string{"suite"},
	)

	evaluationLastTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "askd",
			Subsystem: "evaluation",
			Name:      "last_total",
			Help:      "Total cases in the last completed run",
		},
		[]string{"suite"},
	)
)

func init() {
	prometheus.MustRegister(evaluationRunsTotal, evaluationLastPassed, evaluationLastTotal)
}

func recordEvaluation(suite string, passed, total int) {
	evaluationRunsTotal.WithLabelValues(suite, "ok").Inc()
	evaluationLastPassed.WithLabelValues(suite).Set(float64(passed))
	evaluationLastTotal.WithLabelValues(suite).Set(float64(total))
}
