package predict

import "github.com/prometheus/client_golang/prometheus"

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "petra",
			Subsystem: "predict",
			Name:      "requests_total",
			Help:      "Prediction calls to the inference service by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "petra",
			Subsystem: "predict",
			Name:      "duration_seconds",
			Help:      "Duration of prediction calls in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// outcome maps a result to a low-cardinality label.
func outcome(r Result) string {
	if r.OK {
		return "success"
	}
	return string(r.Kind)
}
