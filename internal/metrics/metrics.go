package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casting_http_requests_total",
			Help: "Count of processed HTTP requests",
		},
		[]string{"method", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "casting_http_request_duration_seconds",
			Help:    "Time taken to process HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method"},
	)
	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "casting_http_requests_in_flight",
			Help: "Current number of requests being served",
		},
	)

	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casting_store_errors_total",
			Help: "Count of store failures reported as unprocessable",
		},
		[]string{"kind"}, // constraint, connection, unknown
	)
)

// Init registers the collectors with the default registry. Call it once from main.
func Init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		RequestsInFlight,
		StoreErrors,
	)
}
