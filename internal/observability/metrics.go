package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coursehub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coursehub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursehub_orders_created_total",
		Help: "Orders committed by the payment workflow",
	})

	ProgressRecordsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coursehub_progress_records_created_total",
		Help: "Enrollment records committed by the payment workflow",
	})
)
