package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersRegisteredTotal prometheus.Counter
	CreditsIssuedTotal       prometheus.Counter
	APIErrorsTotal           *prometheus.CounterVec
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "credit_application_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersRegisteredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_application_customers_registered_total",
				Help: "Total number of customers successfully registered.",
			},
		),
		CreditsIssuedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_application_credits_issued_total",
				Help: "Total number of credits successfully issued.",
			},
		),
		APIErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_application_api_errors_total",
				Help: "Total number of error responses, by error kind.",
			},
			[]string{"kind"},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordCustomerRegistered() {
	Business.CustomersRegisteredTotal.Inc()
}

func RecordCreditIssued() {
	Business.CreditsIssuedTotal.Inc()
}

func RecordAPIError(kind string) {
	Business.APIErrorsTotal.WithLabelValues(kind).Inc()
}
