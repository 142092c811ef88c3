package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the metrics shared by the setup utility and the API server:
// setup stage outcomes, seeded rows, database query latency and HTTP traffic.
type Metrics struct {
	SetupStages      *prometheus.CounterVec
	ItemsSeeded      *prometheus.CounterVec
	LastSuccessfulUp prometheus.Gauge
	DBQueryDuration  *prometheus.HistogramVec
	HTTPRequests     *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance registered on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		SetupStages: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_setup_stages_total",
			Help: "Setup stages by outcome.",
		}, []string{"stage", "status"}),
		ItemsSeeded: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_items_seeded_total",
			Help: "Total number of sample documents inserted.",
		}, []string{"type"}),
		LastSuccessfulUp: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hrms_last_successful_setup_timestamp",
			Help: "Last time the database setup completed successfully.",
		}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrms_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'save_employees', 'list_employees', 'get_employee_by_id', 'save_attendance', 'list_attendance'
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrms_http_requests_total",
			Help: "HTTP requests served by route and status code.",
		}, []string{"route", "code"}),
	}

	return metrics
}

// Stage records the outcome of one setup stage.
func (m *Metrics) Stage(stage string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.SetupStages.WithLabelValues(stage, status).Inc()
}
