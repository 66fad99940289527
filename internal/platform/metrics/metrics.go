package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A zero-value
// Metrics is a valid no-op sink, which keeps handler and engine tests free of
// registry setup.
type Metrics struct {
	RecordsCreated    prometheus.Counter
	RecordsDeleted    prometheus.Counter
	PartialFailures   prometheus.Counter
	MembershipQueries prometheus.Counter
	OperationDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RecordsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insurance_records_created_total",
			Help: "Total number of insurance records created",
		}),
		RecordsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insurance_records_deleted_total",
			Help: "Total number of insurance records deleted",
		}),
		PartialFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insurance_bulk_clear_partial_failures_total",
			Help: "Bulk clears that left orphaned records behind",
		}),
		MembershipQueries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insurance_membership_queries_total",
			Help: "Membership queries issued against the document store",
		}),
		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "insurance_operation_duration_seconds",
			Help:    "Latency of engine operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncRecordsCreated() {
	if m != nil && m.RecordsCreated != nil {
		m.RecordsCreated.Inc()
	}
}

func (m *Metrics) IncRecordsDeleted(n int) {
	if m != nil && m.RecordsDeleted != nil {
		m.RecordsDeleted.Add(float64(n))
	}
}

func (m *Metrics) IncPartialFailures() {
	if m != nil && m.PartialFailures != nil {
		m.PartialFailures.Inc()
	}
}

func (m *Metrics) IncMembershipQueries() {
	if m != nil && m.MembershipQueries != nil {
		m.MembershipQueries.Inc()
	}
}

func (m *Metrics) ObserveOperation(operation string, seconds float64) {
	if m != nil && m.OperationDuration != nil {
		m.OperationDuration.WithLabelValues(operation).Observe(seconds)
	}
}
