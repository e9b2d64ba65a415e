package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	RaiseApplied  = "applied"
	RaiseRejected = "rejected"
	RaiseFailed   = "failed"

	PromotionPromoted    = "promoted"
	PromotionNotEligible = "not_eligible"
	PromotionFailed      = "failed"
)

// Metrics holds the business counters of the employee service and the
// latency of the external promotion-eligibility call.
type Metrics struct {
	EmployeesCreated       prometheus.Counter
	Raises                 *prometheus.CounterVec
	Promotions             *prometheus.CounterVec
	Absences               prometheus.Counter
	PromotionCheckDuration prometheus.Histogram
}

// NewMetrics registers every collector on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not panic.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EmployeesCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "empmgmt_employees_created_total",
			Help: "Total number of internal employees created.",
		}),
		Raises: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "empmgmt_raises_total",
			Help: "Raise requests by outcome.",
		}, []string{"status"}),
		Promotions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "empmgmt_promotions_total",
			Help: "Promotion requests by outcome.",
		}, []string{"result"}),
		Absences: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "empmgmt_absences_notified_total",
			Help: "Total number of absence notifications.",
		}),
		PromotionCheckDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "empmgmt_promotion_check_duration_seconds",
			Help:    "Duration of calls to the promotion-eligibility service.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	for _, s := range []string{RaiseApplied, RaiseRejected, RaiseFailed} {
		m.Raises.WithLabelValues(s)
	}
	for _, r := range []string{PromotionPromoted, PromotionNotEligible, PromotionFailed} {
		m.Promotions.WithLabelValues(r)
	}

	return m
}
