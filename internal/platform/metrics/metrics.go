package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// PlansTotal counts planning runs by outcome
	// (ok, infeasible_demand, infeasible_range, invalid, invariant_violation).
	PlansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "delivery_plans_total", Help: "Planning runs by outcome."},
		[]string{"outcome"},
	)
	// TripsPerPlan observes the number of trips of successful plans.
	TripsPerPlan = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "delivery_plan_trips", Help: "Trips per successful plan.", Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100}},
	)
	// PlanDuration records planning time in seconds.
	PlanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "delivery_plan_duration_seconds", Help: "Planning time in seconds.", Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10)},
	)
)

var regOnce sync.Once

// Register adds all collectors to Registry. It is safe to call more than once.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(PlansTotal)
		Registry.MustRegister(TripsPerPlan)
		Registry.MustRegister(PlanDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
