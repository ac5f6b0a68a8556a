package metrics

import (
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	vendorFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_vendor_fetches_total",
			Help: "Vendor listing fetches by category and result",
		},
		[]string{"category", "result"},
	)

	registrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_vendor_registrations_total",
			Help: "Vendor registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	dashboardViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_dashboard_views_total",
			Help: "Dashboard loads by viewer role",
		},
		[]string{"role"},
	)
)

// Middleware records request count and latency per route pattern
func Middleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		start := time.Now()

		err := e.Next()

		route := e.Request.Pattern
		if route == "" {
			route = "unmatched"
		}
		status := e.Status()
		if status == 0 {
			status = 200
			if err != nil {
				status = 500
			}
		}

		httpRequestsTotal.WithLabelValues(e.Request.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(e.Request.Method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// RecordVendorFetch counts one Services listing fetch. An empty category is labelled "all".
func RecordVendorFetch(category string, err error) {
	if category == "" {
		category = "all"
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	vendorFetchesTotal.WithLabelValues(category, result).Inc()
}

// RecordRegistration counts a registration outcome (success, invalid, signup_failed, profile_failed)
func RecordRegistration(outcome string) {
	registrationsTotal.WithLabelValues(outcome).Inc()
}

// RecordDashboardView counts a dashboard load; role is "anonymous" when signed out
func RecordDashboardView(role string) {
	dashboardViewsTotal.WithLabelValues(role).Inc()
}
