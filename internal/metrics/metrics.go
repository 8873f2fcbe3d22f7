package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created by booking type",
		},
		[]string{"booking_type"},
	)

	requestsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "requests_resolved_total",
			Help: "Change requests resolved by request type and decision",
		},
		[]string{"request_type", "decision"},
	)

	sideEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_side_effect_failures_total",
			Help: "Approved requests whose booking side effect failed",
		},
		[]string{"request_type", "booking_type"},
	)

	notificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Notifications that could not be relayed or delivered",
		},
		[]string{"stage"},
	)

	dashboardRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_refreshes_total",
			Help: "Dashboard summary recomputations by outcome",
		},
		[]string{"outcome"},
	)
)

func TrackBookingCreated(bookingType string) {
	bookingsCreated.WithLabelValues(bookingType).Inc()
}

func TrackRequestResolved(requestType, decision string) {
	requestsResolved.WithLabelValues(requestType, decision).Inc()
}

func TrackSideEffectFailure(requestType, bookingType string) {
	sideEffectFailures.WithLabelValues(requestType, bookingType).Inc()
}

// TrackNotificationFailure counts a failure at the "publish" or "deliver" stage.
func TrackNotificationFailure(stage string) {
	notificationFailures.WithLabelValues(stage).Inc()
}

func TrackDashboardRefresh(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	dashboardRefreshes.WithLabelValues(outcome).Inc()
}

// Middleware records request count and latency per matched route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			httpRequests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			httpDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the default registry for scraping.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
