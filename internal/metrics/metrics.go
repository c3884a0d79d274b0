package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal tracks backend requests per method, and status
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "touradmin_api_requests_total",
			Help: "Total number of backend API requests",
		},
		[]string{"method", "status"},
	)

	// APIRequestLatency tracks backend request latency
	APIRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "touradmin_api_request_duration_seconds",
			Help:    "Backend API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// TokenRefreshTotal tracks refresh attempts by result (success, failure, skipped)
	TokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "touradmin_token_refresh_total",
			Help: "Total number of access token refresh attempts",
		},
		[]string{"result"},
	)

	// SessionExpiredTotal counts irrecoverable auth failures
	SessionExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "touradmin_session_expired_total",
			Help: "Total number of sessions cleared after a failed refresh",
		},
	)

	// DBConnectionPoolUsage tracks the session database pool usage percentage
	DBConnectionPoolUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "touradmin_db_connection_pool_usage_percent",
			Help: "Session database connection pool usage percentage",
		},
	)
)
