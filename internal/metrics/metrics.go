package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastparcel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fastparcel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastparcel_bookings_total",
			Help: "Total number of shipments booked",
		},
		[]string{"service"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fastparcel_booking_cancellations_total",
			Help: "Total number of cancelled shipments",
		},
	)

	WalletTopUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fastparcel_wallet_topups_total",
			Help: "Total number of wallet top-ups",
		},
	)

	WalletBalanceCents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fastparcel_wallet_balance_cents",
			Help: "Current wallet balance in cents",
		},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fastparcel_exports_total",
			Help: "Total number of label and report exports",
		},
		[]string{"kind"},
	)

	LoginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fastparcel_logins_total",
			Help: "Total number of successful logins",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(service string) {
	BookingsTotal.WithLabelValues(service).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordWalletTopUp() {
	WalletTopUpsTotal.Inc()
}

func SetWalletBalance(cents int64) {
	WalletBalanceCents.Set(float64(cents))
}

func RecordExport(kind string) {
	ExportsTotal.WithLabelValues(kind).Inc()
}

func RecordLogin() {
	LoginsTotal.Inc()
}
