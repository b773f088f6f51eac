package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_http_requests_total",
			Help: "Handled HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "booking_http_request_duration_seconds",
			Help:    "HTTP request handling time in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	SlotsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_slots_created_total",
			Help: "Slots published by providers",
		},
	)

	SlotsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_slots_deleted_total",
			Help: "Slots removed by providers",
		},
	)

	Bookings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_appointments_booked_total",
			Help: "Successful slot bookings",
		},
	)

	Reschedules = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_appointments_rescheduled_total",
			Help: "Successful appointment reschedules",
		},
	)

	Cancellations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_appointments_cancelled_total",
			Help: "Successful appointment cancellations",
		},
	)

	Registrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_user_registrations_total",
			Help: "Registered user accounts",
		},
	)
)
