package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeAdmitted  = "admitted"
	OutcomeForbidden = "forbidden"
	OutcomeInvalid   = "invalid"
	OutcomeNotFound  = "not_found"
	OutcomeConflict  = "conflict"
	OutcomeError     = "error"
)

var (
	CheckinAdmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldtrack_checkin_admissions_total",
			Help: "Check-in attempts by admission outcome",
		},
		[]string{"outcome"},
	)

	CheckinDistance = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fieldtrack_checkin_distance_km",
			Help:    "Distance between the reported position and the client site for admitted check-ins",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 25, 50},
		},
	)

	CheckinFarFromClient = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldtrack_checkin_far_total",
			Help: "Admitted check-ins flagged as far from the client site",
		},
	)

	Checkouts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldtrack_checkouts_total",
			Help: "Completed checkouts",
		},
	)

	OutboxPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldtrack_outbox_published_total",
			Help: "Outbox events relayed to Kafka by result",
		},
		[]string{"result"},
	)

	OutboxBacklog = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fieldtrack_outbox_backlog",
			Help: "Outbox rows still waiting for delivery",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fieldtrack_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordAdmission counts one check-in attempt. distanceKm is only observed when admitted.
func RecordAdmission(outcome string, distanceKm float64, far bool) {
	CheckinAdmissions.WithLabelValues(outcome).Inc()
	if outcome != OutcomeAdmitted {
		return
	}
	CheckinDistance.Observe(distanceKm)
	if far {
		CheckinFarFromClient.Inc()
	}
}

func RecordCheckout() {
	Checkouts.Inc()
}

func RecordOutboxPublish(err error) {
	if err != nil {
		OutboxPublished.WithLabelValues("failed").Inc()
		return
	}
	OutboxPublished.WithLabelValues("sent").Inc()
}

func SetOutboxBacklog(n int) {
	OutboxBacklog.Set(float64(n))
}

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
