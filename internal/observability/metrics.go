// Package observability registers the service's prometheus collectors.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "activities",
		Name:      "signup_requests_total",
		Help:      "Signup attempts, labeled by activity and outcome.",
	}, []string{"activity", "outcome"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "activities",
		Name:      "unregister_requests_total",
		Help:      "Unregister attempts, labeled by activity and outcome.",
	}, []string{"activity", "outcome"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "activities",
		Name:      "participants",
		Help:      "Current number of registered participants per activity.",
	}, []string{"activity"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "signup_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	eventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Registration events written to Kafka, labeled by result.",
	}, []string{"result"})

	eventsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "events",
		Name:      "dropped_total",
		Help:      "Registration events dropped because the publish queue was full or closed.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, participantsGauge, requestDuration, eventsPublished, eventsDropped)
}

// RecordSignup counts a signup attempt.
func RecordSignup(activity, outcome string) {
	signupCounter.WithLabelValues(activity, outcome).Inc()
}

// RecordUnregister counts an unregister attempt.
func RecordUnregister(activity, outcome string) {
	unregisterCounter.WithLabelValues(activity, outcome).Inc()
}

// RecordParticipants sets the participant gauge for an activity.
func RecordParticipants(activity string, count int) {
	participantsGauge.WithLabelValues(activity).Set(float64(count))
}

// ObserveRequest records the latency of a completed HTTP request.
func ObserveRequest(method, route, status string, seconds float64) {
	requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// RecordEventPublished counts a Kafka write by result ("ok" or "error").
func RecordEventPublished(result string) {
	eventsPublished.WithLabelValues(result).Inc()
}

// RecordEventDropped counts an event that never reached the publish queue.
func RecordEventDropped() {
	eventsDropped.Inc()
}
