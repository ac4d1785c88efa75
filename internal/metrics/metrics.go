package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Subscription lifecycle

	SubscriptionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsletter",
		Name:      "subscriptions_total",
		Help:      "Signup submissions, by outcome.",
	}, []string{"outcome"})

	ConfirmationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsletter",
		Name:      "confirmations_total",
		Help:      "Confirmation attempts, by outcome.",
	}, []string{"outcome"})

	// PendingBacklog tracks subscribers stuck in pending_confirmation
	// past the staleness cutoff. Signup is not transactional across
	// insert, token issue and email dispatch, so a crash or a dead
	// notification provider grows this number.
	PendingBacklog = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "newsletter",
		Name:      "pending_backlog",
		Help:      "Subscribers pending confirmation past the staleness cutoff.",
	})

	// Email delivery

	EmailSendDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "newsletter",
		Name:      "email_send_duration_seconds",
		Help:      "Duration of outbound confirmation email sends.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"outcome"})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "newsletter",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsletter",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		SubscriptionsTotal,
		ConfirmationsTotal,
		PendingBacklog,
		EmailSendDuration,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// ReadinessChecker is the part of health.Checker the metrics server
// exposes.
type ReadinessChecker interface {
	LivenessHandler() http.HandlerFunc
	ReadinessHandler() http.HandlerFunc
}

// NewServer serves Prometheus metrics and the health probes on the
// internal port, away from the public API.
func NewServer(addr string, checker ReadinessChecker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", checker.LivenessHandler())
	mux.HandleFunc("/readyz", checker.ReadinessHandler())
	return &http.Server{Addr: addr, Handler: mux}
}
