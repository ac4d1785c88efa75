package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckResult represents the health of a single dependency.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Result is the top-level health response.
type Result struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// Checker verifies that the service's dependencies are reachable.
type Checker struct {
	db     Pinger
	logger *slog.Logger
	gauge  *prometheus.GaugeVec
}

// NewChecker creates a health checker and registers its Prometheus gauge.
func NewChecker(db Pinger, logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "newsletter",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		db:     db,
		logger: logger.With("component", "health"),
		gauge:  gauge,
	}
}

// Liveness reports "up" whenever the process is running.
func (c *Checker) Liveness(_ context.Context) Result {
	return Result{Status: "up"}
}

// Readiness pings every dependency and reports per-check status.
func (c *Checker) Readiness(ctx context.Context) Result {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result := Result{
		Status: "up",
		Checks: make(map[string]CheckResult),
	}

	if err := c.db.Ping(checkCtx); err != nil {
		c.logger.Warn("postgres health check failed", "error", err)
		result.Status = "down"
		result.Checks["postgres"] = CheckResult{Status: "down", Error: err.Error()}
		c.gauge.WithLabelValues("postgres").Set(0)
	} else {
		result.Checks["postgres"] = CheckResult{Status: "up"}
		c.gauge.WithLabelValues("postgres").Set(1)
	}

	return result
}

// LivenessHandler serves the liveness probe.
func (c *Checker) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, c.Liveness(r.Context()))
	}
}

// ReadinessHandler serves the readiness probe, 503 when any dependency
// is down.
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, c.Readiness(r.Context()))
	}
}

func writeResult(w http.ResponseWriter, result Result) {
	w.Header().Set("Content-Type", "application/json")
	if result.Status != "up" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(result)
}
