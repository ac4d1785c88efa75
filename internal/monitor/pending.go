package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olzhasq/newsletter-service/internal/metrics"
)

// pendingCounter is the slice of the subscriber repository the sweeper
// needs.
type pendingCounter interface {
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// PendingSweeper periodically publishes the number of subscribers stuck
// in pending_confirmation past the staleness cutoff. Signup does not
// span a transaction across insert, token issue and email dispatch, so
// this backlog is how the accepted partial-failure risk stays visible.
type PendingSweeper struct {
	subscribers pendingCounter
	logger      *slog.Logger
	staleAfter  time.Duration
	cron        *cron.Cron
}

func NewPendingSweeper(subscribers pendingCounter, logger *slog.Logger, staleAfter time.Duration) *PendingSweeper {
	return &PendingSweeper{
		subscribers: subscribers,
		logger:      logger.With("component", "pending_sweeper"),
		staleAfter:  staleAfter,
		cron:        cron.New(),
	}
}

// Start schedules the sweep with a cron spec such as "@every 1m" and
// runs one sweep immediately so the gauge is populated on boot.
func (s *PendingSweeper) Start(ctx context.Context, spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		s.Sweep(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.Sweep(ctx)
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *PendingSweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *PendingSweeper) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.staleAfter)

	count, err := s.subscribers.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("count pending subscribers", "error", err)
		return
	}

	metrics.PendingBacklog.Set(float64(count))
	if count > 0 {
		s.logger.Warn("subscribers stuck pending confirmation", "count", count, "older_than", s.staleAfter.String())
	}
}
