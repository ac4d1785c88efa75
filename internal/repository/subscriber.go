package repository

import (
	"context"
	"time"

	"github.com/olzhasq/newsletter-service/internal/domain"
)

// Usecases depend on the interface, not the pgx implementation, so the
// store can be swapped and tests can inject fakes.
type SubscriberRepository interface {
	// Insert creates a subscriber in pending_confirmation and returns
	// its id. Email uniqueness is deliberately not enforced: two signups
	// with the same address both succeed.
	Insert(ctx context.Context, sub domain.NewSubscriber) (string, error)

	// Confirm sets the subscriber's status to confirmed. Updating an id
	// that does not exist affects zero rows and is treated as success,
	// which is what makes repeated confirmation idempotent.
	Confirm(ctx context.Context, subscriberID string) error

	// CountPendingOlderThan reports how many subscribers have been stuck
	// in pending_confirmation since before cutoff.
	CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
