package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olzhasq/newsletter-service/internal/domain"
)

type SubscriberRepository struct {
	pool *pgxpool.Pool
}

func NewSubscriberRepository(pool *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{pool: pool}
}

func (r *SubscriberRepository) Insert(ctx context.Context, sub domain.NewSubscriber) (string, error) {
	id := uuid.NewString()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, NOW(), $4)`,
		id,
		sub.Email.String(),
		sub.Name.String(),
		domain.StatusPendingConfirmation,
	)
	if err != nil {
		return "", fmt.Errorf("insert subscriber: %w", err)
	}
	return id, nil
}

func (r *SubscriberRepository) Confirm(ctx context.Context, subscriberID string) error {
	// A zero-row update (unknown id, or already confirmed) is success:
	// the transition is monotonic and re-applying it is a no-op.
	_, err := r.pool.Exec(ctx,
		`UPDATE subscriptions SET status = $1 WHERE id = $2`,
		domain.StatusConfirmed,
		subscriberID,
	)
	if err != nil {
		return fmt.Errorf("confirm subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepository) CountPendingOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE status = $1 AND subscribed_at < $2`,
		domain.StatusPendingConfirmation,
		cutoff,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending subscribers: %w", err)
	}
	return count, nil
}
