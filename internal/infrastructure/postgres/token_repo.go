package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olzhasq/newsletter-service/internal/domain"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Store(ctx context.Context, token, subscriberID string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)`,
		token,
		subscriberID,
	)
	if err != nil {
		return fmt.Errorf("store subscription token: %w", err)
	}
	return nil
}

func (r *TokenRepository) SubscriberID(ctx context.Context, token string) (string, error) {
	var subscriberID string
	err := r.pool.QueryRow(ctx,
		`SELECT subscriber_id FROM subscription_tokens WHERE subscription_token = $1`,
		token,
	).Scan(&subscriberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrUnknownToken
		}
		return "", fmt.Errorf("look up subscription token: %w", err)
	}
	return subscriberID, nil
}
