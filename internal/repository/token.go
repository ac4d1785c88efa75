package repository

import "context"

// TokenRepository owns the token → subscriber mapping. A token, once
// stored, is never reassigned, mutated, or deleted; redemption does not
// consume it.
type TokenRepository interface {
	// Store persists the mapping. It assumes the token is fresh and does
	// not re-check for collisions.
	Store(ctx context.Context, token, subscriberID string) error

	// SubscriberID resolves a token to the subscriber it authorizes.
	// Returns domain.ErrUnknownToken if the token was never issued.
	SubscriberID(ctx context.Context, token string) (string, error)
}
