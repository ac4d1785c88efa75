package domain

import (
	"errors"
	"time"
)

var (
	// ErrUnknownToken means a confirmation token was presented that was
	// never issued. Surfaced as an authorization failure, not a fault.
	ErrUnknownToken = errors.New("subscription token is unknown")
)

type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
)

// Subscriber is a person tracked through the pending → confirmed
// lifecycle. The transition is monotonic: once confirmed, a subscriber
// never goes back to pending.
type Subscriber struct {
	ID           string
	Email        SubscriberEmail
	Name         SubscriberName
	Status       Status
	SubscribedAt time.Time
}

// NewSubscriber carries validated identity fields into the repository.
// Both fields can only be obtained through their parse constructors, so
// an unvalidated string can never reach storage.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}
