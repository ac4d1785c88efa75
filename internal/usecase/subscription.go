package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/olzhasq/newsletter-service/internal/domain"
	"github.com/olzhasq/newsletter-service/internal/email"
	"github.com/olzhasq/newsletter-service/internal/repository"
	"github.com/olzhasq/newsletter-service/internal/token"
)

const confirmationSubject = "Welcome newsletter!"

type SubscriptionUsecase struct {
	subscribers repository.SubscriberRepository
	tokens      repository.TokenRepository
	email       email.Sender
	confirmBase string
}

func NewSubscriptionUsecase(
	subscribers repository.SubscriberRepository,
	tokens repository.TokenRepository,
	emailSender email.Sender,
	confirmBase string,
) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subscribers: subscribers,
		tokens:      tokens,
		email:       emailSender,
		confirmBase: strings.TrimSuffix(confirmBase, "/"),
	}
}

// Subscribe runs the signup sequence: validate both fields, insert the
// subscriber as pending, issue and store a confirmation token, then
// email the confirmation link.
//
// The sequence is not transactional. A failure after Insert leaves a
// durable pending subscriber with no confirmation path; a failure after
// Store leaves one whose link was never delivered. Neither is rolled
// back — accepted risk, surfaced to the caller as an error.
func (u *SubscriptionUsecase) Subscribe(ctx context.Context, rawName, rawEmail string) error {
	name, err := domain.ParseName(rawName)
	if err != nil {
		return err
	}
	addr, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return err
	}

	id, err := u.subscribers.Insert(ctx, domain.NewSubscriber{Email: addr, Name: name})
	if err != nil {
		return fmt.Errorf("insert subscriber: %w", err)
	}

	tok, err := token.Generate()
	if err != nil {
		return fmt.Errorf("generate subscription token: %w", err)
	}
	if err := u.tokens.Store(ctx, tok, id); err != nil {
		return fmt.Errorf("store subscription token: %w", err)
	}

	link := u.confirmBase + "/subscriptions/confirm?subscription_token=" + tok
	htmlBody := fmt.Sprintf(
		`Welcome to our newsletter!<br />Click <a href="%s">here</a> to confirm your subscription.`,
		link,
	)
	textBody := fmt.Sprintf(
		"Welcome to our newsletter!\nVisit %s to confirm your subscription.",
		link,
	)
	if err := u.email.Send(ctx, addr, confirmationSubject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

// Confirm resolves the token and marks its subscriber confirmed.
// Confirming the same token twice is safe: the second update re-applies
// confirmed → confirmed.
func (u *SubscriptionUsecase) Confirm(ctx context.Context, rawToken string) error {
	subscriberID, err := u.tokens.SubscriberID(ctx, rawToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownToken) {
			return domain.ErrUnknownToken
		}
		return fmt.Errorf("resolve subscription token: %w", err)
	}

	if err := u.subscribers.Confirm(ctx, subscriberID); err != nil {
		return fmt.Errorf("confirm subscriber: %w", err)
	}
	return nil
}
