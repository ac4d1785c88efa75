package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/olzhasq/newsletter-service/internal/domain"
	"github.com/olzhasq/newsletter-service/internal/metrics"
)

type Sender interface {
	Send(ctx context.Context, to domain.SubscriberEmail, subject, htmlBody, textBody string) error
}

// LogSender logs emails instead of sending them — used in ENV=local.
type LogSender struct {
	logger *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, to domain.SubscriberEmail, subject, htmlBody, _ string) error {
	s.logger.InfoContext(ctx, "confirmation email (local dev)", "to", to.String(), "subject", subject, "body", htmlBody)
	return nil
}

// ResendSender sends emails via the Resend API — used in staging and
// production. Every send is bounded by timeout so a slow provider fails
// the request instead of blocking it indefinitely.
type ResendSender struct {
	client  *resend.Client
	from    string
	timeout time.Duration
}

func (s *ResendSender) Send(ctx context.Context, to domain.SubscriberEmail, subject, htmlBody, textBody string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to.String()},
		Subject: subject,
		Html:    htmlBody,
		Text:    textBody,
	}
	start := time.Now()
	_, err := s.client.Emails.SendWithContext(ctx, params)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.EmailSendDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// NewSender returns a LogSender for ENV=local, ResendSender otherwise.
func NewSender(env, apiKey, from string, timeout time.Duration, logger *slog.Logger) Sender {
	if env == "local" {
		return &LogSender{logger: logger}
	}
	return &ResendSender{
		client:  resend.NewClient(apiKey),
		from:    from,
		timeout: timeout,
	}
}
