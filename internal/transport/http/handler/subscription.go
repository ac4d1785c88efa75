package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/olzhasq/newsletter-service/internal/domain"
	"github.com/olzhasq/newsletter-service/internal/metrics"
)

// subscriptionUsecaser is the subset of SubscriptionUsecase the handler
// needs. Defined at point of use so tests can inject a fake.
type subscriptionUsecaser interface {
	Subscribe(ctx context.Context, rawName, rawEmail string) error
	Confirm(ctx context.Context, rawToken string) error
}

type SubscriptionHandler struct {
	usecase subscriptionUsecaser
	logger  *slog.Logger
}

func NewSubscriptionHandler(usecase subscriptionUsecaser, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		usecase: usecase,
		logger:  logger.With("component", "subscription_handler"),
	}
}

// POST /subscriptions — form fields `name` and `email`.
//
// A structurally absent field is 422; a field that fails domain
// validation is 400; persistence or notification failure is 500.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	name, nameOK := c.GetPostForm("name")
	emailAddr, emailOK := c.GetPostForm("email")
	if !nameOK || !emailOK {
		metrics.SubscriptionsTotal.WithLabelValues("missing_field").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errMissingField})
		return
	}

	err := h.usecase.Subscribe(c.Request.Context(), name, emailAddr)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			metrics.SubscriptionsTotal.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "subscribe", "error", err)
		metrics.SubscriptionsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.SubscriptionsTotal.WithLabelValues("created").Inc()
	c.Status(http.StatusOK)
}

// GET /subscriptions/confirm?subscription_token=<token>
//
// An unknown (or absent) token is 401: the token is a bearer credential
// and failing to present a valid one is an authorization failure, not a
// fault. Storage failure during lookup or update is 500.
func (h *SubscriptionHandler) Confirm(c *gin.Context) {
	rawToken := c.Query("subscription_token")
	if rawToken == "" {
		metrics.ConfirmationsTotal.WithLabelValues("unknown_token").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnknownToken})
		return
	}

	if err := h.usecase.Confirm(c.Request.Context(), rawToken); err != nil {
		if errors.Is(err, domain.ErrUnknownToken) {
			metrics.ConfirmationsTotal.WithLabelValues("unknown_token").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": errUnknownToken})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "confirm subscription", "error", err)
		metrics.ConfirmationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.ConfirmationsTotal.WithLabelValues("confirmed").Inc()
	c.Status(http.StatusOK)
}
