package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	"github.com/olzhasq/newsletter-service/internal/transport/http/handler"
	"github.com/olzhasq/newsletter-service/internal/transport/http/middleware"
)

func NewRouter(logger *slog.Logger, subscriptions *handler.SubscriptionHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	r.GET("/health_check", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.POST("/subscriptions", subscriptions.Subscribe)
	r.GET("/subscriptions/confirm", subscriptions.Confirm)

	return r
}
