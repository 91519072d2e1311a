package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront-backend/internal/service"
)

type WebhookHandler struct {
	checkoutService service.CheckoutService
	log             *zap.Logger
}

func NewWebhookHandler(checkoutService service.CheckoutService, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		checkoutService: checkoutService,
		log:             log,
	}
}

// StripeWebhook handles payment provider deliveries. The body is read raw:
// verification must run over the exact bytes the provider signed. A 400
// tells the provider the payload is bad; a 500 tells it to retry later.
func (h *WebhookHandler) StripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	sigHeader := c.Request().Header.Get("Stripe-Signature")

	err = h.checkoutService.HandleWebhook(ctx, sigHeader, body)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]bool{"received": true})
	case errors.Is(err, service.ErrSignature), errors.Is(err, service.ErrMetadata):
		h.log.Warn("webhook rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.log.Error("webhook processing failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "processing failed"})
	}
}
