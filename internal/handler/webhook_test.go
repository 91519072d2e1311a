package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront-backend/internal/service"
)

type stubCheckout struct {
	err       error
	gotSig    string
	gotBody   []byte
	callCount int
}

func (s *stubCheckout) HandleWebhook(_ context.Context, sigHeader string, body []byte) error {
	s.callCount++
	s.gotSig = sigHeader
	s.gotBody = body
	return s.err
}

func postWebhook(t *testing.T, svc service.CheckoutService, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewWebhookHandler(svc, zap.NewNop())
	require.NoError(t, h.StripeWebhook(c))

	return rec
}

func TestStripeWebhookSuccess(t *testing.T) {
	stub := &stubCheckout{}
	rec := postWebhook(t, stub, `{"id":"evt_1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	assert.Equal(t, "t=1,v1=abc", stub.gotSig)
	assert.Equal(t, `{"id":"evt_1"}`, string(stub.gotBody), "handler must pass the raw body through")
}

func TestStripeWebhookSignatureFailure(t *testing.T) {
	stub := &stubCheckout{err: service.ErrSignature}
	rec := postWebhook(t, stub, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeWebhookMetadataFailure(t *testing.T) {
	stub := &stubCheckout{err: service.ErrMetadata}
	rec := postWebhook(t, stub, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeWebhookProcessingFailureSignalsRetry(t *testing.T) {
	stub := &stubCheckout{err: assert.AnError}
	rec := postWebhook(t, stub, `{}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
