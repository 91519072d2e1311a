package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-backend/internal/client"
	"storefront-backend/internal/model"
	"storefront-backend/internal/pricing"
	"storefront-backend/internal/repository"
)

var (
	// ErrSignature rejects payloads that fail webhook verification. Nothing
	// has been read from the payload at that point.
	ErrSignature = errors.New("webhook signature verification failed")
	// ErrMetadata rejects authentically signed events that are missing the
	// fields needed to build an order.
	ErrMetadata = errors.New("invalid webhook metadata")
	// ErrAmountMismatch is returned only under the strict amount policy.
	ErrAmountMismatch = errors.New("reported amount does not match recomputed total")
)

// Notifier runs best-effort side actions after the order transaction
// commits. Implementations must never undo a committed order.
type Notifier interface {
	OrderCreated(ctx context.Context, order *model.Order, items []*model.OrderItem) error
}

type CheckoutService interface {
	HandleWebhook(ctx context.Context, sigHeader string, body []byte) error
}

type checkoutServiceImpl struct {
	db                *gorm.DB
	verifier          client.StripeVerifier
	userRepo          repository.UserRepository
	cartRepo          repository.CartRepository
	orderRepo         repository.OrderRepository
	notifier          Notifier
	strictAmountCheck bool
	log               *zap.Logger
}

func NewCheckoutService(
	db *gorm.DB,
	verifier client.StripeVerifier,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	notifier Notifier,
	strictAmountCheck bool,
	log *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		db:                db,
		verifier:          verifier,
		userRepo:          userRepo,
		cartRepo:          cartRepo,
		orderRepo:         orderRepo,
		notifier:          notifier,
		strictAmountCheck: strictAmountCheck,
		log:               log,
	}
}

// HandleWebhook turns a confirmed payment event into a persisted order.
// Processing is idempotent: the provider delivers at least once, and a
// redelivered event resolves to success without side effects.
func (s *checkoutServiceImpl) HandleWebhook(ctx context.Context, sigHeader string, body []byte) error {
	event, err := s.verifier.VerifyEvent(body, sigHeader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignature, err)
	}

	if event.Type != "checkout.session.completed" {
		s.log.Debug("ignoring webhook event", zap.String("event_type", string(event.Type)))
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("%w: decode checkout session: %v", ErrMetadata, err)
	}

	paymentID := sess.ID
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		paymentID = sess.PaymentIntent.ID
	}

	log := s.log.With(
		zap.String("event_id", event.ID),
		zap.String("payment_id", paymentID),
	)

	userID := sess.Metadata["user_id"]
	cartID := sess.Metadata["cart_id"]
	if userID == "" || cartID == "" {
		return fmt.Errorf("%w: missing user_id or cart_id", ErrMetadata)
	}

	// Read-then-act guard. A concurrent delivery can still slip past this
	// lookup; the unique index on orders.payment_id is the real backstop.
	if _, err := s.orderRepo.FindByPaymentID(ctx, paymentID); err == nil {
		log.Info("payment already processed, skipping")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("idempotency lookup: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown user %s", ErrMetadata, userID)
		}
		return fmt.Errorf("load user: %w", err)
	}

	tier := user.Tier
	if t := sess.Metadata["tier"]; t != "" {
		tier = t
	}

	cartItems, err := s.cartRepo.Items(ctx, cartID)
	if err != nil {
		return fmt.Errorf("load cart items: %w", err)
	}
	if len(cartItems) == 0 {
		// A concurrent delivery may have created the order and cleared the
		// cart after the lookup above missed. Re-check before rejecting.
		if _, err := s.orderRepo.FindByPaymentID(ctx, paymentID); err == nil {
			log.Info("payment already processed, skipping")
			return nil
		}
		return fmt.Errorf("%w: cart %s is empty", ErrMetadata, cartID)
	}

	quote := pricing.QuoteCart(cartItems, tier)

	// The provider-reported amount is a sanity check only; the recomputed
	// total is what gets persisted.
	reported := decimal.NewFromInt(sess.AmountTotal).Div(decimal.NewFromInt(100))
	if !quote.Total.Equal(reported) {
		log.Warn("reported amount differs from recomputed total",
			zap.String("reported", reported.String()),
			zap.String("recomputed", quote.Total.String()),
		)
		if s.strictAmountCheck {
			return fmt.Errorf("%w: reported %s, recomputed %s", ErrAmountMismatch, reported, quote.Total)
		}
	}

	currency := strings.ToUpper(string(sess.Currency))
	if currency == "" {
		currency = "USD"
	}
	for i := range quote.Items {
		if c := quote.Items[i].Currency; c != "" && !strings.EqualFold(c, currency) {
			log.Warn("cart item currency differs from session currency",
				zap.String("sku", quote.Items[i].SKU),
				zap.String("item_currency", c),
				zap.String("session_currency", currency),
			)
		}
	}

	email := sess.Metadata["email"]
	if email == "" && sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		PaymentID:     paymentID,
		UserID:        userID,
		Status:        model.OrderProcessing,
		Total:         quote.Total,
		Currency:      currency,
		CustomerEmail: email,
		ShippingName:  sess.Metadata["shipping_name"],
		AddressLine:   sess.Metadata["address_line"],
		City:          sess.Metadata["city"],
		PostalCode:    sess.Metadata["postal_code"],
		Country:       sess.Metadata["country"],
		Phone:         sess.Metadata["phone"],
	}

	orderItems := make([]*model.OrderItem, len(quote.Items))
	for i := range quote.Items {
		item := quote.Items[i]
		item.OrderID = order.ID
		orderItems[i] = &item
	}

	// Order insert, order items and cart clearing are one unit: either all
	// become visible or none do, so a failed event can be safely retried.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		if err := s.cartRepo.Clear(ctx, tx, cartID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent delivery of the same
			// event. The other delivery created the order.
			log.Info("duplicate payment insert, treating as already processed")
			return nil
		}
		return err
	}

	log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("total", order.Total.String()),
		zap.Int("items", len(orderItems)),
	)

	// Post-commit side actions are best-effort: the committed order is the
	// source of truth.
	if err := s.notifier.OrderCreated(ctx, order, orderItems); err != nil {
		log.Error("post-commit notification failed", zap.Error(err))
	}

	return nil
}
