package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront-backend/internal/client"
	"storefront-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named in-memory database so every pooled connection sees the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, client.AutoMigrate(db))

	return db
}

type checkoutFixture struct {
	UserID      string
	CartID      string
	VariationID string
}

// seedCheckout creates a GOLD-tier user with one cart item: $100.00 x 2.
func seedCheckout(t *testing.T, db *gorm.DB) checkoutFixture {
	t.Helper()

	user := &model.User{
		ID:           "user-1",
		Email:        "jane@example.com",
		PasswordHash: "x",
		Role:         model.RoleCustomer,
		Tier:         "GOLD",
	}
	require.NoError(t, db.Create(user).Error)

	product := &model.Product{ID: "prod-1", Name: "Widget", Active: true}
	require.NoError(t, db.Create(product).Error)

	variation := &model.ProductVariation{
		ID:        "var-1",
		ProductID: product.ID,
		SKU:       "WID-RED-XL",
		Name:      "red / XL",
		Price:     decimal.RequireFromString("100"),
		Currency:  "USD",
	}
	require.NoError(t, db.Create(variation).Error)

	cart := &model.Cart{ID: "cart-1", UserID: user.ID}
	require.NoError(t, db.Create(cart).Error)

	item := &model.CartItem{CartID: cart.ID, VariationID: variation.ID, Quantity: 2}
	require.NoError(t, db.Create(item).Error)

	return checkoutFixture{
		UserID:      user.ID,
		CartID:      cart.ID,
		VariationID: variation.ID,
	}
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(value).Count(&count).Error)
	return count
}

type fakeNotifier struct {
	calls int
	fail  bool
}

func (n *fakeNotifier) OrderCreated(_ context.Context, _ *model.Order, _ []*model.OrderItem) error {
	n.calls++
	if n.fail {
		return fmt.Errorf("notification channel unavailable")
	}
	return nil
}
