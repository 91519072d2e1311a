package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront-backend/internal/client"
	"storefront-backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, client.AutoMigrate(db))

	return db
}

func testOrder(id, paymentID string) *model.Order {
	return &model.Order{
		ID:        id,
		PaymentID: paymentID,
		UserID:    "user-1",
		Status:    model.OrderProcessing,
		Total:     decimal.RequireFromString("99.90"),
		Currency:  "USD",
	}
}

// A second insert for the same payment must surface as a detectable
// duplicate, not a generic error. This is the backstop behind the
// read-then-act idempotency check.
func TestCreateDuplicatePaymentID(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, testOrder("order-1", "pi_1")))

	err := repo.Create(ctx, db, testOrder("order-2", "pi_1"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestFindByPaymentID(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, testOrder("order-1", "pi_1")))

	order, err := repo.FindByPaymentID(ctx, "pi_1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	_, err = repo.FindByPaymentID(ctx, "pi_missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, testOrder("order-1", "pi_1")))

	from := []model.OrderStatus{model.OrderProcessing}
	require.NoError(t, repo.UpdateStatus(ctx, "order-1", from, model.OrderShipped))

	// Shipped orders are out of the PROCESSING set: no further transition.
	err := repo.UpdateStatus(ctx, "order-1", from, model.OrderCancelled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	order, err := repo.FindByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, model.OrderShipped, order.Status)
}

func TestCreateOrderItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, db, testOrder("order-1", "pi_1")))

	items := []*model.OrderItem{
		{OrderID: "order-1", VariationID: "var-1", SKU: "A", Name: "a", Quantity: 1, UnitPrice: decimal.RequireFromString("10.00"), Currency: "USD"},
		{OrderID: "order-1", VariationID: "var-2", SKU: "B", Name: "b", Quantity: 3, UnitPrice: decimal.RequireFromString("29.97"), Currency: "USD"},
	}
	require.NoError(t, repo.CreateOrderItems(ctx, db, items))

	order, err := repo.FindByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Len(t, order.Items, 2)
}
