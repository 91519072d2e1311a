package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

func newWishlistService(t *testing.T) (WishlistService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	svc := NewWishlistService(
		repository.NewWishlistRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc, db := newWishlistService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Product{ID: "prod-1", Name: "p", Active: true}).Error)

	require.NoError(t, svc.Add(ctx, "user-1", "prod-1"))
	require.NoError(t, svc.Add(ctx, "user-1", "prod-1"))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc, _ := newWishlistService(t)

	err := svc.Add(context.Background(), "user-1", "ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistRemove(t *testing.T) {
	svc, db := newWishlistService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Product{ID: "prod-1", Name: "p", Active: true}).Error)
	require.NoError(t, svc.Add(ctx, "user-1", "prod-1"))
	require.NoError(t, svc.Remove(ctx, "user-1", "prod-1"))

	items, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.ErrorIs(t, svc.Remove(ctx, "user-1", "prod-1"), gorm.ErrRecordNotFound)
}
