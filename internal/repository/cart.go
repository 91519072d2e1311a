package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-backend/internal/model"
)

type CartRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*model.Cart, error)
	FindByID(ctx context.Context, cartID string) (*model.Cart, error)
	Items(ctx context.Context, cartID string) ([]*model.CartItem, error)
	AddItem(ctx context.Context, item *model.CartItem) error
	RemoveItem(ctx context.Context, cartID string, itemID uint) error
	Clear(ctx context.Context, tx *gorm.DB, cartID string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) GetOrCreate(ctx context.Context, userID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where(model.Cart{UserID: userID}).
		Attrs(model.Cart{ID: uuid.NewString()}).
		FirstOrCreate(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepoImpl) FindByID(ctx context.Context, cartID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where("id = ?", cartID).
		First(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// Items loads cart items with their variations so the caller prices against
// current catalog data.
func (r *cartRepoImpl) Items(ctx context.Context, cartID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Variation").
		Where("cart_id = ?", cartID).
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

// AddItem upserts: the same variation added twice accumulates quantity.
func (r *cartRepoImpl) AddItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "variation_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", item.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
}

func (r *cartRepoImpl) RemoveItem(ctx context.Context, cartID string, itemID uint) error {
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		Delete(&model.CartItem{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *cartRepoImpl) Clear(ctx context.Context, tx *gorm.DB, cartID string) error {
	return tx.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
