package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

type WishlistService interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) ([]*model.WishlistItem, error)
}

type wishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistServiceImpl{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (s *wishlistServiceImpl) Add(ctx context.Context, userID, productID string) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("load product: %w", err)
	}

	return s.wishlistRepo.Add(ctx, &model.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
}

func (s *wishlistServiceImpl) Remove(ctx context.Context, userID, productID string) error {
	return s.wishlistRepo.Remove(ctx, userID, productID)
}

func (s *wishlistServiceImpl) List(ctx context.Context, userID string) ([]*model.WishlistItem, error) {
	return s.wishlistRepo.List(ctx, userID)
}
