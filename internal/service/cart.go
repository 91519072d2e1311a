package service

import (
	"context"
	"fmt"

	"storefront-backend/internal/dto"
	"storefront-backend/internal/model"
	"storefront-backend/internal/pricing"
	"storefront-backend/internal/repository"
)

type CartService interface {
	GetCart(ctx context.Context, userID, tier string) (*dto.CartResponse, error)
	AddItem(ctx context.Context, userID string, req *dto.AddCartItemRequest) error
	RemoveItem(ctx context.Context, userID string, itemID uint) error
}

type cartServiceImpl struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartServiceImpl{
		cartRepo: cartRepo,
	}
}

// GetCart prices the cart at the caller's tier so the storefront shows the
// same numbers the checkout flow will later persist.
func (s *cartServiceImpl) GetCart(ctx context.Context, userID, tier string) (*dto.CartResponse, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	items, err := s.cartRepo.Items(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}

	quote := pricing.QuoteCart(items, tier)

	resp := &dto.CartResponse{
		CartID: cart.ID,
		Total:  quote.Total,
	}
	for i, item := range items {
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ItemID:    item.ID,
			SKU:       quote.Items[i].SKU,
			Name:      quote.Items[i].Name,
			Quantity:  item.Quantity,
			UnitPrice: quote.Items[i].UnitPrice,
			Currency:  quote.Items[i].Currency,
		})
	}

	return resp, nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID string, req *dto.AddCartItemRequest) error {
	if req.Quantity <= 0 {
		return fmt.Errorf("item quantity must be positive")
	}
	if req.VariationID == "" {
		return fmt.Errorf("variation_id is required")
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	return s.cartRepo.AddItem(ctx, &model.CartItem{
		CartID:      cart.ID,
		VariationID: req.VariationID,
		Quantity:    req.Quantity,
	})
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID string, itemID uint) error {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	return s.cartRepo.RemoveItem(ctx, cart.ID, itemID)
}
