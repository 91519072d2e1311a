package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderForbidden = errors.New("order belongs to another user")
	ErrBadOrderStatus = errors.New("invalid order status transition")
)

type OrderService interface {
	Get(ctx context.Context, userID string, staff bool, orderID string) (*model.Order, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Order, error)
	ListAll(ctx context.Context) ([]*model.Order, error)
	SetStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) Get(ctx context.Context, userID string, staff bool, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !staff && order.UserID != userID {
		return nil, ErrOrderForbidden
	}

	return order, nil
}

func (s *orderServiceImpl) ListForUser(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderServiceImpl) ListAll(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.ListAll(ctx)
}

// SetStatus moves a PROCESSING order forward. Orders are immutable apart
// from this transition.
func (s *orderServiceImpl) SetStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	switch status {
	case model.OrderShipped, model.OrderCancelled:
	default:
		return ErrBadOrderStatus
	}

	err := s.orderRepo.UpdateStatus(ctx, orderID, []model.OrderStatus{model.OrderProcessing}, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}
