package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"storefront-backend/internal/client"
	"storefront-backend/internal/model"
)

const (
	orderConfirmationQueue = "order_confirmation"
	inventoryUpdateQueue   = "inventory_update"
)

type orderConfirmationMessage struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Total     string    `json:"total"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

type inventoryUpdateMessage struct {
	OrderID string               `json:"order_id"`
	Items   []inventoryItemDelta `json:"items"`
}

type inventoryItemDelta struct {
	VariationID string `json:"variation_id"`
	SKU         string `json:"sku"`
	Quantity    int32  `json:"quantity"`
}

// queueNotifier publishes confirmation and inventory messages for consumers
// downstream. Publishing happens after the order committed; a failed publish
// is logged and swallowed so it can never roll back the order.
type queueNotifier struct {
	publisher client.Publisher
	log       *zap.Logger
}

func NewQueueNotifier(publisher client.Publisher, log *zap.Logger) Notifier {
	return &queueNotifier{
		publisher: publisher,
		log:       log,
	}
}

func (n *queueNotifier) OrderCreated(ctx context.Context, order *model.Order, items []*model.OrderItem) error {
	confirmation, err := json.Marshal(orderConfirmationMessage{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Email:     order.CustomerEmail,
		Total:     order.Total.String(),
		Currency:  order.Currency,
		CreatedAt: order.CreatedAt,
	})
	if err != nil {
		return err
	}

	if err := n.publisher.Publish(ctx, orderConfirmationQueue, confirmation); err != nil {
		// Keep going: the inventory hook is independent of the email.
		n.log.Error("publish order confirmation failed",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	deltas := make([]inventoryItemDelta, len(items))
	for i, item := range items {
		deltas[i] = inventoryItemDelta{
			VariationID: item.VariationID,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
		}
	}

	update, err := json.Marshal(inventoryUpdateMessage{OrderID: order.ID, Items: deltas})
	if err != nil {
		return err
	}

	return n.publisher.Publish(ctx, inventoryUpdateQueue, update)
}
