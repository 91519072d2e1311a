package dto

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Tier  string `json:"tier"`
}

type DashboardResponse struct {
	Destination string `json:"destination"`
}

type ProductRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Active      *bool              `json:"active"`
	Variations  []VariationRequest `json:"variations"`
}

type VariationRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

type AddCartItemRequest struct {
	VariationID string `json:"variation_id"`
	Quantity    int32  `json:"quantity"`
}

type CartResponse struct {
	CartID string             `json:"cart_id"`
	Items  []CartItemResponse `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

type CartItemResponse struct {
	ItemID    uint            `json:"item_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
}

type WishlistRequest struct {
	ProductID string `json:"product_id"`
}

type CreateTicketRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type TicketMessageRequest struct {
	Body string `json:"body"`
}

type TicketStatusRequest struct {
	Status string `json:"status"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type BannerRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
}
