package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleEditor      Role = "EDITOR"
	RoleManager     Role = "MANAGER"
	RoleCustomer    Role = "CUSTOMER"
	RoleProCustomer Role = "PRO_CUSTOMER"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         Role   `gorm:"size:32;index;not null"` // ADMIN, EDITOR, MANAGER, CUSTOMER, PRO_CUSTOMER
	Tier         string `gorm:"size:32;not null"`       // BRONZE, SILVER, GOLD, PLATINUM
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Product struct {
	ID          string `gorm:"primaryKey;size:36;not null"`
	Name        string `gorm:"size:255;not null"`
	Description string `gorm:"size:2048"`
	Active      bool   `gorm:"index;not null;default:true"`
	Variations  []ProductVariation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductVariation struct {
	ID        string          `gorm:"primaryKey;size:36;not null"`
	ProductID string          `gorm:"size:36;index;not null"`
	SKU       string          `gorm:"size:64;uniqueIndex;not null"`
	Name      string          `gorm:"size:255;not null"` // e.g. "red / XL"
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency  string          `gorm:"size:8;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Cart struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	UserID    string `gorm:"size:36;uniqueIndex;not null"` // one active cart per user
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID          uint             `gorm:"primaryKey"`
	CartID      string           `gorm:"size:36;uniqueIndex:idx_cart_variation;not null"`
	VariationID string           `gorm:"size:36;uniqueIndex:idx_cart_variation;index;not null"`
	Quantity    int32            `gorm:"not null"`
	Variation   ProductVariation `gorm:"foreignKey:VariationID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderStatus string

const (
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// Order maps one-to-one to a provider payment: payment_id carries a unique
// index, which is what turns a concurrent duplicate delivery into a
// detectable conflict instead of a second order.
type Order struct {
	ID            string          `gorm:"primaryKey;size:36;not null"`
	PaymentID     string          `gorm:"size:128;uniqueIndex;not null"`
	UserID        string          `gorm:"size:36;index;not null"`
	Status        OrderStatus     `gorm:"size:32;index;not null"` // PROCESSING, SHIPPED, CANCELLED
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency      string          `gorm:"size:8;not null"`
	CustomerEmail string          `gorm:"size:255"`
	ShippingName  string          `gorm:"size:255"`
	AddressLine   string          `gorm:"size:512"`
	City          string          `gorm:"size:128"`
	PostalCode    string          `gorm:"size:32"`
	Country       string          `gorm:"size:64"`
	Phone         string          `gorm:"size:32"`
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem snapshots the variation, quantity and the server-computed final
// price at order time. The price never comes from the event payload.
type OrderItem struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     string          `gorm:"size:36;index;not null"`
	VariationID string          `gorm:"size:36;index;not null"`
	SKU         string          `gorm:"size:64;not null"`
	Name        string          `gorm:"size:255;not null"`
	Quantity    int32           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency    string          `gorm:"size:8;not null"`
	CreatedAt   time.Time
}

type WishlistItem struct {
	UserID    string `gorm:"primaryKey;size:36;not null"`
	ProductID string `gorm:"primaryKey;size:36;not null"`
	CreatedAt time.Time
}

type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketClosed     TicketStatus = "CLOSED"
)

type SupportTicket struct {
	ID        string          `gorm:"primaryKey;size:36;not null"`
	UserID    string          `gorm:"size:36;index;not null"`
	Subject   string          `gorm:"size:255;not null"`
	Status    TicketStatus    `gorm:"size:32;index;not null"` // OPEN, IN_PROGRESS, CLOSED
	Messages  []TicketMessage `gorm:"foreignKey:TicketID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketMessage struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  string `gorm:"size:36;index;not null"`
	AuthorID  string `gorm:"size:36;not null"`
	Body      string `gorm:"size:4096;not null"`
	CreatedAt time.Time
}
