package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
)

// Order represents a customer order created from a cart.
type Order struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string          `json:"user_id" gorm:"index;type:varchar(36);not null"`
	OrderPrice    decimal.Decimal `json:"order_price" gorm:"type:decimal(19,2);not null"`
	Status        OrderStatus     `json:"status" gorm:"type:varchar(20);not null"`
	OrderProducts []OrderProduct  `json:"order_products" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}

// OrderProduct is a single line of an order.
type OrderProduct struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"order_id" gorm:"index;type:varchar(36);not null"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36);not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(19,2);not null"` // unit price at the time of order
	CreatedAt time.Time       `json:"created_at"`
}

func (op *OrderProduct) BeforeCreate(tx *gorm.DB) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	return nil
}

// OrderCreatedEvent is published once an order has been committed.
type OrderCreatedEvent struct {
	OrderID    string          `json:"orderId"`
	UserID     string          `json:"userId"`
	OrderPrice decimal.Decimal `json:"orderPrice"`
	LineCount  int             `json:"lineCount"`
	CreatedAt  time.Time       `json:"createdAt"`
}
