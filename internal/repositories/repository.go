package repositories

import (
	"context"
	"errors"

	"potato/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	Create(ctx context.Context, cart *models.Cart) error
	FindByUserID(ctx context.Context, userID string) (*models.Cart, error)
	// FindByUserIDForUpdate also locks the cart row until the surrounding
	// transaction ends, where the database supports row locks.
	FindByUserIDForUpdate(ctx context.Context, userID string) (*models.Cart, error)
}

// CartProductRepository defines the interface for cart line item data access.
type CartProductRepository interface {
	Create(ctx context.Context, cartProduct *models.CartProduct) error
	FindAllByCartID(ctx context.Context, cartID string) ([]models.CartProduct, error)
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Save(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

// OrderProductRepository defines the interface for order line data access.
type OrderProductRepository interface {
	CreateBatch(ctx context.Context, orderProducts []models.OrderProduct) error
	FindAllByOrderID(ctx context.Context, orderID string) ([]models.OrderProduct, error)
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
