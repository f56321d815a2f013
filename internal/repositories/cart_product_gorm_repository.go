package repositories

import (
	"context"
	"fmt"

	"potato/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCartProductRepository is a GORM implementation of CartProductRepository.
type GORMCartProductRepository struct {
	db *gorm.DB
}

// NewGORMCartProductRepository creates a new instance of GORMCartProductRepository.
func NewGORMCartProductRepository(db *gorm.DB) *GORMCartProductRepository {
	return &GORMCartProductRepository{
		db: db,
	}
}

// Create adds a line item to a cart.
func (r *GORMCartProductRepository) Create(ctx context.Context, cartProduct *models.CartProduct) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(cartProduct).Error; err != nil {
		return fmt.Errorf("failed to create cart product: %w", err)
	}
	return nil
}

// FindAllByCartID returns the line items of a cart with their products loaded,
// oldest first.
func (r *GORMCartProductRepository) FindAllByCartID(ctx context.Context, cartID string) ([]models.CartProduct, error) {
	var cartProducts []models.CartProduct
	err := conn(ctx, r.db).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at, id").
		Find(&cartProducts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart products of cart %s: %w", cartID, err)
	}
	return cartProducts, nil
}
