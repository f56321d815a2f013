package repositories

import (
	"context"
	"fmt"

	"potato/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Save inserts the order row and assigns its ID. Order products are
// written separately through OrderProductRepository.
func (r *GORMOrderRepository) Save(ctx context.Context, order *models.Order) error {
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(order).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// GetByID retrieves an order and its order products.
func (r *GORMOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := conn(ctx, r.db).
		Preload("OrderProducts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, id")
		}).
		First(&order, "id = ?", id).Error
	if err != nil {
		if notFound(err) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}
