package repositories

import (
	"context"
	"fmt"

	"potato/internal/models"

	"gorm.io/gorm"
)

// GORMOrderProductRepository is a GORM implementation of OrderProductRepository.
type GORMOrderProductRepository struct {
	db *gorm.DB
}

// NewGORMOrderProductRepository creates a new instance of GORMOrderProductRepository.
func NewGORMOrderProductRepository(db *gorm.DB) *GORMOrderProductRepository {
	return &GORMOrderProductRepository{
		db: db,
	}
}

// CreateBatch inserts all order products in one statement. An empty batch is a no-op.
func (r *GORMOrderProductRepository) CreateBatch(ctx context.Context, orderProducts []models.OrderProduct) error {
	if len(orderProducts) == 0 {
		return nil
	}
	if err := conn(ctx, r.db).Create(&orderProducts).Error; err != nil {
		return fmt.Errorf("failed to create order products: %w", err)
	}
	return nil
}

// FindAllByOrderID returns the lines of an order.
func (r *GORMOrderProductRepository) FindAllByOrderID(ctx context.Context, orderID string) ([]models.OrderProduct, error) {
	var orderProducts []models.OrderProduct
	err := conn(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("created_at, id").
		Find(&orderProducts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order products of order %s: %w", orderID, err)
	}
	return orderProducts, nil
}
