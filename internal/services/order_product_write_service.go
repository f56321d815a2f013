package services

import (
	"context"

	"potato/internal/apperrors"
	"potato/internal/models"
	"potato/internal/repositories"
)

// OrderProductWriteService materializes order lines.
type OrderProductWriteService struct {
	repo repositories.OrderProductRepository
}

// NewOrderProductWriteService creates a new OrderProductWriteService.
func NewOrderProductWriteService(repo repositories.OrderProductRepository) *OrderProductWriteService {
	return &OrderProductWriteService{
		repo: repo,
	}
}

// CreateOrderProductWithCart writes one order product per selected cart
// product, snapshotting the product's current price. The order must already
// be persisted. An empty selection writes nothing.
func (s *OrderProductWriteService) CreateOrderProductWithCart(ctx context.Context, userID string, order *models.Order, selected []models.CartProduct) error {
	if order == nil || order.ID == "" {
		return apperrors.ErrInvalidOrderProduct.WithMessage("order must be saved before its products")
	}
	if order.UserID != userID {
		return apperrors.ErrInvalidOrderProduct.WithMessage("order %s does not belong to user %s", order.ID, userID)
	}

	orderProducts := make([]models.OrderProduct, 0, len(selected))
	for _, cp := range selected {
		if cp.Quantity <= 0 {
			return apperrors.ErrInvalidOrderProduct.WithMessage("cart product %s has quantity %d", cp.ID, cp.Quantity)
		}
		if cp.Product.ID == "" || cp.Product.ID != cp.ProductID {
			return apperrors.ErrInvalidOrderProduct.WithMessage("product of cart product %s is not loaded", cp.ID)
		}
		orderProducts = append(orderProducts, models.OrderProduct{
			OrderID:   order.ID,
			ProductID: cp.ProductID,
			Quantity:  cp.Quantity,
			Price:     cp.Product.Price,
		})
	}

	if err := s.repo.CreateBatch(ctx, orderProducts); err != nil {
		return err
	}
	order.OrderProducts = orderProducts
	return nil
}
