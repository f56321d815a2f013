package services

import (
	"context"
	"errors"

	"potato/internal/apperrors"
	"potato/internal/models"
	"potato/internal/repositories"
)

// OrderReadService reads orders on behalf of their owners.
type OrderReadService struct {
	repo repositories.OrderRepository
}

// NewOrderReadService creates a new OrderReadService.
func NewOrderReadService(repo repositories.OrderRepository) *OrderReadService {
	return &OrderReadService{
		repo: repo,
	}
}

// GetOrder returns the order with its lines. Orders of other users are
// reported as ORDER_NOT_FOUND.
func (s *OrderReadService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrOrderNotFound.Wrap(err)
	}
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.ErrOrderNotFound
	}
	return order, nil
}
