package services

import (
	"context"
	"errors"

	"potato/internal/models"
	"potato/internal/repositories"
)

// CartReadService reads carts.
type CartReadService struct {
	repo    repositories.CartRepository
	rowLock bool
}

// NewCartReadService creates a new CartReadService. With rowLock set, carts
// read inside a transaction stay locked until it ends.
func NewCartReadService(repo repositories.CartRepository, rowLock bool) *CartReadService {
	return &CartReadService{
		repo:    repo,
		rowLock: rowLock,
	}
}

// FindCart returns the cart of userID; found is false when the user has none.
func (s *CartReadService) FindCart(ctx context.Context, userID string) (cart *models.Cart, found bool, err error) {
	if s.rowLock {
		cart, err = s.repo.FindByUserIDForUpdate(ctx, userID)
	} else {
		cart, err = s.repo.FindByUserID(ctx, userID)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cart, true, nil
}
