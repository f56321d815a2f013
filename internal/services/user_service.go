package services

import (
	"context"
	"errors"

	"potato/internal/apperrors"
	"potato/internal/models"
	"potato/internal/repositories"
)

// UserService handles user lookups.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetUserByID returns the user or USER_NOT_FOUND.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound.Wrap(err)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
