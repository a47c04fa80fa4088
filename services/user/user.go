package user

import (
	"context"
	"fmt"

	"tidify/models"
)

// GetByUsername returns the account, or ErrUserNotFound when none exists.
func (s *DefaultUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// GetAllUsers returns every account row, credential material included;
// callers are responsible for sanitizing before exposure.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// Count reports the number of accounts.
func (s *DefaultUserService) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}
