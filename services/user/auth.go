package user

import (
	"context"
	"fmt"

	"tidify/utils"
)

// Authenticate verifies credentials and issues a session token. The
// token's hash is stored on the user row, which stays the source of truth
// for revocation; Redis only caches it for fast middleware checks.
func (s *DefaultUserService) Authenticate(ctx context.Context, username, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !utils.VerifyPassword(password, u.PwdSalt, u.PwdHash) {
		return nil, ErrInvalidPassword
	}

	token, err := utils.GenerateToken(u.Username, u.Role, utils.TokenValidity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	u.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	utils.CacheAuthToken(ctx, u.Username, u.TokenHash)

	utils.GetLogger().Sugar().Infof("User %s signed in", u.Username)
	return &AuthResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Token:    token,
	}, nil
}

// RevokeAuthToken signs the user out everywhere by clearing the stored
// token hash and evicting the cached session.
func (s *DefaultUserService) RevokeAuthToken(ctx context.Context, username string) error {
	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return ErrUserNotFound
	}
	u.TokenHash = ""
	if err := s.Repo.Update(ctx, u); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	utils.DropAuthToken(ctx, username)
	return nil
}
