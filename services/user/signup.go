package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "tidify/database/repository/user"
	"tidify/models"
	"tidify/utils"

	"github.com/google/uuid"
)

// Register creates a new account. Usernames are unique case-insensitively;
// self-registration only hands out the customer and worker roles.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role != models.RoleCustomer && role != models.RoleWorker {
		return nil, ErrInvalidRole
	}

	salt, hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Role:      role,
		PwdSalt:   salt,
		PwdHash:   hash,
		CreatedAt: utils.NowISO(),
	}
	if err := s.Repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, userRepo.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	utils.GetLogger().Sugar().Infof("Registered user %s (%s)", username, role)
	pub := newUser.Public()
	return &pub, nil
}
