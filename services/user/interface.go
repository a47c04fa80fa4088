package user

import (
	"context"

	userRepo "tidify/database/repository/user"
	"tidify/models"
)

// UserService defines account management and authentication.
type UserService interface {
	// Registration / authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error)
	Authenticate(ctx context.Context, username, password string) (*AuthResponse, error)
	RevokeAuthToken(ctx context.Context, username string) error

	// Account access
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse carries the session token and account identity returned on
// login.
type AuthResponse struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
