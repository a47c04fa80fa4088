package userRepo

import (
	"context"
	"errors"

	"tidify/models"
)

// ErrDuplicate is returned by Create when the username is already taken.
var ErrDuplicate = errors.New("username already exists")

// UserRepository defines methods for account data access. Usernames are
// matched case-insensitively throughout.
type UserRepository interface {
	// GetByUsername retrieves an account by username, or (nil, nil) when
	// no such account exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetAll retrieves every account.
	GetAll(ctx context.Context) ([]models.User, error)
	// Create appends a new account record.
	Create(ctx context.Context, user *models.User) error
	// Update replaces an existing account record, matched by username.
	Update(ctx context.Context, user *models.User) error
	// Count reports the number of accounts.
	Count(ctx context.Context) (int, error)
}
