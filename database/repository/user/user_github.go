package userRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tidify/config"
	"tidify/database"
	"tidify/models"
)

// GitHubUserRepo implements UserRepository on top of the users.json table
// document in the content repository.
type GitHubUserRepo struct {
	store *database.Store
	path  string
}

// NewGitHubUserRepo creates a new instance of UserRepository backed by the
// given store.
func NewGitHubUserRepo(store *database.Store) UserRepository {
	return &GitHubUserRepo{store: store, path: config.DataUsersPath}
}

// decodeUser parses a raw table row. Rows that do not decode as user
// objects are skipped; they stay in the document untouched.
func decodeUser(raw json.RawMessage) (*models.User, bool) {
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, false
	}
	return &u, true
}

func (r *GitHubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, raw := range table.Rows {
		if u, ok := decodeUser(raw); ok && strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *GitHubUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	users := make([]models.User, 0, len(table.Rows))
	for _, raw := range table.Rows {
		if u, ok := decodeUser(raw); ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *GitHubUserRepo) Create(ctx context.Context, user *models.User) error {
	return r.store.Update(ctx, r.path, func(table *models.Table) (string, error) {
		for _, raw := range table.Rows {
			if u, ok := decodeUser(raw); ok && strings.EqualFold(u.Username, user.Username) {
				return "", ErrDuplicate
			}
		}
		if err := table.Append(user); err != nil {
			return "", err
		}
		return fmt.Sprintf("Add user %s", user.Username), nil
	})
}

func (r *GitHubUserRepo) Update(ctx context.Context, user *models.User) error {
	return r.store.Update(ctx, r.path, func(table *models.Table) (string, error) {
		for i, raw := range table.Rows {
			if u, ok := decodeUser(raw); ok && strings.EqualFold(u.Username, user.Username) {
				if err := table.Replace(i, user); err != nil {
					return "", err
				}
				return fmt.Sprintf("Update user %s", user.Username), nil
			}
		}
		return "", fmt.Errorf("user %s not found", user.Username)
	})
}

func (r *GitHubUserRepo) Count(ctx context.Context) (int, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return 0, fmt.Errorf("failed to load users: %w", err)
	}
	return len(table.Rows), nil
}
