package workerRepo

import (
	"context"

	"tidify/models"
)

// WorkerRepository defines methods for worker profile data access.
// Usernames are matched case-insensitively throughout.
type WorkerRepository interface {
	// GetByUsername retrieves a worker profile by username, or (nil, nil)
	// when no profile exists.
	GetByUsername(ctx context.Context, username string) (*models.Worker, error)
	// List retrieves worker profiles matching the given filters.
	List(ctx context.Context, filters models.WorkerFilters) ([]models.Worker, error)
	// Upsert replaces the profile for its username, or appends it when no
	// profile exists yet.
	Upsert(ctx context.Context, worker *models.Worker) error
	// Count reports the number of worker profiles.
	Count(ctx context.Context) (int, error)
}
