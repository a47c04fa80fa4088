package worker

import (
	"context"

	workerRepo "tidify/database/repository/worker"
	"tidify/models"
)

// WorkerService defines worker profile management and discovery.
type WorkerService interface {
	// GetProfile returns the worker's saved profile, or a default profile
	// when none has been saved yet.
	GetProfile(ctx context.Context, username string) (*models.Worker, error)
	// SaveProfile validates and upserts the worker's profile.
	SaveProfile(ctx context.Context, username string, req models.WorkerProfileRequest) (*models.Worker, error)
	// GetWorker returns a saved profile, or ErrWorkerNotFound.
	GetWorker(ctx context.Context, username string) (*models.Worker, error)
	// ListWorkers returns profiles matching the filters.
	ListWorkers(ctx context.Context, filters models.WorkerFilters) ([]models.Worker, error)
	// Count reports the number of worker profiles.
	Count(ctx context.Context) (int, error)
}

// DefaultWorkerService is the production implementation.
type DefaultWorkerService struct {
	Repo workerRepo.WorkerRepository
}
