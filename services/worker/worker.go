package worker

import (
	"context"
	"fmt"
	"strings"

	"tidify/models"
	"tidify/utils"
)

// Hourly rate bounds enforced on profile saves, in the platform currency.
const (
	MinRatePerHour = 100
	MaxRatePerHour = 10000
)

// GetProfile returns the worker's saved profile, or a default profile when
// none exists yet. The default is never persisted; it only pre-fills the
// profile form.
func (s *DefaultWorkerService) GetProfile(ctx context.Context, username string) (*models.Worker, error) {
	w, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker profile: %w", err)
	}
	if w != nil {
		return w, nil
	}
	return &models.Worker{
		Username:    username,
		Skills:      []string{},
		RatePerHour: models.DefaultRatePerHour,
		DailyStart:  models.DefaultDailyStart,
		DailyEnd:    models.DefaultDailyEnd,
	}, nil
}

// SaveProfile validates and upserts the worker's profile under the
// authenticated username.
func (s *DefaultWorkerService) SaveProfile(ctx context.Context, username string, req models.WorkerProfileRequest) (*models.Worker, error) {
	profile, err := buildProfile(username, req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save worker profile: %w", err)
	}
	utils.GetLogger().Sugar().Infof("Saved worker profile for %s", username)
	return profile, nil
}

// buildProfile normalizes and validates the submitted fields into a
// storable profile row.
func buildProfile(username string, req models.WorkerProfileRequest) (*models.Worker, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = username
	}

	skills := make([]string, 0, len(req.Skills))
	for _, sk := range req.Skills {
		if sk = strings.TrimSpace(sk); sk != "" {
			skills = append(skills, sk)
		}
	}

	if req.RatePerHour < MinRatePerHour || req.RatePerHour > MaxRatePerHour {
		return nil, ProfileValidationError{Reason: fmt.Sprintf("rate_per_hour must be between %d and %d", MinRatePerHour, MaxRatePerHour)}
	}

	dailyStart := req.DailyStart
	if dailyStart == "" {
		dailyStart = models.DefaultDailyStart
	}
	dailyEnd := req.DailyEnd
	if dailyEnd == "" {
		dailyEnd = models.DefaultDailyEnd
	}
	startMin, err := utils.ParseHHMM(dailyStart)
	if err != nil {
		return nil, ProfileValidationError{Reason: err.Error()}
	}
	endMin, err := utils.ParseHHMM(dailyEnd)
	if err != nil {
		return nil, ProfileValidationError{Reason: err.Error()}
	}
	if startMin >= endMin {
		return nil, ProfileValidationError{Reason: "daily_start must be before daily_end"}
	}

	return &models.Worker{
		Username:    username,
		Name:        name,
		City:        strings.TrimSpace(req.City),
		Skills:      skills,
		RatePerHour: req.RatePerHour,
		Bio:         strings.TrimSpace(req.Bio),
		DailyStart:  utils.FormatHHMM(startMin),
		DailyEnd:    utils.FormatHHMM(endMin),
	}, nil
}

// GetWorker returns a saved profile, or ErrWorkerNotFound when the
// username has never saved one.
func (s *DefaultWorkerService) GetWorker(ctx context.Context, username string) (*models.Worker, error) {
	w, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker: %w", err)
	}
	if w == nil {
		return nil, ErrWorkerNotFound
	}
	return w, nil
}

// ListWorkers returns profiles matching the filters.
func (s *DefaultWorkerService) ListWorkers(ctx context.Context, filters models.WorkerFilters) ([]models.Worker, error) {
	return s.Repo.List(ctx, filters)
}

// Count reports the number of worker profiles.
func (s *DefaultWorkerService) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}
