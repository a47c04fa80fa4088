package workerRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tidify/config"
	"tidify/database"
	"tidify/models"
)

// GitHubWorkerRepo implements WorkerRepository on top of the workers.json
// table document in the content repository.
type GitHubWorkerRepo struct {
	store *database.Store
	path  string
}

// NewGitHubWorkerRepo creates a new instance of WorkerRepository backed by
// the given store.
func NewGitHubWorkerRepo(store *database.Store) WorkerRepository {
	return &GitHubWorkerRepo{store: store, path: config.DataWorkersPath}
}

func decodeWorker(raw json.RawMessage) (*models.Worker, bool) {
	var w models.Worker
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, false
	}
	return &w, true
}

func (r *GitHubWorkerRepo) GetByUsername(ctx context.Context, username string) (*models.Worker, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}
	for _, raw := range table.Rows {
		if w, ok := decodeWorker(raw); ok && strings.EqualFold(w.Username, username) {
			return w, nil
		}
	}
	return nil, nil
}

// List applies case-insensitive substring filters: city against the
// profile's city, skill against each entry of the skills list. Blank
// filters match everything.
func (r *GitHubWorkerRepo) List(ctx context.Context, filters models.WorkerFilters) ([]models.Worker, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load workers: %w", err)
	}

	city := strings.ToLower(strings.TrimSpace(filters.City))
	skill := strings.ToLower(strings.TrimSpace(filters.Skill))

	workers := make([]models.Worker, 0, len(table.Rows))
	for _, raw := range table.Rows {
		w, ok := decodeWorker(raw)
		if !ok {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(w.City), city) {
			continue
		}
		if skill != "" && !matchesSkill(w.Skills, skill) {
			continue
		}
		workers = append(workers, *w)
	}
	return workers, nil
}

func matchesSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), skill) {
			return true
		}
	}
	return false
}

func (r *GitHubWorkerRepo) Upsert(ctx context.Context, worker *models.Worker) error {
	return r.store.Update(ctx, r.path, func(table *models.Table) (string, error) {
		for i, raw := range table.Rows {
			if w, ok := decodeWorker(raw); ok && strings.EqualFold(w.Username, worker.Username) {
				if err := table.Replace(i, worker); err != nil {
					return "", err
				}
				return fmt.Sprintf("Update worker %s", worker.Username), nil
			}
		}
		if err := table.Append(worker); err != nil {
			return "", err
		}
		return fmt.Sprintf("Add worker %s", worker.Username), nil
	})
}

func (r *GitHubWorkerRepo) Count(ctx context.Context) (int, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return 0, fmt.Errorf("failed to load workers: %w", err)
	}
	return len(table.Rows), nil
}
