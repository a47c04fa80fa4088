// File: tidify/database/store.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"tidify/models"
	"tidify/utils"
)

// updateAttempts bounds the read-modify-write retry loop. Each retry
// re-reads the file, so a conflict only survives if writers keep colliding.
const updateAttempts = 3

// Store reads and writes table documents in the backing repository. Each
// document is a single JSON file of the form {"rows": [...]}; callers
// always load the whole table, mutate it, and write it back.
type Store struct {
	client *Client
}

// NewStore wraps a contents client.
func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Load fetches a table document and its sha. It is deliberately lenient:
// a missing file is an empty table with no sha, and a file that is not
// valid JSON or lacks a rows array is an empty table that keeps its sha so
// the next save overwrites it in place.
func (s *Store) Load(ctx context.Context, filePath string) (*models.Table, string, error) {
	file, err := s.client.GetFile(ctx, filePath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			t := models.NewTable()
			return &t, "", nil
		}
		return nil, "", err
	}

	var table models.Table
	if err := json.Unmarshal(file.Content, &table); err != nil {
		utils.GetLogger().Sugar().Warnf("Malformed table document %s, treating as empty: %v", filePath, err)
		t := models.NewTable()
		return &t, file.SHA, nil
	}
	if table.Rows == nil {
		table.Rows = []json.RawMessage{}
	}
	return &table, file.SHA, nil
}

// Save writes a table document back to the repository and returns the new
// sha. sha must be the value from the matching Load ("" creates the file).
func (s *Store) Save(ctx context.Context, filePath, message string, table *models.Table, sha string) (string, error) {
	content, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode table: %w", err)
	}
	return s.client.PutFile(ctx, filePath, message, content, sha)
}

// Update performs a compare-and-swap read-modify-write: load the table,
// apply mutate, save against the loaded sha. mutate returns the commit
// message for the save, so the message can reflect what the mutation found
// (e.g. add vs update). On a sha conflict the whole cycle retries against
// fresh state; an error from mutate aborts immediately, since those are
// business failures, not races.
func (s *Store) Update(ctx context.Context, filePath string, mutate func(*models.Table) (string, error)) error {
	var lastErr error
	for attempt := 1; attempt <= updateAttempts; attempt++ {
		table, sha, err := s.Load(ctx, filePath)
		if err != nil {
			return err
		}
		message, err := mutate(table)
		if err != nil {
			return err
		}
		if _, err := s.Save(ctx, filePath, message, table, sha); err != nil {
			if errors.Is(err, ErrConflict) && attempt < updateAttempts {
				utils.GetLogger().Sugar().Warnf("Concurrent update on %s, retrying (attempt %d)", filePath, attempt)
				lastErr = err
				continue
			}
			if errors.Is(err, ErrConflict) {
				lastErr = err
				break
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("update %s exhausted %d attempts: %w", filePath, updateAttempts, lastErr)
}

// EnsureFiles creates any datastore files that do not exist yet, each as an
// empty table. Existing files are left untouched.
func (s *Store) EnsureFiles(ctx context.Context, paths ...string) error {
	for _, p := range paths {
		_, err := s.client.GetFile(ctx, p)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		table := models.NewTable()
		message := "Initialize " + path.Base(p)
		if _, err := s.Save(ctx, p, message, &table, ""); err != nil {
			return fmt.Errorf("failed to initialize %s: %w", p, err)
		}
		utils.GetLogger().Sugar().Infof("Initialized datastore file %s", p)
	}
	return nil
}

// Ping reports whether the backing repository is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
