package bookingRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tidify/config"
	"tidify/database"
	"tidify/models"
)

// GitHubBookingRepo implements BookingRepository on top of the
// bookings.json table document in the content repository.
type GitHubBookingRepo struct {
	store *database.Store
	path  string
}

// NewGitHubBookingRepo creates a new instance of BookingRepository backed
// by the given store.
func NewGitHubBookingRepo(store *database.Store) BookingRepository {
	return &GitHubBookingRepo{store: store, path: config.DataBookingsPath}
}

func decodeBooking(raw json.RawMessage) (*models.Booking, bool) {
	var b models.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, false
	}
	return &b, true
}

func (r *GitHubBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	for _, raw := range table.Rows {
		if b, ok := decodeBooking(raw); ok && b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *GitHubBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, func(*models.Booking) bool { return true })
}

func (r *GitHubBookingRepo) ListForUser(ctx context.Context, username string) ([]models.Booking, error) {
	return r.list(ctx, func(b *models.Booking) bool {
		return strings.EqualFold(b.User, username)
	})
}

func (r *GitHubBookingRepo) ListForWorker(ctx context.Context, username string) ([]models.Booking, error) {
	return r.list(ctx, func(b *models.Booking) bool {
		return strings.EqualFold(b.Worker, username)
	})
}

func (r *GitHubBookingRepo) ListForWorkerOnDate(ctx context.Context, worker, date string) ([]models.Booking, error) {
	return r.list(ctx, func(b *models.Booking) bool {
		return strings.EqualFold(b.Worker, worker) &&
			b.Date == date &&
			b.Status != models.BookingStatusCancelled
	})
}

func (r *GitHubBookingRepo) list(ctx context.Context, keep func(*models.Booking) bool) ([]models.Booking, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	bookings := make([]models.Booking, 0, len(table.Rows))
	for _, raw := range table.Rows {
		if b, ok := decodeBooking(raw); ok && keep(b) {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (r *GitHubBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	return r.store.Update(ctx, r.path, func(table *models.Table) (string, error) {
		if err := table.Append(booking); err != nil {
			return "", err
		}
		return fmt.Sprintf("Add booking %s", booking.ID), nil
	})
}

func (r *GitHubBookingRepo) Cancel(ctx context.Context, id string) error {
	return r.store.Update(ctx, r.path, func(table *models.Table) (string, error) {
		for i, raw := range table.Rows {
			b, ok := decodeBooking(raw)
			if !ok || b.ID != id {
				continue
			}
			b.Status = models.BookingStatusCancelled
			if err := table.Replace(i, b); err != nil {
				return "", err
			}
			return fmt.Sprintf("Cancel booking %s", id), nil
		}
		return "", ErrNotFound
	})
}

func (r *GitHubBookingRepo) Count(ctx context.Context) (int, error) {
	table, _, err := r.store.Load(ctx, r.path)
	if err != nil {
		return 0, fmt.Errorf("failed to load bookings: %w", err)
	}
	return len(table.Rows), nil
}
