package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	bookingRepo "tidify/database/repository/booking"
	"tidify/models"
	"tidify/utils"
)

// newBookingID derives an id from the UTC creation instant down to
// microseconds, e.g. "bk_20250314103000123456".
func newBookingID() string {
	now := time.Now().UTC()
	return fmt.Sprintf("bk_%s%06d", now.Format("20060102150405"), now.Nanosecond()/1000)
}

// AvailableSlots returns the open start times for a worker on a date.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, workerUsername, date string, durationMin int) ([]string, error) {
	if !IsAllowedDuration(durationMin) {
		return nil, ErrInvalidDuration
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, ErrInvalidDate
	}
	w, err := s.WorkerRepo.GetByUsername(ctx, workerUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch worker: %w", err)
	}
	if w == nil {
		return nil, ErrWorkerNotFound
	}
	return s.availableFor(ctx, w, date, durationMin)
}

// availableFor computes the open starts for an already-fetched worker.
func (s *DefaultBookingService) availableFor(ctx context.Context, w *models.Worker, date string, durationMin int) ([]string, error) {
	booked, err := s.Repo.ListForWorkerOnDate(ctx, w.Username, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return AvailableStartSlots(w, durationMin, SpansFromBookings(booked))
}

// Create validates the request against the worker's current availability,
// appends the booking, and sends the confirmation email. The email is best
// effort: its failure never fails the booking, only the returned flag.
func (s *DefaultBookingService) Create(ctx context.Context, customer *models.User, req models.CreateBookingRequest) (*models.Booking, bool, error) {
	if !IsAllowedDuration(req.Duration) {
		return nil, false, ErrInvalidDuration
	}
	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, false, ErrInvalidDate
	}
	startMin, err := utils.ParseHHMM(req.Start)
	if err != nil {
		return nil, false, ErrInvalidStart
	}

	w, err := s.WorkerRepo.GetByUsername(ctx, req.Worker)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch worker: %w", err)
	}
	if w == nil {
		return nil, false, ErrWorkerNotFound
	}

	avail, err := s.availableFor(ctx, w, req.Date, req.Duration)
	if err != nil {
		return nil, false, err
	}
	start := utils.FormatHHMM(startMin)
	if !containsSlot(avail, start) {
		return nil, false, ErrSlotUnavailable
	}

	b := &models.Booking{
		ID:        newBookingID(),
		User:      customer.Username,
		Worker:    w.Username,
		Date:      req.Date,
		Start:     start,
		End:       utils.FormatHHMM(startMin + req.Duration),
		CreatedAt: utils.NowISO(),
		Status:    models.BookingStatusConfirmed,
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, false, fmt.Errorf("failed to create booking: %w", err)
	}
	utils.GetLogger().Sugar().Infof("Created booking %s: %s with %s on %s %s-%s",
		b.ID, b.User, b.Worker, b.Date, b.Start, b.End)

	emailSent := false
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, *customer, *w, *b); err != nil {
			utils.GetLogger().Sugar().Warnf("Booking %s confirmation email not sent: %v", b.ID, err)
		} else {
			emailSent = true
		}
	}
	return b, emailSent, nil
}

func containsSlot(slots []string, start string) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}

// Cancel marks a booking cancelled. Only the booking's customer, its
// worker, or an admin may cancel; cancelling twice is a no-op.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string, requester *models.User) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if !canModify(requester, b) {
		return nil, ErrNotAllowed
	}
	if b.Status == models.BookingStatusCancelled {
		return b, nil
	}

	if err := s.Repo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	b.Status = models.BookingStatusCancelled
	utils.GetLogger().Sugar().Infof("Cancelled booking %s on behalf of %s", id, requester.Username)
	return b, nil
}

func canModify(u *models.User, b *models.Booking) bool {
	return u.Role == models.RoleAdmin ||
		strings.EqualFold(u.Username, b.User) ||
		strings.EqualFold(u.Username, b.Worker)
}

// ListFor returns the requester's bookings sorted by date, then start
// time. Customers see bookings they placed, workers see bookings assigned
// to them, admins see everything.
func (s *DefaultBookingService) ListFor(ctx context.Context, requester *models.User) ([]models.Booking, error) {
	var (
		rows []models.Booking
		err  error
	)
	switch requester.Role {
	case models.RoleCustomer:
		rows, err = s.Repo.ListForUser(ctx, requester.Username)
	case models.RoleWorker:
		rows, err = s.Repo.ListForWorker(ctx, requester.Username)
	default:
		rows, err = s.Repo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].Start < rows[j].Start
	})
	return rows, nil
}

// Count reports the number of bookings, cancelled included.
func (s *DefaultBookingService) Count(ctx context.Context) (int, error) {
	return s.Repo.Count(ctx)
}
