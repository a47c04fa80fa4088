package bookingRepo

import (
	"context"
	"errors"

	"tidify/models"
)

// ErrNotFound is returned when no booking carries the requested id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access. Username
// fields are matched case-insensitively; dates are exact "YYYY-MM-DD"
// strings.
type BookingRepository interface {
	// GetByID retrieves a booking by id, or (nil, nil) when none exists.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetAll retrieves every booking.
	GetAll(ctx context.Context) ([]models.Booking, error)
	// ListForUser retrieves bookings placed by the given customer.
	ListForUser(ctx context.Context, username string) ([]models.Booking, error)
	// ListForWorker retrieves bookings assigned to the given worker.
	ListForWorker(ctx context.Context, username string) ([]models.Booking, error)
	// ListForWorkerOnDate retrieves the worker's non-cancelled bookings on
	// a single date; these are the spans that block new bookings.
	ListForWorkerOnDate(ctx context.Context, worker, date string) ([]models.Booking, error)
	// Create appends a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// Cancel marks the booking with the given id as cancelled. Returns
	// ErrNotFound when no such booking exists.
	Cancel(ctx context.Context, id string) error
	// Count reports the number of bookings, cancelled included.
	Count(ctx context.Context) (int, error)
}
