package booking

import (
	"context"

	bookingRepo "tidify/database/repository/booking"
	workerRepo "tidify/database/repository/worker"
	"tidify/models"
	"tidify/services/notification"
)

// BookingService defines slot discovery and the booking lifecycle.
type BookingService interface {
	// AvailableSlots returns the open "HH:MM" start times for a worker on
	// a date, for the requested duration in minutes.
	AvailableSlots(ctx context.Context, workerUsername, date string, durationMin int) ([]string, error)
	// Create books the worker and reports whether the confirmation email
	// went out.
	Create(ctx context.Context, customer *models.User, req models.CreateBookingRequest) (*models.Booking, bool, error)
	// Cancel marks a booking cancelled on behalf of the requester.
	Cancel(ctx context.Context, id string, requester *models.User) (*models.Booking, error)
	// ListFor returns the requester's bookings: placed bookings for
	// customers, assigned bookings for workers, everything for admins.
	ListFor(ctx context.Context, requester *models.User) ([]models.Booking, error)
	// Count reports the number of bookings, cancelled included.
	Count(ctx context.Context) (int, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	WorkerRepo workerRepo.WorkerRepository
	Notifier   notification.NotificationService
}
