package booking

import "errors"

// Errors returned by the booking service. Handlers map these to HTTP
// statuses; everything else is treated as an internal failure.
var (
	ErrWorkerNotFound  = errors.New("worker not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDuration = errors.New("duration must be one of the offered half-hour multiples")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidStart    = errors.New("start must be HH:MM")
	ErrSlotUnavailable = errors.New("selected slot is no longer available")
	ErrNotAllowed      = errors.New("not allowed to modify this booking")
)
