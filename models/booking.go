package models

// Booking statuses. Cancelled rows stay in bookings.json; they simply stop
// counting against a worker's availability.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a row of bookings.json. Date is "YYYY-MM-DD", Start and End
// are "HH:MM" in the service's local timezone.
type Booking struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Worker    string `json:"worker"`
	Date      string `json:"date"`
	Start     string `json:"start"`
	End       string `json:"end"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

// CreateBookingRequest is the payload for booking a worker. Duration is in
// minutes and must be one of the offered half-hour multiples.
type CreateBookingRequest struct {
	Worker   string `json:"worker" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	Duration int    `json:"duration" binding:"required"`
}
