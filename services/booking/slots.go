package booking

import (
	"tidify/models"
	"tidify/utils"
)

// SlotIntervalMinutes is the booking grid granularity: start times fall on
// half-hour boundaries within the worker's daily window.
const SlotIntervalMinutes = 30

// AllowedDurations lists the bookable durations in minutes, half an hour
// up to six hours.
var AllowedDurations = []int{30, 60, 90, 120, 180, 240, 300, 360}

// IsAllowedDuration reports whether the duration is one of the offered
// options.
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Span is a time interval within a day, in minutes since midnight.
type Span struct {
	Start int
	End   int
}

// Overlaps reports whether two spans share any time. Touching endpoints do
// not overlap, so back-to-back bookings are allowed.
func Overlaps(a, b Span) bool {
	return max(a.Start, b.Start) < min(a.End, b.End)
}

func overlapsAny(s Span, spans []Span) bool {
	for _, other := range spans {
		if Overlaps(s, other) {
			return true
		}
	}
	return false
}

// dailyWindow returns the worker's working window, applying the profile
// defaults for unset bounds.
func dailyWindow(worker *models.Worker) (Span, error) {
	start := worker.DailyStart
	if start == "" {
		start = models.DefaultDailyStart
	}
	end := worker.DailyEnd
	if end == "" {
		end = models.DefaultDailyEnd
	}
	s, err := utils.ParseHHMM(start)
	if err != nil {
		return Span{}, err
	}
	e, err := utils.ParseHHMM(end)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: s, End: e}, nil
}

// GenerateSlots returns every grid start time in the worker's daily
// window, keeping only starts with room for at least one interval before
// the window closes.
func GenerateSlots(worker *models.Worker) ([]int, error) {
	window, err := dailyWindow(worker)
	if err != nil {
		return nil, err
	}
	var slots []int
	for cur := window.Start; cur <= window.End-SlotIntervalMinutes; cur += SlotIntervalMinutes {
		slots = append(slots, cur)
	}
	return slots, nil
}

// AvailableStartSlots returns the "HH:MM" start times at which a booking
// of the given duration fits the worker's daily window without overlapping
// any booked span.
func AvailableStartSlots(worker *models.Worker, durationMin int, booked []Span) ([]string, error) {
	slots, err := GenerateSlots(worker)
	if err != nil {
		return nil, err
	}
	window, err := dailyWindow(worker)
	if err != nil {
		return nil, err
	}

	avail := make([]string, 0, len(slots))
	for _, start := range slots {
		candidate := Span{Start: start, End: start + durationMin}
		if candidate.End > window.End {
			continue
		}
		if overlapsAny(candidate, booked) {
			continue
		}
		avail = append(avail, utils.FormatHHMM(start))
	}
	return avail, nil
}

// SpansFromBookings converts booked times to grid spans, skipping rows
// whose times do not parse.
func SpansFromBookings(bookings []models.Booking) []Span {
	spans := make([]Span, 0, len(bookings))
	for _, b := range bookings {
		s, errS := utils.ParseHHMM(b.Start)
		e, errE := utils.ParseHHMM(b.End)
		if errS != nil || errE != nil {
			continue
		}
		spans = append(spans, Span{Start: s, End: e})
	}
	return spans
}
