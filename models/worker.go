package models

// Profile defaults applied when a worker has not saved their own values.
const (
	DefaultDailyStart  = "09:00"
	DefaultDailyEnd    = "18:00"
	DefaultRatePerHour = 300
)

// Worker is a row of workers.json: a service worker's public profile and
// daily availability window. Times are "HH:MM" strings.
type Worker struct {
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Skills      []string `json:"skills"`
	RatePerHour int      `json:"rate_per_hour"`
	Bio         string   `json:"bio"`
	DailyStart  string   `json:"daily_start"`
	DailyEnd    string   `json:"daily_end"`
}

// DisplayName returns the profile name, falling back to the username.
func (w Worker) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.Username
}

// WorkerFilters narrows a worker listing. Both filters are case-insensitive
// substring matches; Skill matches any element of the skills list.
type WorkerFilters struct {
	City  string
	Skill string
}

// WorkerProfileRequest is the payload for saving a worker profile. The
// username comes from the authenticated session, never the payload.
type WorkerProfileRequest struct {
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Skills      []string `json:"skills"`
	RatePerHour int      `json:"rate_per_hour" binding:"required"`
	Bio         string   `json:"bio"`
	DailyStart  string   `json:"daily_start"`
	DailyEnd    string   `json:"daily_end"`
}
