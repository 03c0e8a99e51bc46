package packets

import "github.com/noorhq/noor-server/internal/model"

// returned for the daily timings endpoint
type TimesResponse struct {
	Date    string           `json:"date"`
	Hijri   model.HijriDate  `json:"hijri"`
	Timings model.TimingSet  `json:"timings"`
	Night   model.NightTimes `json:"night"`
}

// returned for the next-prayer endpoint; NextName carries the Arabic
// display name, or the tomorrow label once the day's prayers are done.
type NextResponse struct {
	model.NextPrayerState
	NextName     string `json:"nextName"`
	PreviousName string `json:"previousName"`
}

// returned for the reminder toggle
type ReminderStatusResponse struct {
	Enabled    bool `json:"enabled"`
	Subscribed bool `json:"subscribed"`
}
