package model

import "time"

// HijriMonth carries the month number with its localized names.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

// HijriWeekday carries the weekday names.
type HijriWeekday struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// HijriDate is an immutable snapshot of today's Islamic date, re-fetched
// whenever the user's day-adjustment offset changes.
type HijriDate struct {
	Day     string       `json:"day"` // "1".."30"
	Month   HijriMonth   `json:"month"`
	Year    string       `json:"year"`
	Weekday HijriWeekday `json:"weekday"`
}

// CalendarEvent is a recurring religious event projected onto its next
// occurrence. Ordered ascending by DaysRemaining for display.
type CalendarEvent struct {
	Name          string    `json:"name"`
	HijriMonth    int       `json:"hijriMonth"`
	HijriDay      int       `json:"hijriDay"`
	HijriYear     int       `json:"hijriYear"`
	GregorianDate time.Time `json:"gregorianDate"`
	DaysRemaining int       `json:"daysRemaining"`
	Nearest       bool      `json:"nearest"`
}

// WhiteDaysStatus classifies today against the 13th-15th fasting window.
type WhiteDaysStatus string

const (
	WhiteDaysUpcoming WhiteDaysStatus = "upcoming"
	WhiteDaysActive   WhiteDaysStatus = "active"
	WhiteDaysPassed   WhiteDaysStatus = "passed"
)
