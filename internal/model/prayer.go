package model

// PrayerKey identifies one of the daily prayer times tracked by the app.
type PrayerKey string

const (
	Fajr    PrayerKey = "Fajr"
	Sunrise PrayerKey = "Sunrise"
	Dhuhr   PrayerKey = "Dhuhr"
	Asr     PrayerKey = "Asr"
	Maghrib PrayerKey = "Maghrib"
	Isha    PrayerKey = "Isha"
)

// PrayerOrder is the fixed chronological sequence the resolver iterates.
// Sunrise participates in interval math but is not a reminder target.
var PrayerOrder = []PrayerKey{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// ReminderKeys are the prayers that trigger an adhan alert.
var ReminderKeys = []PrayerKey{Fajr, Dhuhr, Asr, Maghrib, Isha}

// ArabicNames maps prayer keys to their localized display names.
var ArabicNames = map[PrayerKey]string{
	Fajr:    "الفجر",
	Sunrise: "الشروق",
	Dhuhr:   "الظهر",
	Asr:     "العصر",
	Maghrib: "المغرب",
	Isha:    "العشاء",
}

// TimingSet holds the six daily clock strings ("HH:MM") for one
// calendar day at one location. Immutable once fetched.
type TimingSet struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// Clock returns the clock string for the given prayer key.
func (t TimingSet) Clock(key PrayerKey) string {
	switch key {
	case Fajr:
		return t.Fajr
	case Sunrise:
		return t.Sunrise
	case Dhuhr:
		return t.Dhuhr
	case Asr:
		return t.Asr
	case Maghrib:
		return t.Maghrib
	case Isha:
		return t.Isha
	}
	return ""
}

// NextPrayerState is derived every second from a TimingSet and the
// current instant. Never persisted.
type NextPrayerState struct {
	Next           PrayerKey `json:"next"`
	Previous       PrayerKey `json:"previous"`
	Remaining      string    `json:"remaining"`      // "HH:MM:SS", or the tomorrow sentinel
	Tomorrow       bool      `json:"tomorrow"`       // all of today's prayers have passed
	ElapsedPercent float64   `json:"elapsedPercent"` // [0,100]
}

// NightTimes are the derived Islamic-midnight and last-third instants,
// formatted "HH:MM".
type NightTimes struct {
	Midnight  string `json:"midnight"`
	LastThird string `json:"lastThird"`
}
