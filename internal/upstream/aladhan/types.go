package aladhan

// response is the Al Adhan API envelope shared by every endpoint.
type response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   data   `json:"data"`
}

type data struct {
	Timings   timings   `json:"timings"`
	Date      dateInfo  `json:"date"`
	Hijri     hijriDate `json:"hijri"`     // gToH responses
	Gregorian gregorian `json:"gregorian"` // hToG responses
}

// timings contains the prayer and event times as "HH:MM" strings. The
// API may append a timezone suffix like " (AST)".
type timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type dateInfo struct {
	Readable  string    `json:"readable"`
	Timestamp string    `json:"timestamp"`
	Hijri     hijriDate `json:"hijri"`
	Gregorian gregorian `json:"gregorian"`
}

type hijriDate struct {
	Date    string  `json:"date"` // "10-08-1447"
	Day     string  `json:"day"`
	Month   month   `json:"month"`
	Year    string  `json:"year"`
	Weekday weekday `json:"weekday"`
}

type month struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

type weekday struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

type gregorian struct {
	Date string `json:"date"` // "28-02-2026"
	Year string `json:"year"`
}
