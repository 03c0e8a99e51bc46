package packets

import "github.com/noorhq/noor-server/internal/model"

// returned for the hijri-today endpoint
type TodayResponse struct {
	Hijri     model.HijriDate   `json:"hijri"`
	WhiteDays WhiteDaysResponse `json:"whiteDays"`
}

type WhiteDaysResponse struct {
	Status  model.WhiteDaysStatus `json:"status"`
	Message string                `json:"message"`
}

// returned for the event-countdown endpoint
type EventsResponse struct {
	Events []model.CalendarEvent `json:"events"`
}
