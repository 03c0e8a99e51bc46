package calendar

import (
	"fmt"

	"github.com/noorhq/noor-server/internal/model"
)

// WhiteDays classifies a Hijri day-of-month against the 13th-15th
// fasting window and returns the localized status message.
func WhiteDays(day int) (model.WhiteDaysStatus, string) {
	switch {
	case day >= 13 && day <= 15:
		return model.WhiteDaysActive, "اليوم من الأيام البيض، تقبل الله صيامكم."
	case day < 13:
		return model.WhiteDaysUpcoming, fmt.Sprintf("باقي %d أيام على الأيام البيض.", 13-day)
	default:
		return model.WhiteDaysPassed, "انقضت الأيام البيض لهذا الشهر."
	}
}
