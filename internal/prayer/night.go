package prayer

import (
	"time"

	"github.com/noorhq/noor-server/internal/model"
)

// NightTimes derives the Islamic-midnight and last-third-of-night
// instants from the day's Maghrib and Fajr clock strings. Fajr belongs to
// the following morning, so a Fajr instant earlier than Maghrib is
// advanced one day before subtracting.
//
//	midnight  = Maghrib + (Fajr-Maghrib)/2
//	lastThird = Maghrib + (Fajr-Maghrib)*2/3
func NightTimes(maghribClock, fajrClock string, day time.Time) (model.NightTimes, error) {
	maghrib, err := ParseClock(maghribClock, day)
	if err != nil {
		return model.NightTimes{}, err
	}
	fajr, err := ParseClock(fajrClock, day)
	if err != nil {
		return model.NightTimes{}, err
	}
	if fajr.Before(maghrib) {
		fajr = fajr.AddDate(0, 0, 1)
	}

	night := fajr.Sub(maghrib)
	return model.NightTimes{
		Midnight:  FormatClock(maghrib.Add(night / 2)),
		LastThird: FormatClock(maghrib.Add(night * 2 / 3)),
	}, nil
}
