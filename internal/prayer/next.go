package prayer

import (
	"time"

	"github.com/noorhq/noor-server/internal/model"
)

// TomorrowSentinel is reported as the remaining time once every prayer of
// the current day has passed.
const TomorrowSentinel = "غداً"

// Instants parses all six timings into instants on now's calendar day,
// in PrayerOrder. The whole set is rejected on the first malformed entry.
func Instants(t model.TimingSet, now time.Time) (map[model.PrayerKey]time.Time, error) {
	out := make(map[model.PrayerKey]time.Time, len(model.PrayerOrder))
	for _, key := range model.PrayerOrder {
		at, err := ParseClock(t.Clock(key), now)
		if err != nil {
			return nil, err
		}
		out[key] = at
	}
	return out, nil
}

// Resolve determines the upcoming prayer relative to now: which prayer is
// next, which preceded it, the remaining countdown, and how far through
// the interval we are. Sunrise takes part in the ordering, so the Dhuhr
// progress bar spans Sunrise to Dhuhr rather than Fajr to Dhuhr.
func Resolve(t model.TimingSet, now time.Time) (model.NextPrayerState, error) {
	instants, err := Instants(t, now)
	if err != nil {
		return model.NextPrayerState{}, err
	}

	for i, key := range model.PrayerOrder {
		at := instants[key]
		if !at.After(now) {
			continue
		}

		prev := model.Isha
		if i > 0 {
			prev = model.PrayerOrder[i-1]
		}
		prevAt := instants[prev]
		// Isha wrap: the previous prayer happened yesterday evening.
		if prevAt.After(now) {
			prevAt = prevAt.AddDate(0, 0, -1)
		}

		elapsed := now.Sub(prevAt).Seconds() / at.Sub(prevAt).Seconds() * 100
		if elapsed < 0 {
			elapsed = 0
		} else if elapsed > 100 {
			elapsed = 100
		}

		return model.NextPrayerState{
			Next:           key,
			Previous:       prev,
			Remaining:      FormatCountdown(at.Sub(now)),
			ElapsedPercent: elapsed,
		}, nil
	}

	// All of today's prayers have passed; the next is tomorrow's Fajr.
	return model.NextPrayerState{
		Next:           model.Fajr,
		Previous:       model.Isha,
		Remaining:      TomorrowSentinel,
		Tomorrow:       true,
		ElapsedPercent: 100,
	}, nil
}
