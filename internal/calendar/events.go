package calendar

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/noorhq/noor-server/internal/model"
)

// Converter resolves a Hijri date to the Gregorian midnight it falls on.
// Implemented by the Aladhan client; faked in tests.
type Converter interface {
	HijriToGregorian(ctx context.Context, day, month, year int) (time.Time, error)
}

// TargetEvent is a fixed recurring event identified by Hijri month/day.
type TargetEvent struct {
	Name  string
	Month int
	Day   int
}

// TargetEvents are the tracked occasions, in catalog order.
var TargetEvents = []TargetEvent{
	{Name: "شهر رمضان", Month: 9, Day: 1},
	{Name: "عيد الفطر", Month: 10, Day: 1},
	{Name: "عيد الأضحى", Month: 12, Day: 10},
}

// Project computes the next occurrence of every target event relative to
// today's Hijri date: events whose (month, day) has already arrived this
// Hijri year roll over to the next one. Conversions are independent and
// idempotent, so they fan out concurrently and join. A failed conversion
// drops that event from the result rather than failing the projection.
// Results come back ascending by days remaining, nearest flagged.
func Project(ctx context.Context, conv Converter, today model.HijriDate, now time.Time) []model.CalendarEvent {
	curYear, _ := strconv.Atoi(today.Year)
	curMonth := today.Month.Number
	curDay, _ := strconv.Atoi(today.Day)

	todayMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	results := make([]*model.CalendarEvent, len(TargetEvents))
	g, gctx := errgroup.WithContext(ctx)
	for i, target := range TargetEvents {
		i, target := i, target
		g.Go(func() error {
			year := curYear
			if curMonth > target.Month || (curMonth == target.Month && curDay >= target.Day) {
				year++
			}

			gdate, err := conv.HijriToGregorian(gctx, target.Day, target.Month, year)
			if err != nil {
				log.Warn().Err(err).Str("event", target.Name).Msg("hijri conversion failed, dropping event")
				return nil
			}

			// The converter yields UTC midnight; re-anchor to the caller's
			// zone so the countdown measures calendar days, not clock offset.
			gdate = time.Date(gdate.Year(), gdate.Month(), gdate.Day(), 0, 0, 0, 0, now.Location())

			remaining := int(ceilDays(gdate.Sub(todayMidnight)))
			results[i] = &model.CalendarEvent{
				Name:          target.Name,
				HijriMonth:    target.Month,
				HijriDay:      target.Day,
				HijriYear:     year,
				GregorianDate: gdate,
				DaysRemaining: remaining,
			}
			return nil
		})
	}
	_ = g.Wait()

	events := make([]model.CalendarEvent, 0, len(results))
	for _, ev := range results {
		if ev != nil {
			events = append(events, *ev)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].DaysRemaining < events[j].DaysRemaining
	})
	if len(events) > 0 {
		events[0].Nearest = true
	}
	return events
}

func ceilDays(d time.Duration) int64 {
	const day = 24 * time.Hour
	n := int64(d / day)
	if d%day > 0 {
		n++
	}
	return n
}
