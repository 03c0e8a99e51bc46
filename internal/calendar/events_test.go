package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noorhq/noor-server/internal/model"
)

type fakeConverter struct {
	dates map[string]time.Time
	fail  map[string]bool
	calls []string
}

func key(day, month, year int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2-1-2006")
}

func (f *fakeConverter) HijriToGregorian(_ context.Context, day, month, year int) (time.Time, error) {
	k := key(day, month, year)
	f.calls = append(f.calls, k)
	if f.fail[k] {
		return time.Time{}, errors.New("upstream unavailable")
	}
	d, ok := f.dates[k]
	if !ok {
		return time.Time{}, errors.New("unexpected conversion")
	}
	return d, nil
}

func TestProjectRollsPassedEventToNextYear(t *testing.T) {
	// Today is 5 Ramadan 1446: Ramadan start has passed, both Eids have not.
	today := model.HijriDate{Day: "5", Month: model.HijriMonth{Number: 9}, Year: "1446"}
	now := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

	conv := &fakeConverter{dates: map[string]time.Time{
		key(1, 9, 1447):   time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC),
		key(1, 10, 1446):  time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		key(10, 12, 1446): time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
	}}

	events := Project(context.Background(), conv, today, now)
	require.Len(t, events, 3)

	byName := map[string]model.CalendarEvent{}
	for _, ev := range events {
		byName[ev.Name] = ev
	}
	assert.Equal(t, 1447, byName["شهر رمضان"].HijriYear)
	assert.Equal(t, 1446, byName["عيد الفطر"].HijriYear)
	assert.Equal(t, 1446, byName["عيد الأضحى"].HijriYear)

	// Ascending by days remaining, nearest flagged.
	assert.Equal(t, "عيد الفطر", events[0].Name)
	assert.True(t, events[0].Nearest)
	assert.Equal(t, 25, events[0].DaysRemaining)
	assert.False(t, events[1].Nearest)
}

func TestProjectCountsCalendarDaysEastOfUTC(t *testing.T) {
	// Same afternoon as above but in a +03 zone. The converter still hands
	// back UTC midnights; the countdown must not pick up the zone offset.
	riyadh := time.FixedZone("AST", 3*60*60)
	today := model.HijriDate{Day: "5", Month: model.HijriMonth{Number: 9}, Year: "1446"}
	now := time.Date(2025, time.March, 5, 14, 30, 0, 0, riyadh)

	conv := &fakeConverter{dates: map[string]time.Time{
		key(1, 9, 1447):   time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC),
		key(1, 10, 1446):  time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
		key(10, 12, 1446): time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
	}}

	events := Project(context.Background(), conv, today, now)
	require.Len(t, events, 3)
	assert.Equal(t, "عيد الفطر", events[0].Name)
	assert.Equal(t, 25, events[0].DaysRemaining)
}

func TestProjectEventOnTodayRollsOver(t *testing.T) {
	// 1 Ramadan exactly: the start counts as passed and targets next year.
	today := model.HijriDate{Day: "1", Month: model.HijriMonth{Number: 9}, Year: "1446"}
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	conv := &fakeConverter{dates: map[string]time.Time{
		key(1, 9, 1447):   time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC),
		key(1, 10, 1446):  time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		key(10, 12, 1446): time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
	}}

	events := Project(context.Background(), conv, today, now)
	require.Len(t, events, 3)
	for _, ev := range events {
		if ev.Name == "شهر رمضان" {
			assert.Equal(t, 1447, ev.HijriYear)
		}
	}
}

func TestProjectDropsFailedConversion(t *testing.T) {
	today := model.HijriDate{Day: "5", Month: model.HijriMonth{Number: 9}, Year: "1446"}
	now := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	conv := &fakeConverter{
		dates: map[string]time.Time{
			key(1, 10, 1446):  time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC),
			key(10, 12, 1446): time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
		},
		fail: map[string]bool{key(1, 9, 1447): true},
	}

	events := Project(context.Background(), conv, today, now)
	require.Len(t, events, 2)
	assert.Equal(t, "عيد الفطر", events[0].Name)
	assert.True(t, events[0].Nearest)
}

func TestWhiteDays(t *testing.T) {
	status, msg := WhiteDays(10)
	assert.Equal(t, model.WhiteDaysUpcoming, status)
	assert.Equal(t, "باقي 3 أيام على الأيام البيض.", msg)

	status, msg = WhiteDays(14)
	assert.Equal(t, model.WhiteDaysActive, status)
	assert.Contains(t, msg, "الأيام البيض")

	status, _ = WhiteDays(13)
	assert.Equal(t, model.WhiteDaysActive, status)
	status, _ = WhiteDays(15)
	assert.Equal(t, model.WhiteDaysActive, status)

	status, msg = WhiteDays(20)
	assert.Equal(t, model.WhiteDaysPassed, status)
	assert.Contains(t, msg, "انقضت")
}
