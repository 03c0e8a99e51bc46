package reminder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noorhq/noor-server/internal/model"
)

type capturingPublisher struct {
	alerts []Alert
	err    error
}

func (p *capturingPublisher) Publish(a Alert) error {
	p.alerts = append(p.alerts, a)
	return p.err
}

var schedTimings = model.TimingSet{
	Fajr:    "05:00",
	Sunrise: "06:30",
	Dhuhr:   "12:15",
	Asr:     "15:45",
	Maghrib: "18:20",
	Isha:    "19:50",
}

func schedAt(day, hour, min, sec int) time.Time {
	return time.Date(2025, time.March, day, hour, min, sec, 0, time.UTC)
}

func TestTickFiresInsideWindow(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.Subscribe(7, schedTimings)

	s.Tick(schedAt(10, 12, 15, 30))

	require.Len(t, pub.alerts, 1)
	a := pub.alerts[0]
	assert.Equal(t, 7, a.UserID)
	assert.Equal(t, model.Dhuhr, a.Prayer)
	assert.Equal(t, "الظهر", a.Name)
	assert.Contains(t, a.Body, "الظهر")
	assert.Contains(t, a.Speech, "اقتربت صلاة")
}

func TestTickDedupesWithinSameDay(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.Subscribe(7, schedTimings)

	// Clock jitter re-enters the 0-2 minute window repeatedly.
	s.Tick(schedAt(10, 5, 0, 1))
	s.Tick(schedAt(10, 5, 0, 30))
	s.Tick(schedAt(10, 5, 1, 59))
	require.Len(t, pub.alerts, 1)
	assert.Equal(t, model.Fajr, pub.alerts[0].Prayer)

	// Next calendar day fires again.
	s.Tick(schedAt(11, 5, 0, 10))
	require.Len(t, pub.alerts, 2)
	assert.Equal(t, model.Fajr, pub.alerts[1].Prayer)
}

func TestTickOutsideWindowIsSilent(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.Subscribe(7, schedTimings)

	s.Tick(schedAt(10, 4, 59, 59)) // one second early
	s.Tick(schedAt(10, 5, 2, 0))   // window closed
	assert.Empty(t, pub.alerts)
}

func TestSunriseNeverAlerts(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.Subscribe(7, schedTimings)

	s.Tick(schedAt(10, 6, 30, 30))
	assert.Empty(t, pub.alerts)
}

func TestUnsubscribeStopsAlerts(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.Subscribe(7, schedTimings)
	s.Unsubscribe(7)

	s.Tick(schedAt(10, 12, 15, 30))
	assert.Empty(t, pub.alerts)
	assert.False(t, s.Subscribed(7))
}

func TestResubscribeKeepsFiredTable(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.Subscribe(7, schedTimings)

	s.Tick(schedAt(10, 12, 15, 30))
	require.Len(t, pub.alerts, 1)

	// Timing refresh mid-window must not re-announce Dhuhr.
	s.Subscribe(7, schedTimings)
	s.Tick(schedAt(10, 12, 16, 0))
	assert.Len(t, pub.alerts, 1)
}

func TestDayRolloverRefreshesTimings(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.now = func() time.Time { return schedAt(10, 8, 0, 0) }
	s.Subscribe(7, schedTimings)

	// Next day Dhuhr drifts to 12:17. The stale 12:15 set would have
	// closed its window by 12:17:30; the refreshed set must carry it.
	drifted := schedTimings
	drifted.Dhuhr = "12:17"
	var refreshed []int
	s.SetRefresh(func(userID int) (model.TimingSet, error) {
		refreshed = append(refreshed, userID)
		return drifted, nil
	})

	s.Tick(schedAt(11, 12, 17, 30))

	assert.Equal(t, []int{7}, refreshed)
	require.Len(t, pub.alerts, 1)
	assert.Equal(t, model.Dhuhr, pub.alerts[0].Prayer)
}

func TestFailedRefreshKeepsPreviousTimings(t *testing.T) {
	pub := &capturingPublisher{}
	s := NewScheduler(pub)
	s.now = func() time.Time { return schedAt(10, 8, 0, 0) }
	s.Subscribe(7, schedTimings)
	s.SetRefresh(func(int) (model.TimingSet, error) {
		return model.TimingSet{}, errors.New("upstream unavailable")
	})

	s.Tick(schedAt(11, 12, 15, 30))

	require.Len(t, pub.alerts, 1)
	assert.Equal(t, model.Dhuhr, pub.alerts[0].Prayer)
}

func TestPublishFailureDoesNotStopLoop(t *testing.T) {
	pub := &capturingPublisher{err: errors.New("broker down")}
	s := NewScheduler(pub)
	s.Subscribe(7, schedTimings)

	s.Tick(schedAt(10, 12, 15, 30))
	s.Tick(schedAt(10, 15, 45, 30))
	// Both prayers attempted despite delivery failures.
	assert.Len(t, pub.alerts, 2)
}

func TestMalformedTimingSkipsOnlyThatPrayer(t *testing.T) {
	pub := &capturingPublisher{}
	bad := schedTimings
	bad.Asr = "??"
	s := NewScheduler(pub)
	s.Subscribe(7, bad)

	s.Tick(schedAt(10, 12, 15, 30))
	require.Len(t, pub.alerts, 1)
	assert.Equal(t, model.Dhuhr, pub.alerts[0].Prayer)
}
