package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/prayer"
)

// alertWindow is how long after a prayer instant an alert may still fire.
const alertWindow = 2 * time.Minute

const dayFormat = "2006-01-02"

// Alert is one adhan reminder ready for delivery. The Speech sentence is
// synthesized client-side; the server only ships the text.
type Alert struct {
	UserID int             `json:"-"`
	Prayer model.PrayerKey `json:"prayer"`
	Name   string          `json:"name"`
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	Speech string          `json:"speech"`
	At     time.Time       `json:"at"`
}

// Publisher delivers alerts to a user's devices. Delivery failures are
// logged by the scheduler and never interrupt the tick loop.
type Publisher interface {
	Publish(alert Alert) error
}

// RefreshFunc re-fetches a user's timing set for the current day.
type RefreshFunc func(userID int) (model.TimingSet, error)

// subscription tracks one user's reminder state. day is the calendar day
// ("2006-01-02") its timing set belongs to. fired holds, per prayer key,
// the day the alert last went out, so an alert fires at most once per
// prayer per day and resets implicitly at the next day rollover.
type subscription struct {
	timings model.TimingSet
	day     string
	fired   map[model.PrayerKey]string
}

// Scheduler re-resolves every subscriber once per second and fires a
// one-shot alert when now crosses a prayer boundary. It is owned by the
// server process and torn down through its context.
type Scheduler struct {
	pub     Publisher
	refresh RefreshFunc
	now     func() time.Time

	mu   sync.Mutex
	subs map[int]*subscription
}

func NewScheduler(pub Publisher) *Scheduler {
	return &Scheduler{
		pub:  pub,
		now:  time.Now,
		subs: make(map[int]*subscription),
	}
}

// SetRefresh installs the fetch used to renew subscriber timing sets at
// day rollover. Install it before Run; without it, subscriptions keep
// the set they were created with.
func (s *Scheduler) SetRefresh(fn RefreshFunc) {
	s.refresh = fn
}

// Subscribe registers (or re-registers) a user with today's timing set.
// Re-subscribing with a fresh set keeps the day's fired table, so a
// timing refresh cannot re-trigger an already-announced prayer.
func (s *Scheduler) Subscribe(userID int, timings model.TimingSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.now().Format(dayFormat)
	if sub, ok := s.subs[userID]; ok {
		sub.timings = timings
		sub.day = day
		return
	}
	s.subs[userID] = &subscription{
		timings: timings,
		day:     day,
		fired:   make(map[model.PrayerKey]string),
	}
}

// Unsubscribe drops a user. Toggling reminders off is immediate and
// purely local, no broker interaction.
func (s *Scheduler) Unsubscribe(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, userID)
}

// Subscribed reports whether the user currently receives reminders.
func (s *Scheduler) Subscribed(userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.subs[userID]
	return ok
}

// Run drives the 1-second recompute loop until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	log.Info().Msg("reminder scheduler started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(s.now())
		}
	}
}

// Tick runs one recompute pass at the given instant. Exported so the
// loop body is testable without the ticker.
func (s *Scheduler) Tick(now time.Time) {
	day := now.Format(dayFormat)
	s.rollover(day)

	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, sub := range s.subs {
		for _, key := range model.ReminderKeys {
			at, err := prayer.ParseClock(sub.timings.Clock(key), now)
			if err != nil {
				log.Warn().Err(err).Int("user", userID).Str("prayer", string(key)).
					Msg("skipping reminder with malformed timing")
				continue
			}

			since := now.Sub(at)
			if since < 0 || since >= alertWindow {
				continue
			}
			if sub.fired[key] == day {
				continue
			}
			sub.fired[key] = day

			if err := s.pub.Publish(buildAlert(userID, key, now)); err != nil {
				log.Error().Err(err).Int("user", userID).Str("prayer", string(key)).
					Msg("failed to publish prayer alert")
			}
		}
	}
}

// rollover renews timing sets fetched on an earlier calendar day. Prayer
// instants drift a minute or two per day, enough for a long-lived
// subscription to slip the alert window. A failed refresh keeps the
// previous set and tries again at the next rollover. Refresh calls hit
// the upstream, so they run outside the lock.
func (s *Scheduler) rollover(day string) {
	s.mu.Lock()
	var stale []int
	for userID, sub := range s.subs {
		if sub.day != day {
			stale = append(stale, userID)
		}
	}
	s.mu.Unlock()

	for _, userID := range stale {
		var timings model.TimingSet
		var err error
		if s.refresh != nil {
			timings, err = s.refresh(userID)
		}

		s.mu.Lock()
		sub, ok := s.subs[userID]
		if !ok {
			// unsubscribed while the refresh was in flight
			s.mu.Unlock()
			continue
		}
		sub.day = day
		switch {
		case s.refresh == nil:
		case err != nil:
			log.Warn().Err(err).Int("user", userID).
				Msg("timing refresh failed, keeping previous set")
		default:
			sub.timings = timings
		}
		s.mu.Unlock()
	}
}

// TestAlert publishes a sample alert so the user can verify delivery and
// the client's speech output.
func (s *Scheduler) TestAlert(userID int) error {
	return s.pub.Publish(Alert{
		UserID: userID,
		Prayer: model.Maghrib,
		Name:   model.ArabicNames[model.Maghrib],
		Title:  "تجربة التنبيه",
		Body:   "هذه تجربة لصوت التنبيه: اقتربت صلاة المغرب",
		Speech: "هذه تجربة لصوت التنبيه: اقتربت صلاة المغرب",
		At:     s.now(),
	})
}

func buildAlert(userID int, key model.PrayerKey, now time.Time) Alert {
	name := model.ArabicNames[key]
	return Alert{
		UserID: userID,
		Prayer: key,
		Name:   name,
		Title:  "حان وقت الصلاة",
		Body:   fmt.Sprintf("اقتربت صلاة %s، حان الآن موعد الأذان.", name),
		Speech: fmt.Sprintf("اقتربت صلاة %s. اقتربت صلاة %s.", name, name),
		At:     now,
	}
}
