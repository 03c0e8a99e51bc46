package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/db"
	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/http/api/prayer/packets"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/prayer"
	"github.com/noorhq/noor-server/internal/redis"
	"github.com/noorhq/noor-server/internal/reminder"
	"github.com/noorhq/noor-server/internal/upstream/aladhan"
)

const (
	locationUnavailable = "يرجى تفعيل خدمة الموقع لعرض مواقيت الصلاة."
	timingsCacheTTL     = 30 * time.Minute
)

// PrayerModule mounts the timing, countdown and reminder endpoints.
func PrayerModule(store db.Store, adhan *aladhan.Client, sched *reminder.Scheduler) api.Module {
	ctl := &prayerController{store: store, adhan: adhan, sched: sched}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayer/times", ctl.getTimes)
		c.GET("/prayer/next", ctl.getNext)
		c.POST("/prayer/reminders", ctl.toggleReminders)
		c.POST("/prayer/reminders/test", ctl.testReminder)
	})
}

type prayerController struct {
	store db.Store
	adhan *aladhan.Client
	sched *reminder.Scheduler
}

// coordinates resolves the lat/lng for a request: explicit query params
// win, stored settings are the fallback. No location at all is a client
// error carrying the localized prompt.
func (p *prayerController) coordinates(ctx *gin.Context, user *model.User) (float64, float64, *api.APIError) {
	latRaw, lngRaw := ctx.Query("lat"), ctx.Query("lng")
	if latRaw != "" && lngRaw != "" {
		lat, errLat := strconv.ParseFloat(latRaw, 64)
		lng, errLng := strconv.ParseFloat(lngRaw, 64)
		if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return 0, 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid coordinates"}
		}
		return lat, lng, nil
	}

	settings, err := p.store.GetSettings(user.ID)
	if err != nil {
		return 0, 0, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	if settings.Latitude == nil || settings.Longitude == nil {
		return 0, 0, &api.APIError{Code: http.StatusBadRequest, Message: locationUnavailable}
	}
	return *settings.Latitude, *settings.Longitude, nil
}

// fetchDay returns today's timing set for the request's coordinates,
// served from the redis cache when present.
func (p *prayerController) fetchDay(ctx *gin.Context, user *model.User, now time.Time) (*aladhan.PrayerDay, *api.APIError) {
	lat, lng, apiErr := p.coordinates(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	settings, err := p.store.GetSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return p.fetchDayAt(ctx, lat, lng, settings.Method, now)
}

func (p *prayerController) fetchDayAt(ctx *gin.Context, lat, lng float64, method int, now time.Time) (*aladhan.PrayerDay, *api.APIError) {
	cacheKey := fmt.Sprintf("prayer:times:%s:%.4f:%.4f:%d",
		now.Format("2006-01-02"), lat, lng, method)
	var day aladhan.PrayerDay
	if redis.GetJSON(ctx.Request.Context(), cacheKey, &day) {
		return &day, nil
	}

	fetched, err := p.adhan.Timings(ctx.Request.Context(), now, lat, lng, method)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("timings fetch failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not fetch prayer times"}
	}

	redis.SetJSON(ctx.Request.Context(), cacheKey, fetched, timingsCacheTTL)
	return fetched, nil
}

// GET /api/prayer/times
func (p *prayerController) getTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	now := time.Now()
	day, apiErr := p.fetchDay(ctx, user, now)
	if apiErr != nil {
		return nil, apiErr
	}

	night, err := prayer.NightTimes(day.Timings.Maghrib, day.Timings.Fajr, now)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "malformed prayer times upstream"}
	}

	return packets.TimesResponse{
		Date:    day.Readable,
		Hijri:   day.Hijri,
		Timings: day.Timings,
		Night:   night,
	}, nil
}

// GET /api/prayer/next
func (p *prayerController) getNext(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	now := time.Now()
	day, apiErr := p.fetchDay(ctx, user, now)
	if apiErr != nil {
		return nil, apiErr
	}

	state, err := prayer.Resolve(day.Timings, now)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "malformed prayer times upstream"}
	}

	nextName := model.ArabicNames[state.Next]
	if state.Tomorrow {
		nextName = prayer.TomorrowSentinel
	}
	return packets.NextResponse{
		NextPrayerState: state,
		NextName:        nextName,
		PreviousName:    model.ArabicNames[state.Previous],
	}, nil
}

// POST /api/prayer/reminders
func (p *prayerController) toggleReminders(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ReminderToggleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings, err := p.store.GetSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	if *request.Enabled {
		lat, lng, apiErr := p.coordinates(ctx, user)
		if apiErr != nil {
			return nil, apiErr
		}
		day, apiErr := p.fetchDayAt(ctx, lat, lng, settings.Method, time.Now())
		if apiErr != nil {
			return nil, apiErr
		}
		p.sched.Subscribe(user.ID, day.Timings)
		// The subscription's coordinates must survive a restart, or the
		// boot resubscription pass would skip this user.
		settings.Latitude, settings.Longitude = &lat, &lng
	} else {
		p.sched.Unsubscribe(user.ID)
	}

	settings.RemindersEnabled = *request.Enabled
	if err := p.store.SaveSettings(settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}

	return packets.ReminderStatusResponse{
		Enabled:    settings.RemindersEnabled,
		Subscribed: p.sched.Subscribed(user.ID),
	}, nil
}

// POST /api/prayer/reminders/test
func (p *prayerController) testReminder(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := p.sched.TestAlert(user.ID); err != nil {
		log.Error().Err(err).Int("user", user.ID).Msg("test alert delivery failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not deliver test alert"}
	}
	return gin.H{"sent": true}, nil
}
