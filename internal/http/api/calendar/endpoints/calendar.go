package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/calendar"
	"github.com/noorhq/noor-server/internal/db"
	"github.com/noorhq/noor-server/internal/http/api"
	"github.com/noorhq/noor-server/internal/http/api/calendar/packets"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/redis"
	"github.com/noorhq/noor-server/internal/upstream/aladhan"
)

const eventsCacheTTL = 6 * time.Hour

// CalendarModule mounts the hijri date and event-countdown endpoints.
func CalendarModule(store db.Store, adhan *aladhan.Client) api.Module {
	ctl := &calendarController{store: store, adhan: adhan}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/calendar/today", ctl.getToday)
		c.GET("/calendar/events", ctl.getEvents)
	})
}

type calendarController struct {
	store db.Store
	adhan *aladhan.Client
}

// hijriToday fetches today's hijri date with the user's day adjustment
// applied upstream.
func (cc *calendarController) hijriToday(ctx *gin.Context, user *model.User) (*model.HijriDate, *api.APIError) {
	settings, err := cc.store.GetSettings(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}

	hijri, err := cc.adhan.GregorianToHijri(ctx.Request.Context(), time.Now(), settings.HijriAdjustment)
	if err != nil {
		log.Error().Err(err).Int("adjustment", settings.HijriAdjustment).Msg("hijri conversion failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not fetch hijri date"}
	}
	return hijri, nil
}

// GET /api/calendar/today
func (cc *calendarController) getToday(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	hijri, apiErr := cc.hijriToday(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	day, err := strconv.Atoi(hijri.Day)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "malformed hijri date upstream"}
	}
	status, message := calendar.WhiteDays(day)

	return packets.TodayResponse{
		Hijri: *hijri,
		WhiteDays: packets.WhiteDaysResponse{
			Status:  status,
			Message: message,
		},
	}, nil
}

// GET /api/calendar/events
func (cc *calendarController) getEvents(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	hijri, apiErr := cc.hijriToday(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	cacheKey := fmt.Sprintf("calendar:events:%s-%d-%s", hijri.Year, hijri.Month.Number, hijri.Day)
	var cached packets.EventsResponse
	if redis.GetJSON(ctx.Request.Context(), cacheKey, &cached) {
		return cached, nil
	}

	events := calendar.Project(ctx.Request.Context(), cc.adhan, *hijri, time.Now())
	if len(events) == 0 {
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "could not project calendar events"}
	}

	response := packets.EventsResponse{Events: events}
	redis.SetJSON(ctx.Request.Context(), cacheKey, response, eventsCacheTTL)
	return response, nil
}
