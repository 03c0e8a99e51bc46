package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/noorhq/noor-server/internal/db"
	"github.com/noorhq/noor-server/internal/http/api"
	accountapi "github.com/noorhq/noor-server/internal/http/api/account/endpoints"
	assistantapi "github.com/noorhq/noor-server/internal/http/api/assistant/endpoints"
	calendarapi "github.com/noorhq/noor-server/internal/http/api/calendar/endpoints"
	prayerapi "github.com/noorhq/noor-server/internal/http/api/prayer/endpoints"
	quranapi "github.com/noorhq/noor-server/internal/http/api/quran/endpoints"
	tasbihapi "github.com/noorhq/noor-server/internal/http/api/tasbih/endpoints"
	"github.com/noorhq/noor-server/internal/quran"
	"github.com/noorhq/noor-server/internal/reminder"
	"github.com/noorhq/noor-server/internal/upstream/aladhan"
	"github.com/noorhq/noor-server/internal/upstream/alquran"
	"github.com/noorhq/noor-server/internal/upstream/gemini"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	adhan *aladhan.Client,
	quranClient *alquran.Client,
	gem *gemini.Client,
	mirror *quran.Mirror,
	sched *reminder.Scheduler,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		accountapi.AuthPublicModule(env.SecretKey, store),
		quranapi.QuranModule(quranClient, mirror),
		assistantapi.NamesPublicModule(),
		tasbihapi.CatalogModule(),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		// session endpoints that require auth
		accountapi.AuthSessionModule(env.SecretKey, store),
		accountapi.SettingsModule(store),
		// companion modules
		prayerapi.PrayerModule(store, adhan, sched),
		calendarapi.CalendarModule(store, adhan),
		assistantapi.AssistantModule(gem),
		assistantapi.NamesReflectionModule(gem),
		tasbihapi.TasbihModule(store),
	)

	// mirrored recitation audio when stored on local disk
	if env.MirrorAudio && !env.UseSpaces {
		r.Static("/audio", env.AudioDir)
	}
}
