package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/db"
	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/notify"
	"github.com/noorhq/noor-server/internal/quran"
	"github.com/noorhq/noor-server/internal/redis"
	"github.com/noorhq/noor-server/internal/reminder"
	"github.com/noorhq/noor-server/internal/upstream/aladhan"
	"github.com/noorhq/noor-server/internal/upstream/alquran"
	"github.com/noorhq/noor-server/internal/upstream/gemini"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	env := LoadEnvironment()

	// initialize PostgreSQL
	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}

	// run pending migrations
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	store := db.NewStore()

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	// alert delivery over MQTT, or a no-op publisher without a broker
	var publisher reminder.Publisher = notify.NopPublisher{}
	var broker *notify.Broker
	if env.MQTTBrokerURL != "" {
		var err error
		broker, err = notify.Connect(env.MQTTBrokerURL, env.MQTTClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("MQTT connect failed")
		}
		publisher = broker
	}

	adhan := aladhan.NewClient()
	if env.AladhanBaseURL != "" {
		adhan.BaseURL = env.AladhanBaseURL
	}
	quranClient := alquran.NewClient()
	if env.AlQuranBaseURL != "" {
		quranClient.BaseURL = env.AlQuranBaseURL
	}
	gem := gemini.NewClient(env.GeminiAPIKey, env.GeminiModel)

	var mirror *quran.Mirror
	if env.MirrorAudio {
		mirror = quran.NewMirror(InitStorage(env))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := reminder.NewScheduler(publisher)
	sched.SetRefresh(timingRefresher(ctx, store, adhan))
	go sched.Run(ctx)
	resubscribeReminders(ctx, store, adhan, sched)

	r := gin.Default()
	RegisterRoutes(r, env, store, adhan, quranClient, gem, mirror, sched)

	srv := &http.Server{Addr: env.ServerAddress, Handler: r}
	go func() {
		log.Info().Str("address", env.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	if broker != nil {
		broker.Close()
	}
}

// timingRefresher renews a subscriber's timing set from their stored
// location. The scheduler calls it at day rollover, when yesterday's
// prayer instants no longer match today's.
func timingRefresher(ctx context.Context, store db.Store, adhan *aladhan.Client) reminder.RefreshFunc {
	return func(userID int) (model.TimingSet, error) {
		settings, err := store.GetSettings(userID)
		if err != nil {
			return model.TimingSet{}, err
		}
		if settings.Latitude == nil || settings.Longitude == nil {
			return model.TimingSet{}, errors.New("no stored location")
		}
		day, err := adhan.Timings(ctx, time.Now(), *settings.Latitude, *settings.Longitude, settings.Method)
		if err != nil {
			return model.TimingSet{}, err
		}
		return day.Timings, nil
	}
}

// resubscribeReminders repopulates the scheduler after a restart so
// users who enabled reminders keep getting alerts without re-toggling.
func resubscribeReminders(ctx context.Context, store db.Store, adhan *aladhan.Client, sched *reminder.Scheduler) {
	settings, err := store.ListReminderSettings()
	if err != nil {
		log.Error().Err(err).Msg("could not list reminder users")
		return
	}

	now := time.Now()
	for _, s := range settings {
		day, err := adhan.Timings(ctx, now, *s.Latitude, *s.Longitude, s.Method)
		if err != nil {
			log.Warn().Err(err).Int("user", s.UserID).Msg("skipping reminder resubscription")
			continue
		}
		sched.Subscribe(s.UserID, day.Timings)
	}
	log.Info().Int("count", len(settings)).Msg("reminder subscriptions restored")
}
