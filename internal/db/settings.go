package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/model"
	"github.com/noorhq/noor-server/internal/upstream/aladhan"
)

// fetches a user's companion settings. A user with no row yet gets the
// defaults (reminders off, zero adjustment, Umm al-Qura method).
func (p *pgStore) GetSettings(userID int) (model.Settings, error) {
	var s model.Settings
	err := p.db.Get(&s, `
		SELECT user_id, reminders_enabled, hijri_adjustment, latitude, longitude, method, updated_at
		FROM settings
		WHERE user_id = $1
		`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Settings{UserID: userID, Method: aladhan.DefaultMethod}, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")
		return model.Settings{}, err
	}
	return s, nil
}

// upserts the whole settings row. Last writer wins.
func (p *pgStore) SaveSettings(s model.Settings) error {
	_, err := p.db.Exec(`
		INSERT INTO settings (user_id, reminders_enabled, hijri_adjustment, latitude, longitude, method, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id) DO UPDATE SET
		reminders_enabled = EXCLUDED.reminders_enabled,
		hijri_adjustment = EXCLUDED.hijri_adjustment,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		method = EXCLUDED.method,
		updated_at = now()
		`, s.UserID, s.RemindersEnabled, s.HijriAdjustment, s.Latitude, s.Longitude, s.Method)
	if err != nil {
		log.Error().Err(err).Msg("failed to save settings")
	}
	return err
}

// lists every user with reminders on and a stored location, so the
// scheduler can be repopulated after a restart.
func (p *pgStore) ListReminderSettings() ([]model.Settings, error) {
	var out []model.Settings
	err := p.db.Select(&out, `
		SELECT user_id, reminders_enabled, hijri_adjustment, latitude, longitude, method, updated_at
		FROM settings
		WHERE reminders_enabled = TRUE
		  AND latitude IS NOT NULL AND longitude IS NOT NULL
		`)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reminder settings")
		return nil, err
	}
	return out, nil
}
