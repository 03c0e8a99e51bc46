package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/model"
)

// fetches a user's counter state. A user with no row yet starts at zero
// on the first catalog dhikr.
func (p *pgStore) GetTasbih(userID int) (model.TasbihState, error) {
	var s model.TasbihState
	err := p.db.Get(&s, `
		SELECT user_id, dhikr_id, count, total, laps, updated_at
		FROM tasbih
		WHERE user_id = $1
		`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.TasbihState{UserID: userID, DhikrID: model.DhikrCatalog[0].ID}, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasbih state")
		return model.TasbihState{}, err
	}
	return s, nil
}

// upserts the whole counter row in one round trip, so a cycle completion
// (laps+1, count=0) lands atomically.
func (p *pgStore) SaveTasbih(s model.TasbihState) error {
	_, err := p.db.Exec(`
		INSERT INTO tasbih (user_id, dhikr_id, count, total, laps, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id) DO UPDATE SET
		dhikr_id = EXCLUDED.dhikr_id,
		count = EXCLUDED.count,
		total = EXCLUDED.total,
		laps = EXCLUDED.laps,
		updated_at = now()
		`, s.UserID, s.DhikrID, s.Count, s.Total, s.Laps)
	if err != nil {
		log.Error().Err(err).Msg("failed to save tasbih state")
	}
	return err
}
