package db

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var DB *sqlx.DB

// Init opens the PostgreSQL pool and assigns it to DB, retrying while
// the database container comes up.
func Init(databaseURL string) error {
	const maxRetries = 10
	const retryInterval = 2 * time.Second
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		DB, err = sqlx.Connect("postgres", databaseURL)
		if err == nil {
			log.Info().Msg("connected to database")
			return nil
		}

		log.Warn().Err(err).
			Int("attempt", attempt).
			Dur("retryIn", retryInterval).
			Msg("database not ready")

		time.Sleep(retryInterval)
	}

	return fmt.Errorf("could not connect to database after %d attempts: %w", maxRetries, err)
}

// RunMigrations executes every "*.up.sql" file under migrationsPath in
// name order. "*.down.sql" files are ignored. Statements are assumed
// idempotent (IF NOT EXISTS), so re-running on boot is safe. Stops at
// the first failure.
func RunMigrations(migrationsPath string) error {
	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to glob migrations: %w", err)
	}
	if len(files) == 0 {
		log.Warn().Str("path", migrationsPath).Msg("no migrations found")
		return nil
	}
	sort.Strings(files)

	for _, file := range files {
		stmt, err := os.ReadFile(file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("failed to read migration")
			return fmt.Errorf("could not read migration %q: %w", file, err)
		}
		if strings.TrimSpace(string(stmt)) == "" {
			continue
		}
		if _, err := DB.Exec(string(stmt)); err != nil {
			log.Error().Err(err).Str("file", file).Msg("migration failed")
			return fmt.Errorf("error executing migration %q: %w", file, err)
		}
		log.Debug().Str("file", filepath.Base(file)).Msg("migration applied")
	}
	log.Info().Int("count", len(files)).Msg("migrations up to date")
	return nil
}
