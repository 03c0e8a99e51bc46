package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/noorhq/noor-server/internal/model"
)

// inserts a new user, returns the new user ID.
func (p *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	query := `
	INSERT INTO users (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;
	`
	var newID int
	if err := p.db.QueryRow(query, email, hashedPassword, name).Scan(&newID); err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return 0, err
	}
	return newID, nil
}

// fetches a user by email. Returns nil, sql.ErrNoRows if not found.
func (p *pgStore) GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM users
	WHERE email = $1;
	`
	if err := p.db.Get(&u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}

// fetches a user by ID. Returns nil, sql.ErrNoRows if not found.
func (p *pgStore) GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM users
	WHERE id = $1;
	`
	if err := p.db.Get(&u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

// updates a user's email and name and bumps updated_at.
func (p *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	_, err := p.db.Exec(`
		UPDATE users
		SET email = $2,
		name = COALESCE($3, name),
		updated_at = now()
		WHERE id = $1
		`, id, email, name)
	if err != nil {
		log.Error().Err(err).Msg("failed to update user profile")
	}
	return err
}

// GetUserByID is used by the JWT middleware, which runs before a Store
// is in scope.
func GetUserByID(id int) (*model.User, error) {
	return (&pgStore{db: DB}).GetUserByID(id)
}
