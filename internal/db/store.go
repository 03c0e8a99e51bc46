// exposes a Store interface that is passed to API handlers
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/noorhq/noor-server/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// companion settings (reminder flag, hijri adjustment, coordinates)
	GetSettings(userID int) (model.Settings, error)
	SaveSettings(s model.Settings) error
	ListReminderSettings() ([]model.Settings, error)

	// tasbih counter state
	GetTasbih(userID int) (model.TasbihState, error)
	SaveTasbih(s model.TasbihState) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
