package model

import "time"

type User struct {
	ID             int       `db:"id"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	Name           *string   `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Settings is the durable per-user companion state that replaces the
// original client-side key-value storage. Last-writer-wins, no versioning.
type Settings struct {
	UserID           int       `db:"user_id" json:"-"`
	RemindersEnabled bool      `db:"reminders_enabled" json:"remindersEnabled"`
	HijriAdjustment  int       `db:"hijri_adjustment" json:"hijriAdjustment"`
	Latitude         *float64  `db:"latitude" json:"latitude"`
	Longitude        *float64  `db:"longitude" json:"longitude"`
	Method           int       `db:"method" json:"method"`
	UpdatedAt        time.Time `db:"updated_at" json:"-"`
}
