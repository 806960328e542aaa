package models

import "time"

// Setting is a per-user preference, stored as a key-value pair.
type Setting struct {
	UserID    string    `db:"user_id"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
