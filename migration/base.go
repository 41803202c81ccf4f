package migration

import (
	"time"
)

// Snapshots below are frozen copies of the tables as a migration left them.
// Create a new version of Base if the entity.Base has changed.
// NOTE: DO NOT DELETE THIS STRUCT.
type Base1 struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
