package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/runera/runera-backend/internal/store/schema"
)

// Models lists every table owned by the store, in dependency order
func Models() []any {
	return []any{
		&schema.User{},
		&schema.Event{},
		&schema.Run{},
		&schema.RunStatusHistory{},
		&schema.EventParticipation{},
		&schema.AuthChallenge{},
	}
}

// Migrate creates or updates the tables, indexes and constraints of the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
