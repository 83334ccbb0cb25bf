package store

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormschema "gorm.io/gorm/schema"

	"github.com/runera/runera-backend/internal/store/schema"
)

func openSQLiteTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// initSQLiteTestDB opens a fresh in-memory database for each test
func initSQLiteTestDB(t *testing.T) Store {
	return NewPGStore(openSQLiteTestDB(t))
}

func cleanupSQLiteTestDB(t *testing.T) {}

// TestSQLiteStore runs all store tests against an in-memory SQLite database
func TestSQLiteStore(t *testing.T) {
	RunStoreTests(t, initSQLiteTestDB, cleanupSQLiteTestDB)
}

func TestEventParticipation_BelongsToEvent(t *testing.T) {
	parsed, err := gormschema.Parse(&schema.EventParticipation{}, &sync.Map{}, gormschema.NamingStrategy{})
	require.NoError(t, err)

	rel, ok := parsed.Relationships.Relations["Event"]
	require.True(t, ok)
	assert.Equal(t, gormschema.BelongsTo, rel.Type)
	require.Len(t, rel.References, 1)
	assert.Equal(t, "ID", rel.References[0].PrimaryKey.Name)
	assert.Equal(t, "EventRowID", rel.References[0].ForeignKey.Name)
}

func TestMigrate_ForeignKeysPointAtEvents(t *testing.T) {
	db := openSQLiteTestDB(t)

	tableSQL := func(name string) string {
		var ddl string
		require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&ddl).Error)
		require.NotEmpty(t, ddl)
		return ddl
	}

	events := tableSQL("events")
	assert.NotContains(t, events, "REFERENCES")
	assert.NotContains(t, events, "uuid")

	participations := tableSQL("event_participations")
	assert.Contains(t, participations, "REFERENCES `events`(`id`)")
}
