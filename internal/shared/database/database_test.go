package database

import (
	"context"
	"testing"

	"cineplex/internal/shared/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, MigrateConstraints(db))
	require.NoError(t, Migrate(db))
	require.NoError(t, MigrateConstraints(db))

	for _, table := range []string{"cinemas", "halls", "seats", "movies", "showtimes", "seat_statuses",
		"concession_items", "users", "rewards", "points_transactions", "bookings", "user_favorites"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("seat_statuses", "idx_seat_statuses_showtime_status"))
}

func TestHealthCheck(t *testing.T) {
	store := &DB{SQL: testutil.NewTestDB(t)}
	assert.NoError(t, store.HealthCheck(context.Background()))
	assert.Nil(t, store.GetRedisClient())
	assert.Same(t, store.SQL, store.GetSQL())
}
