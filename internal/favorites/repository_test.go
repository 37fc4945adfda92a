package favorites

import (
	"context"
	"testing"
	"time"

	"cineplex/internal/movies"
	"cineplex/internal/shared/testutil"
	"cineplex/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var addedAt = time.Date(2099, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.NewTestDB(t, &users.User{}, &movies.Movie{}, &Favorite{})

	require.NoError(t, db.Create(&[]users.User{
		{ID: "u1", Name: "Alex Chen", Email: "alex.chen@email.com", Password: "x", Role: users.RoleCustomer, Status: users.StatusActive},
		{ID: "u2", Name: "Sarah Lim", Email: "sarah.lim@email.com", Password: "x", Role: users.RoleCustomer, Status: users.StatusActive},
	}).Error)
	require.NoError(t, db.Create(&[]movies.Movie{
		{ID: "m1", Title: "Neon Horizon", Genre: []string{"Sci-Fi", "Action"}, Status: movies.StatusNowShowing},
		{ID: "m3", Title: "Eternal Echoes", Genre: []string{"Romance", "Drama"}, Status: movies.StatusComingSoon},
		{ID: "m6", Title: "Paper Tigers", Genre: []string{"Comedy"}, Status: movies.StatusNowShowing},
	}).Error)
	return db
}

func TestRepository_AddIsIdempotent(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Add(ctx, &Favorite{UserID: "u1", MovieID: "m1", CreatedAt: addedAt})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Add(ctx, &Favorite{UserID: "u1", MovieID: "m1", CreatedAt: addedAt.Add(time.Hour)})
	require.NoError(t, err)
	assert.False(t, created)

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].CreatedAt.Equal(addedAt))
}

func TestRepository_ListByUser(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	for i, id := range []string{"m1", "m3", "m6"} {
		_, err := repo.Add(ctx, &Favorite{UserID: "u1", MovieID: id, CreatedAt: addedAt.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}
	_, err := repo.Add(ctx, &Favorite{UserID: "u2", MovieID: "m3", CreatedAt: addedAt})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "m6", list[0].MovieID)
	assert.Equal(t, "Paper Tigers", list[0].Movie.Title)
	assert.Equal(t, []string{"Romance", "Drama"}, list[1].Movie.Genre)
	assert.Equal(t, "m1", list[2].MovieID)

	empty, err := repo.ListByUser(ctx, "u9")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_ExistsAndRemove(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Add(ctx, &Favorite{UserID: "u1", MovieID: "m3", CreatedAt: addedAt})
	require.NoError(t, err)

	ok, err := repo.Exists(ctx, "u1", "m3")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(ctx, "u2", "m3")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, repo.Remove(ctx, "u2", "m3"), ErrNotFavorite)
	require.NoError(t, repo.Remove(ctx, "u1", "m3"))
	assert.ErrorIs(t, repo.Remove(ctx, "u1", "m3"), ErrNotFavorite)

	ok, err = repo.Exists(ctx, "u1", "m3")
	require.NoError(t, err)
	assert.False(t, ok)
}
