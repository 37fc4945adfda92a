package movies

import (
	"context"
	"testing"

	"cineplex/internal/shared/testutil"
	"cineplex/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShowtimes struct{ scheduled int64 }

func (s stubShowtimes) CountScheduledByMovie(context.Context, string) (int64, error) {
	return s.scheduled, nil
}

func newTestService(t *testing.T) Service {
	t.Helper()
	db := testutil.NewTestDB(t, &Movie{})
	for _, m := range sampleMovies() {
		m := m
		require.NoError(t, db.Create(&m).Error)
	}
	return NewService(NewRepository(db), cache.NewMemoryService())
}

func TestService_ListAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	movies, err := svc.ListMovies(ctx, ListQuery{Genre: "Action"})
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2", "m4"}, ids(movies))

	movie, err := svc.GetMovie(ctx, "m3")
	require.NoError(t, err)
	assert.Equal(t, "Eternal Echoes", movie.Title)
	assert.Equal(t, []string{"Romance", "Drama"}, movie.Genre)

	_, err = svc.GetMovie(ctx, "m99")
	assert.ErrorIs(t, err, ErrMovieNotFound)

	facets, err := svc.GetFacets(ctx)
	require.NoError(t, err)
	assert.Contains(t, facets.Genres, "Thriller")
}

func TestService_CreateUpdateInvalidatesCache(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.ListMovies(ctx, ListQuery{Status: "coming_soon"})
	require.NoError(t, err)
	require.Len(t, before, 1)

	created, err := svc.CreateMovie(ctx, CreateMovieRequest{
		Title:       "  Quantum Drift ",
		Duration:    120,
		Genre:       []string{"Sci-Fi", " "},
		Language:    "English",
		ReleaseDate: "2026-03-01",
		Director:    "Ava Lin",
		AgeRating:   "PG-13",
	})
	require.NoError(t, err)
	assert.Equal(t, "m5", created.ID)
	assert.Equal(t, "Quantum Drift", created.Title)
	assert.Equal(t, []string{"Sci-Fi"}, created.Genre)
	assert.Equal(t, StatusComingSoon, created.Status)

	after, err := svc.ListMovies(ctx, ListQuery{Status: "coming_soon"})
	require.NoError(t, err)
	assert.Len(t, after, 2)

	status := string(StatusNowShowing)
	updated, err := svc.UpdateMovie(ctx, "m5", UpdateMovieRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, StatusNowShowing, updated.Status)

	cached, err := svc.GetMovie(ctx, "m5")
	require.NoError(t, err)
	assert.Equal(t, StatusNowShowing, cached.Status)
}

func TestService_UpdateInvalidatesSlashQueryListing(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, err := svc.ListMovies(ctx, ListQuery{Query: "/"})
	require.NoError(t, err)
	assert.Empty(t, before)

	title := "Echoes/Reprise"
	_, err = svc.UpdateMovie(ctx, "m3", UpdateMovieRequest{Title: &title})
	require.NoError(t, err)

	after, err := svc.ListMovies(ctx, ListQuery{Query: "/"})
	require.NoError(t, err)
	assert.Equal(t, []string{"m3"}, ids(after))
}

func TestService_DeleteRefusesScheduledShowtimes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.SetShowtimeChecker(stubShowtimes{scheduled: 3})
	err := svc.DeleteMovie(ctx, "m1")
	assert.ErrorIs(t, err, ErrMovieHasShowtimes)

	svc.SetShowtimeChecker(stubShowtimes{})
	require.NoError(t, svc.DeleteMovie(ctx, "m1"))
	assert.ErrorIs(t, svc.DeleteMovie(ctx, "m1"), ErrMovieNotFound)

	list, err := svc.AdminListMovies(ctx, AdminListQuery{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
}
