package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryService_SetGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryService()

	require.NoError(t, m.Set(ctx, "cineplex:movies:detail:m1", map[string]string{"title": "Neon Horizon"}, 0))

	var got map[string]string
	require.NoError(t, m.Get(ctx, "cineplex:movies:detail:m1", &got))
	assert.Equal(t, "Neon Horizon", got["title"])

	err := m.Get(ctx, "missing", &got)
	assert.True(t, errors.Is(err, ErrCacheMiss))
}

func TestMemoryService_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemoryService().WithClock(func() time.Time { return now })

	require.NoError(t, m.Set(ctx, "k", 1, time.Minute))
	assert.True(t, m.Exists(ctx, "k"))

	now = now.Add(time.Minute)
	var v int
	assert.ErrorIs(t, m.Get(ctx, "k", &v), ErrCacheMiss)
	assert.False(t, m.Exists(ctx, "k"))
}

func TestMemoryService_DeletePattern(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryService()

	require.NoError(t, m.Set(ctx, "cineplex:movies:list:a", 1, 0))
	require.NoError(t, m.Set(ctx, "cineplex:movies:detail:m1", 2, 0))
	require.NoError(t, m.Set(ctx, "cineplex:analytics:dashboard", 3, 0))

	require.NoError(t, m.DeletePattern(ctx, "cineplex:movies:*"))

	assert.False(t, m.Exists(ctx, "cineplex:movies:list:a"))
	assert.False(t, m.Exists(ctx, "cineplex:movies:detail:m1"))
	assert.True(t, m.Exists(ctx, "cineplex:analytics:dashboard"))
}

func TestMemoryService_DeletePatternCrossesSlash(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryService()

	slashKey := "cineplex:movies:list:genre::lang::status::q:/:sort:"
	nestedKey := "cineplex:movies:list:genre::lang::status::q:echoes/reprise:sort:title"
	require.NoError(t, m.Set(ctx, slashKey, []string{}, time.Minute))
	require.NoError(t, m.Set(ctx, nestedKey, []string{"m3"}, time.Minute))
	require.NoError(t, m.Set(ctx, "cineplex:analytics:a/b", 1, time.Minute))

	require.NoError(t, m.DeletePattern(ctx, "cineplex:movies:*"))
	assert.False(t, m.Exists(ctx, slashKey))
	assert.False(t, m.Exists(ctx, nestedKey))
	assert.True(t, m.Exists(ctx, "cineplex:analytics:a/b"))
}

func TestGlobRegexp(t *testing.T) {
	tests := []struct {
		pattern string
		key     string
		want    bool
	}{
		{"cineplex:movies:*", "cineplex:movies:list:q:/", true},
		{"cineplex:movies:*", "cineplex:moviesx", false},
		{"h?ll:*", "hall:1/2", true},
		{"seat:[ab]1", "seat:b1", true},
		{"seat:[^ab]1", "seat:a1", false},
		{`lit\*`, "lit*", true},
		{`lit\*`, "litx", false},
		{"a.b", "axb", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"|"+tt.key, func(t *testing.T) {
			re, err := globRegexp(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.key))
		})
	}
}

func TestMemoryService_GetOrSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryService()
	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return []string{"Action", "Drama"}, nil
	}

	var first, second []string
	require.NoError(t, m.GetOrSet(ctx, "genres", time.Minute, fetch, &first))
	require.NoError(t, m.GetOrSet(ctx, "genres", time.Minute, fetch, &second))

	assert.Equal(t, []string{"Action", "Drama"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestMemoryService_GetOrSetFetcherError(t *testing.T) {
	m := NewMemoryService()
	var dest []string
	err := m.GetOrSet(context.Background(), "k", time.Minute, func() (interface{}, error) {
		return nil, errors.New("boom")
	}, &dest)
	assert.Error(t, err)
	assert.False(t, m.Exists(context.Background(), "k"))
}
