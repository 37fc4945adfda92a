package seats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	locker := NewMemoryLocker()

	require.NoError(t, locker.Acquire(ctx, HoldDetails{HoldID: "h-1", UserID: "u1", ShowtimeID: "s1", SeatIDs: []string{"h1-A1", "h1-A2"}}, time.Minute))

	err := locker.Acquire(ctx, HoldDetails{HoldID: "h-2", UserID: "u2", ShowtimeID: "s1", SeatIDs: []string{"h1-A3", "h1-A2"}}, time.Minute)
	require.ErrorIs(t, err, ErrSeatsHeld)
	var held *HeldError
	require.ErrorAs(t, err, &held)
	assert.Equal(t, "h1-A2", held.SeatID)

	// A3 must not have been taken by the failed attempt
	seats, err := locker.HeldSeats(ctx, "s1", []string{"h1-A1", "h1-A2", "h1-A3"})
	require.NoError(t, err)
	assert.Len(t, seats, 2)
	assert.NotContains(t, seats, "h1-A3")

	// Same seat in another showtime is independent
	require.NoError(t, locker.Acquire(ctx, HoldDetails{HoldID: "h-3", UserID: "u2", ShowtimeID: "s2", SeatIDs: []string{"h1-A2"}}, time.Minute))
}

func TestMemoryLocker_ExpiryAndRelease(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	locker := NewMemoryLocker().WithClock(func() time.Time { return now })

	require.NoError(t, locker.Acquire(ctx, HoldDetails{HoldID: "h-1", UserID: "u1", ShowtimeID: "s1", SeatIDs: []string{"h1-B5"}}, 10*time.Minute))

	details, err := locker.Get(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, 600, details.TTL)
	assert.Equal(t, []string{"h1-B5"}, details.SeatIDs)

	ids, err := locker.UserHolds(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"h-1"}, ids)

	now = now.Add(10 * time.Minute)
	_, err = locker.Get(ctx, "h-1")
	assert.ErrorIs(t, err, ErrHoldNotFound)

	// Abandoned seats are free again
	require.NoError(t, locker.Acquire(ctx, HoldDetails{HoldID: "h-2", UserID: "u2", ShowtimeID: "s1", SeatIDs: []string{"h1-B5"}}, time.Minute))

	n, err := locker.Release(ctx, "h-2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = locker.Release(ctx, "h-2")
	assert.ErrorIs(t, err, ErrHoldNotFound)
}
