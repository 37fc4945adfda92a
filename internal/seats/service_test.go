package seats

import (
	"context"
	"testing"
	"time"

	"cineplex/internal/halls"
	"cineplex/internal/movies"
	"cineplex/internal/pricing"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/testutil"
	"cineplex/internal/showtimes"
	"cineplex/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	svc       Service
	showtimes showtimes.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t, &movies.Movie{}, &halls.Cinema{}, &halls.Hall{}, &halls.Seat{}, &showtimes.Showtime{}, &SeatStatus{})

	require.NoError(t, db.Create(&movies.Movie{ID: "m1", Title: "Neon Horizon", Duration: 148, Status: movies.StatusNowShowing}).Error)
	require.NoError(t, db.Create(&halls.Hall{ID: "h4", CinemaID: "c1", Name: "Hall 4", Type: halls.Hall4DX, Rows: 6, SeatsPerRow: 10, TotalSeats: 60, HasVIPRows: true, Status: halls.StatusActive}).Error)
	layout, err := halls.GenerateSeats("h4", 6, 10, true)
	require.NoError(t, err)
	require.NoError(t, db.Create(&layout).Error)
	require.NoError(t, db.Create(&[]showtimes.Showtime{
		{ID: "s1", MovieID: "m1", HallID: "h4", HallName: "Hall 4", HallType: halls.Hall4DX, Date: "2099-12-31", Time: "20:00", Price: 35, VIPPrice: 55, Status: showtimes.StatusScheduled},
		{ID: "s2", MovieID: "m1", HallID: "h4", HallName: "Hall 4", HallType: halls.Hall4DX, Date: "2099-12-31", Time: "13:00", Price: 35, VIPPrice: 55, Status: showtimes.StatusCancelled},
	}).Error)

	cfg := &config.Config{}
	cfg.Redis.SeatHoldTTL = 10 * time.Minute
	cfg.Booking.MaxSeatsPerHold = 4

	showtimeService := showtimes.NewService(showtimes.NewRepository(db), movies.NewRepository(db), halls.NewRepository(db), time.UTC)
	hallService := halls.NewService(halls.NewRepository(db), cache.NewMemoryService())
	svc := NewService(NewRepository(db), NewMemoryLocker(), showtimeService, hallService, cfg)
	showtimeService.SetSeatLifecycle(svc)

	require.NoError(t, svc.InitializeSeats(db, "s1", "h4"))
	require.NoError(t, svc.InitializeSeats(db, "s2", "h4"))

	return &fixture{db: db, svc: svc, showtimes: showtimeService}
}

func TestService_InitializeSeats(t *testing.T) {
	f := newFixture(t)

	var count int64
	require.NoError(t, f.db.Model(&SeatStatus{}).Where("showtime_id = ?", "s1").Count(&count).Error)
	assert.Equal(t, int64(60), count)

	// The composite key rejects a second status for the same seat
	err := f.db.Create(&SeatStatus{ShowtimeID: "s1", SeatID: "h4-A1", Status: StatusAvailable}).Error
	assert.Error(t, err)
}

func TestService_HoldSeats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hold, err := f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s1", SeatIDs: []string{"h4-C3", "h4-C4", "h4-C3"}})
	require.NoError(t, err)
	assert.Len(t, hold.Seats, 2)
	assert.Equal(t, 70.0, hold.TotalPrice)
	assert.Equal(t, 600, hold.TTL)

	_, err = f.svc.HoldSeats(ctx, "u2", SeatHoldRequest{ShowtimeID: "s1", SeatIDs: []string{"h4-C4", "h4-C5"}})
	assert.ErrorIs(t, err, ErrSeatsHeld)

	// Another user's hold shows as locked, the holder sees the seat as theirs
	other, err := f.svc.SeatMap(ctx, "s1", "u2")
	require.NoError(t, err)
	mine, err := f.svc.SeatMap(ctx, "s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, other.Summary.Locked)
	assert.Equal(t, 0, mine.Summary.Locked)

	view, err := f.svc.SeatView(ctx, "s1", "h4-C3", "u1")
	require.NoError(t, err)
	assert.True(t, view.HeldByMe)
	assert.Equal(t, StatusAvailable, view.Status)
}

func TestService_HoldSeatsRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s1"})
	assert.ErrorIs(t, err, ErrNoSeats)

	_, err = f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s1", SeatIDs: []string{"h4-A3", "h4-A4", "h4-A5", "h4-A6", "h4-A7"}})
	assert.ErrorIs(t, err, ErrTooManySeats)

	_, err = f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s1", SeatIDs: []string{"h1-A1"}})
	assert.ErrorIs(t, err, ErrSeatNotInHall)

	_, err = f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s2", SeatIDs: []string{"h4-A3"}})
	assert.ErrorIs(t, err, showtimes.ErrNotBookable)

	_, err = f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s9", SeatIDs: []string{"h4-A3"}})
	assert.ErrorIs(t, err, showtimes.ErrShowtimeNotFound)

	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return f.svc.MarkBooked(tx, "s1", []string{"h4-A3"})
	}))
	_, err = f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s1", SeatIDs: []string{"h4-A3"}})
	assert.ErrorIs(t, err, ErrSeatUnavailable)
}

func TestService_HoldSeatsPricingFailureLeavesNoHold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Create(&showtimes.Showtime{ID: "s3", MovieID: "m1", HallID: "h4", HallName: "Hall 4", HallType: halls.Hall4DX, Date: "2099-12-31", Time: "23:00", Price: -1, VIPPrice: 55, Status: showtimes.StatusScheduled}).Error)
	require.NoError(t, f.svc.InitializeSeats(f.db, "s3", "h4"))

	_, err := f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s3", SeatIDs: []string{"h4-C3"}})
	assert.ErrorIs(t, err, pricing.ErrNegativePrice)

	seatMap, err := f.svc.SeatMap(ctx, "s3", "u2")
	require.NoError(t, err)
	assert.Zero(t, seatMap.Summary.Locked)

	require.NoError(t, f.db.Model(&showtimes.Showtime{}).Where("id = ?", "s3").Update("price", 35).Error)
	hold, err := f.svc.HoldSeats(ctx, "u2", SeatHoldRequest{ShowtimeID: "s3", SeatIDs: []string{"h4-C3"}})
	require.NoError(t, err)
	assert.Equal(t, 35.0, hold.TotalPrice)
}

func TestService_MarkBookedGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return f.svc.MarkBooked(tx, "s1", []string{"h4-D1", "h4-D2"})
	}))

	// D2 is taken, so D3 must not be booked either
	err := f.db.Transaction(func(tx *gorm.DB) error {
		return f.svc.MarkBooked(tx, "s1", []string{"h4-D2", "h4-D3"})
	})
	assert.ErrorIs(t, err, ErrSeatConflict)

	booked, err := f.svc.CountBooked(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), booked)

	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return f.svc.MarkAvailable(tx, "s1", []string{"h4-D1", "h4-D2"})
	}))
	booked, err = f.svc.CountBooked(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, booked)
}

func TestService_ReleaseAndValidate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	hold, err := f.svc.HoldSeats(ctx, "u1", SeatHoldRequest{ShowtimeID: "s1", SeatIDs: []string{"h4-B2"}})
	require.NoError(t, err)

	result, err := f.svc.ValidateHold(ctx, hold.HoldID, "u1")
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, "s1", result.Details.ShowtimeID)

	result, err = f.svc.ValidateHold(ctx, hold.HoldID, "u2")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	holds, err := f.svc.GetUserHolds(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, holds, 1)

	assert.ErrorIs(t, f.svc.ReleaseHold(ctx, hold.HoldID, "u2"), ErrHoldForbidden)
	require.NoError(t, f.svc.ReleaseHold(ctx, hold.HoldID, "u1"))
	assert.ErrorIs(t, f.svc.ReleaseHold(ctx, hold.HoldID, "u1"), ErrHoldNotFound)

	result, err = f.svc.ValidateHold(ctx, hold.HoldID, "u1")
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestService_DeleteShowtimeWithBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.db.Transaction(func(tx *gorm.DB) error {
		return f.svc.MarkBooked(tx, "s1", []string{"h4-E1"})
	}))
	assert.ErrorIs(t, f.showtimes.DeleteShowtime(ctx, "s1"), showtimes.ErrShowtimeHasBookings)

	require.NoError(t, f.showtimes.DeleteShowtime(ctx, "s2"))
	var count int64
	require.NoError(t, f.db.Model(&SeatStatus{}).Where("showtime_id = ?", "s2").Count(&count).Error)
	assert.Zero(t, count)
}
