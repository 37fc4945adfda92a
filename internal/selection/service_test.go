package selection

import (
	"context"
	"testing"
	"time"

	"cineplex/internal/concessions"
	"cineplex/internal/halls"
	"cineplex/internal/movies"
	"cineplex/internal/pricing"
	"cineplex/internal/seats"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/testutil"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"
	"cineplex/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db    *gorm.DB
	svc   Service
	seats seats.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t,
		&movies.Movie{}, &halls.Cinema{}, &halls.Hall{}, &halls.Seat{}, &showtimes.Showtime{},
		&seats.SeatStatus{}, &concessions.Item{}, &users.User{},
	)

	require.NoError(t, db.Create(&[]movies.Movie{
		{ID: "m1", Title: "Neon Horizon", Status: movies.StatusNowShowing},
		{ID: "m2", Title: "The Last Lighthouse", Status: movies.StatusComingSoon},
		{ID: "m3", Title: "Paper Tigers", Status: movies.StatusNowShowing},
	}).Error)
	require.NoError(t, db.Create(&halls.Hall{ID: "h4", CinemaID: "c1", Name: "Hall 4", Type: halls.Hall4DX, Rows: 6, SeatsPerRow: 10, TotalSeats: 60, HasVIPRows: true, Status: halls.StatusActive}).Error)
	layout, err := halls.GenerateSeats("h4", 6, 10, true)
	require.NoError(t, err)
	require.NoError(t, db.Create(&layout).Error)
	require.NoError(t, db.Create(&[]showtimes.Showtime{
		{ID: "s1", MovieID: "m1", HallID: "h4", HallName: "Hall 4", HallType: halls.Hall4DX, Date: "2099-12-31", Time: "20:30", Price: 35, VIPPrice: 55, Status: showtimes.StatusScheduled},
		{ID: "s2", MovieID: "m1", HallID: "h4", HallName: "Hall 4", HallType: halls.Hall4DX, Date: "2099-12-30", Time: "18:00", Price: 35, VIPPrice: 55, Status: showtimes.StatusScheduled},
		{ID: "s3", MovieID: "m3", HallID: "h4", HallName: "Hall 4", HallType: halls.Hall4DX, Date: "2099-12-31", Time: "13:00", Price: 35, VIPPrice: 55, Status: showtimes.StatusScheduled},
	}).Error)
	require.NoError(t, db.Create(&[]concessions.Item{
		{ID: "ci1", Name: "Classic Popcorn (Large)", Price: 12.90, Category: concessions.CategoryPopcorn, StockLevel: 50, IsAvailable: true},
		{ID: "ci2", Name: "Nachos with Cheese", Price: 14.90, Category: concessions.CategorySnacks, StockLevel: 0, IsAvailable: true},
		{ID: "ci3", Name: "Hot Dog", Price: 9.90, Category: concessions.CategorySnacks, StockLevel: 1, IsAvailable: true},
	}).Error)
	require.NoError(t, db.Model(&concessions.Item{}).Where("id = ?", "ci2").Update("is_available", false).Error)
	require.NoError(t, db.Create(&users.User{ID: "u1", Name: "Alex Chen", Email: "alex.chen@email.com", Password: "x", Role: users.RoleCustomer, Status: users.StatusActive, MembershipTier: "Gold", PointsBalance: 2450}).Error)

	cfg := &config.Config{}
	cfg.Redis.SeatHoldTTL = 10 * time.Minute
	cfg.Booking.MaxSeatsPerHold = 3
	cfg.Booking.TaxRate = pricing.DefaultTaxRate
	cfg.Booking.Currency = "MYR"

	memCache := cache.NewMemoryService()
	movieService := movies.NewService(movies.NewRepository(db), memCache)
	hallService := halls.NewService(halls.NewRepository(db), memCache)
	showtimeService := showtimes.NewService(showtimes.NewRepository(db), movies.NewRepository(db), halls.NewRepository(db), time.UTC)
	seatService := seats.NewService(seats.NewRepository(db), seats.NewMemoryLocker(), showtimeService, hallService, cfg)
	showtimeService.SetSeatLifecycle(seatService)
	for _, id := range []string{"s1", "s2", "s3"} {
		require.NoError(t, seatService.InitializeSeats(db, id, "h4"))
	}
	require.NoError(t, db.Model(&seats.SeatStatus{}).
		Where("showtime_id = ? AND seat_id = ?", "s1", "h4-B1").
		Update("status", seats.StatusBooked).Error)

	svc := NewService(
		NewCacheStore(memCache, time.Hour),
		movieService,
		showtimeService,
		seatService,
		hallService,
		concessions.NewService(concessions.NewRepository(db), memCache),
		users.NewService(users.NewRepository(db)),
		cfg,
	)
	return &fixture{db: db, svc: svc, seats: seatService}
}

func TestService_SelectMovieAndShowtime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SelectMovie(ctx, "u1", "m2")
	assert.ErrorIs(t, err, ErrMovieNotShowing)

	_, err = f.svc.SelectMovie(ctx, "u1", "m9")
	assert.ErrorIs(t, err, movies.ErrMovieNotFound)

	state, err := f.svc.SelectShowtime(ctx, "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "m1", state.MovieID)
	assert.Equal(t, "s1", state.ShowtimeID)
}

func TestService_ToggleSeat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.ToggleSeat(ctx, "u1", "h4-C3")
	assert.ErrorIs(t, err, ErrNoShowtime)

	_, err = f.svc.SelectShowtime(ctx, "u1", "s1")
	require.NoError(t, err)

	state, err := f.svc.ToggleSeat(ctx, "u1", "h4-C3")
	require.NoError(t, err)
	assert.Equal(t, []string{"h4-C3"}, state.SeatIDs)

	state, err = f.svc.ToggleSeat(ctx, "u1", "h4-C3")
	require.NoError(t, err)
	assert.Empty(t, state.SeatIDs)

	_, err = f.svc.ToggleSeat(ctx, "u1", "h4-B1")
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	_, err = f.svc.ToggleSeat(ctx, "u1", "h1-A1")
	assert.ErrorIs(t, err, seats.ErrSeatNotInHall)

	// A seat another customer is holding cannot be picked
	_, err = f.seats.HoldSeats(ctx, "u2", seats.SeatHoldRequest{ShowtimeID: "s1", SeatIDs: []string{"h4-D5"}})
	require.NoError(t, err)
	_, err = f.svc.ToggleSeat(ctx, "u1", "h4-D5")
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	for _, id := range []string{"h4-C1", "h4-C2", "h4-C3"} {
		_, err = f.svc.ToggleSeat(ctx, "u1", id)
		require.NoError(t, err)
	}
	_, err = f.svc.ToggleSeat(ctx, "u1", "h4-C4")
	assert.ErrorIs(t, err, seats.ErrTooManySeats)

	// Removing always succeeds
	state, err = f.svc.ToggleSeat(ctx, "u1", "h4-C1")
	require.NoError(t, err)
	assert.Equal(t, []string{"h4-C2", "h4-C3"}, state.SeatIDs)
}

func TestService_UpstreamChangesReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SelectShowtime(ctx, "u1", "s1")
	require.NoError(t, err)
	_, err = f.svc.ToggleSeat(ctx, "u1", "h4-C3")
	require.NoError(t, err)
	_, err = f.svc.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)

	state, err := f.svc.SelectShowtime(ctx, "u1", "s2")
	require.NoError(t, err)
	assert.Equal(t, "m1", state.MovieID)
	assert.Empty(t, state.SeatIDs)

	_, err = f.svc.ToggleSeat(ctx, "u1", "h4-C3")
	require.NoError(t, err)

	// Picking another movie's showtime behaves like a movie change
	state, err = f.svc.SelectShowtime(ctx, "u1", "s3")
	require.NoError(t, err)
	assert.Equal(t, "m3", state.MovieID)
	assert.Empty(t, state.SeatIDs)

	state, err = f.svc.SelectMovie(ctx, "u1", "m1")
	require.NoError(t, err)
	assert.Empty(t, state.ShowtimeID)
	assert.Empty(t, state.SeatIDs)
	assert.Equal(t, 1, state.Cart.Quantity("ci1"))
}

func TestService_Cart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	state, err := f.svc.AddToCart(ctx, "u1", "ci2")
	require.NoError(t, err)
	assert.True(t, state.Cart.IsEmpty())

	_, err = f.svc.AddToCart(ctx, "u1", "ci404")
	assert.ErrorIs(t, err, concessions.ErrItemNotFound)

	_, err = f.svc.AddToCart(ctx, "u1", "ci3")
	require.NoError(t, err)
	_, err = f.svc.AddToCart(ctx, "u1", "ci3")
	assert.ErrorIs(t, err, concessions.ErrInsufficientStock)

	state, err = f.svc.SetCartQuantity(ctx, "u1", "ci1", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Cart.Quantity("ci1"), "setting the quantity of an item not in the cart does nothing")

	_, err = f.svc.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)
	state, err = f.svc.SetCartQuantity(ctx, "u1", "ci1", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, state.Cart.TotalItems())

	state, err = f.svc.SetCartQuantity(ctx, "u1", "ci3", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Cart.Quantity("ci3"))

	state, err = f.svc.RemoveFromCart(ctx, "u1", "ci1")
	require.NoError(t, err)
	assert.True(t, state.Cart.IsEmpty())
}

func TestService_AddUnknownItemLeavesCartUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)

	_, err = f.svc.AddToCart(ctx, "u1", "ci404")
	assert.ErrorIs(t, err, concessions.ErrItemNotFound)

	state, err := f.svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Cart.TotalItems())
	assert.Equal(t, 1, state.Cart.Quantity("ci1"))
	assert.Zero(t, state.Cart.Quantity("ci404"))
}

func TestService_Promo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SetPromo(ctx, "u1", "BOGUS")
	assert.ErrorIs(t, err, ErrUnknownPromoCode)

	state, err := f.svc.SetPromo(ctx, "u1", " save20 ")
	require.NoError(t, err)
	assert.Equal(t, "SAVE20", state.PromoCode)

	state, err = f.svc.SetPromo(ctx, "u1", "")
	require.NoError(t, err)
	assert.Empty(t, state.PromoCode)
}

func TestService_Quote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.SelectShowtime(ctx, "u1", "s1")
	require.NoError(t, err)
	_, err = f.svc.ToggleSeat(ctx, "u1", "h4-C3")
	require.NoError(t, err)
	_, err = f.svc.ToggleSeat(ctx, "u1", "h4-C4")
	require.NoError(t, err)
	_, err = f.svc.SetTicketType(ctx, "u1", "h4-C4", "student")
	require.NoError(t, err)
	_, err = f.svc.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)
	_, err = f.svc.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)
	_, err = f.svc.SetPromo(ctx, "u1", "SAVE20")
	require.NoError(t, err)

	q, err := f.svc.Quote(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, q.Tickets, 2)
	assert.Equal(t, "C3", q.Tickets[0].Label)
	assert.InDelta(t, 35.0, q.Tickets[0].Price, 0.001)
	assert.Equal(t, pricing.TicketStudent, q.Tickets[1].TicketType)
	assert.InDelta(t, 28.0, q.Tickets[1].Price, 0.001)
	require.Len(t, q.Concessions, 1)
	assert.InDelta(t, 25.80, q.Concessions[0].Total, 0.001)

	assert.InDelta(t, 88.80, q.Subtotal, 0.001)
	assert.InDelta(t, 20.00, q.PromoDiscount, 0.001)
	assert.InDelta(t, 6.88, q.MemberDiscount, 0.001)
	assert.InDelta(t, 26.88, q.Discount, 0.001)
	assert.InDelta(t, 61.92, q.DiscountedSubtotal, 0.001)
	assert.InDelta(t, 3.72, q.Tax, 0.001)
	assert.InDelta(t, 65.64, q.Total, 0.001)
	assert.Equal(t, 97, q.PointsToEarn)
	assert.Equal(t, "Neon Horizon", q.MovieTitle)
	assert.Equal(t, "MYR", q.Currency)
}

func TestService_QuoteEmptySelection(t *testing.T) {
	f := newFixture(t)

	q, err := f.svc.Quote(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, q.Tickets)
	assert.Equal(t, 0.0, q.Total)
	assert.Equal(t, 0, q.PointsToEarn)
}
