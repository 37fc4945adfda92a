package bookings

import (
	"context"
	"regexp"
	"testing"
	"time"

	"cineplex/internal/concessions"
	"cineplex/internal/halls"
	"cineplex/internal/membership"
	"cineplex/internal/movies"
	"cineplex/internal/notifications"
	"cineplex/internal/pricing"
	"cineplex/internal/seats"
	"cineplex/internal/selection"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/testutil"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"
	"cineplex/internal/validation"
	"cineplex/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var referencePattern = regexp.MustCompile(`^GX-2099-\d{6}$`)

type fixture struct {
	db        *gorm.DB
	svc       *service
	selection selection.Service
	seats     seats.Service
	publisher *notifications.LogPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t,
		&movies.Movie{}, &halls.Cinema{}, &halls.Hall{}, &halls.Seat{}, &showtimes.Showtime{},
		&seats.SeatStatus{}, &concessions.Item{}, &users.User{},
		&membership.Reward{}, &membership.PointsTransaction{}, &Booking{},
	)

	require.NoError(t, db.Create(&movies.Movie{ID: "m1", Title: "Neon Horizon", PosterURL: "https://img.example/neon.jpg", Status: movies.StatusNowShowing}).Error)
	require.NoError(t, db.Create(&halls.Hall{ID: "h4", CinemaID: "c1", Name: "Hall 4", Type: halls.Hall4DX, Rows: 6, SeatsPerRow: 10, TotalSeats: 60, HasVIPRows: true, Status: halls.StatusActive}).Error)
	layout, err := halls.GenerateSeats("h4", 6, 10, true)
	require.NoError(t, err)
	require.NoError(t, db.Create(&layout).Error)
	require.NoError(t, db.Create(&showtimes.Showtime{ID: "s1", MovieID: "m1", HallID: "h4", HallName: "Hall 4", HallType: halls.Hall4DX, Date: "2099-12-31", Time: "20:30", Price: 35, VIPPrice: 55, Status: showtimes.StatusScheduled}).Error)
	require.NoError(t, db.Create(&concessions.Item{ID: "ci1", Name: "Classic Popcorn (Large)", Price: 12.90, Category: concessions.CategoryPopcorn, StockLevel: 50, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&[]users.User{
		{ID: "u1", Name: "Alex Chen", Email: "alex.chen@email.com", Password: "x", Role: users.RoleCustomer, Status: users.StatusActive, MembershipTier: "Gold", PointsBalance: 2450},
		{ID: "u2", Name: "Sarah Lim", Email: "sarah.lim@email.com", Password: "x", Role: users.RoleCustomer, Status: users.StatusActive, MembershipTier: "Bronze"},
	}).Error)

	cfg := &config.Config{}
	cfg.Redis.SeatHoldTTL = 10 * time.Minute
	cfg.Booking.MaxSeatsPerHold = 6
	cfg.Booking.TaxRate = pricing.DefaultTaxRate
	cfg.Booking.Currency = "MYR"

	memCache := cache.NewMemoryService()
	userRepo := users.NewRepository(db)
	userService := users.NewService(userRepo)
	movieService := movies.NewService(movies.NewRepository(db), memCache)
	hallService := halls.NewService(halls.NewRepository(db), memCache)
	showtimeService := showtimes.NewService(showtimes.NewRepository(db), movies.NewRepository(db), halls.NewRepository(db), time.UTC)
	seatService := seats.NewService(seats.NewRepository(db), seats.NewMemoryLocker(), showtimeService, hallService, cfg)
	showtimeService.SetSeatLifecycle(seatService)
	require.NoError(t, seatService.InitializeSeats(db, "s1", "h4"))
	concessionService := concessions.NewService(concessions.NewRepository(db), memCache)

	selectionService := selection.NewService(
		selection.NewCacheStore(memCache, time.Hour),
		movieService, showtimeService, seatService, hallService, concessionService, userService, cfg,
	)
	publisher := notifications.NewLogPublisher()

	svc := NewService(NewRepository(db), Deps{
		Selection:   selectionService,
		Seats:       seatService,
		Showtimes:   showtimeService,
		Movies:      movieService,
		Users:       userService,
		Concessions: concessionService,
		Membership:  membership.NewService(membership.NewRepository(db), userRepo),
		Publisher:   publisher,
		Cache:       memCache,
	}, cfg).(*service)
	svc.now = func() time.Time { return time.Date(2099, 12, 30, 10, 0, 0, 0, time.UTC) }

	return &fixture{db: db, svc: svc, selection: selectionService, seats: seatService, publisher: publisher}
}

// prepare builds a selection for u1 and holds the given seats
func (f *fixture) prepare(t *testing.T, selected []string, held []string) string {
	t.Helper()
	ctx := context.Background()
	_, err := f.selection.SelectShowtime(ctx, "u1", "s1")
	require.NoError(t, err)
	for _, id := range selected {
		_, err = f.selection.ToggleSeat(ctx, "u1", id)
		require.NoError(t, err)
	}
	hold, err := f.seats.HoldSeats(ctx, "u1", seats.SeatHoldRequest{ShowtimeID: "s1", SeatIDs: held})
	require.NoError(t, err)
	return hold.HoldID
}

func (f *fixture) seatStatus(t *testing.T, seatID string) seats.Status {
	t.Helper()
	var row seats.SeatStatus
	require.NoError(t, f.db.Where("showtime_id = ? AND seat_id = ?", "s1", seatID).First(&row).Error)
	return row.Status
}

func TestCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	holdID := f.prepare(t, []string{"h4-C3", "h4-C4"}, []string{"h4-C3", "h4-C4"})
	_, err := f.selection.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)

	result, err := f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: holdID, PaymentMethod: "GrabPay"})
	require.NoError(t, err)

	b := result.Booking
	assert.Regexp(t, referencePattern, b.ReferenceCode)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "Neon Horizon", b.MovieTitle)
	assert.Equal(t, "https://img.example/neon.jpg", b.PosterURL)
	assert.Equal(t, "Hall 4 (4DX)", b.Hall)
	assert.Equal(t, []string{"C3", "C4"}, b.Seats)
	assert.InDelta(t, 70.0, b.TicketTotal, 0.001)
	assert.InDelta(t, 12.90, b.ConcessionTotal, 0.001)
	assert.InDelta(t, 8.29, b.Discount, 0.001)
	assert.InDelta(t, 4.48, b.Tax, 0.001)
	assert.InDelta(t, 79.09, b.TotalAmount, 0.001)
	assert.Equal(t, 118, b.PointsEarned)
	assert.Regexp(t, `^TXN_\d+_[0-9A-F]{8}$`, b.TransactionID)

	assert.Equal(t, 2568, result.PointsBalance)
	assert.Equal(t, membership.TierGold, result.Tier)
	assert.False(t, result.TierUpgraded)

	assert.Equal(t, seats.StatusBooked, f.seatStatus(t, "h4-C3"))
	assert.Equal(t, seats.StatusBooked, f.seatStatus(t, "h4-C4"))

	var item concessions.Item
	require.NoError(t, f.db.First(&item, "id = ?", "ci1").Error)
	assert.Equal(t, 49, item.StockLevel)

	var earned membership.PointsTransaction
	require.NoError(t, f.db.Where("user_id = ? AND booking_id = ?", "u1", b.ID).First(&earned).Error)
	assert.Equal(t, 118, earned.Points)

	state, err := f.selection.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, state.IsEmpty())

	hold, err := f.seats.ValidateHold(ctx, holdID, "u1")
	require.NoError(t, err)
	assert.False(t, hold.Valid)

	events := f.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, notifications.EventBookingConfirmed, events[0].Type)
	assert.Equal(t, b.ReferenceCode, events[0].ReferenceCode)
	assert.Equal(t, notifications.EventPointsEarned, events[1].Type)
}

func TestCheckout_TierUpgrade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.db.Model(&users.User{}).Where("id = ?", "u1").
		Updates(map[string]interface{}{"membership_tier": "Silver", "points_balance": 2950}).Error)

	holdID := f.prepare(t, []string{"h4-C3", "h4-C4"}, []string{"h4-C3", "h4-C4"})
	result, err := f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: holdID, PaymentMethod: "Touch 'n Go"})
	require.NoError(t, err)

	assert.True(t, result.TierUpgraded)
	assert.Equal(t, membership.TierGold, result.Tier)

	types := []notifications.EventType{}
	for _, e := range f.publisher.Events() {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, notifications.EventTierUpgraded)
}

func TestCheckout_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: "hold_x", PaymentMethod: "GrabPay"})
	assert.ErrorIs(t, err, ErrEmptySelection)

	holdID := f.prepare(t, []string{"h4-C3", "h4-C4"}, []string{"h4-C3"})

	_, err = f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: holdID, PaymentMethod: "GrabPay"})
	assert.ErrorIs(t, err, ErrHoldMismatch)

	_, err = f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: "hold_missing", PaymentMethod: "GrabPay"})
	assert.ErrorIs(t, err, ErrHoldInvalid)

	_, err = f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: holdID, PaymentMethod: "Credit Card"})
	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.Contains(t, payErr.Fields, "card_number")

	_, err = f.svc.Checkout(ctx, "u1", CheckoutRequest{
		HoldID:        holdID,
		PaymentMethod: "credit card",
		Card:          &validation.PaymentDetails{CardNumber: "4111111111111112", CVV: "12", Expiry: "13/30", HolderName: ""},
	})
	require.ErrorAs(t, err, &payErr)
	assert.Equal(t, []string{"card_number", "cvv", "expiry", "holder_name"}, payErr.Fields.Fields())

	var count int64
	require.NoError(t, f.db.Model(&Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckout_SeatConflictRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	holdID := f.prepare(t, []string{"h4-C3"}, []string{"h4-C3"})
	_, err := f.selection.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)

	// sold at the box office after the hold was taken
	require.NoError(t, f.db.Model(&seats.SeatStatus{}).
		Where("showtime_id = ? AND seat_id = ?", "s1", "h4-C3").
		Update("status", seats.StatusBooked).Error)

	_, err = f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: holdID, PaymentMethod: "GrabPay"})
	assert.ErrorIs(t, err, seats.ErrSeatConflict)

	var count int64
	require.NoError(t, f.db.Model(&Booking{}).Count(&count).Error)
	assert.Zero(t, count)

	var item concessions.Item
	require.NoError(t, f.db.First(&item, "id = ?", "ci1").Error)
	assert.Equal(t, 50, item.StockLevel)

	var user users.User
	require.NoError(t, f.db.First(&user, "id = ?", "u1").Error)
	assert.Equal(t, 2450, user.PointsBalance)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	holdID := f.prepare(t, []string{"h4-C3", "h4-C4"}, []string{"h4-C3", "h4-C4"})
	_, err := f.selection.AddToCart(ctx, "u1", "ci1")
	require.NoError(t, err)
	checkout, err := f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: holdID, PaymentMethod: "GrabPay"})
	require.NoError(t, err)
	id := checkout.Booking.ID

	_, err = f.svc.Cancel(ctx, id, "u2")
	assert.ErrorIs(t, err, ErrNotOwner)

	// 15.5 hours before the screening
	f.svc.now = func() time.Time { return time.Date(2099, 12, 31, 5, 0, 0, 0, time.UTC) }
	result, err := f.svc.Cancel(ctx, id, "u1")
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, result.Booking.Status)
	assert.InDelta(t, 75.0, result.Refund.RefundPercentage, 0.001)
	assert.InDelta(t, 59.32, result.Refund.RefundAmount, 0.001)
	assert.Equal(t, 118, result.PointsReversed)

	assert.Equal(t, seats.StatusAvailable, f.seatStatus(t, "h4-C3"))
	assert.Equal(t, seats.StatusAvailable, f.seatStatus(t, "h4-C4"))

	stored, err := f.svc.GetBooking(ctx, id, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
	assert.InDelta(t, 59.32, stored.RefundAmount, 0.001)
	require.NotNil(t, stored.CancelledAt)

	var user users.User
	require.NoError(t, f.db.First(&user, "id = ?", "u1").Error)
	assert.Equal(t, 2450, user.PointsBalance)
	assert.Equal(t, "Gold", user.MembershipTier)

	_, err = f.svc.Cancel(ctx, id, "u1")
	assert.ErrorIs(t, err, ErrNotCancellable)

	last := f.publisher.Events()[len(f.publisher.Events())-1]
	assert.Equal(t, notifications.EventBookingCancelled, last.Type)
}

func TestCancel_TooLate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	holdID := f.prepare(t, []string{"h4-D5"}, []string{"h4-D5"})
	checkout, err := f.svc.Checkout(ctx, "u1", CheckoutRequest{HoldID: holdID, PaymentMethod: "GrabPay"})
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Date(2099, 12, 31, 16, 0, 0, 0, time.UTC) }
	_, err = f.svc.Cancel(ctx, checkout.Booking.ID, "u1")
	assert.ErrorIs(t, err, ErrNotRefundable)

	assert.Equal(t, seats.StatusBooked, f.seatStatus(t, "h4-D5"))
}

func seedHistory(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2099, 12, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]Booking{
		{ID: "b1", ReferenceCode: "GX-2099-001234", UserID: "u1", MovieTitle: "Neon Horizon", Date: "2099-12-31", Time: "19:30", Hall: "Hall 1 (IMAX)", Seats: []string{"E5", "E6"}, TicketTotal: 90, ConcessionTotal: 25, TotalAmount: 115, Status: StatusConfirmed, PaymentMethod: "Credit Card", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "b2", ReferenceCode: "GX-2099-001122", UserID: "u1", MovieTitle: "Shadow Protocol", Date: "2099-12-02", Time: "14:00", Hall: "Hall 2 (Dolby)", Seats: []string{"D7", "D8", "D9"}, TicketTotal: 126, ConcessionTotal: 38, TotalAmount: 164, Status: StatusCompleted, PaymentMethod: "GrabPay", CreatedAt: base},
		{ID: "b3", ReferenceCode: "GX-2099-009999", UserID: "u2", MovieTitle: "Neon Horizon", Date: "2099-12-31", Time: "19:30", Hall: "Hall 1 (IMAX)", Seats: []string{"A1"}, TotalAmount: 40, Status: StatusCancelled, PaymentMethod: "GrabPay", CreatedAt: base.Add(time.Hour)},
	}).Error)
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedHistory(t, f.db)

	mine, err := f.svc.UserBookings(ctx, "u1", ListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, mine.Total)
	require.Len(t, mine.Bookings, 2)
	assert.Equal(t, "b1", mine.Bookings[0].ID)
	assert.Equal(t, []string{"D7", "D8", "D9"}, mine.Bookings[1].Seats)
	assert.Equal(t, 10, mine.Limit)

	paged, err := f.svc.UserBookings(ctx, "u1", ListQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, paged.Bookings, 1)
	assert.Equal(t, "b2", paged.Bookings[0].ID)

	_, err = f.svc.GetBooking(ctx, "b3", "u1", false)
	assert.ErrorIs(t, err, ErrNotOwner)
	staffView, err := f.svc.GetBooking(ctx, "b3", "u9", true)
	require.NoError(t, err)
	assert.Equal(t, "u2", staffView.UserID)
	_, err = f.svc.GetBooking(ctx, "b404", "u1", true)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	all, err := f.svc.AdminList(ctx, AdminListQuery{Status: "all"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
	assert.InDelta(t, 279.0, all.Revenue, 0.001)

	shadow, err := f.svc.AdminList(ctx, AdminListQuery{Search: "SHADOW"})
	require.NoError(t, err)
	require.Len(t, shadow.Bookings, 1)
	assert.Equal(t, "b2", shadow.Bookings[0].ID)

	byRef, err := f.svc.AdminList(ctx, AdminListQuery{Search: "009999"})
	require.NoError(t, err)
	require.Len(t, byRef.Bookings, 1)
	assert.Equal(t, "b3", byRef.Bookings[0].ID)

	cancelled, err := f.svc.AdminList(ctx, AdminListQuery{Status: "cancelled"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, cancelled.Total)
	assert.Zero(t, cancelled.Revenue)
}

func TestMarkCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedHistory(t, f.db)

	b, err := f.svc.MarkCompleted(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, b.Status)

	_, err = f.svc.MarkCompleted(ctx, "b1")
	assert.ErrorIs(t, err, ErrNotCompletable)

	_, err = f.svc.MarkCompleted(ctx, "b404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRefundQuote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedHistory(t, f.db)

	amount, hours := 100.0, 13.0
	q, err := f.svc.RefundQuote(ctx, "", RefundQuoteRequest{Amount: &amount, HoursBeforeShowtime: &hours})
	require.NoError(t, err)
	assert.True(t, q.CanRefund)
	assert.InDelta(t, 75.0, q.RefundAmount, 0.001)

	_, err = f.svc.RefundQuote(ctx, "", RefundQuoteRequest{Amount: &amount})
	assert.ErrorIs(t, err, ErrRefundQueryIncomplete)

	// b1 starts 2099-12-31 19:30, now is 2099-12-30 10:00
	q, err = f.svc.RefundQuote(ctx, "u1", RefundQuoteRequest{BookingID: "b1"})
	require.NoError(t, err)
	assert.InDelta(t, 33.5, q.HoursBeforeShowtime, 0.001)
	assert.InDelta(t, 115.0, q.RefundAmount, 0.001)
	assert.InDelta(t, 100.0, q.RefundPercentage, 0.001)

	q, err = f.svc.RefundQuote(ctx, "u1", RefundQuoteRequest{BookingID: "b2"})
	require.NoError(t, err)
	assert.False(t, q.CanRefund)

	_, err = f.svc.RefundQuote(ctx, "u2", RefundQuoteRequest{BookingID: "b1"})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.False(t, StatusCompleted.CanBeCancelled())
	assert.True(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
	assert.False(t, Status("pending").IsValid())
}
