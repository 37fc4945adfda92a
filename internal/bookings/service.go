package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"cineplex/internal/concessions"
	"cineplex/internal/membership"
	"cineplex/internal/movies"
	"cineplex/internal/notifications"
	"cineplex/internal/pricing"
	"cineplex/internal/seats"
	"cineplex/internal/selection"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/constants"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"
	"cineplex/internal/validation"
	"cineplex/pkg/cache"
	"cineplex/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const referenceAttempts = 5

// cardMethods need card details at checkout
var cardMethods = map[string]bool{
	"credit card": true,
	"debit card":  true,
}

var ErrRefundQueryIncomplete = errors.New("booking_id or amount and hours_before_showtime are required")

// PaymentError carries per-field messages from the card form
type PaymentError struct {
	Fields validation.Errors
}

func (e *PaymentError) Error() string { return ErrInvalidPayment.Error() }

func (e *PaymentError) Unwrap() error { return ErrInvalidPayment }

type Service interface {
	Checkout(ctx context.Context, userID string, req CheckoutRequest) (*CheckoutResponse, error)
	Cancel(ctx context.Context, bookingID, userID string) (*CancelResponse, error)
	RefundQuote(ctx context.Context, userID string, req RefundQuoteRequest) (*RefundQuoteResponse, error)

	// GetBooking returns a booking to its owner, or to anyone when staff is true
	GetBooking(ctx context.Context, bookingID, userID string, staff bool) (*Booking, error)
	UserBookings(ctx context.Context, userID string, query ListQuery) (*BookingListResponse, error)

	AdminList(ctx context.Context, query AdminListQuery) (*AdminBookingList, error)
	MarkCompleted(ctx context.Context, bookingID string) (*Booking, error)
}

// Deps groups the collaborators of the booking service
type Deps struct {
	Selection   selection.Service
	Seats       seats.Service
	Showtimes   showtimes.Service
	Movies      movies.Service
	Users       users.Service
	Concessions concessions.Service
	Membership  membership.Service
	Publisher   notifications.Publisher
	Cache       cache.Service
}

type service struct {
	repo Repository
	Deps
	loc      *time.Location
	currency string
	now      func() time.Time
	log      *logger.Logger
}

func NewService(repo Repository, deps Deps, cfg *config.Config) Service {
	return &service{
		repo:     repo,
		Deps:     deps,
		loc:      cfg.CinemaLocation(),
		currency: cfg.Booking.Currency,
		now:      time.Now,
		log:      logger.GetDefault(),
	}
}

//  CHECKOUT

func (s *service) Checkout(ctx context.Context, userID string, req CheckoutRequest) (*CheckoutResponse, error) {
	if err := s.checkPayment(req); err != nil {
		return nil, err
	}

	state, err := s.Selection.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.ShowtimeID == "" || len(state.SeatIDs) == 0 {
		return nil, ErrEmptySelection
	}

	if err := s.checkHold(ctx, req.HoldID, userID, state); err != nil {
		return nil, err
	}

	st, err := s.Showtimes.EnsureBookable(ctx, state.ShowtimeID)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	quote, err := s.Selection.Price(ctx, *state, user.MembershipTier)
	if err != nil {
		return nil, err
	}

	reference, err := s.referenceCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	booking := &Booking{
		ID:              uuid.New().String(),
		ReferenceCode:   reference,
		UserID:          userID,
		MovieID:         st.MovieID,
		MovieTitle:      quote.MovieTitle,
		ShowtimeID:      st.ID,
		Date:            st.Date,
		Time:            st.Time,
		Hall:            st.HallLabel(),
		Seats:           quote.SeatLabels(),
		SeatIDs:         quote.SeatIDs(),
		Tickets:         quote.Tickets,
		Concessions:     quote.Concessions,
		TicketTotal:     quote.TicketTotal,
		ConcessionTotal: quote.ConcessionTotal,
		Discount:        quote.Discount,
		Tax:             quote.Tax,
		TotalAmount:     quote.Total,
		PointsEarned:    quote.PointsToEarn,
		PromoCode:       quote.PromoCode,
		Status:          StatusConfirmed,
		PaymentMethod:   req.PaymentMethod,
		TransactionID:   generateTransactionID(s.now()),
		CreatedAt:       s.now(),
	}
	if movie, err := s.Movies.GetMovie(ctx, st.MovieID); err == nil {
		booking.PosterURL = movie.PosterURL
		if booking.MovieTitle == "" {
			booking.MovieTitle = movie.Title
		}
	}

	var award *membership.AwardResult
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.Seats.MarkBooked(tx, st.ID, booking.SeatIDs); err != nil {
			return err
		}
		if err := s.Concessions.DecrementStock(tx, state.Cart); err != nil {
			return err
		}
		if err := s.repo.Create(tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		award, err = s.Membership.Award(tx, userID, booking.PointsEarned, "Booking "+booking.ReferenceCode, booking.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	userLog := s.log.WithUserID(userID)
	if err := s.Seats.ReleaseHold(ctx, req.HoldID, userID); err != nil {
		userLog.WithError(err).Warn("failed to release hold after checkout", "hold_id", req.HoldID)
	}
	if err := s.Selection.Clear(ctx, userID); err != nil {
		userLog.WithError(err).Warn("failed to clear selection after checkout")
	}
	if !state.Cart.IsEmpty() {
		s.Concessions.InvalidateCache(ctx)
	}
	s.invalidateAnalytics(ctx)

	s.publishConfirmed(ctx, user, booking, award)
	s.log.LogBookingCreated(ctx, booking.ID, booking.ShowtimeID, userID, booking.TotalAmount)

	return &CheckoutResponse{
		Booking:       booking,
		PointsBalance: award.PointsBalance,
		Tier:          award.Tier,
		TierUpgraded:  award.Upgraded,
		Currency:      s.currency,
	}, nil
}

func (s *service) checkPayment(req CheckoutRequest) error {
	if !cardMethods[strings.ToLower(strings.TrimSpace(req.PaymentMethod))] {
		return nil
	}
	if req.Card == nil {
		return &PaymentError{Fields: validation.Errors{"card_number": "Card details are required"}}
	}
	if errs := validation.ValidatePayment(*req.Card, s.now()); len(errs) > 0 {
		return &PaymentError{Fields: errs}
	}
	return nil
}

// checkHold requires a live hold of this user covering exactly the selected seats
func (s *service) checkHold(ctx context.Context, holdID, userID string, state *selection.State) error {
	result, err := s.Seats.ValidateHold(ctx, holdID, userID)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("%w: %s", ErrHoldInvalid, result.Reason)
	}
	if result.Details.ShowtimeID != state.ShowtimeID || !sameSeats(result.Details.SeatIDs, state.SeatIDs) {
		return ErrHoldMismatch
	}
	return nil
}

func sameSeats(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

//  CANCELLATION

func (s *service) Cancel(ctx context.Context, bookingID, userID string) (*CancelResponse, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}
	if !booking.Status.CanBeCancelled() {
		return nil, ErrNotCancellable
	}

	hours, err := booking.HoursBeforeShowtime(s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	refund := pricing.CalculateRefund(booking.TotalAmount, hours)
	if !refund.CanRefund {
		return nil, ErrNotRefundable
	}
	refund.RefundAmount = pricing.RoundMoney(refund.RefundAmount)

	now := s.now()
	var reversed int
	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.Cancel(tx, booking.ID, refund.RefundAmount, now); err != nil {
			return err
		}
		if len(booking.SeatIDs) > 0 {
			if err := s.Seats.MarkAvailable(tx, booking.ShowtimeID, booking.SeatIDs); err != nil {
				return err
			}
		}
		reversed, err = s.Membership.Reverse(tx, userID, booking.PointsEarned, "Cancelled "+booking.ReferenceCode, booking.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	booking.Status = StatusCancelled
	booking.RefundAmount = refund.RefundAmount
	booking.CancelledAt = &now
	booking.UpdatedAt = now

	s.invalidateAnalytics(ctx)
	s.publishCancelled(ctx, booking, refund)
	s.log.LogBookingCancelled(ctx, booking.ID, userID, refund.RefundAmount)

	return &CancelResponse{Booking: booking, Refund: refund, PointsReversed: reversed}, nil
}

func (s *service) RefundQuote(ctx context.Context, userID string, req RefundQuoteRequest) (*RefundQuoteResponse, error) {
	if req.BookingID == "" {
		if req.Amount == nil || req.HoursBeforeShowtime == nil {
			return nil, ErrRefundQueryIncomplete
		}
		return &RefundQuoteResponse{
			RefundQuote:         pricing.CalculateRefund(*req.Amount, *req.HoursBeforeShowtime),
			OriginalAmount:      *req.Amount,
			HoursBeforeShowtime: *req.HoursBeforeShowtime,
		}, nil
	}

	booking, err := s.repo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}
	hours, err := booking.HoursBeforeShowtime(s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	resp := &RefundQuoteResponse{
		OriginalAmount:      booking.TotalAmount,
		HoursBeforeShowtime: hours,
		BookingID:           booking.ID,
	}
	if booking.Status.CanBeCancelled() {
		resp.RefundQuote = pricing.CalculateRefund(booking.TotalAmount, hours)
		resp.RefundAmount = pricing.RoundMoney(resp.RefundAmount)
	}
	return resp, nil
}

//  QUERIES

func (s *service) GetBooking(ctx context.Context, bookingID, userID string, staff bool) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !staff && booking.UserID != userID {
		return nil, ErrNotOwner
	}
	return booking, nil
}

func (s *service) UserBookings(ctx context.Context, userID string, query ListQuery) (*BookingListResponse, error) {
	bookings, total, err := s.repo.ListByUser(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	limit, offset := normalizePage(query.Limit, query.Offset)
	return &BookingListResponse{Bookings: bookings, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *service) AdminList(ctx context.Context, query AdminListQuery) (*AdminBookingList, error) {
	bookings, total, err := s.repo.ListAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	revenue, err := s.repo.Revenue(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	limit, offset := normalizePage(query.Limit, query.Offset)
	return &AdminBookingList{
		BookingListResponse: BookingListResponse{Bookings: bookings, Total: total, Limit: limit, Offset: offset},
		Revenue:             pricing.RoundMoney(revenue),
	}, nil
}

func (s *service) MarkCompleted(ctx context.Context, bookingID string) (*Booking, error) {
	if err := s.repo.MarkCompleted(ctx, bookingID); err != nil {
		if errors.Is(err, ErrNotCompletable) {
			if _, getErr := s.repo.GetByID(ctx, bookingID); getErr != nil {
				return nil, getErr
			}
		}
		return nil, err
	}
	s.invalidateAnalytics(ctx)
	return s.repo.GetByID(ctx, bookingID)
}

//  HELPERS

func (s *service) invalidateAnalytics(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.DeletePattern(ctx, constants.AnalyticsPattern()); err != nil {
		s.log.WithError(err).Warn("failed to invalidate analytics cache")
	}
}

func (s *service) publish(ctx context.Context, event *notifications.Event) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.log.WithFields(map[string]interface{}{
			"type":       event.Type,
			"booking_id": event.BookingID,
		}).WithError(err).Warn("failed to publish booking event")
	}
}

func (s *service) publishConfirmed(ctx context.Context, user *users.User, b *Booking, award *membership.AwardResult) {
	s.publish(ctx, notifications.NewEvent(notifications.EventBookingConfirmed, b.UserID).
		WithBooking(b.ID, b.ReferenceCode).
		With("email", user.Email).
		With("name", user.Name).
		With("movie_title", b.MovieTitle).
		With("hall", b.Hall).
		With("date", b.Date).
		With("time", b.Time).
		With("seats", strings.Join(b.Seats, ", ")).
		With("currency", s.currency).
		With("total", b.TotalAmount).
		With("points", b.PointsEarned))

	if award.PointsEarned > 0 {
		s.publish(ctx, notifications.NewEvent(notifications.EventPointsEarned, b.UserID).
			WithBooking(b.ID, b.ReferenceCode).
			With("points", award.PointsEarned).
			With("points_balance", award.PointsBalance))
	}
	if award.Upgraded {
		s.publish(ctx, notifications.NewEvent(notifications.EventTierUpgraded, b.UserID).
			With("email", user.Email).
			With("name", user.Name).
			With("tier", award.Tier).
			With("points_balance", award.PointsBalance))
	}
}

func (s *service) publishCancelled(ctx context.Context, b *Booking, refund pricing.RefundQuote) {
	event := notifications.NewEvent(notifications.EventBookingCancelled, b.UserID).
		WithBooking(b.ID, b.ReferenceCode).
		With("movie_title", b.MovieTitle).
		With("currency", s.currency).
		With("refund", refund.RefundAmount).
		With("refund_percentage", refund.RefundPercentage)
	if user, err := s.Users.GetUser(ctx, b.UserID); err == nil {
		event.With("email", user.Email).With("name", user.Name)
	}
	s.publish(ctx, event)
}

// referenceCode draws GX-<year>-<6 digits> until it finds an unused one
func (s *service) referenceCode(ctx context.Context) (string, error) {
	year := s.now().In(s.loc).Year()
	for i := 0; i < referenceAttempts; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(1000000))
		if err != nil {
			return "", err
		}
		code := fmt.Sprintf("GX-%d-%06d", year, n.Int64())
		exists, err := s.repo.ReferenceExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("no free booking reference")
}

// generateTransactionID generates a mock payment transaction id
func generateTransactionID(now time.Time) string {
	short := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("TXN_%d_%s", now.Unix(), strings.ToUpper(short))
}
