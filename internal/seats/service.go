package seats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cineplex/internal/halls"
	"cineplex/internal/pricing"
	"cineplex/internal/showtimes"
	"cineplex/internal/shared/config"
	"cineplex/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	// Showtime lifecycle
	InitializeSeats(tx *gorm.DB, showtimeID, hallID string) error
	RemoveSeats(tx *gorm.DB, showtimeID string) error
	CountBooked(ctx context.Context, showtimeID string) (int64, error)

	// Seat map and availability
	SeatMap(ctx context.Context, showtimeID, userID string) (*SeatMapResponse, error)
	SeatView(ctx context.Context, showtimeID, seatID, userID string) (*SeatView, error)

	// Seat holding
	HoldSeats(ctx context.Context, userID string, req SeatHoldRequest) (*SeatHoldResponse, error)
	ReleaseHold(ctx context.Context, holdID, userID string) error
	ValidateHold(ctx context.Context, holdID, userID string) (*HoldValidationResult, error)
	GetUserHolds(ctx context.Context, userID string) ([]HoldDetails, error)

	// Commit
	MarkBooked(tx *gorm.DB, showtimeID string, seatIDs []string) error
	MarkAvailable(tx *gorm.DB, showtimeID string, seatIDs []string) error
}

type service struct {
	repo      Repository
	locker    Locker
	showtimes showtimes.Service
	halls     halls.Service
	holdTTL   time.Duration
	maxSeats  int
	log       *logger.Logger
}

func NewService(repo Repository, locker Locker, showtimeService showtimes.Service, hallService halls.Service, cfg *config.Config) Service {
	return &service{
		repo:      repo,
		locker:    locker,
		showtimes: showtimeService,
		halls:     hallService,
		holdTTL:   cfg.Redis.SeatHoldTTL,
		maxSeats:  cfg.Booking.MaxSeatsPerHold,
		log:       logger.GetDefault(),
	}
}

//  SHOWTIME LIFECYCLE

func (s *service) InitializeSeats(tx *gorm.DB, showtimeID, hallID string) error {
	return s.repo.InitializeForShowtime(tx, showtimeID, hallID)
}

func (s *service) RemoveSeats(tx *gorm.DB, showtimeID string) error {
	return s.repo.DeleteForShowtime(tx, showtimeID)
}

func (s *service) CountBooked(ctx context.Context, showtimeID string) (int64, error) {
	return s.repo.CountByStatus(ctx, showtimeID, StatusBooked)
}

//  SEAT MAP

func (s *service) SeatMap(ctx context.Context, showtimeID, userID string) (*SeatMapResponse, error) {
	st, err := s.showtimes.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	layout, err := s.halls.GetSeatLayout(ctx, st.HallID)
	if err != nil {
		return nil, err
	}

	views, err := s.viewsFor(ctx, st, layout.Seats, userID)
	if err != nil {
		return nil, err
	}

	resp := &SeatMapResponse{
		ShowtimeID: st.ID,
		HallID:     st.HallID,
		HallName:   st.HallName,
		Columns:    layout.Columns,
		Rows:       layout.Rows,
		Seats:      views,
	}
	for _, v := range views {
		resp.Summary.Total++
		switch v.Status {
		case StatusAvailable:
			resp.Summary.Available++
		case StatusBooked:
			resp.Summary.Booked++
		case StatusLocked:
			resp.Summary.Locked++
		}
	}
	resp.Summary.Occupancy = pricing.RoundMoney(pricing.CalculateOccupancy(resp.Summary.Total, resp.Summary.Booked))
	return resp, nil
}

// SeatView returns one seat of a showtime with its effective status
func (s *service) SeatView(ctx context.Context, showtimeID, seatID, userID string) (*SeatView, error) {
	st, err := s.showtimes.GetShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	seats, err := s.lookupSeats(ctx, st, []string{seatID})
	if err != nil {
		return nil, err
	}

	views, err := s.viewsFor(ctx, st, seats, userID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// viewsFor joins seats with stored statuses and live holds. Holds of other
// users show as locked, the caller's own holds stay available.
func (s *service) viewsFor(ctx context.Context, st *showtimes.Showtime, seats []halls.Seat, userID string) ([]SeatView, error) {
	ids := make([]string, len(seats))
	for i, seat := range seats {
		ids[i] = seat.ID
	}

	statuses, err := s.repo.StatusesFor(ctx, st.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load seat statuses: %w", err)
	}
	held, err := s.locker.HeldSeats(ctx, st.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check seat holds: %w", err)
	}

	views := make([]SeatView, len(seats))
	for i, seat := range seats {
		status, ok := statuses[seat.ID]
		if !ok {
			status = StatusAvailable
		}
		view := SeatView{Seat: seat, Status: status}
		if ref, isHeld := held[seat.ID]; isHeld && status == StatusAvailable {
			if ref.UserID == userID {
				view.HeldByMe = true
			} else {
				view.Status = StatusLocked
			}
		}
		if price, err := st.SeatPrice(seat.Type, pricing.TicketAdult); err == nil {
			view.Price = pricing.RoundMoney(price)
		}
		views[i] = view
	}
	return views, nil
}

// lookupSeats loads seats by id and checks they all belong to the showtime's hall
func (s *service) lookupSeats(ctx context.Context, st *showtimes.Showtime, seatIDs []string) ([]halls.Seat, error) {
	layout, err := s.halls.GetSeatLayout(ctx, st.HallID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]halls.Seat, len(layout.Seats))
	for _, seat := range layout.Seats {
		byID[seat.ID] = seat
	}

	out := make([]halls.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		seat, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSeatNotInHall, id)
		}
		out = append(out, seat)
	}
	return out, nil
}

//  SEAT HOLDING

func (s *service) HoldSeats(ctx context.Context, userID string, req SeatHoldRequest) (*SeatHoldResponse, error) {
	seatIDs := dedupe(req.SeatIDs)
	if len(seatIDs) == 0 {
		return nil, ErrNoSeats
	}
	if s.maxSeats > 0 && len(seatIDs) > s.maxSeats {
		return nil, fmt.Errorf("%w: at most %d", ErrTooManySeats, s.maxSeats)
	}

	st, err := s.showtimes.EnsureBookable(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}

	seats, err := s.lookupSeats(ctx, st, seatIDs)
	if err != nil {
		return nil, err
	}

	// Check the store first, then live holds
	statuses, err := s.repo.StatusesFor(ctx, st.ID, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check seat availability: %w", err)
	}
	var unavailable []string
	for _, id := range seatIDs {
		if statuses[id] != StatusAvailable {
			unavailable = append(unavailable, id)
		}
	}
	if len(unavailable) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrSeatUnavailable, unavailable)
	}

	// Price before locking so a pricing failure leaves no hold behind
	var (
		heldSeats  []HeldSeatInfo
		totalPrice float64
	)
	for _, seat := range seats {
		price, err := st.SeatPrice(seat.Type, pricing.TicketAdult)
		if err != nil {
			return nil, err
		}
		heldSeats = append(heldSeats, HeldSeatInfo{
			SeatID: seat.ID,
			Label:  seat.Label(),
			Type:   string(seat.Type),
			Price:  pricing.RoundMoney(price),
		})
		totalPrice += price
	}

	holdID := uuid.New().String()
	hold := HoldDetails{
		HoldID:     holdID,
		UserID:     userID,
		ShowtimeID: st.ID,
		SeatIDs:    seatIDs,
	}
	if err := s.locker.Acquire(ctx, hold, s.holdTTL); err != nil {
		return nil, err
	}

	s.log.LogSeatsHeld(ctx, holdID, st.ID, userID, len(seatIDs))

	return &SeatHoldResponse{
		HoldID:     holdID,
		ShowtimeID: st.ID,
		UserID:     userID,
		Seats:      heldSeats,
		TotalPrice: pricing.RoundMoney(totalPrice),
		ExpiresAt:  time.Now().Add(s.holdTTL),
		TTL:        int(s.holdTTL.Seconds()),
	}, nil
}

func (s *service) ReleaseHold(ctx context.Context, holdID, userID string) error {
	details, err := s.locker.Get(ctx, holdID)
	if err != nil {
		return err
	}
	if details.UserID != userID {
		return ErrHoldForbidden
	}

	released, err := s.locker.Release(ctx, holdID)
	if err != nil {
		return err
	}
	s.log.WithUserID(userID).Info("seat hold released", "hold_id", holdID, "seats", released)
	return nil
}

func (s *service) ValidateHold(ctx context.Context, holdID, userID string) (*HoldValidationResult, error) {
	details, err := s.locker.Get(ctx, holdID)
	if err != nil {
		if errors.Is(err, ErrHoldNotFound) {
			return &HoldValidationResult{Valid: false, Reason: err.Error()}, nil
		}
		return nil, err
	}

	if details.UserID != userID {
		return &HoldValidationResult{Valid: false, Reason: "hold belongs to different user"}, nil
	}

	if details.TTL <= 0 {
		return &HoldValidationResult{Valid: false, Reason: "hold has expired"}, nil
	}

	return &HoldValidationResult{
		Valid:   true,
		Details: details,
		TTL:     details.TTL,
	}, nil
}

func (s *service) GetUserHolds(ctx context.Context, userID string) ([]HoldDetails, error) {
	holdIDs, err := s.locker.UserHolds(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user holds: %w", err)
	}

	holds := []HoldDetails{}
	for _, holdID := range holdIDs {
		details, err := s.locker.Get(ctx, holdID)
		if err != nil {
			continue // expired between calls
		}
		holds = append(holds, *details)
	}
	return holds, nil
}

//  COMMIT

func (s *service) MarkBooked(tx *gorm.DB, showtimeID string, seatIDs []string) error {
	return s.repo.MarkBooked(tx, showtimeID, seatIDs)
}

func (s *service) MarkAvailable(tx *gorm.DB, showtimeID string, seatIDs []string) error {
	return s.repo.MarkAvailable(tx, showtimeID, seatIDs)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
