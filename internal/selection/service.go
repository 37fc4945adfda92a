package selection

import (
	"context"
	"fmt"
	"strings"

	"cineplex/internal/concessions"
	"cineplex/internal/halls"
	"cineplex/internal/movies"
	"cineplex/internal/pricing"
	"cineplex/internal/seats"
	"cineplex/internal/shared/config"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"
	"cineplex/pkg/logger"
)

type Service interface {
	Get(ctx context.Context, userID string) (*State, error)
	Clear(ctx context.Context, userID string) error

	SelectMovie(ctx context.Context, userID, movieID string) (*State, error)
	SelectShowtime(ctx context.Context, userID, showtimeID string) (*State, error)
	ToggleSeat(ctx context.Context, userID, seatID string) (*State, error)
	SetTicketType(ctx context.Context, userID, seatID, ticketType string) (*State, error)
	SetPromo(ctx context.Context, userID, code string) (*State, error)

	AddToCart(ctx context.Context, userID, itemID string) (*State, error)
	SetCartQuantity(ctx context.Context, userID, itemID string, quantity int) (*State, error)
	RemoveFromCart(ctx context.Context, userID, itemID string) (*State, error)

	Quote(ctx context.Context, userID string) (*Quote, error)
	// Price quotes a given state for a member tier. Concessions are priced
	// from the store as it is now and checked against stock.
	Price(ctx context.Context, state State, tier string) (*Quote, error)
}

type service struct {
	store       Store
	movies      movies.Service
	showtimes   showtimes.Service
	seats       seats.Service
	halls       halls.Service
	concessions concessions.Service
	users       users.Service
	taxRate     float64
	maxSeats    int
	currency    string
	log         *logger.Logger
}

func NewService(
	store Store,
	movieService movies.Service,
	showtimeService showtimes.Service,
	seatService seats.Service,
	hallService halls.Service,
	concessionService concessions.Service,
	userService users.Service,
	cfg *config.Config,
) Service {
	return &service{
		store:       store,
		movies:      movieService,
		showtimes:   showtimeService,
		seats:       seatService,
		halls:       hallService,
		concessions: concessionService,
		users:       userService,
		taxRate:     cfg.Booking.TaxRate,
		maxSeats:    cfg.Booking.MaxSeatsPerHold,
		currency:    cfg.Booking.Currency,
		log:         logger.GetDefault(),
	}
}

func (s *service) Get(ctx context.Context, userID string) (*State, error) {
	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	return &state, nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	if err := s.store.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	s.log.WithUserID(userID).Debug("selection cleared")
	return nil
}

// update loads the user's selection, applies fn and saves the result
func (s *service) update(ctx context.Context, userID string, fn func(State) (State, error)) (*State, error) {
	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	next, err := fn(state)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("failed to save selection: %w", err)
	}
	return &next, nil
}

func (s *service) SelectMovie(ctx context.Context, userID, movieID string) (*State, error) {
	movie, err := s.movies.GetMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !movie.IsBookable() {
		return nil, ErrMovieNotShowing
	}

	return s.update(ctx, userID, func(state State) (State, error) {
		return state.SelectMovie(movie.ID), nil
	})
}

// SelectShowtime also selects the showtime's movie, so picking a showtime of
// another movie resets the selection the same way a movie change does.
func (s *service) SelectShowtime(ctx context.Context, userID, showtimeID string) (*State, error) {
	st, err := s.showtimes.EnsureBookable(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, userID, func(state State) (State, error) {
		return state.SelectMovie(st.MovieID).SelectShowtime(st.ID), nil
	})
}

func (s *service) ToggleSeat(ctx context.Context, userID, seatID string) (*State, error) {
	return s.update(ctx, userID, func(state State) (State, error) {
		if state.ShowtimeID == "" {
			return state, ErrNoShowtime
		}
		if state.HasSeat(seatID) {
			return state.ToggleSeat(seatID), nil
		}

		if s.maxSeats > 0 && len(state.SeatIDs) >= s.maxSeats {
			return state, fmt.Errorf("%w: at most %d", seats.ErrTooManySeats, s.maxSeats)
		}
		view, err := s.seats.SeatView(ctx, state.ShowtimeID, seatID, userID)
		if err != nil {
			return state, err
		}
		if !view.IsSelectable() {
			return state, fmt.Errorf("%w: %s is %s", ErrSeatUnavailable, view.Label(), view.Status)
		}
		return state.ToggleSeat(seatID), nil
	})
}

func (s *service) SetTicketType(ctx context.Context, userID, seatID, ticketType string) (*State, error) {
	ticket, err := pricing.ParseTicketType(ticketType)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, userID, func(state State) (State, error) {
		return state.SetTicketType(seatID, ticket)
	})
}

func (s *service) SetPromo(ctx context.Context, userID, code string) (*State, error) {
	code = strings.TrimSpace(code)
	if code != "" {
		promo, ok := pricing.LookupPromo(code)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPromoCode, code)
		}
		code = promo.Code
	}
	return s.update(ctx, userID, func(state State) (State, error) {
		return state.WithPromo(code), nil
	})
}

func (s *service) AddToCart(ctx context.Context, userID, itemID string) (*State, error) {
	item, err := s.concessions.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, userID, func(state State) (State, error) {
		if item.IsAvailable && !item.InStock(state.Cart.Quantity(itemID)+1) {
			return state, fmt.Errorf("%w: %s has %d left", concessions.ErrInsufficientStock, item.Name, item.StockLevel)
		}
		return state.WithCart(state.Cart.Add(item)), nil
	})
}

func (s *service) SetCartQuantity(ctx context.Context, userID, itemID string, quantity int) (*State, error) {
	if quantity > 0 {
		item, err := s.concessions.GetItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if !item.InStock(quantity) {
			return nil, fmt.Errorf("%w: %s has %d left", concessions.ErrInsufficientStock, item.Name, item.StockLevel)
		}
	}
	return s.update(ctx, userID, func(state State) (State, error) {
		return state.WithCart(state.Cart.SetQuantity(itemID, quantity)), nil
	})
}

func (s *service) RemoveFromCart(ctx context.Context, userID, itemID string) (*State, error) {
	return s.update(ctx, userID, func(state State) (State, error) {
		return state.WithCart(state.Cart.Remove(itemID)), nil
	})
}

func (s *service) Quote(ctx context.Context, userID string) (*Quote, error) {
	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Price(ctx, state, user.MembershipTier)
}

func (s *service) Price(ctx context.Context, state State, tier string) (*Quote, error) {
	q := &Quote{
		MovieID:     state.MovieID,
		ShowtimeID:  state.ShowtimeID,
		Tickets:     []TicketLine{},
		Concessions: []ConcessionLine{},
		PromoCode:   state.PromoCode,
		MemberTier:  tier,
		Currency:    s.currency,
	}

	if state.MovieID != "" {
		if movie, err := s.movies.GetMovie(ctx, state.MovieID); err == nil {
			q.MovieTitle = movie.Title
		}
	}

	if state.ShowtimeID != "" && len(state.SeatIDs) > 0 {
		lines, err := s.priceTickets(ctx, state)
		if err != nil {
			return nil, err
		}
		q.Tickets = lines
	}

	if !state.Cart.IsEmpty() {
		items, err := s.concessions.CheckStock(ctx, state.Cart)
		if err != nil {
			return nil, err
		}
		for _, line := range state.Cart.Lines {
			item := items[line.ItemID]
			q.Concessions = append(q.Concessions, ConcessionLine{
				ItemID:    item.ID,
				Name:      item.Name,
				Quantity:  line.Quantity,
				UnitPrice: item.Price,
				Total:     pricing.RoundMoney(item.Price * float64(line.Quantity)),
			})
		}
	}

	q.price(s.taxRate)
	return q, nil
}

func (s *service) priceTickets(ctx context.Context, state State) ([]TicketLine, error) {
	st, err := s.showtimes.GetShowtime(ctx, state.ShowtimeID)
	if err != nil {
		return nil, err
	}
	layout, err := s.halls.GetSeatLayout(ctx, st.HallID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]halls.Seat, len(layout.Seats))
	for _, seat := range layout.Seats {
		byID[seat.ID] = seat
	}

	lines := make([]TicketLine, 0, len(state.SeatIDs))
	for _, id := range state.SeatIDs {
		seat, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", seats.ErrSeatNotInHall, id)
		}
		ticket := state.TicketType(id)
		price, err := st.SeatPrice(seat.Type, ticket)
		if err != nil {
			return nil, err
		}
		lines = append(lines, TicketLine{
			SeatID:     seat.ID,
			Label:      seat.Label(),
			SeatType:   string(seat.Type),
			TicketType: ticket,
			Price:      pricing.RoundMoney(price),
		})
	}
	return lines, nil
}
