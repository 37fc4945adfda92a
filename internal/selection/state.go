package selection

import (
	"errors"
	"time"

	"cineplex/internal/concessions"
	"cineplex/internal/pricing"
)

var (
	ErrNoMovie          = errors.New("select a movie first")
	ErrNoShowtime       = errors.New("select a showtime first")
	ErrSeatNotSelected  = errors.New("seat is not in the selection")
	ErrSeatUnavailable  = errors.New("seat is not available")
	ErrMovieNotShowing  = errors.New("movie is not now showing")
	ErrUnknownPromoCode = errors.New("unknown promo code")
)

// State is a customer's in-progress booking. Transitions return a new State.
//
// Changing an upstream choice resets everything that depends on it: a new
// movie clears the showtime, seats and ticket types, a new showtime clears the
// seats and ticket types. The concessions cart and promo code survive both.
type State struct {
	MovieID     string                        `json:"movie_id,omitempty"`
	ShowtimeID  string                        `json:"showtime_id,omitempty"`
	SeatIDs     []string                      `json:"seat_ids"`
	TicketTypes map[string]pricing.TicketType `json:"ticket_types,omitempty"`
	Cart        concessions.Cart              `json:"cart"`
	PromoCode   string                        `json:"promo_code,omitempty"`
	UpdatedAt   time.Time                     `json:"updated_at"`
}

func (s State) SelectMovie(movieID string) State {
	if s.MovieID == movieID {
		return s
	}
	out := s.clone()
	out.MovieID = movieID
	out.ShowtimeID = ""
	out.SeatIDs = nil
	out.TicketTypes = nil
	return out
}

func (s State) SelectShowtime(showtimeID string) State {
	if s.ShowtimeID == showtimeID {
		return s
	}
	out := s.clone()
	out.ShowtimeID = showtimeID
	out.SeatIDs = nil
	out.TicketTypes = nil
	return out
}

func (s State) HasSeat(seatID string) bool {
	for _, id := range s.SeatIDs {
		if id == seatID {
			return true
		}
	}
	return false
}

// ToggleSeat adds a seat that is not selected and removes one that is.
// Toggling the same seat twice restores the original selection.
func (s State) ToggleSeat(seatID string) State {
	out := s.clone()
	if !s.HasSeat(seatID) {
		out.SeatIDs = append(out.SeatIDs, seatID)
		return out
	}

	out.SeatIDs = out.SeatIDs[:0]
	for _, id := range s.SeatIDs {
		if id != seatID {
			out.SeatIDs = append(out.SeatIDs, id)
		}
	}
	delete(out.TicketTypes, seatID)
	if len(out.TicketTypes) == 0 {
		out.TicketTypes = nil
	}
	return out
}

// SetTicketType sets the ticket type of a selected seat
func (s State) SetTicketType(seatID string, ticket pricing.TicketType) (State, error) {
	if !s.HasSeat(seatID) {
		return s, ErrSeatNotSelected
	}
	out := s.clone()
	if out.TicketTypes == nil {
		out.TicketTypes = make(map[string]pricing.TicketType)
	}
	out.TicketTypes[seatID] = ticket
	return out, nil
}

// TicketType is the ticket type of a seat, adult unless set
func (s State) TicketType(seatID string) pricing.TicketType {
	if t, ok := s.TicketTypes[seatID]; ok {
		return t
	}
	return pricing.TicketAdult
}

func (s State) WithCart(cart concessions.Cart) State {
	out := s.clone()
	out.Cart = cart
	return out
}

func (s State) WithPromo(code string) State {
	out := s.clone()
	out.PromoCode = code
	return out
}

func (s State) IsEmpty() bool {
	return s.MovieID == "" && s.ShowtimeID == "" && len(s.SeatIDs) == 0 && s.Cart.IsEmpty() && s.PromoCode == ""
}

func (s State) clone() State {
	out := s
	if s.SeatIDs != nil {
		out.SeatIDs = make([]string, len(s.SeatIDs))
		copy(out.SeatIDs, s.SeatIDs)
	}
	if s.TicketTypes != nil {
		out.TicketTypes = make(map[string]pricing.TicketType, len(s.TicketTypes))
		for k, v := range s.TicketTypes {
			out.TicketTypes[k] = v
		}
	}
	return out
}
