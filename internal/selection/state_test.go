package selection

import (
	"testing"

	"cineplex/internal/concessions"
	"cineplex/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_ToggleTwiceRestores(t *testing.T) {
	start := State{MovieID: "m1", ShowtimeID: "s1", SeatIDs: []string{"h1-A3"}}

	once := start.ToggleSeat("h1-B4")
	assert.True(t, once.HasSeat("h1-B4"))
	assert.Equal(t, []string{"h1-A3"}, start.SeatIDs, "transitions leave the receiver untouched")

	twice := once.ToggleSeat("h1-B4")
	assert.Equal(t, start.SeatIDs, twice.SeatIDs)

	removed := start.ToggleSeat("h1-A3").ToggleSeat("h1-A3")
	assert.Equal(t, start.SeatIDs, removed.SeatIDs)
}

func TestState_MovieChangeResetsDownstream(t *testing.T) {
	cart := concessions.Cart{}.Add(&concessions.Item{ID: "ci1", Name: "Classic Popcorn", Price: 12.9, IsAvailable: true})

	s := State{}.SelectMovie("m1").SelectShowtime("s1").ToggleSeat("h1-C5").WithCart(cart).WithPromo("SAVE20")
	s, err := s.SetTicketType("h1-C5", pricing.TicketStudent)
	require.NoError(t, err)

	same := s.SelectMovie("m1")
	assert.Equal(t, "s1", same.ShowtimeID)
	assert.Len(t, same.SeatIDs, 1)

	other := s.SelectMovie("m2")
	assert.Equal(t, "m2", other.MovieID)
	assert.Empty(t, other.ShowtimeID)
	assert.Empty(t, other.SeatIDs)
	assert.Nil(t, other.TicketTypes)
	assert.Equal(t, 1, other.Cart.TotalItems())
	assert.Equal(t, "SAVE20", other.PromoCode)
}

func TestState_ShowtimeChangeClearsSeats(t *testing.T) {
	s := State{}.SelectMovie("m1").SelectShowtime("s1").ToggleSeat("h1-C5").ToggleSeat("h1-C6")

	next := s.SelectShowtime("s2")
	assert.Equal(t, "m1", next.MovieID)
	assert.Equal(t, "s2", next.ShowtimeID)
	assert.Empty(t, next.SeatIDs)
}

func TestState_TicketTypes(t *testing.T) {
	s := State{ShowtimeID: "s1"}.ToggleSeat("h1-C5")

	_, err := s.SetTicketType("h1-C6", pricing.TicketChild)
	assert.ErrorIs(t, err, ErrSeatNotSelected)

	s, err = s.SetTicketType("h1-C5", pricing.TicketChild)
	require.NoError(t, err)
	assert.Equal(t, pricing.TicketChild, s.TicketType("h1-C5"))
	assert.Equal(t, pricing.TicketAdult, s.TicketType("h1-C6"))

	s = s.ToggleSeat("h1-C5")
	assert.Nil(t, s.TicketTypes)
}

func TestState_IsEmpty(t *testing.T) {
	assert.True(t, State{}.IsEmpty())
	assert.False(t, State{}.WithPromo("WELCOME10").IsEmpty())
}
