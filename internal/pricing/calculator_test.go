package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTicketPrice(t *testing.T) {
	price, err := CalculateTicketPrice(100, SeatVIP, TicketChild)
	require.NoError(t, err)
	assert.InDelta(t, 105.0, price, 0.0001)

	price, err = CalculateTicketPrice(18, SeatCouple, TicketAdult)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, price, 0.0001)

	price, err = CalculateTicketPrice(25, SeatWheelchair, TicketStudent)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, price, 0.0001)

	_, err = CalculateTicketPrice(10, "balcony", TicketAdult)
	assert.ErrorIs(t, err, ErrUnknownSeatType)

	_, err = CalculateTicketPrice(10, SeatStandard, "infant")
	assert.ErrorIs(t, err, ErrUnknownTicketType)

	_, err = CalculateTicketPrice(-1, SeatStandard, TicketAdult)
	assert.ErrorIs(t, err, ErrNegativePrice)
}

func TestCalculateBookingTotal(t *testing.T) {
	b := CalculateBookingTotal([]float64{50, 50}, []float64{20}, 0, 0.06)
	assert.InDelta(t, 100.0, b.TicketTotal, 0.0001)
	assert.InDelta(t, 20.0, b.ConcessionTotal, 0.0001)
	assert.InDelta(t, 120.0, b.Subtotal, 0.0001)
	assert.InDelta(t, 120.0, b.DiscountedSubtotal, 0.0001)
	assert.InDelta(t, 7.2, b.Tax, 0.0001)
	assert.InDelta(t, 127.2, b.Total, 0.0001)
}

func TestCalculateBookingTotal_DiscountNeverNegative(t *testing.T) {
	b := CalculateBookingTotal([]float64{10}, nil, 50, 0.06)
	assert.Equal(t, 0.0, b.DiscountedSubtotal)
	assert.Equal(t, 0.0, b.Tax)
	assert.Equal(t, 0.0, b.Total)
	assert.Equal(t, 50.0, b.Discount)
}

func TestPriceBreakdown_Rounded(t *testing.T) {
	b := CalculateBookingTotal([]float64{14.4, 14.4, 14.4}, nil, 0, 0.06).Rounded()
	assert.Equal(t, 43.2, b.Subtotal)
	assert.Equal(t, 2.59, b.Tax)
	assert.Equal(t, 45.79, b.Total)
}

func TestCalculateDiscount(t *testing.T) {
	assert.InDelta(t, 20.0, CalculateDiscount(200, "SAVE20"), 0.0001)
	assert.InDelta(t, 10.0, CalculateDiscount(10, "SAVE20"), 0.0001)
	assert.InDelta(t, 20.0, CalculateDiscount(200, "welcome10"), 0.0001)
	assert.InDelta(t, 30.0, CalculateDiscount(200, "Student"), 0.0001)
	assert.InDelta(t, 40.0, CalculateDiscount(200, "FIRSTBOOKING"), 0.0001)
	assert.Equal(t, 0.0, CalculateDiscount(200, "NOPE"))
	assert.Equal(t, 0.0, CalculateDiscount(200, ""))
}

func TestCalculatePointsEarned(t *testing.T) {
	assert.Equal(t, 115, CalculatePointsEarned(115.9, "Bronze"))
	assert.Equal(t, 138, CalculatePointsEarned(115.9, "Silver"))
	assert.Equal(t, 172, CalculatePointsEarned(115, "Gold"))
	assert.Equal(t, 230, CalculatePointsEarned(115, "Platinum"))
	assert.Equal(t, 115, CalculatePointsEarned(115, "unknown"))
}

func TestCalculateRefund(t *testing.T) {
	tests := []struct {
		hours   float64
		amount  float64
		percent float64
		can     bool
	}{
		{30, 100, 100, true},
		{24, 75, 75, true},
		{12.5, 75, 75, true},
		{12, 50, 50, true},
		{6.1, 50, 50, true},
		{6, 0, 0, false},
		{4, 0, 0, false},
	}
	for _, tt := range tests {
		q := CalculateRefund(100, tt.hours)
		assert.InDelta(t, tt.amount, q.RefundAmount, 0.0001, "hours=%v", tt.hours)
		assert.InDelta(t, tt.percent, q.RefundPercentage, 0.0001, "hours=%v", tt.hours)
		assert.Equal(t, tt.can, q.CanRefund, "hours=%v", tt.hours)
	}
}

func TestOccupancyAndRating(t *testing.T) {
	assert.Equal(t, 0.0, CalculateOccupancy(0, 5))
	assert.InDelta(t, 25.0, CalculateOccupancy(120, 30), 0.0001)
	assert.Equal(t, 0.0, CalculateAverageRating(nil))
	assert.Equal(t, 8.3, CalculateAverageRating([]float64{8.5, 8.2, 8.1}))
}

func TestTimeUntilShowtime(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	c := TimeUntilShowtime(now.Add(26*time.Hour+15*time.Minute), now)
	assert.Equal(t, Countdown{Days: 1, Hours: 2, Minutes: 15}, c)

	c = TimeUntilShowtime(now.Add(90*time.Minute), now)
	assert.True(t, c.IsToday)
	assert.Equal(t, 1, c.Hours)
	assert.Equal(t, 30, c.Minutes)

	c = TimeUntilShowtime(now.Add(-time.Minute), now)
	assert.True(t, c.IsPast)
}

func TestParseTicketType(t *testing.T) {
	tt, err := ParseTicketType("")
	require.NoError(t, err)
	assert.Equal(t, TicketAdult, tt)

	tt, err = ParseTicketType("Senior")
	require.NoError(t, err)
	assert.Equal(t, TicketSenior, tt)

	_, err = ParseTicketType("vip")
	assert.ErrorIs(t, err, ErrUnknownTicketType)
}
