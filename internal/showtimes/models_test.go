package showtimes

import (
	"testing"
	"time"

	"cineplex/internal/halls"
	"cineplex/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricesFor(t *testing.T) {
	tests := []struct {
		hall     halls.HallType
		std, vip float64
	}{
		{halls.HallIMAX, 25, 45},
		{halls.HallDolby, 22, 40},
		{halls.Hall4DX, 35, 55},
		{halls.HallStandard, 18, 32},
		{"Drive-in", 18, 32},
	}
	for _, tt := range tests {
		std, vip := PricesFor(tt.hall)
		assert.Equal(t, tt.std, std, tt.hall)
		assert.Equal(t, tt.vip, vip, tt.hall)
	}
}

func TestShowtime_StartsAt(t *testing.T) {
	kl := time.FixedZone("MYT", 8*3600)
	st := Showtime{ID: "s1", Date: "2025-03-01", Time: "20:30"}

	start, err := st.StartsAt(kl)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC), start.UTC())

	hours, err := st.HoursUntil(time.Date(2025, 3, 1, 0, 30, 0, 0, time.UTC), kl)
	require.NoError(t, err)
	assert.InDelta(t, 12.0, hours, 0.0001)

	bad := Showtime{ID: "s2", Date: "2025-03-01", Time: "25:99"}
	_, err = bad.StartsAt(kl)
	assert.Error(t, err)
}

func TestShowtime_SeatPrice(t *testing.T) {
	st := Showtime{Price: 25, VIPPrice: 45}

	price, err := st.SeatPrice(halls.SeatStandard, pricing.TicketAdult)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, price, 0.0001)

	price, err = st.SeatPrice(halls.SeatVIP, pricing.TicketAdult)
	require.NoError(t, err)
	assert.InDelta(t, 45.0, price, 0.0001)

	price, err = st.SeatPrice(halls.SeatVIP, pricing.TicketChild)
	require.NoError(t, err)
	assert.InDelta(t, 31.5, price, 0.0001)

	price, err = st.SeatPrice(halls.SeatTwin, pricing.TicketAdult)
	require.NoError(t, err)
	assert.InDelta(t, 62.5, price, 0.0001)

	price, err = st.SeatPrice(halls.SeatWheelchair, pricing.TicketSenior)
	require.NoError(t, err)
	assert.InDelta(t, 18.75, price, 0.0001)

	_, err = st.SeatPrice(halls.SeatStandard, "infant")
	assert.ErrorIs(t, err, pricing.ErrUnknownTicketType)
}

func TestShowtime_HallLabel(t *testing.T) {
	st := Showtime{HallName: "Hall 1", HallType: halls.HallIMAX}
	assert.Equal(t, "Hall 1 (IMAX)", st.HallLabel())
}
