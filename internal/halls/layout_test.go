package halls

import (
	"fmt"
	"testing"

	"cineplex/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeats_PositionsAreUnique(t *testing.T) {
	layouts := []struct {
		hall        string
		rows, perRow int
		vip         bool
	}{
		{"h1", 10, 12, true},
		{"h2", 8, 10, true},
		{"h3", 12, 12, false},
		{"h4", 6, 10, true},
		{"odd", 5, 11, false},
	}

	for _, l := range layouts {
		seats, err := GenerateSeats(l.hall, l.rows, l.perRow, l.vip)
		require.NoError(t, err)
		assert.Len(t, seats, l.rows*l.perRow)

		positions := map[string]bool{}
		ids := map[string]bool{}
		grid := map[[2]int]bool{}
		for _, s := range seats {
			key := fmt.Sprintf("%s/%d", s.Row, s.Number)
			assert.False(t, positions[key], "duplicate position %s in %s", key, l.hall)
			assert.False(t, ids[s.ID], "duplicate id %s", s.ID)
			assert.False(t, grid[[2]int{s.GridX, s.GridY}], "duplicate grid cell for %s", s.ID)
			positions[key] = true
			ids[s.ID] = true
			grid[[2]int{s.GridX, s.GridY}] = true
		}
	}
}

func TestGenerateSeats_AisleAndClasses(t *testing.T) {
	seats, err := GenerateSeats("h1", 10, 12, true)
	require.NoError(t, err)

	byID := map[string]Seat{}
	for _, s := range seats {
		byID[s.ID] = s
	}

	assert.Equal(t, 6, byID["h1-A6"].GridX)
	assert.Equal(t, 9, byID["h1-A7"].GridX)
	assert.Equal(t, 14, byID["h1-A12"].GridX)
	assert.Equal(t, 1, byID["h1-A1"].GridY)
	assert.Equal(t, 10, byID["h1-J1"].GridY)

	assert.Equal(t, SeatWheelchair, byID["h1-A1"].Type)
	assert.Equal(t, SeatWheelchair, byID["h1-A12"].Type)
	assert.Equal(t, SeatStandard, byID["h1-A2"].Type)
	assert.Equal(t, SeatStandard, byID["h1-H5"].Type)
	assert.Equal(t, SeatVIP, byID["h1-I1"].Type)
	assert.Equal(t, SeatVIP, byID["h1-J5"].Type)
	assert.Equal(t, SeatTwin, byID["h1-J1"].Type)
	assert.Equal(t, SeatTwin, byID["h1-J2"].Type)
	assert.Equal(t, SeatTwin, byID["h1-J11"].Type)
	assert.Equal(t, SeatTwin, byID["h1-J12"].Type)
	assert.Equal(t, "J12", byID["h1-J12"].Label())
}

func TestGenerateSeats_NoVIPRows(t *testing.T) {
	seats, err := GenerateSeats("h3", 12, 12, false)
	require.NoError(t, err)
	for _, s := range seats {
		assert.NotEqual(t, SeatVIP, s.Type)
	}
	assert.Equal(t, SeatTwin, seats[len(seats)-1].Type)
}

func TestGenerateSeats_WheelchairWinsOnSingleRow(t *testing.T) {
	seats, err := GenerateSeats("tiny", 1, 4, true)
	require.NoError(t, err)
	assert.Equal(t, SeatWheelchair, seats[0].Type)
	assert.Equal(t, SeatTwin, seats[1].Type)
	assert.Equal(t, SeatWheelchair, seats[3].Type)
}

func TestGenerateSeats_InvalidLayout(t *testing.T) {
	_, err := GenerateSeats("h", 17, 10, false)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	_, err = GenerateSeats("h", 0, 10, false)
	assert.ErrorIs(t, err, ErrInvalidLayout)
	_, err = GenerateSeats("h", 3, 0, false)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestSeatType_PricingType(t *testing.T) {
	assert.Equal(t, pricing.SeatVIP, SeatVIP.PricingType())
	assert.Equal(t, pricing.SeatCouple, SeatTwin.PricingType())
	assert.Equal(t, pricing.SeatWheelchair, SeatWheelchair.PricingType())
	assert.Equal(t, pricing.SeatStandard, SeatStandard.PricingType())
}
