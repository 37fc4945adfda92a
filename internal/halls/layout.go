package halls

import (
	"errors"
	"fmt"
	"strconv"
)

// RowLabels is the fixed row alphabet, front to back
const RowLabels = "ABCDEFGHIJKLMNOP"

// AisleWidth is the number of grid columns left empty after the midpoint
const AisleWidth = 2

var ErrInvalidLayout = errors.New("invalid hall layout")

// GenerateSeats lays out rows x seatsPerRow seats for a hall.
//
// Seat numbers are 1-based columns. Columns past the midpoint shift right by
// the aisle width. With hasVIPRows the last two rows are VIP, the two outer
// seats on each side of the back row are Twin, and the first and last seat of
// the front row are Wheelchair, which wins over every other class.
func GenerateSeats(hallID string, rows, seatsPerRow int, hasVIPRows bool) ([]Seat, error) {
	if rows < 1 || rows > len(RowLabels) {
		return nil, fmt.Errorf("%w: rows must be between 1 and %d, got %d", ErrInvalidLayout, len(RowLabels), rows)
	}
	if seatsPerRow < 1 {
		return nil, fmt.Errorf("%w: seats per row must be positive, got %d", ErrInvalidLayout, seatsPerRow)
	}

	seats := make([]Seat, 0, rows*seatsPerRow)
	for r := 0; r < rows; r++ {
		row := string(RowLabels[r])
		for s := 1; s <= seatsPerRow; s++ {
			gridX := s
			if 2*s > seatsPerRow {
				gridX = s + AisleWidth
			}

			seatType := SeatStandard
			if hasVIPRows && r >= rows-2 {
				seatType = SeatVIP
			}
			if r == rows-1 && (s <= 2 || s > seatsPerRow-2) {
				seatType = SeatTwin
			}
			if r == 0 && (s == 1 || s == seatsPerRow) {
				seatType = SeatWheelchair
			}

			seats = append(seats, Seat{
				ID:     SeatID(hallID, row, s),
				HallID: hallID,
				Row:    row,
				Number: s,
				GridX:  gridX,
				GridY:  r + 1,
				Type:   seatType,
			})
		}
	}
	return seats, nil
}

// SeatID builds the seat identity from hall, row and number
func SeatID(hallID, row string, number int) string {
	return hallID + "-" + row + strconv.Itoa(number)
}
