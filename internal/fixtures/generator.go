// Package fixtures generates and loads the demo cinema universe.
package fixtures

import (
	"fmt"
	"math/rand/v2"
	"time"

	"cineplex/internal/bookings"
	"cineplex/internal/concessions"
	"cineplex/internal/favorites"
	"cineplex/internal/halls"
	"cineplex/internal/membership"
	"cineplex/internal/movies"
	"cineplex/internal/pricing"
	"cineplex/internal/seats"
	"cineplex/internal/shared/config"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"
)

const (
	scheduleDays = 7
	minDailyShow = 2
	maxDailyShow = 4

	bookedRatio = 0.30
	lockedRatio = 0.05
)

// Set is one generated universe, ready to be inserted
type Set struct {
	Cinemas      []halls.Cinema
	Halls        []halls.Hall
	Seats        []halls.Seat
	Movies       []movies.Movie
	Showtimes    []showtimes.Showtime
	SeatStatuses []seats.SeatStatus
	Concessions  []concessions.Item
	Users        []users.User
	Bookings     []bookings.Booking
	Rewards      []membership.Reward
	Favorites    []favorites.Favorite
	TicketTypes  []pricing.TicketTypeInfo
}

// Options drive Generate. The same options always produce the same Set.
type Options struct {
	Seed      uint64
	StartDate time.Time
	Location  *time.Location
}

// OptionsFromConfig reads the seed and the first schedule day. An empty start
// date means today in the cinema's time zone.
func OptionsFromConfig(cfg *config.Config, now time.Time) (Options, error) {
	loc := cfg.CinemaLocation()
	start := now.In(loc)
	if cfg.Fixtures.StartDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", cfg.Fixtures.StartDate, loc)
		if err != nil {
			return Options{}, fmt.Errorf("invalid FIXTURE_START_DATE %q: %w", cfg.Fixtures.StartDate, err)
		}
		start = parsed
	}
	return Options{Seed: cfg.Fixtures.Seed, StartDate: start, Location: loc}, nil
}

// Generate builds the universe from a seeded PCG source
func Generate(opts Options) (*Set, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	start := opts.StartDate.In(loc)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	set := &Set{
		Cinemas:     []halls.Cinema{cinema()},
		Movies:      movieCatalog(),
		Concessions: concessionCatalog(),
		Users:       demoUsers(),
		Rewards:     rewardCatalog(),
		TicketTypes: pricing.TicketTypes(),
	}

	seatsByHall := make(map[string][]halls.Seat, len(hallSpecs))
	for _, spec := range hallSpecs {
		layout, err := halls.GenerateSeats(spec.id, spec.rows, spec.seatsPerRow, spec.vipRows)
		if err != nil {
			return nil, fmt.Errorf("failed to lay out %s: %w", spec.id, err)
		}
		seatsByHall[spec.id] = layout
		set.Seats = append(set.Seats, layout...)
		set.Halls = append(set.Halls, halls.Hall{
			ID:          spec.id,
			CinemaID:    "c1",
			Name:        spec.name,
			Type:        spec.hallType,
			TotalSeats:  len(layout),
			Rows:        spec.rows,
			SeatsPerRow: spec.seatsPerRow,
			HasVIPRows:  spec.vipRows,
			Status:      halls.StatusActive,
		})
	}

	dates := make([]string, scheduleDays)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i).Format("2006-01-02")
	}

	for _, movie := range set.Movies {
		for _, date := range dates {
			slots := append([]string(nil), showSlots...)
			rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })
			count := minDailyShow + rng.IntN(maxDailyShow-minDailyShow+1)

			for _, slot := range slots[:count] {
				hall := set.Halls[rng.IntN(len(set.Halls))]
				price, vip := showtimes.PricesFor(hall.Type)
				st := showtimes.Showtime{
					ID:       fmt.Sprintf("s%d", len(set.Showtimes)+1),
					MovieID:  movie.ID,
					HallID:   hall.ID,
					HallName: hall.Name,
					HallType: hall.Type,
					Date:     date,
					Time:     slot,
					Price:    price,
					VIPPrice: vip,
					Status:   showtimes.StatusScheduled,
				}
				set.Showtimes = append(set.Showtimes, st)

				for _, seat := range seatsByHall[hall.ID] {
					status := seats.StatusAvailable
					switch roll := rng.Float64(); {
					case roll < bookedRatio:
						status = seats.StatusBooked
					case roll < bookedRatio+lockedRatio:
						status = seats.StatusLocked
					}
					set.SeatStatuses = append(set.SeatStatuses, seats.SeatStatus{ShowtimeID: st.ID, SeatID: seat.ID, Status: status})
				}
			}
		}
	}

	set.Bookings = bookingHistory(set.Movies, start)
	set.Favorites = demoFavorites(start)
	return set, nil
}

// bookingHistory gives the first demo member one upcoming and one past booking
func bookingHistory(catalog []movies.Movie, start time.Time) []bookings.Booking {
	loc := start.Location()
	year := start.Year()
	upcoming := start.AddDate(0, 0, 1)
	past := start.AddDate(0, 0, -7)

	return []bookings.Booking{
		{
			ID:              "b1",
			ReferenceCode:   fmt.Sprintf("GX-%d-001234", year),
			UserID:          "u1",
			MovieID:         catalog[0].ID,
			MovieTitle:      catalog[0].Title,
			PosterURL:       catalog[0].PosterURL,
			Date:            upcoming.Format("2006-01-02"),
			Time:            "19:30",
			Hall:            "Hall 1 (IMAX)",
			Seats:           []string{"E5", "E6"},
			TicketTotal:     90,
			ConcessionTotal: 25,
			TotalAmount:     115,
			PointsEarned:    pricing.CalculatePointsEarned(115, string(membership.TierGold)),
			Status:          bookings.StatusConfirmed,
			PaymentMethod:   "Credit Card",
			CreatedAt:       time.Date(start.Year(), start.Month(), start.Day(), 10, 0, 0, 0, loc),
		},
		{
			ID:              "b2",
			ReferenceCode:   fmt.Sprintf("GX-%d-001122", year),
			UserID:          "u1",
			MovieID:         catalog[1].ID,
			MovieTitle:      catalog[1].Title,
			PosterURL:       catalog[1].PosterURL,
			Date:            past.Format("2006-01-02"),
			Time:            "14:00",
			Hall:            "Hall 2 (Dolby)",
			Seats:           []string{"D7", "D8", "D9"},
			TicketTotal:     126,
			ConcessionTotal: 38,
			TotalAmount:     164,
			PointsEarned:    pricing.CalculatePointsEarned(164, string(membership.TierGold)),
			Status:          bookings.StatusCompleted,
			PaymentMethod:   "GrabPay",
			CreatedAt:       time.Date(past.Year(), past.Month(), past.Day(), 10, 30, 0, 0, loc),
		},
	}
}

// demoFavorites is the first demo member's watch list
func demoFavorites(start time.Time) []favorites.Favorite {
	ids := []string{"m1", "m3", "m6"}
	out := make([]favorites.Favorite, len(ids))
	for i, id := range ids {
		out[i] = favorites.Favorite{UserID: "u1", MovieID: id, CreatedAt: start.AddDate(0, 0, -(i + 1))}
	}
	return out
}
