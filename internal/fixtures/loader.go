package fixtures

import (
	"context"
	"errors"
	"fmt"

	"cineplex/internal/movies"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const batchSize = 500

var ErrAlreadySeeded = errors.New("store already holds fixture data")

// Load inserts a generated set in one transaction. A store that already has
// movies is left untouched.
func Load(ctx context.Context, db *gorm.DB, set *Set) error {
	var count int64
	if err := db.WithContext(ctx).Model(&movies.Movie{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if count > 0 {
		return ErrAlreadySeeded
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}
	accounts := append(set.Users[:0:0], set.Users...)
	for i := range accounts {
		accounts[i].Password = string(hash)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			rows interface{}
			n    int
		}{
			{"cinemas", &set.Cinemas, len(set.Cinemas)},
			{"halls", &set.Halls, len(set.Halls)},
			{"seats", &set.Seats, len(set.Seats)},
			{"movies", &set.Movies, len(set.Movies)},
			{"showtimes", &set.Showtimes, len(set.Showtimes)},
			{"seat statuses", &set.SeatStatuses, len(set.SeatStatuses)},
			{"concessions", &set.Concessions, len(set.Concessions)},
			{"users", &accounts, len(accounts)},
			{"rewards", &set.Rewards, len(set.Rewards)},
			{"bookings", &set.Bookings, len(set.Bookings)},
			{"favorites", &set.Favorites, len(set.Favorites)},
		}
		for _, step := range steps {
			if step.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(step.rows, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert %s: %w", step.name, err)
			}
		}
		return nil
	})
}
