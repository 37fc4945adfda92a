package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cineplex/internal/fixtures"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type Seeder struct {
	db  *database.DB
	cfg *config.Config
}

func main() {
	fmt.Println("🌱 Starting Cineplex Database Seeder...")

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, cfg: cfg}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Demo accounts use password:", fixtures.DemoPassword)
}

// CleanDatabase deletes every row, children before parents
func (s *Seeder) CleanDatabase() error {
	models := database.Models()

	return s.db.GetSQL().Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for i := len(models) - 1; i >= 0; i-- {
			model := models[i]
			res := all.Delete(model)
			if res.Error != nil {
				return fmt.Errorf("failed to clean %T: %w", model, res.Error)
			}
			fmt.Printf("  Cleaned %T (%d rows)\n", model, res.RowsAffected)
		}
		return nil
	})
}

// SeedAll generates the demo universe and loads it
func (s *Seeder) SeedAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	opts, err := fixtures.OptionsFromConfig(s.cfg, time.Now())
	if err != nil {
		return err
	}
	set, err := fixtures.Generate(opts)
	if err != nil {
		return fmt.Errorf("failed to generate fixtures: %w", err)
	}

	if err := fixtures.Load(ctx, s.db.GetSQL(), set); err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	fmt.Printf("  🎬 %d movies, %d showtimes from %s (seed %d)\n",
		len(set.Movies), len(set.Showtimes), opts.StartDate.Format("2006-01-02"), opts.Seed)
	fmt.Printf("  🏛️ %d halls, %d seats, %d seat statuses\n", len(set.Halls), len(set.Seats), len(set.SeatStatuses))
	fmt.Printf("  🍿 %d concessions, %d rewards\n", len(set.Concessions), len(set.Rewards))
	for _, user := range set.Users {
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	// Clear Redis to drop holds, selections and caches from the old data
	if redis := s.db.GetRedisClient(); redis != nil {
		if err := redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}
