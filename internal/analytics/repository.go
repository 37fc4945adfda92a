package analytics

import (
	"context"
	"fmt"
	"time"

	"cineplex/internal/bookings"
	"cineplex/internal/concessions"
	"cineplex/internal/movies"
	"cineplex/internal/seats"
	"cineplex/internal/showtimes"
	"cineplex/internal/users"

	"gorm.io/gorm"
)

// activeStatuses are the bookings that count as sales
var activeStatuses = []bookings.Status{bookings.StatusConfirmed, bookings.StatusCompleted}

// Repository defines the analytics repository interface
type Repository interface {
	// Dashboard Analytics
	BookingsByStatus(ctx context.Context) (map[string]int64, error)
	Revenue(ctx context.Context) (float64, error)
	CountActiveMovies(ctx context.Context) (int64, error)
	ActiveMovieRatings(ctx context.Context) ([]float64, error)
	CountShowtimesOn(ctx context.Context, date string) (int64, error)
	CountUsers(ctx context.Context) (int64, error)

	// Report sources
	Sales(ctx context.Context, since time.Time) ([]bookings.Booking, error)
	MovieGenres(ctx context.Context) (map[string][]string, error)
	HallUtilisation(ctx context.Context) ([]HallUtilisation, error)
	ConcessionCategories(ctx context.Context) ([]CategoryStock, error)
	PaymentMethods(ctx context.Context) ([]PaymentSplit, error)
}

// repository implements the Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new analytics repository instance
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BookingsByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	counts := map[string]int64{
		string(bookings.StatusConfirmed): 0,
		string(bookings.StatusCompleted): 0,
		string(bookings.StatusCancelled): 0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *repository) Revenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Where("status IN ?", activeStatuses).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}

func (r *repository) CountActiveMovies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&movies.Movie{}).
		Where("status = ?", movies.StatusNowShowing).
		Count(&count).Error
	return count, err
}

func (r *repository) ActiveMovieRatings(ctx context.Context) ([]float64, error) {
	var ratings []float64
	err := r.db.WithContext(ctx).Model(&movies.Movie{}).
		Where("status = ?", movies.StatusNowShowing).
		Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *repository) CountShowtimesOn(ctx context.Context, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&showtimes.Showtime{}).
		Where("date = ? AND status <> ?", date, showtimes.StatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *repository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&users.User{}).Count(&count).Error
	return count, err
}

// Sales loads the active bookings created since the given instant. Only the
// columns the reports aggregate are read.
func (r *repository) Sales(ctx context.Context, since time.Time) ([]bookings.Booking, error) {
	sales := []bookings.Booking{}
	err := r.db.WithContext(ctx).
		Select("id", "movie_id", "movie_title", "seats", "total_amount", "payment_method", "created_at").
		Where("status IN ? AND created_at >= ?", activeStatuses, since).
		Order("created_at ASC").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	return sales, nil
}

func (r *repository) MovieGenres(ctx context.Context) (map[string][]string, error) {
	var list []movies.Movie
	if err := r.db.WithContext(ctx).Select("id", "genre").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to load movie genres: %w", err)
	}
	genres := make(map[string][]string, len(list))
	for _, m := range list {
		genres[m.ID] = m.Genre
	}
	return genres, nil
}

func (r *repository) HallUtilisation(ctx context.Context) ([]HallUtilisation, error) {
	rows := []HallUtilisation{}
	err := r.db.WithContext(ctx).
		Table("seat_statuses").
		Select(`showtimes.hall_id AS hall_id,
			showtimes.hall_name AS hall_name,
			COUNT(*) AS total_seats,
			SUM(CASE WHEN seat_statuses.status = ? THEN 1 ELSE 0 END) AS booked_seats`, seats.StatusBooked).
		Joins("JOIN showtimes ON showtimes.id = seat_statuses.showtime_id").
		Where("showtimes.status <> ?", showtimes.StatusCancelled).
		Group("showtimes.hall_id, showtimes.hall_name").
		Order("showtimes.hall_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute hall utilisation: %w", err)
	}
	return rows, nil
}

func (r *repository) ConcessionCategories(ctx context.Context) ([]CategoryStock, error) {
	rows := []CategoryStock{}
	err := r.db.WithContext(ctx).Model(&concessions.Item{}).
		Select(`category,
			COUNT(*) AS items,
			SUM(CASE WHEN is_available THEN 1 ELSE 0 END) AS available,
			COALESCE(SUM(stock_level), 0) AS stock`).
		Group("category").
		Order("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group concessions: %w", err)
	}
	return rows, nil
}

func (r *repository) PaymentMethods(ctx context.Context) ([]PaymentSplit, error) {
	rows := []PaymentSplit{}
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).
		Select("payment_method AS method, COUNT(*) AS bookings, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("status IN ?", activeStatuses).
		Group("payment_method").
		Order("bookings DESC").
		Order("method").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to split payment methods: %w", err)
	}
	return rows, nil
}
