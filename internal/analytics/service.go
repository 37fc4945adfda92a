package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cineplex/internal/bookings"
	"cineplex/internal/pricing"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/constants"
	"cineplex/pkg/cache"
	"cineplex/pkg/logger"
)

const (
	defaultReportDays = 7
	maxReportDays     = 90
	topMoviesLimit    = 5
)

// Service defines the analytics service interface
type Service interface {
	GetDashboard(ctx context.Context) (*Dashboard, error)
	GetReports(ctx context.Context, days int) (*Reports, error)
}

// service implements the Service interface
type service struct {
	repo         Repository
	cacheService cache.Service
	loc          *time.Location
	currency     string
	now          func() time.Time
	log          *logger.Logger
}

// NewService creates a new analytics service instance. A nil cache disables
// result caching.
func NewService(repo Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:         repo,
		cacheService: cacheService,
		loc:          cfg.CinemaLocation(),
		currency:     cfg.Booking.Currency,
		now:          time.Now,
		log:          logger.GetDefault(),
	}
}

func (s *service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	cacheKey := constants.CACHE_KEY_ANALYTICS_DASHBOARD

	if s.cacheService != nil {
		var cached Dashboard
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	byStatus, err := s.repo.BookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	activeMovies, err := s.repo.CountActiveMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count movies: %w", err)
	}
	ratings, err := s.repo.ActiveMovieRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}
	now := s.now().In(s.loc)
	todayShowtimes, err := s.repo.CountShowtimesOn(ctx, now.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to count showtimes: %w", err)
	}
	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}
	var cancellationRate float64
	if total > 0 {
		cancellationRate = pricing.RoundMoney(float64(byStatus[string(bookings.StatusCancelled)]) / float64(total) * 100)
	}

	dashboard := &Dashboard{
		Overview: OverviewMetrics{
			TotalRevenue:     pricing.RoundMoney(revenue),
			TotalBookings:    total,
			ActiveMovies:     activeMovies,
			AverageRating:    pricing.CalculateAverageRating(ratings),
			TodayShowtimes:   todayShowtimes,
			TotalUsers:       totalUsers,
			CancellationRate: cancellationRate,
		},
		BookingsByStatus: byStatus,
		Currency:         s.currency,
		GeneratedAt:      now,
	}

	s.store(ctx, cacheKey, dashboard, constants.TTL_ANALYTICS_DASHBOARD)
	return dashboard, nil
}

func (s *service) GetReports(ctx context.Context, days int) (*Reports, error) {
	if days <= 0 {
		days = defaultReportDays
	}
	if days > maxReportDays {
		days = maxReportDays
	}
	cacheKey := fmt.Sprintf("%s:days:%d", constants.CACHE_KEY_ANALYTICS_REPORTS, days)

	if s.cacheService != nil {
		var cached Reports
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	since := today.AddDate(0, 0, -(days - 1))

	sales, err := s.repo.Sales(ctx, since)
	if err != nil {
		return nil, err
	}
	genres, err := s.repo.MovieGenres(ctx)
	if err != nil {
		return nil, err
	}
	halls, err := s.repo.HallUtilisation(ctx)
	if err != nil {
		return nil, err
	}
	for i := range halls {
		halls[i].Occupancy = pricing.RoundMoney(pricing.CalculateOccupancy(halls[i].TotalSeats, halls[i].BookedSeats))
	}
	categories, err := s.repo.ConcessionCategories(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.PaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	var paid int
	for _, p := range payments {
		paid += p.Bookings
	}
	for i := range payments {
		payments[i].Revenue = pricing.RoundMoney(payments[i].Revenue)
		if paid > 0 {
			payments[i].Share = pricing.RoundMoney(float64(payments[i].Bookings) / float64(paid) * 100)
		}
	}

	reports := &Reports{
		Days:                 days,
		RevenueByDay:         s.revenueByDay(sales, since, days),
		GenrePopularity:      genrePopularity(sales, genres),
		HallUtilisation:      halls,
		ConcessionCategories: categories,
		PaymentMethods:       payments,
		TopMovies:            topMovies(sales, topMoviesLimit),
		GeneratedAt:          now,
	}

	s.store(ctx, cacheKey, reports, constants.TTL_ANALYTICS_REPORTS)
	return reports, nil
}

func (s *service) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Set(ctx, key, value, ttl); err != nil {
		s.log.Warn("failed to cache analytics", "key", key, "error", err)
	}
}

// revenueByDay lays sales on a gapless calendar of the last days in the
// cinema's time zone
func (s *service) revenueByDay(sales []bookings.Booking, since time.Time, days int) []DailyRevenue {
	series := make([]DailyRevenue, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		series[i] = DailyRevenue{Date: date}
		index[date] = i
	}
	for _, sale := range sales {
		i, ok := index[sale.CreatedAt.In(s.loc).Format("2006-01-02")]
		if !ok {
			continue
		}
		series[i].Revenue += sale.TotalAmount
		series[i].Bookings++
		series[i].Tickets += len(sale.Seats)
	}
	for i := range series {
		series[i].Revenue = pricing.RoundMoney(series[i].Revenue)
	}
	return series
}

// genrePopularity counts booked seats per genre. A movie with several genres
// counts towards each of them.
func genrePopularity(sales []bookings.Booking, genres map[string][]string) []GenreCount {
	counts := map[string]int{}
	for _, sale := range sales {
		for _, g := range genres[sale.MovieID] {
			counts[g] += len(sale.Seats)
		}
	}
	out := make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		out = append(out, GenreCount{Genre: g, Tickets: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tickets != out[j].Tickets {
			return out[i].Tickets > out[j].Tickets
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

func topMovies(sales []bookings.Booking, limit int) []MovieRanking {
	byMovie := map[string]*MovieRanking{}
	for _, sale := range sales {
		m, ok := byMovie[sale.MovieID]
		if !ok {
			m = &MovieRanking{MovieID: sale.MovieID, Title: sale.MovieTitle}
			byMovie[sale.MovieID] = m
		}
		m.Tickets += len(sale.Seats)
		m.Revenue += sale.TotalAmount
	}
	out := make([]MovieRanking, 0, len(byMovie))
	for _, m := range byMovie {
		m.Revenue = pricing.RoundMoney(m.Revenue)
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tickets != out[j].Tickets {
			return out[i].Tickets > out[j].Tickets
		}
		return out[i].MovieID < out[j].MovieID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
