package showtimes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cineplex/internal/halls"
	"cineplex/internal/movies"
	"cineplex/internal/pricing"
	"cineplex/internal/shared/utils/sequence"
	"cineplex/pkg/logger"

	"gorm.io/gorm"
)

type Service interface {
	SetSeatLifecycle(seats SeatLifecycle)

	GetShowtime(ctx context.Context, id string) (*Showtime, error)
	GetShowtimeDetail(ctx context.Context, id string) (*ShowtimeDetail, error)
	ShowtimesForMovie(ctx context.Context, movieID, date string) ([]Showtime, error)
	DatesForMovie(ctx context.Context, movieID string) ([]string, error)
	EnsureBookable(ctx context.Context, id string) (*Showtime, error)
	CountScheduledByMovie(ctx context.Context, movieID string) (int64, error)

	Schedule(ctx context.Context, date string) (*DaySchedule, error)
	CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*Showtime, error)
	CancelShowtime(ctx context.Context, id string) (*Showtime, error)
	DeleteShowtime(ctx context.Context, id string) error
}

// SeatLifecycle creates and removes the per-showtime seat statuses
type SeatLifecycle interface {
	InitializeSeats(tx *gorm.DB, showtimeID, hallID string) error
	RemoveSeats(tx *gorm.DB, showtimeID string) error
	CountBooked(ctx context.Context, showtimeID string) (int64, error)
}

type service struct {
	repo      Repository
	movieRepo movies.Repository
	hallRepo  halls.Repository
	seats     SeatLifecycle
	loc       *time.Location
	now       func() time.Time
	log       *logger.Logger
}

func NewService(repo Repository, movieRepo movies.Repository, hallRepo halls.Repository, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:      repo,
		movieRepo: movieRepo,
		hallRepo:  hallRepo,
		loc:       loc,
		now:       time.Now,
		log:       logger.GetDefault(),
	}
}

func (s *service) SetSeatLifecycle(seats SeatLifecycle) {
	s.seats = seats
}

func (s *service) GetShowtime(ctx context.Context, id string) (*Showtime, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetShowtimeDetail(ctx context.Context, id string) (*ShowtimeDetail, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	movie, err := s.movieRepo.GetByID(ctx, st.MovieID)
	if err != nil && !errors.Is(err, movies.ErrMovieNotFound) {
		return nil, err
	}

	detail := &ShowtimeDetail{Showtime: *st, Movie: movie}
	if start, err := st.StartsAt(s.loc); err == nil {
		detail.Countdown = pricing.TimeUntilShowtime(start, s.now())
	}
	detail.Bookable = s.bookable(st, movie) == nil
	return detail, nil
}

func (s *service) ShowtimesForMovie(ctx context.Context, movieID, date string) ([]Showtime, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, err
	}
	return s.repo.ListByMovie(ctx, movieID, date)
}

func (s *service) DatesForMovie(ctx context.Context, movieID string) ([]string, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return nil, err
	}
	return s.repo.DatesForMovie(ctx, movieID)
}

// EnsureBookable returns the showtime when seats may be held for it
func (s *service) EnsureBookable(ctx context.Context, id string) (*Showtime, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	movie, err := s.movieRepo.GetByID(ctx, st.MovieID)
	if err != nil {
		return nil, err
	}
	if err := s.bookable(st, movie); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) bookable(st *Showtime, movie *movies.Movie) error {
	if movie == nil || !movie.IsBookable() {
		return fmt.Errorf("%w: movie is not now showing", ErrNotBookable)
	}
	if st.Status != StatusScheduled {
		return fmt.Errorf("%w: showtime is %s", ErrNotBookable, st.Status)
	}
	start, err := st.StartsAt(s.loc)
	if err != nil {
		return err
	}
	if !start.After(s.now()) {
		return fmt.Errorf("%w: showtime has started", ErrNotBookable)
	}
	return nil
}

func (s *service) CountScheduledByMovie(ctx context.Context, movieID string) (int64, error) {
	return s.repo.CountScheduledByMovie(ctx, movieID)
}

// Schedule groups a day's showtimes by hall name, each hall ordered by time
func (s *service) Schedule(ctx context.Context, date string) (*DaySchedule, error) {
	if date == "" {
		date = s.now().In(s.loc).Format(DateLayout)
	}

	list, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	titles := map[string]string{}
	movieIDs := make([]string, 0, len(list))
	for _, st := range list {
		movieIDs = append(movieIDs, st.MovieID)
	}
	found, err := s.movieRepo.GetByIDs(ctx, movieIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load movies: %w", err)
	}
	for _, m := range found {
		titles[m.ID] = m.Title
	}

	byHall := map[string]*HallSchedule{}
	var order []string
	for _, st := range list {
		hs, ok := byHall[st.HallName]
		if !ok {
			hs = &HallSchedule{HallName: st.HallName, HallType: st.HallType}
			byHall[st.HallName] = hs
			order = append(order, st.HallName)
		}
		hs.Showtimes = append(hs.Showtimes, ScheduleItem{Showtime: st, MovieTitle: titles[st.MovieID]})
	}

	sort.Strings(order)
	schedule := &DaySchedule{Date: date, Total: len(list)}
	for _, name := range order {
		hs := byHall[name]
		sort.SliceStable(hs.Showtimes, func(i, j int) bool { return hs.Showtimes[i].Time < hs.Showtimes[j].Time })
		schedule.Halls = append(schedule.Halls, *hs)
	}
	return schedule, nil
}

func (s *service) CreateShowtime(ctx context.Context, req CreateShowtimeRequest) (*Showtime, error) {
	movie, err := s.movieRepo.GetByID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie.Status != movies.StatusNowShowing && movie.Status != movies.StatusComingSoon {
		return nil, fmt.Errorf("%w: %s is %s", ErrMovieNotSchedulable, movie.Title, movie.Status)
	}

	hall, err := s.hallRepo.GetHall(ctx, req.HallID)
	if err != nil {
		return nil, err
	}
	if !hall.IsBookable() {
		return nil, fmt.Errorf("%w: %s is %s", ErrHallUnavailable, hall.Name, hall.Status)
	}

	taken, err := s.repo.SlotTaken(ctx, hall.ID, req.Date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	price, vipPrice := PricesFor(hall.Type)
	if req.Price != nil {
		price = *req.Price
	}
	if req.VIPPrice != nil {
		vipPrice = *req.VIPPrice
	}

	ids, err := s.repo.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate showtime id: %w", err)
	}

	st := &Showtime{
		ID:       sequence.Next("s", ids),
		MovieID:  movie.ID,
		HallID:   hall.ID,
		HallName: hall.Name,
		HallType: hall.Type,
		Date:     req.Date,
		Time:     req.Time,
		Price:    price,
		VIPPrice: vipPrice,
		Status:   StatusScheduled,
	}

	err = s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.repo.Create(tx, st); err != nil {
			return err
		}
		if s.seats != nil {
			return s.seats.InitializeSeats(tx, st.ID, hall.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create showtime: %w", err)
	}

	s.log.Info("showtime created", "showtime_id", st.ID, "movie_id", st.MovieID, "hall_id", st.HallID, "date", st.Date, "time", st.Time)
	return st, nil
}

func (s *service) CancelShowtime(ctx context.Context, id string) (*Showtime, error) {
	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	s.log.Info("showtime cancelled", "showtime_id", id)
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeleteShowtime(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if s.seats != nil {
		booked, err := s.seats.CountBooked(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check bookings: %w", err)
		}
		if booked > 0 {
			return fmt.Errorf("%w: %d seats", ErrShowtimeHasBookings, booked)
		}
	}

	err := s.repo.Transaction(ctx, func(tx *gorm.DB) error {
		if s.seats != nil {
			if err := s.seats.RemoveSeats(tx, id); err != nil {
				return err
			}
		}
		return s.repo.Delete(tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("showtime deleted", "showtime_id", id)
	return nil
}
