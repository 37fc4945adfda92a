package movies

import (
	"context"
	"fmt"
	"strings"

	"cineplex/internal/shared/constants"
	"cineplex/internal/shared/utils/sequence"
	"cineplex/pkg/cache"
	"cineplex/pkg/logger"
)

type Service interface {
	SetShowtimeChecker(checker ShowtimeChecker)

	ListMovies(ctx context.Context, q ListQuery) ([]Movie, error)
	GetMovie(ctx context.Context, id string) (*Movie, error)
	GetFacets(ctx context.Context) (*CatalogueFacets, error)
	NowShowing(ctx context.Context) ([]Movie, error)
	ComingSoon(ctx context.Context) ([]Movie, error)

	AdminListMovies(ctx context.Context, q AdminListQuery) (*AdminMovieList, error)
	CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error)
	UpdateMovie(ctx context.Context, id string, req UpdateMovieRequest) (*Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

// ShowtimeChecker reports scheduled showtimes for a movie without importing the showtimes package
type ShowtimeChecker interface {
	CountScheduledByMovie(ctx context.Context, movieID string) (int64, error)
}

type service struct {
	repo      Repository
	cache     cache.Service
	showtimes ShowtimeChecker
	log       *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		log:   logger.GetDefault(),
	}
}

func (s *service) SetShowtimeChecker(checker ShowtimeChecker) {
	s.showtimes = checker
}

func (s *service) ListMovies(ctx context.Context, q ListQuery) ([]Movie, error) {
	key := constants.BuildMoviesListKey(q.Genre, q.Language, q.Status, strings.ToLower(q.Query), q.Sort)

	var result []Movie
	err := s.cache.GetOrSet(ctx, key, constants.TTL_MOVIES_LIST, func() (interface{}, error) {
		all, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return Apply(all, q), nil
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return result, nil
}

func (s *service) GetMovie(ctx context.Context, id string) (*Movie, error) {
	var movie Movie
	err := s.cache.GetOrSet(ctx, constants.BuildMovieDetailKey(id), constants.TTL_MOVIE_DETAIL, func() (interface{}, error) {
		return s.repo.GetByID(ctx, id)
	}, &movie)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *service) GetFacets(ctx context.Context) (*CatalogueFacets, error) {
	var facets CatalogueFacets
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_GENRES, constants.TTL_MOVIES_LIST, func() (interface{}, error) {
		all, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return &CatalogueFacets{Genres: Genres(all), Languages: Languages(all)}, nil
	}, &facets)
	if err != nil {
		return nil, fmt.Errorf("failed to load genres: %w", err)
	}
	return &facets, nil
}

func (s *service) NowShowing(ctx context.Context) ([]Movie, error) {
	return s.repo.ListByStatus(ctx, StatusNowShowing)
}

func (s *service) ComingSoon(ctx context.Context) ([]Movie, error) {
	return s.repo.ListByStatus(ctx, StatusComingSoon)
}

func (s *service) AdminListMovies(ctx context.Context, q AdminListQuery) (*AdminMovieList, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	filtered := FilterAdmin(all, q.Query, q.Status)
	return &AdminMovieList{Movies: filtered, Shown: len(filtered), Total: len(all)}, nil
}

func (s *service) CreateMovie(ctx context.Context, req CreateMovieRequest) (*Movie, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return nil, err
	}

	status := StatusComingSoon
	if req.Status != "" {
		status = Status(req.Status)
	}

	movie := &Movie{
		ID:          id,
		Title:       strings.TrimSpace(req.Title),
		PosterURL:   req.PosterURL,
		BackdropURL: req.BackdropURL,
		Rating:      req.Rating,
		Duration:    req.Duration,
		Genre:       trimAll(req.Genre),
		Language:    req.Language,
		ReleaseDate: req.ReleaseDate,
		Synopsis:    req.Synopsis,
		Director:    req.Director,
		Cast:        trimAll(req.Cast),
		AgeRating:   AgeRating(req.AgeRating),
		Status:      status,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	s.invalidate(ctx)
	s.log.Info("movie created", "movie_id", movie.ID, "title", movie.Title)
	return movie, nil
}

func (s *service) UpdateMovie(ctx context.Context, id string, req UpdateMovieRequest) (*Movie, error) {
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		movie.Title = strings.TrimSpace(*req.Title)
	}
	if req.PosterURL != nil {
		movie.PosterURL = *req.PosterURL
	}
	if req.BackdropURL != nil {
		movie.BackdropURL = *req.BackdropURL
	}
	if req.Rating != nil {
		movie.Rating = *req.Rating
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	if req.Genre != nil {
		movie.Genre = trimAll(req.Genre)
	}
	if req.Language != nil {
		movie.Language = *req.Language
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = *req.ReleaseDate
	}
	if req.Synopsis != nil {
		movie.Synopsis = *req.Synopsis
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Cast != nil {
		movie.Cast = trimAll(req.Cast)
	}
	if req.AgeRating != nil {
		movie.AgeRating = AgeRating(*req.AgeRating)
	}
	if req.Status != nil {
		movie.Status = Status(*req.Status)
	}

	if err := s.repo.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	s.invalidate(ctx)
	s.log.Info("movie updated", "movie_id", movie.ID)
	return movie, nil
}

func (s *service) DeleteMovie(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if s.showtimes != nil {
		scheduled, err := s.showtimes.CountScheduledByMovie(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check showtimes: %w", err)
		}
		if scheduled > 0 {
			return fmt.Errorf("%w: %d", ErrMovieHasShowtimes, scheduled)
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.Info("movie deleted", "movie_id", id)
	return nil
}

// nextID continues the m<n> sequence
func (s *service) nextID(ctx context.Context) (string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to allocate movie id: %w", err)
	}
	ids := make([]string, len(all))
	for i, m := range all {
		ids[i] = m.ID
	}
	return sequence.Next("m", ids), nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.MoviesPattern()); err != nil {
		s.log.Warn("failed to invalidate movie cache", "error", err)
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
