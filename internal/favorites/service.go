package favorites

import (
	"context"
	"fmt"
	"time"

	"cineplex/internal/movies"
	"cineplex/pkg/logger"
)

type Service interface {
	List(ctx context.Context, userID string) (*FavoritesResponse, error)
	Status(ctx context.Context, userID, movieID string) (*FavoriteStatusResponse, error)
	// Add saves a movie and reports whether it was newly added
	Add(ctx context.Context, userID, movieID string) (*FavoriteResponse, bool, error)
	Remove(ctx context.Context, userID, movieID string) error
}

type service struct {
	repo      Repository
	movieRepo movies.Repository
	now       func() time.Time
	log       *logger.Logger
}

func NewService(repo Repository, movieRepo movies.Repository) Service {
	return &service{
		repo:      repo,
		movieRepo: movieRepo,
		now:       time.Now,
		log:       logger.GetDefault(),
	}
}

func (s *service) List(ctx context.Context, userID string) (*FavoritesResponse, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	out := &FavoritesResponse{Favorites: make([]FavoriteResponse, 0, len(favorites))}
	for _, f := range favorites {
		out.Favorites = append(out.Favorites, toResponse(f))
	}
	out.Count = len(out.Favorites)
	return out, nil
}

func (s *service) Status(ctx context.Context, userID, movieID string) (*FavoriteStatusResponse, error) {
	ok, err := s.repo.Exists(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	return &FavoriteStatusResponse{MovieID: movieID, IsFavorite: ok}, nil
}

func (s *service) Add(ctx context.Context, userID, movieID string) (*FavoriteResponse, bool, error) {
	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return nil, false, err
	}

	favorite := &Favorite{UserID: userID, MovieID: movie.ID, CreatedAt: s.now()}
	created, err := s.repo.Add(ctx, favorite)
	if err != nil {
		return nil, false, fmt.Errorf("failed to add favorite: %w", err)
	}
	if created {
		s.log.WithUserID(userID).Info("movie added to favorites", "movie_id", movie.ID)
	}

	favorite.Movie = *movie
	resp := toResponse(*favorite)
	return &resp, created, nil
}

func (s *service) Remove(ctx context.Context, userID, movieID string) error {
	if err := s.repo.Remove(ctx, userID, movieID); err != nil {
		return err
	}
	s.log.WithUserID(userID).Info("movie removed from favorites", "movie_id", movieID)
	return nil
}

func toResponse(f Favorite) FavoriteResponse {
	return FavoriteResponse{MovieID: f.MovieID, AddedAt: f.CreatedAt, Movie: f.Movie}
}
