package halls

import (
	"context"
	"fmt"

	"cineplex/internal/shared/constants"
	"cineplex/pkg/cache"
)

type Service interface {
	ListCinemas(ctx context.Context) ([]Cinema, error)
	GetHall(ctx context.Context, id string) (*Hall, error)
	GetSeatLayout(ctx context.Context, hallID string) (*SeatLayoutResponse, error)
	UpdateHallStatus(ctx context.Context, id string, status Status) (*Hall, error)
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) ListCinemas(ctx context.Context) ([]Cinema, error) {
	var cinemas []Cinema
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_CINEMAS, constants.TTL_CINEMAS, func() (interface{}, error) {
		return s.repo.ListCinemas(ctx)
	}, &cinemas)
	if err != nil {
		return nil, fmt.Errorf("failed to list cinemas: %w", err)
	}
	return cinemas, nil
}

func (s *service) GetHall(ctx context.Context, id string) (*Hall, error) {
	return s.repo.GetHall(ctx, id)
}

func (s *service) GetSeatLayout(ctx context.Context, hallID string) (*SeatLayoutResponse, error) {
	hall, err := s.repo.GetHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	var seats []Seat
	err = s.cache.GetOrSet(ctx, constants.BuildHallSeatsKey(hallID), constants.TTL_HALL_SEATS, func() (interface{}, error) {
		return s.repo.GetSeatsByHall(ctx, hallID)
	}, &seats)
	if err != nil {
		return nil, fmt.Errorf("failed to load seats: %w", err)
	}

	return NewSeatLayoutResponse(hall, seats), nil
}

func (s *service) UpdateHallStatus(ctx context.Context, id string, status Status) (*Hall, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid hall status: %s", status)
	}
	if err := s.repo.UpdateHallStatus(ctx, id, status); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, constants.CACHE_KEY_CINEMAS)
	return s.repo.GetHall(ctx, id)
}
