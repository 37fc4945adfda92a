package concessions

import (
	"context"
	"fmt"

	"cineplex/internal/shared/constants"
	"cineplex/pkg/cache"
	"cineplex/pkg/logger"

	"gorm.io/gorm"
)

type Service interface {
	ListItems(ctx context.Context, q ListQuery) ([]Item, error)
	Categories(ctx context.Context) ([]Category, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	AllItems(ctx context.Context) ([]Item, error)

	// CheckStock checks every cart line against current stock and returns the
	// items keyed by id, priced as the store has them now.
	CheckStock(ctx context.Context, cart Cart) (map[string]Item, error)
	DecrementStock(tx *gorm.DB, cart Cart) error
	InvalidateCache(ctx context.Context)

	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error)
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService, log: logger.GetDefault()}
}

func (s *service) AllItems(ctx context.Context) ([]Item, error) {
	var items []Item
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_CONCESSIONS, constants.TTL_CONCESSIONS, func() (interface{}, error) {
		return s.repo.List(ctx)
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to list concessions: %w", err)
	}
	return items, nil
}

func (s *service) ListItems(ctx context.Context, q ListQuery) ([]Item, error) {
	items, err := s.AllItems(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, q.Category, q.Query), nil
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	items, err := s.AllItems(ctx)
	if err != nil {
		return nil, err
	}
	return Categories(items), nil
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CheckStock(ctx context.Context, cart Cart) (map[string]Item, error) {
	quantities := cart.Quantities()
	ids := make([]string, 0, len(quantities))
	for id := range quantities {
		ids = append(ids, id)
	}

	items, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for id, qty := range quantities {
		item, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
		if !item.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
		}
		if !item.InStock(qty) {
			return nil, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, item.Name, item.StockLevel)
		}
	}
	return byID, nil
}

func (s *service) DecrementStock(tx *gorm.DB, cart Cart) error {
	for _, line := range cart.Lines {
		if err := s.repo.DecrementStock(tx, line.ItemID, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// InvalidateCache drops the cached catalogue after stock changed
func (s *service) InvalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.CACHE_KEY_CONCESSIONS); err != nil {
		s.log.Warn("failed to invalidate concessions cache", "error", err)
	}
}

func (s *service) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.StockLevel != nil {
		item.StockLevel = *req.StockLevel
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update concession item: %w", err)
	}
	s.InvalidateCache(ctx)

	s.log.Info("concession item updated", "item_id", id, "stock_level", item.StockLevel, "is_available", item.IsAvailable)
	return item, nil
}
