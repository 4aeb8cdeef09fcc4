package service

import (
	"context"
	"errors"

	"stockwatch/internal/models"
	"stockwatch/internal/repository"
)

// stubRepo is an in-memory Repository for service tests. Only the methods the
// services touch are meaningful; the rest return zero values.
type stubRepo struct {
	items   []models.WatchlistItem
	listErr error
	updates map[uint64][]repository.StockPatch
	snaps   []models.QuoteSnapshot
}

func newStubRepo(items ...models.WatchlistItem) *stubRepo {
	return &stubRepo{items: items, updates: make(map[uint64][]repository.StockPatch)}
}

func (s *stubRepo) CreateWatchlist(context.Context, string) (*models.Watchlist, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) ListWatchlists(context.Context, int, int) ([]models.Watchlist, error) {
	return nil, nil
}

func (s *stubRepo) GetWatchlist(context.Context, uint64) (*models.Watchlist, error) {
	return nil, nil
}

func (s *stubRepo) DeleteWatchlist(context.Context, uint64) (bool, error) {
	return false, nil
}

func (s *stubRepo) AddStock(context.Context, uint64, string, string, repository.StockPatch) (*models.WatchlistItem, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) RemoveStock(context.Context, uint64, uint64) (bool, error) {
	return false, nil
}

func (s *stubRepo) UpdateStockFields(_ context.Context, itemID uint64, patch repository.StockPatch) (*models.WatchlistItem, error) {
	s.updates[itemID] = append(s.updates[itemID], patch)
	for i := range s.items {
		if s.items[i].ID == itemID {
			return &s.items[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) ListStocks(context.Context, uint64) ([]models.WatchlistItem, error) {
	return nil, nil
}

func (s *stubRepo) ListAllStocks(context.Context) ([]models.WatchlistItem, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.items, nil
}

func (s *stubRepo) ListAllStocksWithWatchlists(context.Context) ([]repository.StockWithWatchlist, error) {
	return nil, nil
}

func (s *stubRepo) StockCounts(context.Context, []uint64) (map[uint64]int64, error) {
	return map[uint64]int64{}, nil
}

func (s *stubRepo) InsertQuoteSnapshot(_ context.Context, item *models.QuoteSnapshot) error {
	s.snaps = append(s.snaps, *item)
	return nil
}

func (s *stubRepo) ListQuoteSnapshots(context.Context, string, int) ([]models.QuoteSnapshot, error) {
	return s.snaps, nil
}
