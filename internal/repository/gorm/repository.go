package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"stockwatch/internal/models"
	"stockwatch/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

// --- Watchlists -------------------------------------------------------------

func (s *Store) CreateWatchlist(ctx context.Context, name string) (*models.Watchlist, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, repository.ErrEmptyName
	}
	now := time.Now().UTC()
	item := &models.Watchlist{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) ListWatchlists(ctx context.Context, skip, limit int) ([]models.Watchlist, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	var items []models.Watchlist
	if err := s.db.WithContext(ctx).
		Model(&models.Watchlist{}).
		Order("id asc").
		Offset(skip).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetWatchlist(ctx context.Context, id uint64) (*models.Watchlist, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Watchlist
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) DeleteWatchlist(ctx context.Context, id uint64) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	deleted := false
	err := s.InTx(ctx, func(tx *gorm.DB) error {
		// Items go first so no orphan can survive even without DB-level cascade.
		if err := tx.Where("watchlist_id = ?", id).Delete(&models.WatchlistItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Watchlist{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// --- Stocks -----------------------------------------------------------------

func (s *Store) AddStock(ctx context.Context, watchlistID uint64, symbol, name string, patch repository.StockPatch) (*models.WatchlistItem, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	symbol = strings.TrimSpace(symbol)
	var item *models.WatchlistItem
	err := s.InTx(ctx, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Watchlist{}).Where("id = ?", watchlistID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return repository.ErrWatchlistMissing
		}
		now := time.Now().UTC()
		item = &models.WatchlistItem{
			WatchlistID:   watchlistID,
			Symbol:        symbol,
			Name:          name,
			CurrentPrice:  patch.CurrentPrice,
			ChangePercent: patch.ChangePercent,
			ChangeAmount:  patch.ChangeAmount,
			Volume:        patch.Volume,
			MarketCap:     patch.MarketCap,
			High:          patch.High,
			Low:           patch.Low,
			OpenPrice:     patch.OpenPrice,
			PreviousClose: patch.PreviousClose,
			LastUpdated:   now,
		}
		if err := tx.Create(item).Error; err != nil {
			// The unique index is the arbiter; racing adds lose here, not in
			// an application-level lock.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return repository.ErrDuplicateSymbol
			}
			return err
		}
		return tx.Model(&models.Watchlist{}).
			Where("id = ?", watchlistID).
			Update("updated_at", now).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Store) RemoveStock(ctx context.Context, watchlistID, itemID uint64) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	removed := false
	err := s.InTx(ctx, func(tx *gorm.DB) error {
		// Scoped to the watchlist: an item id that belongs elsewhere is a miss.
		res := tx.Where("id = ? AND watchlist_id = ?", itemID, watchlistID).
			Delete(&models.WatchlistItem{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected > 0
		if !removed {
			return nil
		}
		return tx.Model(&models.Watchlist{}).
			Where("id = ?", watchlistID).
			Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (s *Store) UpdateStockFields(ctx context.Context, itemID uint64, patch repository.StockPatch) (*models.WatchlistItem, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.WatchlistItem
	err := s.InTx(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return err
		}
		updates := map[string]any{}
		if patch.CurrentPrice != nil {
			updates["current_price"] = *patch.CurrentPrice
			item.CurrentPrice = patch.CurrentPrice
		}
		if patch.ChangePercent != nil {
			updates["change_percent"] = *patch.ChangePercent
			item.ChangePercent = patch.ChangePercent
		}
		if patch.ChangeAmount != nil {
			updates["change_amount"] = *patch.ChangeAmount
			item.ChangeAmount = patch.ChangeAmount
		}
		if patch.Volume != nil {
			updates["volume"] = *patch.Volume
			item.Volume = patch.Volume
		}
		if patch.MarketCap != nil {
			updates["market_cap"] = *patch.MarketCap
			item.MarketCap = patch.MarketCap
		}
		if patch.High != nil {
			updates["high"] = *patch.High
			item.High = patch.High
		}
		if patch.Low != nil {
			updates["low"] = *patch.Low
			item.Low = patch.Low
		}
		if patch.OpenPrice != nil {
			updates["open_price"] = *patch.OpenPrice
			item.OpenPrice = patch.OpenPrice
		}
		if patch.PreviousClose != nil {
			updates["previous_close"] = *patch.PreviousClose
			item.PreviousClose = patch.PreviousClose
		}
		// LastUpdated advances even when the patch is empty or equal to the
		// stored values: the call records a successful observation.
		now := time.Now().UTC()
		updates["last_updated"] = now
		item.LastUpdated = now
		return tx.Model(&models.WatchlistItem{}).
			Where("id = ?", itemID).
			Updates(updates).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListStocks(ctx context.Context, watchlistID uint64) ([]models.WatchlistItem, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.WatchlistItem
	if err := s.db.WithContext(ctx).
		Where("watchlist_id = ?", watchlistID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListAllStocks(ctx context.Context) ([]models.WatchlistItem, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.WatchlistItem
	if err := s.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListAllStocksWithWatchlists(ctx context.Context) ([]repository.StockWithWatchlist, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var rows []repository.StockWithWatchlist
	if err := s.db.WithContext(ctx).
		Table("watchlist_items AS i").
		Select("i.*, w.name AS watchlist_name").
		Joins("INNER JOIN watchlists AS w ON w.id = i.watchlist_id").
		Order("i.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) StockCounts(ctx context.Context, watchlistIDs []uint64) (map[uint64]int64, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.WatchlistItem{}).
		Select("watchlist_id, COUNT(*) AS n").
		Group("watchlist_id")
	if len(watchlistIDs) > 0 {
		query = query.Where("watchlist_id IN ?", watchlistIDs)
	}
	var rows []struct {
		WatchlistID uint64
		N           int64
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		out[r.WatchlistID] = r.N
	}
	return out, nil
}

// --- Quote snapshots --------------------------------------------------------

func (s *Store) InsertQuoteSnapshot(ctx context.Context, item *models.QuoteSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if item.FetchedAt.IsZero() {
		item.FetchedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListQuoteSnapshots(ctx context.Context, symbol string, limit int) ([]models.QuoteSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	query := s.db.WithContext(ctx).Model(&models.QuoteSnapshot{})
	if symbol = strings.TrimSpace(symbol); symbol != "" {
		query = query.Where("symbol = ?", symbol)
	}
	var items []models.QuoteSnapshot
	if err := query.Order("fetched_at desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
