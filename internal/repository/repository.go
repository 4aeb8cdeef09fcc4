package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"stockwatch/internal/models"
)

// StockPatch is a partial update over the optional snapshot fields of a
// WatchlistItem. A nil field is left untouched; a non-nil field overwrites the
// stored value. There is deliberately no way to clear a field back to unknown.
type StockPatch struct {
	CurrentPrice  *decimal.Decimal
	ChangePercent *decimal.Decimal
	ChangeAmount  *decimal.Decimal
	Volume        *int64
	MarketCap     *decimal.Decimal
	High          *decimal.Decimal
	Low           *decimal.Decimal
	OpenPrice     *decimal.Decimal
	PreviousClose *decimal.Decimal
}

func (p StockPatch) IsZero() bool {
	return p.CurrentPrice == nil &&
		p.ChangePercent == nil &&
		p.ChangeAmount == nil &&
		p.Volume == nil &&
		p.MarketCap == nil &&
		p.High == nil &&
		p.Low == nil &&
		p.OpenPrice == nil &&
		p.PreviousClose == nil
}

// StockWithWatchlist is one row of the items-joined-with-watchlists view. The
// join is inner, so WatchlistName is always present.
type StockWithWatchlist struct {
	models.WatchlistItem
	WatchlistName string
}

type Repository interface {
	// Watchlists. Gets return (nil, nil) when the id is absent; deletes report
	// whether a row existed.
	CreateWatchlist(ctx context.Context, name string) (*models.Watchlist, error)
	ListWatchlists(ctx context.Context, skip, limit int) ([]models.Watchlist, error)
	GetWatchlist(ctx context.Context, id uint64) (*models.Watchlist, error)
	DeleteWatchlist(ctx context.Context, id uint64) (bool, error)

	// Stocks. AddStock returns ErrWatchlistMissing when the parent does not
	// exist and ErrDuplicateSymbol when the (watchlist, symbol) pair is taken.
	AddStock(ctx context.Context, watchlistID uint64, symbol, name string, patch StockPatch) (*models.WatchlistItem, error)
	RemoveStock(ctx context.Context, watchlistID, itemID uint64) (bool, error)
	UpdateStockFields(ctx context.Context, itemID uint64, patch StockPatch) (*models.WatchlistItem, error)
	ListStocks(ctx context.Context, watchlistID uint64) ([]models.WatchlistItem, error)
	ListAllStocks(ctx context.Context) ([]models.WatchlistItem, error)
	ListAllStocksWithWatchlists(ctx context.Context) ([]StockWithWatchlist, error)
	StockCounts(ctx context.Context, watchlistIDs []uint64) (map[uint64]int64, error)

	// Quote snapshot audit rows.
	InsertQuoteSnapshot(ctx context.Context, item *models.QuoteSnapshot) error
	ListQuoteSnapshots(ctx context.Context, symbol string, limit int) ([]models.QuoteSnapshot, error)
}
