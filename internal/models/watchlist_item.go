package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WatchlistItem is one tracked symbol within exactly one watchlist, carrying the
// last known market snapshot. Every snapshot field is a pointer: nil means the
// value has never been observed, which is distinct from zero.
type WatchlistItem struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	WatchlistID uint64 `gorm:"not null;uniqueIndex:idx_watchlist_symbol"`
	Symbol      string `gorm:"type:text;not null;uniqueIndex:idx_watchlist_symbol"`
	Name        string `gorm:"type:text;not null"`

	CurrentPrice  *decimal.Decimal `gorm:"type:numeric(20,6)"`
	ChangePercent *decimal.Decimal `gorm:"type:numeric(20,6)"`
	ChangeAmount  *decimal.Decimal `gorm:"type:numeric(20,6)"`
	Volume        *int64           `gorm:""`
	MarketCap     *decimal.Decimal `gorm:"type:numeric(30,6)"`
	High          *decimal.Decimal `gorm:"type:numeric(20,6)"`
	Low           *decimal.Decimal `gorm:"type:numeric(20,6)"`
	OpenPrice     *decimal.Decimal `gorm:"type:numeric(20,6)"`
	PreviousClose *decimal.Decimal `gorm:"type:numeric(20,6)"`

	LastUpdated time.Time `gorm:"type:timestamptz;not null"`
}

func (WatchlistItem) TableName() string {
	return "watchlist_items"
}
