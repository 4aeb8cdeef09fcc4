package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"stockwatch/internal/models"
	"stockwatch/internal/repository"
)

type watchlistResponse struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
	ItemsCount int64  `json:"items_count"`
}

type stockResponse struct {
	ID            uint64   `json:"id"`
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	CurrentPrice  *float64 `json:"current_price"`
	ChangePercent *float64 `json:"change_percent"`
	ChangeAmount  *float64 `json:"change_amount"`
	Volume        *int64   `json:"volume"`
	MarketCap     *float64 `json:"market_cap"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	OpenPrice     *float64 `json:"open_price"`
	PreviousClose *float64 `json:"previous_close"`
	LastUpdated   string   `json:"last_updated"`
}

type stockWithWatchlistResponse struct {
	stockResponse
	WatchlistID   uint64 `json:"watchlist_id"`
	WatchlistName string `json:"watchlist_name"`
}

func toWatchlistResponse(w models.Watchlist, itemsCount int64) watchlistResponse {
	return watchlistResponse{
		ID:         w.ID,
		Name:       w.Name,
		CreatedAt:  isoTime(w.CreatedAt),
		UpdatedAt:  isoTime(w.UpdatedAt),
		ItemsCount: itemsCount,
	}
}

func toStockResponse(item models.WatchlistItem) stockResponse {
	return stockResponse{
		ID:            item.ID,
		Symbol:        item.Symbol,
		Name:          item.Name,
		CurrentPrice:  decToFloat(item.CurrentPrice),
		ChangePercent: decToFloat(item.ChangePercent),
		ChangeAmount:  decToFloat(item.ChangeAmount),
		Volume:        item.Volume,
		MarketCap:     decToFloat(item.MarketCap),
		High:          decToFloat(item.High),
		Low:           decToFloat(item.Low),
		OpenPrice:     decToFloat(item.OpenPrice),
		PreviousClose: decToFloat(item.PreviousClose),
		LastUpdated:   isoTime(item.LastUpdated),
	}
}

func toStockWithWatchlistResponse(row repository.StockWithWatchlist) stockWithWatchlistResponse {
	return stockWithWatchlistResponse{
		stockResponse: toStockResponse(row.WatchlistItem),
		WatchlistID:   row.WatchlistID,
		WatchlistName: row.WatchlistName,
	}
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func decToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return &f
}

func floatToDec(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
