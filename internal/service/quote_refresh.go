package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stockwatch/internal/client/yahoo"
	"stockwatch/internal/models"
	"stockwatch/internal/repository"
)

type QuoteClient interface {
	Quote(ctx context.Context, symbol string) (*yahoo.Quote, []byte, error)
}

// QuoteRefreshService periodically pulls fresh quotes from the provider and
// writes them into every item tracking that symbol. Provider failures are
// per-symbol and never touch already-committed rows.
type QuoteRefreshService struct {
	Repo   repository.Repository
	Quotes QuoteClient
	Logger *zap.Logger
}

type RefreshResult struct {
	Symbols int
	Updated int
	Errors  int
}

func (s *QuoteRefreshService) RefreshAll(ctx context.Context) (RefreshResult, error) {
	var result RefreshResult
	items, err := s.Repo.ListAllStocks(ctx)
	if err != nil {
		return result, err
	}

	itemsBySymbol := make(map[string][]uint64)
	var symbols []string
	for _, item := range items {
		if _, ok := itemsBySymbol[item.Symbol]; !ok {
			symbols = append(symbols, item.Symbol)
		}
		itemsBySymbol[item.Symbol] = append(itemsBySymbol[item.Symbol], item.ID)
	}
	result.Symbols = len(symbols)

	for _, symbol := range symbols {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		quote, raw, err := s.Quotes.Quote(ctx, symbol)
		if err != nil {
			result.Errors++
			if s.Logger != nil {
				s.Logger.Warn("quote fetch failed", zap.String("symbol", symbol), zap.Error(err))
			}
			continue
		}
		if quote == nil {
			continue
		}
		patch := patchFromQuote(quote)
		if patch.IsZero() {
			continue
		}
		for _, id := range itemsBySymbol[symbol] {
			if _, err := s.Repo.UpdateStockFields(ctx, id, patch); err != nil {
				result.Errors++
				if s.Logger != nil {
					s.Logger.Warn("quote write failed",
						zap.String("symbol", symbol),
						zap.Uint64("item_id", id),
						zap.Error(err))
				}
				continue
			}
			result.Updated++
		}
		if len(raw) > 0 {
			if err := s.Repo.InsertQuoteSnapshot(ctx, &models.QuoteSnapshot{
				Symbol:  symbol,
				Payload: raw,
			}); err != nil && s.Logger != nil {
				s.Logger.Warn("quote snapshot insert failed", zap.String("symbol", symbol), zap.Error(err))
			}
		}
	}
	return result, nil
}

func patchFromQuote(quote *yahoo.Quote) repository.StockPatch {
	patch := repository.StockPatch{
		CurrentPrice:  decPtr(quote.Price),
		High:          decPtr(quote.High),
		Low:           decPtr(quote.Low),
		OpenPrice:     decPtr(quote.Open),
		PreviousClose: decPtr(quote.PreviousClose),
		Volume:        quote.Volume,
	}
	if quote.Price != nil && quote.PreviousClose != nil && *quote.PreviousClose != 0 {
		change := decimal.NewFromFloat(*quote.Price).Sub(decimal.NewFromFloat(*quote.PreviousClose))
		pct := change.Div(decimal.NewFromFloat(*quote.PreviousClose)).Mul(decimal.NewFromInt(100))
		patch.ChangeAmount = &change
		patch.ChangePercent = &pct
	}
	return patch
}

func decPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
