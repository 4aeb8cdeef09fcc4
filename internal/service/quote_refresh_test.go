package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"stockwatch/internal/client/yahoo"
)

type fakeQuotes struct {
	bySymbol map[string]*yahoo.Quote
	errFor   string
	calls    []string
}

func (f *fakeQuotes) Quote(_ context.Context, symbol string) (*yahoo.Quote, []byte, error) {
	f.calls = append(f.calls, symbol)
	if symbol == f.errFor {
		return nil, nil, errors.New("provider down")
	}
	return f.bySymbol[symbol], []byte(`{"chart":{}}`), nil
}

func i64ptr(v int64) *int64 { return &v }

func TestRefreshAll_UpdatesEveryItemOfASymbol(t *testing.T) {
	repo := newStubRepo(
		item(1, "CSL", "CSL Limited", nil),
		item(2, "CSL", "CSL Limited", nil),
		item(3, "BHP", "BHP Group", nil),
	)
	quotes := &fakeQuotes{bySymbol: map[string]*yahoo.Quote{
		"CSL": {Symbol: "CSL", Price: fptr(281), PreviousClose: fptr(280), Volume: i64ptr(1000)},
		"BHP": {Symbol: "BHP", Price: fptr(45.2), PreviousClose: fptr(45)},
	}}
	svc := &QuoteRefreshService{Repo: repo, Quotes: quotes}

	result, err := svc.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if result.Symbols != 2 || result.Updated != 3 || result.Errors != 0 {
		t.Fatalf("result=%+v want {2 3 0}", result)
	}
	// One provider call per distinct symbol.
	if len(quotes.calls) != 2 {
		t.Fatalf("calls=%v want one per symbol", quotes.calls)
	}
	if len(repo.updates[1]) != 1 || len(repo.updates[2]) != 1 || len(repo.updates[3]) != 1 {
		t.Fatalf("updates=%v want one per item", repo.updates)
	}
	// One audit snapshot per fetched symbol.
	if len(repo.snaps) != 2 {
		t.Fatalf("snapshots=%d want 2", len(repo.snaps))
	}
}

func TestRefreshAll_SymbolFailureIsIsolated(t *testing.T) {
	repo := newStubRepo(
		item(1, "CSL", "CSL Limited", nil),
		item(2, "BHP", "BHP Group", nil),
	)
	quotes := &fakeQuotes{
		bySymbol: map[string]*yahoo.Quote{
			"BHP": {Symbol: "BHP", Price: fptr(45.2), PreviousClose: fptr(45)},
		},
		errFor: "CSL",
	}
	svc := &QuoteRefreshService{Repo: repo, Quotes: quotes}

	result, err := svc.RefreshAll(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if result.Errors != 1 || result.Updated != 1 {
		t.Fatalf("result=%+v want 1 error, 1 update", result)
	}
	if len(repo.updates[1]) != 0 {
		t.Fatalf("failed symbol must not be written")
	}
}

func TestRefreshAll_CanceledContext(t *testing.T) {
	repo := newStubRepo(item(1, "CSL", "CSL Limited", nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := &QuoteRefreshService{Repo: repo, Quotes: &fakeQuotes{}}

	if _, err := svc.RefreshAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want context.Canceled", err)
	}
}

func TestPatchFromQuote_ChangeComputation(t *testing.T) {
	patch := patchFromQuote(&yahoo.Quote{
		Price:         fptr(110),
		PreviousClose: fptr(100),
		High:          fptr(112),
		Low:           fptr(99),
		Volume:        i64ptr(5000),
	})
	if patch.ChangeAmount == nil || !patch.ChangeAmount.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("change_amount=%v want 10", patch.ChangeAmount)
	}
	if patch.ChangePercent == nil || !patch.ChangePercent.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("change_percent=%v want 10", patch.ChangePercent)
	}
	if patch.Volume == nil || *patch.Volume != 5000 {
		t.Fatalf("volume=%v want 5000", patch.Volume)
	}
}

func TestPatchFromQuote_NoPreviousClose(t *testing.T) {
	patch := patchFromQuote(&yahoo.Quote{Price: fptr(110)})
	if patch.ChangeAmount != nil || patch.ChangePercent != nil {
		t.Fatalf("change fields must stay nil without a previous close")
	}
	if patch.CurrentPrice == nil || !patch.CurrentPrice.Equal(decimal.NewFromInt(110)) {
		t.Fatalf("current_price=%v want 110", patch.CurrentPrice)
	}
}
