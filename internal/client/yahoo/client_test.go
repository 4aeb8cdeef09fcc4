package yahoo

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

const chartBody = `{
	"chart": {
		"result": [{
			"meta": {
				"symbol": "CSL.AX",
				"regularMarketPrice": 281.4,
				"previousClose": 280.0,
				"regularMarketDayHigh": 282.0,
				"regularMarketDayLow": 279.5,
				"regularMarketVolume": 123456,
				"fiftyTwoWeekHigh": 312.0,
				"fiftyTwoWeekLow": 240.0
			},
			"indicators": {"quote": [{"open": [280.2]}]}
		}],
		"error": null
	}
}`

func TestQuote_ParsesChartMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/CSL.AX" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Fatalf("browser headers missing")
		}
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	quote, raw, err := client.Quote(context.Background(), "CSL.AX")
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("raw body must be returned for snapshots")
	}
	if quote.Symbol != "CSL.AX" {
		t.Fatalf("symbol=%q", quote.Symbol)
	}
	if quote.Price == nil || *quote.Price != 281.4 {
		t.Fatalf("price=%v want 281.4", quote.Price)
	}
	if quote.PreviousClose == nil || *quote.PreviousClose != 280.0 {
		t.Fatalf("previous_close=%v want 280", quote.PreviousClose)
	}
	if quote.Open == nil || *quote.Open != 280.2 {
		t.Fatalf("open=%v want 280.2", quote.Open)
	}
	if quote.Volume == nil || *quote.Volume != 123456 {
		t.Fatalf("volume=%v want 123456", quote.Volume)
	}
}

func TestQuote_FallsBackToChartPreviousClose(t *testing.T) {
	quote, err := parseQuote([]byte(`{
		"chart": {"result": [{"meta": {"symbol": "BHP.AX", "regularMarketPrice": 45.2, "chartPreviousClose": 45.0}}], "error": null}
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if quote.PreviousClose == nil || *quote.PreviousClose != 45.0 {
		t.Fatalf("previous_close=%v want 45", quote.PreviousClose)
	}
}

func TestQuote_NoResult(t *testing.T) {
	quote, err := parseQuote([]byte(`{"chart": {"result": [], "error": null}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if quote != nil {
		t.Fatalf("quote=%+v want nil for empty result", quote)
	}
}

func TestQuote_ChartError(t *testing.T) {
	_, err := parseQuote([]byte(`{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found"}}}`))
	if err == nil {
		t.Fatalf("expected chart error")
	}
}

func TestDoRequest_Non200IsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	_, err := client.SearchRaw(context.Background(), "CSL", 5, 5)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err=%v want *APIError", err)
	}
	if apiErr.Status != http.StatusTooManyRequests {
		t.Fatalf("status=%d want 429", apiErr.Status)
	}
	if apiErr.Body != "rate limited" {
		t.Fatalf("body=%q", apiErr.Body)
	}
}

func TestSearchRaw_RequiresQuery(t *testing.T) {
	client := NewClient(http.DefaultClient, "")
	if _, err := client.SearchRaw(context.Background(), "  ", 5, 5); err == nil {
		t.Fatalf("expected error for blank query")
	}
}

func TestNews_ParsesHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("newsCount"); got != "2" {
			t.Fatalf("newsCount=%s want 2", got)
		}
		_, _ = w.Write([]byte(`{"news": [{"title": "CSL rallies", "summary": "plasma", "link": "https://example.com"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	news, err := client.News(context.Background(), "CSL", 2)
	if err != nil {
		t.Fatalf("news: %v", err)
	}
	if len(news) != 1 || news[0].Title != "CSL rallies" {
		t.Fatalf("news=%+v", news)
	}
}

func TestWeek52_Summary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	summary, err := client.Week52(context.Background(), "CSL.AX")
	if err != nil {
		t.Fatalf("week52: %v", err)
	}
	if summary.High != 312.0 || summary.Low != 240.0 {
		t.Fatalf("range=%v-%v want 240-312", summary.Low, summary.High)
	}
	if summary.Range != 72.0 {
		t.Fatalf("range=%v want 72", summary.Range)
	}
	if math.Abs(summary.RangePercent-30.0) > 1e-9 {
		t.Fatalf("range_percent=%v want 30", summary.RangePercent)
	}
}

func TestWeek52_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart": {"result": [], "error": null}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL)
	summary, err := client.Week52(context.Background(), "NOPE")
	if err != nil {
		t.Fatalf("week52: %v", err)
	}
	if summary != nil {
		t.Fatalf("summary=%+v want nil", summary)
	}
}
