package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client wraps the public Yahoo Finance query API. The service proxies it so
// browser clients are not blocked by CORS; requests carry browser-like headers
// because the endpoint rejects obvious non-browser traffic.
type Client struct {
	host       string
	httpClient *http.Client
}

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error (%d): %s", e.Status, e.Body)
}

func NewClient(httpClient *http.Client, host string) *Client {
	if host == "" {
		host = "https://query1.finance.yahoo.com"
	}
	host = strings.TrimRight(host, "/")
	return &Client{
		host:       host,
		httpClient: httpClient,
	}
}

func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := c.host + path
	if len(query) > 0 {
		fullURL = fullURL + "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// SearchRaw returns the raw JSON body of the symbol/news search endpoint.
// Proxy handlers pass it through untouched.
func (c *Client) SearchRaw(ctx context.Context, q string, quotesCount, newsCount int) ([]byte, error) {
	if strings.TrimSpace(q) == "" {
		return nil, fmt.Errorf("query is required")
	}
	query := url.Values{}
	query.Set("q", q)
	query.Set("quotesCount", strconv.Itoa(quotesCount))
	query.Set("newsCount", strconv.Itoa(newsCount))
	return c.doRequest(ctx, "/v1/finance/search", query)
}

// ChartRaw returns the raw JSON body of the chart endpoint.
func (c *Client) ChartRaw(ctx context.Context, symbol, interval, rng string) ([]byte, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	query := url.Values{}
	if interval != "" {
		query.Set("interval", interval)
	}
	if rng != "" {
		query.Set("range", rng)
	}
	return c.doRequest(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query)
}

// Quote fetches the chart endpoint for a symbol and decodes the meta section
// into a typed quote. The raw body is returned alongside for snapshot storage.
func (c *Client) Quote(ctx context.Context, symbol string) (*Quote, []byte, error) {
	body, err := c.ChartRaw(ctx, symbol, "1d", "1d")
	if err != nil {
		return nil, nil, err
	}
	quote, err := parseQuote(body)
	if err != nil {
		return nil, body, err
	}
	return quote, body, nil
}

// News returns up to count headlines for a symbol from the search endpoint.
func (c *Client) News(ctx context.Context, symbol string, count int) ([]NewsItem, error) {
	if count <= 0 {
		count = 3
	}
	query := url.Values{}
	query.Set("q", symbol)
	query.Set("quotesCount", "1")
	query.Set("newsCount", strconv.Itoa(count))
	body, err := c.doRequest(ctx, "/v1/finance/search", query)
	if err != nil {
		return nil, err
	}
	return parseNews(body)
}

// Week52 summarizes the 52-week range for a symbol from the chart meta.
// Returns (nil, nil) when the provider has no chart data for the symbol.
func (c *Client) Week52(ctx context.Context, symbol string) (*Week52Summary, error) {
	quote, _, err := c.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, nil
	}
	out := &Week52Summary{
		Symbol:       symbol,
		CurrentPrice: floatOrZero(quote.Price),
		High:         floatOrZero(quote.FiftyTwoWeekHigh),
		Low:          floatOrZero(quote.FiftyTwoWeekLow),
	}
	out.Range = out.High - out.Low
	if out.Low > 0 {
		out.RangePercent = out.Range / out.Low * 100
	}
	return out, nil
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
