package yahoo

import (
	"encoding/json"
	"fmt"
)

// Quote is the subset of the chart meta the tracker stores per symbol.
type Quote struct {
	Symbol           string
	Price            *float64
	PreviousClose    *float64
	Open             *float64
	High             *float64
	Low              *float64
	Volume           *int64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
}

type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Link    string `json:"link"`
}

type Week52Summary struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"currentPrice"`
	High         float64 `json:"week52High"`
	Low          float64 `json:"week52Low"`
	Range        float64 `json:"week52Range"`
	RangePercent float64 `json:"week52RangePercent"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta chartMeta `json:"meta"`
			Indicators struct {
				Quote []struct {
					Open []*float64 `json:"open"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type chartMeta struct {
	Symbol               string   `json:"symbol"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	PreviousClose        *float64 `json:"previousClose"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  *int64   `json:"regularMarketVolume"`
	FiftyTwoWeekHigh     *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      *float64 `json:"fiftyTwoWeekLow"`
}

func parseQuote(body []byte) (*Quote, error) {
	var cr chartResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	if cr.Chart.Error != nil {
		return nil, fmt.Errorf("chart error %s: %s", cr.Chart.Error.Code, cr.Chart.Error.Description)
	}
	if len(cr.Chart.Result) == 0 {
		return nil, nil
	}
	result := cr.Chart.Result[0]
	meta := result.Meta
	prev := meta.PreviousClose
	if prev == nil {
		prev = meta.ChartPreviousClose
	}
	quote := &Quote{
		Symbol:           meta.Symbol,
		Price:            meta.RegularMarketPrice,
		PreviousClose:    prev,
		High:             meta.RegularMarketDayHigh,
		Low:              meta.RegularMarketDayLow,
		Volume:           meta.RegularMarketVolume,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
	}
	if len(result.Indicators.Quote) > 0 && len(result.Indicators.Quote[0].Open) > 0 {
		quote.Open = result.Indicators.Quote[0].Open[0]
	}
	return quote, nil
}

func parseNews(body []byte) ([]NewsItem, error) {
	var sr struct {
		News []NewsItem `json:"news"`
	}
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return sr.News, nil
}
