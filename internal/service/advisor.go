package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"stockwatch/internal/client/groq"
	"stockwatch/internal/client/yahoo"
	"stockwatch/internal/repository"
)

const headlinesPerSymbol = 3

const advisorPrompt = `You are a knowledgeable portfolio advisor for the ASX market.
Always use the most recent stock data and news provided below for your analysis. Ignore any outdated information you may have learned during training.
[LIVE DATA]
%LIVE_DATA%
[END LIVE DATA]
Provide helpful insights and answer questions about:
- Stock analysis
- Portfolio performance
- Investment strategies
- Risk management
- Portfolio diversification
Be informative but always include appropriate risk warnings.`

type NewsFetcher interface {
	News(ctx context.Context, symbol string, count int) ([]yahoo.NewsItem, error)
}

type ChatClient interface {
	Chat(ctx context.Context, prompt, model string) (string, error)
}

// Advisor assembles the holdings + news context for the chat collaborator and
// delegates text generation to it. A collaborator failure never reaches the
// caller: the advisor degrades to the offline fallback.
type Advisor struct {
	Repo   repository.Repository
	News   NewsFetcher
	Groq   ChatClient
	Logger *zap.Logger
}

// HoldingsContext renders the current holdings block and returns the distinct
// symbol set in first-seen order. A symbol held in three watchlists is listed
// three times in the block but queried for news once.
func (a *Advisor) HoldingsContext(ctx context.Context) (string, []string, error) {
	items, err := a.Repo.ListAllStocks(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(items) == 0 {
		return "", nil, nil
	}

	var b strings.Builder
	b.WriteString("\nYour current watchlist stocks:\n")
	seen := make(map[string]bool, len(items))
	symbols := make([]string, 0, len(items))
	for _, item := range items {
		price := "N/A"
		if item.CurrentPrice != nil {
			price = item.CurrentPrice.String()
		}
		b.WriteString("- " + item.Symbol + " (" + item.Name + "): $" + price + "\n")
		if !seen[item.Symbol] {
			seen[item.Symbol] = true
			symbols = append(symbols, item.Symbol)
		}
	}
	return b.String(), symbols, nil
}

func (a *Advisor) newsContext(ctx context.Context, symbols []string) string {
	var lines []string
	for _, symbol := range symbols {
		news, err := a.News.News(ctx, symbol, headlinesPerSymbol)
		if err != nil {
			if a.Logger != nil {
				a.Logger.Warn("news fetch failed", zap.String("symbol", symbol), zap.Error(err))
			}
			continue
		}
		for _, n := range news {
			lines = append(lines, "- "+symbol+": "+n.Title+" | "+n.Summary+" | "+n.Link)
		}
	}
	if len(lines) == 0 {
		return "\nLatest news headlines:\nNo recent news found."
	}
	return "\nLatest news headlines:\n" + strings.Join(lines, "\n")
}

// Answer runs the full chat flow. Storage reads that fail degrade to an empty
// holdings block; the answer itself always comes back, never an error.
func (a *Advisor) Answer(ctx context.Context, message, model string) string {
	holdings, symbols, err := a.HoldingsContext(ctx)
	if err != nil {
		if a.Logger != nil {
			a.Logger.Warn("holdings context failed", zap.Error(err))
		}
		holdings, symbols = "", nil
	}
	liveData := holdings + a.newsContext(ctx, symbols)
	prompt := strings.Replace(advisorPrompt, "%LIVE_DATA%", liveData, 1) +
		"\nUser Message: " + message +
		"\nPlease provide helpful portfolio advice and insights based on the user's message."

	response, err := a.Groq.Chat(ctx, prompt, model)
	if err != nil {
		if a.Logger != nil {
			a.Logger.Warn("chat collaborator failed, using fallback", zap.Error(err))
		}
		return groq.FallbackResponse(prompt)
	}
	return response
}
