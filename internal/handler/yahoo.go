package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockwatch/internal/client/yahoo"
)

// YahooHandler proxies the market-data provider so browser clients are not
// blocked by CORS. Responses pass through untouched; upstream failures map to
// 502 and timeouts to 504.
type YahooHandler struct {
	Client *yahoo.Client
	Logger *zap.Logger
}

func (h *YahooHandler) Register(r *gin.Engine) {
	g := r.Group("/api/yahoo")
	g.GET("/search", h.search)
	g.GET("/chart/:symbol", h.chart)
	g.GET("/52week/:symbol", h.week52)
}

// @Summary Proxy the Yahoo Finance symbol/news search
// @Tags yahoo
// @Param q query string true "search text"
// @Param quotesCount query int false "max quotes" default(10)
// @Param newsCount query int false "max news" default(0)
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]string
// @Router /api/yahoo/search [get]
func (h *YahooHandler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		Error(c, http.StatusBadRequest, "q is required")
		return
	}
	quotesCount := intQuery(c, "quotesCount", 10)
	newsCount := intQuery(c, "newsCount", 0)
	body, err := h.Client.SearchRaw(c.Request.Context(), q, quotesCount, newsCount)
	if err != nil {
		h.upstreamError(c, "search", q, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// @Summary Proxy the Yahoo Finance chart endpoint
// @Tags yahoo
// @Param symbol path string true "ticker symbol"
// @Param interval query string false "candle interval" default(1d)
// @Param range query string false "time range" default(1d)
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]string
// @Router /api/yahoo/chart/{symbol} [get]
func (h *YahooHandler) chart(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))
	interval := c.DefaultQuery("interval", "1d")
	rng := c.DefaultQuery("range", "1d")
	body, err := h.Client.ChartRaw(c.Request.Context(), symbol, interval, rng)
	if err != nil {
		h.upstreamError(c, "chart", symbol, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// @Summary 52-week range summary for a symbol
// @Tags yahoo
// @Param symbol path string true "ticker symbol"
// @Success 200 {object} yahoo.Week52Summary
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/yahoo/52week/{symbol} [get]
func (h *YahooHandler) week52(c *gin.Context) {
	symbol := strings.TrimSpace(c.Param("symbol"))
	summary, err := h.Client.Week52(c.Request.Context(), symbol)
	if err != nil {
		h.upstreamError(c, "52week", symbol, err)
		return
	}
	if summary == nil {
		Error(c, http.StatusNotFound, "No 52-week data found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *YahooHandler) upstreamError(c *gin.Context, op, subject string, err error) {
	if h.Logger != nil {
		h.Logger.Warn("yahoo proxy failed",
			zap.String("op", op),
			zap.String("subject", subject),
			zap.Error(err))
	}
	if errors.Is(err, context.DeadlineExceeded) {
		Error(c, http.StatusGatewayTimeout, "Request timeout")
		return
	}
	var apiErr *yahoo.APIError
	if errors.As(err, &apiErr) {
		Error(c, http.StatusBadGateway, fmt.Sprintf("Yahoo Finance returned status %d", apiErr.Status))
		return
	}
	Error(c, http.StatusBadGateway, "Failed to reach Yahoo Finance")
}
