package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/repository"
)

type StockHandler struct {
	Repo repository.Repository
}

func (h *StockHandler) Register(r *gin.Engine) {
	w := r.Group("/api/watchlists/:id/stocks")
	w.POST("", h.add)
	w.GET("", h.list)
	w.DELETE("/:itemID", h.remove)

	// Aggregate and item routes live under /api/stocks because gin cannot mix
	// a static segment with :id at the same position.
	s := r.Group("/api/stocks")
	s.PATCH("/:itemID", h.update)
	s.GET("/all", h.listAll)
	s.GET("/all-with-watchlists", h.listAllWithWatchlists)
}

type addStockRequest struct {
	Symbol        string   `json:"symbol" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	CurrentPrice  *float64 `json:"current_price"`
	ChangePercent *float64 `json:"change_percent"`
	ChangeAmount  *float64 `json:"change_amount"`
	Volume        *int64   `json:"volume"`
	MarketCap     *float64 `json:"market_cap"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	OpenPrice     *float64 `json:"open_price"`
	PreviousClose *float64 `json:"previous_close"`
}

type updateStockRequest struct {
	CurrentPrice  *float64 `json:"current_price"`
	ChangePercent *float64 `json:"change_percent"`
	ChangeAmount  *float64 `json:"change_amount"`
	Volume        *int64   `json:"volume"`
	MarketCap     *float64 `json:"market_cap"`
	High          *float64 `json:"high"`
	Low           *float64 `json:"low"`
	OpenPrice     *float64 `json:"open_price"`
	PreviousClose *float64 `json:"previous_close"`
}

func (r addStockRequest) patch() repository.StockPatch {
	return repository.StockPatch{
		CurrentPrice:  floatToDec(r.CurrentPrice),
		ChangePercent: floatToDec(r.ChangePercent),
		ChangeAmount:  floatToDec(r.ChangeAmount),
		Volume:        r.Volume,
		MarketCap:     floatToDec(r.MarketCap),
		High:          floatToDec(r.High),
		Low:           floatToDec(r.Low),
		OpenPrice:     floatToDec(r.OpenPrice),
		PreviousClose: floatToDec(r.PreviousClose),
	}
}

func (r updateStockRequest) patch() repository.StockPatch {
	return repository.StockPatch{
		CurrentPrice:  floatToDec(r.CurrentPrice),
		ChangePercent: floatToDec(r.ChangePercent),
		ChangeAmount:  floatToDec(r.ChangeAmount),
		Volume:        r.Volume,
		MarketCap:     floatToDec(r.MarketCap),
		High:          floatToDec(r.High),
		Low:           floatToDec(r.Low),
		OpenPrice:     floatToDec(r.OpenPrice),
		PreviousClose: floatToDec(r.PreviousClose),
	}
}

// @Summary Add a stock to a watchlist
// @Tags stocks
// @Accept json
// @Param id path int true "watchlist id"
// @Param body body addStockRequest true "stock"
// @Success 200 {object} stockResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/watchlists/{id}/stocks [post]
func (h *StockHandler) add(c *gin.Context) {
	watchlistID := uint64Param(c, "id")
	if watchlistID == 0 {
		Error(c, http.StatusBadRequest, "invalid watchlist id")
		return
	}
	var req addStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "symbol and name are required")
		return
	}
	item, err := h.Repo.AddStock(c.Request.Context(), watchlistID, req.Symbol, req.Name, req.patch())
	if errors.Is(err, repository.ErrDuplicateSymbol) {
		Error(c, http.StatusBadRequest, "Stock already exists in watchlist")
		return
	}
	if errors.Is(err, repository.ErrWatchlistMissing) {
		Error(c, http.StatusNotFound, "Watchlist not found")
		return
	}
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toStockResponse(*item))
}

// @Summary List stocks in a watchlist
// @Tags stocks
// @Param id path int true "watchlist id"
// @Success 200 {array} stockResponse
// @Router /api/watchlists/{id}/stocks [get]
func (h *StockHandler) list(c *gin.Context) {
	watchlistID := uint64Param(c, "id")
	if watchlistID == 0 {
		Error(c, http.StatusBadRequest, "invalid watchlist id")
		return
	}
	items, err := h.Repo.ListStocks(c.Request.Context(), watchlistID)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]stockResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toStockResponse(item))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Remove a stock from a watchlist
// @Tags stocks
// @Param id path int true "watchlist id"
// @Param itemID path int true "item id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/watchlists/{id}/stocks/{itemID} [delete]
func (h *StockHandler) remove(c *gin.Context) {
	watchlistID := uint64Param(c, "id")
	itemID := uint64Param(c, "itemID")
	if watchlistID == 0 || itemID == 0 {
		Error(c, http.StatusBadRequest, "invalid id")
		return
	}
	removed, err := h.Repo.RemoveStock(c.Request.Context(), watchlistID, itemID)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !removed {
		Error(c, http.StatusNotFound, "Stock not found in watchlist")
		return
	}
	Message(c, "Stock removed from watchlist successfully")
}

// @Summary Update snapshot fields on a stock
// @Tags stocks
// @Accept json
// @Param itemID path int true "item id"
// @Param body body updateStockRequest true "fields to update"
// @Success 200 {object} stockResponse
// @Failure 404 {object} map[string]string
// @Router /api/stocks/{itemID} [patch]
func (h *StockHandler) update(c *gin.Context) {
	itemID := uint64Param(c, "itemID")
	if itemID == 0 {
		Error(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid body")
		return
	}
	item, err := h.Repo.UpdateStockFields(c.Request.Context(), itemID, req.patch())
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Stock not found")
		return
	}
	c.JSON(http.StatusOK, toStockResponse(*item))
}

// @Summary List all stocks across watchlists
// @Tags stocks
// @Success 200 {array} stockResponse
// @Router /api/stocks/all [get]
func (h *StockHandler) listAll(c *gin.Context) {
	items, err := h.Repo.ListAllStocks(c.Request.Context())
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]stockResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toStockResponse(item))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary List all stocks joined with their watchlist names
// @Tags stocks
// @Success 200 {array} stockWithWatchlistResponse
// @Router /api/stocks/all-with-watchlists [get]
func (h *StockHandler) listAllWithWatchlists(c *gin.Context) {
	rows, err := h.Repo.ListAllStocksWithWatchlists(c.Request.Context())
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]stockWithWatchlistResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toStockWithWatchlistResponse(row))
	}
	c.JSON(http.StatusOK, out)
}
