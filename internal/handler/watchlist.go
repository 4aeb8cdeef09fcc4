package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/repository"
)

type WatchlistHandler struct {
	Repo repository.Repository
}

func (h *WatchlistHandler) Register(r *gin.Engine) {
	g := r.Group("/api/watchlists")
	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.DELETE("/:id", h.remove)
}

type createWatchlistRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary Create a watchlist
// @Tags watchlists
// @Accept json
// @Param body body createWatchlistRequest true "watchlist"
// @Success 200 {object} watchlistResponse
// @Router /api/watchlists [post]
func (h *WatchlistHandler) create(c *gin.Context) {
	var req createWatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "name is required")
		return
	}
	item, err := h.Repo.CreateWatchlist(c.Request.Context(), req.Name)
	if errors.Is(err, repository.ErrEmptyName) {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toWatchlistResponse(*item, 0))
}

// @Summary List watchlists
// @Tags watchlists
// @Param skip query int false "offset" default(0)
// @Param limit query int false "page size" default(100)
// @Success 200 {array} watchlistResponse
// @Router /api/watchlists [get]
func (h *WatchlistHandler) list(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 100)
	items, err := h.Repo.ListWatchlists(c.Request.Context(), skip, limit)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	counts, err := h.Repo.StockCounts(c.Request.Context(), ids)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]watchlistResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toWatchlistResponse(item, counts[item.ID]))
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Get a watchlist
// @Tags watchlists
// @Param id path int true "watchlist id"
// @Success 200 {object} watchlistResponse
// @Failure 404 {object} map[string]string
// @Router /api/watchlists/{id} [get]
func (h *WatchlistHandler) get(c *gin.Context) {
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := h.Repo.GetWatchlist(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		Error(c, http.StatusNotFound, "Watchlist not found")
		return
	}
	counts, err := h.Repo.StockCounts(c.Request.Context(), []uint64{id})
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, toWatchlistResponse(*item, counts[id]))
}

// @Summary Delete a watchlist and its items
// @Tags watchlists
// @Param id path int true "watchlist id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/watchlists/{id} [delete]
func (h *WatchlistHandler) remove(c *gin.Context) {
	id := uint64Param(c, "id")
	if id == 0 {
		Error(c, http.StatusBadRequest, "invalid id")
		return
	}
	deleted, err := h.Repo.DeleteWatchlist(c.Request.Context(), id)
	if err != nil {
		Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		Error(c, http.StatusNotFound, "Watchlist not found")
		return
	}
	Message(c, "Watchlist deleted successfully")
}
