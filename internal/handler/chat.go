package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockwatch/internal/service"
)

type ChatHandler struct {
	Advisor *service.Advisor
}

func (h *ChatHandler) Register(r *gin.Engine) {
	r.POST("/api/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	Model   string `json:"model"`
}

// @Summary Chat with the portfolio advisor
// @Tags chat
// @Accept json
// @Param body body chatRequest true "chat message"
// @Success 200 {object} map[string]string
// @Router /api/chat [post]
func (h *ChatHandler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "message is required")
		return
	}
	// Advisor.Answer degrades internally; this endpoint always answers 200.
	response := h.Advisor.Answer(c.Request.Context(), req.Message, req.Model)
	c.JSON(http.StatusOK, gin.H{"response": response})
}
