package ai

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/errors"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/logger"
	"github.com/guptapriyanshi3107-dotcom/Finova-CodeRed3/internal/common/middleware"
	"go.uber.org/zap"
)

// FallbackMessage is returned whenever the upstream model cannot answer.
const FallbackMessage = "I'm having trouble connecting to my AI brain right now. Please try again in a moment!"

type AdviceRequest struct {
	Message        string `json:"message" binding:"required"`
	IncludeContext bool   `json:"include_context"`
}

type AdviceResponse struct {
	Response  string `json:"response"`
	Source    string `json:"source"` // granite or fallback
	Timestamp int64  `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"` // healthy or error
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Handler serves the AI advice endpoints.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// GetAdvice relays a chat message to the model. Upstream failures degrade
// to a canned fallback rather than an error status.
// POST /api/v1/ai/advice
func (h *Handler) GetAdvice(c *gin.Context) {
	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("invalid request body", err.Error()))
		return
	}

	reply, err := h.client.Chat(c.Request.Context(), req.Message)
	if err != nil {
		logger.Warn("granite chat failed", zap.Error(err))
		c.JSON(http.StatusOK, AdviceResponse{
			Response:  FallbackMessage,
			Source:    "fallback",
			Timestamp: time.Now().UnixMilli(),
		})
		return
	}

	c.JSON(http.StatusOK, AdviceResponse{
		Response:  reply,
		Source:    "granite",
		Timestamp: time.Now().UnixMilli(),
	})
}

// CheckHealth probes the model with a minimal completion.
// GET /api/v1/ai/health
func (h *Handler) CheckHealth(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Message:   "AI service is running",
		Timestamp: time.Now().UnixMilli(),
	}
	if err := h.client.Ping(c.Request.Context()); err != nil {
		resp.Status = "error"
		resp.Message = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes wires the AI endpoints onto a router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/ai")
	{
		a.POST("/advice", middleware.AuthRequired(), h.GetAdvice)
		a.GET("/health", h.CheckHealth)
	}
}
