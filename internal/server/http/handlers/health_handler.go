package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gopherauth/internal/server/http/dto"
)

// HealthHandler exposes liveness of the service and its store.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.Healthy(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
