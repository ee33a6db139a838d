package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takahiko217/stack-watcher/internal/domain/dto"
)

// Health handles the liveness endpoints. The service has no stateful
// dependencies, so healthy means the process is up and serving.
//
// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/v1/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Success: true,
		Data: dto.HealthData{
			Status:  "healthy",
			Message: "システムは正常に動作しています",
		},
	})
}
