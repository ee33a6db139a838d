package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/service"
)

// Handler provides the HTTP handlers of the time-series API.
//
// Responsibilities:
//   - Parse and validate query parameters (period token, symbol lists)
//   - Call the data services
//   - Map validation failures to 4xx responses in the standard envelope
//   - Shape service results into response DTOs
type Handler struct {
	stocks  service.StockService
	indices service.IndexService
	weather service.WeatherService
}

// NewHandler constructs a Handler over the three data services.
func NewHandler(stocks service.StockService, indices service.IndexService, weather service.WeatherService) *Handler {
	return &Handler{stocks: stocks, indices: indices, weather: weather}
}

// Welcome handles GET /.
//
// Welcome godoc
// @Summary      API root
// @Description  Basic application information
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.WelcomeResponse
// @Router       / [get]
func (h *Handler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.WelcomeResponse{
		Message: "Stack Watcher API へようこそ！",
		Status:  "正常に動作中",
		Version: "1.0.0",
	})
}

// Hello handles GET /api/hello.
//
// Hello godoc
// @Summary      Greeting endpoint
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HelloResponse
// @Router       /api/hello [get]
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HelloResponse{
		Success: true,
		Message: "こんにちは、Stack Watcher です",
	})
}
