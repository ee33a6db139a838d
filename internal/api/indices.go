package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
)

// GetIndices handles GET /api/v1/indices.
//
// Query Parameters:
//   - symbols (string, optional): Comma-separated index symbols. Defaults
//     to all supported indices. Unknown symbols are skipped.
//   - period (string, optional): One of 7d, 1m, 3m. Defaults to 7d.
//
// GetIndices godoc
// @Summary      Market index series
// @Description  Returns daily closing-level series keyed by index symbol
// @Tags         indices
// @Produce      json
// @Param        symbols  query     string  false  "Comma-separated index symbols"  example(^N225,^TPX)
// @Param        period   query     string  false  "Lookback period"                example(7d)
// @Success      200      {object}  dto.IndicesResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/indices [get]
func (h *Handler) GetIndices(c *gin.Context) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	data := h.indices.GetIndices(c.Request.Context(), splitSymbols(c.Query("symbols")), period)

	c.JSON(http.StatusOK, dto.IndicesResponse{
		Success:     true,
		Data:        data,
		Period:      period.String(),
		LastUpdated: time.Now().Format(time.RFC3339),
	})
}

// GetIndex handles GET /api/v1/indices/{symbol}. An unknown symbol yields
// 404 with success=false and an error naming the symbol.
//
// GetIndex godoc
// @Summary      Single index series
// @Tags         indices
// @Produce      json
// @Param        symbol  path      string  true   "Index symbol"     example(^N225)
// @Param        period  query     string  false  "Lookback period"  example(7d)
// @Success      200     {object}  dto.IndexResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.IndexResponse
// @Router       /api/v1/indices/{symbol} [get]
func (h *Handler) GetIndex(c *gin.Context) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	symbol := c.Param("symbol")
	series, err := h.indices.GetIndex(c.Request.Context(), symbol, period)
	if err != nil {
		var unknown *models.UnknownIDError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusNotFound, dto.IndexResponse{
				Success: false,
				Error:   "インデックス銘柄 " + symbol + " が見つかりません",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("インデックスデータの取得に失敗しました", err))
		return
	}

	c.JSON(http.StatusOK, dto.IndexResponse{
		Success:     true,
		Data:        series,
		Period:      period.String(),
		LastUpdated: time.Now().Format(time.RFC3339),
	})
}

// GetAvailableIndices handles GET /api/v1/indices/available.
//
// GetAvailableIndices godoc
// @Summary      Available market indices
// @Tags         indices
// @Produce      json
// @Success      200  {object}  dto.AvailableIndicesResponse
// @Router       /api/v1/indices/available [get]
func (h *Handler) GetAvailableIndices(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AvailableIndicesResponse{
		Success: true,
		Data:    h.indices.AvailableIndices(),
	})
}
