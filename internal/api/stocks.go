package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
)

// GetStocks handles GET /api/v1/stocks.
//
// Query Parameters:
//   - symbols (string, optional): Comma-separated stock codes. Defaults to
//     the full supported set.
//   - period (string, optional): One of 7d, 1m, 3m. Defaults to 7d.
//
// Each symbol is fetched independently; validation failures land in the
// errors side list instead of aborting the batch.
//
// GetStocks godoc
// @Summary      Batch stock series
// @Description  Returns daily OHLCV series and derived statistics for the requested symbols
// @Tags         stocks
// @Produce      json
// @Param        symbols  query     string  false  "Comma-separated stock codes"  example(6326,9984,1377)
// @Param        period   query     string  false  "Lookback period"              example(7d)
// @Success      200      {object}  dto.StocksResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/stocks [get]
func (h *Handler) GetStocks(c *gin.Context) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		for _, info := range h.stocks.AvailableSymbols() {
			symbols = append(symbols, info.Symbol)
		}
	}

	batch := h.stocks.GetStocks(c.Request.Context(), symbols, period)

	c.JSON(http.StatusOK, dto.StocksResponse{
		Success:     true,
		Data:        batch,
		Period:      period.String(),
		LastUpdated: time.Now().Format(time.RFC3339),
	})
}

// GetStock handles GET /api/v1/stocks/{symbol}.
//
// GetStock godoc
// @Summary      Single stock series
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true   "Stock code"       example(6326)
// @Param        period  query     string  false  "Lookback period"  example(7d)
// @Success      200     {object}  dto.StockResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/v1/stocks/{symbol} [get]
func (h *Handler) GetStock(c *gin.Context) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	series, err := h.stocks.GetStock(c.Request.Context(), c.Param("symbol"), period)
	if err != nil {
		var unknown *models.UnknownIDError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("株価データの取得に失敗しました", err))
		return
	}

	c.JSON(http.StatusOK, dto.StockResponse{
		Success:     true,
		Data:        series,
		Period:      period.String(),
		LastUpdated: time.Now().Format(time.RFC3339),
	})
}

// GetStockSymbols handles GET /api/v1/stocks/symbols.
//
// GetStockSymbols godoc
// @Summary      Available stock symbols
// @Tags         stocks
// @Produce      json
// @Success      200  {object}  dto.SymbolsResponse
// @Router       /api/v1/stocks/symbols [get]
func (h *Handler) GetStockSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SymbolsResponse{
		Success: true,
		Data:    dto.SymbolsData{Symbols: h.stocks.AvailableSymbols()},
	})
}

// splitSymbols parses a comma-separated symbol list, dropping empty
// entries and surrounding whitespace. A list with no usable entries
// returns nil so that callers treat it like an absent parameter.
func splitSymbols(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			symbols = append(symbols, s)
		}
	}
	if len(symbols) == 0 {
		return nil
	}
	return symbols
}
