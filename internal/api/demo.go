package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
)

// Demo handles GET /api/v1/demo: a one-call dashboard snapshot of all
// three domains with default parameters. The three services are queried
// concurrently; the services themselves never fail on provider errors, so
// the group only surfaces unexpected internal errors.
//
// Demo godoc
// @Summary      Dashboard demo snapshot
// @Description  Default stock, index and weather series in a single response
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.DemoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/demo [get]
func (h *Handler) Demo(c *gin.Context) {
	period := models.DefaultPeriod

	var (
		batch   dto.StockBatch
		indices map[string]dto.IndexSeries
		weather *dto.WeatherResponse
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		symbols := make([]string, 0)
		for _, info := range h.stocks.AvailableSymbols() {
			symbols = append(symbols, info.Symbol)
		}
		batch = h.stocks.GetStocks(ctx, symbols, period)
		return nil
	})
	g.Go(func() error {
		indices = h.indices.GetIndices(ctx, nil, period)
		return nil
	})
	g.Go(func() error {
		var err error
		weather, err = h.weather.GetWeather(ctx, "tokyo", period)
		return err
	})

	if err := g.Wait(); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("デモデータの取得に失敗しました", err))
		return
	}

	c.JSON(http.StatusOK, dto.DemoResponse{
		Success: true,
		Message: "Stack Watcher デモデータ",
		Data: dto.DemoData{
			Stocks:  batch,
			Indices: indices,
			Weather: weather.Data,
		},
		Period:      period.String(),
		LastUpdated: time.Now().Format(time.RFC3339),
	})
}
