package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
)

// GetWeather handles GET /api/v1/weather.
//
// Query Parameters:
//   - location (string, optional): Observation point key. Defaults to
//     "tokyo".
//   - period (string, optional): One of 7d, 1m, 3m. Defaults to 7d.
//
// GetWeather godoc
// @Summary      Daily weather series
// @Description  Returns daily precipitation, mean temperature and mean sea-level pressure
// @Tags         weather
// @Produce      json
// @Param        location  query     string  false  "Observation point"  example(tokyo)
// @Param        period    query     string  false  "Lookback period"    example(7d)
// @Success      200       {object}  dto.WeatherResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/v1/weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	period, err := models.ParsePeriod(c.Query("period"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
		return
	}

	location := c.DefaultQuery("location", "tokyo")
	resp, err := h.weather.GetWeather(c.Request.Context(), location, period)
	if err != nil {
		var unknown *models.UnknownIDError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("気象データの取得に失敗しました", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWeatherLocations handles GET /api/v1/weather/locations.
//
// GetWeatherLocations godoc
// @Summary      Available observation points
// @Tags         weather
// @Produce      json
// @Success      200  {object}  dto.LocationsResponse
// @Router       /api/v1/weather/locations [get]
func (h *Handler) GetWeatherLocations(c *gin.Context) {
	c.JSON(http.StatusOK, dto.LocationsResponse{
		Success: true,
		Data:    h.weather.AvailableLocations(),
		Note:    "現在は東京都のみ対応",
	})
}
