package service

import (
	"context"
	"time"

	"github.com/takahiko217/stack-watcher/internal/calculator"
	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
	"github.com/takahiko217/stack-watcher/internal/logger"
	"github.com/takahiko217/stack-watcher/internal/mockdata"
)

// Defaults used when the provider reports no value for a day; subsequent
// gaps carry the previous day's value forward instead.
const (
	defaultTemperature = 24.0
	defaultPressure    = 1013.0
)

// SourceMock is the source label of synthesized weather responses.
const SourceMock = "モックデータ"

// SourceOpenMeteo is the source label of live provider responses.
const SourceOpenMeteo = "OpenMeteo API"

// WeatherService serves daily precipitation/temperature/pressure series
// for the supported observation points.
type WeatherService interface {
	// GetWeather returns the series for one location. Unknown locations
	// yield a *models.UnknownIDError; provider failures are absorbed into
	// a synthetic series flagged by the Source and Note fields.
	GetWeather(ctx context.Context, location string, period models.Period) (*dto.WeatherResponse, error)
	// AvailableLocations lists the supported observation points.
	AvailableLocations() map[string]dto.LocationInfo
}

type weatherService struct {
	archive   ArchiveAPI
	locations map[string]models.Location
	registry  *models.IDRegistry
	newRand   RandFactory
}

// NewWeatherService constructs a WeatherService over the given archive API
// and location catalog.
func NewWeatherService(archive ArchiveAPI, locations []models.Location, newRand RandFactory) WeatherService {
	byKey := make(map[string]models.Location, len(locations))
	keys := make([]string, 0, len(locations))
	for _, l := range locations {
		byKey[l.Key] = l
		keys = append(keys, l.Key)
	}
	if newRand == nil {
		newRand = DefaultRandFactory
	}
	return &weatherService{
		archive:   archive,
		locations: byKey,
		registry:  models.NewIDRegistry("地域", keys...),
		newRand:   newRand,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, location string, period models.Period) (*dto.WeatherResponse, error) {
	if err := s.registry.Validate(location); err != nil {
		return nil, err
	}
	loc := s.locations[location]
	days := period.Days()

	logger.L().Info().
		Str("location", location).
		Str("period", period.String()).
		Msg("fetching weather data")

	archive, err := s.archive.FetchDaily(ctx, loc.Latitude, loc.Longitude, days)
	if err != nil {
		logger.L().Warn().
			Err(err).
			Str("location", location).
			Msg("weather provider unavailable, generating fallback data")
		return s.fallback(loc, period, days), nil
	}

	logger.L().Info().
		Str("location", location).
		Int("rows", len(archive.Daily.Time)).
		Msg("weather data fetched")

	data := dto.WeatherData{
		Location:      loc.Name,
		Dates:         archive.Daily.Time,
		Precipitation: make([]float64, 0, len(archive.Daily.Time)),
		Temperature:   make([]float64, 0, len(archive.Daily.Time)),
		Pressure:      make([]float64, 0, len(archive.Daily.Time)),
	}

	// Providers occasionally report null days. Precipitation defaults to
	// zero; temperature and pressure carry the previous day forward so the
	// series never contains holes.
	lastTemp := defaultTemperature
	lastPressure := defaultPressure
	for i := range archive.Daily.Time {
		rain := 0.0
		if i < len(archive.Daily.PrecipitationSum) && archive.Daily.PrecipitationSum[i] != nil {
			rain = *archive.Daily.PrecipitationSum[i]
		}
		data.Precipitation = append(data.Precipitation, rain)

		if i < len(archive.Daily.Temperature2mMean) && archive.Daily.Temperature2mMean[i] != nil {
			lastTemp = *archive.Daily.Temperature2mMean[i]
		}
		data.Temperature = append(data.Temperature, calculator.Round1(lastTemp))

		if i < len(archive.Daily.PressureMSLMean) && archive.Daily.PressureMSLMean[i] != nil {
			lastPressure = *archive.Daily.PressureMSLMean[i]
		}
		data.Pressure = append(data.Pressure, calculator.Round1(lastPressure))
	}

	return &dto.WeatherResponse{
		Success:     true,
		Data:        data,
		Period:      period.String(),
		LastUpdated: time.Now().Format(time.RFC3339),
		Source:      SourceOpenMeteo,
		Coordinates: &dto.Coordinates{
			Latitude:  archive.Latitude,
			Longitude: archive.Longitude,
		},
	}, nil
}

func (s *weatherService) AvailableLocations() map[string]dto.LocationInfo {
	infos := make(map[string]dto.LocationInfo, len(s.locations))
	for key, l := range s.locations {
		infos[key] = dto.LocationInfo{
			Name:        l.Name,
			Latitude:    l.Latitude,
			Longitude:   l.Longitude,
			Description: l.Description,
		}
	}
	return infos
}

func (s *weatherService) fallback(loc models.Location, period models.Period, days int) *dto.WeatherResponse {
	dates, precipitation, temperature, pressure := mockdata.WeatherSeries(s.newRand(), days, time.Now())

	return &dto.WeatherResponse{
		Success: true,
		Data: dto.WeatherData{
			Location:      loc.Name,
			Dates:         dates,
			Precipitation: precipitation,
			Temperature:   temperature,
			Pressure:      pressure,
			IsMock:        true,
		},
		Period:      period.String(),
		LastUpdated: time.Now().Format(time.RFC3339),
		Source:      SourceMock,
		Note:        mockdata.WeatherNote,
	}
}
