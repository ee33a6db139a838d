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

// IndexService serves daily closing-level series for the supported market
// indices.
type IndexService interface {
	// GetIndices fetches the given symbols (nil means all supported ones),
	// keyed by symbol. Unknown symbols are skipped with a warning; a
	// failing symbol falls back to a synthetic series instead of failing
	// the batch.
	GetIndices(ctx context.Context, symbols []string, period models.Period) map[string]dto.IndexSeries
	// GetIndex returns one index series. Unknown symbols yield a
	// *models.UnknownIDError.
	GetIndex(ctx context.Context, symbol string, period models.Period) (*dto.IndexSeries, error)
	// AvailableIndices lists the supported index set keyed by symbol.
	AvailableIndices() map[string]dto.IndexInfo
}

type indexService struct {
	chart    ChartAPI
	listings map[string]models.IndexListing
	order    []string
	registry *models.IDRegistry
	newRand  RandFactory
}

// NewIndexService constructs an IndexService over the given chart API and
// index catalog.
func NewIndexService(chart ChartAPI, listings []models.IndexListing, newRand RandFactory) IndexService {
	bySymbol := make(map[string]models.IndexListing, len(listings))
	order := make([]string, 0, len(listings))
	symbols := make([]string, 0, len(listings))
	for _, l := range listings {
		bySymbol[l.Symbol] = l
		order = append(order, l.Symbol)
		symbols = append(symbols, l.Symbol)
	}
	if newRand == nil {
		newRand = DefaultRandFactory
	}
	return &indexService{
		chart:    chart,
		listings: bySymbol,
		order:    order,
		registry: models.NewIDRegistry("インデックス銘柄", symbols...),
		newRand:  newRand,
	}
}

func (s *indexService) GetIndices(ctx context.Context, symbols []string, period models.Period) map[string]dto.IndexSeries {
	if symbols == nil {
		symbols = s.order
	}
	days := period.Days()

	result := make(map[string]dto.IndexSeries, len(symbols))
	for _, symbol := range symbols {
		if !s.registry.Known(symbol) {
			logger.L().Warn().Str("symbol", symbol).Msg("unknown index symbol, skipping")
			continue
		}
		result[symbol] = s.fetchOne(ctx, s.listings[symbol], days)
	}
	return result
}

func (s *indexService) GetIndex(ctx context.Context, symbol string, period models.Period) (*dto.IndexSeries, error) {
	if err := s.registry.Validate(symbol); err != nil {
		return nil, err
	}
	series := s.fetchOne(ctx, s.listings[symbol], period.Days())
	return &series, nil
}

func (s *indexService) AvailableIndices() map[string]dto.IndexInfo {
	infos := make(map[string]dto.IndexInfo, len(s.listings))
	for symbol, l := range s.listings {
		infos[symbol] = dto.IndexInfo{Name: l.Name, Symbol: l.Symbol, Description: l.Description}
	}
	return infos
}

func (s *indexService) fetchOne(ctx context.Context, listing models.IndexListing, days int) dto.IndexSeries {
	logger.L().Info().
		Str("symbol", listing.Symbol).
		Str("name", listing.Name).
		Int("days", days).
		Msg("fetching index data")

	candles, err := s.chart.DailyCandles(ctx, listing.Symbol, days)
	if err != nil || len(candles) == 0 {
		logger.L().Warn().
			Err(err).
			Str("symbol", listing.Symbol).
			Msg("index provider unavailable, generating fallback data")
		return s.fallback(listing, days)
	}

	dates := make([]string, 0, len(candles))
	values := make([]float64, 0, len(candles))
	for _, c := range candles {
		dates = append(dates, c.Date.Format(dateLayout))
		values = append(values, calculator.Round2(c.Close))
	}
	changes, changePercent := calculator.Changes(values)

	logger.L().Info().
		Str("symbol", listing.Symbol).
		Int("rows", len(dates)).
		Msg("index data fetched")

	return dto.IndexSeries{
		Name:          listing.Name,
		Symbol:        listing.Symbol,
		Dates:         dates,
		Values:        values,
		Changes:       changes,
		ChangePercent: changePercent,
		Description:   listing.Description,
	}
}

func (s *indexService) fallback(listing models.IndexListing, days int) dto.IndexSeries {
	dates, values := mockdata.IndexLevels(s.newRand(), listing.BaseValue, days, time.Now())
	changes, changePercent := calculator.Changes(values)

	return dto.IndexSeries{
		Name:          listing.Name,
		Symbol:        listing.Symbol,
		Dates:         dates,
		Values:        values,
		Changes:       changes,
		ChangePercent: changePercent,
		Description:   listing.Description,
		IsMock:        true,
		Note:          mockdata.FallbackNote,
	}
}
