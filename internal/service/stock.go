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

// StockService serves daily OHLCV series for the supported stock set.
type StockService interface {
	// GetStock returns the series for one symbol. Unknown symbols yield a
	// *models.UnknownIDError; provider failures are absorbed into a
	// synthetic series.
	GetStock(ctx context.Context, symbol string, period models.Period) (*dto.StockSeries, error)
	// GetStocks fetches each symbol independently; validation failures go
	// into the Errors side list and never abort the batch.
	GetStocks(ctx context.Context, symbols []string, period models.Period) dto.StockBatch
	// AvailableSymbols lists the supported stock set.
	AvailableSymbols() []dto.SymbolInfo
}

type stockService struct {
	chart    ChartAPI
	listings map[string]models.StockListing
	order    []string
	registry *models.IDRegistry
	newRand  RandFactory
}

// NewStockService constructs a StockService over the given chart API and
// stock catalog.
func NewStockService(chart ChartAPI, listings []models.StockListing, newRand RandFactory) StockService {
	byCode := make(map[string]models.StockListing, len(listings))
	order := make([]string, 0, len(listings))
	codes := make([]string, 0, len(listings))
	for _, l := range listings {
		byCode[l.Code] = l
		order = append(order, l.Code)
		codes = append(codes, l.Code)
	}
	if newRand == nil {
		newRand = DefaultRandFactory
	}
	return &stockService{
		chart:    chart,
		listings: byCode,
		order:    order,
		registry: models.NewIDRegistry("銘柄コード", codes...),
		newRand:  newRand,
	}
}

func (s *stockService) GetStock(ctx context.Context, symbol string, period models.Period) (*dto.StockSeries, error) {
	if err := s.registry.Validate(symbol); err != nil {
		return nil, err
	}
	listing := s.listings[symbol]
	days := period.Days()

	logger.L().Info().
		Str("symbol", symbol).
		Str("ticker", listing.YahooCode).
		Int("days", days).
		Msg("fetching stock data")

	candles, err := s.chart.DailyCandles(ctx, listing.YahooCode, days)
	if err != nil || len(candles) == 0 {
		logger.L().Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("stock provider unavailable, generating mock data")
		return s.mockSeries(listing, days), nil
	}

	logger.L().Info().
		Str("symbol", symbol).
		Int("rows", len(candles)).
		Msg("stock data fetched")
	series := buildStockSeries(listing, candles, false, "")
	return &series, nil
}

func (s *stockService) GetStocks(ctx context.Context, symbols []string, period models.Period) dto.StockBatch {
	batch := dto.StockBatch{
		Stocks: make([]dto.StockSeries, 0, len(symbols)),
		Errors: make([]dto.StockError, 0),
	}
	for _, symbol := range symbols {
		series, err := s.GetStock(ctx, symbol, period)
		if err != nil {
			batch.Errors = append(batch.Errors, dto.StockError{Symbol: symbol, Error: err.Error()})
			continue
		}
		batch.Stocks = append(batch.Stocks, *series)
	}
	return batch
}

func (s *stockService) AvailableSymbols() []dto.SymbolInfo {
	symbols := make([]dto.SymbolInfo, 0, len(s.order))
	for _, code := range s.order {
		l := s.listings[code]
		symbols = append(symbols, dto.SymbolInfo{Symbol: l.Code, Name: l.Name, Market: l.Market})
	}
	return symbols
}

func (s *stockService) mockSeries(listing models.StockListing, days int) *dto.StockSeries {
	candles := mockdata.StockCandles(s.newRand(), listing.Code, days, time.Now())
	series := buildStockSeries(listing, candles, true, mockdata.StockNote)
	series.CompanyName = listing.Name + " (デモデータ)"
	return &series
}

// buildStockSeries shapes provider or synthetic candles into the wire
// form: OHLCV points plus the index-aligned parallel arrays with derived
// day-over-day statistics.
func buildStockSeries(listing models.StockListing, candles []models.Candle, isMock bool, note string) dto.StockSeries {
	points := make([]dto.OHLCVPoint, 0, len(candles))
	dates := make([]string, 0, len(candles))
	values := make([]float64, 0, len(candles))
	for _, c := range candles {
		points = append(points, dto.OHLCVPoint{
			Date:   c.Date.Format(dateLayout),
			Open:   calculator.Round2(c.Open),
			High:   calculator.Round2(c.High),
			Low:    calculator.Round2(c.Low),
			Close:  calculator.Round2(c.Close),
			Volume: c.Volume,
		})
		dates = append(dates, c.Date.Format(dateLayout))
		values = append(values, calculator.Round2(c.Close))
	}
	changes, changePercent := calculator.Changes(values)

	return dto.StockSeries{
		Symbol:        listing.Code,
		CompanyName:   listing.Name,
		Market:        listing.Market,
		DataPoints:    points,
		Dates:         dates,
		Values:        values,
		Changes:       changes,
		ChangePercent: changePercent,
		IsMock:        isMock,
		Note:          note,
		LastUpdated:   time.Now().Format(time.RFC3339),
	}
}
