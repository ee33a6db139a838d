package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takahiko217/stack-watcher/internal/domain/models"
	"github.com/takahiko217/stack-watcher/internal/mockdata"
	"github.com/takahiko217/stack-watcher/internal/openmeteo"
)

// stubChart serves canned candles per provider ticker, or a single error
// for every call.
type stubChart struct {
	candles map[string][]models.Candle
	err     error
	calls   []string
}

func (s *stubChart) DailyCandles(_ context.Context, symbol string, days int) ([]models.Candle, error) {
	s.calls = append(s.calls, symbol)
	if s.err != nil {
		return nil, s.err
	}
	return s.candles[symbol], nil
}

// stubArchive serves one canned archive response or an error.
type stubArchive struct {
	archive *openmeteo.DailyArchive
	err     error
}

func (s *stubArchive) FetchDaily(_ context.Context, _, _ float64, _ int) (*openmeteo.DailyArchive, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.archive, nil
}

// seededRand keeps mock synthesis deterministic in tests.
func seededRand() RandFactory {
	return func() *rand.Rand { return rand.New(rand.NewSource(42)) }
}

func testCandles(days int) []models.Candle {
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]models.Candle, 0, days)
	price := 2500.0
	for i := 0; i < days; i++ {
		price += 10
		candles = append(candles, models.Candle{
			Date:   end.AddDate(0, 0, -(days - 1 - i)),
			Open:   price - 5,
			High:   price + 10,
			Low:    price - 10,
			Close:  price,
			Volume: 1_000_000,
		})
	}
	return candles
}

func TestStockService_GetStock_Live(t *testing.T) {
	chart := &stubChart{candles: map[string][]models.Candle{
		"6326.T": testCandles(7),
	}}
	svc := NewStockService(chart, models.DefaultStockListings(), seededRand())

	series, err := svc.GetStock(context.Background(), "6326", models.Period7Days)
	require.NoError(t, err)

	assert.Equal(t, "6326", series.Symbol)
	assert.Equal(t, "クボタ", series.CompanyName)
	assert.Equal(t, "東証プライム", series.Market)
	assert.False(t, series.IsMock)
	assert.Empty(t, series.Note)

	require.Len(t, series.DataPoints, 7)
	require.Len(t, series.Dates, 7)
	require.Len(t, series.Values, 7)
	require.Len(t, series.Changes, 7)
	require.Len(t, series.ChangePercent, 7)

	assert.Equal(t, "2025-09-01", series.Dates[6])
	assert.Zero(t, series.Changes[0])
	assert.Zero(t, series.ChangePercent[0])
	assert.InDelta(t, 10.0, series.Changes[1], 0.001)

	// The provider is called with the suffixed ticker, not the API code.
	require.Equal(t, []string{"6326.T"}, chart.calls)
}

func TestStockService_GetStock_UnknownSymbol(t *testing.T) {
	svc := NewStockService(&stubChart{}, models.DefaultStockListings(), seededRand())

	_, err := svc.GetStock(context.Background(), "9999", models.Period7Days)
	require.Error(t, err)

	var unknown *models.UnknownIDError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "9999", unknown.ID)
	assert.Contains(t, err.Error(), "サポートされていない銘柄コード")
}

func TestStockService_GetStock_FallsBackOnProviderError(t *testing.T) {
	chart := &stubChart{err: errors.New("upstream down")}
	svc := NewStockService(chart, models.DefaultStockListings(), seededRand())

	series, err := svc.GetStock(context.Background(), "6326", models.Period1Month)
	require.NoError(t, err, "provider failures must not surface")

	assert.True(t, series.IsMock)
	assert.Equal(t, mockdata.StockNote, series.Note)
	assert.Equal(t, "クボタ (デモデータ)", series.CompanyName)
	assert.Len(t, series.DataPoints, 30)
	assert.Len(t, series.Values, 30)
}

func TestStockService_GetStock_FallsBackOnEmptyResult(t *testing.T) {
	chart := &stubChart{candles: map[string][]models.Candle{}}
	svc := NewStockService(chart, models.DefaultStockListings(), seededRand())

	series, err := svc.GetStock(context.Background(), "9984", models.Period7Days)
	require.NoError(t, err)
	assert.True(t, series.IsMock)
	assert.Len(t, series.DataPoints, 7)
}

func TestStockService_GetStock_MockReproducible(t *testing.T) {
	chart := &stubChart{err: errors.New("down")}
	svc := NewStockService(chart, models.DefaultStockListings(), seededRand())

	a, err := svc.GetStock(context.Background(), "6326", models.Period7Days)
	require.NoError(t, err)
	b, err := svc.GetStock(context.Background(), "6326", models.Period7Days)
	require.NoError(t, err)

	assert.Equal(t, a.Values, b.Values, "identical seeds must regenerate the same series")
}

func TestStockService_GetStocks_PartialFailure(t *testing.T) {
	chart := &stubChart{candles: map[string][]models.Candle{
		"6326.T": testCandles(7),
		"9984.T": testCandles(7),
	}}
	svc := NewStockService(chart, models.DefaultStockListings(), seededRand())

	batch := svc.GetStocks(context.Background(), []string{"6326", "9999", "9984"}, models.Period7Days)

	require.Len(t, batch.Stocks, 2)
	require.Len(t, batch.Errors, 1)
	assert.Equal(t, "9999", batch.Errors[0].Symbol)
	assert.Contains(t, batch.Errors[0].Error, "9999")
	assert.Equal(t, "6326", batch.Stocks[0].Symbol)
	assert.Equal(t, "9984", batch.Stocks[1].Symbol)
}

func TestStockService_AvailableSymbols(t *testing.T) {
	svc := NewStockService(&stubChart{}, models.DefaultStockListings(), seededRand())

	symbols := svc.AvailableSymbols()
	require.Len(t, symbols, 3)
	// Catalog order is preserved.
	assert.Equal(t, "6326", symbols[0].Symbol)
	assert.Equal(t, "9984", symbols[1].Symbol)
	assert.Equal(t, "1377", symbols[2].Symbol)
}
