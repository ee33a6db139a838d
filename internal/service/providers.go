// Package service implements the three data services (stock, index,
// weather). Each one follows the same pipeline: validate identifiers,
// resolve the period to a day count, fetch a bounded window from the
// provider, derive statistics, and fall back to synthetic data when the
// provider fails or returns nothing. Provider failures never propagate
// past this layer.
package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/takahiko217/stack-watcher/internal/domain/models"
	"github.com/takahiko217/stack-watcher/internal/openmeteo"
)

// ChartAPI is the market-data dependency of the stock and index services.
// Implemented by yahoo.Client; tests supply stubs.
type ChartAPI interface {
	DailyCandles(ctx context.Context, symbol string, days int) ([]models.Candle, error)
}

// ArchiveAPI is the historical-weather dependency of the weather service.
// Implemented by openmeteo.Client; tests supply stubs.
type ArchiveAPI interface {
	FetchDaily(ctx context.Context, latitude, longitude float64, days int) (*openmeteo.DailyArchive, error)
}

// RandFactory produces the random source used for mock synthesis. Each
// fallback draws from a fresh source so repeated calls regenerate
// independently; tests inject a seeded factory to assert exact output.
type RandFactory func() *rand.Rand

// DefaultRandFactory seeds a new source from the wall clock.
func DefaultRandFactory() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

const dateLayout = "2006-01-02"
