package models

import "time"

// Candle is one daily OHLCV bar, either fetched from the market-data
// provider or synthesized by the fallback generator.
type Candle struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}
