// Package mockdata synthesizes fallback time series for the three data
// domains. The generators are structurally identical to real provider
// data and numerically plausible, but every result is clearly flagged as
// synthetic by the callers.
//
// All generators are pure functions of the identity, the day count and
// the supplied random source: a fixed seed reproduces the exact series,
// and repeated calls with fresh sources regenerate independently. Nothing
// here is cached.
package mockdata

import (
	"math"
	"math/rand"
	"time"

	"github.com/takahiko217/stack-watcher/internal/calculator"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
)

const (
	// StockNote explains why a stock series is synthetic.
	StockNote = "Yahoo Finance API制限のため、現実的なデモデータを表示しています"
	// FallbackNote marks synthetic index series.
	FallbackNote = "フォールバックデータ"
	// WeatherNote explains why a weather series is synthetic.
	WeatherNote = "実際の気象庁APIが利用できない場合のフォールバックデータ"

	baseVolume   = 1_000_000
	baseTemp     = 24.0   // September Tokyo mean
	basePressure = 1013.0 // standard sea-level pressure
	dateLayout   = "2006-01-02"
)

// StockProfile anchors the synthetic price path of one symbol.
type StockProfile struct {
	BasePrice  float64
	Volatility float64 // daily fractional volatility
	Trend      float64 // daily fractional drift
}

var stockProfiles = map[string]StockProfile{
	"6326": {BasePrice: 2500, Volatility: 0.03, Trend: 0.002},
	"9984": {BasePrice: 9000, Volatility: 0.05, Trend: -0.001},
	"1377": {BasePrice: 4000, Volatility: 0.04, Trend: 0.001},
}

var defaultProfile = StockProfile{BasePrice: 1000, Volatility: 0.03, Trend: 0}

// ProfileFor returns the price profile of a symbol, or a generic profile
// for symbols without a tuned one.
func ProfileFor(symbol string) StockProfile {
	if p, ok := stockProfiles[symbol]; ok {
		return p
	}
	return defaultProfile
}

// StockCandles walks a synthetic OHLCV path of the requested length ending
// at end. Each close is open + trend + gaussian noise, floored at half the
// base price so the series never goes non-positive; high/low bracket the
// day's range and are clamped around the close. Volume is modulated by
// weekday (heavier on Monday and Friday).
func StockCandles(rnd *rand.Rand, symbol string, days int, end time.Time) []models.Candle {
	profile := ProfileFor(symbol)
	candles := make([]models.Candle, 0, days)

	current := profile.BasePrice
	for i := 0; i < days; i++ {
		date := end.AddDate(0, 0, -(days - 1 - i))

		trendChange := profile.Trend * current
		randomChange := rnd.NormFloat64() * profile.Volatility * current
		priceChange := trendChange + randomChange

		open := current
		dailyRange := math.Abs(priceChange) + rnd.Float64()*profile.Volatility*current*0.5
		high := open + dailyRange*uniform(rnd, 0.3, 0.8)
		low := open - dailyRange*uniform(rnd, 0.3, 0.8)

		closePrice := open + priceChange
		closePrice = math.Max(closePrice, profile.BasePrice*0.5)
		high = math.Max(high, closePrice)
		low = math.Min(low, closePrice)

		current = closePrice

		candles = append(candles, models.Candle{
			Date:   date,
			Open:   calculator.Round2(open),
			High:   calculator.Round2(high),
			Low:    calculator.Round2(low),
			Close:  calculator.Round2(closePrice),
			Volume: int64(baseVolume * volumeMultiplier(rnd, date.Weekday())),
		})
	}
	return candles
}

// volumeMultiplier models the weekday effect on trading volume: Monday and
// Friday run hot, midweek is baseline, weekend dates (which only appear in
// synthetic calendars) are thin.
func volumeMultiplier(rnd *rand.Rand, day time.Weekday) float64 {
	switch day {
	case time.Monday, time.Friday:
		return uniform(rnd, 1.2, 1.8)
	case time.Tuesday, time.Wednesday, time.Thursday:
		return uniform(rnd, 0.8, 1.3)
	default:
		return uniform(rnd, 0.5, 0.8)
	}
}

// IndexLevels generates a synthetic index level series: the base value
// with independent ±2% uniform noise per day, no path dependence.
func IndexLevels(rnd *rand.Rand, baseValue float64, days int, end time.Time) (dates []string, values []float64) {
	dates = make([]string, 0, days)
	values = make([]float64, 0, days)
	for i := 0; i < days; i++ {
		date := end.AddDate(0, 0, -(days - 1 - i))
		dates = append(dates, date.Format(dateLayout))

		variation := uniform(rnd, -0.02, 0.02)
		values = append(values, calculator.Round2(baseValue*(1+variation)))
	}
	return dates, values
}

// WeatherSeries generates synthetic daily weather: a 20% chance of rain
// between 1 and 30mm, temperature within ±3° of the seasonal base, and
// pressure within ±15hPa of standard.
func WeatherSeries(rnd *rand.Rand, days int, end time.Time) (dates []string, precipitation, temperature, pressure []float64) {
	dates = make([]string, 0, days)
	precipitation = make([]float64, 0, days)
	temperature = make([]float64, 0, days)
	pressure = make([]float64, 0, days)

	for i := 0; i < days; i++ {
		date := end.AddDate(0, 0, -(days - 1 - i))
		dates = append(dates, date.Format(dateLayout))

		rain := 0.0
		if rnd.Float64() < 0.2 {
			rain = calculator.Round1(uniform(rnd, 1.0, 30.0))
		}
		precipitation = append(precipitation, rain)
		temperature = append(temperature, calculator.Round1(baseTemp+uniform(rnd, -3.0, 3.0)))
		pressure = append(pressure, calculator.Round1(basePressure+uniform(rnd, -15.0, 15.0)))
	}
	return dates, precipitation, temperature, pressure
}

func uniform(rnd *rand.Rand, min, max float64) float64 {
	return min + rnd.Float64()*(max-min)
}
