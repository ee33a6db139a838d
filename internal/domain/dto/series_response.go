package dto

// DTOs for the time-series endpoints. Field names follow the original
// frontend contract: snake_case for stock entries, camelCase for the
// parallel statistic arrays and envelope timestamps.

// OHLCVPoint is one daily stock-price record.
//
// swagger:model OHLCVPoint
type OHLCVPoint struct {
	Date   string  `json:"date" example:"2025-09-01"`
	Open   float64 `json:"open" example:"2500.0"`
	High   float64 `json:"high" example:"2540.5"`
	Low    float64 `json:"low" example:"2480.0"`
	Close  float64 `json:"close" example:"2530.0"`
	Volume int64   `json:"volume" example:"1200000"`
}

// StockSeries is the per-symbol payload of the stock endpoints. The
// parallel arrays (Dates/Values/Changes/ChangePercent) are index-aligned
// with DataPoints and always have equal length.
//
// swagger:model StockSeries
type StockSeries struct {
	Symbol        string       `json:"symbol" example:"6326"`
	CompanyName   string       `json:"company_name" example:"クボタ"`
	Market        string       `json:"market,omitempty" example:"東証プライム"`
	DataPoints    []OHLCVPoint `json:"data_points"`
	Dates         []string     `json:"dates"`
	Values        []float64    `json:"values"`
	Changes       []float64    `json:"changes"`
	ChangePercent []float64    `json:"changePercent"`
	IsMock        bool         `json:"is_mock"`
	Note          string       `json:"note,omitempty"`
	LastUpdated   string       `json:"last_updated"`
}

// StockError is one entry of the batch side list: the symbol that failed
// validation and why. Provider failures never appear here, they are
// absorbed by the mock fallback.
type StockError struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error"`
}

// StockBatch groups per-symbol results and validation errors of one batch
// request. One symbol failing never aborts the batch.
type StockBatch struct {
	Stocks []StockSeries `json:"stocks"`
	Errors []StockError  `json:"errors"`
}

// StocksResponse is the envelope of GET /api/v1/stocks.
type StocksResponse struct {
	Success     bool       `json:"success"`
	Data        StockBatch `json:"data"`
	Period      string     `json:"period" example:"7d"`
	LastUpdated string     `json:"lastUpdated"`
}

// StockResponse is the envelope of GET /api/v1/stocks/{symbol}.
type StockResponse struct {
	Success     bool         `json:"success"`
	Data        *StockSeries `json:"data"`
	Period      string       `json:"period" example:"7d"`
	LastUpdated string       `json:"lastUpdated"`
}

// SymbolInfo is one row of the available-symbols listing.
type SymbolInfo struct {
	Symbol string `json:"symbol" example:"6326"`
	Name   string `json:"name" example:"クボタ"`
	Market string `json:"market" example:"東証プライム"`
}

// SymbolsData wraps the listing so the payload stays an object.
type SymbolsData struct {
	Symbols []SymbolInfo `json:"symbols"`
}

// SymbolsResponse is the envelope of GET /api/v1/stocks/symbols.
type SymbolsResponse struct {
	Success bool        `json:"success"`
	Data    SymbolsData `json:"data"`
}

// IndexSeries is the per-index payload. Arrays are index-aligned and of
// equal length; Changes[0] and ChangePercent[0] are always zero.
//
// swagger:model IndexSeries
type IndexSeries struct {
	Name          string    `json:"name" example:"日経225"`
	Symbol        string    `json:"symbol" example:"^N225"`
	Dates         []string  `json:"dates"`
	Values        []float64 `json:"values"`
	Changes       []float64 `json:"changes"`
	ChangePercent []float64 `json:"changePercent"`
	Description   string    `json:"description" example:"日経平均株価"`
	IsMock        bool      `json:"is_mock"`
	Note          string    `json:"note,omitempty"`
}

// IndicesResponse is the envelope of GET /api/v1/indices, keyed by index
// symbol.
type IndicesResponse struct {
	Success     bool                   `json:"success"`
	Data        map[string]IndexSeries `json:"data"`
	Period      string                 `json:"period" example:"7d"`
	LastUpdated string                 `json:"lastUpdated"`
}

// IndexResponse is the envelope of GET /api/v1/indices/{symbol}. On an
// unknown symbol Success is false and Error names the symbol.
type IndexResponse struct {
	Success     bool         `json:"success"`
	Data        *IndexSeries `json:"data"`
	Period      string       `json:"period,omitempty" example:"7d"`
	LastUpdated string       `json:"lastUpdated,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// IndexInfo is one row of the available-indices listing.
type IndexInfo struct {
	Name        string `json:"name" example:"日経225"`
	Symbol      string `json:"symbol" example:"^N225"`
	Description string `json:"description" example:"日経平均株価"`
}

// AvailableIndicesResponse is the envelope of GET /api/v1/indices/available.
type AvailableIndicesResponse struct {
	Success bool                 `json:"success"`
	Data    map[string]IndexInfo `json:"data"`
}

// WeatherData is the payload of the weather endpoint: parallel arrays of
// daily precipitation (mm), mean temperature (°C) and mean sea-level
// pressure (hPa).
//
// swagger:model WeatherData
type WeatherData struct {
	Location      string    `json:"location" example:"東京都"`
	Dates         []string  `json:"dates"`
	Precipitation []float64 `json:"precipitation"`
	Temperature   []float64 `json:"temperature"`
	Pressure      []float64 `json:"pressure"`
	IsMock        bool      `json:"is_mock"`
}

// Coordinates echo the observation point of live provider data.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"35.6762"`
	Longitude float64 `json:"longitude" example:"139.6503"`
}

// WeatherResponse is the envelope of GET /api/v1/weather.
type WeatherResponse struct {
	Success     bool         `json:"success"`
	Data        WeatherData  `json:"data"`
	Period      string       `json:"period" example:"7d"`
	LastUpdated string       `json:"lastUpdated"`
	Source      string       `json:"source" example:"OpenMeteo API"`
	Note        string       `json:"note,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// LocationInfo is one row of the available-locations listing.
type LocationInfo struct {
	Name        string  `json:"name" example:"東京都"`
	Latitude    float64 `json:"latitude" example:"35.6762"`
	Longitude   float64 `json:"longitude" example:"139.6503"`
	Description string  `json:"description"`
}

// LocationsResponse is the envelope of GET /api/v1/weather/locations.
type LocationsResponse struct {
	Success bool                    `json:"success"`
	Data    map[string]LocationInfo `json:"data"`
	Note    string                  `json:"note,omitempty"`
}
