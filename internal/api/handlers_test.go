package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/takahiko217/stack-watcher/internal/domain/dto"
	"github.com/takahiko217/stack-watcher/internal/domain/models"
)

// Stub services returning fixed payloads so that the tests exercise only
// the HTTP mapping.

type stubStocks struct {
	series *dto.StockSeries
	err    error
}

func (s *stubStocks) GetStock(_ context.Context, symbol string, _ models.Period) (*dto.StockSeries, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *s.series
	out.Symbol = symbol
	return &out, nil
}

func (s *stubStocks) GetStocks(ctx context.Context, symbols []string, period models.Period) dto.StockBatch {
	batch := dto.StockBatch{Stocks: []dto.StockSeries{}, Errors: []dto.StockError{}}
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

func (s *stubStocks) AvailableSymbols() []dto.SymbolInfo {
	return []dto.SymbolInfo{
		{Symbol: "6326", Name: "クボタ", Market: "東証プライム"},
		{Symbol: "9984", Name: "ソフトバンクグループ", Market: "東証プライム"},
		{Symbol: "1377", Name: "サカタのタネ", Market: "東証プライム"},
	}
}

type stubIndices struct {
	series dto.IndexSeries
	err    error
}

func (s *stubIndices) GetIndices(_ context.Context, symbols []string, _ models.Period) map[string]dto.IndexSeries {
	if symbols == nil {
		symbols = []string{"^N225", "^TPX", "2516.T"}
	}
	out := make(map[string]dto.IndexSeries, len(symbols))
	for _, symbol := range symbols {
		series := s.series
		series.Symbol = symbol
		out[symbol] = series
	}
	return out
}

func (s *stubIndices) GetIndex(_ context.Context, symbol string, _ models.Period) (*dto.IndexSeries, error) {
	if s.err != nil {
		return nil, s.err
	}
	series := s.series
	series.Symbol = symbol
	return &series, nil
}

func (s *stubIndices) AvailableIndices() map[string]dto.IndexInfo {
	return map[string]dto.IndexInfo{
		"^N225": {Name: "日経225", Symbol: "^N225", Description: "日経平均株価"},
	}
}

type stubWeather struct {
	resp *dto.WeatherResponse
	err  error

	gotLocation string
}

func (s *stubWeather) GetWeather(_ context.Context, location string, _ models.Period) (*dto.WeatherResponse, error) {
	s.gotLocation = location
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubWeather) AvailableLocations() map[string]dto.LocationInfo {
	return map[string]dto.LocationInfo{
		"tokyo": {Name: "東京都", Latitude: 35.6762, Longitude: 139.6503},
	}
}

func testSeries() *dto.StockSeries {
	return &dto.StockSeries{
		Symbol:        "6326",
		CompanyName:   "クボタ",
		Market:        "東証プライム",
		DataPoints:    []dto.OHLCVPoint{{Date: "2025-09-01", Open: 2500, High: 2540, Low: 2480, Close: 2530, Volume: 1_000_000}},
		Dates:         []string{"2025-09-01"},
		Values:        []float64{2530},
		Changes:       []float64{0},
		ChangePercent: []float64{0},
	}
}

func testWeatherResponse() *dto.WeatherResponse {
	return &dto.WeatherResponse{
		Success: true,
		Data: dto.WeatherData{
			Location:      "東京都",
			Dates:         []string{"2025-08-30"},
			Precipitation: []float64{0},
			Temperature:   []float64{26.1},
			Pressure:      []float64{1012.3},
		},
		Period: "7d",
		Source: "OpenMeteo API",
	}
}

func newTestRouter(stocks *stubStocks, indices *stubIndices, weather *stubWeather) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(stocks, indices, weather)

	r.GET("/", h.Welcome)
	r.GET("/api/hello", h.Hello)
	r.GET("/api/v1/health", h.Health)
	r.GET("/api/v1/demo", h.Demo)
	r.GET("/api/v1/stocks", h.GetStocks)
	r.GET("/api/v1/stocks/symbols", h.GetStockSymbols)
	r.GET("/api/v1/stocks/:symbol", h.GetStock)
	r.GET("/api/v1/indices", h.GetIndices)
	r.GET("/api/v1/indices/available", h.GetAvailableIndices)
	r.GET("/api/v1/indices/:symbol", h.GetIndex)
	r.GET("/api/v1/weather", h.GetWeather)
	r.GET("/api/v1/weather/locations", h.GetWeatherLocations)
	return r
}

func defaultRouter() *gin.Engine {
	return newTestRouter(
		&stubStocks{series: testSeries()},
		&stubIndices{series: dto.IndexSeries{Name: "日経225", Values: []float64{28500}}},
		&stubWeather{resp: testWeatherResponse()},
	)
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestWelcome(t *testing.T) {
	w := doGet(t, defaultRouter(), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Stack Watcher API へようこそ") {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestHello(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/hello")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.HelloResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Message == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHealth(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/health")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Status != "healthy" {
		t.Fatalf("status=%s", resp.Data.Status)
	}
}

func TestGetStocks_DefaultsToAllSymbols(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/stocks")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.StocksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if len(resp.Data.Stocks) != 3 {
		t.Fatalf("expected all 3 symbols, got %d", len(resp.Data.Stocks))
	}
	if resp.Period != "7d" {
		t.Fatalf("period=%s", resp.Period)
	}
	if resp.LastUpdated == "" {
		t.Fatalf("missing lastUpdated")
	}
}

func TestGetStocks_ExplicitSymbols(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/stocks?symbols=6326,9984&period=1m")
	var resp dto.StocksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Stocks) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(resp.Data.Stocks))
	}
	if resp.Period != "1m" {
		t.Fatalf("period=%s", resp.Period)
	}
}

func TestGetStocks_InvalidPeriod(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/stocks?period=1y")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "無効な期間") {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestGetStock_UnknownSymbol(t *testing.T) {
	r := newTestRouter(
		&stubStocks{err: &models.UnknownIDError{Kind: "銘柄コード", ID: "9999"}},
		&stubIndices{},
		&stubWeather{resp: testWeatherResponse()},
	)
	w := doGet(t, r, "/api/v1/stocks/9999")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "サポートされていない銘柄コード") {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestGetStock(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/stocks/6326?period=3m")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.StockResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data == nil || resp.Data.Symbol != "6326" {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
	if resp.Period != "3m" {
		t.Fatalf("period=%s", resp.Period)
	}
}

func TestGetStockSymbols(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/stocks/symbols")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.SymbolsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Symbols) != 3 {
		t.Fatalf("expected 3 symbols, got %d", len(resp.Data.Symbols))
	}
}

func TestGetIndices(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/indices")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.IndicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(resp.Data))
	}
	if _, ok := resp.Data["^N225"]; !ok {
		t.Fatalf("missing ^N225: %v", resp.Data)
	}
}

func TestGetIndices_EmptySymbolListDefaultsToAll(t *testing.T) {
	// A symbols parameter with only separators behaves like an absent one.
	w := doGet(t, defaultRouter(), "/api/v1/indices?symbols=,,")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.IndicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected all 3 indices, got %d", len(resp.Data))
	}
}

func TestGetStocks_EmptySymbolListDefaultsToAll(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/stocks?symbols=,,")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.StocksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Stocks) != 3 {
		t.Fatalf("expected all 3 symbols, got %d", len(resp.Data.Stocks))
	}
}

func TestGetIndex_Unknown(t *testing.T) {
	r := newTestRouter(
		&stubStocks{series: testSeries()},
		&stubIndices{err: &models.UnknownIDError{Kind: "インデックス銘柄", ID: "^BOGUS"}},
		&stubWeather{resp: testWeatherResponse()},
	)
	w := doGet(t, r, "/api/v1/indices/^BOGUS")
	if w.Code != http.StatusNotFound {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.IndexResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
	if !strings.Contains(resp.Error, "^BOGUS") || !strings.Contains(resp.Error, "見つかりません") {
		t.Fatalf("error=%s", resp.Error)
	}
}

func TestGetIndex_InvalidPeriod(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/indices/^N225?period=nope")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
}

func TestGetAvailableIndices(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/indices/available")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.AvailableIndicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.Data["^N225"]; !ok {
		t.Fatalf("missing ^N225")
	}
}

func TestGetWeather_DefaultLocation(t *testing.T) {
	weather := &stubWeather{resp: testWeatherResponse()}
	r := newTestRouter(&stubStocks{series: testSeries()}, &stubIndices{}, weather)

	w := doGet(t, r, "/api/v1/weather")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if weather.gotLocation != "tokyo" {
		t.Fatalf("location=%s, want tokyo", weather.gotLocation)
	}
	var resp dto.WeatherResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Source != "OpenMeteo API" {
		t.Fatalf("source=%s", resp.Source)
	}
}

func TestGetWeather_UnknownLocation(t *testing.T) {
	weather := &stubWeather{err: &models.UnknownIDError{Kind: "地域", ID: "osaka"}}
	r := newTestRouter(&stubStocks{series: testSeries()}, &stubIndices{}, weather)

	w := doGet(t, r, "/api/v1/weather?location=osaka")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "サポートされていない地域") {
		t.Fatalf("body=%s", w.Body.String())
	}
}

func TestGetWeatherLocations(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/weather/locations")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.LocationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.Data["tokyo"]; !ok {
		t.Fatalf("missing tokyo")
	}
}

func TestDemo(t *testing.T) {
	w := doGet(t, defaultRouter(), "/api/v1/demo")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var resp dto.DemoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if len(resp.Data.Stocks.Stocks) != 3 {
		t.Fatalf("expected all 3 stocks, got %d", len(resp.Data.Stocks.Stocks))
	}
	if len(resp.Data.Indices) != 3 {
		t.Fatalf("expected all 3 indices, got %d", len(resp.Data.Indices))
	}
	if resp.Data.Weather.Location != "東京都" {
		t.Fatalf("weather location=%s", resp.Data.Weather.Location)
	}
	if resp.Period != "7d" {
		t.Fatalf("period=%s", resp.Period)
	}
}

func TestSplitSymbols(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"6326", 1},
		{"6326,9984", 2},
		{" 6326 , ,9984 ", 2},
		{",,", 0},
		{" , , ", 0},
	}
	for _, tc := range cases {
		got := splitSymbols(tc.in)
		if len(got) != tc.want {
			t.Fatalf("splitSymbols(%q) = %v, want %d entries", tc.in, got, tc.want)
		}
		if tc.want == 0 && got != nil {
			t.Fatalf("splitSymbols(%q) = %v, want nil for an empty list", tc.in, got)
		}
	}
}
