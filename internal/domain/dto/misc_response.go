package dto

// WelcomeResponse is the payload of the root endpoint.
type WelcomeResponse struct {
	Message string `json:"message" example:"Stack Watcher API へようこそ！"`
	Status  string `json:"status" example:"正常に動作中"`
	Version string `json:"version" example:"1.0.0"`
}

// HelloResponse is the payload of GET /api/hello.
type HelloResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"こんにちは、Stack Watcher です"`
}

// HealthData is the payload of the health endpoints.
type HealthData struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"システムは正常に動作しています"`
}

// HealthResponse is the envelope of GET /api/v1/health.
type HealthResponse struct {
	Success bool       `json:"success"`
	Data    HealthData `json:"data"`
}

// DemoData bundles a default sample of all three domains for the demo
// endpoint.
type DemoData struct {
	Stocks  StockBatch             `json:"stocks"`
	Indices map[string]IndexSeries `json:"indices"`
	Weather WeatherData            `json:"weather"`
}

// DemoResponse is the envelope of GET /api/v1/demo.
type DemoResponse struct {
	Success     bool     `json:"success"`
	Message     string   `json:"message"`
	Data        DemoData `json:"data"`
	Period      string   `json:"period" example:"7d"`
	LastUpdated string   `json:"lastUpdated"`
}
