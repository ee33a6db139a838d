package models

// StockListing describes one supported stock: the short code used by the
// API, the suffixed ticker used by the market-data provider, and display
// metadata.
type StockListing struct {
	Code      string // API symbol, e.g. "6326"
	YahooCode string // provider ticker, e.g. "6326.T"
	Name      string // company name, e.g. "クボタ"
	Market    string // listing market label, e.g. "東証プライム"
}

// IndexListing describes one supported market index. BaseValue anchors the
// fallback synthesizer when the provider is unavailable.
type IndexListing struct {
	Symbol      string  // provider symbol, e.g. "^N225"
	Name        string  // display name, e.g. "日経225"
	Description string  // e.g. "日経平均株価"
	BaseValue   float64 // fallback anchor level
}

// Location describes one supported weather observation point.
type Location struct {
	Key         string  // API key, e.g. "tokyo"
	Name        string  // display name, e.g. "東京都"
	Latitude    float64
	Longitude   float64
	Description string
}

// DefaultStockListings is the supported Japanese stock set.
func DefaultStockListings() []StockListing {
	return []StockListing{
		{Code: "6326", YahooCode: "6326.T", Name: "クボタ", Market: "東証プライム"},
		{Code: "9984", YahooCode: "9984.T", Name: "ソフトバンクグループ", Market: "東証プライム"},
		{Code: "1377", YahooCode: "1377.T", Name: "サカタのタネ", Market: "東証プライム"},
	}
}

// DefaultIndexListings is the supported index set.
func DefaultIndexListings() []IndexListing {
	return []IndexListing{
		{Symbol: "^N225", Name: "日経225", Description: "日経平均株価", BaseValue: 28500},
		{Symbol: "^TPX", Name: "TOPIX", Description: "東証株価指数", BaseValue: 1950},
		{Symbol: "2516.T", Name: "マザーズ指数", Description: "東証マザーズ指数", BaseValue: 850},
	}
}

// DefaultLocations is the supported observation point set. Only Tokyo for
// now.
func DefaultLocations() []Location {
	return []Location{
		{
			Key:         "tokyo",
			Name:        "東京都",
			Latitude:    35.6762,
			Longitude:   139.6503,
			Description: "東京都内の代表観測点（OpenMeteo API）",
		},
	}
}
