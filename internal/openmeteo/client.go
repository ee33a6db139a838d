// Package openmeteo is a client for the Open-Meteo historical weather
// archive API, keyed by latitude/longitude and returning daily aggregates.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://archive-api.open-meteo.com/v1/archive"

// dataLagDays is how far behind real time the archive runs; the request
// window ends this many days before today.
const dataLagDays = 2

// Client is an HTTP client for the Open-Meteo archive endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the public Open-Meteo archive with
// the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return NewClientWithBaseURL(defaultBaseURL, timeout)
}

// NewClientWithBaseURL creates a client against a custom base URL (for
// testing).
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// DailyArchive is the decoded archive response. The daily arrays are
// index-aligned with Time; individual values may be null upstream and are
// therefore pointers.
type DailyArchive struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Daily     struct {
		Time              []string   `json:"time"`
		PrecipitationSum  []*float64 `json:"precipitation_sum"`
		Temperature2mMean []*float64 `json:"temperature_2m_mean"`
		PressureMSLMean   []*float64 `json:"pressure_msl_mean"`
	} `json:"daily"`
}

// FetchDaily requests days of daily precipitation, mean temperature and
// mean sea-level pressure for the given coordinates. The window ends two
// days in the past to stay behind the archive's ingestion lag.
func (c *Client) FetchDaily(ctx context.Context, latitude, longitude float64, days int) (*DailyArchive, error) {
	endDate := time.Now().AddDate(0, 0, -dataLagDays)
	startDate := endDate.AddDate(0, 0, -(days - 1))

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", longitude))
	params.Set("start_date", startDate.Format("2006-01-02"))
	params.Set("end_date", endDate.Format("2006-01-02"))
	params.Set("daily", "precipitation_sum,temperature_2m_mean,pressure_msl_mean")
	params.Set("timezone", "Asia/Tokyo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openmeteo request: %w", err)
	}
	req.Header.Set("User-Agent", "Stack-Watcher/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openmeteo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openmeteo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openmeteo: status %d", resp.StatusCode)
	}

	var archive DailyArchive
	if err := json.Unmarshal(body, &archive); err != nil {
		return nil, fmt.Errorf("openmeteo decode: %w", err)
	}
	if len(archive.Daily.Time) == 0 {
		return nil, fmt.Errorf("openmeteo: no daily data returned")
	}
	return &archive, nil
}
