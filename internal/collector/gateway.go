package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"CryptoSentinel/internal/model"
)

// GatewayFetcher implements Fetcher against a self-hosted market-data gateway
// exposing a candles endpoint. Used when data_source.base_url is configured.
type GatewayFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewGatewayFetcher creates a new fetcher with optional proxy support.
func NewGatewayFetcher(baseURL, apiKey, proxyURL string) *GatewayFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &GatewayFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *GatewayFetcher) Name() string { return "gateway" }

// gatewayCandle is the expected JSON shape from the gateway API.
type gatewayCandle struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *GatewayFetcher) FetchCandles(symbol, timeframe string, limit int) ([]model.Candle, error) {
	endpoint := fmt.Sprintf("%s/api/v1/candles?symbol=%s&timeframe=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(timeframe), limit)

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway: status %d, body: %s", resp.StatusCode, string(body))
	}

	var raw []gatewayCandle
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("gateway decode: %w", err)
	}

	candles := make([]model.Candle, len(raw))
	for i, g := range raw {
		candles[i] = model.Candle{
			Timestamp: g.Timestamp,
			Open:      g.Open,
			High:      g.High,
			Low:       g.Low,
			Close:     g.Close,
			Volume:    g.Volume,
		}
	}

	sort.Slice(candles, func(i, j int) bool { return candles[i].Timestamp < candles[j].Timestamp })
	return candles, nil
}
