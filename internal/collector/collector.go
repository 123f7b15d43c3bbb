package collector

import (
	"fmt"
	"time"

	"CryptoSentinel/internal/model"
)

// Collector binds a fetcher to the configured series parameters.
type Collector struct {
	Fetcher   Fetcher
	Symbol    string
	Timeframe string
	Limit     int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, timeframe string, limit int) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Timeframe: timeframe, Limit: limit}
}

// Collect fetches the latest candle batch for the configured series.
func (c *Collector) Collect() ([]model.Candle, error) {
	candles, err := c.Fetcher.FetchCandles(c.Symbol, c.Timeframe, c.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch candles: %w", err)
	}
	return candles, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Candles []model.Candle
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCandles(_ string, _ string, limit int) ([]model.Candle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Candles != nil {
		return m.Candles, nil
	}
	return GenerateCandles(20000, limit), nil
}

// GenerateCandles builds a deterministic daily series around a base price,
// ending at the current day.
func GenerateCandles(basePrice float64, count int) []model.Candle {
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -count)
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		candles[i] = model.Candle{
			Timestamp: start.AddDate(0, 0, i+1).UnixMilli(),
			Open:      p * 0.999,
			High:      p * 1.005,
			Low:       p * 0.995,
			Close:     p,
			Volume:    1000,
		}
	}
	return candles
}
