package collector

import "CryptoSentinel/internal/model"

// Fetcher defines the interface for fetching candles from a market-data
// source. Implementations return candles sorted ascending by timestamp with no
// duplicate timestamps within the batch.
type Fetcher interface {
	FetchCandles(symbol, timeframe string, limit int) ([]model.Candle, error)
	Name() string
}
