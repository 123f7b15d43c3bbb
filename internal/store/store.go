package store

import "CryptoSentinel/internal/model"

// Store is the durable, append-only, deduplicated candle table for
// (symbol, timeframe) series.
type Store interface {
	// LatestTimestamp returns the greatest stored timestamp for the series.
	// The bool is false when the series is empty.
	LatestTimestamp(symbol, timeframe string) (int64, bool, error)

	// AppendNew inserts the candles with timestamps greater than the latest
	// stored one, in order, and returns how many rows were actually inserted.
	// Candles violating the OHLCV invariants are dropped with a warning; the
	// rest of the batch proceeds. Safe to call repeatedly with overlapping
	// batches: replaying the same batch inserts each new row exactly once.
	AppendNew(symbol, timeframe string, candles []model.Candle) (int, error)

	// ReadSeries returns the full stored series in ascending timestamp order.
	ReadSeries(symbol, timeframe string) ([]model.Candle, error)

	Close() error
}

// ValidateCandle checks the Candle invariants: non-negative prices and volume,
// and low <= min(open, close) <= max(open, close) <= high.
func ValidateCandle(c model.Candle) *ValidationError {
	if c.Open < 0 || c.High < 0 || c.Low < 0 || c.Close < 0 {
		return &ValidationError{Timestamp: c.Timestamp, Reason: "negative price"}
	}
	if c.Volume < 0 {
		return &ValidationError{Timestamp: c.Timestamp, Reason: "negative volume"}
	}
	lo, hi := c.Open, c.Open
	if c.Close < lo {
		lo = c.Close
	}
	if c.Close > hi {
		hi = c.Close
	}
	if c.Low > lo {
		return &ValidationError{Timestamp: c.Timestamp, Reason: "low above open/close"}
	}
	if c.High < hi {
		return &ValidationError{Timestamp: c.Timestamp, Reason: "high below open/close"}
	}
	return nil
}
