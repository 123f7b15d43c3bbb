package model

import "time"

// Candle represents a single OHLCV bar. Timestamp is milliseconds since epoch
// and is the unique key within a (symbol, timeframe) series. Candles are
// append-only: once stored they are never mutated or deleted.
type Candle struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// Time returns the candle timestamp as UTC time.
func (c Candle) Time() time.Time {
	return time.UnixMilli(c.Timestamp).UTC()
}

// TypicalPrice returns (high+low+close)/3, the price VWAP weights by volume.
func (c Candle) TypicalPrice() float64 {
	return (c.High + c.Low + c.Close) / 3.0
}
