package calculator

import (
	"errors"

	"CryptoSentinel/internal/model"
)

// ErrInsufficientData is returned when the candle series is empty and no
// indicator row can be populated at all. Short-but-nonempty series are not an
// error: warm-up rows carry explicit missing markers instead.
var ErrInsufficientData = errors.New("insufficient data: empty candle series")

// Config carries the indicator window parameters. It is passed explicitly on
// every computation; there is no process-wide default.
type Config struct {
	EMAWindow       int
	RSIWindow       int
	BollingerWindow int
	BollingerK      float64
}

// ComputeAll derives one IndicatorRow per input candle, index-aligned with the
// series. Each row depends only on candles up to and including its own index,
// so changing a candle can never alter rows before it.
func ComputeAll(series []model.Candle, cfg Config) ([]model.IndicatorRow, error) {
	if len(series) == 0 {
		return nil, ErrInsufficientData
	}

	closes := extractCloses(series)
	ema := EMASeries(closes, cfg.EMAWindow)
	rsi := RSISeries(closes, cfg.RSIWindow)
	vwap := VWAPSeries(series)
	bbUpper, bbLower := BollingerSeries(closes, cfg.BollingerWindow, cfg.BollingerK)

	rows := make([]model.IndicatorRow, len(series))
	for i, c := range series {
		rows[i] = model.IndicatorRow{
			Timestamp: c.Timestamp,
			EMA:       ema[i],
			RSI:       rsi[i],
			VWAP:      vwap[i],
			BBUpper:   bbUpper[i],
			BBLower:   bbLower[i],
		}
	}
	return rows, nil
}

func extractCloses(series []model.Candle) []float64 {
	closes := make([]float64, len(series))
	for i, c := range series {
		closes[i] = c.Close
	}
	return closes
}
