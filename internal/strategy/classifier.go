package strategy

import (
	"fmt"

	"CryptoSentinel/internal/model"
)

// Classify maps one indicator row plus its candle's close to a signal using a
// confluence rule: every condition in a branch must hold.
//
//	BUY:  close > EMA, close > VWAP, 50 <= RSI <= 70 (boundaries inclusive)
//	SELL: close < EMA, close < VWAP, RSI < 50
//	HOLD: everything else
//
// A row with any missing indicator can never be BUY or SELL. No state is
// carried across rows.
func Classify(candle model.Candle, row model.IndicatorRow) model.Signal {
	if !row.Complete() {
		return model.SignalHold
	}

	close := candle.Close
	ema := row.EMA.Float64
	vwap := row.VWAP.Float64
	rsi := row.RSI.Float64

	switch {
	case close > ema && close > vwap && rsi >= 50 && rsi <= 70:
		return model.SignalBuy
	case close < ema && close < vwap && rsi < 50:
		return model.SignalSell
	default:
		return model.SignalHold
	}
}

// ClassifySeries applies Classify to index-aligned candles and indicator rows.
func ClassifySeries(candles []model.Candle, rows []model.IndicatorRow) ([]model.Signal, error) {
	if len(candles) != len(rows) {
		return nil, fmt.Errorf("classify: %d candles but %d indicator rows", len(candles), len(rows))
	}
	signals := make([]model.Signal, len(candles))
	for i := range candles {
		signals[i] = Classify(candles[i], rows[i])
	}
	return signals, nil
}
