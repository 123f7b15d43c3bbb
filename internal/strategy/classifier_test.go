package strategy

import (
	"testing"

	"CryptoSentinel/internal/model"
)

func completeRow(ema, rsi, vwap float64) model.IndicatorRow {
	return model.IndicatorRow{
		EMA:     model.Defined(ema),
		RSI:     model.Defined(rsi),
		VWAP:    model.Defined(vwap),
		BBUpper: model.Defined(99999),
		BBLower: model.Defined(0),
	}
}

func TestClassify_Buy(t *testing.T) {
	// Close above EMA and VWAP, RSI 60 → BUY.
	c := model.Candle{Close: 110}
	row := completeRow(105, 60, 104)
	if got := Classify(c, row); got != model.SignalBuy {
		t.Errorf("expected BUY, got %s", got)
	}
}

func TestClassify_Sell(t *testing.T) {
	// Close below EMA and VWAP, RSI 40 → SELL.
	c := model.Candle{Close: 90}
	row := completeRow(95, 40, 96)
	if got := Classify(c, row); got != model.SignalSell {
		t.Errorf("expected SELL, got %s", got)
	}
}

func TestClassify_RSIBoundaries(t *testing.T) {
	tests := []struct {
		rsi  float64
		want model.Signal
	}{
		{50, model.SignalBuy},  // inclusive lower bound
		{70, model.SignalBuy},  // inclusive upper bound
		{70.1, model.SignalHold},
		{49.9, model.SignalHold}, // close above EMA/VWAP but RSI below range
	}
	for _, tt := range tests {
		c := model.Candle{Close: 110}
		row := completeRow(105, tt.rsi, 104)
		if got := Classify(c, row); got != tt.want {
			t.Errorf("rsi %.1f: expected %s, got %s", tt.rsi, tt.want, got)
		}
	}

	// RSI exactly 50 does not satisfy SELL's strict < 50.
	c := model.Candle{Close: 90}
	row := completeRow(95, 50, 96)
	if got := Classify(c, row); got != model.SignalHold {
		t.Errorf("rsi 50 below EMA/VWAP: expected HOLD, got %s", got)
	}
}

func TestClassify_MissingIndicatorIsHold(t *testing.T) {
	// Bullish price relationship, but RSI still in its warm-up window.
	c := model.Candle{Close: 110}
	row := completeRow(105, 60, 104)
	row.RSI = model.Value{}
	if got := Classify(c, row); got != model.SignalHold {
		t.Errorf("missing RSI: expected HOLD, got %s", got)
	}

	// Any single missing indicator forces HOLD.
	fields := []func(*model.IndicatorRow){
		func(r *model.IndicatorRow) { r.EMA = model.Value{} },
		func(r *model.IndicatorRow) { r.VWAP = model.Value{} },
		func(r *model.IndicatorRow) { r.BBUpper = model.Value{} },
		func(r *model.IndicatorRow) { r.BBLower = model.Value{} },
	}
	for i, clear := range fields {
		r := completeRow(105, 60, 104)
		clear(&r)
		if got := Classify(c, r); got != model.SignalHold {
			t.Errorf("case %d: expected HOLD for incomplete row, got %s", i, got)
		}
	}
}

func TestClassify_Totality(t *testing.T) {
	closes := []float64{0, 50, 90, 100, 110, 1e9}
	rsis := []float64{0, 49.99, 50, 60, 70, 70.01, 100}
	for _, close := range closes {
		for _, rsi := range rsis {
			for _, valid := range []bool{true, false} {
				row := completeRow(100, rsi, 100)
				row.EMA.Valid = valid
				got := Classify(model.Candle{Close: close}, row)
				if got != model.SignalBuy && got != model.SignalSell && got != model.SignalHold {
					t.Fatalf("classifier returned unknown signal %q", got)
				}
			}
		}
	}
}

func TestClassifySeries_ScenarioUptrend(t *testing.T) {
	// Closes [100, 105, 110] with EMA/VWAP below close and RSI 60 on the last
	// row: last row must classify BUY.
	candles := []model.Candle{{Close: 100}, {Close: 105}, {Close: 110}}
	rows := []model.IndicatorRow{
		{}, // warm-up
		{},
		completeRow(104, 60, 103),
	}
	signals, err := ClassifySeries(candles, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signals[0] != model.SignalHold || signals[1] != model.SignalHold {
		t.Error("warm-up rows must be HOLD")
	}
	if signals[2] != model.SignalBuy {
		t.Errorf("expected BUY on last row, got %s", signals[2])
	}
}

func TestClassifySeries_ScenarioDowntrend(t *testing.T) {
	// Closes [100, 95, 90] with EMA/VWAP above close and RSI 40 on the last
	// row: last row must classify SELL.
	candles := []model.Candle{{Close: 100}, {Close: 95}, {Close: 90}}
	rows := []model.IndicatorRow{
		{},
		{},
		completeRow(96, 40, 97),
	}
	signals, err := ClassifySeries(candles, rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signals[2] != model.SignalSell {
		t.Errorf("expected SELL on last row, got %s", signals[2])
	}
}

func TestClassifySeries_LengthMismatch(t *testing.T) {
	_, err := ClassifySeries([]model.Candle{{}}, nil)
	if err == nil {
		t.Fatal("expected error on length mismatch")
	}
}
