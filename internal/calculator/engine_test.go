package calculator

import (
	"errors"
	"math"
	"testing"

	"CryptoSentinel/internal/model"
)

func makeSeries(closes []float64) []model.Candle {
	series := make([]model.Candle, len(closes))
	for i, c := range closes {
		series[i] = model.Candle{
			Timestamp: int64(i+1) * 86400000,
			Open:      c,
			High:      c * 1.01,
			Low:       c * 0.99,
			Close:     c,
			Volume:    100,
		}
	}
	return series
}

func defaultConfig() Config {
	return Config{EMAWindow: 20, RSIWindow: 14, BollingerWindow: 20, BollingerK: 2.0}
}

func TestComputeAll_EmptySeries(t *testing.T) {
	_, err := ComputeAll(nil, defaultConfig())
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestComputeAll_RowAlignment(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	s := makeSeries(closes)

	rows, err := ComputeAll(s, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(s) {
		t.Fatalf("expected %d rows, got %d", len(s), len(rows))
	}
	for i, r := range rows {
		if r.Timestamp != s[i].Timestamp {
			t.Fatalf("row %d: timestamp %d does not match candle %d", i, r.Timestamp, s[i].Timestamp)
		}
	}
}

func TestComputeAll_MissingWarmupRows(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
	}
	rows, err := ComputeAll(makeSeries(closes), defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// EMA and Bollinger defined from index window-1, RSI from index window.
	for i := 0; i < 19; i++ {
		if rows[i].EMA.Valid {
			t.Errorf("row %d: EMA should be missing during warm-up", i)
		}
		if rows[i].BBUpper.Valid || rows[i].BBLower.Valid {
			t.Errorf("row %d: Bollinger bands should be missing during warm-up", i)
		}
	}
	for i := 0; i < 14; i++ {
		if rows[i].RSI.Valid {
			t.Errorf("row %d: RSI should be missing during warm-up", i)
		}
	}
	if !rows[19].EMA.Valid || !rows[19].BBUpper.Valid || !rows[19].BBLower.Valid {
		t.Error("row 19: EMA and Bollinger bands should be defined")
	}
	if !rows[14].RSI.Valid {
		t.Error("row 14: RSI should be defined")
	}
	// VWAP is cumulative: defined from the first row with volume.
	if !rows[0].VWAP.Valid {
		t.Error("row 0: VWAP should be defined")
	}
}

func TestComputeAll_ShortSeriesIsNotAnError(t *testing.T) {
	rows, err := ComputeAll(makeSeries([]float64{100, 101, 102}), defaultConfig())
	if err != nil {
		t.Fatalf("short series must not fail: %v", err)
	}
	for i, r := range rows {
		if r.EMA.Valid || r.RSI.Valid || r.BBUpper.Valid {
			t.Errorf("row %d: windowed indicators should all be missing", i)
		}
		if !r.VWAP.Valid {
			t.Errorf("row %d: VWAP should be defined", i)
		}
	}
}

// Changing the candle at index i must not change any row before i.
func TestComputeAll_Causality(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + math.Sin(float64(i))*5
	}
	base := makeSeries(closes)

	before, err := ComputeAll(base, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const mutated = 30
	modified := make([]model.Candle, len(base))
	copy(modified, base)
	modified[mutated].Close = 500
	modified[mutated].High = 510
	modified[mutated].Low = 90
	modified[mutated].Volume = 9999

	after, err := ComputeAll(modified, defaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < mutated; i++ {
		if before[i] != after[i] {
			t.Fatalf("row %d changed after mutating candle %d: %+v vs %+v", i, mutated, before[i], after[i])
		}
	}
}

func TestEMASeries_SeededWithSMA(t *testing.T) {
	out := EMASeries([]float64{1, 2, 3, 4, 5}, 3)
	if out[0].Valid || out[1].Valid {
		t.Error("first window-1 positions should be missing")
	}
	if !out[2].Valid || out[2].Float64 != 2 {
		t.Errorf("expected seed SMA 2, got %+v", out[2])
	}
	// multiplier = 2/(3+1) = 0.5
	if !out[3].Valid || out[3].Float64 != 3 {
		t.Errorf("expected EMA 3, got %+v", out[3])
	}
	if !out[4].Valid || out[4].Float64 != 4 {
		t.Errorf("expected EMA 4, got %+v", out[4])
	}
}

func TestBollingerSeries_KnownValues(t *testing.T) {
	upper, lower := BollingerSeries([]float64{1, 2, 3}, 3, 2.0)
	if upper[0].Valid || upper[1].Valid {
		t.Error("first window-1 positions should be missing")
	}
	// mean 2, population std sqrt(2/3)
	std := math.Sqrt(2.0 / 3.0)
	if !upper[2].Valid || math.Abs(upper[2].Float64-(2+2*std)) > 1e-9 {
		t.Errorf("unexpected upper band: %+v", upper[2])
	}
	if !lower[2].Valid || math.Abs(lower[2].Float64-(2-2*std)) > 1e-9 {
		t.Errorf("unexpected lower band: %+v", lower[2])
	}
}
