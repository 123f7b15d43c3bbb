package model

// Value is an indicator value that may be undefined while the lookback window
// fills. Valid is false for the warm-up rows; a missing value is never encoded
// as zero or NaN.
type Value struct {
	Float64 float64
	Valid   bool
}

// Defined wraps a computed indicator value.
func Defined(v float64) Value {
	return Value{Float64: v, Valid: true}
}

// IndicatorRow holds the derived indicators for one candle, keyed by the same
// timestamp. Rows are ephemeral: recomputed from the stored series on each run.
type IndicatorRow struct {
	Timestamp int64
	EMA       Value
	RSI       Value
	VWAP      Value
	BBUpper   Value
	BBLower   Value
}

// Complete reports whether every indicator in the row is defined.
func (r IndicatorRow) Complete() bool {
	return r.EMA.Valid && r.RSI.Valid && r.VWAP.Valid && r.BBUpper.Valid && r.BBLower.Valid
}
