package pipeline

import (
	"log"

	"CryptoSentinel/internal/calculator"
	"CryptoSentinel/internal/collector"
	"CryptoSentinel/internal/model"
	"CryptoSentinel/internal/store"
	"CryptoSentinel/internal/strategy"
)

// Runner executes the signal derivation pipeline: fetch, deduplicated append,
// read back, compute indicators, classify, summarize. One synchronous batch
// per invocation.
type Runner struct {
	Collector *collector.Collector
	Store     store.Store
	Indicator calculator.Config
}

// Result carries the outputs of one pipeline run.
type Result struct {
	Inserted int
	Series   []model.Candle
	Rows     []model.IndicatorRow
	Signals  []model.Signal
	Summary  model.SignalSummary
}

// NewRunner creates a pipeline runner.
func NewRunner(col *collector.Collector, st store.Store, ind calculator.Config) *Runner {
	return &Runner{Collector: col, Store: st, Indicator: ind}
}

// Run executes the full pipeline including the fetch step.
func (r *Runner) Run() (*Result, error) {
	candles, err := r.Collector.Collect()
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] fetched %d candles for %s/%s from %s",
		len(candles), r.Collector.Symbol, r.Collector.Timeframe, r.Collector.Fetcher.Name())

	inserted, err := r.Store.AppendNew(r.Collector.Symbol, r.Collector.Timeframe, candles)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] inserted %d new candles", inserted)

	res, err := r.Analyze()
	if err != nil {
		return nil, err
	}
	res.Inserted = inserted
	return res, nil
}

// Analyze recomputes indicators, signals, and the summary from the stored
// series without fetching.
func (r *Runner) Analyze() (*Result, error) {
	series, err := r.Store.ReadSeries(r.Collector.Symbol, r.Collector.Timeframe)
	if err != nil {
		return nil, err
	}

	rows, err := calculator.ComputeAll(series, r.Indicator)
	if err != nil {
		return nil, err
	}

	signals, err := strategy.ClassifySeries(series, rows)
	if err != nil {
		return nil, err
	}

	return &Result{
		Series:  series,
		Rows:    rows,
		Signals: signals,
		Summary: strategy.Summarize(signals),
	}, nil
}
