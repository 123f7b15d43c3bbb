package store

import "fmt"

// ValidationError marks a candle that violates the OHLCV invariants. Such rows
// are rejected at ingestion; the rest of the batch proceeds.
type ValidationError struct {
	Timestamp int64
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid candle at %d: %s", e.Timestamp, e.Reason)
}

// StorageError wraps a failure of the persistence medium. It is fatal for the
// current run; the single-transaction append guarantees nothing was partially
// committed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
