package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"CryptoSentinel/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists candle series to a SQLite database. The composite
// primary key (symbol, timeframe, timestamp) enforces the no-duplicate
// invariant at the engine level, so replays and concurrent appenders cannot
// insert the same candle twice.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	// WAL mode so readers don't block the appender.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &StorageError{Op: "set WAL mode", Err: err}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS candles (
			symbol    TEXT    NOT NULL,
			timeframe TEXT    NOT NULL,
			timestamp INTEGER NOT NULL,
			open      REAL    NOT NULL,
			high      REAL    NOT NULL,
			low       REAL    NOT NULL,
			close     REAL    NOT NULL,
			volume    REAL    NOT NULL,
			PRIMARY KEY (symbol, timeframe, timestamp)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candles_ts ON candles(timestamp)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return &StorageError{Op: "migrate", Err: fmt.Errorf("exec %q: %w", stmt[:30], err)}
		}
	}
	return nil
}

// LatestTimestamp returns the greatest stored timestamp for the series, or
// false when the series is empty.
func (s *SQLiteStore) LatestTimestamp(symbol, timeframe string) (int64, bool, error) {
	var ts sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(timestamp) FROM candles WHERE symbol = ? AND timeframe = ?`,
		symbol, timeframe,
	).Scan(&ts)
	if err != nil {
		return 0, false, &StorageError{Op: "latest timestamp", Err: err}
	}
	if !ts.Valid {
		return 0, false, nil
	}
	return ts.Int64, true, nil
}

// AppendNew filters out candles at or before the latest stored timestamp,
// validates the remainder, and inserts the surviving rows in one transaction.
// Invalid rows and duplicate timestamps within the batch are dropped with a
// warning. Returns the number of rows actually inserted.
func (s *SQLiteStore) AppendNew(symbol, timeframe string, candles []model.Candle) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latest, hasLatest, err := s.LatestTimestamp(symbol, timeframe)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, &StorageError{Op: "begin append", Err: err}
	}

	// INSERT OR IGNORE: the primary key is the last line of defense against a
	// concurrent appender racing between the MAX query and the commit.
	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO candles
		(symbol, timeframe, timestamp, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, &StorageError{Op: "prepare append", Err: err}
	}
	defer stmt.Close()

	inserted := 0
	seen := make(map[int64]bool)
	for _, c := range candles {
		if hasLatest && c.Timestamp <= latest {
			continue
		}
		if seen[c.Timestamp] {
			verr := &ValidationError{Timestamp: c.Timestamp, Reason: "duplicate timestamp in batch"}
			log.Printf("[WARN] append %s/%s: %v, row dropped", symbol, timeframe, verr)
			continue
		}
		if verr := ValidateCandle(c); verr != nil {
			log.Printf("[WARN] append %s/%s: %v, row dropped", symbol, timeframe, verr)
			continue
		}
		seen[c.Timestamp] = true

		res, err := stmt.Exec(symbol, timeframe, c.Timestamp, c.Open, c.High, c.Low, c.Close, c.Volume)
		if err != nil {
			tx.Rollback()
			return 0, &StorageError{Op: "append", Err: err}
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &StorageError{Op: "commit append", Err: err}
	}
	return inserted, nil
}

// ReadSeries returns the full stored series in ascending timestamp order.
func (s *SQLiteStore) ReadSeries(symbol, timeframe string) ([]model.Candle, error) {
	rows, err := s.db.Query(`
		SELECT timestamp, open, high, low, close, volume
		FROM candles
		WHERE symbol = ? AND timeframe = ?
		ORDER BY timestamp ASC
	`, symbol, timeframe)
	if err != nil {
		return nil, &StorageError{Op: "read series", Err: err}
	}
	defer rows.Close()

	var series []model.Candle
	for rows.Next() {
		var c model.Candle
		if err := rows.Scan(&c.Timestamp, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, &StorageError{Op: "scan series", Err: err}
		}
		series = append(series, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "read series", Err: err}
	}
	return series, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
