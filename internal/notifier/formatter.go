package notifier

import (
	"fmt"
	"strings"
	"time"

	"CryptoSentinel/internal/model"
	"CryptoSentinel/internal/pipeline"
)

// FormatSummary formats a signal summary as plain text for the console.
func FormatSummary(symbol, timeframe string, s model.SignalSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("--- SIGNAL SUMMARY %s %s ---\n", symbol, timeframe))
	b.WriteString(fmt.Sprintf("Buy signals  : %d\n", s.Buy))
	b.WriteString(fmt.Sprintf("Sell signals : %d\n", s.Sell))
	b.WriteString(fmt.Sprintf("Hold signals : %d\n", s.Hold))
	b.WriteString(fmt.Sprintf("Trend        : %s\n", s.Label))
	return b.String()
}

// FormatTail renders the last n rows of the run (candle close, indicators,
// signal), oldest first. Missing indicator values print as "-".
func FormatTail(res *pipeline.Result, n int) string {
	start := len(res.Series) - n
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	b.WriteString("date        close      ema        rsi    vwap       signal\n")
	for i := start; i < len(res.Series); i++ {
		c := res.Series[i]
		row := res.Rows[i]
		b.WriteString(fmt.Sprintf("%s  %-9.2f  %-9s  %-5s  %-9s  %s\n",
			c.Time().Format("2006-01-02"), c.Close,
			fmtValue(row.EMA, "%.2f"), fmtValue(row.RSI, "%.1f"), fmtValue(row.VWAP, "%.2f"),
			res.Signals[i]))
	}
	return b.String()
}

func fmtValue(v model.Value, format string) string {
	if !v.Valid {
		return "-"
	}
	return fmt.Sprintf(format, v.Float64)
}

// FormatReport formats a full pipeline result into a Telegram HTML message.
func FormatReport(symbol, timeframe string, res *pipeline.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>CryptoSentinel</b> | %s %s | %s\n\n",
		symbol, timeframe, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("New candles stored: %d (series length %d)\n\n", res.Inserted, len(res.Series)))

	s := res.Summary
	b.WriteString("📈 <b>Signal distribution:</b>\n")
	b.WriteString(fmt.Sprintf("  BUY: %d | SELL: %d | HOLD: %d\n", s.Buy, s.Sell, s.Hold))
	b.WriteString(fmt.Sprintf("  Trend: <b>%s</b>\n", s.Label))

	if n := len(res.Signals); n > 0 {
		last := res.Series[n-1]
		b.WriteString(fmt.Sprintf("\n💡 Latest: %s at close %.2f (%s)\n",
			res.Signals[n-1], last.Close, last.Time().Format("2006-01-02")))
	}
	return b.String()
}
