package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"CryptoSentinel/internal/model"
)

// BinanceFetcher implements Fetcher using the Binance public klines API.
type BinanceFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewBinanceFetcher creates a new Binance fetcher with optional proxy support.
func NewBinanceFetcher(proxyURL string) *BinanceFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &BinanceFetcher{
		BaseURL: "https://api.binance.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *BinanceFetcher) Name() string { return "binance" }

// binanceSymbol converts "BTC/USDT" to Binance's "BTCUSDT" form.
func binanceSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "/", ""))
}

func (f *BinanceFetcher) FetchCandles(symbol, timeframe string, limit int) ([]model.Candle, error) {
	endpoint := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&limit=%d",
		f.BaseURL, url.QueryEscape(binanceSymbol(symbol)), url.QueryEscape(timeframe), limit)

	resp, err := f.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("binance fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("binance read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("binance: status %d, body: %s", resp.StatusCode, string(body))
	}

	// Each kline is a mixed array: open time (ms), then OHLCV as strings.
	var raw [][]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("binance decode: %w", err)
	}

	candles := make([]model.Candle, 0, len(raw))
	for _, k := range raw {
		if len(k) < 6 {
			continue
		}
		var ts int64
		if err := json.Unmarshal(k[0], &ts); err != nil {
			return nil, fmt.Errorf("binance decode open time: %w", err)
		}
		vals := make([]float64, 5)
		for i := 0; i < 5; i++ {
			var s string
			if err := json.Unmarshal(k[i+1], &s); err != nil {
				return nil, fmt.Errorf("binance decode field %d: %w", i+1, err)
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("binance parse field %d: %w", i+1, err)
			}
			vals[i] = v
		}
		candles = append(candles, model.Candle{
			Timestamp: ts,
			Open:      vals[0],
			High:      vals[1],
			Low:       vals[2],
			Close:     vals[3],
			Volume:    vals[4],
		})
	}

	// Ensure chronological order
	sort.Slice(candles, func(i, j int) bool { return candles[i].Timestamp < candles[j].Timestamp })
	return candles, nil
}
