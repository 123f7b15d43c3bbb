package calculator

import (
	"math"

	"CryptoSentinel/internal/model"
)

// BollingerSeries computes the upper and lower Bollinger Bands: moving average
// of closes over the window, plus/minus k population standard deviations. The
// first window-1 positions of both bands are missing.
func BollingerSeries(closes []float64, window int, k float64) (upper, lower []model.Value) {
	upper = make([]model.Value, len(closes))
	lower = make([]model.Value, len(closes))
	if window <= 0 || len(closes) < window {
		return upper, lower
	}

	for i := window - 1; i < len(closes); i++ {
		win := closes[i-window+1 : i+1]

		sum := 0.0
		for _, v := range win {
			sum += v
		}
		mean := sum / float64(window)

		variance := 0.0
		for _, v := range win {
			variance += (v - mean) * (v - mean)
		}
		std := math.Sqrt(variance / float64(window))

		upper[i] = model.Defined(mean + k*std)
		lower[i] = model.Defined(mean - k*std)
	}
	return upper, lower
}
