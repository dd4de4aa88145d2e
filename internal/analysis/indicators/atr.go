package indicators

import "math"

// ATRPercent computes a high-low range average expressed as a fraction of
// the close: the rolling mean of (High - Low) over the period, divided by
// each bar's close. Entries inside the warm-up window are NaN. Returns nil
// on length mismatch or insufficient data.
func ATRPercent(highs, lows, closes []float64, period int) []float64 {
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return nil
	}
	ranges := make([]float64, len(closes))
	for i := range ranges {
		ranges[i] = highs[i] - lows[i]
	}
	atr := RollingMean(ranges, period)
	if atr == nil {
		return nil
	}
	out := make([]float64, len(closes))
	for i := range out {
		if math.IsNaN(atr[i]) || closes[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = atr[i] / closes[i]
	}
	return out
}
