// Package indicators provides pure, series-oriented indicator calculations.
// Every function returns a slice aligned index-for-index with its input;
// rows inside the warm-up window are math.NaN() so callers can drop them
// before classification. Insufficient input yields a nil slice, never an
// error or a partial result.
package indicators

import "math"

// rsiEpsilon substitutes a zero rolling average loss so a lossless series
// produces an RSI near 100 instead of a division failure.
const rsiEpsilon = 1e-10

// RollingMean computes a simple rolling mean over the given window. The
// first window-1 entries are NaN. NaN inputs poison their windows, matching
// the usual dataframe semantics.
func RollingMean(values []float64, window int) []float64 {
	if window <= 0 || len(values) < window {
		return nil
	}
	out := make([]float64, len(values))
	for i := range out {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// EMA computes an exponential moving average with smoothing factor
// 2/(period+1) and no bias adjustment: the first value seeds the average and
// every entry is defined from index zero. Returns nil if the series is
// shorter than the period.
func EMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}
	multiplier := 2.0 / float64(period+1)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = (values[i]-out[i-1])*multiplier + out[i-1]
	}
	return out
}

// RSI computes the Relative Strength Index using simple rolling means of
// gains and losses over the period. Entries before index period are NaN.
// Returns nil if the series is shorter than period+1.
func RSI(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period+1 {
		return nil
	}

	gains := make([]float64, len(values))
	losses := make([]float64, len(values))
	gains[0] = math.NaN()
	losses[0] = math.NaN()
	for i := 1; i < len(values); i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	out := make([]float64, len(values))
	for i := range out {
		if i < period {
			out[i] = math.NaN()
			continue
		}
		var avgGain, avgLoss float64
		for j := i - period + 1; j <= i; j++ {
			avgGain += gains[j]
			avgLoss += losses[j]
		}
		avgGain /= float64(period)
		avgLoss /= float64(period)
		if avgLoss == 0 {
			avgLoss = rsiEpsilon
		}
		rs := avgGain / avgLoss
		out[i] = 100 - (100 / (1 + rs))
	}
	return out
}

// VolumeAverage computes the simple rolling mean of a volume series. The
// first window-1 entries are NaN.
func VolumeAverage(volumes []float64, window int) []float64 {
	return RollingMean(volumes, window)
}

// ConsecutiveBarsAboveEMAs counts, scanning backward from the most recent
// bar, how many contiguous bars closed above both EMAs. Returns 0 when the
// EMA columns are missing or misaligned.
func ConsecutiveBarsAboveEMAs(closes, ema20, ema50 []float64) int {
	if len(ema20) != len(closes) || len(ema50) != len(closes) || len(closes) == 0 {
		return 0
	}
	count := 0
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] > math.Max(ema20[i], ema50[i]) {
			count++
		} else {
			break
		}
	}
	return count
}
