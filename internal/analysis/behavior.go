package analysis

import (
	"math"

	"equityPaperBot/internal/analysis/indicators"
	"equityPaperBot/internal/domain"
)

// Behavior classifier parameters.
const (
	behaviorMinRows    = 20
	failureMinSignals  = 2
	expansionMinRows   = 34
	expansionMinCount  = 3
	effortVolumeRatio  = 1.5
	tightRangeWindow   = 15
	tightRangeFraction = 0.08
	atrPeriod          = 14
	atrAvgWindow       = 20
)

// ClassifyBehavior assigns one of the three behavior labels by evaluating
// the failure checklist first and, only when failure does not trigger, the
// expansion checklist. Two or more failure signals short-circuit to FAILURE;
// three or more expansion signals yield EXPANSION; everything else is
// CONTINUATION. The returned map carries every evaluated signal for audit
// regardless of which branch fired. A series too short to evaluate yields
// CONTINUATION with an empty map.
func ClassifyBehavior(s *EnrichedSeries, rsState domain.RSState) (domain.Behavior, map[string]bool) {
	n := s.Len()
	if n < behaviorMinRows {
		return domain.BehaviorContinuation, map[string]bool{}
	}

	latest := s.Latest()
	close := latest.Close
	rsiVal := s.RSI[n-1]
	vol := latest.Volume
	volAvg := s.VolAvg[n-1]

	// Failure checklist: any two of five.
	rsiDivergence := false
	if n >= 10 {
		rsiDivergence = close > s.Bars[n-10].Close && rsiVal < s.RSI[n-10]
	}

	emaFlattening := false
	if n >= 3 {
		emaFlattening = s.EMA20[n-1] <= s.EMA20[n-3]
	}

	swingLowBreak := false
	if n >= 10 {
		last5 := lowestLow(s.Bars[n-5:])
		prev5 := lowestLow(s.Bars[n-10 : n-5])
		swingLowBreak = last5 <= prev5
	}

	effortNoResult := false
	if n >= 2 {
		effortNoResult = vol > volAvg*effortVolumeRatio && close <= s.Bars[n-2].Close
	}

	signals := map[string]bool{
		"rsi_divergence":   rsiDivergence,
		"ema_flattening":   emaFlattening,
		"swing_low_break":  swingLowBreak,
		"effort_no_result": effortNoResult,
		"rs_weakening":     rsState == domain.RSWeak,
	}

	if countTrue(signals) >= failureMinSignals {
		return domain.BehaviorFailure, signals
	}

	// Expansion checklist: three of four.
	signals["volatility_compressed"] = volatilityCompressed(s)
	signals["range_tight"] = rangeTight(s.Bars)
	signals["higher_lows"] = n >= 6 && s.Bars[n-3].Low > s.Bars[n-6].Low
	signals["volume_quiet"] = vol < volAvg

	expansionCount := 0
	for _, name := range []string{"volatility_compressed", "range_tight", "higher_lows", "volume_quiet"} {
		if signals[name] {
			expansionCount++
		}
	}
	if expansionCount >= expansionMinCount {
		return domain.BehaviorExpansion, signals
	}
	return domain.BehaviorContinuation, signals
}

// volatilityCompressed checks whether the current 14-bar high-low range,
// as a fraction of price, sits below its own 20-bar average.
func volatilityCompressed(s *EnrichedSeries) bool {
	n := s.Len()
	if n < expansionMinRows {
		return false
	}
	highs := make([]float64, n)
	lows := make([]float64, n)
	for i, b := range s.Bars {
		highs[i] = b.High
		lows[i] = b.Low
	}
	atrPct := indicators.ATRPercent(highs, lows, s.Closes(), atrPeriod)
	if atrPct == nil {
		return false
	}
	avg := indicators.RollingMean(atrPct, atrAvgWindow)
	if avg == nil || math.IsNaN(atrPct[n-1]) || math.IsNaN(avg[n-1]) {
		return false
	}
	return atrPct[n-1] < avg[n-1]
}

func rangeTight(bars []domain.PriceBar) bool {
	n := len(bars)
	if n < tightRangeWindow {
		return false
	}
	window := bars[n-tightRangeWindow:]
	high := window[0].High
	low := window[0].Low
	for _, b := range window[1:] {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	if high <= 0 {
		return false
	}
	return (high-low)/high < tightRangeFraction
}
