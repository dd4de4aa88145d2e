package analysis

import "equityPaperBot/internal/domain"

// Technical classifier thresholds.
const (
	trendStrongScore     = 4
	trendDevelopingScore = 3
	entryOKScore         = 3
	entryWaitScore       = 2

	rsiTrendFloor    = 40
	rsiEntryFloor    = 40
	rsiEntryCeil     = 60
	volumeSpikeRatio = 1.75

	pullbackLookback    = 20
	pullbackPriorWindow = 30
	maxShallowPullback  = 0.50
	// impulseThreshold guards the pullback-depth denominator; an impulse at
	// or below it is treated as no impulse, so the pullback is not shallow.
	impulseThreshold = 1e-6
)

// AnalyzeTechnical evaluates the trend and entry checklists over an enriched
// series. Fewer than MinRequiredRows valid rows yields empty condition maps,
// TrendAbsent and EntryNA; the classifier never fails.
func AnalyzeTechnical(s *EnrichedSeries) (trendConds, entryConds map[string]bool, trendState domain.TrendState, entryState domain.EntryState) {
	n := s.Len()
	if n < MinRequiredRows {
		return map[string]bool{}, map[string]bool{}, domain.TrendAbsent, domain.EntryNA
	}

	latest := s.Latest()
	close := latest.Close
	ema20 := s.EMA20[n-1]
	ema50 := s.EMA50[n-1]
	rsiVal := s.RSI[n-1]
	vol := latest.Volume
	volAvg := s.VolAvg[n-1]

	noSwingBreak := false
	if n >= 10 {
		last5 := lowestLow(s.Bars[n-5:])
		prev5 := lowestLow(s.Bars[n-10 : n-5])
		noSwingBreak = last5 > prev5
	}

	emaRising := false
	if n >= 5 {
		emaRising = ema20 > s.EMA20[n-5]
	}

	trendConds = map[string]bool{
		"price_above_ema20":   close > ema20,
		"ema20_above_ema50":   ema20 > ema50,
		"ema20_rising":        emaRising,
		"rsi_momentum_exists": rsiVal >= rsiTrendFloor,
		"no_swing_low_break":  noSwingBreak,
	}

	entryConds = map[string]bool{
		"pullback_shallow":  pullbackShallow(s.Bars),
		"rsi_pullback_zone": rsiVal >= rsiEntryFloor && rsiVal <= rsiEntryCeil,
		"volume_normal":     vol < volAvg*volumeSpikeRatio,
	}

	trendScore := countTrue(trendConds)
	entryScore := countTrue(entryConds)

	switch {
	case trendScore >= trendStrongScore:
		trendState = domain.TrendStrong
	case trendScore >= trendDevelopingScore:
		trendState = domain.TrendDeveloping
	default:
		trendState = domain.TrendAbsent
	}

	if trendScore < trendDevelopingScore {
		entryState = domain.EntryNA
	} else {
		switch {
		case entryScore >= entryOKScore:
			entryState = domain.EntryOK
		case entryScore >= entryWaitScore:
			entryState = domain.EntryWait
		default:
			entryState = domain.EntryNo
		}
	}
	return trendConds, entryConds, trendState, entryState
}

// pullbackShallow measures the retracement from the trailing-window peak
// against the impulse that produced it. The peak is the first occurrence of
// the highest High in the last pullbackLookback bars; the impulse runs from
// the lowest Low of the pullbackPriorWindow bars before the peak up to the
// peak itself.
func pullbackShallow(bars []domain.PriceBar) bool {
	n := len(bars)
	if n < pullbackLookback {
		return false
	}

	highPos := n - pullbackLookback
	for i := n - pullbackLookback + 1; i < n; i++ {
		if bars[i].High > bars[highPos].High {
			highPos = i
		}
	}
	recentHigh := bars[highPos].High
	lowAfterHigh := lowestLow(bars[highPos:])

	priorStart := highPos - pullbackPriorWindow
	if priorStart < 0 {
		priorStart = 0
	}
	if priorStart >= highPos {
		return false
	}
	priorLow := lowestLow(bars[priorStart:highPos])

	impulse := recentHigh - priorLow
	if impulse <= impulseThreshold || lowAfterHigh >= recentHigh {
		return false
	}
	depth := (recentHigh - lowAfterHigh) / impulse
	return depth <= maxShallowPullback
}

func lowestLow(bars []domain.PriceBar) float64 {
	low := bars[0].Low
	for _, b := range bars[1:] {
		if b.Low < low {
			low = b.Low
		}
	}
	return low
}

func countTrue(m map[string]bool) int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}
