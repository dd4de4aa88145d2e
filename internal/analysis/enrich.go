package analysis

import (
	"math"

	"equityPaperBot/internal/analysis/indicators"
	"equityPaperBot/internal/domain"
)

// Indicator periods used across the pipeline.
const (
	emaShortPeriod = 20
	emaLongPeriod  = 50
	rsiPeriod      = 14
	volumeWindow   = 20

	// MinRequiredRows is the minimum bar count required both before and
	// after indicator enrichment.
	MinRequiredRows = 50
)

// EnrichedSeries is a price series augmented with derived indicator columns.
// All slices are aligned index-for-index and contain no NaN rows: Enrich
// drops every row whose derived values are not fully computed.
type EnrichedSeries struct {
	Bars   []domain.PriceBar
	EMA20  []float64
	EMA50  []float64
	RSI    []float64
	VolAvg []float64
}

// Len returns the number of fully enriched rows.
func (s *EnrichedSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// Latest returns the most recent bar. Callers must check Len first.
func (s *EnrichedSeries) Latest() domain.PriceBar {
	return s.Bars[len(s.Bars)-1]
}

// Closes returns the close column of the enriched rows.
func (s *EnrichedSeries) Closes() []float64 {
	return domain.Closes(s.Bars)
}

// Enrich computes EMA20, EMA50, RSI and the 20-bar volume average over the
// bars and drops every row that lacks a fully computed derived value. The
// result may hold fewer rows than the input; callers re-validate the length.
func Enrich(bars []domain.PriceBar) *EnrichedSeries {
	closes := domain.Closes(bars)
	volumes := domain.Volumes(bars)

	ema20 := indicators.EMA(closes, emaShortPeriod)
	ema50 := indicators.EMA(closes, emaLongPeriod)
	rsi := indicators.RSI(closes, rsiPeriod)
	volAvg := indicators.VolumeAverage(volumes, volumeWindow)

	if ema20 == nil || ema50 == nil || rsi == nil || volAvg == nil {
		return &EnrichedSeries{}
	}

	out := &EnrichedSeries{}
	for i := range bars {
		if math.IsNaN(ema20[i]) || math.IsNaN(ema50[i]) || math.IsNaN(rsi[i]) || math.IsNaN(volAvg[i]) {
			continue
		}
		out.Bars = append(out.Bars, bars[i])
		out.EMA20 = append(out.EMA20, ema20[i])
		out.EMA50 = append(out.EMA50, ema50[i])
		out.RSI = append(out.RSI, rsi[i])
		out.VolAvg = append(out.VolAvg, volAvg[i])
	}
	return out
}
