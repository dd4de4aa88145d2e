package analysis

import (
	"equityPaperBot/internal/analysis/indicators"
	"equityPaperBot/internal/domain"
)

// AnalyzeMarketState detects the broad risk environment from the benchmark
// index: close above its EMA50 is risk-on, below is risk-off. Anything that
// prevents the computation yields MarketUnknown, never an error.
func AnalyzeMarketState(index []domain.PriceBar) domain.MarketState {
	if len(index) < MinRequiredRows {
		return domain.MarketUnknown
	}

	closes := domain.Closes(index)
	ema50 := indicators.EMA(closes, emaLongPeriod)
	if len(ema50) != len(closes) {
		return domain.MarketUnknown
	}

	if closes[len(closes)-1] > ema50[len(ema50)-1] {
		return domain.MarketRiskOn
	}
	return domain.MarketRiskOff
}
