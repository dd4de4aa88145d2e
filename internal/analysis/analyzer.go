package analysis

import (
	"context"
	"fmt"
	"time"

	"equityPaperBot/internal/analysis/indicators"
	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/markethours"
	"equityPaperBot/internal/ports"
)

// Config holds configuration for the analyzer.
type Config struct {
	// Location is the zone every result timestamp is normalized to.
	// Defaults to IST when nil.
	Location *time.Location
}

// Analyzer sequences the classifiers over validated, enriched price data and
// assembles the immutable AnalysisResult.
//
// Two validation checkpoints can fail a call: the raw input length check and
// the post-enrichment length re-check. Past those, every sub-classifier is
// individually fail-safe and the analyzer always completes.
type Analyzer struct {
	cfg    Config
	logger ports.Logger
}

// NewAnalyzer creates an analyzer instance.
func NewAnalyzer(cfg Config, logger ports.Logger) (*Analyzer, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for analyzer")
	}
	if cfg.Location == nil {
		cfg.Location = markethours.IST
	}
	return &Analyzer{cfg: cfg, logger: logger}, nil
}

// AnalyzeAsset runs the complete end-to-end analysis of one symbol against
// the benchmark index. fundamentals may be nil. Re-running on identical
// input produces an identical result: nothing here reads the wall clock.
func (a *Analyzer) AnalyzeAsset(ctx context.Context, symbol string, asset, index []domain.PriceBar, fundamentals *domain.Fundamentals) (*domain.AnalysisResult, error) {
	// Checkpoint 1: raw input length.
	if len(asset) < MinRequiredRows {
		return nil, fmt.Errorf("%w: %s has %d rows, need at least %d",
			ports.ErrInsufficientData, symbol, len(asset), MinRequiredRows)
	}
	if len(index) < MinRequiredRows {
		return nil, fmt.Errorf("%w: benchmark has %d rows, need at least %d",
			ports.ErrInsufficientData, len(index), MinRequiredRows)
	}

	marketState := AnalyzeMarketState(index)
	if marketState == domain.MarketUnknown {
		a.logger.Warn(ctx, "Market state could not be determined", map[string]interface{}{"symbol": symbol})
	}

	fundState, fundScore, fundReasons := AnalyzeFundamentals(fundamentals)

	// Checkpoint 2: length after indicator warm-up row drops.
	enriched := Enrich(asset)
	if enriched.Len() < MinRequiredRows {
		return nil, fmt.Errorf("%w: %s has %d rows after enrichment, need at least %d",
			ports.ErrDataExhausted, symbol, enriched.Len(), MinRequiredRows)
	}

	trendConds, entryConds, trendState, entryState := AnalyzeTechnical(enriched)

	rsState, rsValue := AnalyzeRelativeStrength(enriched.Closes(), domain.Closes(index))
	if rsState == domain.RSNA {
		a.logger.Debug(ctx, "Relative strength not computable", map[string]interface{}{"symbol": symbol})
	}

	behavior, behaviorSignals := ClassifyBehavior(enriched, rsState)

	consecutive := indicators.ConsecutiveBarsAboveEMAs(enriched.Closes(), enriched.EMA20, enriched.EMA50)

	n := enriched.Len()
	latest := enriched.Latest()
	date := markethours.Normalize(latest.Time, a.cfg.Location)

	var rejections []string
	if fundState == domain.FundamentalFail {
		rejections = append(rejections, "Fundamental: FAIL")
	}
	if trendState == domain.TrendAbsent {
		rejections = append(rejections, "Trend: ABSENT")
	}
	if entryState != domain.EntryOK {
		rejections = append(rejections, fmt.Sprintf("Entry: %s", entryState))
	}
	if rsState == domain.RSWeak {
		rejections = append(rejections, "RS: WEAK")
	}
	if behavior == domain.BehaviorFailure {
		rejections = append(rejections, "Behavior: FAILURE")
	}

	return &domain.AnalysisResult{
		Symbol:                   symbol,
		Date:                     date,
		MarketState:              marketState,
		FundamentalState:         fundState,
		FundamentalScore:         fundScore,
		FundamentalReasons:       fundReasons,
		TrendState:               trendState,
		EntryState:               entryState,
		TrendConditions:          trendConds,
		EntryConditions:          entryConds,
		RSState:                  rsState,
		RSValue:                  rsValue,
		Behavior:                 behavior,
		BehaviorSignals:          behaviorSignals,
		ConsecutiveBarsAboveEMAs: consecutive,
		Close:                    latest.Close,
		EMA20:                    enriched.EMA20[n-1],
		EMA50:                    enriched.EMA50[n-1],
		RSI:                      enriched.RSI[n-1],
		Volume:                   latest.Volume,
		VolumeAvg:                enriched.VolAvg[n-1],
		TradeEligible:            len(rejections) == 0,
		RejectionReasons:         rejections,
	}, nil
}
