package domain

import "time"

// AnalysisResult is the complete analysis output for one symbol on one day.
// It is constructed once by the analysis orchestrator and never mutated.
type AnalysisResult struct {
	Symbol string
	Date   time.Time // Latest bar timestamp, normalized to the configured zone

	// Market context
	MarketState MarketState

	// Fundamental gate
	FundamentalState   FundamentalState
	FundamentalScore   float64
	FundamentalReasons map[string]Check

	// Technical analysis
	TrendState      TrendState
	EntryState      EntryState
	TrendConditions map[string]bool
	EntryConditions map[string]bool

	// Relative strength
	RSState RSState
	RSValue float64

	// Behavior
	Behavior        Behavior
	BehaviorSignals map[string]bool

	// Trend maturity
	ConsecutiveBarsAboveEMAs int

	// Latest price snapshot
	Close     float64
	EMA20     float64
	EMA50     float64
	RSI       float64
	Volume    float64
	VolumeAvg float64

	// Trade eligibility
	TradeEligible    bool
	RejectionReasons []string
}
