package domain

import "time"

// PaperTrade is a single simulated trade record. It is created and mutated
// exclusively by the paper trade engine; once closed it is immutable.
type PaperTrade struct {
	TradeID    string
	Symbol     string
	EntryDate  time.Time
	EntryPrice float64

	// Position sizing
	Shares        int
	PositionValue float64

	// Risk management
	StopLoss       float64
	Target         float64
	MaxHoldingDays int

	// Entry-time classification snapshot, kept for audit and never re-evaluated
	TrendState       string
	EntryState       string
	RSState          string
	Behavior         string
	MarketState      string
	FundamentalState string

	// Exit tracking
	Status     TradeStatus
	ExitDate   time.Time // Zero value while open
	ExitPrice  float64
	ExitReason ExitReason
	Outcome    TradeOutcome

	// Performance
	PNL         float64
	PNLPct      float64
	HoldingDays int

	// Max favorable/adverse excursion, running extrema in percent
	MFE float64
	MAE float64

	Notes string
}

// IsOpen reports whether the trade is still open.
func (t *PaperTrade) IsOpen() bool {
	return t.Status == StatusOpen
}
