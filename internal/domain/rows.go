package domain

// TradeRow is a PaperTrade flattened for persistence: enum fields as plain
// strings, dates as RFC3339 strings. String-typed enum columns tolerate
// unknown values on load by falling back to documented defaults.
type TradeRow struct {
	TradeID          string
	Symbol           string
	EntryDate        string
	EntryPrice       float64
	Shares           int
	PositionValue    float64
	StopLoss         float64
	Target           float64
	MaxHoldingDays   int
	TrendState       string
	EntryState       string
	RSState          string
	Behavior         string
	MarketState      string
	FundamentalState string
	Status           string
	ExitDate         string // Empty while the trade is open
	ExitPrice        float64
	ExitReason       string
	Outcome          string
	PNL              float64
	PNLPct           float64
	HoldingDays      int
	MFE              float64
	MAE              float64
	Notes            string
}

// AnalysisLogRow is an AnalysisResult flattened to one log line per
// (symbol, date): enum values as strings, rejection reasons pipe-joined.
type AnalysisLogRow struct {
	Date             string
	Symbol           string
	MarketState      string
	FundamentalState string
	FundamentalScore float64
	TrendState       string
	EntryState       string
	RSState          string
	RSValue          float64
	Behavior         string
	TradeEligible    bool
	RejectionReasons string
	Close            float64
	RSI              float64
	ConsecutiveBars  int
}
