package domain

// Fundamentals holds the fundamental metrics for a symbol. Every field is a
// pointer: nil means the metric was not provided by the data source, which is
// treated differently from a value that fails its check.
type Fundamentals struct {
	EPSGrowth3Y       *float64 // 3-year EPS growth, percent
	PE                *float64 // Current price/earnings ratio
	IndustryPE        *float64 // Industry average price/earnings ratio
	DebtEquity        *float64 // Debt to equity ratio
	ROE               *float64 // Return on equity, percent
	OperatingCashflow *float64 // Operating cashflow
}

// IsEmpty reports whether no metric at all was provided.
func (f *Fundamentals) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.EPSGrowth3Y == nil && f.PE == nil && f.IndustryPE == nil &&
		f.DebtEquity == nil && f.ROE == nil && f.OperatingCashflow == nil
}
