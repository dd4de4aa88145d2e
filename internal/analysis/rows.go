package analysis

import (
	"strings"
	"time"

	"equityPaperBot/internal/domain"
)

// ResultToLogRow flattens an AnalysisResult into one analysis-log row:
// enum fields become their string values and rejection reasons are joined
// with a pipe so the row stays single-line in any tabular store.
func ResultToLogRow(r *domain.AnalysisResult) domain.AnalysisLogRow {
	return domain.AnalysisLogRow{
		Date:             r.Date.Format(time.RFC3339),
		Symbol:           r.Symbol,
		MarketState:      string(r.MarketState),
		FundamentalState: string(r.FundamentalState),
		FundamentalScore: r.FundamentalScore,
		TrendState:       string(r.TrendState),
		EntryState:       string(r.EntryState),
		RSState:          string(r.RSState),
		RSValue:          r.RSValue,
		Behavior:         string(r.Behavior),
		TradeEligible:    r.TradeEligible,
		RejectionReasons: strings.Join(r.RejectionReasons, "|"),
		Close:            r.Close,
		RSI:              r.RSI,
		ConsecutiveBars:  r.ConsecutiveBarsAboveEMAs,
	}
}
