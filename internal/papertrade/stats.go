package papertrade

import "equityPaperBot/internal/domain"

// Statistics is the aggregate view over the engine's closed trades. With no
// closed trades only the open-trade count is populated; no field ever
// results from a division by zero.
type Statistics struct {
	TotalTrades int
	OpenTrades  int

	Wins    int
	Losses  int
	NoMoves int

	WinRate    float64 // Percent of closed trades that won
	AvgWinPct  float64 // Mean percent P&L across winning trades
	AvgLossPct float64 // Mean percent P&L across losing trades

	TotalPNL  float64
	AvgPNL    float64
	AvgPNLPct float64

	MaxWinPct  float64 // Best percent P&L across closed trades
	MaxLossPct float64 // Worst percent P&L across closed trades

	AvgHoldingDays float64
}

// Statistics computes the aggregate over all closed trades.
func (e *Engine) Statistics() Statistics {
	stats := Statistics{OpenTrades: len(e.openTrades)}
	if len(e.closedTrades) == 0 {
		return stats
	}

	stats.TotalTrades = len(e.closedTrades)
	stats.MaxWinPct = e.closedTrades[0].PNLPct
	stats.MaxLossPct = e.closedTrades[0].PNLPct

	var winPctSum, lossPctSum, pnlPctSum, holdingSum float64
	for _, t := range e.closedTrades {
		switch t.Outcome {
		case domain.OutcomeWin:
			stats.Wins++
			winPctSum += t.PNLPct
		case domain.OutcomeLoss:
			stats.Losses++
			lossPctSum += t.PNLPct
		default:
			stats.NoMoves++
		}

		stats.TotalPNL += t.PNL
		pnlPctSum += t.PNLPct
		holdingSum += float64(t.HoldingDays)

		if t.PNLPct > stats.MaxWinPct {
			stats.MaxWinPct = t.PNLPct
		}
		if t.PNLPct < stats.MaxLossPct {
			stats.MaxLossPct = t.PNLPct
		}
	}

	total := float64(stats.TotalTrades)
	stats.WinRate = float64(stats.Wins) / total * 100
	if stats.Wins > 0 {
		stats.AvgWinPct = winPctSum / float64(stats.Wins)
	}
	if stats.Losses > 0 {
		stats.AvgLossPct = lossPctSum / float64(stats.Losses)
	}
	stats.AvgPNL = stats.TotalPNL / total
	stats.AvgPNLPct = pnlPctSum / total
	stats.AvgHoldingDays = holdingSum / total
	return stats
}
