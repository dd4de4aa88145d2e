package papertrade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equityPaperBot/internal/domain"
)

func closedRow(id string, outcome domain.TradeOutcome, pnl, pnlPct float64, holdingDays int) domain.TradeRow {
	return domain.TradeRow{
		TradeID:     id,
		Symbol:      "TEST",
		EntryDate:   "2025-06-02T16:00:00+05:30",
		ExitDate:    "2025-06-06T16:00:00+05:30",
		Status:      string(domain.StatusClosed),
		Outcome:     string(outcome),
		PNL:         pnl,
		PNLPct:      pnlPct,
		HoldingDays: holdingDays,
	}
}

func TestStatistics_Empty(t *testing.T) {
	e := newTestEngine(t)
	stats := e.Statistics()

	assert.Zero(t, stats.TotalTrades)
	assert.Zero(t, stats.OpenTrades)
	assert.Zero(t, stats.WinRate)
	assert.Zero(t, stats.TotalPNL)
}

func TestStatistics_OnlyOpenTrades(t *testing.T) {
	e := newTestEngine(t)
	e.CreateTrade(context.Background(), eligibleResult(100))

	stats := e.Statistics()
	assert.Zero(t, stats.TotalTrades)
	assert.Equal(t, 1, stats.OpenTrades)
	assert.Zero(t, stats.WinRate)
}

func TestStatistics_Aggregates(t *testing.T) {
	e := newTestEngine(t)
	failed := e.LoadFromRows(context.Background(), []domain.TradeRow{
		closedRow("w1", domain.OutcomeWin, 10000, 10, 4),
		closedRow("w2", domain.OutcomeWin, 6000, 6, 2),
		closedRow("l1", domain.OutcomeLoss, -5000, -5, 3),
		closedRow("n1", domain.OutcomeNoMove, 500, 0.5, 10),
	})
	require.Zero(t, failed)

	stats := e.Statistics()

	assert.Equal(t, 4, stats.TotalTrades)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.NoMoves)
	assert.InDelta(t, 50.0, stats.WinRate, 1e-9)
	assert.InDelta(t, 8.0, stats.AvgWinPct, 1e-9)
	assert.InDelta(t, -5.0, stats.AvgLossPct, 1e-9)
	assert.InDelta(t, 11500.0, stats.TotalPNL, 1e-9)
	assert.InDelta(t, 2875.0, stats.AvgPNL, 1e-9)
	assert.InDelta(t, 2.875, stats.AvgPNLPct, 1e-9)
	assert.InDelta(t, 10.0, stats.MaxWinPct, 1e-9)
	assert.InDelta(t, -5.0, stats.MaxLossPct, 1e-9)
	assert.InDelta(t, 4.75, stats.AvgHoldingDays, 1e-9)
}

func TestStatistics_AllLosses(t *testing.T) {
	e := newTestEngine(t)
	e.LoadFromRows(context.Background(), []domain.TradeRow{
		closedRow("l1", domain.OutcomeLoss, -5000, -5, 3),
		closedRow("l2", domain.OutcomeLoss, -3000, -3, 2),
	})

	stats := e.Statistics()

	assert.Zero(t, stats.WinRate)
	assert.Zero(t, stats.AvgWinPct, "no winners means no average win")
	assert.InDelta(t, -4.0, stats.AvgLossPct, 1e-9)
	assert.InDelta(t, -3.0, stats.MaxWinPct, 1e-9, "best trade even when every trade lost")
	assert.InDelta(t, -5.0, stats.MaxLossPct, 1e-9)
}
