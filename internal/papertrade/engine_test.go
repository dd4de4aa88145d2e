package papertrade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/markethours"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

// entryDay is a Monday so business-day arithmetic in the scenarios is easy
// to follow.
var entryDay = time.Date(2025, 6, 2, 16, 0, 0, 0, markethours.IST)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Config{
		PositionValue:  100000,
		StopLossPct:    0.05,
		TargetPct:      0.10,
		MaxHoldingDays: 10,
		Location:       markethours.IST,
	}, &mockLogger{})
	require.NoError(t, err)
	return e
}

func eligibleResult(close float64) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Symbol:           "TEST",
		Date:             entryDay,
		Close:            close,
		MarketState:      domain.MarketRiskOn,
		FundamentalState: domain.FundamentalNeutral,
		TrendState:       domain.TrendStrong,
		EntryState:       domain.EntryOK,
		RSState:          domain.RSNeutral,
		Behavior:         domain.BehaviorContinuation,
		TradeEligible:    true,
	}
}

func TestNewEngine_Validation(t *testing.T) {
	valid := Config{PositionValue: 100000, StopLossPct: 0.05, TargetPct: 0.10, MaxHoldingDays: 10}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero position value", func(c *Config) { c.PositionValue = 0 }},
		{"zero stop", func(c *Config) { c.StopLossPct = 0 }},
		{"stop of one or more", func(c *Config) { c.StopLossPct = 1 }},
		{"zero target", func(c *Config) { c.TargetPct = 0 }},
		{"zero holding days", func(c *Config) { c.MaxHoldingDays = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			_, err := NewEngine(cfg, &mockLogger{})
			assert.Error(t, err)
		})
	}

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewEngine(valid, nil)
		assert.Error(t, err)
	})

	t.Run("nil location defaults", func(t *testing.T) {
		e, err := NewEngine(valid, &mockLogger{})
		require.NoError(t, err)
		assert.NotNil(t, e.cfg.Location)
	})
}

func TestCreateTrade(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a sized position", func(t *testing.T) {
		e := newTestEngine(t)
		trade := e.CreateTrade(ctx, eligibleResult(100))
		require.NotNil(t, trade)

		assert.NotEmpty(t, trade.TradeID)
		assert.Equal(t, 1000, trade.Shares)
		assert.Equal(t, 100000.0, trade.PositionValue)
		assert.Equal(t, 95.0, trade.StopLoss)
		assert.InDelta(t, 110.0, trade.Target, 1e-9)
		assert.Equal(t, domain.StatusOpen, trade.Status)
		assert.Equal(t, domain.ExitPending, trade.ExitReason)
		assert.Equal(t, domain.OutcomePending, trade.Outcome)
		assert.Len(t, e.OpenTrades(), 1)
	})

	t.Run("fractional sizing rounds down", func(t *testing.T) {
		e := newTestEngine(t)
		trade := e.CreateTrade(ctx, eligibleResult(30000))
		require.NotNil(t, trade)
		assert.Equal(t, 3, trade.Shares)
		assert.Equal(t, 90000.0, trade.PositionValue)
	})

	t.Run("rejects an ineligible result", func(t *testing.T) {
		e := newTestEngine(t)
		result := eligibleResult(100)
		result.TradeEligible = false
		result.RejectionReasons = []string{"Trend: ABSENT"}

		assert.Nil(t, e.CreateTrade(ctx, result))
		assert.Empty(t, e.OpenTrades())
	})

	t.Run("rejects when no whole share fits", func(t *testing.T) {
		e := newTestEngine(t)
		assert.Nil(t, e.CreateTrade(ctx, eligibleResult(150000)))
		assert.Empty(t, e.OpenTrades())
	})

	t.Run("rejects a non-positive close", func(t *testing.T) {
		e := newTestEngine(t)
		assert.Nil(t, e.CreateTrade(ctx, eligibleResult(0)))
	})

	t.Run("distinct trade ids", func(t *testing.T) {
		e := newTestEngine(t)
		first := e.CreateTrade(ctx, eligibleResult(100))
		second := e.CreateTrade(ctx, eligibleResult(100))
		assert.NotEqual(t, first.TradeID, second.TradeID)
	})
}

func TestUpdateTrade_StopBeatsTarget(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	trade := e.CreateTrade(ctx, eligibleResult(100))
	require.NotNil(t, trade)

	// The bar spans both levels; the stop has priority.
	closed := e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 1), 105, 94, 112, domain.BehaviorContinuation)
	require.NotNil(t, closed)

	assert.Equal(t, domain.StatusClosed, closed.Status)
	assert.Equal(t, domain.ExitStopLoss, closed.ExitReason)
	assert.Equal(t, domain.OutcomeLoss, closed.Outcome)
	assert.Equal(t, 95.0, closed.ExitPrice)
	assert.InDelta(t, -5000.0, closed.PNL, 1e-9)
	assert.InDelta(t, -5.0, closed.PNLPct, 1e-9)
	assert.Empty(t, e.OpenTrades())
	assert.Len(t, e.ClosedTrades(), 1)
}

func TestUpdateTrade_TargetHit(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	trade := e.CreateTrade(ctx, eligibleResult(100))

	closed := e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 1), 109, 102, 111, domain.BehaviorContinuation)
	require.NotNil(t, closed)

	assert.Equal(t, domain.ExitTargetHit, closed.ExitReason)
	assert.Equal(t, domain.OutcomeWin, closed.Outcome)
	assert.InDelta(t, 110.0, closed.ExitPrice, 1e-9)
	assert.InDelta(t, 10000.0, closed.PNL, 1e-6)
}

func TestUpdateTrade_BehaviorFailureOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		close    float64
		expected domain.TradeOutcome
	}{
		{"failure above one percent wins", 103, domain.OutcomeWin},
		{"failure inside the band is no-move", 100.5, domain.OutcomeNoMove},
		{"failure below minus one percent loses", 98, domain.OutcomeLoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			e := newTestEngine(t)
			trade := e.CreateTrade(ctx, eligibleResult(100))

			closed := e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 1), tt.close, tt.close-1, tt.close+1, domain.BehaviorFailure)
			require.NotNil(t, closed)
			assert.Equal(t, domain.ExitBehaviorFailure, closed.ExitReason)
			assert.Equal(t, tt.expected, closed.Outcome)
			assert.Equal(t, tt.close, closed.ExitPrice)
		})
	}
}

func TestUpdateTrade_MaxHoldingDays(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	trade := e.CreateTrade(ctx, eligibleResult(100))

	// Ten business days after a Monday entry land on the Monday two weeks
	// out: eleven weekdays in the closed interval, so the budget is spent.
	stale := e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 14), 101, 100, 102, domain.BehaviorContinuation)
	require.NotNil(t, stale)

	assert.Equal(t, domain.ExitMaxHoldingDays, stale.ExitReason)
	assert.Equal(t, domain.OutcomeNoMove, stale.Outcome)
	assert.Equal(t, 101.0, stale.ExitPrice)
	assert.Equal(t, 10, stale.HoldingDays)
}

func TestUpdateTrade_HoldingDaysExcludeWeekend(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	trade := e.CreateTrade(ctx, eligibleResult(100))

	// Monday entry to next Monday: six weekdays in the interval, five
	// elapsed beyond the entry day.
	open := e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 7), 101, 100, 102, domain.BehaviorContinuation)
	assert.Nil(t, open)
	assert.Equal(t, 5, trade.HoldingDays)
}

func TestUpdateTrade_ExcursionTracking(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	trade := e.CreateTrade(ctx, eligibleResult(100))

	t.Run("entry day bar is excluded", func(t *testing.T) {
		e.UpdateTrade(ctx, trade, entryDay, 100, 99, 101, domain.BehaviorContinuation)
		assert.Zero(t, trade.MFE)
		assert.Zero(t, trade.MAE)
	})

	t.Run("later bars widen the extremes", func(t *testing.T) {
		e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 1), 104, 98, 108, domain.BehaviorContinuation)
		assert.InDelta(t, 8.0, trade.MFE, 1e-9)
		assert.InDelta(t, -2.0, trade.MAE, 1e-9)
	})

	t.Run("narrower bars leave the extremes alone", func(t *testing.T) {
		e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 2), 102, 99, 105, domain.BehaviorContinuation)
		assert.InDelta(t, 8.0, trade.MFE, 1e-9)
		assert.InDelta(t, -2.0, trade.MAE, 1e-9)
	})

	t.Run("a stop-out day still records its excursion", func(t *testing.T) {
		closed := e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 3), 95, 94, 109, domain.BehaviorContinuation)
		require.NotNil(t, closed)
		assert.InDelta(t, 9.0, trade.MFE, 1e-9)
		assert.InDelta(t, -6.0, trade.MAE, 1e-9)
	})
}

func TestUpdateTrade_ClosedTradeIsNoOp(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	trade := e.CreateTrade(ctx, eligibleResult(100))
	require.NotNil(t, e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 1), 95, 94, 96, domain.BehaviorContinuation))

	exitPrice := trade.ExitPrice
	assert.Nil(t, e.UpdateTrade(ctx, trade, entryDay.AddDate(0, 0, 2), 120, 119, 121, domain.BehaviorContinuation))
	assert.Equal(t, exitPrice, trade.ExitPrice)
	assert.Len(t, e.ClosedTrades(), 1)
}
