// Package papertrade implements a forward-only trade simulator: entries on
// end-of-day eligibility, exits on a strict priority order (stop, target,
// behavior failure, max holding days) and running MFE/MAE excursion stats.
// No hindsight and no optimization; each day is evaluated exactly once.
package papertrade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/markethours"
	"equityPaperBot/internal/ports"
)

// Config holds the read-only trade parameters shared by every trade the
// engine creates.
type Config struct {
	PositionValue  float64        // Notional per trade
	StopLossPct    float64        // Stop distance as a fraction of entry (e.g. 0.05)
	TargetPct      float64        // Target distance as a fraction of entry (e.g. 0.10)
	MaxHoldingDays int            // Budget in trading days, weekends excluded
	Location       *time.Location // Zone used for the business-day calendar
}

// Engine is the paper trade simulator. It owns all PaperTrade mutation and
// keeps the open and closed collections in memory. The engine is not safe
// for concurrent use; callers serialize access.
type Engine struct {
	cfg    Config
	logger ports.Logger

	openTrades   []*domain.PaperTrade
	closedTrades []*domain.PaperTrade
}

// NewEngine creates a paper trade engine instance.
func NewEngine(cfg Config, logger ports.Logger) (*Engine, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for paper trade engine")
	}
	if cfg.PositionValue <= 0 {
		return nil, fmt.Errorf("position value must be positive")
	}
	if cfg.StopLossPct <= 0 || cfg.StopLossPct >= 1 {
		return nil, fmt.Errorf("stop loss fraction must be between 0 and 1 (exclusive)")
	}
	if cfg.TargetPct <= 0 {
		return nil, fmt.Errorf("target fraction must be positive")
	}
	if cfg.MaxHoldingDays <= 0 {
		return nil, fmt.Errorf("max holding days must be positive")
	}
	if cfg.Location == nil {
		cfg.Location = markethours.IST
	}
	return &Engine{cfg: cfg, logger: logger}, nil
}

// OpenTrades returns the currently open trades, oldest first.
func (e *Engine) OpenTrades() []*domain.PaperTrade { return e.openTrades }

// ClosedTrades returns the closed trades in closing order.
func (e *Engine) ClosedTrades() []*domain.PaperTrade { return e.closedTrades }

// CreateTrade opens a simulated position from an analysis result. It returns
// nil, with no side effect, when the result is not trade eligible or when no
// whole share fits the configured notional.
func (e *Engine) CreateTrade(ctx context.Context, result *domain.AnalysisResult) *domain.PaperTrade {
	if !result.TradeEligible {
		e.logger.Debug(ctx, "Trade creation rejected", map[string]interface{}{
			"symbol":  result.Symbol,
			"reasons": result.RejectionReasons,
		})
		return nil
	}
	if result.Close <= 0 {
		e.logger.Warn(ctx, "Trade creation rejected: non-positive close price", map[string]interface{}{"symbol": result.Symbol})
		return nil
	}

	shares := int(e.cfg.PositionValue / result.Close)
	if shares <= 0 {
		e.logger.Warn(ctx, "Trade creation rejected: close price exceeds position value", map[string]interface{}{"symbol": result.Symbol})
		return nil
	}

	trade := &domain.PaperTrade{
		TradeID:          uuid.NewString(),
		Symbol:           result.Symbol,
		EntryDate:        result.Date,
		EntryPrice:       result.Close,
		Shares:           shares,
		PositionValue:    float64(shares) * result.Close,
		StopLoss:         result.Close * (1 - e.cfg.StopLossPct),
		Target:           result.Close * (1 + e.cfg.TargetPct),
		MaxHoldingDays:   e.cfg.MaxHoldingDays,
		TrendState:       string(result.TrendState),
		EntryState:       string(result.EntryState),
		RSState:          string(result.RSState),
		Behavior:         string(result.Behavior),
		MarketState:      string(result.MarketState),
		FundamentalState: string(result.FundamentalState),
		Status:           domain.StatusOpen,
		ExitReason:       domain.ExitPending,
		Outcome:          domain.OutcomePending,
	}
	e.openTrades = append(e.openTrades, trade)

	e.logger.Info(ctx, "Paper trade opened", map[string]interface{}{
		"symbol":   trade.Symbol,
		"trade_id": trade.TradeID,
		"entry":    trade.EntryPrice,
		"stop":     trade.StopLoss,
		"target":   trade.Target,
		"shares":   trade.Shares,
	})
	return trade
}

// UpdateTrade advances an open trade by one daily bar. It refreshes holding
// days and MFE/MAE, then evaluates the exit rules in priority order: stop
// loss, target, behavior failure, max holding days. The first matching rule
// closes the trade and it is returned; otherwise nil is returned and the
// trade stays open. Updating an already-closed trade is a no-op.
func (e *Engine) UpdateTrade(ctx context.Context, trade *domain.PaperTrade, date time.Time, close, low, high float64, behavior domain.Behavior) *domain.PaperTrade {
	if trade.Status == domain.StatusClosed {
		return nil
	}

	held := markethours.BusinessDaysBetween(trade.EntryDate, date, e.cfg.Location) - 1
	if held < 0 {
		held = 0
	}
	trade.HoldingDays = held

	// Excursion stats update precedes the exit checks so a day that stops
	// out still records what the price touched. The entry day is skipped:
	// its high/low can include pre-entry intraday action.
	entryDay := markethours.DateOnly(trade.EntryDate, e.cfg.Location)
	currentDay := markethours.DateOnly(date, e.cfg.Location)
	if currentDay.After(entryDay) {
		highPct := (high - trade.EntryPrice) / trade.EntryPrice * 100
		lowPct := (low - trade.EntryPrice) / trade.EntryPrice * 100
		if highPct > trade.MFE {
			trade.MFE = highPct
		}
		if lowPct < trade.MAE {
			trade.MAE = lowPct
		}
	}

	if low <= trade.StopLoss {
		return e.closeTrade(ctx, trade, date, trade.StopLoss, domain.ExitStopLoss, domain.OutcomeLoss)
	}
	if high >= trade.Target {
		return e.closeTrade(ctx, trade, date, trade.Target, domain.ExitTargetHit, domain.OutcomeWin)
	}
	if behavior == domain.BehaviorFailure {
		return e.closeTrade(ctx, trade, date, close, domain.ExitBehaviorFailure, outcomeByPct(trade, close))
	}
	if trade.HoldingDays >= trade.MaxHoldingDays {
		return e.closeTrade(ctx, trade, date, close, domain.ExitMaxHoldingDays, domain.OutcomeNoMove)
	}
	return nil
}

func (e *Engine) closeTrade(ctx context.Context, trade *domain.PaperTrade, exitDate time.Time, exitPrice float64, reason domain.ExitReason, outcome domain.TradeOutcome) *domain.PaperTrade {
	trade.Status = domain.StatusClosed
	trade.ExitDate = markethours.Normalize(exitDate, e.cfg.Location)
	trade.ExitPrice = exitPrice
	trade.ExitReason = reason
	trade.Outcome = outcome
	trade.PNL = (exitPrice - trade.EntryPrice) * float64(trade.Shares)
	trade.PNLPct = (exitPrice - trade.EntryPrice) / trade.EntryPrice * 100

	for i, t := range e.openTrades {
		if t == trade {
			e.openTrades = append(e.openTrades[:i], e.openTrades[i+1:]...)
			break
		}
	}
	e.closedTrades = append(e.closedTrades, trade)

	e.logger.Info(ctx, "Paper trade closed", map[string]interface{}{
		"symbol":   trade.Symbol,
		"trade_id": trade.TradeID,
		"reason":   string(reason),
		"outcome":  string(outcome),
		"pnl_pct":  trade.PNLPct,
	})
	return trade
}

// outcomeByPct classifies a behavior-failure close by its percent move: more
// than +1% is a win, less than -1% a loss, anything between is no-move.
func outcomeByPct(trade *domain.PaperTrade, exitPrice float64) domain.TradeOutcome {
	pct := (exitPrice - trade.EntryPrice) / trade.EntryPrice * 100
	switch {
	case pct > 1.0:
		return domain.OutcomeWin
	case pct < -1.0:
		return domain.OutcomeLoss
	default:
		return domain.OutcomeNoMove
	}
}
