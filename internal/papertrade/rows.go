package papertrade

import (
	"context"
	"time"

	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/markethours"
)

// ToRows flattens the engine's trades for persistence: closed trades first,
// then, when includeOpen is set, the open ones. Enum fields become their
// string values and dates RFC3339 strings, so any tabular sink can store
// them without knowing the domain types.
func (e *Engine) ToRows(includeOpen bool) []domain.TradeRow {
	trades := make([]*domain.PaperTrade, 0, len(e.closedTrades)+len(e.openTrades))
	trades = append(trades, e.closedTrades...)
	if includeOpen {
		trades = append(trades, e.openTrades...)
	}

	rows := make([]domain.TradeRow, 0, len(trades))
	for _, t := range trades {
		exitDate := ""
		if !t.ExitDate.IsZero() {
			exitDate = t.ExitDate.Format(time.RFC3339)
		}
		rows = append(rows, domain.TradeRow{
			TradeID:          t.TradeID,
			Symbol:           t.Symbol,
			EntryDate:        t.EntryDate.Format(time.RFC3339),
			EntryPrice:       t.EntryPrice,
			Shares:           t.Shares,
			PositionValue:    t.PositionValue,
			StopLoss:         t.StopLoss,
			Target:           t.Target,
			MaxHoldingDays:   t.MaxHoldingDays,
			TrendState:       t.TrendState,
			EntryState:       t.EntryState,
			RSState:          t.RSState,
			Behavior:         t.Behavior,
			MarketState:      t.MarketState,
			FundamentalState: t.FundamentalState,
			Status:           string(t.Status),
			ExitDate:         exitDate,
			ExitPrice:        t.ExitPrice,
			ExitReason:       string(t.ExitReason),
			Outcome:          string(t.Outcome),
			PNL:              t.PNL,
			PNLPct:           t.PNLPct,
			HoldingDays:      t.HoldingDays,
			MFE:              t.MFE,
			MAE:              t.MAE,
			Notes:            t.Notes,
		})
	}
	return rows
}

// LoadFromRows reconstructs the open and closed collections from persisted
// rows, appending to whatever the engine already holds. Unknown enum strings
// fall back to their documented defaults (OPEN / PENDING) rather than
// failing the row; a row is only counted as failed and skipped when its
// trade ID is missing or its entry date cannot be parsed. One bad row never
// aborts the rest of the load. Returns the number of failed rows.
func (e *Engine) LoadFromRows(ctx context.Context, rows []domain.TradeRow) int {
	failed := 0
	for _, row := range rows {
		trade, ok := e.rowToTrade(ctx, row)
		if !ok {
			failed++
			continue
		}
		if trade.IsOpen() {
			e.openTrades = append(e.openTrades, trade)
		} else {
			e.closedTrades = append(e.closedTrades, trade)
		}
	}
	if failed > 0 {
		e.logger.Warn(ctx, "Some persisted trade rows failed to load", map[string]interface{}{
			"failed": failed,
			"total":  len(rows),
		})
	}
	return failed
}

func (e *Engine) rowToTrade(ctx context.Context, row domain.TradeRow) (*domain.PaperTrade, bool) {
	if row.TradeID == "" {
		e.logger.Warn(ctx, "Skipping trade row without an ID", map[string]interface{}{"symbol": row.Symbol})
		return nil, false
	}
	entryDate, err := time.Parse(time.RFC3339, row.EntryDate)
	if err != nil {
		e.logger.Warn(ctx, "Skipping trade row with unparseable entry date", map[string]interface{}{
			"trade_id":   row.TradeID,
			"entry_date": row.EntryDate,
		})
		return nil, false
	}

	var exitDate time.Time
	if row.ExitDate != "" {
		exitDate, err = time.Parse(time.RFC3339, row.ExitDate)
		if err != nil {
			e.logger.Warn(ctx, "Ignoring unparseable exit date on trade row", map[string]interface{}{
				"trade_id":  row.TradeID,
				"exit_date": row.ExitDate,
			})
			exitDate = time.Time{}
		}
	}

	return &domain.PaperTrade{
		TradeID:          row.TradeID,
		Symbol:           row.Symbol,
		EntryDate:        markethours.Normalize(entryDate, e.cfg.Location),
		EntryPrice:       row.EntryPrice,
		Shares:           row.Shares,
		PositionValue:    row.PositionValue,
		StopLoss:         row.StopLoss,
		Target:           row.Target,
		MaxHoldingDays:   row.MaxHoldingDays,
		TrendState:       row.TrendState,
		EntryState:       row.EntryState,
		RSState:          row.RSState,
		Behavior:         row.Behavior,
		MarketState:      row.MarketState,
		FundamentalState: row.FundamentalState,
		Status:           e.parseStatus(ctx, row),
		ExitDate:         markethours.Normalize(exitDate, e.cfg.Location),
		ExitPrice:        row.ExitPrice,
		ExitReason:       parseExitReason(row.ExitReason),
		Outcome:          parseOutcome(row.Outcome),
		PNL:              row.PNL,
		PNLPct:           row.PNLPct,
		HoldingDays:      row.HoldingDays,
		MFE:              row.MFE,
		MAE:              row.MAE,
		Notes:            row.Notes,
	}, true
}

func (e *Engine) parseStatus(ctx context.Context, row domain.TradeRow) domain.TradeStatus {
	switch domain.TradeStatus(row.Status) {
	case domain.StatusOpen, domain.StatusClosed:
		return domain.TradeStatus(row.Status)
	default:
		e.logger.Warn(ctx, "Unknown trade status, defaulting to OPEN", map[string]interface{}{
			"trade_id": row.TradeID,
			"status":   row.Status,
		})
		return domain.StatusOpen
	}
}

func parseExitReason(s string) domain.ExitReason {
	switch domain.ExitReason(s) {
	case domain.ExitTargetHit, domain.ExitStopLoss, domain.ExitBehaviorFailure, domain.ExitMaxHoldingDays, domain.ExitPending:
		return domain.ExitReason(s)
	default:
		return domain.ExitPending
	}
}

func parseOutcome(s string) domain.TradeOutcome {
	switch domain.TradeOutcome(s) {
	case domain.OutcomeWin, domain.OutcomeLoss, domain.OutcomeNoMove, domain.OutcomePending:
		return domain.TradeOutcome(s)
	default:
		return domain.OutcomePending
	}
}
