package ports

import (
	"context"

	"equityPaperBot/internal/domain"
)

// TradeRepository defines the interface for persisting flattened paper trades.
type TradeRepository interface {
	// UpsertTrade inserts the row or replaces an existing row with the same trade ID.
	UpsertTrade(ctx context.Context, row domain.TradeRow) error
	// FindAllTrades retrieves every persisted trade row, ordered by entry date ascending.
	FindAllTrades(ctx context.Context) ([]domain.TradeRow, error)
}

// AnalysisLogRepository defines the interface for the daily analysis log.
type AnalysisLogRepository interface {
	// AppendLog saves one analysis log row.
	AppendLog(ctx context.Context, row domain.AnalysisLogRow) error
	// FindLogBySymbol retrieves the most recent log rows for a symbol, up to a limit.
	FindLogBySymbol(ctx context.Context, symbol string, limit int) ([]domain.AnalysisLogRow, error)
}
