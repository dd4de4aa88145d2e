package ports

import (
	"context"

	"equityPaperBot/internal/domain"
)

// PriceHistoryProvider supplies daily OHLCV history for a symbol. Bars are
// returned in ascending time order with unique timestamps. Providers may fail
// or return fewer rows than requested; callers treat both as input-validation
// failures, never as a crash.
type PriceHistoryProvider interface {
	// GetDailyBars retrieves up to limit daily bars for the symbol, oldest first.
	GetDailyBars(ctx context.Context, symbol string, limit int) ([]domain.PriceBar, error)
}

// FundamentalsProvider supplies an optional fundamentals record for a symbol.
// A nil record with a nil error means no data is available, which downstream
// maps to the NEUTRAL default rather than a failure.
type FundamentalsProvider interface {
	GetFundamentals(ctx context.Context, symbol string) (*domain.Fundamentals, error)
}
