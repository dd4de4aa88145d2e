package app

import (
	"context"
	"fmt"

	"equityPaperBot/config"
	"equityPaperBot/internal/analysis"
	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/papertrade"
	"equityPaperBot/internal/ports"
)

// ScanService orchestrates one end-of-day scan: pull history for every
// watchlist symbol, run the analysis pipeline, advance open paper trades
// with the latest bar, open trades for eligible symbols and persist
// everything. One scan is strictly sequential; the service holds no
// concurrency of its own.
type ScanService struct {
	cfg          *config.Config
	logger       ports.Logger
	prices       ports.PriceHistoryProvider
	fundamentals ports.FundamentalsProvider
	tradeRepo    ports.TradeRepository
	logRepo      ports.AnalysisLogRepository
	analyzer     *analysis.Analyzer
	engine       *papertrade.Engine
}

// NewScanService creates a new scan service instance.
func NewScanService(
	cfg *config.Config,
	logger ports.Logger,
	prices ports.PriceHistoryProvider,
	fundamentals ports.FundamentalsProvider,
	tradeRepo ports.TradeRepository,
	logRepo ports.AnalysisLogRepository,
	analyzer *analysis.Analyzer,
	engine *papertrade.Engine,
) (*ScanService, error) {
	if cfg == nil || logger == nil || prices == nil || fundamentals == nil ||
		tradeRepo == nil || logRepo == nil || analyzer == nil || engine == nil {
		return nil, fmt.Errorf("missing required dependencies for ScanService")
	}
	return &ScanService{
		cfg:          cfg,
		logger:       logger,
		prices:       prices,
		fundamentals: fundamentals,
		tradeRepo:    tradeRepo,
		logRepo:      logRepo,
		analyzer:     analyzer,
		engine:       engine,
	}, nil
}

// Restore loads persisted trades into the engine. Rows that fail to load are
// skipped and counted, never fatal.
func (s *ScanService) Restore(ctx context.Context) error {
	rows, err := s.tradeRepo.FindAllTrades(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persisted trades: %w", err)
	}
	failed := s.engine.LoadFromRows(ctx, rows)
	s.logger.Info(ctx, "Trade state restored", map[string]interface{}{
		"open":   len(s.engine.OpenTrades()),
		"closed": len(s.engine.ClosedTrades()),
		"failed": failed,
	})
	return nil
}

// RunDailyScan analyzes the whole watchlist against the benchmark and
// advances the paper trade book. Per-symbol failures are logged and skipped;
// only a benchmark failure aborts the scan, since nothing is computable
// without it.
func (s *ScanService) RunDailyScan(ctx context.Context, symbols []string) error {
	benchmark, err := s.prices.GetDailyBars(ctx, s.cfg.BenchmarkSymbol, s.cfg.HistoryBars)
	if err != nil {
		return fmt.Errorf("failed to load benchmark history: %w", err)
	}

	analyzed, eligible := 0, 0
	for _, symbol := range symbols {
		result, err := s.scanSymbol(ctx, symbol, benchmark)
		if err != nil {
			s.logger.Warn(ctx, "Symbol skipped", map[string]interface{}{"symbol": symbol, "reason": err.Error()})
			continue
		}
		analyzed++
		if result.TradeEligible {
			eligible++
		}
	}

	if err := s.persistTrades(ctx); err != nil {
		return err
	}

	stats := s.engine.Statistics()
	s.logger.Info(ctx, "Daily scan complete", map[string]interface{}{
		"symbols":  len(symbols),
		"analyzed": analyzed,
		"eligible": eligible,
		"open":     stats.OpenTrades,
		"closed":   stats.TotalTrades,
	})
	return nil
}

func (s *ScanService) scanSymbol(ctx context.Context, symbol string, benchmark []domain.PriceBar) (*domain.AnalysisResult, error) {
	bars, err := s.prices.GetDailyBars(ctx, symbol, s.cfg.HistoryBars)
	if err != nil {
		return nil, err
	}

	funds, err := s.fundamentals.GetFundamentals(ctx, symbol)
	if err != nil {
		// Missing fundamentals never blocks analysis; the gate defaults to NEUTRAL.
		s.logger.Warn(ctx, "Fundamentals lookup failed", map[string]interface{}{"symbol": symbol, "error": err.Error()})
		funds = nil
	}

	result, err := s.analyzer.AnalyzeAsset(ctx, symbol, bars, benchmark, funds)
	if err != nil {
		return nil, err
	}

	if err := s.logRepo.AppendLog(ctx, analysis.ResultToLogRow(result)); err != nil {
		s.logger.Error(ctx, err, "Failed to persist analysis log row", map[string]interface{}{"symbol": symbol})
	}

	latest := bars[len(bars)-1]
	s.advanceOpenTrades(ctx, symbol, result, latest)

	if result.TradeEligible && !s.hasOpenTrade(symbol) {
		s.engine.CreateTrade(ctx, result)
	}
	return result, nil
}

// advanceOpenTrades feeds today's bar into every open trade for the symbol.
func (s *ScanService) advanceOpenTrades(ctx context.Context, symbol string, result *domain.AnalysisResult, latest domain.PriceBar) {
	// Copy first: UpdateTrade mutates the open collection when a trade closes.
	var open []*domain.PaperTrade
	for _, t := range s.engine.OpenTrades() {
		if t.Symbol == symbol {
			open = append(open, t)
		}
	}
	for _, t := range open {
		s.engine.UpdateTrade(ctx, t, result.Date, latest.Close, latest.Low, latest.High, result.Behavior)
	}
}

func (s *ScanService) hasOpenTrade(symbol string) bool {
	for _, t := range s.engine.OpenTrades() {
		if t.Symbol == symbol {
			return true
		}
	}
	return false
}

func (s *ScanService) persistTrades(ctx context.Context) error {
	for _, row := range s.engine.ToRows(true) {
		if err := s.tradeRepo.UpsertTrade(ctx, row); err != nil {
			return fmt.Errorf("failed to persist trades: %w", err)
		}
	}
	return nil
}
