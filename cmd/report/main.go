package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"equityPaperBot/config"
	"equityPaperBot/internal/adapters/logger"
	"equityPaperBot/internal/adapters/sqlite"
	"equityPaperBot/internal/papertrade"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)

	// 3. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			appLogger.Error(context.Background(), err, "Error closing database repository")
		}
	}()

	// 4. Rebuild the trade book from persisted rows
	engine, err := papertrade.NewEngine(papertrade.Config{
		PositionValue:  cfg.PositionValue,
		StopLossPct:    cfg.StopLossPct,
		TargetPct:      cfg.TargetPct,
		MaxHoldingDays: cfg.MaxHoldingDays,
		Location:       cfg.Location,
	}, appLogger)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize paper trade engine")
		log.Fatalf("FATAL: Failed to initialize paper trade engine: %v", err)
	}

	rows, err := repo.FindAllTrades(context.Background())
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to load trades")
		log.Fatalf("FATAL: Failed to load trades: %v", err)
	}
	if failed := engine.LoadFromRows(context.Background(), rows); failed > 0 {
		appLogger.Warn(context.Background(), "Some trade rows could not be loaded", map[string]interface{}{"failed": failed})
	}

	stats := engine.Statistics()

	fmt.Println("## Paper Trade Performance")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintln(w, "Closed\tOpen\tWins\tLosses\tNoMoves\tWinRate\tAvgWin%\tAvgLoss%\tTotalPnL\tAvgHold\t")
	fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\t\n",
		stats.TotalTrades,
		stats.OpenTrades,
		stats.Wins,
		stats.Losses,
		stats.NoMoves,
		stats.WinRate,
		stats.AvgWinPct,
		stats.AvgLossPct,
		stats.TotalPNL,
		stats.AvgHoldingDays,
	)
	w.Flush()

	fmt.Println("\n## Open Trades")
	ow := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintln(ow, "Symbol\tEntry\tPrice\tShares\tStop\tTarget\tDays\tMFE%\tMAE%\t")
	for _, t := range engine.OpenTrades() {
		fmt.Fprintf(ow, "%s\t%s\t%.2f\t%d\t%.2f\t%.2f\t%d\t%.2f\t%.2f\t\n",
			t.Symbol,
			t.EntryDate.Format("2006-01-02"),
			t.EntryPrice,
			t.Shares,
			t.StopLoss,
			t.Target,
			t.HoldingDays,
			t.MFE,
			t.MAE,
		)
	}
	ow.Flush()
}
