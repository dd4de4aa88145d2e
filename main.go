package main

import (
	"context"
	"log" // Use standard log only for initial fatal errors before logger is set up

	"equityPaperBot/config"
	"equityPaperBot/internal/adapters/binanceclient"
	"equityPaperBot/internal/adapters/fundfile"
	"equityPaperBot/internal/adapters/logger"
	"equityPaperBot/internal/adapters/sqlite"
	"equityPaperBot/internal/analysis"
	"equityPaperBot/internal/app"
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
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err) // Also log to stderr
	}
	defer func() {
		if err := repo.Close(); err != nil {
			appLogger.Error(context.Background(), err, "Error closing database repository")
		}
	}()
	appLogger.Info(context.Background(), "Database repository initialized")

	// 4. Initialize Price History Provider (Binance Adapter)
	binanceClient, err := binanceclient.New(binanceclient.Config{
		APIKey:    cfg.BinanceAPIKey,
		SecretKey: cfg.BinanceSecretKey,
		Logger:    appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize Binance client")
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}
	appLogger.Info(context.Background(), "Binance client initialized")

	// 5. Initialize Fundamentals Provider (file-backed, optional)
	fundProvider, err := fundfile.New(cfg.FundamentalsPath, appLogger)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to load fundamentals file")
		log.Fatalf("FATAL: Failed to load fundamentals file: %v", err)
	}

	// 6. Initialize Analyzer
	analyzer, err := analysis.NewAnalyzer(analysis.Config{
		Location: cfg.Location,
	}, appLogger)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize analyzer")
		log.Fatalf("FATAL: Failed to initialize analyzer: %v", err)
	}
	appLogger.Info(context.Background(), "Analyzer initialized")

	// 7. Initialize Paper Trade Engine
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
	appLogger.Info(context.Background(), "Paper trade engine initialized")

	// 8. Initialize Application Service
	scanService, err := app.NewScanService(
		cfg,
		appLogger,
		binanceClient, // Pass the concrete implementation, service expects the interface
		fundProvider,  // Pass the concrete implementation, service expects the interface
		repo,          // Pass the concrete implementation, service expects the interface
		repo,          // Pass the concrete implementation, service expects the interface
		analyzer,
		engine,
	)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize scan service")
		log.Fatalf("FATAL: Failed to initialize scan service: %v", err)
	}
	appLogger.Info(context.Background(), "Scan service initialized")

	// 9. Restore persisted trade state
	if err := scanService.Restore(context.Background()); err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to restore trade state")
		log.Fatalf("FATAL: Failed to restore trade state: %v", err)
	}

	// 10. Load the watchlist and run one scan
	watchlist, err := config.LoadWatchlist(cfg.WatchlistPath)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to load watchlist")
		log.Fatalf("FATAL: Failed to load watchlist: %v", err)
	}
	appLogger.Info(context.Background(), "Watchlist loaded", map[string]interface{}{"symbols": len(watchlist.Symbols)})

	if err := scanService.RunDailyScan(context.Background(), watchlist.Symbols); err != nil {
		appLogger.Error(context.Background(), err, "Daily scan exited with error")
		log.Fatalf("FATAL: Daily scan exited with error: %v", err)
	}

	appLogger.Info(context.Background(), "Daily scan finished.")
}
