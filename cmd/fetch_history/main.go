package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"equityPaperBot/config"
	"equityPaperBot/internal/adapters/binanceclient"
	"equityPaperBot/internal/adapters/logger"
	"equityPaperBot/internal/utils"
)

func main() {
	symbol := flag.String("symbol", "", "symbol to fetch daily bars for (defaults to the configured benchmark)")
	bars := flag.Int("bars", 0, "number of daily bars to fetch (defaults to HISTORY_BARS)")
	out := flag.String("out", "", "output CSV path (defaults to data/<symbol>_1d.csv)")
	flag.Parse()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)

	// 3. Initialize Price History Provider (Binance Adapter)
	binanceClient, err := binanceclient.New(binanceclient.Config{
		APIKey:    cfg.BinanceAPIKey,
		SecretKey: cfg.BinanceSecretKey,
		Logger:    appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize Binance client")
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}

	if *symbol == "" {
		*symbol = cfg.BenchmarkSymbol
	}
	if *bars <= 0 {
		*bars = cfg.HistoryBars
	}
	if *out == "" {
		*out = fmt.Sprintf("data/%s_1d.csv", *symbol)
	}

	fmt.Printf("Fetching %d daily bars for %s...\n", *bars, *symbol)
	history, err := binanceClient.GetDailyBars(context.Background(), *symbol, *bars)
	if err != nil {
		appLogger.Error(context.Background(), err, "Error fetching daily bars")
		log.Fatalf("Error fetching daily bars: %v", err)
	}
	appLogger.Info(context.Background(), "Fetched daily bars", map[string]interface{}{"symbol": *symbol, "count": len(history)})

	if err := utils.WriteBarsToCSV(history, *out); err != nil {
		appLogger.Error(context.Background(), err, "Error writing CSV")
		log.Fatalf("Error writing CSV: %v", err)
	}
	appLogger.Info(context.Background(), "Saved history", map[string]interface{}{"filename": *out})
}
