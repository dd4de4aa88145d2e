package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"equityPaperBot/internal/adapters/logger"
	"equityPaperBot/internal/markethours"
)

// Config holds all application configuration.
type Config struct {
	// Data sources
	BinanceAPIKey    string
	BinanceSecretKey string
	BenchmarkSymbol  string // Benchmark index symbol for market state and relative strength
	HistoryBars      int    // Daily bars requested from the provider per symbol

	// Universe
	WatchlistPath    string
	FundamentalsPath string

	// Paper trading parameters
	PositionValue  float64 // Notional per trade
	StopLossPct    float64 // Stop distance fraction (e.g., 0.05 for 5%)
	TargetPct      float64 // Target distance fraction (e.g., 0.10 for 10%)
	MaxHoldingDays int     // Budget in trading days

	// Timezone all analysis timestamps are normalized to
	Location *time.Location

	// Database
	DBPath string

	// Logging
	LogLevel logger.LogLevel
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	cfg.BinanceAPIKey = getEnv("BINANCE_API_KEY", "")
	cfg.BinanceSecretKey = getEnv("BINANCE_API_SECRET", "")

	cfg.BenchmarkSymbol = getEnv("BENCHMARK_SYMBOL", "BTCUSDT")
	if cfg.BenchmarkSymbol == "" {
		errs = append(errs, "BENCHMARK_SYMBOL must be set")
	}

	cfg.HistoryBars = getEnvAsInt("HISTORY_BARS", 180)
	if cfg.HistoryBars < 50 {
		errs = append(errs, "HISTORY_BARS must be at least 50")
	}

	cfg.WatchlistPath = getEnv("WATCHLIST_PATH", "./watchlist.yaml")
	cfg.FundamentalsPath = getEnv("FUNDAMENTALS_PATH", "")

	cfg.PositionValue, err = getEnvAsFloatRequired("POSITION_VALUE", 100000.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid POSITION_VALUE: %v", err))
	} else if cfg.PositionValue <= 0 {
		errs = append(errs, "POSITION_VALUE must be positive")
	}

	cfg.StopLossPct, err = getEnvAsFloatRequired("STOP_LOSS_PCT", 0.05)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid STOP_LOSS_PCT: %v", err))
	} else if cfg.StopLossPct <= 0 || cfg.StopLossPct >= 1.0 {
		errs = append(errs, "STOP_LOSS_PCT must be between 0.0 and 1.0 (exclusive)")
	}

	cfg.TargetPct, err = getEnvAsFloatRequired("TARGET_PCT", 0.10)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid TARGET_PCT: %v", err))
	} else if cfg.TargetPct <= 0 {
		errs = append(errs, "TARGET_PCT must be positive")
	}

	cfg.MaxHoldingDays, err = getEnvAsIntRequired("MAX_HOLDING_DAYS", 10)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid MAX_HOLDING_DAYS: %v", err))
	} else if cfg.MaxHoldingDays <= 0 {
		errs = append(errs, "MAX_HOLDING_DAYS must be positive")
	}

	tzName := getEnv("TIMEZONE", "Asia/Kolkata")
	cfg.Location, err = time.LoadLocation(tzName)
	if err != nil {
		// Fall back to the fixed IST offset when the zone database is absent
		if tzName == "Asia/Kolkata" {
			cfg.Location = markethours.IST
		} else {
			errs = append(errs, fmt.Sprintf("invalid TIMEZONE '%s': %v", tzName, err))
		}
	}

	cfg.DBPath = getEnv("DB_PATH", "./data/paper_trades.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
