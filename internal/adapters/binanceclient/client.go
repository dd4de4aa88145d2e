// Package binanceclient implements ports.PriceHistoryProvider on top of the
// Binance spot REST API. It is one of the interchangeable history sources;
// the analysis core never depends on it directly.
package binanceclient

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"

	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/ports"
)

const dailyInterval = "1d"

// Client adapts the Binance spot API to the PriceHistoryProvider port.
type Client struct {
	spotClient *binance.Client
	logger     ports.Logger
}

// Config holds configuration specific to the Binance client adapter. Keys
// may be empty: kline endpoints are public.
type Config struct {
	APIKey    string
	SecretKey string
	Logger    ports.Logger
}

// New creates a new Binance client adapter.
func New(cfg Config) (*Client, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required for Binance client")
	}
	return &Client{
		spotClient: binance.NewClient(cfg.APIKey, cfg.SecretKey),
		logger:     cfg.Logger,
	}, nil
}

// GetDailyBars retrieves up to limit daily bars for the symbol, oldest first.
func (c *Client) GetDailyBars(ctx context.Context, symbol string, limit int) ([]domain.PriceBar, error) {
	klines, err := c.spotClient.NewKlinesService().
		Symbol(symbol).
		Interval(dailyInterval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		c.logger.Error(ctx, err, "Failed to fetch daily klines", map[string]interface{}{"symbol": symbol})
		return nil, fmt.Errorf("%w: fetching daily bars for %s: %v", ports.ErrProviderUnavailable, symbol, err)
	}

	bars := make([]domain.PriceBar, 0, len(klines))
	for _, k := range klines {
		bar, err := translateKline(k)
		if err != nil {
			return nil, fmt.Errorf("failed to translate kline for %s: %w", symbol, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func translateKline(k *binance.Kline) (domain.PriceBar, error) {
	open, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parsing open '%s': %w", k.Open, err)
	}
	high, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parsing high '%s': %w", k.High, err)
	}
	low, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parsing low '%s': %w", k.Low, err)
	}
	closePrice, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parsing close '%s': %w", k.Close, err)
	}
	volume, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return domain.PriceBar{}, fmt.Errorf("parsing volume '%s': %w", k.Volume, err)
	}

	return domain.PriceBar{
		Time:   time.UnixMilli(k.OpenTime).UTC(),
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: volume,
	}, nil
}
