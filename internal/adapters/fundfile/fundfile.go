// Package fundfile implements ports.FundamentalsProvider backed by a local
// YAML file: a manually curated map of symbol to fundamental metrics. Every
// metric is optional in the file; missing symbols yield no record at all,
// which the fundamental gate maps to its NEUTRAL default.
package fundfile

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"equityPaperBot/internal/domain"
	"equityPaperBot/internal/ports"
)

// Provider serves fundamentals from an in-memory map loaded once at startup.
type Provider struct {
	records map[string]*domain.Fundamentals
	logger  ports.Logger
}

type fileRecord struct {
	EPSGrowth3Y       *float64 `yaml:"eps_growth_3y"`
	PE                *float64 `yaml:"pe"`
	IndustryPE        *float64 `yaml:"industry_pe"`
	DebtEquity        *float64 `yaml:"debt_equity"`
	ROE               *float64 `yaml:"roe"`
	OperatingCashflow *float64 `yaml:"operating_cashflow"`
}

// New loads the fundamentals file. A missing path is allowed and yields a
// provider with no records, so the pipeline still runs with the NEUTRAL
// fundamentals default.
func New(path string, logger ports.Logger) (*Provider, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for fundamentals provider")
	}
	p := &Provider{records: map[string]*domain.Fundamentals{}, logger: logger}
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn(context.Background(), "Fundamentals file not found, all symbols default to NEUTRAL", map[string]interface{}{"path": path})
			return p, nil
		}
		return nil, fmt.Errorf("failed to read fundamentals file '%s': %w", path, err)
	}

	var raw map[string]fileRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse fundamentals file '%s': %w", path, err)
	}

	for symbol, rec := range raw {
		p.records[symbol] = &domain.Fundamentals{
			EPSGrowth3Y:       rec.EPSGrowth3Y,
			PE:                rec.PE,
			IndustryPE:        rec.IndustryPE,
			DebtEquity:        rec.DebtEquity,
			ROE:               rec.ROE,
			OperatingCashflow: rec.OperatingCashflow,
		}
	}
	logger.Info(context.Background(), "Fundamentals loaded", map[string]interface{}{"path": path, "symbols": len(p.records)})
	return p, nil
}

// GetFundamentals returns the record for the symbol, or nil when the file
// carries no entry for it.
func (p *Provider) GetFundamentals(ctx context.Context, symbol string) (*domain.Fundamentals, error) {
	return p.records[symbol], nil
}
