package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equityPaperBot/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestAnalyzeFundamentals_NoRecord(t *testing.T) {
	for _, f := range []*domain.Fundamentals{nil, {}} {
		state, score, reasons := AnalyzeFundamentals(f)

		assert.Equal(t, domain.FundamentalNeutral, state)
		assert.Equal(t, 60.0, score)
		require.Len(t, reasons, 5)
		for name, check := range reasons {
			assert.Equal(t, domain.CheckUnknown, check, "reason %s", name)
		}
	}
}

func TestAnalyzeFundamentals_Scoring(t *testing.T) {
	tests := []struct {
		name          string
		fundamentals  *domain.Fundamentals
		expectedState domain.FundamentalState
		expectedScore float64
	}{
		{
			name: "all checks pass",
			fundamentals: &domain.Fundamentals{
				EPSGrowth3Y:       f64(20),
				PE:                f64(10),
				IndustryPE:        f64(30),
				DebtEquity:        f64(0.2),
				ROE:               f64(20),
				OperatingCashflow: f64(5),
			},
			expectedState: domain.FundamentalPass,
			expectedScore: 100,
		},
		{
			name: "four of five pass",
			fundamentals: &domain.Fundamentals{
				EPSGrowth3Y:       f64(20),
				PE:                f64(10),
				IndustryPE:        f64(30),
				DebtEquity:        f64(0.2),
				ROE:               f64(10), // below the 15 floor
				OperatingCashflow: f64(5),
			},
			expectedState: domain.FundamentalPass,
			expectedScore: 80,
		},
		{
			name: "two of five pass",
			fundamentals: &domain.Fundamentals{
				EPSGrowth3Y:       f64(20),
				PE:                f64(40),
				IndustryPE:        f64(30),
				DebtEquity:        f64(2),
				ROE:               f64(5),
				OperatingCashflow: f64(5),
			},
			expectedState: domain.FundamentalNeutral,
			expectedScore: 40,
		},
		{
			name: "one of five passes",
			fundamentals: &domain.Fundamentals{
				EPSGrowth3Y:       f64(-5),
				PE:                f64(40),
				IndustryPE:        f64(30),
				DebtEquity:        f64(2),
				ROE:               f64(5),
				OperatingCashflow: f64(5),
			},
			expectedState: domain.FundamentalFail,
			expectedScore: 20,
		},
		{
			name: "missing metrics fall back to conservative defaults",
			fundamentals: &domain.Fundamentals{
				ROE: f64(20), // only metric present; defaults fail the rest
			},
			expectedState: domain.FundamentalFail,
			expectedScore: 20,
		},
		{
			name: "pe capped at 25 even with a high industry multiple",
			fundamentals: &domain.Fundamentals{
				EPSGrowth3Y:       f64(20),
				PE:                f64(28),
				IndustryPE:        f64(60), // cap applies before the comparison
				DebtEquity:        f64(0.2),
				ROE:               f64(20),
				OperatingCashflow: f64(5),
			},
			expectedState: domain.FundamentalPass,
			expectedScore: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, score, reasons := AnalyzeFundamentals(tt.fundamentals)
			assert.Equal(t, tt.expectedState, state)
			assert.Equal(t, tt.expectedScore, score)
			require.Len(t, reasons, 5)
			for name, check := range reasons {
				assert.NotEqual(t, domain.CheckUnknown, check, "reason %s must be definite when a record exists", name)
			}
		})
	}
}
