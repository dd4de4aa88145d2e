package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equityPaperBot/internal/domain"
)

func TestClassifyBehavior_Continuation(t *testing.T) {
	s := strongUptrend(55)

	behavior, signals := ClassifyBehavior(s, domain.RSNeutral)

	assert.Equal(t, domain.BehaviorContinuation, behavior)
	require.Len(t, signals, 9, "continuation evaluates both checklists")
	for _, name := range []string{"rsi_divergence", "ema_flattening", "swing_low_break", "effort_no_result", "rs_weakening"} {
		assert.False(t, signals[name], "failure signal %s", name)
	}
}

func TestClassifyBehavior_FailureShortCircuits(t *testing.T) {
	// A declining series flattens the EMA and breaks the swing low: two
	// signals, enough to fail without looking at expansion.
	s := buildSeries(60,
		func(i int) domain.PriceBar {
			close := 200.0 - float64(i)
			return domain.PriceBar{Open: close, High: close + 1, Low: close - 1, Close: close, Volume: 1000}
		},
		func(i int) float64 { return 205.0 - float64(i) },
		func(i int) float64 { return 210.0 - float64(i) },
		func(i int) float64 { return 30 },
		func(i int) float64 { return 1000 },
	)

	behavior, signals := ClassifyBehavior(s, domain.RSNeutral)

	assert.Equal(t, domain.BehaviorFailure, behavior)
	assert.True(t, signals["ema_flattening"])
	assert.True(t, signals["swing_low_break"])
	require.Len(t, signals, 5, "expansion checklist must not run after failure fires")
}

func TestClassifyBehavior_SingleFailureSignalIsNotFailure(t *testing.T) {
	// Only the RS signal fires; one signal stays continuation.
	s := strongUptrend(55)

	behavior, signals := ClassifyBehavior(s, domain.RSWeak)

	assert.True(t, signals["rs_weakening"])
	assert.Equal(t, domain.BehaviorContinuation, behavior)
}

func TestClassifyBehavior_Expansion(t *testing.T) {
	// A quiet drifting base: rising lows, a tight range and volume below
	// average, with nothing on the failure checklist.
	s := buildSeries(60,
		func(i int) domain.PriceBar {
			close := 100.0 + float64(i)*0.05
			return domain.PriceBar{Open: close, High: close + 0.1, Low: close - 0.1, Close: close, Volume: 800}
		},
		func(i int) float64 { return 99.0 + float64(i)*0.05 },
		func(i int) float64 { return 98.0 + float64(i)*0.05 },
		func(i int) float64 { return 55 },
		func(i int) float64 { return 1000 },
	)

	behavior, signals := ClassifyBehavior(s, domain.RSNeutral)

	assert.Equal(t, domain.BehaviorExpansion, behavior)
	assert.True(t, signals["range_tight"])
	assert.True(t, signals["higher_lows"])
	assert.True(t, signals["volume_quiet"])
}

func TestClassifyBehavior_RSIDivergence(t *testing.T) {
	// Price makes a higher close while RSI makes a lower high.
	s := buildSeries(60,
		func(i int) domain.PriceBar {
			close := 100.0 + float64(i)
			return domain.PriceBar{Open: close, High: close + 1, Low: close - 1, Close: close, Volume: 1000}
		},
		func(i int) float64 { return 95.0 + float64(i) },
		func(i int) float64 { return 90.0 + float64(i) },
		func(i int) float64 { return 70.0 - float64(i)*0.2 },
		func(i int) float64 { return 1000 },
	)

	_, signals := ClassifyBehavior(s, domain.RSNeutral)

	assert.True(t, signals["rsi_divergence"])
}

func TestClassifyBehavior_TooFewRows(t *testing.T) {
	s := buildSeries(behaviorMinRows-1,
		func(i int) domain.PriceBar {
			return domain.PriceBar{Close: 100, High: 101, Low: 99, Volume: 1000}
		},
		func(i int) float64 { return 95 },
		func(i int) float64 { return 90 },
		func(i int) float64 { return 50 },
		func(i int) float64 { return 1000 },
	)

	behavior, signals := ClassifyBehavior(s, domain.RSNeutral)

	assert.Equal(t, domain.BehaviorContinuation, behavior)
	assert.Empty(t, signals)
}
