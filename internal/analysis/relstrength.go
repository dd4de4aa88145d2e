package analysis

import "equityPaperBot/internal/domain"

// Relative strength parameters: trailing return window and the band that
// separates strong, neutral and weak.
const (
	rsReturnWindow = 20
	rsStrongBand   = 0.02
)

// AnalyzeRelativeStrength compares the asset's trailing 20-bar return with
// the benchmark's. Missing lookback data yields RSNA with value 0, never an
// error.
func AnalyzeRelativeStrength(assetCloses, benchCloses []float64) (domain.RSState, float64) {
	if len(assetCloses) < rsReturnWindow+1 || len(benchCloses) < rsReturnWindow+1 {
		return domain.RSNA, 0.0
	}

	assetRet, ok := trailingReturn(assetCloses)
	if !ok {
		return domain.RSNA, 0.0
	}
	benchRet, ok := trailingReturn(benchCloses)
	if !ok {
		return domain.RSNA, 0.0
	}

	rsValue := assetRet - benchRet
	switch {
	case rsValue > rsStrongBand:
		return domain.RSStrong, rsValue
	case rsValue > -rsStrongBand:
		return domain.RSNeutral, rsValue
	default:
		return domain.RSWeak, rsValue
	}
}

func trailingReturn(closes []float64) (float64, bool) {
	last := closes[len(closes)-1]
	base := closes[len(closes)-1-rsReturnWindow]
	if base == 0 {
		return 0, false
	}
	return (last - base) / base, true
}
