package calculator

import "math"

// CalculateADX computes the Average Directional Index series over the given
// window. True range and directional movement are rolled as trailing sums;
// the directional indexes are undefined while the true-range sum is zero,
// and DX is undefined when +DI and -DI cancel. Undefined values that survive
// the final smoothing resolve to 0.
func CalculateADX(highs, lows, closes []float64, window int) []float64 {
	n := len(highs)
	tr := make([]float64, n)
	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	for i := 0; i < n; i++ {
		if i == 0 {
			tr[0] = highs[0] - lows[0]
			continue
		}
		hl := highs[i] - lows[i]
		hc := math.Abs(highs[i] - closes[i-1])
		lc := math.Abs(lows[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))

		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDM[i] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[i] = downMove
		}
	}

	trSum := rollingSum(tr, window)
	plusSum := rollingSum(plusDM, window)
	minusSum := rollingSum(minusDM, window)

	dx := make([]float64, n)
	for i := 0; i < n; i++ {
		plusDI := math.NaN()
		minusDI := math.NaN()
		if trSum[i] != 0 {
			plusDI = 100 * plusSum[i] / trSum[i]
			minusDI = 100 * minusSum[i] / trSum[i]
		}
		den := plusDI + minusDI
		if den == 0 || math.IsNaN(den) {
			dx[i] = math.NaN()
			continue
		}
		dx[i] = 100 * math.Abs(plusDI-minusDI) / den
	}

	adx := CalculateSMA(dx, window)
	for i := range adx {
		if math.IsNaN(adx[i]) {
			adx[i] = 0
		}
	}
	return adx
}
