package calculator

import "math"

// CalculateBollinger computes the Bollinger band envelope: an SMA midline
// offset by k sample standard deviations. Entries before the first full
// window are NaN; only the trailing rows are consumed downstream.
func CalculateBollinger(closes []float64, window int, k float64) (upper, lower []float64) {
	n := len(closes)
	upper = make([]float64, n)
	lower = make([]float64, n)
	for i := 0; i < n; i++ {
		if i < window-1 {
			upper[i] = math.NaN()
			lower[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		mid := sum / float64(window)

		sd := 0.0
		if window > 1 {
			variance := 0.0
			for j := i - window + 1; j <= i; j++ {
				d := closes[j] - mid
				variance += d * d
			}
			sd = math.Sqrt(variance / float64(window-1))
		}
		upper[i] = mid + k*sd
		lower[i] = mid - k*sd
	}
	return upper, lower
}
