package calculator

import "math"

// CalculateSMA computes the simple moving average of values over the given
// window. Entries before the first full window are NaN; a NaN anywhere in a
// window makes that window's average NaN.
func CalculateSMA(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// CalculateEMA computes the exponential moving average of values with
// smoothing factor 2/(span+1), seeded with the first value.
func CalculateEMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// rollingSum computes the trailing sum of values over the given window.
// Entries before the first full window are NaN.
func rollingSum(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum
	}
	return out
}

// backfill replaces leading NaN entries with the first defined value, in
// place, and returns the slice.
func backfill(values []float64) []float64 {
	first := math.NaN()
	for _, v := range values {
		if !math.IsNaN(v) {
			first = v
			break
		}
	}
	for i := range values {
		if math.IsNaN(values[i]) {
			values[i] = first
		} else {
			break
		}
	}
	return values
}
