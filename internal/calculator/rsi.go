package calculator

// CalculateRSI computes the Wilder-smoothed RSI series over the given window.
// Up and down moves are smoothed with alpha = 1/window. The first entry has
// no price change, and a flat or monotonic window drives the down-average to
// zero; both cases default to the neutral midpoint 50 instead of dividing by
// zero.
func CalculateRSI(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	out[0] = 50
	alpha := 1.0 / float64(window)
	var avgUp, avgDown float64
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		up, down := 0.0, 0.0
		if delta > 0 {
			up = delta
		} else {
			down = -delta
		}
		if i == 1 {
			avgUp, avgDown = up, down
		} else {
			avgUp = alpha*up + (1-alpha)*avgUp
			avgDown = alpha*down + (1-alpha)*avgDown
		}
		if avgDown == 0 {
			out[i] = 50
			continue
		}
		rs := avgUp / avgDown
		out[i] = 100 - 100/(1+rs)
	}
	return out
}
