package calculator

import "SignalSentry/internal/model"

// BollingerK is the band width in standard deviations.
const BollingerK = 2.0

// Params fixes the lookback windows and smoothing spans for one engine run.
type Params struct {
	EMAFast      int
	EMASlow      int
	MACDFast     int
	MACDSlow     int
	MACDSignal   int
	RSIWindow    int
	ADXWindow    int
	BBWindow     int
	VolumeWindow int
}

// DefaultParams returns the stock parameter set.
func DefaultParams() Params {
	return Params{
		EMAFast:      7,
		EMASlow:      25,
		MACDFast:     12,
		MACDSlow:     26,
		MACDSignal:   9,
		RSIWindow:    7,
		ADXWindow:    14,
		BBWindow:     20,
		VolumeWindow: 20,
	}
}

// MaxLookback returns the largest rolling window the engine consumes. The
// last snapshot row is fully defined once the series holds at least
// MaxLookback()+1 candles.
func (p Params) MaxLookback() int {
	max := p.ADXWindow
	if p.BBWindow > max {
		max = p.BBWindow
	}
	if p.VolumeWindow > max {
		max = p.VolumeWindow
	}
	return max
}

// ComputeSnapshots derives the full indicator series for a candle window.
// It is deterministic and side-effect-free: two calls with the same series
// produce the same output, and degenerate arithmetic resolves to the
// per-indicator defaults instead of raising, so the last row stays usable.
// Leading rows of window-based indicators may be NaN; callers consume only
// the last row.
func ComputeSnapshots(series model.Series, p Params) []model.Snapshot {
	n := len(series)
	if n == 0 {
		return nil
	}
	closes := series.Closes()
	volumes := series.Volumes()

	emaFast := CalculateEMA(closes, p.EMAFast)
	emaSlow := CalculateEMA(closes, p.EMASlow)

	macdFast := CalculateEMA(closes, p.MACDFast)
	macdSlow := CalculateEMA(closes, p.MACDSlow)
	macd := make([]float64, n)
	for i := range macd {
		macd[i] = macdFast[i] - macdSlow[i]
	}
	macdSignal := CalculateEMA(macd, p.MACDSignal)

	rsi := CalculateRSI(closes, p.RSIWindow)
	adx := CalculateADX(series.Highs(), series.Lows(), closes, p.ADXWindow)
	bbUpper, bbLower := CalculateBollinger(closes, p.BBWindow, BollingerK)
	volumeMA := backfill(CalculateSMA(volumes, p.VolumeWindow))

	snaps := make([]model.Snapshot, n)
	for i := range snaps {
		snaps[i] = model.Snapshot{
			Time:       series[i].OpenTime,
			Close:      closes[i],
			Volume:     volumes[i],
			EMAFast:    emaFast[i],
			EMASlow:    emaSlow[i],
			MACD:       macd[i],
			MACDSignal: macdSignal[i],
			RSI:        rsi[i],
			ADX:        adx[i],
			BBUpper:    bbUpper[i],
			BBLower:    bbLower[i],
			VolumeMA:   volumeMA[i],
		}
	}
	return snaps
}
