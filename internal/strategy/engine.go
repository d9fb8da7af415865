package strategy

import "SignalSentry/internal/model"

// Thresholds holds the decision bands applied to the latest snapshot.
type Thresholds struct {
	ADX        float64
	RSIBuyMin  float64
	RSIBuyMax  float64
	RSISellMin float64
	RSISellMax float64
}

// DefaultThresholds returns the stock decision thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ADX:        25,
		RSIBuyMin:  50,
		RSIBuyMax:  65,
		RSISellMin: 35,
		RSISellMax: 50,
	}
}

// Evaluate classifies a single indicator snapshot. A non-neutral call needs
// all six conditions of its branch; the trend-strength (ADX) and volume
// gates are shared between both branches. Pure: no state, no side effects.
func Evaluate(s model.Snapshot, t Thresholds) model.Signal {
	adxOK := s.ADX >= t.ADX
	volOK := s.Volume >= s.VolumeMA

	emaBuy := s.EMAFast > s.EMASlow
	macdBuy := s.MACD > s.MACDSignal
	rsiBuy := s.RSI >= t.RSIBuyMin && s.RSI <= t.RSIBuyMax
	bbBuy := s.Close > s.BBUpper
	if emaBuy && macdBuy && rsiBuy && adxOK && volOK && bbBuy {
		return model.SignalBuy
	}

	emaSell := s.EMAFast < s.EMASlow
	macdSell := s.MACD < s.MACDSignal
	rsiSell := s.RSI >= t.RSISellMin && s.RSI <= t.RSISellMax
	bbSell := s.Close < s.BBLower
	if emaSell && macdSell && rsiSell && adxOK && volOK && bbSell {
		return model.SignalSell
	}

	return model.SignalNeutral
}
