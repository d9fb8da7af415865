package model

import "time"

// Snapshot holds all derived indicator values for a single candle,
// computed only from candles at or before its open time.
type Snapshot struct {
	Time       time.Time
	Close      float64
	Volume     float64
	EMAFast    float64
	EMASlow    float64
	MACD       float64
	MACDSignal float64
	RSI        float64
	ADX        float64
	BBUpper    float64
	BBLower    float64
	VolumeMA   float64
}
