package model

// Signal is the classification of one indicator snapshot.
type Signal string

const (
	SignalBuy     Signal = "BUY"
	SignalSell    Signal = "SELL"
	SignalNeutral Signal = "NEUTRAL"
)

// TimeframeSignal pairs a timeframe label with its classification.
type TimeframeSignal struct {
	Timeframe string
	Signal    Signal
}

// Consensus is the final output for one symbol in one poll cycle.
// ByTimeframe preserves the configured timeframe order.
type Consensus struct {
	Symbol      string
	Overall     Signal
	ByTimeframe []TimeframeSignal
}

// Unanimous reduces per-timeframe signals to a single call. A non-neutral
// call requires every timeframe to agree; one dissent yields NEUTRAL.
func Unanimous(signals []Signal) Signal {
	if len(signals) == 0 {
		return SignalNeutral
	}
	first := signals[0]
	if first == SignalNeutral {
		return SignalNeutral
	}
	for _, s := range signals[1:] {
		if s != first {
			return SignalNeutral
		}
	}
	return first
}
