package notifier

import (
	"fmt"
	"strings"
	"time"

	"SignalSentry/internal/model"
)

// FormatConsensus renders a consensus result as a Telegram-ready message.
// Timeframes appear in their configured order.
func FormatConsensus(c *model.Consensus) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n", c.Symbol, time.Now().UTC().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Overall: %s %s\n\n", signalEmoji(c.Overall), c.Overall))

	b.WriteString("Per timeframe:\n")
	for _, tf := range c.ByTimeframe {
		b.WriteString(fmt.Sprintf("  %s: %s\n", tf.Timeframe, tf.Signal))
	}

	return b.String()
}

func signalEmoji(s model.Signal) string {
	switch s {
	case model.SignalBuy:
		return "🟢"
	case model.SignalSell:
		return "🔴"
	default:
		return "⚪"
	}
}
