package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"SignalSentry/internal/calculator"
	"SignalSentry/internal/model"
	"SignalSentry/internal/strategy"
)

// MockFetcher returns controllable fixed data for development and testing.
// Series entries keyed by interval take precedence; otherwise generated flat
// data around Price is returned.
type MockFetcher struct {
	Price  float64
	Series map[string]model.Series
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchKlines(_ context.Context, _, interval string, limit int) (model.Series, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if s, ok := m.Series[interval]; ok {
		return s, nil
	}
	return generateMockSeries(m.Price, limit), nil
}

func generateMockSeries(basePrice float64, count int) model.Series {
	series := make(model.Series, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		series[i] = model.Candle{
			OpenTime: time.Now().Add(-time.Duration(count-i) * time.Minute),
			Open:     p * 0.999,
			High:     p * 1.005,
			Low:      p * 0.995,
			Close:    p,
			Volume:   1000000,
		}
	}
	return series
}

// Collector runs the full per-symbol evaluation: one candle window per
// configured timeframe, indicator computation, classification of the latest
// snapshot, and the unanimity reduction across timeframes.
type Collector struct {
	Fetcher    Fetcher
	Timeframes []string
	Limit      int
	Params     calculator.Params
	Thresholds strategy.Thresholds
	logger     zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, timeframes []string, limit int, p calculator.Params, t strategy.Thresholds) *Collector {
	return &Collector{
		Fetcher:    fetcher,
		Timeframes: timeframes,
		Limit:      limit,
		Params:     p,
		Thresholds: t,
		logger:     log.With().Str("component", "collector").Logger(),
	}
}

// Analyze evaluates one symbol across all configured timeframes, in order.
// Each evaluation works on a fresh window: no state survives between calls.
// A fetch failure on any timeframe aborts the evaluation; retry policy is
// owned by the fetcher and the caller, not here.
func (c *Collector) Analyze(ctx context.Context, symbol string) (*model.Consensus, error) {
	byTimeframe := make([]model.TimeframeSignal, 0, len(c.Timeframes))
	signals := make([]model.Signal, 0, len(c.Timeframes))

	for _, tf := range c.Timeframes {
		series, err := c.Fetcher.FetchKlines(ctx, symbol, tf, c.Limit)
		if err != nil {
			return nil, fmt.Errorf("fetch %s %s: %w", symbol, tf, err)
		}
		snaps := calculator.ComputeSnapshots(series, c.Params)
		if len(snaps) == 0 {
			return nil, fmt.Errorf("fetch %s %s: empty series", symbol, tf)
		}
		sig := strategy.Evaluate(snaps[len(snaps)-1], c.Thresholds)
		c.logger.Debug().Str("symbol", symbol).Str("timeframe", tf).Str("signal", string(sig)).Msg("timeframe classified")

		byTimeframe = append(byTimeframe, model.TimeframeSignal{Timeframe: tf, Signal: sig})
		signals = append(signals, sig)
	}

	return &model.Consensus{
		Symbol:      symbol,
		Overall:     model.Unanimous(signals),
		ByTimeframe: byTimeframe,
	}, nil
}
