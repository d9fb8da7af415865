package collector

import (
	"context"

	"SignalSentry/internal/model"
)

// Fetcher defines the interface for fetching candle windows.
type Fetcher interface {
	FetchKlines(ctx context.Context, symbol, interval string, limit int) (model.Series, error)
	Name() string
}
