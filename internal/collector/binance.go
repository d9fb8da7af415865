package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"SignalSentry/internal/model"
)

// DefaultBinanceURL is the public spot API endpoint.
const DefaultBinanceURL = "https://api.binance.com"

// BinanceFetcher implements Fetcher against the Binance spot klines API.
type BinanceFetcher struct {
	BaseURL string
	Client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewBinanceFetcher creates a fetcher with optional proxy support. callDelay
// spaces successive kline requests as rate-limit courtesy; zero disables the
// spacing.
func NewBinanceFetcher(baseURL, proxyURL string, callDelay time.Duration) *BinanceFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultBinanceURL
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if callDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(callDelay), 1)
	}
	return &BinanceFetcher{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		limiter: limiter,
		logger:  log.With().Str("component", "binance").Logger(),
	}
}

func (f *BinanceFetcher) Name() string { return "binance" }

// FetchKlines requests one candle window and returns it ascending by open
// time. Transient HTTP failures are retried with exponential backoff; an
// error after retries means the data is unavailable for this cycle.
func (f *BinanceFetcher) FetchKlines(ctx context.Context, symbol, interval string, limit int) (model.Series, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&limit=%d",
		f.BaseURL, url.QueryEscape(symbol), url.QueryEscape(interval), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var body []byte
	operation := func() error {
		resp, err := f.Client.Do(req)
		if err != nil {
			return fmt.Errorf("klines request: %w", err)
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("klines read body: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("klines: status %d, body: %s", resp.StatusCode, string(b))
		}
		body = b
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("after retries: %w", err)
	}

	// Each kline is a 12-column array mixing numbers and numeric strings:
	// open time, O, H, L, C, volume, close time, quote volume, trades, ...
	var raw [][]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("klines decode: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("klines: no data returned")
	}

	series := make(model.Series, 0, len(raw))
	for _, row := range raw {
		if len(row) < 6 {
			return nil, fmt.Errorf("klines: malformed row with %d columns", len(row))
		}
		series = append(series, model.Candle{
			OpenTime: time.UnixMilli(int64(toFloat(row[0]))),
			Open:     toFloat(row[1]),
			High:     toFloat(row[2]),
			Low:      toFloat(row[3]),
			Close:    toFloat(row[4]),
			Volume:   toFloat(row[5]),
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].OpenTime.Before(series[j].OpenTime) })

	f.logger.Debug().Str("symbol", symbol).Str("interval", interval).Int("count", len(series)).Msg("fetched klines")
	return series, nil
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
