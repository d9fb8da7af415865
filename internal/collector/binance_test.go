package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const klinesPayload = `[
  [1700000060000,"100.5","101.5","99.5","101.0","12.0",1700000119999,"1212.0",10,"6.0","606.0","0"],
  [1700000000000,"100.0","101.0","99.0","100.5","10.0",1700000059999,"1005.0",8,"5.0","502.5","0"]
]`

func TestFetchKlines_ParsesAndSorts(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(klinesPayload))
	}))
	defer srv.Close()

	f := NewBinanceFetcher(srv.URL, "", 0)
	series, err := f.FetchKlines(context.Background(), "BTCUSDT", "1m", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/v3/klines" {
		t.Errorf("path = %q, want /api/v3/klines", gotPath)
	}
	if gotQuery != "symbol=BTCUSDT&interval=1m&limit=2" {
		t.Errorf("query = %q", gotQuery)
	}

	if len(series) != 2 {
		t.Fatalf("got %d candles, want 2", len(series))
	}
	// Payload is delivered newest-first; the series must come back ascending.
	if !series[0].OpenTime.Before(series[1].OpenTime) {
		t.Error("series not ascending by open time")
	}
	first := series[0]
	if first.Open != 100.0 || first.High != 101.0 || first.Low != 99.0 || first.Close != 100.5 || first.Volume != 10.0 {
		t.Errorf("first candle parsed wrong: %+v", first)
	}
}

func TestFetchKlines_EmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	f := NewBinanceFetcher(srv.URL, "", 0)
	if _, err := f.FetchKlines(context.Background(), "BTCUSDT", "1m", 100); err == nil {
		t.Fatal("expected an error for an empty payload")
	}
}

func TestFetchKlines_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
	}))
	defer srv.Close()

	f := NewBinanceFetcher(srv.URL, "", 0)
	if _, err := f.FetchKlines(context.Background(), "NOPE", "1m", 100); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestFetchKlines_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(klinesPayload))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewBinanceFetcher(srv.URL, "", 0)
	if _, err := f.FetchKlines(ctx, "BTCUSDT", "1m", 2); err == nil {
		t.Fatal("expected an error with a cancelled context")
	}
}
