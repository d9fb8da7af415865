package calculator

import (
	"math"
	"testing"
	"time"

	"SignalSentry/internal/model"
)

func flatSeries(n int, close, high, low, volume float64) model.Series {
	series := make(model.Series, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		series[i] = model.Candle{
			OpenTime: start.Add(time.Duration(i) * time.Minute),
			Open:     close,
			High:     high,
			Low:      low,
			Close:    close,
			Volume:   volume,
		}
	}
	return series
}

func risingSeries(n int) model.Series {
	series := make(model.Series, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	price := 100.0
	for i := 0; i < n; i++ {
		if i > 0 {
			if i%3 == 0 {
				price -= 0.05
			} else {
				price += 2
			}
		}
		series[i] = model.Candle{
			OpenTime: start.Add(time.Duration(i) * time.Minute),
			Open:     price - 0.5,
			High:     price + 1,
			Low:      price - 1,
			Close:    price,
			Volume:   10,
		}
	}
	return series
}

func snapshotFields(s model.Snapshot) map[string]float64 {
	return map[string]float64{
		"EMAFast":    s.EMAFast,
		"EMASlow":    s.EMASlow,
		"MACD":       s.MACD,
		"MACDSignal": s.MACDSignal,
		"RSI":        s.RSI,
		"ADX":        s.ADX,
		"BBUpper":    s.BBUpper,
		"BBLower":    s.BBLower,
		"VolumeMA":   s.VolumeMA,
	}
}

func TestComputeSnapshots_FlatScenario(t *testing.T) {
	// 100 flat candles at close=100, high=101, low=99, volume=10 with the
	// default parameters.
	series := flatSeries(100, 100, 101, 99, 10)
	snaps := ComputeSnapshots(series, DefaultParams())
	if len(snaps) != 100 {
		t.Fatalf("got %d snapshots, want 100", len(snaps))
	}

	last := snaps[len(snaps)-1]
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"EMAFast", last.EMAFast, 100},
		{"EMASlow", last.EMASlow, 100},
		{"MACD", last.MACD, 0},
		{"MACDSignal", last.MACDSignal, 0},
		{"RSI", last.RSI, 50},
		{"ADX", last.ADX, 0},
		{"BBUpper", last.BBUpper, 100},
		{"BBLower", last.BBLower, 100},
		{"VolumeMA", last.VolumeMA, 10},
	}
	for _, c := range checks {
		if !approx(c.got, c.want, 1e-9) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestComputeSnapshots_Deterministic(t *testing.T) {
	series := risingSeries(100)
	a := ComputeSnapshots(series, DefaultParams())
	b := ComputeSnapshots(series, DefaultParams())
	for i := range a {
		fa, fb := snapshotFields(a[i]), snapshotFields(b[i])
		for name, va := range fa {
			vb := fb[name]
			if va != vb && !(math.IsNaN(va) && math.IsNaN(vb)) {
				t.Fatalf("row %d %s: %v != %v across identical calls", i, name, va, vb)
			}
		}
	}
}

func TestComputeSnapshots_MinimumWindowLength(t *testing.T) {
	p := DefaultParams()
	n := p.MaxLookback() + 1
	for _, series := range []model.Series{
		flatSeries(n, 100, 101, 99, 10),
		risingSeries(n),
	} {
		snaps := ComputeSnapshots(series, p)
		last := snaps[len(snaps)-1]
		for name, v := range snapshotFields(last) {
			if math.IsNaN(v) {
				t.Errorf("last row %s is NaN at minimum series length %d", name, n)
			}
		}
	}
}

func TestComputeSnapshots_VolumeMABackfilled(t *testing.T) {
	series := flatSeries(100, 100, 101, 99, 10)
	snaps := ComputeSnapshots(series, DefaultParams())
	for i, s := range snaps {
		if math.IsNaN(s.VolumeMA) {
			t.Fatalf("VolumeMA[%d] is NaN, want backfilled", i)
		}
	}
}

func TestComputeSnapshots_NoLookahead(t *testing.T) {
	// A row computed from a prefix must match the same row computed from
	// the full series.
	series := risingSeries(100)
	full := ComputeSnapshots(series, DefaultParams())
	prefix := ComputeSnapshots(series[:80], DefaultParams())
	got, want := snapshotFields(prefix[79]), snapshotFields(full[79])
	for name, w := range want {
		g := got[name]
		if g != w && !(math.IsNaN(g) && math.IsNaN(w)) {
			t.Errorf("row 79 %s: prefix %v, full %v", name, g, w)
		}
	}
}

func TestComputeSnapshots_Empty(t *testing.T) {
	if snaps := ComputeSnapshots(nil, DefaultParams()); snaps != nil {
		t.Fatalf("got %d snapshots for an empty series, want none", len(snaps))
	}
}

func TestParamsMaxLookback(t *testing.T) {
	p := DefaultParams()
	if got := p.MaxLookback(); got != 20 {
		t.Fatalf("MaxLookback() = %d, want 20", got)
	}
	p.ADXWindow = 30
	if got := p.MaxLookback(); got != 30 {
		t.Fatalf("MaxLookback() = %d, want 30", got)
	}
}
