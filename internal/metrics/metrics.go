package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ScansTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "signalsentry_scans_total", Help: "Completed scan cycles"},
	)
	SignalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "signalsentry_signals_total", Help: "Consensus signals emitted"},
		[]string{"symbol", "signal"},
	)
	FetchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "signalsentry_fetch_errors_total", Help: "Symbol evaluations aborted by data errors"},
		[]string{"symbol"},
	)
)

func init() {
	prometheus.MustRegister(ScansTotal, SignalsTotal, FetchErrorsTotal)
}

// Serve exposes /metrics on the given address.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
