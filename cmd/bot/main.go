package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"SignalSentry/internal/collector"
	"SignalSentry/internal/config"
	"SignalSentry/internal/metrics"
	"SignalSentry/internal/notifier"
	"SignalSentry/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	log.Info().Strs("symbols", cfg.Symbols).Strs("timeframes", cfg.Timeframes).Msg("SignalSentry starting")

	fetcher := collector.NewBinanceFetcher(cfg.DataSource.BaseURL, cfg.Proxy, cfg.CallDelay)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	col := collector.NewCollector(fetcher, cfg.Timeframes, cfg.CandleLimit, cfg.IndicatorParams(), cfg.DecisionThresholds())

	var n notifier.Notifier
	if cfg.TestMode {
		n = notifier.NewConsoleNotifier()
	} else {
		n = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}
	log.Info().Str("notifier", n.Name()).Msg("notifier ready")

	if cfg.Metrics.Addr != "" {
		metrics.Serve(cfg.Metrics.Addr)
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics listener started")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, n, cfg.Symbols)
	if err := sched.Register(cfg.PollInterval); err != nil {
		log.Fatal().Err(err).Msg("register scan task")
	}
	sched.Start()
	defer sched.Stop()

	// First scan right away; cron fires the next one after the poll interval.
	go sched.RunNow()

	log.Info().Msg("SignalSentry is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
}
