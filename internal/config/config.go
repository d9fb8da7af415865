package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"SignalSentry/internal/calculator"
	"SignalSentry/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Symbols     []string `yaml:"symbols"`
	Timeframes  []string `yaml:"timeframes"`
	CandleLimit int      `yaml:"candle_limit"`
	Indicators  struct {
		EMAFast      int `yaml:"ema_fast"`
		EMASlow      int `yaml:"ema_slow"`
		MACDFast     int `yaml:"macd_fast"`
		MACDSlow     int `yaml:"macd_slow"`
		MACDSignal   int `yaml:"macd_signal"`
		RSIWindow    int `yaml:"rsi_window"`
		ADXWindow    int `yaml:"adx_window"`
		BBWindow     int `yaml:"bb_window"`
		VolumeWindow int `yaml:"volume_window"`
	} `yaml:"indicators"`
	Thresholds struct {
		ADX        float64 `yaml:"adx"`
		RSIBuyMin  float64 `yaml:"rsi_buy_min"`
		RSIBuyMax  float64 `yaml:"rsi_buy_max"`
		RSISellMin float64 `yaml:"rsi_sell_min"`
		RSISellMax float64 `yaml:"rsi_sell_max"`
	} `yaml:"thresholds"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"data_source"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	CallDelay    time.Duration `yaml:"call_delay"`
	PollInterval time.Duration `yaml:"poll_interval"`
	TestMode     bool          `yaml:"test_mode"`
	LogLevel     string        `yaml:"log_level"`
	Proxy        string        `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Symbols = splitList(v)
	}
	if v := os.Getenv("TIMEFRAMES"); v != "" {
		cfg.Timeframes = splitList(v)
	}
	if v := os.Getenv("CANDLE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CandleLimit = n
		}
	}
	if v := os.Getenv("POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("CALL_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CallDelay = d
		}
	}
	if v := os.Getenv("TEST_MODE"); v != "" {
		cfg.TestMode = v == "true" || v == "1"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{"BTCUSDT", "ETHUSDT", "SOLUSDT", "XRPUSDT"}
	}
	if len(cfg.Timeframes) == 0 {
		cfg.Timeframes = []string{"1m", "5m", "15m", "30m", "1h"}
	}
	if cfg.CandleLimit == 0 {
		cfg.CandleLimit = 100
	}
	if cfg.Indicators.EMAFast == 0 {
		cfg.Indicators.EMAFast = 7
	}
	if cfg.Indicators.EMASlow == 0 {
		cfg.Indicators.EMASlow = 25
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = 12
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = 26
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = 9
	}
	if cfg.Indicators.RSIWindow == 0 {
		cfg.Indicators.RSIWindow = 7
	}
	if cfg.Indicators.ADXWindow == 0 {
		cfg.Indicators.ADXWindow = 14
	}
	if cfg.Indicators.BBWindow == 0 {
		cfg.Indicators.BBWindow = 20
	}
	if cfg.Indicators.VolumeWindow == 0 {
		cfg.Indicators.VolumeWindow = 20
	}
	if cfg.Thresholds.ADX == 0 {
		cfg.Thresholds.ADX = 25
	}
	if cfg.Thresholds.RSIBuyMin == 0 {
		cfg.Thresholds.RSIBuyMin = 50
	}
	if cfg.Thresholds.RSIBuyMax == 0 {
		cfg.Thresholds.RSIBuyMax = 65
	}
	if cfg.Thresholds.RSISellMin == 0 {
		cfg.Thresholds.RSISellMin = 35
	}
	if cfg.Thresholds.RSISellMax == 0 {
		cfg.Thresholds.RSISellMax = 50
	}
	if cfg.CallDelay == 0 {
		cfg.CallDelay = 150 * time.Millisecond
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 60 * time.Second
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	// Without Telegram credentials only console delivery can work.
	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == "" {
		cfg.TestMode = true
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols must not be empty")
	}
	if len(c.Timeframes) == 0 {
		return fmt.Errorf("timeframes must not be empty")
	}
	for _, w := range []struct {
		name  string
		value int
	}{
		{"ema_fast", c.Indicators.EMAFast},
		{"ema_slow", c.Indicators.EMASlow},
		{"macd_fast", c.Indicators.MACDFast},
		{"macd_slow", c.Indicators.MACDSlow},
		{"macd_signal", c.Indicators.MACDSignal},
		{"rsi_window", c.Indicators.RSIWindow},
		{"adx_window", c.Indicators.ADXWindow},
		{"volume_window", c.Indicators.VolumeWindow},
	} {
		if w.value <= 0 {
			return fmt.Errorf("indicators.%s must be positive", w.name)
		}
	}
	if c.Indicators.BBWindow < 2 {
		return fmt.Errorf("indicators.bb_window must be at least 2")
	}
	if min := c.IndicatorParams().MaxLookback() + 1; c.CandleLimit < min {
		return fmt.Errorf("candle_limit must be at least %d (max lookback + 1)", min)
	}
	if c.Thresholds.RSIBuyMin > c.Thresholds.RSIBuyMax {
		return fmt.Errorf("thresholds.rsi_buy_min must not exceed rsi_buy_max")
	}
	if c.Thresholds.RSISellMin > c.Thresholds.RSISellMax {
		return fmt.Errorf("thresholds.rsi_sell_min must not exceed rsi_sell_max")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if !c.TestMode {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required outside test mode")
		}
		if c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram.chat_id is required outside test mode")
		}
	}
	return nil
}

// IndicatorParams converts the indicator section into engine parameters.
func (c *Config) IndicatorParams() calculator.Params {
	return calculator.Params{
		EMAFast:      c.Indicators.EMAFast,
		EMASlow:      c.Indicators.EMASlow,
		MACDFast:     c.Indicators.MACDFast,
		MACDSlow:     c.Indicators.MACDSlow,
		MACDSignal:   c.Indicators.MACDSignal,
		RSIWindow:    c.Indicators.RSIWindow,
		ADXWindow:    c.Indicators.ADXWindow,
		BBWindow:     c.Indicators.BBWindow,
		VolumeWindow: c.Indicators.VolumeWindow,
	}
}

// DecisionThresholds converts the thresholds section for the evaluator.
func (c *Config) DecisionThresholds() strategy.Thresholds {
	return strategy.Thresholds{
		ADX:        c.Thresholds.ADX,
		RSIBuyMin:  c.Thresholds.RSIBuyMin,
		RSIBuyMax:  c.Thresholds.RSIBuyMax,
		RSISellMin: c.Thresholds.RSISellMin,
		RSISellMax: c.Thresholds.RSISellMax,
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
