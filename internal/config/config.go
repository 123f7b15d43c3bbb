package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"CryptoSentinel/internal/calculator"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		Symbol     string `yaml:"symbol"`
		Timeframe  string `yaml:"timeframe"`
		FetchLimit int    `yaml:"fetch_limit"`
	} `yaml:"data_source"`
	Indicators struct {
		EMAWindow       int     `yaml:"ema_window"`
		RSIWindow       int     `yaml:"rsi_window"`
		BollingerWindow int     `yaml:"bollinger_window"`
		BollingerK      float64 `yaml:"bollinger_k"`
	} `yaml:"indicators"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("TIMEFRAME"); v != "" {
		cfg.DataSource.Timeframe = v
	}
	if v := os.Getenv("FETCH_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DataSource.FetchLimit = n
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "BTC/USDT"
	}
	if cfg.DataSource.Timeframe == "" {
		cfg.DataSource.Timeframe = "1d"
	}
	if cfg.DataSource.FetchLimit == 0 {
		cfg.DataSource.FetchLimit = 200
	}
	if cfg.Indicators.EMAWindow == 0 {
		cfg.Indicators.EMAWindow = 20
	}
	if cfg.Indicators.RSIWindow == 0 {
		cfg.Indicators.RSIWindow = 14
	}
	if cfg.Indicators.BollingerWindow == 0 {
		cfg.Indicators.BollingerWindow = 20
	}
	if cfg.Indicators.BollingerK == 0 {
		cfg.Indicators.BollingerK = 2.0
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/crypto_sentinel.db"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 5 0 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.DataSource.Timeframe == "" {
		return fmt.Errorf("data_source.timeframe is required")
	}
	if c.DataSource.FetchLimit <= 0 {
		return fmt.Errorf("data_source.fetch_limit must be positive")
	}
	if c.Indicators.EMAWindow <= 0 {
		return fmt.Errorf("indicators.ema_window must be positive")
	}
	if c.Indicators.RSIWindow <= 0 {
		return fmt.Errorf("indicators.rsi_window must be positive")
	}
	if c.Indicators.BollingerWindow <= 0 {
		return fmt.Errorf("indicators.bollinger_window must be positive")
	}
	if c.Indicators.BollingerK <= 0 {
		return fmt.Errorf("indicators.bollinger_k must be positive")
	}
	if c.Database.SQLitePath == "" {
		return fmt.Errorf("database.sqlite_path is required")
	}
	return nil
}

// IndicatorConfig returns the window parameters as a calculator.Config.
func (c *Config) IndicatorConfig() calculator.Config {
	return calculator.Config{
		EMAWindow:       c.Indicators.EMAWindow,
		RSIWindow:       c.Indicators.RSIWindow,
		BollingerWindow: c.Indicators.BollingerWindow,
		BollingerK:      c.Indicators.BollingerK,
	}
}
