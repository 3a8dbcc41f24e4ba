package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Indicators holds the technical indicator windows.
type Indicators struct {
	RSIPeriod  int     `yaml:"rsi_period"`
	BBWindow   int     `yaml:"bb_window"`
	BBDev      float64 `yaml:"bb_dev"`
	MACDFast   int     `yaml:"macd_fast"`
	MACDSlow   int     `yaml:"macd_slow"`
	MACDSignal int     `yaml:"macd_signal"`
	SMAPeriod  int     `yaml:"sma_period"`
}

// Sentiment holds the news scoring parameters.
type Sentiment struct {
	MaxHeadlines       int      `yaml:"max_headlines"`
	MaxAgeHours        int      `yaml:"max_age_hours"`
	PositiveThreshold  float64  `yaml:"positive_threshold"`
	NegativeThreshold  float64  `yaml:"negative_threshold"`
	HighImpactKeywords []string `yaml:"high_impact_keywords"`
}

// Decision holds the decision engine thresholds.
type Decision struct {
	RSIOversold   float64 `yaml:"rsi_oversold"`
	RSIOverbought float64 `yaml:"rsi_overbought"`
	VolumeFloor   float64 `yaml:"volume_floor"`
	MinVotes      int     `yaml:"min_votes"`
	// NewsBoost widens the take-profit when |news score| exceeds it.
	NewsBoost int `yaml:"news_boost"`
	// NewsOverride promotes a technical HOLD when |news score| reaches it.
	NewsOverride int `yaml:"news_override"`
}

// Config holds all application configuration.
type Config struct {
	Market struct {
		BaseURL    string `yaml:"base_url"`
		Instrument string `yaml:"instrument"`
		Bar        string `yaml:"bar"`
		Limit      int    `yaml:"limit"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"market"`
	News struct {
		Query      string `yaml:"query"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"news"`
	Indicators Indicators `yaml:"indicators"`
	Sentiment  Sentiment  `yaml:"sentiment"`
	Decision   Decision   `yaml:"decision"`
	Sheets     struct {
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		CredentialsFile string `yaml:"credentials_file"`
		CredentialsJSON string `yaml:"-"` // env only, never from file
	} `yaml:"sheets"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
	Debug bool   `yaml:"debug"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; env and
// defaults alone are enough to run.
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
	if v := os.Getenv("OKX_BASE_URL"); v != "" {
		cfg.Market.BaseURL = v
	}
	if v := os.Getenv("INSTRUMENT"); v != "" {
		cfg.Market.Instrument = v
	}
	if v := os.Getenv("NEWS_QUERY"); v != "" {
		cfg.News.Query = v
	}
	if v := os.Getenv("SPREADSHEET_ID"); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS"); v != "" {
		cfg.Sheets.CredentialsJSON = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Market.BaseURL == "" {
		cfg.Market.BaseURL = "https://www.okx.com"
	}
	if cfg.Market.Instrument == "" {
		cfg.Market.Instrument = "XAUT-USDT-SWAP"
	}
	if cfg.Market.Bar == "" {
		cfg.Market.Bar = "5m"
	}
	if cfg.Market.Limit == 0 {
		cfg.Market.Limit = 100
	}
	if cfg.Market.TimeoutSec == 0 {
		cfg.Market.TimeoutSec = 10
	}
	if cfg.News.Query == "" {
		cfg.News.Query = "gold OR economic OR inflation OR fed"
	}
	if cfg.News.TimeoutSec == 0 {
		cfg.News.TimeoutSec = 10
	}
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = 7
	}
	if cfg.Indicators.BBWindow == 0 {
		cfg.Indicators.BBWindow = 20
	}
	if cfg.Indicators.BBDev == 0 {
		cfg.Indicators.BBDev = 2
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = 5
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = 13
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = 1
	}
	if cfg.Indicators.SMAPeriod == 0 {
		cfg.Indicators.SMAPeriod = 50
	}
	if cfg.Sentiment.MaxHeadlines == 0 {
		cfg.Sentiment.MaxHeadlines = 10
	}
	if cfg.Sentiment.MaxAgeHours == 0 {
		cfg.Sentiment.MaxAgeHours = 24
	}
	if cfg.Sentiment.PositiveThreshold == 0 {
		cfg.Sentiment.PositiveThreshold = 0.1
	}
	if cfg.Sentiment.NegativeThreshold == 0 {
		cfg.Sentiment.NegativeThreshold = -0.1
	}
	if len(cfg.Sentiment.HighImpactKeywords) == 0 {
		cfg.Sentiment.HighImpactKeywords = []string{"fed", "inflation", "rate", "interest", "war", "gold", "dollar"}
	}
	if cfg.Decision.RSIOversold == 0 {
		cfg.Decision.RSIOversold = 35
	}
	if cfg.Decision.RSIOverbought == 0 {
		cfg.Decision.RSIOverbought = 65
	}
	if cfg.Decision.VolumeFloor == 0 {
		cfg.Decision.VolumeFloor = 20000
	}
	if cfg.Decision.MinVotes == 0 {
		cfg.Decision.MinVotes = 3
	}
	if cfg.Decision.NewsBoost == 0 {
		cfg.Decision.NewsBoost = 2
	}
	if cfg.Decision.NewsOverride == 0 {
		cfg.Decision.NewsOverride = 3
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 */5 * * * *"
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Market.Instrument == "" {
		return fmt.Errorf("market.instrument is required")
	}
	if c.Market.Limit < c.Indicators.SMAPeriod {
		return fmt.Errorf("market.limit (%d) must cover the longest indicator window (%d)",
			c.Market.Limit, c.Indicators.SMAPeriod)
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be less than macd_slow")
	}
	if c.Decision.MinVotes < 1 || c.Decision.MinVotes > 4 {
		return fmt.Errorf("decision.min_votes must be between 1 and 4")
	}
	if c.Sentiment.NegativeThreshold >= c.Sentiment.PositiveThreshold {
		return fmt.Errorf("sentiment.negative_threshold must be below positive_threshold")
	}
	return nil
}

// SheetsCredentials resolves the service-account credentials, env JSON
// first, then the configured file. Returns nil when neither is set.
func (c *Config) SheetsCredentials() ([]byte, error) {
	if c.Sheets.CredentialsJSON != "" {
		return []byte(c.Sheets.CredentialsJSON), nil
	}
	if c.Sheets.CredentialsFile != "" {
		data, err := os.ReadFile(c.Sheets.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return data, nil
	}
	return nil, nil
}
