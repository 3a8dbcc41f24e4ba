package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cariantohs/xaut-trading-bot/internal/collector"
	"github.com/cariantohs/xaut-trading-bot/internal/config"
	"github.com/cariantohs/xaut-trading-bot/internal/news"
	"github.com/cariantohs/xaut-trading-bot/internal/notifier"
	"github.com/cariantohs/xaut-trading-bot/internal/scheduler"
	"github.com/cariantohs/xaut-trading-bot/internal/sink"
	"github.com/cariantohs/xaut-trading-bot/internal/strategy"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	logger := newLogger(cfg.Debug)
	defer logger.Sync()
	sugar := logger.Sugar()
	sugar.Infow("xaut-trading-bot starting", "instrument", cfg.Market.Instrument, "bar", cfg.Market.Bar)

	// Market data
	fetcher := collector.NewOKXFetcher(cfg.Market.BaseURL, cfg.Proxy, time.Duration(cfg.Market.TimeoutSec)*time.Second)
	sugar.Infow("data source ready", "source", fetcher.Name())
	col := collector.NewCollector(fetcher, cfg.Market.Instrument, cfg.Market.Bar, cfg.Market.Limit, cfg.Indicators, sugar)

	// News sentiment
	feed := news.NewGoogleNewsFeed(cfg.News.Query, cfg.Proxy, time.Duration(cfg.News.TimeoutSec)*time.Second)
	scorer := news.NewScorer(cfg.Sentiment, news.NewLexiconClassifier(), sugar)

	// Decision engine
	engine := strategy.NewEngine(cfg.Decision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sink: Google Sheets when configured, SQLite as local fallback,
	// noop otherwise.
	snk := buildSink(ctx, cfg, sugar)
	defer snk.Close()

	// Optional Telegram notifier
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, sugar)
	}

	sched := scheduler.New(ctx, col, feed, scorer, engine, snk, tn, cfg.Market.Instrument, sugar)

	// Single-run mode for external schedulers (CI cron and the like):
	// one cycle, then exit.
	if os.Getenv("RUN_ONCE") == "true" {
		sched.RunCycle()
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		sugar.Fatalw("register cron task", "error", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		sugar.Info("telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		sugar.Info("RUN_ON_START enabled, executing analysis cycle now")
		go sched.RunCycle()
	}

	sugar.Info("xaut-trading-bot is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	sugar.Info("shutdown signal received, stopping")
	cancel()
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	return logger
}

func buildSink(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) sink.Sink {
	if cfg.Sheets.SpreadsheetID != "" {
		creds, err := cfg.SheetsCredentials()
		if err != nil {
			sugar.Warnw("load sheets credentials failed", "error", err)
		} else if creds == nil {
			sugar.Warn("sheets.spreadsheet_id set but no credentials configured")
		} else {
			ss, err := sink.NewSheetsSink(ctx, cfg.Sheets.SpreadsheetID, creds, sugar)
			if err != nil {
				sugar.Warnw("init sheets sink failed", "error", err)
			} else {
				sugar.Infow("sink ready", "sink", "sheets", "spreadsheet", cfg.Sheets.SpreadsheetID)
				return ss
			}
		}
	}
	if cfg.Database.SQLitePath != "" {
		sq, err := sink.NewSQLiteSink(cfg.Database.SQLitePath, sugar)
		if err != nil {
			sugar.Warnw("init sqlite sink failed, using noop", "error", err)
		} else {
			return sq
		}
	}
	sugar.Warn("no sink configured, reports will not be persisted")
	return sink.NewNoopSink()
}
