package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cariantohs/xaut-trading-bot/internal/collector"
	"github.com/cariantohs/xaut-trading-bot/internal/model"
	"github.com/cariantohs/xaut-trading-bot/internal/news"
	"github.com/cariantohs/xaut-trading-bot/internal/notifier"
	"github.com/cariantohs/xaut-trading-bot/internal/sink"
	"github.com/cariantohs/xaut-trading-bot/internal/strategy"
)

// Scheduler runs the analysis cycle on a cron schedule. Each cycle is a
// single synchronous pipeline: fetch -> indicators -> news score ->
// decision -> sink. Cycles are independent; nothing is carried across
// invocations except the operator-visible log.
type Scheduler struct {
	cron       *cron.Cron
	collector  *collector.Collector
	feed       news.Feed
	scorer     *news.Scorer
	engine     *strategy.Engine
	sink       sink.Sink
	notifier   *notifier.TelegramNotifier // nil when Telegram is not configured
	instrument string
	log        *zap.SugaredLogger
	ctx        context.Context

	mu   sync.Mutex
	last *model.ReportRecord
}

// New creates a Scheduler.
func New(ctx context.Context, col *collector.Collector, feed news.Feed, scorer *news.Scorer,
	engine *strategy.Engine, snk sink.Sink, tn *notifier.TelegramNotifier,
	instrument string, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		collector:  col,
		feed:       feed,
		scorer:     scorer,
		engine:     engine,
		sink:       snk,
		notifier:   tn,
		instrument: instrument,
		log:        log,
		ctx:        ctx,
	}
}

// Register adds the analysis job on the given cron expression.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.cron.AddFunc(cronExpr, s.RunCycle); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("scheduler stopped")
}

// RunCycle executes one full analysis cycle. Every fault domain
// degrades independently: a market-data fault yields an ERROR decision,
// a news fault a neutral score, and a sink fault is logged while the
// decision still reaches the operator. No fault aborts the cycle.
func (s *Scheduler) RunCycle() {
	started := time.Now()
	s.log.Infow("analysis cycle started", "instrument", s.instrument)

	var snap *model.IndicatorSnapshot
	if computed, err := s.collector.Collect(s.ctx); err != nil {
		s.log.Errorw("market data unavailable, proceeding without technical data", "error", err)
	} else {
		snap = computed
	}

	score := s.scorer.ScoreFeed(s.ctx, s.feed)

	dec := s.engine.Evaluate(snap, score)
	rec := model.NewReportRecord(time.Now().UTC(), snap, score, dec)

	s.mu.Lock()
	s.last = rec
	s.mu.Unlock()

	persisted := true
	if err := s.sink.Append(s.ctx, rec); err != nil {
		persisted = false
		s.log.Errorw("sink append failed, report not persisted", "error", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendWithRetry(s.ctx, notifier.FormatReport(s.instrument, rec), 3); err != nil {
			s.log.Errorw("send notification", "error", err)
		}
	}

	s.log.Infow("analysis cycle complete",
		"decision", dec.Kind,
		"news_score", score,
		"logic", dec.LogicLine(),
		"persisted", persisted,
		"elapsed", time.Since(started),
	)
}

// LastReport returns the most recent cycle's record, or nil.
func (s *Scheduler) LastReport() *model.ReportRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// HandleCommand processes a Telegram command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		s.RunCycle()
		return ""
	case "/last":
		rec := s.LastReport()
		if rec == nil {
			return "No report yet."
		}
		return notifier.FormatReport(s.instrument, rec)
	default:
		return "Commands:\n/run — run an analysis cycle now\n/last — show the latest report"
	}
}
