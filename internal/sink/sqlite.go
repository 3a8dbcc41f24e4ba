package sink

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// SQLiteSink persists report rows to a local SQLite database. The daily
// partition becomes a `day` column rather than one table per date.
type SQLiteSink struct {
	db  *sql.DB
	mu  sync.Mutex
	log *zap.SugaredLogger
}

// NewSQLiteSink opens (or creates) the database and runs migrations.
func NewSQLiteSink(dbPath string, log *zap.SugaredLogger) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the bot's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteSink{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Infow("sqlite sink opened", "path", dbPath)
	return s, nil
}

func (s *SQLiteSink) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			day         TEXT NOT NULL,
			timestamp   TEXT NOT NULL,
			price       REAL,
			vwap        REAL,
			rsi         REAL,
			bb_upper    REAL,
			bb_lower    REAL,
			macd_hist   REAL,
			macd_signal REAL,
			sma50       REAL,
			volume      REAL,
			news_score  INTEGER NOT NULL,
			decision    TEXT NOT NULL,
			entry       REAL,
			take_profit REAL,
			stop_loss   REAL,
			risk_ratio  TEXT,
			logic       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_day ON reports(day)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteSink) Append(ctx context.Context, rec *model.ReportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, tp, sl := roundedTrio(rec)
	_, err := s.db.ExecContext(ctx, `INSERT INTO reports
		(day, timestamp, price, vwap, rsi, bb_upper, bb_lower,
		 macd_hist, macd_signal, sma50, volume, news_score, decision,
		 entry, take_profit, stop_loss, risk_ratio, logic)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		Partition(rec.Timestamp),
		rec.Timestamp.UTC().Format(time.RFC3339),
		rec.Price, rec.VWAP, rec.RSI, rec.BBUpper, rec.BBLower,
		rec.MACDHist, rec.MACDSignal, rec.SMA50, rec.Volume,
		rec.NewsScore, string(rec.Decision),
		entry, tp, sl, rec.RiskRatio, rec.LogicLine(),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
