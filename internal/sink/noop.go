package sink

import (
	"context"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// NoopSink is used when no durable sink is configured; decisions are
// still computed and logged.
type NoopSink struct{}

func NewNoopSink() *NoopSink { return &NoopSink{} }

func (n *NoopSink) Append(_ context.Context, _ *model.ReportRecord) error { return nil }
func (n *NoopSink) Close() error                                          { return nil }
