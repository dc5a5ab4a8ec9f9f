package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type traceIDKey struct{}

// WithTraceID attaches the request trace ID so report events can be correlated
// with the access log.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

type ReportLogger struct {
	logger *slog.Logger
}

func NewReportLogger(logger *slog.Logger) ReportLoggerInterface {
	return &ReportLogger{
		logger: logger,
	}
}

func (rl *ReportLogger) LogReportStarted(ctx context.Context, reportID uuid.UUID, periods, rows int) {
	rl.logger.InfoContext(ctx, "report started",
		slog.String("event_type", "report_started"),
		slog.String("report_id", reportID.String()),
		slog.Int("periods", periods),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (rl *ReportLogger) LogReportCompleted(ctx context.Context, reportID uuid.UUID, periods int, durationMs int64) {
	rl.logger.InfoContext(ctx, "report completed",
		slog.String("event_type", "report_completed"),
		slog.String("report_id", reportID.String()),
		slog.Int("periods", periods),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (rl *ReportLogger) LogReportFailed(ctx context.Context, reportID uuid.UUID, status, errorMsg string, durationMs int64) {
	rl.logger.WarnContext(ctx, "report failed",
		slog.String("event_type", "report_failed"),
		slog.String("report_id", reportID.String()),
		slog.String("status", status),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogPeriodReconciled is emitted at debug level, once per requested period
func (rl *ReportLogger) LogPeriodReconciled(ctx context.Context, reportID uuid.UUID, period, dining, fiscal string) {
	rl.logger.DebugContext(ctx, "period reconciled",
		slog.String("event_type", "period_reconciled"),
		slog.String("report_id", reportID.String()),
		slog.String("period", period),
		slog.String("dining", dining),
		slog.String("fiscal", fiscal),
		slog.String("trace_id", getTraceID(ctx)),
	)
}
