package services

import (
	"context"
	"log/slog"
	"time"

	"getwise/internal/models"
)

type contextKey string

// RequestIDKey is the context key holding the request trace ID
const RequestIDKey contextKey = "request_id"

// WithRequestID returns a copy of ctx carrying the request trace ID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// AdviceLogger logs advice events. Query text and snapshot amounts are never logged.
type AdviceLogger struct {
	logger *slog.Logger
}

// NewAdviceLogger creates a new advice logger
func NewAdviceLogger(logger *slog.Logger) AdviceLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdviceLogger{
		logger: logger,
	}
}

// LogAdviceGenerated logs a successfully rendered piece of advice
func (al *AdviceLogger) LogAdviceGenerated(ctx context.Context, kind models.AdviceKind, categories int, durationMs int64) {
	al.logger.InfoContext(ctx, "advice generated",
		slog.String("event_type", "advice_generated"),
		slog.String("kind", string(kind)),
		slog.Int("categories", categories),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogAdviceRejected logs a request the service refused to answer
func (al *AdviceLogger) LogAdviceRejected(ctx context.Context, kind models.AdviceKind, reason string) {
	al.logger.WarnContext(ctx, "advice rejected",
		slog.String("event_type", "advice_rejected"),
		slog.String("kind", string(kind)),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogQueryRouted logs which topic a free-text query resolved to
func (al *AdviceLogger) LogQueryRouted(ctx context.Context, topic models.QueryTopic, phrase string, durationMs int64) {
	al.logger.InfoContext(ctx, "advice query routed",
		slog.String("event_type", "advice_query_routed"),
		slog.String("topic", string(topic)),
		slog.String("phrase", phrase),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs a request body that failed binding or validation
func (al *AdviceLogger) LogValidationFailure(ctx context.Context, operation string, reason string) {
	al.logger.WarnContext(ctx, "advice request validation failed",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
