package services

import (
	"context"
	"time"

	"getwise/internal/models"
)

// AdvisoryServiceInterface defines advice generation operations over a client-supplied snapshot
type AdvisoryServiceInterface interface {
	// GenerateAdvice renders the advice of the given kind
	GenerateAdvice(ctx context.Context, kind models.AdviceKind, snapshot *models.FinancialSnapshot) (*models.AdviceResult, error)

	// AnswerQuery routes a free-text question to the matching advice
	AnswerQuery(ctx context.Context, query string, snapshot *models.FinancialSnapshot) (*models.QueryAnswer, error)

	// AnalyzeCategory renders advice for one category present in the snapshot
	AnalyzeCategory(ctx context.Context, name string, snapshot *models.FinancialSnapshot) (*models.AdviceResult, error)

	// Guidelines lists the category spending guidelines
	Guidelines() []models.GuidelineEntry
}

// AdviceLoggerInterface provides structured logging for advice requests
type AdviceLoggerInterface interface {
	LogAdviceGenerated(ctx context.Context, kind models.AdviceKind, categories int, durationMs int64)
	LogAdviceRejected(ctx context.Context, kind models.AdviceKind, reason string)
	LogQueryRouted(ctx context.Context, topic models.QueryTopic, phrase string, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, reason string)
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
