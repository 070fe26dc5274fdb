package services

import (
	"context"
	"errors"
	"time"

	"getwise/internal/advisory"
	"getwise/internal/models"
)

var (
	ErrSnapshotRequired  = errors.New("financial snapshot is required")
	ErrUnknownAdviceKind = errors.New("unknown advice kind")
	ErrCategoryNotFound  = errors.New("category not found in snapshot")
	ErrQueryRequired     = errors.New("query is required")
)

// Metric names understood by PrometheusMetrics
const (
	MetricAdviceGenerated    = "advice.generated"
	MetricAdviceGeneration   = "advice.generation"
	MetricAdviceQueryRouted  = "advice.query.routed"
	MetricSnapshotCategories = "advice.snapshot.categories"
)

const (
	adviceStatusSuccess  = "success"
	adviceStatusRejected = "rejected"

	// kindQuery and kindUnknown only ever appear as metric and log labels
	kindQuery   models.AdviceKind = "query"
	kindUnknown models.AdviceKind = "unknown"
)

// advisoryService implements AdvisoryServiceInterface on top of the advisory engine
type advisoryService struct {
	engine  *advisory.Engine
	metrics MetricsRecorderInterface
	logger  AdviceLoggerInterface
	now     func() time.Time
}

// NewAdvisoryService creates an advisory service
func NewAdvisoryService(engine *advisory.Engine, metrics MetricsRecorderInterface, logger AdviceLoggerInterface) AdvisoryServiceInterface {
	return &advisoryService{
		engine:  engine,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// GenerateAdvice renders the advice of the given kind. The financial kind also carries
// the structured assessment it was rendered from.
func (s *advisoryService) GenerateAdvice(ctx context.Context, kind models.AdviceKind, snapshot *models.FinancialSnapshot) (*models.AdviceResult, error) {
	startTime := s.now()

	if snapshot == nil {
		s.reject(ctx, kind, "snapshot_required")
		return nil, ErrSnapshotRequired
	}

	result := &models.AdviceResult{Kind: kind}
	switch kind {
	case models.AdviceKindFinancial:
		result.Assessment = s.engine.Assess(snapshot)
		result.Advice = s.engine.FinancialAdvice(snapshot)
	case models.AdviceKindInvestment:
		result.Advice = s.engine.InvestmentAdvice(snapshot)
	case models.AdviceKindSavings:
		result.Advice = s.engine.SavingsTips(snapshot)
	case models.AdviceKindBudget:
		result.Advice = s.engine.BudgetPlan(snapshot)
	case models.AdviceKindDebt:
		result.Advice = s.engine.DebtManagementAdvice(snapshot)
	case models.AdviceKindEmergencyFund:
		result.Advice = s.engine.EmergencyFundAdvice(snapshot)
	case models.AdviceKindRetirement:
		result.Advice = s.engine.RetirementAdvice(snapshot)
	default:
		s.reject(ctx, kindUnknown, "unknown_kind")
		return nil, ErrUnknownAdviceKind
	}

	s.complete(ctx, result, snapshot, startTime)
	return result, nil
}

// AnswerQuery routes a free-text question and renders the matching advice
func (s *advisoryService) AnswerQuery(ctx context.Context, query string, snapshot *models.FinancialSnapshot) (*models.QueryAnswer, error) {
	startTime := s.now()

	if query == "" {
		s.reject(ctx, kindQuery, "query_required")
		return nil, ErrQueryRequired
	}
	if snapshot == nil {
		s.reject(ctx, kindQuery, "snapshot_required")
		return nil, ErrSnapshotRequired
	}

	resolution := s.engine.ResolveQuery(query, snapshot)
	advice := s.engine.Answer(query, resolution, snapshot)
	duration := s.now().Sub(startTime)

	s.metrics.IncrementCounter(MetricAdviceQueryRouted, map[string]string{
		"topic": string(resolution.Topic),
	})
	s.metrics.RecordProcessingTime(MetricAdviceGeneration, duration)
	s.logger.LogQueryRouted(ctx, resolution.Topic, resolution.Phrase, duration.Milliseconds())

	return &models.QueryAnswer{
		Query:       query,
		Topic:       resolution.Topic,
		Phrase:      resolution.Phrase,
		Advice:      advice,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}, nil
}

// AnalyzeCategory renders advice for the first snapshot category named name
func (s *advisoryService) AnalyzeCategory(ctx context.Context, name string, snapshot *models.FinancialSnapshot) (*models.AdviceResult, error) {
	startTime := s.now()

	if snapshot == nil {
		s.reject(ctx, models.AdviceKindCategory, "snapshot_required")
		return nil, ErrSnapshotRequired
	}

	category, ok := snapshot.FindCategory(name)
	if !ok {
		s.reject(ctx, models.AdviceKindCategory, "category_not_found")
		return nil, ErrCategoryNotFound
	}

	result := &models.AdviceResult{
		Kind:     models.AdviceKindCategory,
		Category: category.Name,
		Advice:   s.engine.CategoryAdvice(category, snapshot),
	}

	s.complete(ctx, result, snapshot, startTime)
	return result, nil
}

// Guidelines lists the category spending guidelines followed by the default
func (s *advisoryService) Guidelines() []models.GuidelineEntry {
	return s.engine.Tables().Guidelines()
}

func (s *advisoryService) complete(ctx context.Context, result *models.AdviceResult, snapshot *models.FinancialSnapshot, startTime time.Time) {
	duration := s.now().Sub(startTime)
	result.GeneratedAt = s.now().UTC().Format(time.RFC3339)

	s.metrics.IncrementCounter(MetricAdviceGenerated, map[string]string{
		"kind":   string(result.Kind),
		"status": adviceStatusSuccess,
	})
	s.metrics.RecordProcessingTime(MetricAdviceGeneration, duration)
	s.metrics.RecordGauge(MetricSnapshotCategories, float64(len(snapshot.Categories)), map[string]string{
		"kind": string(result.Kind),
	})
	s.logger.LogAdviceGenerated(ctx, result.Kind, len(snapshot.Categories), duration.Milliseconds())
}

func (s *advisoryService) reject(ctx context.Context, kind models.AdviceKind, reason string) {
	// Keep label values bounded when the kind came straight from a request path
	switch {
	case kind == kindQuery, kind == models.AdviceKindCategory, models.IsValidAdviceKind(string(kind)):
	default:
		kind = kindUnknown
	}

	s.metrics.IncrementCounter(MetricAdviceGenerated, map[string]string{
		"kind":   string(kind),
		"status": adviceStatusRejected,
	})
	s.logger.LogAdviceRejected(ctx, kind, reason)
}
