package services

import (
	"context"
	"testing"
	"time"

	"getwise/internal/advisory"
	"getwise/internal/models"
	"getwise/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// AdvisoryServiceTestSuite is the test suite for the advisory service
type AdvisoryServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	metrics  *service_mocks.MockMetricsRecorderInterface
	logger   *service_mocks.MockAdviceLoggerInterface
	service  AdvisoryServiceInterface
	ctx      context.Context
	snapshot *models.FinancialSnapshot
	fixedNow time.Time
}

func (s *AdvisoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.logger = service_mocks.NewMockAdviceLoggerInterface(s.ctrl)

	engine := advisory.NewEngine(nil, advisory.WithShuffler(advisory.NewShuffler(1)))
	s.service = NewAdvisoryService(engine, s.metrics, s.logger)
	s.fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.service.(*advisoryService).now = func() time.Time { return s.fixedNow }

	s.ctx = WithRequestID(context.Background(), "trace-123")
	s.snapshot = &models.FinancialSnapshot{
		IncomeAmount:    50000,
		ExpensesAmount:  40000,
		RemainingAmount: 10000,
		Categories: []models.CategorySpend{
			{Name: models.CategoryHousing, Value: 20000},
			{Name: models.CategoryFood, Value: 10000},
		},
	}
}

func (s *AdvisoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAdvisoryServiceSuite(t *testing.T) {
	suite.Run(t, new(AdvisoryServiceTestSuite))
}

func (s *AdvisoryServiceTestSuite) expectSuccess(kind models.AdviceKind) {
	s.metrics.EXPECT().IncrementCounter(MetricAdviceGenerated, map[string]string{"kind": string(kind), "status": "success"}).Times(1)
	s.metrics.EXPECT().RecordProcessingTime(MetricAdviceGeneration, time.Duration(0)).Times(1)
	s.metrics.EXPECT().RecordGauge(MetricSnapshotCategories, float64(2), map[string]string{"kind": string(kind)}).Times(1)
	s.logger.EXPECT().LogAdviceGenerated(s.ctx, kind, 2, int64(0)).Times(1)
}

func (s *AdvisoryServiceTestSuite) expectRejected(kind models.AdviceKind, reason string) {
	s.metrics.EXPECT().IncrementCounter(MetricAdviceGenerated, map[string]string{"kind": string(kind), "status": "rejected"}).Times(1)
	s.logger.EXPECT().LogAdviceRejected(s.ctx, kind, reason).Times(1)
}

func (s *AdvisoryServiceTestSuite) TestGenerateAdvice_EveryKind() {
	headings := map[models.AdviceKind]string{
		models.AdviceKindFinancial:     "## Financial Health Assessment",
		models.AdviceKindInvestment:    "## Investment Recommendations",
		models.AdviceKindSavings:       "## Savings Recommendations",
		models.AdviceKindBudget:        "## Personalized Budget Plan",
		models.AdviceKindDebt:          "## Debt Management Strategy",
		models.AdviceKindEmergencyFund: "## Emergency Fund Strategy",
		models.AdviceKindRetirement:    "## Retirement Planning Strategy",
	}

	for _, kind := range models.AllAdviceKinds() {
		s.Run(string(kind), func() {
			s.expectSuccess(kind)

			result, err := s.service.GenerateAdvice(s.ctx, kind, s.snapshot)

			s.Require().NoError(err)
			s.Equal(kind, result.Kind)
			s.Contains(result.Advice, headings[kind])
			s.Equal("2026-01-02T03:04:05Z", result.GeneratedAt)
		})
	}
}

func (s *AdvisoryServiceTestSuite) TestGenerateAdvice_FinancialIncludesAssessment() {
	s.expectSuccess(models.AdviceKindFinancial)

	result, err := s.service.GenerateAdvice(s.ctx, models.AdviceKindFinancial, s.snapshot)

	s.Require().NoError(err)
	s.Require().NotNil(result.Assessment)
	s.Equal(models.SpendingTierHigh, result.Assessment.Tier)
	s.Len(result.Assessment.Findings, 2)
}

func (s *AdvisoryServiceTestSuite) TestGenerateAdvice_OtherKindsOmitAssessment() {
	s.expectSuccess(models.AdviceKindBudget)

	result, err := s.service.GenerateAdvice(s.ctx, models.AdviceKindBudget, s.snapshot)

	s.Require().NoError(err)
	s.Nil(result.Assessment)
}

func (s *AdvisoryServiceTestSuite) TestGenerateAdvice_UnknownKind() {
	s.expectRejected("unknown", "unknown_kind")

	result, err := s.service.GenerateAdvice(s.ctx, "lottery", s.snapshot)

	s.ErrorIs(err, ErrUnknownAdviceKind)
	s.Nil(result)
}

func (s *AdvisoryServiceTestSuite) TestGenerateAdvice_NilSnapshot() {
	s.expectRejected(models.AdviceKindSavings, "snapshot_required")

	result, err := s.service.GenerateAdvice(s.ctx, models.AdviceKindSavings, nil)

	s.ErrorIs(err, ErrSnapshotRequired)
	s.Nil(result)
}

func (s *AdvisoryServiceTestSuite) TestGenerateAdvice_NilSnapshotWithUnknownKindUsesBoundedLabel() {
	s.expectRejected("unknown", "snapshot_required")

	_, err := s.service.GenerateAdvice(s.ctx, "../../etc", nil)

	s.ErrorIs(err, ErrSnapshotRequired)
}

func (s *AdvisoryServiceTestSuite) TestAnswerQuery_RoutesAndRecordsTopic() {
	s.metrics.EXPECT().IncrementCounter(MetricAdviceQueryRouted, map[string]string{"topic": "budget"}).Times(1)
	s.metrics.EXPECT().RecordProcessingTime(MetricAdviceGeneration, time.Duration(0)).Times(1)
	s.logger.EXPECT().LogQueryRouted(s.ctx, models.QueryTopicBudget, "budget", int64(0)).Times(1)

	answer, err := s.service.AnswerQuery(s.ctx, "Help me budget", s.snapshot)

	s.Require().NoError(err)
	s.Equal("Help me budget", answer.Query)
	s.Equal(models.QueryTopicBudget, answer.Topic)
	s.Equal("budget", answer.Phrase)
	s.Contains(answer.Advice, "## Personalized Budget Plan")
	s.Equal("2026-01-02T03:04:05Z", answer.GeneratedAt)
}

func (s *AdvisoryServiceTestSuite) TestAnswerQuery_CategoryTopic() {
	s.metrics.EXPECT().IncrementCounter(MetricAdviceQueryRouted, map[string]string{"topic": "category"}).Times(1)
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).Times(1)
	s.logger.EXPECT().LogQueryRouted(gomock.Any(), models.QueryTopicCategory, "food", gomock.Any()).Times(1)

	answer, err := s.service.AnswerQuery(s.ctx, "Is my food spending ok?", s.snapshot)

	s.Require().NoError(err)
	s.Contains(answer.Advice, "## Food Spending Analysis")
}

func (s *AdvisoryServiceTestSuite) TestAnswerQuery_GeneralFallback() {
	s.metrics.EXPECT().IncrementCounter(MetricAdviceQueryRouted, map[string]string{"topic": "general"}).Times(1)
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).Times(1)
	s.logger.EXPECT().LogQueryRouted(gomock.Any(), models.QueryTopicGeneral, "", gomock.Any()).Times(1)

	answer, err := s.service.AnswerQuery(s.ctx, "what is the weather", s.snapshot)

	s.Require().NoError(err)
	s.Empty(answer.Phrase)
	s.Contains(answer.Advice, "## Response to Your Query")
}

func (s *AdvisoryServiceTestSuite) TestAnswerQuery_EmptyQuery() {
	s.expectRejected("query", "query_required")

	answer, err := s.service.AnswerQuery(s.ctx, "", s.snapshot)

	s.ErrorIs(err, ErrQueryRequired)
	s.Nil(answer)
}

func (s *AdvisoryServiceTestSuite) TestAnswerQuery_WhitespaceQueryFallsBackToGeneral() {
	s.metrics.EXPECT().IncrementCounter(MetricAdviceQueryRouted, map[string]string{"topic": "general"}).Times(1)
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).Times(1)
	s.logger.EXPECT().LogQueryRouted(gomock.Any(), models.QueryTopicGeneral, "", gomock.Any()).Times(1)

	answer, err := s.service.AnswerQuery(s.ctx, "   ", s.snapshot)

	s.Require().NoError(err)
	s.Equal(models.QueryTopicGeneral, answer.Topic)
	s.Contains(answer.Advice, "I understand you're asking about: \"   \"")
}

func (s *AdvisoryServiceTestSuite) TestAnswerQuery_NilSnapshot() {
	s.expectRejected("query", "snapshot_required")

	_, err := s.service.AnswerQuery(s.ctx, "budget", nil)

	s.ErrorIs(err, ErrSnapshotRequired)
}

func (s *AdvisoryServiceTestSuite) TestAnalyzeCategory_Success() {
	s.expectSuccess(models.AdviceKindCategory)

	result, err := s.service.AnalyzeCategory(s.ctx, models.CategoryHousing, s.snapshot)

	s.Require().NoError(err)
	s.Equal(models.AdviceKindCategory, result.Kind)
	s.Equal(models.CategoryHousing, result.Category)
	s.Contains(result.Advice, "## Housing Spending Analysis")
}

func (s *AdvisoryServiceTestSuite) TestAnalyzeCategory_NotFound() {
	s.expectRejected(models.AdviceKindCategory, "category_not_found")

	result, err := s.service.AnalyzeCategory(s.ctx, "housing", s.snapshot)

	s.ErrorIs(err, ErrCategoryNotFound)
	s.Nil(result)
}

func (s *AdvisoryServiceTestSuite) TestAnalyzeCategory_NilSnapshot() {
	s.expectRejected(models.AdviceKindCategory, "snapshot_required")

	_, err := s.service.AnalyzeCategory(s.ctx, models.CategoryHousing, nil)

	s.ErrorIs(err, ErrSnapshotRequired)
}

func (s *AdvisoryServiceTestSuite) TestGuidelines() {
	guidelines := s.service.Guidelines()

	s.Require().Len(guidelines, 9)
	s.Equal(models.CategoryHousing, guidelines[0].Category)
	s.Equal(models.CategoryGuideline{Ideal: 0.3, High: 0.4}, guidelines[0].Guideline)
	s.True(guidelines[8].Default)
	s.Equal(models.CategoryGuideline{Ideal: 0.1, High: 0.15}, guidelines[8].Guideline)
}
