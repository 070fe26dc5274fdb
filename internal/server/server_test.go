package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"getwise/internal/config"
	"getwise/internal/middleware"
	"getwise/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const budgetSnapshot = `{"snapshot":{"incomeAmount":50000,"expensesAmount":40000,"categories":[{"name":"Housing","value":20000},{"name":"Food","value":10000}]}}`

// ServerTestSuite exercises the full middleware chain and routes against the real engine
type ServerTestSuite struct {
	suite.Suite
	cancel  context.CancelFunc
	handler http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:             "127.0.0.1",
			Port:             "0",
			Environment:      "testing",
			ReadTimeout:      time.Second,
			WriteTimeout:     time.Second,
			ShutdownTimeout:  time.Second,
			BodyLimit:        "64K",
			MetricsEnabled:   true,
			CORSAllowOrigins: []string{"https://app.example"},
		},
		Security: config.SecurityConfig{RateLimitPerSecond: 100, RateLimitBurst: 100},
		Advisory: config.AdvisoryConfig{
			Locale:               "en-IN",
			TipSeed:              42,
			CurrentAge:           30,
			RetirementAge:        60,
			YearsInRetirement:    20,
			ReplacementRatio:     0.8,
			InflationRate:        0.06,
			PreRetirementReturn:  0.10,
			PostRetirementReturn: 0.07,
		},
	}
}

func (s *ServerTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	cfg := testConfig()
	engine, err := BuildEngine(cfg.Advisory)
	s.Require().NoError(err)

	registry := prometheus.NewRegistry()
	logger := services.NewAdviceLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := services.NewAdvisoryService(engine, services.NewPrometheusMetrics(registry), logger)

	s.handler = New(ctx, cfg, Dependencies{
		AdvisoryService: service,
		Logger:          logger,
		Gatherer:        registry,
	}).Handler()
}

func (s *ServerTestSuite) TearDownTest() {
	s.cancel()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body struct {
		Error struct {
			Code    string   `json:"code"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *ServerTestSuite) TestGenerateAdvice_Budget() {
	rec := s.do(http.MethodPost, "/api/v1/advice/budget", budgetSnapshot)

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))

	var body struct {
		Data struct {
			Kind        string `json:"kind"`
			Advice      string `json:"advice"`
			GeneratedAt string `json:"generated_at"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("budget", body.Data.Kind)
	s.Contains(body.Data.Advice, "## Personalized Budget Plan")
	s.Contains(body.Data.Advice, "monthly income of ₹50,000")
	s.NotEmpty(body.Data.GeneratedAt)
}

func (s *ServerTestSuite) TestGenerateAdvice_FinancialIncludesAssessment() {
	rec := s.do(http.MethodPost, "/api/v1/advice/financial", budgetSnapshot)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"assessment"`)
}

func (s *ServerTestSuite) TestGenerateAdvice_UnknownKind() {
	rec := s.do(http.MethodPost, "/api/v1/advice/lottery", budgetSnapshot)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", s.errorCode(rec))
}

func (s *ServerTestSuite) TestGenerateAdvice_MissingSnapshot() {
	rec := s.do(http.MethodPost, "/api/v1/advice/savings", `{}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_002", s.errorCode(rec))
	s.Contains(rec.Body.String(), "snapshot: is required")
}

func (s *ServerTestSuite) TestAnswerQuery_TooLong() {
	rec := s.do(http.MethodPost, "/api/v1/advice/query", `{"query":"`+strings.Repeat("a", 501)+`",`+budgetSnapshot[1:])

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", s.errorCode(rec))
	s.Contains(rec.Body.String(), "query: must be at most 500 characters long")
}

func (s *ServerTestSuite) TestAnswerQuery_WhitespaceQueryGetsGeneralAnswer() {
	rec := s.do(http.MethodPost, "/api/v1/advice/query", `{"query":"   ",`+budgetSnapshot[1:])

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"topic":"general"`)
}

func (s *ServerTestSuite) TestAnswerQuery_RoutesToCategory() {
	rec := s.do(http.MethodPost, "/api/v1/advice/query", `{"query":"is my housing cost too high?",`+budgetSnapshot[1:])

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Topic  string `json:"topic"`
			Phrase string `json:"phrase"`
			Advice string `json:"advice"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("category", body.Data.Topic)
	s.Equal("housing", body.Data.Phrase)
	s.Contains(body.Data.Advice, "## Housing Spending Analysis")
}

func (s *ServerTestSuite) TestAnalyzeCategory() {
	rec := s.do(http.MethodPost, "/api/v1/advice/categories/Housing", budgetSnapshot)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Housing Spending Analysis")

	rec = s.do(http.MethodPost, "/api/v1/advice/categories/Travel", budgetSnapshot)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ADVICE_003", s.errorCode(rec))
}

func (s *ServerTestSuite) TestListGuidelines() {
	rec := s.do(http.MethodGet, "/api/v1/guidelines", "")

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Guidelines []json.RawMessage `json:"guidelines"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Data.Guidelines, 9)
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/nothing-here", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ADVICE_004", s.errorCode(rec))
}

func (s *ServerTestSuite) TestBodyLimit() {
	rec := s.do(http.MethodPost, "/api/v1/advice/query", `{"query":"`+strings.Repeat("a", 70*1024)+`"}`)

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
}

func (s *ServerTestSuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"healthy"`)

	s.do(http.MethodPost, "/api/v1/advice/debt", budgetSnapshot)

	rec = s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `advice_requests_total{kind="debt",status="success"} 1`)
}

func (s *ServerTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/advice/budget", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestBuildEngine_InvalidLocale(t *testing.T) {
	cfg := testConfig().Advisory
	cfg.Locale = "??"

	engine, err := BuildEngine(cfg)

	if err == nil || engine != nil {
		t.Fatalf("expected locale error, got engine=%v err=%v", engine, err)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig()
	engine, err := BuildEngine(cfg.Advisory)
	if err != nil {
		t.Fatal(err)
	}
	service := services.NewAdvisoryService(engine, services.NewPrometheusMetrics(prometheus.NewRegistry()), services.NewAdviceLogger(nil))
	srv := New(ctx, cfg, Dependencies{AdvisoryService: service, Logger: services.NewAdviceLogger(nil), Gatherer: prometheus.NewRegistry()})

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func (s *ServerTestSuite) TestSampleSnapshot_NotRegisteredOutsideDevelopment() {
	rec := s.do(http.MethodGet, "/api/v1/dev/sample-snapshot", "")

	s.Equal(http.StatusNotFound, rec.Code)
}

func TestSampleSnapshot_FeedsAdviceInDevelopment(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := testConfig()
	cfg.Server.Environment = "development"
	engine, err := BuildEngine(cfg.Advisory)
	require.NoError(t, err)
	logger := services.NewAdviceLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := services.NewAdvisoryService(engine, services.NewPrometheusMetrics(prometheus.NewRegistry()), logger)
	handler := New(ctx, cfg, Dependencies{AdvisoryService: service, Logger: logger, Gatherer: prometheus.NewRegistry()}).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dev/sample-snapshot?days=45&seed=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var sample struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sample))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice/financial", strings.NewReader(`{"snapshot":`+string(sample.Data)+`}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Financial Health")
}

func (s *ServerTestSuite) TestDocs() {
	rec := s.do(http.MethodGet, "/docs/openapi.json", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"/advice/{kind}"`)

	rec = s.do(http.MethodGet, "/docs", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Security-Policy"), "cdn.jsdelivr.net")
}

func newRateLimitedHandler(t *testing.T, trustedProxies []string) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := testConfig()
	cfg.Security = config.SecurityConfig{RateLimitPerSecond: 0.001, RateLimitBurst: 1, TrustedProxies: trustedProxies}
	require.NoError(t, cfg.Validate())
	engine, err := BuildEngine(cfg.Advisory)
	require.NoError(t, err)
	logger := services.NewAdviceLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := services.NewAdvisoryService(engine, services.NewPrometheusMetrics(prometheus.NewRegistry()), logger)
	return New(ctx, cfg, Dependencies{AdvisoryService: service, Logger: logger, Gatherer: prometheus.NewRegistry()}).Handler()
}

func postBudgetFrom(handler http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice/budget", strings.NewReader(budgetSnapshot))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimit_IgnoresForwardedForWithoutTrustedProxies(t *testing.T) {
	handler := newRateLimitedHandler(t, nil)

	assert.Equal(t, http.StatusOK, postBudgetFrom(handler, "198.51.100.4:5000", "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, postBudgetFrom(handler, "198.51.100.4:5001", "203.0.113.2"))
}

func TestRateLimit_KeysByForwardedClientBehindTrustedProxy(t *testing.T) {
	handler := newRateLimitedHandler(t, []string{"10.0.0.0/8"})

	assert.Equal(t, http.StatusOK, postBudgetFrom(handler, "10.0.0.2:5000", "203.0.113.1"))
	assert.Equal(t, http.StatusOK, postBudgetFrom(handler, "10.0.0.2:5001", "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, postBudgetFrom(handler, "10.0.0.2:5002", "203.0.113.1"))
}
