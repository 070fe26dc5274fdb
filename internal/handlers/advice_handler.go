package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"getwise/internal/dto"
	apierrors "getwise/internal/errors"
	"getwise/internal/models"
	"getwise/internal/services"
	"getwise/internal/validation"

	"github.com/labstack/echo/v4"
)

// AdviceHandler handles advice HTTP requests
type AdviceHandler struct {
	advisoryService services.AdvisoryServiceInterface
	logger          services.AdviceLoggerInterface
}

// NewAdviceHandler creates a new advice handler
func NewAdviceHandler(advisoryService services.AdvisoryServiceInterface, logger services.AdviceLoggerInterface) *AdviceHandler {
	return &AdviceHandler{
		advisoryService: advisoryService,
		logger:          logger,
	}
}

// GenerateAdvice renders one kind of advice for the supplied snapshot
// @Summary Generate advice
// @Description Render rule-based Markdown advice of the requested kind from a financial snapshot
// @Tags Advice
// @Accept json
// @Produce json
// @Param kind path string true "Advice kind" Enums(financial, investment, savings, budget, debt, emergency-fund, retirement)
// @Param request body dto.AdviceRequest true "Financial snapshot"
// @Success 200 {object} SuccessResponse{data=models.AdviceResult} "Rendered advice"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001/VALIDATION_002/VALIDATION_005 - Invalid request, missing field or advice kind"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /advice/{kind} [post]
func (h *AdviceHandler) GenerateAdvice(c echo.Context) error {
	ctx := services.WithRequestID(c.Request().Context(), getTraceID(c))

	kind := c.Param("kind")
	if err := validation.GetValidator().GetValidate().Var(kind, "advice_kind"); err != nil {
		h.logger.LogValidationFailure(ctx, "advice_generate", "unknown advice kind")
		return SendError(c, apierrors.ValidationInvalidAdviceKind)
	}

	var req dto.AdviceRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "advice_generate", err.Error())
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "advice_generate", err.Error())
		return err
	}

	result, err := h.advisoryService.GenerateAdvice(ctx, models.AdviceKind(kind), req.Snapshot.ToSnapshot())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// AnswerQuery answers a free-text question about the supplied snapshot
// @Summary Ask a question
// @Description Route a free-text question to the matching advice by keyword
// @Tags Advice
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Query and financial snapshot"
// @Success 200 {object} SuccessResponse{data=models.QueryAnswer} "Answer"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001/VALIDATION_002/VALIDATION_006 - Invalid request, missing field or query length"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /advice/query [post]
func (h *AdviceHandler) AnswerQuery(c echo.Context) error {
	ctx := services.WithRequestID(c.Request().Context(), getTraceID(c))

	var req dto.QueryRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "advice_query", err.Error())
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "advice_query", err.Error())
		return err
	}

	answer, err := h.advisoryService.AnswerQuery(ctx, req.Query, req.Snapshot.ToSnapshot())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: answer})
}

// AnalyzeCategory renders advice for one category of the supplied snapshot
// @Summary Analyze a category
// @Description Compare one category's spending against its guideline
// @Tags Advice
// @Accept json
// @Produce json
// @Param name path string true "Category name (case-sensitive)"
// @Param request body dto.AdviceRequest true "Financial snapshot"
// @Success 200 {object} SuccessResponse{data=models.AdviceResult} "Category analysis"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 404 {object} errors.ErrorResponse "ADVICE_003 - Category not in snapshot"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /advice/categories/{name} [post]
func (h *AdviceHandler) AnalyzeCategory(c echo.Context) error {
	ctx := services.WithRequestID(c.Request().Context(), getTraceID(c))

	name, err := url.PathUnescape(c.Param("name"))
	if err != nil || validation.GetValidator().GetValidate().Var(name, "category_name") != nil {
		h.logger.LogValidationFailure(ctx, "advice_category", "invalid category name")
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid category name"))
	}

	var req dto.AdviceRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "advice_category", err.Error())
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "advice_category", err.Error())
		return err
	}

	result, err := h.advisoryService.AnalyzeCategory(ctx, name, req.Snapshot.ToSnapshot())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// ListGuidelines returns the category spending guidelines
// @Summary List spending guidelines
// @Description Ideal and high spending ratios per category, default guideline last
// @Tags Advice
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.GuidelinesResponse} "Guidelines"
// @Router /guidelines [get]
func (h *AdviceHandler) ListGuidelines(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.GuidelinesResponse{Guidelines: h.advisoryService.Guidelines()},
	})
}

// handleServiceError maps advisory service errors to standardized responses
func (h *AdviceHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrSnapshotRequired):
		return SendError(c, apierrors.AdviceSnapshotRequired)
	case errors.Is(err, services.ErrQueryRequired):
		return SendError(c, apierrors.AdviceQueryRequired)
	case errors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, apierrors.AdviceCategoryNotFound)
	case errors.Is(err, services.ErrUnknownAdviceKind):
		return SendError(c, apierrors.ValidationInvalidAdviceKind)
	default:
		return SendSystemError(c, err)
	}
}
