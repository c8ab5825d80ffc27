package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/stationprep/consult-assistant/errors"
	"github.com/stationprep/consult-assistant/internal/adapter/dto/consult"
	assessmentUsecase "github.com/stationprep/consult-assistant/internal/usecase/assessment"
)

// Assessment handles grading requests for finished consultations
type Assessment struct {
	service assessmentUsecase.Service
	logger  *zap.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(service assessmentUsecase.Service, logger *zap.Logger) *Assessment {
	return &Assessment{
		service: service,
		logger:  logger,
	}
}

// Assess handles POST /assessment
// @Summary      Grade a finished consultation
// @Description  Fetches the conversation transcript from the voice platform and grades it against the case rubric
// @Tags         Assessment
// @Accept       json
// @Produce      json
// @Param        request  body      consult.AssessRequest  true  "Assessment request"
// @Success      200      {object}  consult.AssessResponse  "Assessment completed"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Failure      409      {object}  map[string]interface{}  "Transcript not ready yet, retry later"
// @Failure      502      {object}  map[string]interface{}  "Upstream provider failed or no valid output produced"
// @Router       /assessment [post]
func (h *Assessment) Assess(c echo.Context) error {
	var req consult.AssessRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}

	h.logger.Info("assessment requested",
		zap.String("request_id", getRequestID(c)),
		zap.String("conversation_id", req.ConversationID),
		zap.Int("case_id", req.MedicalCase.ID),
	)

	result, err := h.service.Assess(c.Request().Context(), req.ConversationID, req.MedicalCase)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, consult.AssessResponse{
		Transcript: result.Transcript,
		Assessment: result.Assessment,
	})
}
