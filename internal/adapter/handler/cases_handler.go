package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/stationprep/consult-assistant/errors"
	"github.com/stationprep/consult-assistant/internal/adapter/dto/consult"
	"github.com/stationprep/consult-assistant/internal/domain/cases"
)

// Cases serves the static practice case catalogue
type Cases struct {
	logger *zap.Logger
}

// NewCasesHandler creates a new cases handler
func NewCasesHandler(logger *zap.Logger) *Cases {
	return &Cases{logger: logger}
}

// List handles GET /cases
// @Summary      List practice cases
// @Tags         Cases
// @Produce      json
// @Success      200  {object}  consult.CaseListResponse
// @Router       /cases [get]
func (h *Cases) List(c echo.Context) error {
	all := cases.All()
	return HandleSuccess(h.logger, c, consult.CaseListResponse{
		Cases: all,
		Total: len(all),
	})
}

// Get handles GET /cases/:id
// @Summary      Get one practice case
// @Tags         Cases
// @Produce      json
// @Param        id   path      int  true  "Case ID"
// @Success      200  {object}  entities.MedicalCase
// @Failure      404  {object}  map[string]interface{}  "Case not found"
// @Router       /cases/{id} [get]
func (h *Cases) Get(c echo.Context) error {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("case id must be an integer"))
	}

	medicalCase, ok := cases.ByID(id)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrCaseNotFound(idParam))
	}

	return HandleSuccess(h.logger, c, medicalCase)
}
