package http

import (
	"net/http"

	assessuc "loan-service/internal/usecase/assessment"

	"github.com/labstack/echo/v4"
)

type AssessmentHandler struct{ uc *assessuc.Usecase }

func NewAssessmentHandler(uc *assessuc.Usecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

// Assess runs the credit assessment for a DRAFT application.
// POST /loan-applications/:application_id/credit-assessment
func (h *AssessmentHandler) Assess(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	dto, err := h.uc.Assess(c.Request().Context(), applicationID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
