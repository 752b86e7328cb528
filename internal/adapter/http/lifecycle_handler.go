package http

import (
	"net/http"
	"strings"

	lifecycleuc "loan-service/internal/usecase/lifecycle"

	"github.com/labstack/echo/v4"
)

// HeaderIdempotencyKey carries the caller's opaque dedup token for the
// mutating lifecycle endpoints.
const HeaderIdempotencyKey = "Idempotency-Key"

type LifecycleHandler struct{ uc *lifecycleuc.Usecase }

func NewLifecycleHandler(uc *lifecycleuc.Usecase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

type rejectReq struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// Approve moves a CREDIT_PASSED application to APPROVED.
// POST /loan-applications/:application_id/approve
func (h *LifecycleHandler) Approve(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	token := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))

	dto, err := h.uc.Approve(c.Request().Context(), applicationID, token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Reject moves a DRAFT or CREDIT_PASSED application to REJECTED. The body is
// optional; when present it may carry a reason of up to 500 characters.
// POST /loan-applications/:application_id/reject
func (h *LifecycleHandler) Reject(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	token := strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))

	var req rejectReq
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: ToFieldErrors(err),
			})
		}
	}

	dto, err := h.uc.Reject(c.Request().Context(), applicationID, req.Reason, token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
