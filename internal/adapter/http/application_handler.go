package http

import (
	"net/http"
	"strconv"

	appuc "loan-service/internal/usecase/application"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *appuc.Usecase }

func NewApplicationHandler(uc *appuc.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	ApplicantName string `json:"applicant_name"         validate:"required,max=255"`
	// Minor currency units (e.g. cents)
	MonthlyIncome       int64 `json:"monthly_income"         validate:"required,gte=1"`
	RequestedLoanAmount int64 `json:"requested_loan_amount"  validate:"required,gte=1"`
	TenorInMonths       int   `json:"tenor_in_months"        validate:"required,gte=1,lte=600"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), appuc.CreateInput{
		ApplicantName:       req.ApplicantName,
		MonthlyIncome:       req.MonthlyIncome,
		RequestedLoanAmount: req.RequestedLoanAmount,
		TenorInMonths:       req.TenorInMonths,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	applicationID := c.Param("application_id")
	if !reHex32.MatchString(applicationID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid application_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), applicationID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) List(c echo.Context) error {
	in := appuc.ListInput{State: c.QueryParam("state")}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "page must be an integer"})
		}
		in.Page = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
		}
		in.Limit = n
	}
	out, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
