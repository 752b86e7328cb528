package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appDomain "loan-service/internal/domain/application"
	assessDomain "loan-service/internal/domain/assessment"
	"loan-service/internal/domain/uow"
	"loan-service/internal/testutil/appmock"
	"loan-service/internal/testutil/assessmock"
	"loan-service/internal/testutil/uowmock"
	appuc "loan-service/internal/usecase/application"
	assessuc "loan-service/internal/usecase/assessment"
)

func newAssessmentHandler(app *appDomain.LoanApplication) *AssessmentHandler {
	apps := &appmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.LoanApplication, error) {
			if app == nil || id != app.ApplicationID {
				return nil, appDomain.ErrNotFound
			}
			return app, nil
		},
		SaveFn: func(ctx context.Context, a *appDomain.LoanApplication) error { return nil },
	}
	assessments := &assessmock.Repo{
		CreateFn: func(ctx context.Context, cs *assessDomain.CreditAssessment) error { return nil },
	}
	uc := assessuc.NewUsecase(apps, uowmock.Passthrough(uow.Repos{Applications: apps, Assessments: assessments}))
	return NewAssessmentHandler(uc)
}

func doAssessReq(t *testing.T, h *AssessmentHandler, appID string) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(appID)
	if err := h.Assess(c); err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	return rec
}

func TestAssess_HTTPPass(t *testing.T) {
	app := &appDomain.LoanApplication{
		ID:                  5,
		ApplicationID:       strings.Repeat("e", 32),
		ApplicantName:       "Jane Doe",
		MonthlyIncome:       300_000,
		RequestedLoanAmount: 1_000_000,
		TenorInMonths:       12,
		State:               appDomain.StateDraft,
	}
	h := newAssessmentHandler(app)

	rec := doAssessReq(t, h, app.ApplicationID)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body)
	}
	var dto appuc.DTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.State != string(appDomain.StateCreditPassed) {
		t.Fatalf("state = %s, want CREDIT_PASSED", dto.State)
	}
	if dto.CreditAssessment == nil || dto.CreditAssessment.MonthlyInstallment != 83_333 {
		t.Fatalf("assessment = %+v", dto.CreditAssessment)
	}
}

func TestAssess_HTTPInvalidID(t *testing.T) {
	h := newAssessmentHandler(nil)
	rec := doAssessReq(t, h, "short")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAssess_HTTPNotFound(t *testing.T) {
	h := newAssessmentHandler(nil)
	rec := doAssessReq(t, h, strings.Repeat("f", 32))
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAssess_HTTPAlreadyAssessed(t *testing.T) {
	app := &appDomain.LoanApplication{
		ID:                  5,
		ApplicationID:       strings.Repeat("e", 32),
		MonthlyIncome:       300_000,
		RequestedLoanAmount: 1_000_000,
		TenorInMonths:       12,
		State:               appDomain.StateCreditPassed,
	}
	h := newAssessmentHandler(app)

	rec := doAssessReq(t, h, app.ApplicationID)
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "application already assessed" {
		t.Fatalf("message = %q", resp.Error)
	}
}
