// Package assessment implements the credit assessment engine: the 3x income
// decision rule plus the transaction that records the assessment and flips
// the application state in one commit.
package assessment

import (
	"context"
	"errors"

	appDomain "loan-service/internal/domain/application"
	assessDomain "loan-service/internal/domain/assessment"
	"loan-service/internal/domain/uow"
	appuc "loan-service/internal/usecase/application"
	"loan-service/pkg/apperr"
	"loan-service/pkg/id"
)

type Usecase struct {
	apps appDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(apps appDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, uow: tx}
}

// Assess runs the credit decision for a DRAFT application and commits the
// assessment row together with the resulting state in a single transaction.
//
// The DRAFT check deliberately happens before the transaction: two
// concurrent calls may both see DRAFT, but the unique index on
// loan_application_id lets only one insert commit. The loser surfaces as a
// Conflict, never as a raw duplicate-key error.
func (u *Usecase) Assess(ctx context.Context, applicationID string) (*appuc.DTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, appDomain.ErrNotFound) {
			return nil, apperr.NotFound("loan application not found")
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "could not load loan application", err)
	}
	if a.State != appDomain.StateDraft {
		return nil, apperr.InvalidState("application already assessed")
	}
	// Guard against per-installment amounts that floor to zero.
	if a.RequestedLoanAmount < int64(a.TenorInMonths) {
		return nil, apperr.InvalidInput("requested loan amount must be at least equal to the tenor in months")
	}

	// Integer floor division only; currency never touches floating point.
	installment := a.RequestedLoanAmount / int64(a.TenorInMonths)
	pass := a.MonthlyIncome >= 3*installment

	var dto *appuc.DTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cs := &assessDomain.CreditAssessment{
			AssessmentID:       id.NewID32(),
			LoanApplicationID:  a.ID,
			Result:             assessDomain.ResultPass,
			MonthlyInstallment: installment,
		}
		if !pass {
			cs.Result = assessDomain.ResultFail
			reason := assessDomain.FailureReason
			cs.RejectionReason = &reason
		}
		if err := r.Assessments.Create(ctx, cs); err != nil {
			return err
		}

		if pass {
			a.State = appDomain.StateCreditPassed
		} else {
			// Assessment-driven rejection: the reason stays on the
			// assessment row, not on the application.
			a.State = appDomain.StateRejected
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = appuc.NewDTO(a, cs)
		return nil
	})
	if err != nil {
		if errors.Is(err, assessDomain.ErrDuplicate) {
			return nil, apperr.Conflict("credit assessment is already in progress or completed for this application")
		}
		if errors.Is(err, appDomain.ErrTerminalState) {
			// A manual reject committed between the DRAFT check and the
			// state flip; the trigger vetoed the Save and the whole
			// transaction, assessment row included, rolled back.
			return nil, apperr.InvalidState("loan application is already in a final state")
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "could not store credit assessment", err)
	}
	return dto, nil
}
