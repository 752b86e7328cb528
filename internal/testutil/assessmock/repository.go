package assessmock

import (
	"context"
	"errors"

	domain "loan-service/internal/domain/assessment"
)

var _ domain.Repository = (*Repo)(nil)

var errUnstubbed = errors.New("assessmock: method not stubbed")

// Repo is a function-backed mock that satisfies assessment.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, a *domain.CreditAssessment) error
	GetByLoanApplicationIDFn   func(ctx context.Context, loanApplicationID uint64) (*domain.CreditAssessment, error)
	ListByLoanApplicationIDsFn func(ctx context.Context, loanApplicationIDs []uint64) ([]domain.CreditAssessment, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.CreditAssessment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByLoanApplicationID(ctx context.Context, loanApplicationID uint64) (*domain.CreditAssessment, error) {
	if m.GetByLoanApplicationIDFn != nil {
		return m.GetByLoanApplicationIDFn(ctx, loanApplicationID)
	}
	return nil, errUnstubbed
}

func (m *Repo) ListByLoanApplicationIDs(ctx context.Context, loanApplicationIDs []uint64) ([]domain.CreditAssessment, error) {
	if m.ListByLoanApplicationIDsFn != nil {
		return m.ListByLoanApplicationIDsFn(ctx, loanApplicationIDs)
	}
	return nil, nil
}
