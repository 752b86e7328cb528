package assessment

import "context"

type Repository interface {
	// Create a new assessment (DB uniqueness ensures at most one per
	// application; violations surface as ErrDuplicate).
	Create(ctx context.Context, a *CreditAssessment) error

	// Get the assessment by the application's numeric id; ErrNotFound when
	// the application was never assessed
	GetByLoanApplicationID(ctx context.Context, loanApplicationID uint64) (*CreditAssessment, error)

	// Batch fetch for a page of applications; applications without an
	// assessment are simply absent from the result
	ListByLoanApplicationIDs(ctx context.Context, loanApplicationIDs []uint64) ([]CreditAssessment, error)
}
