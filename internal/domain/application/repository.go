package application

import "context"

// ListFilter narrows and pages List results. Limit/Offset are assumed
// pre-clamped by the caller.
type ListFilter struct {
	State  *State
	Offset int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	// GetByApplicationID looks up by the public hex id; ErrNotFound when no
	// such application exists.
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	// GetByApplicationIDForUpdate reads with a row lock (SELECT ... FOR UPDATE);
	// only meaningful inside a transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
	// List returns a page (newest first) plus the total count for the filter.
	List(ctx context.Context, f ListFilter) ([]LoanApplication, int64, error)
}
