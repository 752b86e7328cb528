package assessmock

import (
	"context"
	"testing"

	domain "loan-service/internal/domain/assessment"
)

func TestRepo_DefaultsAreSafe(t *testing.T) {
	m := &Repo{}
	ctx := context.Background()

	if err := m.Create(ctx, &domain.CreditAssessment{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if _, err := m.GetByLoanApplicationID(ctx, 1); err == nil {
		t.Fatal("unstubbed getter should error")
	}
	// batch lookup defaults to an empty result, not an error
	if got, err := m.ListByLoanApplicationIDs(ctx, []uint64{1, 2}); err != nil || len(got) != 0 {
		t.Fatalf("ListByLoanApplicationIDs default: got=%v err=%v", got, err)
	}
}

func TestRepo_UsesStubs(t *testing.T) {
	m := &Repo{
		CreateFn: func(ctx context.Context, a *domain.CreditAssessment) error {
			return domain.ErrDuplicate
		},
	}
	if err := m.Create(context.Background(), &domain.CreditAssessment{}); err != domain.ErrDuplicate {
		t.Fatalf("stub not used: %v", err)
	}
}
