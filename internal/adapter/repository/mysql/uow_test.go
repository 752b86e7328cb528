package mysql

import (
	"context"
	"errors"
	"testing"

	appDomain "loan-service/internal/domain/application"
	assessDomain "loan-service/internal/domain/assessment"
	"loan-service/internal/domain/uow"
	"loan-service/pkg/id"

	"gorm.io/gorm"
)

// openUowTestDB migrates both tables, so UoW can orchestrate both repos.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openAssessmentTestDB(t)
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)
	assessRepo := NewAssessmentRepository(db)

	appID := id.NewID32()
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		// Create application, then assessment referencing the numeric ID,
		// mirroring what assess commits in one transaction.
		a := makeApplication(appID, appDomain.StateDraft)
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		if a.ID == 0 {
			t.Fatalf("application auto ID not set")
		}
		if err := r.Assessments.Create(ctx, makeAssessment(a.ID)); err != nil {
			return err
		}
		a.State = appDomain.StateCreditPassed
		return r.Applications.Save(ctx, a)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	a, err := appRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("application not visible after commit: %v", err)
	}
	if a.State != appDomain.StateCreditPassed {
		t.Fatalf("state = %s", a.State)
	}
	if _, err := assessRepo.GetByLoanApplicationID(ctx, a.ID); err != nil {
		t.Fatalf("assessment not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)

	sentinel := errors.New("boom")
	appID := id.NewID32()

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		a := makeApplication(appID, appDomain.StateDraft)
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		if err := r.Assessments.Create(ctx, makeAssessment(a.ID)); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// Neither row should exist after rollback
	if _, err := appRepo.GetByApplicationID(ctx, appID); !errors.Is(err, appDomain.ErrNotFound) {
		t.Fatalf("expected application not found after rollback, got %v", err)
	}
}

// The all-or-nothing guarantee of assess: if the state flip fails, the
// assessment insert rolls back with it.
func TestGormUoW_WithinTx_AssessmentRollsBackWithStateFlip(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	assessRepo := NewAssessmentRepository(db)

	var numericID uint64
	appID := id.NewID32()
	if err := NewApplicationRepository(db).Create(ctx, makeApplication(appID, appDomain.StateDraft)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	failSave := errors.New("save failed")
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, appID)
		if err != nil {
			return err
		}
		numericID = a.ID
		if err := r.Assessments.Create(ctx, makeAssessment(a.ID)); err != nil {
			return err
		}
		return failSave
	})

	if _, err := assessRepo.GetByLoanApplicationID(ctx, numericID); !errors.Is(err, assessDomain.ErrNotFound) {
		t.Fatalf("assessment survived rollback: %v", err)
	}
}

func TestGormUoW_WithinApplicationTx(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)

	appID := id.NewID32()
	if err := appRepo.Create(ctx, makeApplication(appID, appDomain.StateCreditPassed)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := guow.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *appDomain.LoanApplication) error {
		if a.ApplicationID != appID {
			t.Fatalf("wrong row passed: %+v", a)
		}
		a.State = appDomain.StateApproved
		return r.Applications.Save(ctx, a)
	})
	if err != nil {
		t.Fatalf("WithinApplicationTx err: %v", err)
	}

	got, err := appRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.State != appDomain.StateApproved {
		t.Fatalf("state = %s, want APPROVED", got.State)
	}
}

func TestGormUoW_WithinApplicationTx_NotFound(t *testing.T) {
	db := openUowTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinApplicationTx(context.Background(), id.NewID32(), func(r uow.Repos, a *appDomain.LoanApplication) error {
		t.Fatal("callback must not run for a missing row")
		return nil
	})
	if !errors.Is(err, appDomain.ErrNotFound) {
		t.Fatalf("err = %v, want application.ErrNotFound", err)
	}
}

// Simulates the losing side of two concurrent assess attempts: the first
// transaction commits its assessment, the second insert trips the unique
// index and rolls its transaction back.
func TestGormUoW_ConcurrentAssess_LoserGetsDuplicate(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	appRepo := NewApplicationRepository(db)

	appID := id.NewID32()
	if err := appRepo.Create(ctx, makeApplication(appID, appDomain.StateDraft)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	a, err := appRepo.GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if err := guow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Assessments.Create(ctx, makeAssessment(a.ID))
	}); err != nil {
		t.Fatalf("winner tx: %v", err)
	}

	err = guow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Assessments.Create(ctx, makeAssessment(a.ID))
	})
	if !errors.Is(err, assessDomain.ErrDuplicate) {
		t.Fatalf("loser err = %v, want ErrDuplicate", err)
	}
}
