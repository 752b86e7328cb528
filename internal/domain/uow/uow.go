package uow

import (
	"context"

	"loan-service/internal/domain/application"
	"loan-service/internal/domain/assessment"
)

type Repos struct {
	Applications application.Repository
	Assessments  assessment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.LoanApplication) error) error
}
