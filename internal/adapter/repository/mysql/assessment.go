package mysql

import (
	"context"
	"errors"

	assessDomain "loan-service/internal/domain/assessment"

	"gorm.io/gorm"
)

type AssessmentRepository struct{ db *gorm.DB }

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

func (r *AssessmentRepository) Create(ctx context.Context, a *assessDomain.CreditAssessment) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if isDuplicateKey(err) {
		// Loser of a concurrent-assess race on the same application.
		return assessDomain.ErrDuplicate
	}
	return err
}

func (r *AssessmentRepository) GetByLoanApplicationID(ctx context.Context, loanApplicationID uint64) (*assessDomain.CreditAssessment, error) {
	var out assessDomain.CreditAssessment
	res := r.db.WithContext(ctx).
		Where("loan_application_id = ?", loanApplicationID).
		First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, assessDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *AssessmentRepository) ListByLoanApplicationIDs(ctx context.Context, loanApplicationIDs []uint64) ([]assessDomain.CreditAssessment, error) {
	if len(loanApplicationIDs) == 0 {
		return nil, nil
	}
	var out []assessDomain.CreditAssessment
	res := r.db.WithContext(ctx).
		Where("loan_application_id IN ?", loanApplicationIDs).
		Find(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return out, nil
}
