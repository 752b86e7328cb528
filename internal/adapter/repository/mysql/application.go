package mysql

import (
	"context"
	"errors"

	appDomain "loan-service/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.LoanApplication) error {
	err := r.db.WithContext(ctx).Save(a).Error
	if isFinalStateVeto(err) {
		// Application logic should never get here; the trigger is the
		// last-line defense against writers bypassing the lifecycle guard.
		return appDomain.ErrTerminalState
	}
	return err
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *ApplicationRepository) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_id = ?", applicationID).
		First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.ListFilter) ([]appDomain.LoanApplication, int64, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.LoanApplication{})
	if f.State != nil {
		q = q.Where("state = ?", *f.State)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []appDomain.LoanApplication
	res := q.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&out)
	if res.Error != nil {
		return nil, 0, res.Error
	}
	return out, total, nil
}
