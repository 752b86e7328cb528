package application

import (
	"context"
	"errors"
	"strings"

	appDomain "loan-service/internal/domain/application"
	assessDomain "loan-service/internal/domain/assessment"
	"loan-service/pkg/apperr"
	"loan-service/pkg/id"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
	maxTenor     = 600
)

type Usecase struct {
	apps        appDomain.Repository
	assessments assessDomain.Repository
}

func NewUsecase(apps appDomain.Repository, assessments assessDomain.Repository) *Usecase {
	return &Usecase{apps: apps, assessments: assessments}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*DTO, error) {
	name := strings.TrimSpace(in.ApplicantName)
	if name == "" || len(name) > 255 {
		return nil, apperr.InvalidInput("applicant name must be 1-255 characters")
	}
	if in.MonthlyIncome <= 0 || in.RequestedLoanAmount <= 0 {
		return nil, apperr.InvalidInput("monthly income and requested loan amount must be positive")
	}
	if in.TenorInMonths <= 0 || in.TenorInMonths > maxTenor {
		return nil, apperr.InvalidInput("tenor in months must be between 1 and 600")
	}

	a := &appDomain.LoanApplication{
		ApplicationID:       id.NewID32(),
		ApplicantName:       name,
		MonthlyIncome:       in.MonthlyIncome,
		RequestedLoanAmount: in.RequestedLoanAmount,
		TenorInMonths:       in.TenorInMonths,
		State:               appDomain.StateDraft,
	}
	if err := u.apps.Create(ctx, a); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "could not store loan application", err)
	}
	return NewDTO(a, nil), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*DTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, appDomain.ErrNotFound) {
			return nil, apperr.NotFound("loan application not found")
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "could not load loan application", err)
	}
	cs, err := u.assessments.GetByLoanApplicationID(ctx, a.ID)
	if err != nil {
		if !errors.Is(err, assessDomain.ErrNotFound) {
			return nil, apperr.Wrap(apperr.KindUnavailable, "could not load credit assessment", err)
		}
		cs = nil
	}
	return NewDTO(a, cs), nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*ListOutput, error) {
	page := in.Page
	if page < 1 {
		page = defaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := appDomain.ListFilter{Offset: (page - 1) * limit, Limit: limit}
	if in.State != "" {
		st := appDomain.State(strings.ToUpper(in.State))
		switch st {
		case appDomain.StateDraft, appDomain.StateCreditPassed, appDomain.StateApproved, appDomain.StateRejected:
			filter.State = &st
		default:
			return nil, apperr.InvalidInput("unknown state filter: " + in.State)
		}
	}

	apps, total, err := u.apps.List(ctx, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "could not list loan applications", err)
	}

	// One IN (...) fetch for the whole page instead of a query per row.
	ids := make([]uint64, len(apps))
	for i := range apps {
		ids[i] = apps[i].ID
	}
	assessments, err := u.assessments.ListByLoanApplicationIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "could not load credit assessments", err)
	}
	byApp := make(map[uint64]*assessDomain.CreditAssessment, len(assessments))
	for i := range assessments {
		byApp[assessments[i].LoanApplicationID] = &assessments[i]
	}

	data := make([]DTO, 0, len(apps))
	for i := range apps {
		a := &apps[i]
		data = append(data, *NewDTO(a, byApp[a.ID]))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}
	return &ListOutput{
		Data: data,
		Meta: PageMeta{
			Page:        page,
			Limit:       limit,
			Total:       total,
			TotalPages:  totalPages,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	}, nil
}
