package application

import (
	"time"

	appDomain "loan-service/internal/domain/application"
	assessDomain "loan-service/internal/domain/assessment"
)

type CreateInput struct {
	ApplicantName string `json:"applicant_name"`
	// Minor currency units
	MonthlyIncome       int64 `json:"monthly_income"`
	RequestedLoanAmount int64 `json:"requested_loan_amount"`
	TenorInMonths       int   `json:"tenor_in_months"`
}

type ListInput struct {
	State string
	Page  int
	Limit int
}

// DTO is the application shape every operation returns, assessment included
// once one exists.
type DTO struct {
	ApplicationID       string         `json:"application_id"`
	ApplicantName       string         `json:"applicant_name"`
	MonthlyIncome       int64          `json:"monthly_income"`
	RequestedLoanAmount int64          `json:"requested_loan_amount"`
	TenorInMonths       int            `json:"tenor_in_months"`
	State               string         `json:"state"`
	RejectionReason     *string        `json:"rejection_reason,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	CreditAssessment    *AssessmentDTO `json:"credit_assessment,omitempty"`
}

type AssessmentDTO struct {
	AssessmentID       string    `json:"assessment_id"`
	Result             string    `json:"result"`
	MonthlyInstallment int64     `json:"monthly_installment"`
	RejectionReason    *string   `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type PageMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

type ListOutput struct {
	Data []DTO    `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewDTO maps the domain entities to the response shape; cs may be nil.
func NewDTO(a *appDomain.LoanApplication, cs *assessDomain.CreditAssessment) *DTO {
	d := &DTO{
		ApplicationID:       a.ApplicationID,
		ApplicantName:       a.ApplicantName,
		MonthlyIncome:       a.MonthlyIncome,
		RequestedLoanAmount: a.RequestedLoanAmount,
		TenorInMonths:       a.TenorInMonths,
		State:               string(a.State),
		RejectionReason:     a.RejectionReason,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if cs != nil {
		d.CreditAssessment = &AssessmentDTO{
			AssessmentID:       cs.AssessmentID,
			Result:             string(cs.Result),
			MonthlyInstallment: cs.MonthlyInstallment,
			RejectionReason:    cs.RejectionReason,
			CreatedAt:          cs.CreatedAt,
		}
	}
	return d
}
