package assessment

import (
	"errors"
	"time"
)

type Result string

const (
	ResultPass Result = "PASS"
	ResultFail Result = "FAIL"
)

// FailureReason is the fixed reason recorded on a failed assessment.
const FailureReason = "Monthly income is less than 3x the monthly installment"

var (
	ErrNotFound = errors.New("credit assessment not found")
	// ErrDuplicate maps the unique-key violation on loan_application_id: a
	// concurrent assessment already inserted its row for the same application.
	ErrDuplicate = errors.New("credit assessment already exists for application")
)

// A CreditAssessment is immutable once inserted. The unique index on
// loan_application_id is the authoritative guard against two concurrent
// assessments of the same application.
type CreditAssessment struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	AssessmentID string `gorm:"column:assessment_id;type:char(32);not null;uniqueIndex:ux_credit_assessments_assessment_id" json:"assessment_id"`
	// FK to loan_applications.id (numeric); unique: at most one assessment per application
	LoanApplicationID uint64 `gorm:"column:loan_application_id;not null;uniqueIndex:ux_credit_assessments_loan_application" json:"-"`
	Result            Result `gorm:"column:result;type:enum('PASS','FAIL');not null" json:"result"`
	// Minor currency units, floor(requestedLoanAmount / tenorInMonths)
	MonthlyInstallment int64     `gorm:"column:monthly_installment;not null" json:"monthly_installment"`
	RejectionReason    *string   `gorm:"column:rejection_reason;size:500" json:"rejection_reason,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CreditAssessment) TableName() string { return "credit_assessments" }
