package application

import (
	"errors"
	"time"
)

type State string

const (
	StateDraft        State = "DRAFT"
	StateCreditPassed State = "CREDIT_PASSED"
	StateApproved     State = "APPROVED"
	StateRejected     State = "REJECTED"
)

// Terminal reports whether the state admits no further transitions.
// APPROVED and REJECTED rows are immutable; the database enforces the same
// rule with a BEFORE UPDATE trigger as a second line of defense.
func (s State) Terminal() bool { return s == StateApproved || s == StateRejected }

var (
	ErrNotFound = errors.New("loan application not found")
	// ErrTerminalState is returned by the repository when the database trigger
	// vetoes an update to a row already in a terminal state.
	ErrTerminalState = errors.New("loan application is in a final state")
)

type LoanApplication struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApplicationID string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_loan_applications_application_id" json:"application_id"`
	ApplicantName string `gorm:"column:applicant_name;size:255;not null" json:"applicant_name"`
	// Amounts are minor currency units (e.g. cents); never floating point.
	MonthlyIncome       int64 `gorm:"column:monthly_income;not null" json:"monthly_income"`
	RequestedLoanAmount int64 `gorm:"column:requested_loan_amount;not null" json:"requested_loan_amount"`
	TenorInMonths       int   `gorm:"column:tenor_in_months;not null" json:"tenor_in_months"`
	State               State `gorm:"column:state;type:enum('DRAFT','CREDIT_PASSED','APPROVED','REJECTED');default:'DRAFT';index:idx_loan_applications_state" json:"state"`
	// Set only by manual rejection; assessment failures keep their reason on
	// the CreditAssessment row instead.
	RejectionReason *string   `gorm:"column:rejection_reason;size:500" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }
