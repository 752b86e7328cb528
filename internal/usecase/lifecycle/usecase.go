// Package lifecycle implements the manual approve/reject transitions. Both
// run as a locked read-then-write on the application row and can be wrapped
// with an idempotency token so a retried call never double-applies.
package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	appDomain "loan-service/internal/domain/application"
	assessDomain "loan-service/internal/domain/assessment"
	"loan-service/internal/domain/uow"
	"loan-service/internal/idempotency"
	appuc "loan-service/internal/usecase/application"
	"loan-service/pkg/apperr"
)

const maxReasonLen = 500

type Usecase struct {
	uow   uow.UnitOfWork
	store idempotency.Store
	ttl   time.Duration
}

// NewUsecase wires the transaction helper plus the idempotency store; ttl
// bounds how long a token replays its recorded outcome.
func NewUsecase(tx uow.UnitOfWork, store idempotency.Store, ttl time.Duration) *Usecase {
	return &Usecase{uow: tx, store: store, ttl: ttl}
}

// Approve transitions CREDIT_PASSED -> APPROVED. Any other state is an
// InvalidState naming the violated rule.
func (u *Usecase) Approve(ctx context.Context, applicationID, token string) (*appuc.DTO, error) {
	return u.withIdempotency(ctx, token, applicationID, idempotency.ActionApprove, func() (*appuc.DTO, error) {
		return u.transition(ctx, applicationID, func(a *appDomain.LoanApplication) error {
			switch a.State {
			case appDomain.StateDraft:
				return apperr.InvalidState("must pass credit assessment before approval")
			case appDomain.StateApproved:
				return apperr.InvalidState("already approved")
			case appDomain.StateRejected:
				return apperr.InvalidState("cannot approve a rejected application")
			}
			a.State = appDomain.StateApproved
			return nil
		})
	})
}

// Reject transitions DRAFT or CREDIT_PASSED -> REJECTED, recording the
// supplied reason if any. Rejection is final and never reversible.
func (u *Usecase) Reject(ctx context.Context, applicationID, reason, token string) (*appuc.DTO, error) {
	if len(reason) > maxReasonLen {
		return nil, apperr.InvalidInput("rejection reason must be at most 500 characters")
	}
	return u.withIdempotency(ctx, token, applicationID, idempotency.ActionReject, func() (*appuc.DTO, error) {
		return u.transition(ctx, applicationID, func(a *appDomain.LoanApplication) error {
			switch a.State {
			case appDomain.StateApproved:
				return apperr.InvalidState("cannot reject an approved application")
			case appDomain.StateRejected:
				return apperr.InvalidState("already rejected")
			}
			a.State = appDomain.StateRejected
			if reason != "" {
				r := reason
				a.RejectionReason = &r
			}
			return nil
		})
	})
}

// transition locks the row, applies mutate, and persists, translating
// storage errors at this boundary.
func (u *Usecase) transition(ctx context.Context, applicationID string, mutate func(a *appDomain.LoanApplication) error) (*appuc.DTO, error) {
	var dto *appuc.DTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *appDomain.LoanApplication) error {
		if err := mutate(a); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		cs, err := r.Assessments.GetByLoanApplicationID(ctx, a.ID)
		if err != nil {
			if !errors.Is(err, assessDomain.ErrNotFound) {
				return err
			}
			cs = nil
		}
		dto = appuc.NewDTO(a, cs)
		return nil
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, ae
		}
		if errors.Is(err, appDomain.ErrNotFound) {
			return nil, apperr.NotFound("loan application not found")
		}
		if errors.Is(err, appDomain.ErrTerminalState) {
			// Trigger veto: another writer moved the row to a final state.
			return nil, apperr.InvalidState("loan application is already in a final state")
		}
		return nil, apperr.Wrap(apperr.KindUnavailable, "could not update loan application", err)
	}
	return dto, nil
}

// withIdempotency consults the token cache before running fn and records the
// outcome after a success. Only successes are cached, so a client may retry
// a failed request with the same token. Cache errors degrade to plain
// execution: the row lock and the final-state trigger keep a duplicate
// attempt from corrupting state.
func (u *Usecase) withIdempotency(ctx context.Context, token, applicationID string, action idempotency.Action, fn func() (*appuc.DTO, error)) (*appuc.DTO, error) {
	if token == "" || u.store == nil {
		return fn()
	}

	entry, err := u.store.Get(ctx, token)
	if err != nil {
		log.Printf("idempotency: get %q failed, proceeding without cache: %v", token, err)
		entry = nil
	}
	if entry != nil {
		if !entry.Matches(applicationID, action) {
			return nil, apperr.Conflict("idempotency key already used for a different request")
		}
		var dto appuc.DTO
		if err := json.Unmarshal(entry.Snapshot, &dto); err == nil {
			return &dto, nil
		}
		log.Printf("idempotency: unreadable snapshot for %q, re-executing", token)
	}

	dto, err := fn()
	if err != nil {
		return nil, err
	}

	snapshot, err := json.Marshal(dto)
	if err == nil {
		e := &idempotency.Entry{ApplicationID: applicationID, Action: action, Snapshot: snapshot}
		if err := u.store.Set(ctx, token, e, u.ttl); err != nil {
			log.Printf("idempotency: set %q failed: %v", token, err)
		}
	}
	return dto, nil
}
