package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus defines possible status values for a payout
type WithdrawalStatus string

// WithdrawalStatus constants
const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalFailed    WithdrawalStatus = "failed"
)

// IsTerminal reports whether the payout has finished
func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalCompleted || s == WithdrawalFailed
}

// Withdrawal is an outbound payout of a creator's available balance
type Withdrawal struct {
	ID               uint64
	CreatorID        uint64
	Amount           decimal.Decimal
	PhoneNumber      string
	Status           WithdrawalStatus
	GatewayReceipt   *string
	GatewayRequestID *string // ConversationID; sole key for result and timeout callbacks
	FailureReason    *string
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// NewWithdrawal builds a PENDING payout. Balance checks happen in the use case under a lock.
func NewWithdrawal(creatorID uint64, amount decimal.Decimal, phone string, now time.Time) (*Withdrawal, error) {
	if creatorID == 0 {
		return nil, errs.ErrInvalidCreatorID
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	if err := ValidateScale(amount); err != nil {
		return nil, err
	}

	return &Withdrawal{
		CreatorID:   creatorID,
		Amount:      amount,
		PhoneNumber: phone,
		Status:      WithdrawalPending,
		CreatedAt:   now,
	}, nil
}

// BindRequestID stores the gateway ConversationID
func (w *Withdrawal) BindRequestID(requestID string) (bool, error) {
	if requestID == "" {
		return false, fmt.Errorf("%w: empty gateway request id", errs.ErrInvalidRequest)
	}
	if w.GatewayRequestID != nil {
		if *w.GatewayRequestID == requestID {
			return false, nil
		}
		return false, errs.NewTransitionError("withdrawal", w.ID, string(w.Status), string(w.Status),
			fmt.Sprintf("bound to %s, got %s", *w.GatewayRequestID, requestID), errs.ErrCorrelationConflict)
	}
	w.GatewayRequestID = &requestID
	return true, nil
}

// Complete marks the payout as paid out. A terminal payout is refused with
// ErrAlreadyProcessed unless allowReprocess is set.
func (w *Withdrawal) Complete(receipt string, now time.Time, allowReprocess bool) error {
	if err := w.guard(WithdrawalCompleted, allowReprocess); err != nil {
		return err
	}

	w.Status = WithdrawalCompleted
	if receipt != "" {
		w.GatewayReceipt = &receipt
	}
	w.FailureReason = nil
	w.CompletedAt = &now
	return nil
}

// Fail marks the payout as failed with the given reason
func (w *Withdrawal) Fail(reason string, now time.Time, allowReprocess bool) error {
	if err := w.guard(WithdrawalFailed, allowReprocess); err != nil {
		return err
	}

	w.Status = WithdrawalFailed
	w.FailureReason = &reason
	w.CompletedAt = &now
	return nil
}

func (w *Withdrawal) guard(to WithdrawalStatus, allowReprocess bool) error {
	if w.Status == WithdrawalPending || allowReprocess {
		return nil
	}
	return errs.NewTransitionError("withdrawal", w.ID, string(w.Status), string(to), "payout already finished", errs.ErrAlreadyProcessed)
}

// Receipt returns the gateway receipt or an empty string
func (w *Withdrawal) Receipt() string {
	if w.GatewayReceipt == nil {
		return ""
	}
	return *w.GatewayReceipt
}

// RequestID returns the gateway ConversationID or an empty string
func (w *Withdrawal) RequestID() string {
	if w.GatewayRequestID == nil {
		return ""
	}
	return *w.GatewayRequestID
}

// Reason returns the failure reason or an empty string
func (w *Withdrawal) Reason() string {
	if w.FailureReason == nil {
		return ""
	}
	return *w.FailureReason
}
