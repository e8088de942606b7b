package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
)

// TransactionStatus defines possible status values for a tip transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusTimeout   TransactionStatus = "timeout"
)

// Display metadata limits
const (
	MaxPayerNameLength = 50
	MaxMessageLength   = 200
	DefaultPayerName   = "Anonymous"
)

// IsTerminal reports whether no further transition is allowed from s
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusTimeout
}

// Transaction is an inbound tip paid to a creator through a push payment
type Transaction struct {
	ID               uint64
	CreatorID        uint64
	Amount           decimal.Decimal
	Status           TransactionStatus
	GatewayReceipt   *string // set iff Status is completed
	GatewayRequestID *string // CheckoutRequestID; set once on gateway acceptance
	PayerPhone       string
	PayerName        string
	Message          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Withdrawn        bool
	WithdrawalID     *uint64
}

// NewTransaction builds a PENDING tip. The phone must already be normalised.
func NewTransaction(
	creatorID uint64,
	amount decimal.Decimal,
	payerPhone string,
	payerName string,
	message string,
	now time.Time,
) (*Transaction, error) {
	if creatorID == 0 {
		return nil, errs.ErrInvalidCreatorID
	}
	if err := ValidateScale(amount); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	payerName = strings.TrimSpace(payerName)
	if payerName == "" {
		payerName = DefaultPayerName
	}
	if utf8.RuneCountInString(payerName) > MaxPayerNameLength {
		return nil, fmt.Errorf("%w: payer name longer than %d characters", errs.ErrInvalidRequest, MaxPayerNameLength)
	}

	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, fmt.Errorf("%w: message longer than %d characters", errs.ErrInvalidRequest, MaxMessageLength)
	}

	return &Transaction{
		CreatorID:  creatorID,
		Amount:     amount,
		Status:     StatusPending,
		PayerPhone: payerPhone,
		PayerName:  payerName,
		Message:    message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// BindRequestID stores the gateway correlation id. Re-binding the same id is a no-op,
// a different id is rejected because the correlation key must never change.
func (t *Transaction) BindRequestID(requestID string, now time.Time) (bool, error) {
	if requestID == "" {
		return false, fmt.Errorf("%w: empty gateway request id", errs.ErrInvalidRequest)
	}
	if t.GatewayRequestID != nil {
		if *t.GatewayRequestID == requestID {
			return false, nil
		}
		return false, errs.NewTransitionError("transaction", t.ID, string(t.Status), string(t.Status),
			fmt.Sprintf("bound to %s, got %s", *t.GatewayRequestID, requestID), errs.ErrCorrelationConflict)
	}

	t.GatewayRequestID = &requestID
	t.UpdatedAt = now
	return true, nil
}

// Complete moves a PENDING tip to COMPLETED. It returns false and leaves the record
// untouched when the tip already left PENDING.
func (t *Transaction) Complete(receipt, phone string, now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}

	t.Status = StatusCompleted
	t.GatewayReceipt = &receipt
	if phone != "" {
		t.PayerPhone = phone
	}
	t.UpdatedAt = now
	return true
}

// Fail moves a PENDING tip to FAILED and records the reason in the message field
func (t *Transaction) Fail(reason string, now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}

	t.Status = StatusFailed
	if t.Message == "" {
		t.Message = "Failed: " + reason
	} else {
		t.Message = fmt.Sprintf("%s (Failed: %s)", t.Message, reason)
	}
	t.UpdatedAt = now
	return true
}

// Timeout moves a PENDING tip to TIMEOUT
func (t *Transaction) Timeout(now time.Time) bool {
	if t.Status != StatusPending {
		return false
	}

	t.Status = StatusTimeout
	t.UpdatedAt = now
	return true
}

// Receipt returns the gateway receipt or an empty string
func (t *Transaction) Receipt() string {
	if t.GatewayReceipt == nil {
		return ""
	}
	return *t.GatewayReceipt
}

// RequestID returns the gateway request id or an empty string
func (t *Transaction) RequestID() string {
	if t.GatewayRequestID == nil {
		return ""
	}
	return *t.GatewayRequestID
}

// Clone returns a deep copy so callers can compute a transition without mutating shared state
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.GatewayReceipt != nil {
		r := *t.GatewayReceipt
		c.GatewayReceipt = &r
	}
	if t.GatewayRequestID != nil {
		id := *t.GatewayRequestID
		c.GatewayRequestID = &id
	}
	if t.WithdrawalID != nil {
		w := *t.WithdrawalID
		c.WithdrawalID = &w
	}
	return &c
}
