package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Creator is the owner of tips and withdrawals. Account management lives elsewhere;
// this service only reads it.
type Creator struct {
	ID          uint64
	Name        string
	PhoneNumber string
	CreatedAt   time.Time
}

// CreatorChannel returns the live-event room key for a creator
func CreatorChannel(creatorID uint64) string {
	return fmt.Sprintf("creator_%d", creatorID)
}

// BalanceTotals are the raw aggregates a balance is derived from
type BalanceTotals struct {
	CompletedTips        decimal.Decimal // completed, not yet swept
	PendingTips          decimal.Decimal
	CompletedWithdrawals decimal.Decimal
	PendingWithdrawals   decimal.Decimal
}

// Balance is a derived, never stored, view of a creator's funds
type Balance struct {
	CreatorID uint64
	Available decimal.Decimal
	Pending   decimal.Decimal
}

// NewBalance applies the reservation rule: pending withdrawals hold funds exactly like
// completed ones so two concurrent payouts cannot spend the same money.
func NewBalance(creatorID uint64, totals BalanceTotals) Balance {
	return Balance{
		CreatorID: creatorID,
		Available: totals.CompletedTips.Sub(totals.CompletedWithdrawals).Sub(totals.PendingWithdrawals),
		Pending:   totals.PendingTips,
	}
}

// Covers reports whether amount can be withdrawn
func (b Balance) Covers(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(b.Available)
}
