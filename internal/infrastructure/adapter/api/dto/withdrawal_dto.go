package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
)

// CreateWithdrawalRequest is the body of POST /creators/:creatorId/withdrawals.
// An empty phone number pays out to the creator's registered number.
type CreateWithdrawalRequest struct {
	Amount      json.Number `json:"amount" binding:"required"`
	PhoneNumber string      `json:"phone_number"`
}

// WithdrawalResponse is the public view of a payout
type WithdrawalResponse struct {
	ID             uint64     `json:"id"`
	CreatorID      uint64     `json:"creator_id"`
	Amount         string     `json:"amount"`
	PhoneNumber    string     `json:"phone_number"`
	Status         string     `json:"status"`
	MpesaReceipt   string     `json:"mpesa_receipt,omitempty"`
	ConversationID string     `json:"conversation_id,omitempty"`
	FailureReason  string     `json:"failure_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// WithdrawalListResponse wraps a creator's recent payouts
type WithdrawalListResponse struct {
	CreatorID   uint64               `json:"creator_id"`
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
}

// NewWithdrawalResponse maps a payout to its public view
func NewWithdrawalResponse(w *entity.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:             w.ID,
		CreatorID:      w.CreatorID,
		Amount:         entity.FormatAmount(w.Amount),
		PhoneNumber:    w.PhoneNumber,
		Status:         string(w.Status),
		MpesaReceipt:   w.Receipt(),
		ConversationID: w.RequestID(),
		FailureReason:  w.Reason(),
		CreatedAt:      w.CreatedAt,
		CompletedAt:    w.CompletedAt,
	}
}

// NewWithdrawalListResponse maps a page of payouts
func NewWithdrawalListResponse(creatorID uint64, ws []*entity.Withdrawal) WithdrawalListResponse {
	out := make([]WithdrawalResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, NewWithdrawalResponse(w))
	}
	return WithdrawalListResponse{CreatorID: creatorID, Withdrawals: out}
}
