package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
)

// CreateTipRequest is the body of POST /payments/tips.
// Amount accepts both 50 and "50".
type CreateTipRequest struct {
	CreatorID   uint64      `json:"creator_id" binding:"required"`
	Amount      json.Number `json:"amount" binding:"required"`
	PhoneNumber string      `json:"phone_number" binding:"required"`
	TipperName  string      `json:"tipper_name"`
	Message     string      `json:"message"`
}

// TransactionResponse is the public view of a tip
type TransactionResponse struct {
	ID                uint64    `json:"id"`
	CreatorID         uint64    `json:"creator_id"`
	Amount            string    `json:"amount"`
	Status            string    `json:"status"`
	PhoneNumber       string    `json:"phone_number"`
	TipperName        string    `json:"tipper_name"`
	Message           string    `json:"message,omitempty"`
	MpesaReceipt      string    `json:"mpesa_receipt,omitempty"`
	CheckoutRequestID string    `json:"checkout_request_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// InitiateTipResponse answers an accepted push request
type InitiateTipResponse struct {
	Status      string              `json:"status"`
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionListResponse wraps a creator's recent tips
type TransactionListResponse struct {
	CreatorID    uint64                `json:"creator_id"`
	Transactions []TransactionResponse `json:"transactions"`
}

// NewTransactionResponse maps a tip to its public view
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		CreatorID:         t.CreatorID,
		Amount:            entity.FormatAmount(t.Amount),
		Status:            string(t.Status),
		PhoneNumber:       t.PayerPhone,
		TipperName:        t.PayerName,
		Message:           t.Message,
		MpesaReceipt:      t.Receipt(),
		CheckoutRequestID: t.RequestID(),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// NewTransactionListResponse maps a page of tips
func NewTransactionListResponse(creatorID uint64, txs []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, NewTransactionResponse(t))
	}
	return TransactionListResponse{CreatorID: creatorID, Transactions: out}
}
