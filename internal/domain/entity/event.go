package entity

import "time"

// Live event names
const (
	EventNewTip    = "new_tip"
	EventTipStatus = "tip_status"
)

// NewTipEvent is published once, when a tip first becomes completed
type NewTipEvent struct {
	Name         string    `json:"name"`
	Amount       string    `json:"amount"`
	Message      string    `json:"message"`
	MpesaReceipt string    `json:"mpesa_receipt"`
	Timestamp    time.Time `json:"timestamp"`
}

// TipStatusEvent is published on every terminal transition of a tip
type TipStatusEvent struct {
	ID           uint64    `json:"id"`
	Status       string    `json:"status"`
	MpesaReceipt string    `json:"mpesa_receipt,omitempty"`
	Amount       string    `json:"amount"`
	PhoneNumber  string    `json:"phone_number"`
	Timestamp    time.Time `json:"timestamp"`
	TipperName   string    `json:"tipper_name"`
	Message      string    `json:"message"`
}

// NewTipEventFrom builds the new_tip payload
func NewTipEventFrom(t *Transaction) NewTipEvent {
	return NewTipEvent{
		Name:         t.PayerName,
		Amount:       FormatAmount(t.Amount),
		Message:      t.Message,
		MpesaReceipt: t.Receipt(),
		Timestamp:    t.UpdatedAt,
	}
}

// TipStatusEventFrom builds the tip_status payload
func TipStatusEventFrom(t *Transaction) TipStatusEvent {
	return TipStatusEvent{
		ID:           t.ID,
		Status:       string(t.Status),
		MpesaReceipt: t.Receipt(),
		Amount:       FormatAmount(t.Amount),
		PhoneNumber:  t.PayerPhone,
		Timestamp:    t.UpdatedAt,
		TipperName:   t.PayerName,
		Message:      t.Message,
	}
}
