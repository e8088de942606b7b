package usecase

import "context"

// CallbackOutcome describes what an inbound webhook did
type CallbackOutcome string

// CallbackOutcome values
const (
	OutcomeApplied   CallbackOutcome = "applied"
	OutcomeDuplicate CallbackOutcome = "duplicate"
	OutcomeNotFound  CallbackOutcome = "not_found"
	OutcomeInvalid   CallbackOutcome = "invalid"
	OutcomeError     CallbackOutcome = "error"
)

// PushCallback is the decoded push-payment webhook
type PushCallback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Receipt           string
	Phone             string
	TransactionDate   string
	Amount            string
}

// Succeeded reports whether the payer approved the payment
func (c PushCallback) Succeeded() bool {
	return c.ResultCode == 0
}

// PayoutResult is the decoded payout result webhook
type PayoutResult struct {
	ConversationID           string
	OriginatorConversationID string
	ResultCode               int
	ResultDesc               string
	Receipt                  string
}

// Succeeded reports whether the payout reached the recipient
func (r PayoutResult) Succeeded() bool {
	return r.ResultCode == 0
}

// CallbackUseCase correlates gateway webhooks with pending records.
// Callers acknowledge the gateway regardless of the returned outcome or error.
type CallbackUseCase interface {
	HandlePushCallback(ctx context.Context, cb PushCallback) (CallbackOutcome, error)
	HandlePayoutResult(ctx context.Context, res PayoutResult) (CallbackOutcome, error)
	HandlePayoutTimeout(ctx context.Context, conversationID string) (CallbackOutcome, error)
}
