package gateway

import "context"

// ResponseCodeAccepted is the synchronous response code of an accepted request
const ResponseCodeAccepted = "0"

// PushRequest asks the payer's handset to approve a payment
type PushRequest struct {
	Phone            string // normalised 2547XXXXXXXX
	Amount           int64  // whole currency units
	CallbackURL      string // empty means the configured default
	AccountReference string
	Description      string
}

// PushAck is the synchronous answer to a push request
type PushAck struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorCode           string `json:"errorCode,omitempty"`
	ErrorMessage        string `json:"errorMessage,omitempty"`
}

// Accepted reports whether the gateway took the request and issued a correlation id
func (a *PushAck) Accepted() bool {
	return a != nil && a.ResponseCode == ResponseCodeAccepted && a.CheckoutRequestID != ""
}

// Reason is a loggable description of a rejection
func (a *PushAck) Reason() string {
	if a == nil {
		return ""
	}
	if a.ErrorMessage != "" {
		return a.ErrorMessage
	}
	return a.ResponseDescription
}

// StatusResult is the answer to a push status query
type StatusResult struct {
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
}

// PayoutRequest transfers funds from the business account to a customer
type PayoutRequest struct {
	Phone   string
	Amount  int64
	Remarks string
}

// PayoutAck is the synchronous answer to a payout request
type PayoutAck struct {
	ConversationID           string `json:"ConversationID"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
	ErrorCode                string `json:"errorCode,omitempty"`
	ErrorMessage             string `json:"errorMessage,omitempty"`
}

// Accepted reports whether the gateway took the payout and issued a conversation id
func (a *PayoutAck) Accepted() bool {
	return a != nil && a.ResponseCode == ResponseCodeAccepted && a.ConversationID != ""
}

// Reason is a loggable description of a rejection
func (a *PayoutAck) Reason() string {
	if a == nil {
		return ""
	}
	if a.ErrorMessage != "" {
		return a.ErrorMessage
	}
	return a.ResponseDescription
}

// Client is the outbound side of the mobile-money gateway.
// Implementations hide authentication, signing and retry.
type Client interface {
	// PushPayment sends a push-payment request.
	//
	// A well-formed rejection is returned as an ack with a non-zero ResponseCode and a nil error.
	// Possible errors: ErrGatewayAuth, ErrGatewayUnreachable, ErrInvalidGatewayResponse
	PushPayment(ctx context.Context, req PushRequest) (*PushAck, error)

	// QueryStatus polls the outcome of an earlier push request
	QueryStatus(ctx context.Context, checkoutRequestID string) (*StatusResult, error)

	// Payout sends a business-to-customer payment.
	//
	// Possible errors: ErrMissingConfiguration, ErrGatewayAuth, ErrGatewayUnreachable, ErrInvalidGatewayResponse
	Payout(ctx context.Context, req PayoutRequest) (*PayoutAck, error)
}
