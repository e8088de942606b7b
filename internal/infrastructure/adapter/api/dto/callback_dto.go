package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
)

// CallbackAck is the only answer the gateway ever gets from a webhook
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// Accepted is the acknowledgement body of every webhook
var Accepted = CallbackAck{ResultCode: 0, ResultDesc: "Accepted"}

// PushCallbackEnvelope is the STK push webhook body
type PushCallbackEnvelope struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string       `json:"MerchantRequestID"`
			CheckoutRequestID string       `json:"CheckoutRequestID"`
			ResultCode        json.Number  `json:"ResultCode"`
			ResultDesc        string       `json:"ResultDesc"`
			CallbackMetadata  *metadataSet `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type metadataSet struct {
	Item []metadataItem `json:"Item"`
}

type metadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// ToDomain flattens the envelope. A missing ResultCode reads as -1 so it never counts as success.
func (e *PushCallbackEnvelope) ToDomain() usecase.PushCallback {
	stk := e.Body.StkCallback
	cb := usecase.PushCallback{
		MerchantRequestID: stk.MerchantRequestID,
		CheckoutRequestID: strings.TrimSpace(stk.CheckoutRequestID),
		ResultCode:        resultCode(stk.ResultCode),
		ResultDesc:        stk.ResultDesc,
	}
	if stk.CallbackMetadata == nil {
		return cb
	}

	for _, item := range stk.CallbackMetadata.Item {
		switch item.Name {
		case "MpesaReceiptNumber":
			cb.Receipt = scalar(item.Value)
		case "PhoneNumber":
			cb.Phone = scalar(item.Value)
		case "TransactionDate":
			cb.TransactionDate = scalar(item.Value)
		case "Amount":
			cb.Amount = scalar(item.Value)
		}
	}
	return cb
}

// PayoutResultEnvelope is the B2C result webhook body
type PayoutResultEnvelope struct {
	Result struct {
		ResultType               json.Number `json:"ResultType"`
		ResultCode               json.Number `json:"ResultCode"`
		ResultDesc               string      `json:"ResultDesc"`
		OriginatorConversationID string      `json:"OriginatorConversationID"`
		ConversationID           string      `json:"ConversationID"`
		TransactionID            string      `json:"TransactionID"`
		ResultParameters         *struct {
			ResultParameter []resultParameter `json:"ResultParameter"`
		} `json:"ResultParameters"`
	} `json:"Result"`
}

type resultParameter struct {
	Key   string `json:"Key"`
	Value any    `json:"Value"`
}

// ToDomain flattens the envelope; the receipt prefers TransactionReceipt over TransactionID
func (e *PayoutResultEnvelope) ToDomain() usecase.PayoutResult {
	r := e.Result
	res := usecase.PayoutResult{
		ConversationID:           strings.TrimSpace(r.ConversationID),
		OriginatorConversationID: r.OriginatorConversationID,
		ResultCode:               resultCode(r.ResultCode),
		ResultDesc:               r.ResultDesc,
		Receipt:                  r.TransactionID,
	}
	if r.ResultParameters != nil {
		for _, p := range r.ResultParameters.ResultParameter {
			if p.Key == "TransactionReceipt" {
				if v := scalar(p.Value); v != "" {
					res.Receipt = v
				}
			}
		}
	}
	return res
}

// PayoutTimeoutEnvelope is the B2C queue timeout webhook body
type PayoutTimeoutEnvelope struct {
	Result struct {
		ConversationID           string `json:"ConversationID"`
		OriginatorConversationID string `json:"OriginatorConversationID"`
	} `json:"Result"`
	ConversationID string `json:"ConversationID"`
}

// CorrelationID returns the conversation id wherever the gateway put it
func (e *PayoutTimeoutEnvelope) CorrelationID() string {
	if id := strings.TrimSpace(e.Result.ConversationID); id != "" {
		return id
	}
	return strings.TrimSpace(e.ConversationID)
}

func resultCode(n json.Number) int {
	if n == "" {
		return -1
	}
	v, err := strconv.Atoi(strings.TrimSpace(n.String()))
	if err != nil {
		return -1
	}
	return v
}

// scalar renders a metadata value; numbers keep their integer form
func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
