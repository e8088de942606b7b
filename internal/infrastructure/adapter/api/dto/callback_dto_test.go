package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushCallbackEnvelope_ToDomain(t *testing.T) {
	raw := `{"Body":{"stkCallback":{
		"MerchantRequestID":"m-1","CheckoutRequestID":" abc123 ","ResultCode":0,"ResultDesc":"ok",
		"CallbackMetadata":{"Item":[
			{"Name":"Amount","Value":50.5},
			{"Name":"MpesaReceiptNumber","Value":"XYZ1"},
			{"Name":"TransactionDate","Value":20250301101500},
			{"Name":"PhoneNumber","Value":254712345678}]}}}}`

	var env PushCallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	cb := env.ToDomain()

	assert.Equal(t, "abc123", cb.CheckoutRequestID)
	assert.True(t, cb.Succeeded())
	assert.Equal(t, "XYZ1", cb.Receipt)
	assert.Equal(t, "254712345678", cb.Phone)
	assert.Equal(t, "20250301101500", cb.TransactionDate)
	assert.Equal(t, "50.5", cb.Amount)
}

func TestPushCallbackEnvelope_FailureWithoutMetadata(t *testing.T) {
	var env PushCallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"abc","ResultCode":"1032","ResultDesc":"Request cancelled by user"}}}`), &env))
	cb := env.ToDomain()

	assert.Equal(t, 1032, cb.ResultCode)
	assert.False(t, cb.Succeeded())
	assert.Empty(t, cb.Receipt)
}

func TestPushCallbackEnvelope_MissingResultCodeIsNotSuccess(t *testing.T) {
	var env PushCallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"Body":{"stkCallback":{"CheckoutRequestID":"abc"}}}`), &env))

	assert.False(t, env.ToDomain().Succeeded())
}

func TestPayoutResultEnvelope_ReceiptFallsBackToTransactionID(t *testing.T) {
	var env PayoutResultEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"Result":{"ResultCode":2001,"ResultDesc":"The initiator information is invalid.","ConversationID":"AG_1","TransactionID":"TID9"}}`), &env))
	res := env.ToDomain()

	assert.Equal(t, "AG_1", res.ConversationID)
	assert.Equal(t, 2001, res.ResultCode)
	assert.Equal(t, "TID9", res.Receipt)
	assert.False(t, res.Succeeded())
}

func TestPayoutTimeoutEnvelope_CorrelationID(t *testing.T) {
	var nested PayoutTimeoutEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"Result":{"ConversationID":"AG_2"}}`), &nested))
	assert.Equal(t, "AG_2", nested.CorrelationID())

	var flat PayoutTimeoutEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"ConversationID":"AG_3"}`), &flat))
	assert.Equal(t, "AG_3", flat.CorrelationID())
}
