package mpesa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/metrics"
	tp "github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/time"
)

// callbackSink records webhook bodies posted by the sandbox
func callbackSink(t *testing.T) (*httptest.Server, <-chan map[string]any) {
	t.Helper()
	got := make(chan map[string]any, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		body["_path"] = r.URL.Path
		got <- body
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func newSandboxClient(t *testing.T, callbackBase string, simulatePush bool) (*Client, *SandboxTransport) {
	t.Helper()
	log := logger.NewNoopLogger()
	clock := tp.NewRealTimeProvider()
	sandbox := NewSandboxTransport(2, time.Second, simulatePush, log, clock)
	t.Cleanup(sandbox.Close)

	cfg := testConfig("")
	cfg.PushCallbackURL = callbackBase + PushCallbackPath
	cfg.PayoutResultURL = callbackBase + PayoutResultPath
	cfg.PayoutTimeoutURL = callbackBase + PayoutTimeoutPath
	return NewClient(cfg, sandbox, log, metrics.NewNoopRecorder(), clock), sandbox
}

func waitCallback(t *testing.T, got <-chan map[string]any) map[string]any {
	t.Helper()
	select {
	case body := <-got:
		return body
	case <-time.After(3 * time.Second):
		t.Fatal("callback was not delivered")
		return nil
	}
}

func TestSandbox_PushAcceptedWithoutCallback(t *testing.T) {
	srv, got := callbackSink(t)
	c, _ := newSandboxClient(t, srv.URL, false)

	ack, err := c.PushPayment(context.Background(), gateway.PushRequest{Phone: "254712345678", Amount: 50})

	require.NoError(t, err)
	assert.True(t, ack.Accepted())
	assert.True(t, strings.HasPrefix(ack.CheckoutRequestID, "ws_CO_"))

	select {
	case <-got:
		t.Fatal("push callback delivered while push simulation is off")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSandbox_PushDeliversSuccessCallback(t *testing.T) {
	srv, got := callbackSink(t)
	c, _ := newSandboxClient(t, srv.URL, true)

	ack, err := c.PushPayment(context.Background(), gateway.PushRequest{Phone: "254712345678", Amount: 50})
	require.NoError(t, err)

	body := waitCallback(t, got)
	assert.Equal(t, PushCallbackPath, body["_path"])
	stk := body["Body"].(map[string]any)["stkCallback"].(map[string]any)
	assert.Equal(t, ack.CheckoutRequestID, stk["CheckoutRequestID"])
	assert.Equal(t, float64(0), stk["ResultCode"])
}

func TestSandbox_PayoutDeliversResult(t *testing.T) {
	srv, got := callbackSink(t)
	c, _ := newSandboxClient(t, srv.URL, false)

	ack, err := c.Payout(context.Background(), gateway.PayoutRequest{Phone: "254712345678", Amount: 75})
	require.NoError(t, err)
	require.True(t, ack.Accepted())
	assert.True(t, strings.HasPrefix(ack.ConversationID, "AG_"))

	body := waitCallback(t, got)
	assert.Equal(t, PayoutResultPath, body["_path"])
	result := body["Result"].(map[string]any)
	assert.Equal(t, ack.ConversationID, result["ConversationID"])
	assert.Equal(t, "TEST-"+ack.ConversationID[:8], result["TransactionID"])
}

func TestSandbox_QueryReportsSuccess(t *testing.T) {
	c, _ := newSandboxClient(t, "http://127.0.0.1:1", false)

	res, err := c.QueryStatus(context.Background(), "ws_CO_abc")

	require.NoError(t, err)
	assert.Equal(t, "0", res.ResultCode)
	assert.Equal(t, "ws_CO_abc", res.CheckoutRequestID)
}

func TestSandbox_CloseIsIdempotentAndStopsEnqueue(t *testing.T) {
	_, sandbox := newSandboxClient(t, "http://127.0.0.1:1", true)

	sandbox.Close()
	sandbox.Close()

	assert.NotPanics(t, func() {
		sandbox.enqueue(callbackDelivery{kind: "push", url: "http://127.0.0.1:1"})
	})
}
