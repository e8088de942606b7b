package mpesa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
)

const sandboxQueueSize = 64

type callbackDelivery struct {
	kind string
	url  string
	body any
}

// SandboxTransport answers gateway requests locally and delivers synthetic callbacks
// back to this service through a bounded worker pool.
type SandboxTransport struct {
	http         *resty.Client
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	simulatePush bool

	jobs   chan callbackDelivery
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewSandboxTransport starts workers delivering callbacks with the given timeout
func NewSandboxTransport(workers int, callbackTimeout time.Duration, simulatePush bool, logger coreport.Logger, timeProvider coreport.TimeProvider) *SandboxTransport {
	if workers < 1 {
		workers = 1
	}

	t := &SandboxTransport{
		http:         resty.New().SetTimeout(callbackTimeout).SetHeader("Content-Type", "application/json"),
		logger:       logger,
		timeProvider: timeProvider,
		simulatePush: simulatePush,
		jobs:         make(chan callbackDelivery, sandboxQueueSize),
	}

	for i := 0; i < workers; i++ {
		t.wg.Add(1)
		go t.worker()
	}

	logger.Warn("Gateway sandbox transport active; no real payments will be made", map[string]any{
		"workers":       workers,
		"simulate_push": simulatePush,
	})
	return t
}

// Authenticate always succeeds
func (t *SandboxTransport) Authenticate(context.Context, string, string) (*Response, error) {
	return jsonResponse(map[string]any{"access_token": "sandbox-token", "expires_in": "3599"})
}

// Post fabricates an accepted answer for each gateway operation
func (t *SandboxTransport) Post(_ context.Context, path, _ string, payload any) (*Response, error) {
	switch p := payload.(type) {
	case *pushPayload:
		checkoutID := "ws_CO_" + compactUUID()
		merchantID := compactUUID()[:12]
		if t.simulatePush && p.CallBackURL != "" {
			t.enqueue(callbackDelivery{kind: "push", url: p.CallBackURL, body: t.pushCallback(merchantID, checkoutID, p)})
		}
		return jsonResponse(map[string]any{
			"MerchantRequestID":   merchantID,
			"CheckoutRequestID":   checkoutID,
			"ResponseCode":        "0",
			"ResponseDescription": "Success. Request accepted for processing",
			"CustomerMessage":     "Success. Request accepted for processing",
		})

	case *queryPayload:
		return jsonResponse(map[string]any{
			"CheckoutRequestID":   p.CheckoutRequestID,
			"ResponseCode":        "0",
			"ResponseDescription": "The service request has been accepted successsfully",
			"ResultCode":          "0",
			"ResultDesc":          "The service request is processed successfully.",
		})

	case *payoutPayload:
		conversationID := "AG_" + compactUUID()
		if p.ResultURL != "" {
			t.enqueue(callbackDelivery{kind: "payout_result", url: p.ResultURL, body: t.payoutResult(conversationID, p)})
		}
		return jsonResponse(map[string]any{
			"ConversationID":           conversationID,
			"OriginatorConversationID": uuid.NewString(),
			"ResponseCode":             "0",
			"ResponseDescription":      "Accept the service request successfully.",
		})
	}

	return nil, fmt.Errorf("sandbox: unsupported request to %s", path)
}

func (t *SandboxTransport) pushCallback(merchantID, checkoutID string, p *pushPayload) map[string]any {
	receipt := strings.ToUpper("TST" + compactUUID()[:7])
	return map[string]any{
		"Body": map[string]any{
			"stkCallback": map[string]any{
				"MerchantRequestID": merchantID,
				"CheckoutRequestID": checkoutID,
				"ResultCode":        0,
				"ResultDesc":        "The service request is processed successfully.",
				"CallbackMetadata": map[string]any{
					"Item": []map[string]any{
						{"Name": "Amount", "Value": p.Amount},
						{"Name": "MpesaReceiptNumber", "Value": receipt},
						{"Name": "TransactionDate", "Value": t.timeProvider.Now().Format(timestampLayout)},
						{"Name": "PhoneNumber", "Value": p.PhoneNumber},
					},
				},
			},
		},
	}
}

func (t *SandboxTransport) payoutResult(conversationID string, p *payoutPayload) map[string]any {
	return map[string]any{
		"Result": map[string]any{
			"ResultType":               0,
			"ResultCode":               0,
			"ResultDesc":               "The service request is processed successfully.",
			"OriginatorConversationID": uuid.NewString(),
			"ConversationID":           conversationID,
			"TransactionID":            "TEST-" + conversationID[:8],
			"ResultParameters": map[string]any{
				"ResultParameter": []map[string]any{
					{"Key": "TransactionAmount", "Value": p.Amount},
					{"Key": "TransactionReceipt", "Value": "TEST-" + conversationID[:8]},
					{"Key": "B2CRecipientIsRegisteredCustomer", "Value": "Y"},
					{"Key": "ReceiverPartyPublicName", "Value": p.PartyB + " - Test User"},
					{"Key": "TransactionCompletedDateTime", "Value": t.timeProvider.Now().Format("02.01.2006 15:04:05")},
				},
			},
			"ReferenceData": map[string]any{
				"ReferenceItem": map[string]any{"Key": "QueueTimeoutURL", "Value": p.QueueTimeOutURL},
			},
		},
	}
}

func (t *SandboxTransport) enqueue(d callbackDelivery) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.closed {
		return
	}

	select {
	case t.jobs <- d:
	default:
		t.logger.Warn("Sandbox callback queue full, dropping delivery", map[string]any{
			"kind": d.kind,
			"url":  d.url,
		})
	}
}

func (t *SandboxTransport) worker() {
	defer t.wg.Done()
	for d := range t.jobs {
		resp, err := t.http.R().SetBody(d.body).Post(d.url)
		if err != nil {
			t.logger.Error("Sandbox callback delivery failed", map[string]any{
				"kind":  d.kind,
				"url":   d.url,
				"error": err.Error(),
			})
			continue
		}
		t.logger.Info("Sandbox callback delivered", map[string]any{
			"kind":   d.kind,
			"status": resp.StatusCode(),
		})
	}
}

// Close stops accepting deliveries and waits for queued ones to finish
func (t *SandboxTransport) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	close(t.jobs)
	t.mu.Unlock()

	t.wg.Wait()
}

func jsonResponse(v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: http.StatusOK, ContentType: "application/json", Body: body}, nil
}

func compactUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
