// Package mpesa implements the gateway port against the Safaricom Daraja API.
package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
)

const timestampLayout = "20060102150405"

// Client signs, sends and retries gateway requests
type Client struct {
	cfg          Config
	transport    Transport
	logger       coreport.Logger
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	location     *time.Location

	tokenGroup singleflight.Group
	mu         sync.RWMutex
	token      string
	expiresAt  time.Time
}

// NewClient creates a gateway client over transport
func NewClient(
	cfg Config,
	transport Transport,
	logger coreport.Logger,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
) *Client {
	loc, err := time.LoadLocation("Africa/Nairobi")
	if err != nil {
		loc = time.FixedZone("EAT", 3*60*60)
	}

	return &Client{
		cfg:          cfg,
		transport:    transport,
		logger:       logger,
		metrics:      metrics,
		timeProvider: timeProvider,
		location:     loc,
	}
}

var _ gateway.Client = (*Client)(nil)

// AccessToken returns a cached bearer token, refreshing it once for all concurrent callers
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	token, expiresAt := c.token, c.expiresAt
	c.mu.RUnlock()

	if token != "" && c.timeProvider.Now().Before(expiresAt) {
		return token, nil
	}

	// The shared refresh outlives any single caller; each caller still stops
	// waiting when its own context ends.
	ch := c.tokenGroup.DoChan("token", func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.authTimeout())
		defer cancel()
		return c.refreshToken(refreshCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", errs.NewGatewayError("auth", 1, 0, ctx.Err().Error(), errs.ErrGatewayAuth)
	}
}

func (c *Client) authTimeout() time.Duration {
	if c.cfg.AuthTimeout > 0 {
		return c.cfg.AuthTimeout
	}
	return defaultAuthTimeout
}

func (c *Client) refreshToken(ctx context.Context) (string, error) {
	start := c.timeProvider.Now()
	resp, err := c.transport.Authenticate(ctx, c.cfg.ConsumerKey, c.cfg.ConsumerSecret)
	if err != nil {
		c.metrics.ObserveGatewayCall("auth", "error", c.timeProvider.Now().Sub(start))
		return "", errs.NewGatewayError("auth", 1, 0, err.Error(), errs.ErrGatewayAuth)
	}

	var body tokenResponse
	if resp.StatusCode != http.StatusOK {
		c.metrics.ObserveGatewayCall("auth", "rejected", c.timeProvider.Now().Sub(start))
		return "", errs.NewGatewayError("auth", 1, resp.StatusCode, truncate(resp.Body), errs.ErrGatewayAuth)
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil || body.AccessToken == "" {
		c.metrics.ObserveGatewayCall("auth", "invalid", c.timeProvider.Now().Sub(start))
		return "", errs.NewGatewayError("auth", 1, resp.StatusCode, "token missing from response", errs.ErrGatewayAuth)
	}

	now := c.timeProvider.Now()
	expiresAt := now.Add(time.Duration(body.ExpiresIn)*time.Second - tokenExpiryMargin)

	c.mu.Lock()
	c.token = body.AccessToken
	c.expiresAt = expiresAt
	c.mu.Unlock()

	c.metrics.ObserveGatewayCall("auth", "ok", now.Sub(start))
	c.logger.Debug("Gateway access token refreshed", map[string]any{"expires_at": expiresAt})
	return body.AccessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

// credentials returns the push password and its timestamp
func (c *Client) credentials() (password, timestamp string) {
	timestamp = c.timeProvider.Now().In(c.location).Format(timestampLayout)
	password = base64.StdEncoding.EncodeToString([]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp))
	return password, timestamp
}

// PushPayment sends a push-payment request to the payer's handset
func (c *Client) PushPayment(ctx context.Context, req gateway.PushRequest) (*gateway.PushAck, error) {
	password, timestamp := c.credentials()

	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = c.cfg.PushCallbackURL
	}
	reference := req.AccountReference
	if reference == "" {
		reference = "TIP"
	}
	description := req.Description
	if description == "" {
		description = "Tip payment"
	}

	payload := &pushPayload{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            req.Amount,
		PartyA:            req.Phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       callbackURL,
		AccountReference:  reference,
		TransactionDesc:   description,
	}

	var ack gateway.PushAck
	if err := c.send(ctx, "push", pushPath, payload, &ack); err != nil {
		return nil, err
	}

	if ack.ResponseCode == gateway.ResponseCodeAccepted && ack.CheckoutRequestID == "" {
		return nil, errs.NewGatewayError("push", 1, http.StatusOK, "accepted without CheckoutRequestID", errs.ErrInvalidGatewayResponse)
	}

	c.logger.Info("Push payment submitted", map[string]any{
		"checkout_request_id": ack.CheckoutRequestID,
		"response_code":       ack.ResponseCode,
		"amount":              req.Amount,
	})
	return &ack, nil
}

// QueryStatus polls the outcome of an earlier push request
func (c *Client) QueryStatus(ctx context.Context, checkoutRequestID string) (*gateway.StatusResult, error) {
	password, timestamp := c.credentials()

	payload := &queryPayload{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	}

	var result gateway.StatusResult
	if err := c.send(ctx, "query", queryPath, payload, &result); err != nil {
		return nil, err
	}
	if result.CheckoutRequestID == "" {
		result.CheckoutRequestID = checkoutRequestID
	}
	return &result, nil
}

// Payout sends a business-to-customer payment
func (c *Client) Payout(ctx context.Context, req gateway.PayoutRequest) (*gateway.PayoutAck, error) {
	if !c.cfg.hasPayoutCredentials() {
		return nil, fmt.Errorf("%w: initiator name, security credential and B2C short code are required",
			errs.ErrMissingConfiguration)
	}

	remarks := req.Remarks
	if remarks == "" {
		remarks = defaultPayoutRemark
	}

	payload := &payoutPayload{
		InitiatorName:      c.cfg.InitiatorName,
		SecurityCredential: c.cfg.SecurityCredential,
		CommandID:          "BusinessPayment",
		Amount:             req.Amount,
		PartyA:             c.cfg.B2CShortCode,
		PartyB:             req.Phone,
		Remarks:            remarks,
		QueueTimeOutURL:    c.cfg.PayoutTimeoutURL,
		ResultURL:          c.cfg.PayoutResultURL,
		Occasion:           "Withdrawal",
	}

	var ack gateway.PayoutAck
	if err := c.send(ctx, "payout", payoutPath, payload, &ack); err != nil {
		return nil, err
	}

	if ack.ResponseCode == gateway.ResponseCodeAccepted && ack.ConversationID == "" {
		return nil, errs.NewGatewayError("payout", 1, http.StatusOK, "accepted without ConversationID", errs.ErrInvalidGatewayResponse)
	}

	c.logger.Info("Payout submitted", map[string]any{
		"conversation_id": ack.ConversationID,
		"response_code":   ack.ResponseCode,
		"amount":          req.Amount,
	})
	return &ack, nil
}

// send posts payload with retry on network failures and 502/503/504, then decodes into out.
// API-level rejections decode into out with a non-zero or empty ResponseCode.
func (c *Client) send(ctx context.Context, operation, path string, payload any, out any) error {
	attempts := c.cfg.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}
	delay := c.cfg.RetryDelay

	var lastErr error
	lastStatus := 0

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			c.logger.Warn("Retrying gateway request", map[string]any{
				"operation": operation,
				"attempt":   attempt,
				"of":        attempts,
				"delay":     delay.String(),
			})
			if err := sleepContext(ctx, delay); err != nil {
				return errs.NewGatewayError(operation, attempt-1, lastStatus, "canceled while waiting to retry", errs.ErrGatewayUnreachable)
			}
			delay *= 2
		}

		token, err := c.AccessToken(ctx)
		if err != nil {
			return err
		}

		start := c.timeProvider.Now()
		resp, err := c.transport.Post(ctx, path, token, payload)
		elapsed := c.timeProvider.Now().Sub(start)

		if err != nil {
			c.metrics.ObserveGatewayCall(operation, "network_error", elapsed)
			lastErr, lastStatus = err, 0
			if ctx.Err() != nil {
				break
			}
			continue
		}

		switch resp.StatusCode {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			c.metrics.ObserveGatewayCall(operation, "unavailable", elapsed)
			lastErr, lastStatus = fmt.Errorf("gateway answered %d", resp.StatusCode), resp.StatusCode
			continue
		case http.StatusUnauthorized:
			// token revoked early; the next attempt re-authenticates
			c.invalidateToken()
			c.metrics.ObserveGatewayCall(operation, "unauthorized", elapsed)
			lastErr, lastStatus = errors.New("bearer token rejected"), resp.StatusCode
			continue
		}

		if err := c.decode(operation, resp, out); err != nil {
			c.metrics.ObserveGatewayCall(operation, "invalid", elapsed)
			return err
		}
		c.metrics.ObserveGatewayCall(operation, "ok", elapsed)
		return nil
	}

	detail := "no response"
	if lastErr != nil {
		detail = lastErr.Error()
	}
	gwErr := errs.NewGatewayError(operation, attempts, lastStatus, detail, errs.ErrGatewayUnreachable)
	c.logger.Error("Gateway unreachable", errs.LogFields(gwErr))
	return gwErr
}

// decode validates the content type and unmarshals body into out
func (c *Client) decode(operation string, resp *Response, out any) error {
	if strings.Contains(strings.ToLower(resp.ContentType), "text/html") {
		return errs.NewGatewayError(operation, 1, resp.StatusCode, "HTML response instead of JSON", errs.ErrInvalidGatewayResponse)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errs.NewGatewayError(operation, 1, resp.StatusCode, "unparseable body: "+truncate(resp.Body), errs.ErrInvalidGatewayResponse)
	}

	if resp.StatusCode != http.StatusOK {
		// Rejections carry errorCode/errorMessage; anything else is not a gateway answer
		var eb errorBody
		if err := json.Unmarshal(resp.Body, &eb); err != nil || (eb.ErrorCode == "" && eb.ErrorMessage == "") {
			return errs.NewGatewayError(operation, 1, resp.StatusCode, truncate(resp.Body), errs.ErrInvalidGatewayResponse)
		}
		c.logger.Warn("Gateway rejected request", map[string]any{
			"operation":  operation,
			"status":     resp.StatusCode,
			"error_code": eb.ErrorCode,
			"request_id": eb.RequestID,
			"message":    eb.ErrorMessage,
		})
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func truncate(b []byte) string {
	const max = 300
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
