package mpesa

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Response is a raw gateway answer
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Transport moves requests to the gateway. Network failures are returned as errors;
// any HTTP answer, whatever its status, is returned as a Response.
type Transport interface {
	// Authenticate performs the client-credentials exchange
	Authenticate(ctx context.Context, consumerKey, consumerSecret string) (*Response, error)
	// Post sends a signed JSON payload with a bearer token
	Post(ctx context.Context, path, token string, payload any) (*Response, error)
}

// HTTPTransport talks to Daraja over HTTPS
type HTTPTransport struct {
	client         *resty.Client
	authTimeout    time.Duration
	requestTimeout time.Duration
}

// NewHTTPTransport creates a resty-backed transport rooted at baseURL
func NewHTTPTransport(baseURL string, authTimeout, requestTimeout time.Duration) *HTTPTransport {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0) // Client owns the retry policy

	return &HTTPTransport{
		client:         client,
		authTimeout:    authTimeout,
		requestTimeout: requestTimeout,
	}
}

// Authenticate performs the client-credentials exchange
func (t *HTTPTransport) Authenticate(ctx context.Context, consumerKey, consumerSecret string) (*Response, error) {
	ctx, cancel := withTimeout(ctx, t.authTimeout)
	defer cancel()

	resp, err := t.client.R().
		SetContext(ctx).
		SetBasicAuth(consumerKey, consumerSecret).
		SetQueryParam("grant_type", "client_credentials").
		Get(authPath)
	if err != nil {
		return nil, fmt.Errorf("auth request: %w", err)
	}
	return toResponse(resp), nil
}

// Post sends payload as JSON
func (t *HTTPTransport) Post(ctx context.Context, path, token string, payload any) (*Response, error) {
	ctx, cancel := withTimeout(ctx, t.requestTimeout)
	defer cancel()

	resp, err := t.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	return toResponse(resp), nil
}

func toResponse(resp *resty.Response) *Response {
	return &Response{
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
