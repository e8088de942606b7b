package mpesa

import (
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/config"
)

// Daraja endpoints
const (
	SandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	ProductionBaseURL = "https://api.safaricom.co.ke"

	authPath   = "/oauth/v1/generate"
	pushPath   = "/mpesa/stkpush/v1/processrequest"
	queryPath  = "/mpesa/stkpushquery/v1/query"
	payoutPath = "/mpesa/b2c/v1/paymentrequest"
)

// Callback routes exposed by this service
const (
	PushCallbackPath    = "/payments/callback"
	PayoutResultPath    = "/withdrawals/b2c/result"
	PayoutTimeoutPath   = "/withdrawals/b2c/timeout"
	tokenExpiryMargin   = 60 * time.Second
	defaultAuthTimeout  = 10 * time.Second
	defaultPayoutRemark = "Withdrawal Payment"
)

// Config is the resolved gateway configuration
type Config struct {
	BaseURL            string
	ConsumerKey        string
	ConsumerSecret     string
	ShortCode          string
	Passkey            string
	B2CShortCode       string
	InitiatorName      string
	SecurityCredential string

	PushCallbackURL  string
	PayoutResultURL  string
	PayoutTimeoutURL string

	AuthTimeout     time.Duration
	RequestTimeout  time.Duration
	CallbackTimeout time.Duration
	MaxRetries      int           // additional attempts after the first
	RetryDelay      time.Duration // doubles per attempt

	Simulate         bool
	SimulatePush     bool
	SimulatorWorkers int
}

// FromAppConfig resolves endpoints and callback URLs from the application config
func FromAppConfig(m config.MpesaConfig) Config {
	base := m.BaseURL
	if base == "" {
		base = SandboxBaseURL
		if m.Environment == "production" {
			base = ProductionBaseURL
		}
	}

	b2c := m.B2CShortCode
	if b2c == "" {
		b2c = m.ShortCode
	}

	return Config{
		BaseURL:            base,
		ConsumerKey:        m.ConsumerKey,
		ConsumerSecret:     m.ConsumerSecret,
		ShortCode:          m.ShortCode,
		Passkey:            m.Passkey,
		B2CShortCode:       b2c,
		InitiatorName:      m.InitiatorName,
		SecurityCredential: m.SecurityCredential,
		PushCallbackURL:    m.CallbackURL(PushCallbackPath),
		PayoutResultURL:    m.CallbackURL(PayoutResultPath),
		PayoutTimeoutURL:   m.CallbackURL(PayoutTimeoutPath),
		AuthTimeout:        m.AuthTimeout,
		RequestTimeout:     m.RequestTimeout,
		CallbackTimeout:    m.CallbackTimeout,
		MaxRetries:         m.MaxRetries,
		RetryDelay:         m.RetryDelay,
		Simulate:           m.Simulate,
		SimulatePush:       m.SimulatePush,
		SimulatorWorkers:   m.SimulatorWorkers,
	}
}

// hasPayoutCredentials reports whether B2C requests can be signed
func (c Config) hasPayoutCredentials() bool {
	return c.InitiatorName != "" && c.SecurityCredential != "" && c.B2CShortCode != ""
}
