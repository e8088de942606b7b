package transaction

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/notifier"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Config holds the tunables of the tip state machine
type Config struct {
	MinAmount      decimal.Decimal // optional floor; zero accepts any positive amount
	MaxAmount      decimal.Decimal
	CallbackURL    string // push callback endpoint; empty uses the gateway default
	SweepBatchSize int
	DefaultListLen int
	SettleTimeout  time.Duration // bound on the writes that record a gateway answer
}

// DefaultConfig returns the limits used when nothing is configured
func DefaultConfig() Config {
	return Config{
		MaxAmount:      decimal.NewFromInt(70000),
		SweepBatchSize: 100,
		DefaultListLen: 20,
		SettleTimeout:  defaultSettleTimeout,
	}
}

const defaultSettleTimeout = 30 * time.Second

// Service implements the tip transaction state machine
type Service struct {
	uow          persistence.UnitOfWork
	gateway      gateway.Client
	publisher    notifier.Publisher
	validator    *TipValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	receipts     func() string
	cfg          Config
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	gatewayClient gateway.Client,
	publisher notifier.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	cfg Config,
) *Service {
	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = 100
	}
	if cfg.DefaultListLen <= 0 {
		cfg.DefaultListLen = 20
	}
	if cfg.SettleTimeout <= 0 {
		cfg.SettleTimeout = defaultSettleTimeout
	}

	return &Service{
		uow:          uow,
		gateway:      gatewayClient,
		publisher:    publisher,
		validator:    NewTipValidator(cfg.MinAmount, cfg.MaxAmount),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		receipts:     GenerateReceipt,
		cfg:          cfg,
	}
}

// WithReceiptGenerator replaces the synthetic receipt source
func (s *Service) WithReceiptGenerator(gen func() string) *Service {
	s.receipts = gen
	return s
}

// Create validates the request and inserts a PENDING transaction
func (s *Service) Create(ctx context.Context, req usecase.CreateTipRequest) (*entity.Transaction, error) {
	validated, err := s.validator.Validate(req)
	if err != nil {
		s.logger.Warn("Rejected tip request", map[string]any{
			"creator_id": req.CreatorID,
			"amount":     req.Amount,
			"error":      err.Error(),
		})
		return nil, err
	}

	if _, err := s.uow.GetCreatorRepository(ctx).GetByID(ctx, req.CreatorID); err != nil {
		return nil, err
	}

	tx, err := entity.NewTransaction(
		req.CreatorID,
		validated.Amount,
		validated.Phone,
		req.PayerName,
		req.Message,
		s.timeProvider.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetTransactionRepository(ctx).Create(ctx, tx); err != nil {
		s.logger.Error("Failed to persist tip transaction", map[string]any{
			"creator_id": req.CreatorID,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.metrics.IncTransition("transaction", string(entity.StatusPending))
	s.logger.Info("Tip transaction created", map[string]any{
		"transaction_id": tx.ID,
		"creator_id":     tx.CreatorID,
		"amount":         entity.FormatAmount(tx.Amount),
	})
	return tx, nil
}

// GetByID retrieves a transaction
func (s *Service) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	return s.uow.GetTransactionRepository(ctx).GetByID(ctx, id)
}

// FindByCorrelationID looks a transaction up by its gateway CheckoutRequestID
func (s *Service) FindByCorrelationID(ctx context.Context, requestID string) (*entity.Transaction, error) {
	if requestID == "" {
		return nil, errs.ErrTransactionNotFound
	}
	return s.uow.GetTransactionRepository(ctx).GetByRequestID(ctx, requestID)
}

// ListByCreator returns the most recent transactions of a creator
func (s *Service) ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Transaction, error) {
	if creatorID == 0 {
		return nil, errs.ErrInvalidCreatorID
	}
	if limit <= 0 {
		limit = s.cfg.DefaultListLen
	}
	if _, err := s.uow.GetCreatorRepository(ctx).GetByID(ctx, creatorID); err != nil {
		return nil, err
	}
	return s.uow.GetTransactionRepository(ctx).ListByCreator(ctx, creatorID, limit)
}

// now is a small helper so every transition stamps the same clock
func (s *Service) now() time.Time {
	return s.timeProvider.Now()
}
