package withdrawal

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// Config holds the tunables of the payout state machine
type Config struct {
	MaxAmount      decimal.Decimal // zero disables the upper bound
	Remarks        string
	AllowReprocess bool // test fixtures only: lets terminal payouts transition again
	DefaultListLen int
	SettleTimeout  time.Duration // bound on the writes that record a gateway answer
}

// UseCase implements the withdrawal state machine
type UseCase struct {
	uow          persistence.UnitOfWork
	gateway      gateway.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	cfg          Config
}

var _ usecase.WithdrawalUseCase = (*UseCase)(nil)

// NewWithdrawalUseCase creates a new withdrawal use case
func NewWithdrawalUseCase(
	uow persistence.UnitOfWork,
	gatewayClient gateway.Client,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	cfg Config,
) *UseCase {
	if cfg.DefaultListLen <= 0 {
		cfg.DefaultListLen = 20
	}
	if cfg.SettleTimeout <= 0 {
		cfg.SettleTimeout = 30 * time.Second
	}
	if cfg.AllowReprocess {
		logger.Warn("Withdrawal reprocessing is enabled; terminal payouts can change state", nil)
	}

	return &UseCase{
		uow:          uow,
		gateway:      gatewayClient,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		cfg:          cfg,
	}
}

// FindByCorrelationID looks a withdrawal up by its gateway ConversationID
func (u *UseCase) FindByCorrelationID(ctx context.Context, conversationID string) (*entity.Withdrawal, error) {
	if conversationID == "" {
		return nil, errs.ErrWithdrawalNotFound
	}
	return u.uow.GetWithdrawalRepository(ctx).GetByRequestID(ctx, conversationID)
}

// ListByCreator returns the most recent withdrawals of a creator
func (u *UseCase) ListByCreator(ctx context.Context, creatorID uint64, limit int) ([]*entity.Withdrawal, error) {
	if creatorID == 0 {
		return nil, errs.ErrInvalidCreatorID
	}
	if limit <= 0 {
		limit = u.cfg.DefaultListLen
	}
	if _, err := u.uow.GetCreatorRepository(ctx).GetByID(ctx, creatorID); err != nil {
		return nil, err
	}
	return u.uow.GetWithdrawalRepository(ctx).ListByCreator(ctx, creatorID, limit)
}
