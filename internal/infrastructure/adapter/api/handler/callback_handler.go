package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/dto"
)

const defaultCallbackBudget = 30 * time.Second

// CallbackHandler receives gateway webhooks. Every request is acknowledged with
// 200 whatever happens inside, otherwise the gateway keeps redelivering.
type CallbackHandler struct {
	callbacks usecase.CallbackUseCase
	logger    coreport.Logger
	metrics   coreport.Metrics
	budget    time.Duration
}

// NewCallbackHandler creates a webhook handler; budget bounds the correlation retries
func NewCallbackHandler(callbacks usecase.CallbackUseCase, logger coreport.Logger, metrics coreport.Metrics, budget time.Duration) *CallbackHandler {
	if budget <= 0 {
		budget = defaultCallbackBudget
	}
	return &CallbackHandler{
		callbacks: callbacks,
		logger:    logger,
		metrics:   metrics,
		budget:    budget,
	}
}

// PushCallback handles POST /payments/callback
func (h *CallbackHandler) PushCallback(c *gin.Context) {
	var env dto.PushCallbackEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		h.rejectBody(c, "push", err)
		return
	}

	ctx, cancel := h.detach(c)
	defer cancel()

	outcome, err := h.callbacks.HandlePushCallback(ctx, env.ToDomain())
	h.ack(c, "push", env.Body.StkCallback.CheckoutRequestID, outcome, err)
}

// PayoutResult handles POST /withdrawals/b2c/result
func (h *CallbackHandler) PayoutResult(c *gin.Context) {
	var env dto.PayoutResultEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		h.rejectBody(c, "payout_result", err)
		return
	}

	ctx, cancel := h.detach(c)
	defer cancel()

	outcome, err := h.callbacks.HandlePayoutResult(ctx, env.ToDomain())
	h.ack(c, "payout_result", env.Result.ConversationID, outcome, err)
}

// PayoutTimeout handles POST /withdrawals/b2c/timeout
func (h *CallbackHandler) PayoutTimeout(c *gin.Context) {
	var env dto.PayoutTimeoutEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		h.rejectBody(c, "payout_timeout", err)
		return
	}

	ctx, cancel := h.detach(c)
	defer cancel()

	outcome, err := h.callbacks.HandlePayoutTimeout(ctx, env.CorrelationID())
	h.ack(c, "payout_timeout", env.CorrelationID(), outcome, err)
}

// detach keeps processing alive when the gateway hangs up early
func (h *CallbackHandler) detach(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(c.Request.Context()), h.budget)
}

func (h *CallbackHandler) rejectBody(c *gin.Context, kind string, err error) {
	h.metrics.IncCallback(kind, string(usecase.OutcomeInvalid))
	h.logger.Warn("Unreadable gateway callback", map[string]any{
		"kind":       kind,
		"error":      err.Error(),
		"request_id": c.GetHeader("X-Request-ID"),
	})
	c.JSON(http.StatusOK, dto.Accepted)
}

func (h *CallbackHandler) ack(c *gin.Context, kind, correlationID string, outcome usecase.CallbackOutcome, err error) {
	if err != nil {
		fields := domainerr.LogFields(err)
		fields["kind"] = kind
		fields["correlation_id"] = correlationID
		fields["outcome"] = outcome
		h.logger.Error("Gateway callback not applied", fields)
	}
	c.JSON(http.StatusOK, dto.Accepted)
}
