package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles tip HTTP requests
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
	logger       coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactions usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		logger:       logger,
	}
}

// InitiateTip handles POST /payments/tips
func (h *TransactionHandler) InitiateTip(c *gin.Context) {
	var req dto.CreateTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, invalidBody(err))
		return
	}

	tx, err := h.transactions.InitiateTip(c.Request.Context(), usecase.CreateTipRequest{
		CreatorID: req.CreatorID,
		Amount:    req.Amount.String(),
		Phone:     req.PhoneNumber,
		PayerName: req.TipperName,
		Message:   req.Message,
	})
	if err != nil {
		if tx != nil {
			h.logger.Warn("Tip initiation failed", map[string]any{
				"transaction_id": tx.ID,
				"status":         tx.Status,
				"error_code":     domainerr.ErrorCode(err),
			})
		}
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InitiateTipResponse{
		Status:      "success",
		Message:     "Payment request sent. Approve it on your phone to complete the tip.",
		Transaction: dto.NewTransactionResponse(tx),
	})
}

// CheckStatus handles GET /payments/tips/:transactionId/status
func (h *TransactionHandler) CheckStatus(c *gin.Context) {
	id, err := pathID(c, "transactionId", domainerr.ErrInvalidRequest)
	if err != nil {
		abortWith(c, err)
		return
	}

	tx, err := h.transactions.CheckStatus(c.Request.Context(), id)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// ListByCreator handles GET /creators/:creatorId/transactions
func (h *TransactionHandler) ListByCreator(c *gin.Context) {
	creatorID, err := pathID(c, "creatorId", domainerr.ErrInvalidCreatorID)
	if err != nil {
		abortWith(c, err)
		return
	}
	limit, err := listLimit(c)
	if err != nil {
		abortWith(c, err)
		return
	}

	txs, err := h.transactions.ListByCreator(c.Request.Context(), creatorID, limit)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionListResponse(creatorID, txs))
}
