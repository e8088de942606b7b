package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/dto"
)

// WithdrawalHandler handles balance and payout requests of a creator
type WithdrawalHandler struct {
	withdrawals usecase.WithdrawalUseCase
	logger      coreport.Logger
}

// NewWithdrawalHandler creates a new withdrawal handler instance
func NewWithdrawalHandler(withdrawals usecase.WithdrawalUseCase, logger coreport.Logger) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawals: withdrawals,
		logger:      logger,
	}
}

// GetBalance handles GET /creators/:creatorId/balance
func (h *WithdrawalHandler) GetBalance(c *gin.Context) {
	creatorID, err := pathID(c, "creatorId", domainerr.ErrInvalidCreatorID)
	if err != nil {
		abortWith(c, err)
		return
	}

	balance, err := h.withdrawals.Balance(c.Request.Context(), creatorID)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// Create handles POST /creators/:creatorId/withdrawals
func (h *WithdrawalHandler) Create(c *gin.Context) {
	creatorID, err := pathID(c, "creatorId", domainerr.ErrInvalidCreatorID)
	if err != nil {
		abortWith(c, err)
		return
	}

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, invalidBody(err))
		return
	}

	w, err := h.withdrawals.Initiate(c.Request.Context(), usecase.WithdrawalRequest{
		CreatorID: creatorID,
		Amount:    req.Amount.String(),
		Phone:     req.PhoneNumber,
	})
	if err != nil {
		if w != nil {
			h.logger.Warn("Withdrawal initiation failed", map[string]any{
				"withdrawal_id": w.ID,
				"status":        w.Status,
				"error_code":    domainerr.ErrorCode(err),
			})
		}
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.NewWithdrawalResponse(w))
}

// List handles GET /creators/:creatorId/withdrawals
func (h *WithdrawalHandler) List(c *gin.Context) {
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

	ws, err := h.withdrawals.ListByCreator(c.Request.Context(), creatorID, limit)
	if err != nil {
		abortWith(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewWithdrawalListResponse(creatorID, ws))
}
