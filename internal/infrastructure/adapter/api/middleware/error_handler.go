package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from panics and renders the last error a handler attached
// with c.Error when the handler wrote nothing itself.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": GetRequestID(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := StatusFor(err)

		fields := domainerr.LogFields(err)
		fields["path"] = c.Request.URL.Path
		fields["method"] = c.Request.Method
		fields["status"] = status
		fields["request_id"] = GetRequestID(c)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Info("Request rejected", fields)
		}

		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
	}
}

// StatusFor maps a domain error to an HTTP status and a message safe to show.
// Gateway and storage detail never reaches the client.
func StatusFor(err error) (int, string) {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound, notFoundMessage(err)
	case domainerr.IsInsufficientBalanceError(err):
		return http.StatusUnprocessableEntity, "Insufficient balance"
	case domainerr.IsAlreadyProcessedError(err), isConflict(err):
		return http.StatusConflict, "Request conflicts with the current state"
	case domainerr.IsGatewayError(err):
		return http.StatusBadGateway, "Could not process payment, please try again"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func isConflict(err error) bool {
	return domainerr.ErrorCode(err) == domainerr.CodeCorrelationConflict
}

func notFoundMessage(err error) string {
	switch domainerr.ErrorCode(err) {
	case domainerr.CodeCreatorNotFound:
		return "Creator not found"
	case domainerr.CodeTransactionNotFound:
		return "Transaction not found"
	case domainerr.CodeWithdrawalNotFound:
		return "Withdrawal not found"
	default:
		return "Resource not found"
	}
}
