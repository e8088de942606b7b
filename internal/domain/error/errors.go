package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidCreatorID    = 4003
	CodeInvalidPhone        = 4004
	CodeAlreadyProcessed    = 4009
	CodeCorrelationConflict = 4010
	CodeNotFound            = 4040
	CodeCreatorNotFound     = 4041
	CodeTransactionNotFound = 4042
	CodeWithdrawalNotFound  = 4043

	// 5xxx - Server errors
	CodeInternalServer         = 5000
	CodeStorage                = 5001
	CodeGatewayUnreachable     = 5021
	CodeInvalidGatewayResponse = 5022
	CodeGatewayAuth            = 5023
	CodeGatewayRejected        = 5024
	CodeMissingConfiguration   = 5030
)

// Validation errors
var (
	// ErrInvalidAmount is returned when an amount is not positive, exceeds the configured maximum or has too many decimals
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPhone is returned when a phone number cannot be normalised to the 2547XXXXXXXX form
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidCreatorID is returned when the creator ID is not a positive integer
	ErrInvalidCreatorID = errors.New("creator ID must be positive")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")
)

// Lookup errors
var (
	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrCreatorNotFound is returned when the requested creator doesn't exist
	ErrCreatorNotFound = errors.New("creator not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrWithdrawalNotFound is returned when the requested withdrawal doesn't exist
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
)

// State machine errors
var (
	// ErrInsufficientBalance is returned when a withdrawal exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyProcessed is returned when a terminal record is asked to transition again
	ErrAlreadyProcessed = errors.New("record already processed")

	// ErrCorrelationConflict is returned when a record already carries a different gateway request id
	ErrCorrelationConflict = errors.New("gateway request id already bound")
)

// Gateway errors
var (
	// ErrGatewayUnreachable is returned when every attempt to reach the gateway failed at the network level
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")

	// ErrInvalidGatewayResponse is returned when the gateway answer cannot be parsed or lacks the correlation field
	ErrInvalidGatewayResponse = errors.New("invalid payment gateway response")

	// ErrGatewayAuth is returned when the credential exchange fails
	ErrGatewayAuth = errors.New("payment gateway authentication failed")

	// ErrGatewayRejected is returned when the gateway answered with a well-formed non-zero response code
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrMissingConfiguration is returned when gateway operator credentials are absent
	ErrMissingConfiguration = errors.New("missing gateway configuration")
)

// Infrastructure errors
var (
	// ErrStorage is returned for persistence failures
	ErrStorage = errors.New("storage error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidPhone):
		return CodeInvalidPhone
	case errors.Is(err, ErrInvalidCreatorID):
		return CodeInvalidCreatorID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrCorrelationConflict):
		return CodeCorrelationConflict
	case errors.Is(err, ErrCreatorNotFound):
		return CodeCreatorNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrWithdrawalNotFound):
		return CodeWithdrawalNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrGatewayUnreachable):
		return CodeGatewayUnreachable
	case errors.Is(err, ErrInvalidGatewayResponse):
		return CodeInvalidGatewayResponse
	case errors.Is(err, ErrGatewayAuth):
		return CodeGatewayAuth
	case errors.Is(err, ErrGatewayRejected):
		return CodeGatewayRejected
	case errors.Is(err, ErrMissingConfiguration):
		return CodeMissingConfiguration
	case errors.Is(err, ErrStorage):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	CreatorID uint64
	Amount    string
	Available string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for creator %d: requested %s, available %s",
		e.CreatorID, e.Amount, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"creator_id": e.CreatorID,
		"amount":     e.Amount,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(creatorID uint64, amount, available string) error {
	return &InsufficientBalanceError{
		CreatorID: creatorID,
		Amount:    amount,
		Available: available,
	}
}

// TransitionError describes a rejected state transition on a transaction or withdrawal
type TransitionError struct {
	Kind   string
	ID     uint64
	From   string
	To     string
	Reason string
	Err    error
}

// Error implements the error interface for TransitionError
func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s %d cannot move from %s to %s: %s: %v",
		e.Kind, e.ID, e.From, e.To, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransitionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transition_error",
		"kind":       e.Kind,
		"id":         e.ID,
		"from":       e.From,
		"to":         e.To,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransitionError creates a detailed transition error
func NewTransitionError(kind string, id uint64, from, to, reason string, err error) error {
	return &TransitionError{
		Kind:   kind,
		ID:     id,
		From:   from,
		To:     to,
		Reason: reason,
		Err:    err,
	}
}

// GatewayError carries provider detail that must be logged but never shown to end users
type GatewayError struct {
	Operation  string
	Attempts   int
	StatusCode int
	Detail     string
	Err        error
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s failed after %d attempt(s) (status %d): %s: %v",
		e.Operation, e.Attempts, e.StatusCode, e.Detail, e.Err)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "gateway_error",
		"operation":   e.Operation,
		"attempts":    e.Attempts,
		"status_code": e.StatusCode,
		"detail":      e.Detail,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewGatewayError creates a detailed gateway error
func NewGatewayError(operation string, attempts, statusCode int, detail string, err error) error {
	return &GatewayError{
		Operation:  operation,
		Attempts:   attempts,
		StatusCode: statusCode,
		Detail:     detail,
		Err:        err,
	}
}

// LogFields extracts structured fields from err when it carries them
func LogFields(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	if err == nil {
		return map[string]any{}
	}
	return map[string]any{"error": err.Error(), "error_code": ErrorCode(err)}
}

// IsValidationError checks if the error is user-correctable input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrInvalidCreatorID) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCreatorNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrWithdrawalNotFound)
}

// IsGatewayError checks if the error originated at the payment provider
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayUnreachable) ||
		errors.Is(err, ErrInvalidGatewayResponse) ||
		errors.Is(err, ErrGatewayAuth) ||
		errors.Is(err, ErrGatewayRejected) ||
		errors.Is(err, ErrMissingConfiguration)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsAlreadyProcessedError checks if a transition was refused because the record is terminal
func IsAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed)
}

// IsStorageError checks if the error came from the persistence layer
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
