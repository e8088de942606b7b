package database

import (
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps driver errors raised outside repositories (begin, commit) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError wraps err in ErrStorage while keeping the driver error reachable for retry decisions.
// Errors that already carry a domain meaning pass through untouched.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	return fmt.Errorf("%w: %s (%s): %w", domainErr.ErrStorage, operation, m.classifier.Classify(err), err)
}

// Classifier exposes the underlying classifier
func (m *ErrorMapper) Classifier() *repository.ErrorClassifier {
	return m.classifier
}

func isDomainError(err error) bool {
	return domainErr.IsValidationError(err) ||
		domainErr.IsNotFoundError(err) ||
		domainErr.IsGatewayError(err) ||
		domainErr.IsStorageError(err) ||
		errors.Is(err, domainErr.ErrInsufficientBalance) ||
		errors.Is(err, domainErr.ErrAlreadyProcessed) ||
		errors.Is(err, domainErr.ErrCorrelationConflict) ||
		errors.Is(err, domainErr.ErrInternalServer)
}
