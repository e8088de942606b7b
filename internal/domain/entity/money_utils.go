package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// ParseAmount parses a currency string and rejects anything finer than two decimal places.
// Range checks are left to ValidateAmountRange because the maximum is configurable.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return d, ValidateScale(d)
}

// ValidateScale checks the amount has at most MaxDecimalPlaces significant decimals
func ValidateScale(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return nil
}

// ValidateAmountRange enforces 0 < amount <= max. A zero max disables the upper bound.
func ValidateAmountRange(amount, max decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	if max.IsPositive() && amount.GreaterThan(max) {
		return fmt.Errorf("%w: amount exceeds maximum of %s", errs.ErrInvalidAmount, FormatAmount(max))
	}
	return ValidateScale(amount)
}

// FormatAmount renders an amount with exactly two decimal places.
// Example: 10.1 becomes "10.10", 10 becomes "10.00".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// GatewayAmount converts an amount to the whole currency units the gateway accepts.
// The fractional remainder is truncated, never rounded up.
func GatewayAmount(amount decimal.Decimal) int64 {
	return amount.Truncate(0).IntPart()
}
