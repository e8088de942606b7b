package transaction

import (
	"fmt"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// ValidatedTip carries the parsed values of a tip request
type ValidatedTip struct {
	Amount decimal.Decimal
	Phone  string
}

// TipValidator provides validation for tip requests
type TipValidator struct {
	minAmount decimal.Decimal
	maxAmount decimal.Decimal
}

// NewTipValidator creates a new TipValidator
func NewTipValidator(minAmount, maxAmount decimal.Decimal) *TipValidator {
	return &TipValidator{
		minAmount: minAmount,
		maxAmount: maxAmount,
	}
}

// Validate checks creator id, amount and phone and returns their parsed forms.
// Payer name and message limits are enforced by entity.NewTransaction.
func (v *TipValidator) Validate(req usecase.CreateTipRequest) (*ValidatedTip, error) {
	if req.CreatorID == 0 {
		return nil, errs.ErrInvalidCreatorID
	}

	amount, err := v.validateAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	phone, err := entity.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}

	return &ValidatedTip{Amount: amount, Phone: phone}, nil
}

// validateAmount checks the amount is parseable and within the accepted range
func (v *TipValidator) validateAmount(raw string) (decimal.Decimal, error) {
	amount, err := entity.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}

	if err := entity.ValidateAmountRange(amount, v.maxAmount); err != nil {
		return decimal.Zero, err
	}

	if v.minAmount.IsPositive() && amount.LessThan(v.minAmount) {
		return decimal.Zero, fmt.Errorf("%w: minimum amount is %s", errs.ErrInvalidAmount, entity.FormatAmount(v.minAmount))
	}

	return amount, nil
}
