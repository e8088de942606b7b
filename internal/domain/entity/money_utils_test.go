package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"Whole number", "50", "50.00", false},
		{"One decimal", "10.5", "10.50", false},
		{"Two decimals", "10.55", "10.55", false},
		{"Surrounding spaces", " 7.25 ", "7.25", false},
		{"Trailing zeros beyond scale", "10.500", "10.50", false},
		{"Three significant decimals", "10.555", "", true},
		{"Empty", "", "", true},
		{"Not a number", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatAmount(got))
		})
	}
}

func TestValidateAmountRange(t *testing.T) {
	max := decimal.NewFromInt(70000)

	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr bool
	}{
		{"Smallest positive", decimal.RequireFromString("0.01"), false},
		{"At maximum", max, false},
		{"Zero", decimal.Zero, true},
		{"Negative", decimal.NewFromInt(-1), true},
		{"Above maximum", decimal.RequireFromString("70000.01"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmountRange(tt.amount, max)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("Zero maximum disables upper bound", func(t *testing.T) {
		assert.NoError(t, ValidateAmountRange(decimal.NewFromInt(1_000_000), decimal.Zero))
	})
}

func TestGatewayAmount(t *testing.T) {
	assert.Equal(t, int64(50), GatewayAmount(decimal.RequireFromString("50.99")))
	assert.Equal(t, int64(1), GatewayAmount(decimal.RequireFromString("1.01")))
	assert.Equal(t, int64(0), GatewayAmount(decimal.RequireFromString("0.50")))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"254712345678", "254712345678", false},
		{"+254712345678", "254712345678", false},
		{"0712345678", "254712345678", false},
		{"0712 345 678", "254712345678", false},
		{"712345678", "254712345678", false},
		{"25471234567", "", true},
		{"07123456789", "", true},
		{"", "", true},
		{"phone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
