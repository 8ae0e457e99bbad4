package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
)

// ParseAmount parses a user-supplied amount string into a positive decimal
// with at most two decimal places.
func ParseAmount(input string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	parts := strings.SplitN(trimmed, ".", 2)
	if len(parts) == 2 && len(parts[1]) > 2 {
		return decimal.Zero, ErrTooManyDecimals
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if value.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return value, nil
}

// FormatAmount renders a wallet amount with two decimal places, the way
// balances are displayed.
func FormatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}
