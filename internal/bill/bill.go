// Package bill holds the bill record managed during a session.
package bill

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/billtrace/internal/util"
)

var (
	ErrEmptyName      = errors.New("bill name must not be empty")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = fmt.Errorf("%w: must not be negative", ErrInvalidAmount)
	ErrAmountRange    = fmt.Errorf("%w: out of range", ErrInvalidAmount)
)

const (
	// MaxFractionDigits is the most decimal places an amount may carry.
	MaxFractionDigits = 20
	maxExponent       = 38
)

// MaxAmount is the largest single-precision float.
var MaxAmount = decimal.NewFromFloat32(math.MaxFloat32)

// Bill is a named monetary obligation. The name identifies the bill.
type Bill struct {
	Name   string
	Amount decimal.Decimal
}

func New(name string, amount decimal.Decimal) (Bill, error) {
	b := Bill{
		Name:   name,
		Amount: amount,
	}

	if err := b.Validate(); err != nil {
		return Bill{}, err
	}

	return b, nil
}

func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}

	return ValidateAmount(b.Amount)
}

// ValidateAmount checks that amount is non-negative, at most MaxAmount and
// has no more than MaxFractionDigits decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	if amount.IsZero() {
		return nil
	}

	// exponents are checked first so comparing against MaxAmount never has to
	// rescale a huge coefficient.
	if amount.Exponent() < -MaxFractionDigits || amount.Exponent() > maxExponent {
		return ErrAmountRange
	}

	if amount.GreaterThan(MaxAmount) {
		return ErrAmountRange
	}

	return nil
}

// String renders the bill as `"<name>": <amount>`. The name is quoted so
// names containing separators stay unambiguous.
func (b Bill) String() string {
	return fmt.Sprintf("%q: %s", b.Name, util.FormatMoney(b.Amount, ",", "."))
}

// ParseAmount parses a non-negative decimal amount accepted by ValidateAmount.
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w %q: %w", ErrInvalidAmount, input, err)
	}

	if err = ValidateAmount(amount); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", err, input)
	}

	if amount.IsZero() {
		return decimal.Zero, nil
	}

	return amount, nil
}
