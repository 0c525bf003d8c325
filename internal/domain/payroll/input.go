package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

func ParseGrossSalary(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidGrossSalary
	}
	if err := ValidateGrossSalary(value); err != nil {
		return decimal.Zero, err
	}
	return value, nil
}

// ValidateGrossSalary checks the exponent before any arithmetic so that
// inputs like "1e2000000" are refused without being rescaled.
func ValidateGrossSalary(value decimal.Decimal) error {
	exp := value.Exponent()
	if exp > maxGrossExponent || exp < -maxGrossScale {
		return ErrInvalidGrossSalary
	}
	if !value.IsPositive() || value.GreaterThan(MaxGrossSalary) {
		return ErrInvalidGrossSalary
	}
	if exp < -DisplayPlaces && !value.Equal(value.Truncate(DisplayPlaces)) {
		return ErrInvalidGrossSalary
	}
	return nil
}

func ParseAdvanceAnswer(raw string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case AdvanceAnswerYes:
		return true, nil
	case AdvanceAnswerNo:
		return false, nil
	default:
		return false, ErrInvalidAdvanceAnswer
	}
}
