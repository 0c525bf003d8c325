package payroll

import "github.com/shopspring/decimal"

// MarginalBracket taxes the slice of the base between the previous bracket's
// upper limit and its own at Rate.
type MarginalBracket struct {
	UpperLimit decimal.Decimal
	Rate       decimal.Decimal
}

// MarginalSchedule must be ordered by ascending UpperLimit.
type MarginalSchedule []MarginalBracket

// Withhold sums each bracket's share of base. Anything above the last upper
// limit is not taxed.
func (s MarginalSchedule) Withhold(base decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero
	for _, bracket := range s {
		if base.GreaterThan(bracket.UpperLimit) {
			total = total.Add(bracket.UpperLimit.Sub(lower).Mul(bracket.Rate))
			lower = bracket.UpperLimit
			continue
		}
		total = total.Add(base.Sub(lower).Mul(bracket.Rate))
		break
	}
	return total
}

// DeductionBracket taxes the whole base at Rate and subtracts Deduction.
type DeductionBracket struct {
	UpperLimit decimal.Decimal
	Rate       decimal.Decimal
	Deduction  decimal.Decimal
}

// DeductionSchedule must be ordered by ascending UpperLimit. The last bracket
// has no upper limit and catches every base above the one before it.
type DeductionSchedule []DeductionBracket

// Bracket returns the first bracket whose upper limit base does not exceed.
func (s DeductionSchedule) Bracket(base decimal.Decimal) (DeductionBracket, bool) {
	for i, bracket := range s {
		if i == len(s)-1 || base.LessThanOrEqual(bracket.UpperLimit) {
			return bracket, true
		}
	}
	return DeductionBracket{}, false
}

// Withhold never returns less than zero.
func (s DeductionSchedule) Withhold(base decimal.Decimal) decimal.Decimal {
	bracket, ok := s.Bracket(base)
	if !ok {
		return decimal.Zero
	}
	return decimal.Max(base.Mul(bracket.Rate).Sub(bracket.Deduction), decimal.Zero)
}
