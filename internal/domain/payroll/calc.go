package payroll

import "github.com/shopspring/decimal"

// ComputeINSS expects a positive gross salary. Negative input is not rejected
// and yields a negative contribution.
func ComputeINSS(grossSalary decimal.Decimal) decimal.Decimal {
	return INSSSchedule.Withhold(grossSalary)
}

func ComputeIRRF(grossSalary, inss decimal.Decimal) decimal.Decimal {
	return IRRFSchedule.Withhold(grossSalary.Sub(inss))
}

func ComputeAdvance(grossSalary decimal.Decimal, receiveAdvance bool) decimal.Decimal {
	if !receiveAdvance {
		return decimal.Zero
	}
	return grossSalary.Mul(AdvanceRate)
}

// CalculateNetSalary validates nothing; callers parse input with
// ParseGrossSalary or ValidateGrossSalary first.
func CalculateNetSalary(grossSalary decimal.Decimal, receiveAdvance bool) Payslip {
	inss := ComputeINSS(grossSalary)
	irrf := ComputeIRRF(grossSalary, inss)
	advance := ComputeAdvance(grossSalary, receiveAdvance)

	return Payslip{
		GrossSalary:    grossSalary,
		ReceiveAdvance: receiveAdvance,
		INSS:           inss,
		IRRF:           irrf,
		AdvanceSalary:  advance,
		NetSalary:      grossSalary.Sub(inss).Sub(irrf).Sub(advance),
	}
}
