package payroll

import "github.com/shopspring/decimal"

// Payslip is the result of one calculation run. Build it with
// CalculateNetSalary; the fields are not meant to be changed afterwards.
type Payslip struct {
	GrossSalary    decimal.Decimal
	ReceiveAdvance bool
	INSS           decimal.Decimal
	IRRF           decimal.Decimal
	AdvanceSalary  decimal.Decimal
	NetSalary      decimal.Decimal
}

// TaxableSalary is the IRRF base: gross minus INSS.
func (p Payslip) TaxableSalary() decimal.Decimal {
	return p.GrossSalary.Sub(p.INSS)
}

// Display holds every money field of a payslip formatted to two places.
type Display struct {
	GrossSalary    string `json:"grossSalary"`
	TaxableSalary  string `json:"taxableSalary"`
	ReceiveAdvance bool   `json:"receiveAdvance"`
	INSS           string `json:"inss"`
	IRRF           string `json:"irrf"`
	AdvanceSalary  string `json:"advanceSalary"`
	NetSalary      string `json:"netSalary"`
}

func (p Payslip) Display() Display {
	return Display{
		GrossSalary:    FormatMoney(p.GrossSalary),
		TaxableSalary:  FormatMoney(p.TaxableSalary()),
		ReceiveAdvance: p.ReceiveAdvance,
		INSS:           FormatMoney(p.INSS),
		IRRF:           FormatMoney(p.IRRF),
		AdvanceSalary:  FormatMoney(p.AdvanceSalary),
		NetSalary:      FormatMoney(p.NetSalary),
	}
}

// FormatMoney rounds half away from zero to two places.
func FormatMoney(value decimal.Decimal) string {
	return value.StringFixed(DisplayPlaces)
}
