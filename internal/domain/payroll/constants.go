package payroll

import "github.com/shopspring/decimal"

// AdvanceRate is the share of gross salary paid out early as a salary advance.
var AdvanceRate = decimal.RequireFromString("0.40")

// INSSSchedule is the 2024 social-security table. Salaries above the last
// upper limit contribute the full width of every tier and nothing more.
var INSSSchedule = MarginalSchedule{
	{UpperLimit: decimal.RequireFromString("1412.00"), Rate: decimal.RequireFromString("0.075")},
	{UpperLimit: decimal.RequireFromString("2666.68"), Rate: decimal.RequireFromString("0.09")},
	{UpperLimit: decimal.RequireFromString("4000.03"), Rate: decimal.RequireFromString("0.12")},
	{UpperLimit: decimal.RequireFromString("7786.02"), Rate: decimal.RequireFromString("0.14")},
}

// IRRFSchedule is the monthly income-tax table. The last bracket is open ended.
var IRRFSchedule = DeductionSchedule{
	{UpperLimit: decimal.RequireFromString("2112.00"), Rate: decimal.Zero, Deduction: decimal.Zero},
	{UpperLimit: decimal.RequireFromString("2826.65"), Rate: decimal.RequireFromString("0.075"), Deduction: decimal.RequireFromString("169.44")},
	{UpperLimit: decimal.RequireFromString("3751.05"), Rate: decimal.RequireFromString("0.15"), Deduction: decimal.RequireFromString("381.44")},
	{UpperLimit: decimal.RequireFromString("4664.68"), Rate: decimal.RequireFromString("0.225"), Deduction: decimal.RequireFromString("662.77")},
	{Rate: decimal.RequireFromString("0.275"), Deduction: decimal.RequireFromString("896.00")},
}

// MaxGrossSalary is the largest monthly gross salary accepted as input.
var MaxGrossSalary = decimal.New(1, 12)

const (
	DisplayPlaces = 2

	// Bounds on the decimal exponent of a gross salary, checked before its value.
	maxGrossExponent = 12
	maxGrossScale    = 8

	AdvanceAnswerYes = "Y"
	AdvanceAnswerNo  = "N"
)
