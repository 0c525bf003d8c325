package payroll

import "errors"

var (
	ErrInvalidGrossSalary   = errors.New("gross salary must be a positive decimal")
	ErrInvalidAdvanceAnswer = errors.New("advance answer must be 'y' or 'n'")
)
