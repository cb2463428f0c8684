package payroll

import "errors"

// Payroll domain errors
var (
	ErrRunNotFound     = errors.New("pay run not found")
	ErrPayslipNotFound = errors.New("payslip snapshot not found")
	ErrRunFinalized    = errors.New("pay run is finalized and cannot be edited")
)
