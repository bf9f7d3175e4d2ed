package payroll

import "errors"

var (
	ErrPayrollNotFound         = errors.New("payroll period not found")
	ErrPayrollItemNotFound     = errors.New("payroll item not found")
	ErrPayrollAlreadyProcessed = errors.New("payroll period already processed")
	ErrNoActiveEmployees       = errors.New("no active employees to calculate")
)
