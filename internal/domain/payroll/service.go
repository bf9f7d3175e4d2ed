package payroll

import "context"

// PayrollService is the core calculation and approval engine exposed to the
// HTTP layer. The acting admin identity is passed explicitly so audit fields
// never depend on ambient state.
type PayrollService interface {
	BuildPayroll(ctx context.Context, req BuildPayrollRequest) (BuildPayrollResponse, error)
	GetPeriod(ctx context.Context, id string) (PayrollPeriodResponse, error)
	ListPeriods(ctx context.Context, status PayrollStatus) ([]PayrollPeriodResponse, error)
	ListItems(ctx context.Context, payrollID string) ([]PayrollItemResponse, error)
	EditItem(ctx context.Context, itemID string, req EditPayrollItemRequest) (PayrollItemResponse, error)
	Approve(ctx context.Context, id, actor, notes string) (PayrollPeriodResponse, error)
	Reject(ctx context.Context, id, actor, notes string) (PayrollPeriodResponse, error)
}
