package payroll

import "context"

type PayrollRepository interface {
	// Periods
	CreatePeriodWithItems(ctx context.Context, period PayrollPeriod, items []PayrollItem) (PayrollPeriod, []PayrollItem, error)
	GetPeriodByID(ctx context.Context, id string) (PayrollPeriod, error)
	ListPeriods(ctx context.Context, status PayrollStatus) ([]PayrollPeriod, error)
	UpdatePeriod(ctx context.Context, period PayrollPeriod) error

	// Items
	GetItemByID(ctx context.Context, id string) (PayrollItem, error)
	ListItemsByPayroll(ctx context.Context, payrollID string) ([]PayrollItem, error)
	ListItemsByEmployee(ctx context.Context, employeeID string) ([]PayrollItem, error)
	UpdateItem(ctx context.Context, item PayrollItem) error
}
