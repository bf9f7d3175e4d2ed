package report

import "context"

type ReportService interface {
	PeriodSummary(ctx context.Context, payrollID string) (PeriodSummaryResponse, error)
	EmployeeHistory(ctx context.Context, employeeID string) (EmployeeHistoryResponse, error)
	Receipt(ctx context.Context, payrollID, employeeID string) (ReceiptResponse, error)
}
