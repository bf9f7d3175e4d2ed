package report

import (
	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/payroll"
)

// PeriodSummaryResponse is the per-period report consumed by the reporting
// and approval review screens.
type PeriodSummaryResponse struct {
	Payroll       payroll.PayrollPeriodResponse `json:"payroll"`
	EmployeeCount int                           `json:"employee_count"`
	Items         []payroll.PayrollItemResponse `json:"items"`
}

// EmployeeHistoryEntry is one payroll line joined with its period metadata.
type EmployeeHistoryEntry struct {
	Item         payroll.PayrollItemResponse `json:"item"`
	Period       string                      `json:"period"`
	PeriodStatus string                      `json:"period_status"`
	StartDate    string                      `json:"start_date"`
	EndDate      string                      `json:"end_date"`
}

type EmployeeHistoryResponse struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	Entries      []EmployeeHistoryEntry `json:"entries"`
	TotalNetPaid decimal.Decimal        `json:"total_net_paid"`
}

// ReceiptResponse carries everything a payment receipt needs; rendering
// (PDF/HTML) happens outside this service.
type ReceiptResponse struct {
	OrganizationName string                      `json:"organization_name"`
	NIT              string                      `json:"nit"`
	Address          string                      `json:"address"`
	Period           string                      `json:"period"`
	StartDate        string                      `json:"start_date"`
	EndDate          string                      `json:"end_date"`
	EmployeeName     string                      `json:"employee_name"`
	EmployeeDocument string                      `json:"employee_document"`
	Position         string                      `json:"position"`
	Item             payroll.PayrollItemResponse `json:"item"`
}
