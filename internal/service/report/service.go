package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/report"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
)

type ReportServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	settingsRepo settings.SettingsRepository
}

func NewReportService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
) report.ReportService {
	return &ReportServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *ReportServiceImpl) PeriodSummary(ctx context.Context, payrollID string) (report.PeriodSummaryResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, payrollID)
	if err != nil {
		return report.PeriodSummaryResponse{}, err
	}

	items, err := s.payrollRepo.ListItemsByPayroll(ctx, payrollID)
	if err != nil {
		return report.PeriodSummaryResponse{}, fmt.Errorf("failed to list payroll items: %w", err)
	}

	return report.PeriodSummaryResponse{
		Payroll:       toPeriodResponse(period),
		EmployeeCount: len(items),
		Items:         toItemResponses(items),
	}, nil
}

// EmployeeHistory returns every payroll line for one employee joined with
// its period. TotalNetPaid only counts lines from Aprobado periods since
// pending and rejected runs were never paid out.
func (s *ReportServiceImpl) EmployeeHistory(ctx context.Context, employeeID string) (report.EmployeeHistoryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.EmployeeHistoryResponse{}, err
	}

	items, err := s.payrollRepo.ListItemsByEmployee(ctx, employeeID)
	if err != nil {
		return report.EmployeeHistoryResponse{}, fmt.Errorf("failed to list payroll items: %w", err)
	}

	entries := make([]report.EmployeeHistoryEntry, 0, len(items))
	totalNet := decimal.Zero
	for _, item := range items {
		period, err := s.payrollRepo.GetPeriodByID(ctx, item.PayrollID)
		if err != nil {
			return report.EmployeeHistoryResponse{}, err
		}
		entries = append(entries, report.EmployeeHistoryEntry{
			Item:         toItemResponse(item),
			Period:       period.Period,
			PeriodStatus: string(period.Status),
			StartDate:    period.StartDate.Format("2006-01-02"),
			EndDate:      period.EndDate.Format("2006-01-02"),
		})
		if period.Status == payroll.PayrollStatusAprobado {
			totalNet = totalNet.Add(item.NetSalary)
		}
	}

	return report.EmployeeHistoryResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Entries:      entries,
		TotalNetPaid: totalNet,
	}, nil
}

// Receipt assembles the payment receipt payload for one employee in one
// period. Rendering is left to the caller.
func (s *ReportServiceImpl) Receipt(ctx context.Context, payrollID, employeeID string) (report.ReceiptResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, payrollID)
	if err != nil {
		return report.ReceiptResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.ReceiptResponse{}, err
	}

	items, err := s.payrollRepo.ListItemsByPayroll(ctx, payrollID)
	if err != nil {
		return report.ReceiptResponse{}, fmt.Errorf("failed to list payroll items: %w", err)
	}

	var line *payroll.PayrollItem
	for i := range items {
		if items[i].EmployeeID == employeeID {
			line = &items[i]
			break
		}
	}
	if line == nil {
		return report.ReceiptResponse{}, payroll.ErrPayrollItemNotFound
	}

	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return report.ReceiptResponse{}, fmt.Errorf("failed to load settings: %w", err)
		}
		st = settings.Default()
	}

	return report.ReceiptResponse{
		OrganizationName: st.OrganizationName,
		NIT:              st.NIT,
		Address:          st.Address,
		Period:           period.Period,
		StartDate:        period.StartDate.Format("2006-01-02"),
		EndDate:          period.EndDate.Format("2006-01-02"),
		EmployeeName:     emp.FullName(),
		EmployeeDocument: emp.Document,
		Position:         emp.Position,
		Item:             toItemResponse(*line),
	}, nil
}

// ========== HELPERS ==========

func toPeriodResponse(p payroll.PayrollPeriod) payroll.PayrollPeriodResponse {
	resp := payroll.PayrollPeriodResponse{
		ID:              p.ID,
		Period:          p.Period,
		StartDate:       p.StartDate.Format("2006-01-02"),
		EndDate:         p.EndDate.Format("2006-01-02"),
		Status:          string(p.Status),
		TotalGross:      p.TotalGross,
		TotalDeductions: p.TotalDeductions,
		TotalNet:        p.TotalNet,
		ApprovedBy:      p.ApprovedBy,
		ApprovalNotes:   p.ApprovalNotes,
		RejectedBy:      p.RejectedBy,
		RejectionNotes:  p.RejectionNotes,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.ApprovedAt != nil {
		approvedAt := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	if p.RejectedAt != nil {
		rejectedAt := p.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &rejectedAt
	}
	return resp
}

func toItemResponse(i payroll.PayrollItem) payroll.PayrollItemResponse {
	return payroll.PayrollItemResponse{
		ID:               i.ID,
		PayrollID:        i.PayrollID,
		EmployeeID:       i.EmployeeID,
		EmployeeName:     i.EmployeeName,
		EmployeePosition: i.EmployeePosition,
		BaseSalary:       i.BaseSalary,
		DaysWorked:       i.DaysWorked,
		DaysSalary:       i.DaysSalary,
		OvertimeHours:    i.OvertimeHours,
		OvertimePay:      i.OvertimePay,
		Bonuses:          i.Bonuses,
		GrossSalary:      i.GrossSalary,
		HealthDeduction:  i.HealthDeduction,
		PensionDeduction: i.PensionDeduction,
		OtherDeductions:  i.OtherDeductions,
		NetSalary:        i.NetSalary,
		Notes:            i.Notes,
	}
}

func toItemResponses(items []payroll.PayrollItem) []payroll.PayrollItemResponse {
	result := make([]payroll.PayrollItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, toItemResponse(i))
	}
	return result
}
