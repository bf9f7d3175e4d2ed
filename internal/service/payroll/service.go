package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	eventRepo    workevent.WorkEventRepository
	settingsRepo settings.SettingsRepository
	now          func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	eventRepo workevent.WorkEventRepository,
	settingsRepo settings.SettingsRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

func (s *PayrollServiceImpl) currentSettings(ctx context.Context) (settings.Settings, error) {
	st, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Default(), nil
		}
		return settings.Settings{}, err
	}
	return st, nil
}

// BuildPayroll runs the calculator over every active employee and persists
// the draft period with its items in one transaction. Nothing is written
// when validation fails.
func (s *PayrollServiceImpl) BuildPayroll(ctx context.Context, req payroll.BuildPayrollRequest) (payroll.BuildPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BuildPayrollResponse{}, err
	}
	start, end := req.Dates()

	employees, err := s.employeeRepo.List(ctx, true)
	if err != nil {
		return payroll.BuildPayrollResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.BuildPayrollResponse{}, payroll.ErrNoActiveEmployees
	}

	events, err := s.eventRepo.List(ctx, workevent.WorkEventFilter{Status: workevent.EventStatusAprobado})
	if err != nil {
		return payroll.BuildPayrollResponse{}, fmt.Errorf("failed to list work events: %w", err)
	}

	st, err := s.currentSettings(ctx)
	if err != nil {
		return payroll.BuildPayrollResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	items := make([]payroll.PayrollItem, 0, len(employees))
	for _, emp := range employees {
		part := RelevantEvents(emp.ID, start, end, events)
		items = append(items, ComputeLine(emp, start, end, part, st))
	}

	totals := payroll.SumItems(items)
	period := payroll.PayrollPeriod{
		Period:          req.Period,
		StartDate:       start,
		EndDate:         end,
		Status:          payroll.PayrollStatusPendiente,
		TotalGross:      totals.Gross,
		TotalDeductions: totals.Deductions,
		TotalNet:        totals.Net,
	}

	createdPeriod, createdItems, err := s.payrollRepo.CreatePeriodWithItems(ctx, period, items)
	if err != nil {
		return payroll.BuildPayrollResponse{}, fmt.Errorf("failed to persist payroll period: %w", err)
	}

	return payroll.BuildPayrollResponse{
		Payroll: mapToPeriodResponse(createdPeriod),
		Items:   mapToItemResponses(createdItems),
	}, nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PayrollPeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PayrollPeriodResponse{}, err
	}
	return mapToPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, status payroll.PayrollStatus) ([]payroll.PayrollPeriodResponse, error) {
	periods, err := s.payrollRepo.ListPeriods(ctx, status)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollPeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, mapToPeriodResponse(p))
	}
	return result, nil
}

func (s *PayrollServiceImpl) ListItems(ctx context.Context, payrollID string) ([]payroll.PayrollItemResponse, error) {
	if _, err := s.payrollRepo.GetPeriodByID(ctx, payrollID); err != nil {
		return nil, err
	}
	items, err := s.payrollRepo.ListItemsByPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	return mapToItemResponses(items), nil
}

// EditItem applies an in-place line edit and re-derives the dependent
// amounts. Edits are only accepted while the owning period is Pendiente.
func (s *PayrollServiceImpl) EditItem(ctx context.Context, itemID string, req payroll.EditPayrollItemRequest) (payroll.PayrollItemResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	item, err := s.payrollRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, item.PayrollID)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}
	if period.Status.Terminal() {
		return payroll.PayrollItemResponse{}, payroll.ErrPayrollAlreadyProcessed
	}

	st, err := s.currentSettings(ctx)
	if err != nil {
		return payroll.PayrollItemResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	updated, err := ApplyEdit(item, payroll.EditField(req.Field), req.Value, st)
	if err != nil {
		return payroll.PayrollItemResponse{}, err
	}

	if err := s.payrollRepo.UpdateItem(ctx, updated); err != nil {
		return payroll.PayrollItemResponse{}, fmt.Errorf("failed to update payroll item: %w", err)
	}

	return mapToItemResponse(updated), nil
}

// Approve moves a Pendiente period to Aprobado. Totals are recomputed from
// the current items first so edits made after the draft never leave the
// stored totals stale.
func (s *PayrollServiceImpl) Approve(ctx context.Context, id, actor, notes string) (payroll.PayrollPeriodResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PayrollPeriodResponse{}, err
	}
	if period.Status != payroll.PayrollStatusPendiente {
		return payroll.PayrollPeriodResponse{}, payroll.ErrPayrollAlreadyProcessed
	}

	items, err := s.payrollRepo.ListItemsByPayroll(ctx, id)
	if err != nil {
		return payroll.PayrollPeriodResponse{}, fmt.Errorf("failed to list payroll items: %w", err)
	}
	totals := payroll.SumItems(items)

	approvedAt := s.now()
	period.Status = payroll.PayrollStatusAprobado
	period.ApprovedAt = &approvedAt
	period.ApprovedBy = &actor
	period.TotalGross = totals.Gross
	period.TotalDeductions = totals.Deductions
	period.TotalNet = totals.Net
	if notes != "" {
		period.ApprovalNotes = &notes
	}

	if err := s.payrollRepo.UpdatePeriod(ctx, period); err != nil {
		return payroll.PayrollPeriodResponse{}, fmt.Errorf("failed to update payroll period: %w", err)
	}

	return mapToPeriodResponse(period), nil
}

// Reject moves a Pendiente period to Rechazado. A rejection reason is
// mandatory; totals are left untouched.
func (s *PayrollServiceImpl) Reject(ctx context.Context, id, actor, notes string) (payroll.PayrollPeriodResponse, error) {
	req := payroll.RejectPayrollRequest{Notes: notes}
	if err := req.Validate(); err != nil {
		return payroll.PayrollPeriodResponse{}, err
	}

	period, err := s.payrollRepo.GetPeriodByID(ctx, id)
	if err != nil {
		return payroll.PayrollPeriodResponse{}, err
	}
	if period.Status != payroll.PayrollStatusPendiente {
		return payroll.PayrollPeriodResponse{}, payroll.ErrPayrollAlreadyProcessed
	}

	rejectedAt := s.now()
	period.Status = payroll.PayrollStatusRechazado
	period.RejectedAt = &rejectedAt
	period.RejectedBy = &actor
	period.RejectionNotes = &notes

	if err := s.payrollRepo.UpdatePeriod(ctx, period); err != nil {
		return payroll.PayrollPeriodResponse{}, fmt.Errorf("failed to update payroll period: %w", err)
	}

	return mapToPeriodResponse(period), nil
}

// ========== HELPERS ==========

func mapToPeriodResponse(p payroll.PayrollPeriod) payroll.PayrollPeriodResponse {
	return payroll.PayrollPeriodResponse{
		ID:              p.ID,
		Period:          p.Period,
		StartDate:       p.StartDate.Format("2006-01-02"),
		EndDate:         p.EndDate.Format("2006-01-02"),
		Status:          string(p.Status),
		TotalGross:      p.TotalGross,
		TotalDeductions: p.TotalDeductions,
		TotalNet:        p.TotalNet,
		ApprovedBy:      p.ApprovedBy,
		ApprovedAt:      formatTimePtr(p.ApprovedAt),
		ApprovalNotes:   p.ApprovalNotes,
		RejectedBy:      p.RejectedBy,
		RejectedAt:      formatTimePtr(p.RejectedAt),
		RejectionNotes:  p.RejectionNotes,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

func mapToItemResponse(i payroll.PayrollItem) payroll.PayrollItemResponse {
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

func mapToItemResponses(items []payroll.PayrollItem) []payroll.PayrollItemResponse {
	result := make([]payroll.PayrollItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, mapToItemResponse(i))
	}
	return result
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	str := t.Format(time.RFC3339)
	return &str
}
