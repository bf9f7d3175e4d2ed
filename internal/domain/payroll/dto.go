package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

// ========== CALCULATION DTOs ==========

type BuildPayrollRequest struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *BuildPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "period is required"})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates returns the parsed period bounds. Call only after Validate.
func (r *BuildPayrollRequest) Dates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", r.StartDate)
	end, _ = time.Parse("2006-01-02", r.EndDate)
	return start, end
}

// ========== EDIT DTOs ==========

// EditPayrollItemRequest carries an in-place line edit. Value arrives as the
// raw form input string; otherDeductions coercion rules live in the calculator.
type EditPayrollItemRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (r *EditPayrollItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if !EditField(r.Field).Valid() {
		errs = append(errs, validator.ValidationError{Field: "field", Message: "field must be workedDays or otherDeductions"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== APPROVAL DTOs ==========

type ApprovePayrollRequest struct {
	Notes string `json:"notes"`
}

type RejectPayrollRequest struct {
	Notes string `json:"notes"`
}

func (r *RejectPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Notes) {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "rejection notes are required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type PayrollPeriodResponse struct {
	ID              string          `json:"id"`
	Period          string          `json:"period"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	Status          string          `json:"status"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	ApprovalNotes   *string         `json:"approval_notes,omitempty"`
	RejectedBy      *string         `json:"rejected_by,omitempty"`
	RejectedAt      *string         `json:"rejected_at,omitempty"`
	RejectionNotes  *string         `json:"rejection_notes,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

type PayrollItemResponse struct {
	ID               string          `json:"id"`
	PayrollID        string          `json:"payroll_id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	EmployeePosition *string         `json:"employee_position,omitempty"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	DaysWorked       int             `json:"days_worked"`
	DaysSalary       decimal.Decimal `json:"days_salary"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	Bonuses          decimal.Decimal `json:"bonuses"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	HealthDeduction  decimal.Decimal `json:"health_deduction"`
	PensionDeduction decimal.Decimal `json:"pension_deduction"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	Notes            *string         `json:"notes,omitempty"`
}

type BuildPayrollResponse struct {
	Payroll PayrollPeriodResponse `json:"payroll"`
	Items   []PayrollItemResponse `json:"items"`
}
