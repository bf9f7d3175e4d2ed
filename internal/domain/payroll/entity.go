package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollStatus string

const (
	PayrollStatusPendiente PayrollStatus = "Pendiente"
	PayrollStatusAprobado  PayrollStatus = "Aprobado"
	PayrollStatusRechazado PayrollStatus = "Rechazado"
)

// Terminal reports whether the status accepts no further transitions.
func (s PayrollStatus) Terminal() bool {
	return s == PayrollStatusAprobado || s == PayrollStatusRechazado
}

// PayrollPeriod is one calculation run over the roster for a date range.
// Created Pendiente together with its items; totals are recomputed from the
// items on approval so line edits can never leave them stale.
type PayrollPeriod struct {
	ID        string
	Period    string
	StartDate time.Time
	EndDate   time.Time
	Status    PayrollStatus

	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal

	ApprovedBy     *string
	ApprovedAt     *time.Time
	ApprovalNotes  *string
	RejectedBy     *string
	RejectedAt     *time.Time
	RejectionNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayrollItem is one employee's computed line inside a period. BaseSalary is
// a snapshot of the employee salary at calculation time.
type PayrollItem struct {
	ID         string
	PayrollID  string
	EmployeeID string

	BaseSalary       decimal.Decimal
	DaysWorked       int
	DaysSalary       decimal.Decimal
	OvertimeHours    decimal.Decimal
	OvertimePay      decimal.Decimal
	Bonuses          decimal.Decimal
	GrossSalary      decimal.Decimal
	HealthDeduction  decimal.Decimal
	PensionDeduction decimal.Decimal
	OtherDeductions  decimal.Decimal
	NetSalary        decimal.Decimal
	Notes            *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName     *string
	EmployeePosition *string
}

// TotalItemDeductions is the full deduction amount for one line.
func (i PayrollItem) TotalItemDeductions() decimal.Decimal {
	return i.HealthDeduction.Add(i.PensionDeduction).Add(i.OtherDeductions)
}

// Totals aggregates gross, deductions and net over a set of items.
type Totals struct {
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// SumItems recomputes period totals from the current items.
func SumItems(items []PayrollItem) Totals {
	t := Totals{Gross: decimal.Zero, Deductions: decimal.Zero, Net: decimal.Zero}
	for _, item := range items {
		t.Gross = t.Gross.Add(item.GrossSalary)
		t.Deductions = t.Deductions.Add(item.TotalItemDeductions())
		t.Net = t.Net.Add(item.NetSalary)
	}
	return t
}

// EditField names the payroll item fields an admin may edit in place.
type EditField string

const (
	EditFieldWorkedDays      EditField = "workedDays"
	EditFieldOtherDeductions EditField = "otherDeductions"
)

func (f EditField) Valid() bool {
	return f == EditFieldWorkedDays || f == EditFieldOtherDeductions
}
