package payroll

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

// Fixed payroll conventions: a monthly salary covers a 30-day month and a
// working day is 8 hours, independent of the actual calendar.
var (
	daysPerMonth = decimal.NewFromInt(30)
	hoursPerDay  = decimal.NewFromInt(8)
	hundred      = decimal.NewFromInt(100)
)

// EventPartition splits an employee's in-period approved events into the
// two groups the calculator cares about.
type EventPartition struct {
	NonWorked []workevent.WorkEvent
	Overtime  []workevent.WorkEvent
}

// RelevantEvents selects the events that participate in a calculation run:
// approved, belonging to the employee, and date-overlapping the period.
// "Horas Extra" events land in Overtime, everything else in NonWorked.
func RelevantEvents(employeeID string, start, end time.Time, events []workevent.WorkEvent) EventPartition {
	var part EventPartition
	for _, ev := range events {
		if ev.EmployeeID != employeeID || ev.Status != workevent.EventStatusAprobado {
			continue
		}
		if !ev.OverlapsPeriod(start, end) {
			continue
		}
		if ev.Type.UsesHours() {
			part.Overtime = append(part.Overtime, ev)
		} else {
			part.NonWorked = append(part.NonWorked, ev)
		}
	}
	return part
}

// PeriodDays counts the days in [start, end], both bounds inclusive.
func PeriodDays(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// ComputeLine derives one employee's draft payroll item for the period.
//
//	workedDays = max(0, periodDays - sum(nonWorked.days))
//	daysSalary = salary/30 * workedDays
//	overtimePay = sum(overtime.hours) * (salary/30/8) * overtimeRate
//	gross = daysSalary + overtimePay
//	health/pension = gross * rate/100, net = gross - health - pension
//
// otherDeductions starts at zero; it only enters through a line edit.
func ComputeLine(emp employee.Employee, start, end time.Time, part EventPartition, st settings.Settings) payroll.PayrollItem {
	totalDays := PeriodDays(start, end)

	nonWorkedDays := 0
	for _, ev := range part.NonWorked {
		nonWorkedDays += ev.Days
	}
	workedDays := totalDays - nonWorkedDays
	if workedDays < 0 {
		workedDays = 0
	}

	dailySalary := emp.Salary.Div(daysPerMonth)
	daysSalary := dailySalary.Mul(decimal.NewFromInt(int64(workedDays)))

	overtimeHours := decimal.Zero
	for _, ev := range part.Overtime {
		overtimeHours = overtimeHours.Add(ev.Hours)
	}
	hourlyRate := dailySalary.Div(hoursPerDay)
	overtimePay := overtimeHours.Mul(hourlyRate).Mul(st.OvertimeRate)

	grossSalary := daysSalary.Add(overtimePay)
	healthDeduction := grossSalary.Mul(st.HealthContributionRate).Div(hundred)
	pensionDeduction := grossSalary.Mul(st.PensionContributionRate).Div(hundred)
	netSalary := grossSalary.Sub(healthDeduction).Sub(pensionDeduction)

	return payroll.PayrollItem{
		EmployeeID:       emp.ID,
		BaseSalary:       emp.Salary,
		DaysWorked:       workedDays,
		DaysSalary:       daysSalary,
		OvertimeHours:    overtimeHours,
		OvertimePay:      overtimePay,
		Bonuses:          decimal.Zero,
		GrossSalary:      grossSalary,
		HealthDeduction:  healthDeduction,
		PensionDeduction: pensionDeduction,
		OtherDeductions:  decimal.Zero,
		NetSalary:        netSalary,
	}
}

// ApplyEdit recomputes a line after an admin edits workedDays or
// otherDeductions. Applying the same edit twice yields the same item.
//
// A workedDays edit rebuilds gross from days salary alone, discarding any
// previously computed overtime pay. That mirrors the historical behavior of
// the review screen and is intentional; see the calculator tests.
func ApplyEdit(item payroll.PayrollItem, field payroll.EditField, value string, st settings.Settings) (payroll.PayrollItem, error) {
	switch field {
	case payroll.EditFieldWorkedDays:
		days, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || days < 0 {
			return payroll.PayrollItem{}, validator.ValidationErrors{
				{Field: "value", Message: "workedDays must be a non-negative integer"},
			}
		}
		item.DaysWorked = days
		item.DaysSalary = item.BaseSalary.Div(daysPerMonth).Mul(decimal.NewFromInt(int64(days)))
		item.OvertimePay = decimal.Zero
		item.GrossSalary = item.DaysSalary

	case payroll.EditFieldOtherDeductions:
		// Malformed or empty input coerces to zero on purpose; admins clear
		// the field to remove a deduction.
		parsed, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil || parsed.IsNegative() {
			parsed = decimal.Zero
		}
		item.OtherDeductions = parsed

	default:
		return payroll.PayrollItem{}, validator.ValidationErrors{
			{Field: "field", Message: "field must be workedDays or otherDeductions"},
		}
	}

	item.HealthDeduction = item.GrossSalary.Mul(st.HealthContributionRate).Div(hundred)
	item.PensionDeduction = item.GrossSalary.Mul(st.PensionContributionRate).Div(hundred)
	item.NetSalary = item.GrossSalary.Sub(item.TotalItemDeductions())

	return item, nil
}
