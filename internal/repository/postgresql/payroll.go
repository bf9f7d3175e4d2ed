package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollPeriodColumns = `
	id, period, start_date, end_date, status,
	total_gross, total_deductions, total_net,
	approved_by, approved_at, approval_notes,
	rejected_by, rejected_at, rejection_notes,
	created_at, updated_at
`

const payrollItemColumns = `
	pi.id, pi.payroll_id, pi.employee_id,
	pi.base_salary, pi.days_worked, pi.days_salary,
	pi.overtime_hours, pi.overtime_pay, pi.bonuses, pi.gross_salary,
	pi.health_deduction, pi.pension_deduction, pi.other_deductions, pi.net_salary,
	pi.notes, pi.created_at, pi.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	e.position AS employee_position
`

func scanPayrollPeriod(row pgx.Row) (payroll.PayrollPeriod, error) {
	var p payroll.PayrollPeriod
	err := row.Scan(
		&p.ID,
		&p.Period,
		&p.StartDate,
		&p.EndDate,
		&p.Status,
		&p.TotalGross,
		&p.TotalDeductions,
		&p.TotalNet,
		&p.ApprovedBy,
		&p.ApprovedAt,
		&p.ApprovalNotes,
		&p.RejectedBy,
		&p.RejectedAt,
		&p.RejectionNotes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func scanPayrollItem(row pgx.Row) (payroll.PayrollItem, error) {
	var i payroll.PayrollItem
	err := row.Scan(
		&i.ID,
		&i.PayrollID,
		&i.EmployeeID,
		&i.BaseSalary,
		&i.DaysWorked,
		&i.DaysSalary,
		&i.OvertimeHours,
		&i.OvertimePay,
		&i.Bonuses,
		&i.GrossSalary,
		&i.HealthDeduction,
		&i.PensionDeduction,
		&i.OtherDeductions,
		&i.NetSalary,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.EmployeeName,
		&i.EmployeePosition,
	)
	return i, err
}

// CreatePeriodWithItems persists the period and all its items atomically.
// Either the whole calculation lands or none of it does.
func (r *payrollRepositoryImpl) CreatePeriodWithItems(ctx context.Context, period payroll.PayrollPeriod, items []payroll.PayrollItem) (payroll.PayrollPeriod, []payroll.PayrollItem, error) {
	created := period
	createdItems := make([]payroll.PayrollItem, 0, len(items))

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		periodQuery := `
			INSERT INTO payroll_periods (
				id, period, start_date, end_date, status,
				total_gross, total_deductions, total_net,
				created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5,
				$6, $7, $8,
				NOW(), NOW()
			) RETURNING created_at, updated_at
		`
		created.ID = uuid.NewString()
		err := tx.QueryRow(ctx, periodQuery,
			created.ID, period.Period, period.StartDate, period.EndDate, period.Status,
			period.TotalGross, period.TotalDeductions, period.TotalNet,
		).Scan(&created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}

		itemQuery := `
			INSERT INTO payroll_items (
				id, payroll_id, employee_id,
				base_salary, days_worked, days_salary,
				overtime_hours, overtime_pay, bonuses, gross_salary,
				health_deduction, pension_deduction, other_deductions, net_salary,
				notes, created_at, updated_at
			) VALUES (
				$1, $2, $3,
				$4, $5, $6,
				$7, $8, $9, $10,
				$11, $12, $13, $14,
				$15, NOW(), NOW()
			) RETURNING created_at, updated_at
		`
		for _, item := range items {
			item.ID = uuid.NewString()
			item.PayrollID = created.ID
			err := tx.QueryRow(ctx, itemQuery,
				item.ID, item.PayrollID, item.EmployeeID,
				item.BaseSalary, item.DaysWorked, item.DaysSalary,
				item.OvertimeHours, item.OvertimePay, item.Bonuses, item.GrossSalary,
				item.HealthDeduction, item.PensionDeduction, item.OtherDeductions, item.NetSalary,
				item.Notes,
			).Scan(&item.CreatedAt, &item.UpdatedAt)
			if err != nil {
				return err
			}
			createdItems = append(createdItems, item)
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollPeriod{}, nil, err
	}

	return created, createdItems, nil
}

func (r *payrollRepositoryImpl) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollPeriodColumns + ` FROM payroll_periods WHERE id = $1`

	p, err := scanPayrollPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollPeriod{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollPeriod{}, err
	}
	return p, nil
}

func (r *payrollRepositoryImpl) ListPeriods(ctx context.Context, status payroll.PayrollStatus) ([]payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollPeriodColumns + `
		FROM payroll_periods
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		p, err := scanPayrollPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	return periods, rows.Err()
}

func (r *payrollRepositoryImpl) UpdatePeriod(ctx context.Context, period payroll.PayrollPeriod) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods SET
			status           = $2,
			total_gross      = $3,
			total_deductions = $4,
			total_net        = $5,
			approved_by      = $6,
			approved_at      = $7,
			approval_notes   = $8,
			rejected_by      = $9,
			rejected_at      = $10,
			rejection_notes  = $11,
			updated_at       = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, period.ID,
		period.Status, period.TotalGross, period.TotalDeductions, period.TotalNet,
		period.ApprovedBy, period.ApprovedAt, period.ApprovalNotes,
		period.RejectedBy, period.RejectedAt, period.RejectionNotes,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}
	return nil
}

func (r *payrollRepositoryImpl) GetItemByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollItemColumns + `
		FROM payroll_items pi
		INNER JOIN employees e ON pi.employee_id = e.id
		WHERE pi.id = $1
	`

	i, err := scanPayrollItem(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
		}
		return payroll.PayrollItem{}, err
	}
	return i, nil
}

func (r *payrollRepositoryImpl) ListItemsByPayroll(ctx context.Context, payrollID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollItemColumns + `
		FROM payroll_items pi
		INNER JOIN employees e ON pi.employee_id = e.id
		WHERE pi.payroll_id = $1
		ORDER BY e.last_name, e.first_name
	`

	return r.queryItems(ctx, q, query, payrollID)
}

func (r *payrollRepositoryImpl) ListItemsByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollItemColumns + `
		FROM payroll_items pi
		INNER JOIN employees e ON pi.employee_id = e.id
		WHERE pi.employee_id = $1
		ORDER BY pi.created_at DESC
	`

	return r.queryItems(ctx, q, query, employeeID)
}

func (r *payrollRepositoryImpl) queryItems(ctx context.Context, q database.Querier, query string, args ...any) ([]payroll.PayrollItem, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		i, err := scanPayrollItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *payrollRepositoryImpl) UpdateItem(ctx context.Context, item payroll.PayrollItem) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_items SET
			days_worked       = $2,
			days_salary       = $3,
			overtime_hours    = $4,
			overtime_pay      = $5,
			bonuses           = $6,
			gross_salary      = $7,
			health_deduction  = $8,
			pension_deduction = $9,
			other_deductions  = $10,
			net_salary        = $11,
			notes             = $12,
			updated_at        = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, item.ID,
		item.DaysWorked, item.DaysSalary, item.OvertimeHours, item.OvertimePay,
		item.Bonuses, item.GrossSalary, item.HealthDeduction, item.PensionDeduction,
		item.OtherDeductions, item.NetSalary, item.Notes,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollItemNotFound
	}
	return nil
}
