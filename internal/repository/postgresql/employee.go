package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, first_name, last_name, document, position, department, join_date,
	salary, bank_account, bank_name, account_type, email, phone, is_active,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.FirstName,
		&e.LastName,
		&e.Document,
		&e.Position,
		&e.Department,
		&e.JoinDate,
		&e.Salary,
		&e.BankAccount,
		&e.BankName,
		&e.AccountType,
		&e.Email,
		&e.Phone,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, first_name, last_name, document, position, department, join_date,
			salary, bank_account, bank_name, account_type, email, phone, is_active,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	e.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Document, e.Position, e.Department, e.JoinDate,
		e.Salary, e.BankAccount, e.BankName, e.AccountType, e.Email, e.Phone, e.IsActive,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrDocumentExists
		}
		return employee.Employee{}, err
	}

	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name   = COALESCE($2, first_name),
			last_name    = COALESCE($3, last_name),
			position     = COALESCE($4, position),
			department   = COALESCE($5, department),
			salary       = COALESCE($6, salary),
			bank_account = COALESCE($7, bank_account),
			bank_name    = COALESCE($8, bank_name),
			account_type = COALESCE($9, account_type),
			email        = COALESCE($10, email),
			phone        = COALESCE($11, phone),
			updated_at   = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, req.ID,
		req.FirstName, req.LastName, req.Position, req.Department, req.Salary,
		req.BankAccount, req.BankName, req.AccountType, req.Email, req.Phone,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
