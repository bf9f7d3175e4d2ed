package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/database"
)

type workEventRepositoryImpl struct {
	db *database.DB
}

func NewWorkEventRepository(db *database.DB) workevent.WorkEventRepository {
	return &workEventRepositoryImpl{db: db}
}

const workEventColumns = `
	we.id, we.employee_id, we.type, we.start_date, we.end_date, we.days, we.hours,
	we.description, we.document_ref, we.status,
	we.approved_by, we.approved_at, we.rejected_by, we.rejected_at,
	we.created_at, we.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

func scanWorkEvent(row pgx.Row) (workevent.WorkEvent, error) {
	var we workevent.WorkEvent
	err := row.Scan(
		&we.ID,
		&we.EmployeeID,
		&we.Type,
		&we.StartDate,
		&we.EndDate,
		&we.Days,
		&we.Hours,
		&we.Description,
		&we.DocumentRef,
		&we.Status,
		&we.ApprovedBy,
		&we.ApprovedAt,
		&we.RejectedBy,
		&we.RejectedAt,
		&we.CreatedAt,
		&we.UpdatedAt,
		&we.EmployeeName,
	)
	return we, err
}

func (r *workEventRepositoryImpl) Create(ctx context.Context, e workevent.WorkEvent) (workevent.WorkEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_events (
			id, employee_id, type, start_date, end_date, days, hours,
			description, document_ref, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	e.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		e.ID, e.EmployeeID, e.Type, e.StartDate, e.EndDate, e.Days, e.Hours,
		e.Description, e.DocumentRef, e.Status,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return workevent.WorkEvent{}, err
	}
	return e, nil
}

func (r *workEventRepositoryImpl) GetByID(ctx context.Context, id string) (workevent.WorkEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workEventColumns + `
		FROM work_events we
		INNER JOIN employees e ON we.employee_id = e.id
		WHERE we.id = $1
	`

	we, err := scanWorkEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workevent.WorkEvent{}, workevent.ErrWorkEventNotFound
		}
		return workevent.WorkEvent{}, err
	}
	return we, nil
}

func (r *workEventRepositoryImpl) List(ctx context.Context, filter workevent.WorkEventFilter) ([]workevent.WorkEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workEventColumns + `
		FROM work_events we
		INNER JOIN employees e ON we.employee_id = e.id
		WHERE ($1 = '' OR we.employee_id::text = $1)
		  AND ($2 = '' OR we.type = $2)
		  AND ($3 = '' OR we.status = $3)
		ORDER BY we.start_date DESC
	`

	rows, err := q.Query(ctx, query, filter.EmployeeID, string(filter.Type), string(filter.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []workevent.WorkEvent
	for rows.Next() {
		we, err := scanWorkEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, we)
	}
	return events, rows.Err()
}

func (r *workEventRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]workevent.WorkEvent, error) {
	return r.List(ctx, workevent.WorkEventFilter{EmployeeID: employeeID})
}

func (r *workEventRepositoryImpl) Update(ctx context.Context, e workevent.WorkEvent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_events SET
			type         = $2,
			start_date   = $3,
			end_date     = $4,
			days         = $5,
			hours        = $6,
			description  = $7,
			document_ref = $8,
			status       = $9,
			approved_by  = $10,
			approved_at  = $11,
			rejected_by  = $12,
			rejected_at  = $13,
			updated_at   = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, e.ID,
		e.Type, e.StartDate, e.EndDate, e.Days, e.Hours,
		e.Description, e.DocumentRef, e.Status,
		e.ApprovedBy, e.ApprovedAt, e.RejectedBy, e.RejectedAt,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return workevent.ErrWorkEventNotFound
	}
	return nil
}
