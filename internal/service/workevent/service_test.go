package workevent

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

type fakeEventRepo struct {
	createFn  func(ctx context.Context, e workevent.WorkEvent) (workevent.WorkEvent, error)
	getByIDFn func(ctx context.Context, id string) (workevent.WorkEvent, error)
	listFn    func(ctx context.Context, filter workevent.WorkEventFilter) ([]workevent.WorkEvent, error)
	updateFn  func(ctx context.Context, e workevent.WorkEvent) error
}

func (f *fakeEventRepo) Create(ctx context.Context, e workevent.WorkEvent) (workevent.WorkEvent, error) {
	return f.createFn(ctx, e)
}
func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (workevent.WorkEvent, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEventRepo) List(ctx context.Context, filter workevent.WorkEventFilter) ([]workevent.WorkEvent, error) {
	return f.listFn(ctx, filter)
}
func (f *fakeEventRepo) ListByEmployee(ctx context.Context, employeeID string) ([]workevent.WorkEvent, error) {
	panic("not used")
}
func (f *fakeEventRepo) Update(ctx context.Context, e workevent.WorkEvent) error {
	return f.updateFn(ctx, e)
}

type fakeEmployeeRepo struct {
	getByIDFn func(ctx context.Context, id string) (employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	panic("not used")
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	panic("not used")
}
func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	panic("not used")
}

func existingEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id, IsActive: true}, nil
		},
	}
}

func intPtr(i int) *int { return &i }

func TestCreateWorkEventStartsPendiente(t *testing.T) {
	var created workevent.WorkEvent
	eventRepo := &fakeEventRepo{
		createFn: func(ctx context.Context, e workevent.WorkEvent) (workevent.WorkEvent, error) {
			e.ID = "ev-1"
			created = e
			return e, nil
		},
	}
	svc := NewWorkEventService(eventRepo, existingEmployeeRepo())

	result, err := svc.Create(context.Background(), workevent.CreateWorkEventRequest{
		EmployeeID:  "emp-1",
		Type:        "Incapacidad",
		StartDate:   "2025-11-03",
		Days:        intPtr(4),
		Description: "Incapacidad médica",
	})
	require.NoError(t, err)

	assert.Equal(t, string(workevent.EventStatusPendiente), result.Status)
	assert.Equal(t, workevent.EventStatusPendiente, created.Status)
	assert.Equal(t, 4, created.Days)
	require.NotNil(t, result.Days)
	assert.Equal(t, 4, *result.Days)
	assert.Nil(t, result.Hours)
}

func TestCreateWorkEventValidation(t *testing.T) {
	svc := NewWorkEventService(&fakeEventRepo{}, existingEmployeeRepo())

	hours := decimal.NewFromInt(3)
	tests := []struct {
		name string
		req  workevent.CreateWorkEventRequest
	}{
		{"unknown type", workevent.CreateWorkEventRequest{EmployeeID: "emp-1", Type: "Festivo", StartDate: "2025-11-03", Days: intPtr(1)}},
		{"days on overtime", workevent.CreateWorkEventRequest{EmployeeID: "emp-1", Type: "Horas Extra", StartDate: "2025-11-03", Days: intPtr(1), Hours: &hours}},
		{"hours on day event", workevent.CreateWorkEventRequest{EmployeeID: "emp-1", Type: "Permiso", StartDate: "2025-11-03", Days: intPtr(1), Hours: &hours}},
		{"missing days", workevent.CreateWorkEventRequest{EmployeeID: "emp-1", Type: "Permiso", StartDate: "2025-11-03"}},
		{"missing hours", workevent.CreateWorkEventRequest{EmployeeID: "emp-1", Type: "Horas Extra", StartDate: "2025-11-03"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
		})
	}
}

func TestCreateWorkEventUnknownEmployee(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{
		getByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		},
	}
	svc := NewWorkEventService(&fakeEventRepo{}, employeeRepo)

	_, err := svc.Create(context.Background(), workevent.CreateWorkEventRequest{
		EmployeeID:  "ghost",
		Type:        "Permiso",
		StartDate:   "2025-11-03",
		Days:        intPtr(1),
		Description: "Diligencia personal",
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApproveStampsActorAndTimestamp(t *testing.T) {
	event := workevent.WorkEvent{
		ID:         "ev-1",
		EmployeeID: "emp-1",
		Type:       workevent.EventTypePermiso,
		StartDate:  time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
		Days:       1,
		Status:     workevent.EventStatusPendiente,
	}

	var saved workevent.WorkEvent
	eventRepo := &fakeEventRepo{
		getByIDFn: func(ctx context.Context, id string) (workevent.WorkEvent, error) {
			return event, nil
		},
		updateFn: func(ctx context.Context, e workevent.WorkEvent) error {
			saved = e
			return nil
		},
	}
	svc := NewWorkEventService(eventRepo, existingEmployeeRepo())

	result, err := svc.Approve(context.Background(), "ev-1", "Administrador")
	require.NoError(t, err)

	assert.Equal(t, string(workevent.EventStatusAprobado), result.Status)
	require.NotNil(t, saved.ApprovedBy)
	assert.Equal(t, "Administrador", *saved.ApprovedBy)
	require.NotNil(t, saved.ApprovedAt)
	assert.Nil(t, saved.RejectedBy)
}

func TestRejectStampsActorAndTimestamp(t *testing.T) {
	event := workevent.WorkEvent{
		ID:     "ev-1",
		Type:   workevent.EventTypePermiso,
		Days:   1,
		Status: workevent.EventStatusPendiente,
	}

	var saved workevent.WorkEvent
	eventRepo := &fakeEventRepo{
		getByIDFn: func(ctx context.Context, id string) (workevent.WorkEvent, error) {
			return event, nil
		},
		updateFn: func(ctx context.Context, e workevent.WorkEvent) error {
			saved = e
			return nil
		},
	}
	svc := NewWorkEventService(eventRepo, existingEmployeeRepo())

	result, err := svc.Reject(context.Background(), "ev-1", "Administrador")
	require.NoError(t, err)

	assert.Equal(t, string(workevent.EventStatusRechazado), result.Status)
	require.NotNil(t, saved.RejectedBy)
	require.NotNil(t, saved.RejectedAt)
	assert.Nil(t, saved.ApprovedBy)
}

func TestApproveRejectTerminal(t *testing.T) {
	for _, status := range []workevent.EventStatus{workevent.EventStatusAprobado, workevent.EventStatusRechazado} {
		eventRepo := &fakeEventRepo{
			getByIDFn: func(ctx context.Context, id string) (workevent.WorkEvent, error) {
				return workevent.WorkEvent{ID: "ev-1", Status: status}, nil
			},
		}
		svc := NewWorkEventService(eventRepo, existingEmployeeRepo())

		_, err := svc.Approve(context.Background(), "ev-1", "admin")
		require.ErrorIs(t, err, workevent.ErrWorkEventAlreadyProcessed, "approve on %s", status)

		_, err = svc.Reject(context.Background(), "ev-1", "admin")
		require.ErrorIs(t, err, workevent.ErrWorkEventAlreadyProcessed, "reject on %s", status)
	}
}

func TestUpdateFrozenAfterProcessing(t *testing.T) {
	eventRepo := &fakeEventRepo{
		getByIDFn: func(ctx context.Context, id string) (workevent.WorkEvent, error) {
			return workevent.WorkEvent{ID: "ev-1", Status: workevent.EventStatusAprobado}, nil
		},
	}
	svc := NewWorkEventService(eventRepo, existingEmployeeRepo())

	desc := "otro motivo"
	_, err := svc.Update(context.Background(), workevent.UpdateWorkEventRequest{
		ID:          "ev-1",
		Description: &desc,
	})
	require.ErrorIs(t, err, workevent.ErrWorkEventAlreadyProcessed)
}

func TestUpdateTypeChangeClearsOtherPayload(t *testing.T) {
	event := workevent.WorkEvent{
		ID:     "ev-1",
		Type:   workevent.EventTypePermiso,
		Days:   2,
		Status: workevent.EventStatusPendiente,
	}

	var saved workevent.WorkEvent
	eventRepo := &fakeEventRepo{
		getByIDFn: func(ctx context.Context, id string) (workevent.WorkEvent, error) {
			return event, nil
		},
		updateFn: func(ctx context.Context, e workevent.WorkEvent) error {
			saved = e
			return nil
		},
	}
	svc := NewWorkEventService(eventRepo, existingEmployeeRepo())

	newType := "Horas Extra"
	hours := decimal.NewFromInt(5)
	result, err := svc.Update(context.Background(), workevent.UpdateWorkEventRequest{
		ID:    "ev-1",
		Type:  &newType,
		Hours: &hours,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, saved.Days)
	assert.True(t, decimal.NewFromInt(5).Equal(saved.Hours))
	require.NotNil(t, result.Hours)
	assert.Nil(t, result.Days)
}
