package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/payroll"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

// ========== FAKE REPOSITORIES ==========

type fakePayrollRepo struct {
	createPeriodWithItemsFn func(ctx context.Context, period payroll.PayrollPeriod, items []payroll.PayrollItem) (payroll.PayrollPeriod, []payroll.PayrollItem, error)
	getPeriodByIDFn         func(ctx context.Context, id string) (payroll.PayrollPeriod, error)
	listPeriodsFn           func(ctx context.Context, status payroll.PayrollStatus) ([]payroll.PayrollPeriod, error)
	updatePeriodFn          func(ctx context.Context, period payroll.PayrollPeriod) error
	getItemByIDFn           func(ctx context.Context, id string) (payroll.PayrollItem, error)
	listItemsByPayrollFn    func(ctx context.Context, payrollID string) ([]payroll.PayrollItem, error)
	listItemsByEmployeeFn   func(ctx context.Context, employeeID string) ([]payroll.PayrollItem, error)
	updateItemFn            func(ctx context.Context, item payroll.PayrollItem) error
}

func (f *fakePayrollRepo) CreatePeriodWithItems(ctx context.Context, period payroll.PayrollPeriod, items []payroll.PayrollItem) (payroll.PayrollPeriod, []payroll.PayrollItem, error) {
	return f.createPeriodWithItemsFn(ctx, period, items)
}
func (f *fakePayrollRepo) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	return f.getPeriodByIDFn(ctx, id)
}
func (f *fakePayrollRepo) ListPeriods(ctx context.Context, status payroll.PayrollStatus) ([]payroll.PayrollPeriod, error) {
	return f.listPeriodsFn(ctx, status)
}
func (f *fakePayrollRepo) UpdatePeriod(ctx context.Context, period payroll.PayrollPeriod) error {
	return f.updatePeriodFn(ctx, period)
}
func (f *fakePayrollRepo) GetItemByID(ctx context.Context, id string) (payroll.PayrollItem, error) {
	return f.getItemByIDFn(ctx, id)
}
func (f *fakePayrollRepo) ListItemsByPayroll(ctx context.Context, payrollID string) ([]payroll.PayrollItem, error) {
	return f.listItemsByPayrollFn(ctx, payrollID)
}
func (f *fakePayrollRepo) ListItemsByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollItem, error) {
	return f.listItemsByEmployeeFn(ctx, employeeID)
}
func (f *fakePayrollRepo) UpdateItem(ctx context.Context, item payroll.PayrollItem) error {
	return f.updateItemFn(ctx, item)
}

type fakeEmployeeRepo struct {
	listFn func(ctx context.Context, activeOnly bool) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	panic("not used")
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	panic("not used")
}
func (f *fakeEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	return f.listFn(ctx, activeOnly)
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	panic("not used")
}
func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	panic("not used")
}

type fakeWorkEventRepo struct {
	listFn func(ctx context.Context, filter workevent.WorkEventFilter) ([]workevent.WorkEvent, error)
}

func (f *fakeWorkEventRepo) Create(ctx context.Context, e workevent.WorkEvent) (workevent.WorkEvent, error) {
	panic("not used")
}
func (f *fakeWorkEventRepo) GetByID(ctx context.Context, id string) (workevent.WorkEvent, error) {
	panic("not used")
}
func (f *fakeWorkEventRepo) List(ctx context.Context, filter workevent.WorkEventFilter) ([]workevent.WorkEvent, error) {
	return f.listFn(ctx, filter)
}
func (f *fakeWorkEventRepo) ListByEmployee(ctx context.Context, employeeID string) ([]workevent.WorkEvent, error) {
	panic("not used")
}
func (f *fakeWorkEventRepo) Update(ctx context.Context, e workevent.WorkEvent) error {
	panic("not used")
}

type fakeSettingsRepo struct {
	getFn func(ctx context.Context) (settings.Settings, error)
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (settings.Settings, error) {
	return f.getFn(ctx)
}
func (f *fakeSettingsRepo) Upsert(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	panic("not used")
}

func defaultSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		getFn: func(ctx context.Context) (settings.Settings, error) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		},
	}
}

// ========== BUILD ==========

func TestBuildPayrollComputesTotals(t *testing.T) {
	ctx := context.Background()

	employees := []employee.Employee{
		{ID: "emp-1", FirstName: "Juan", LastName: "Pérez", Salary: decimal.NewFromInt(1200000), IsActive: true},
		{ID: "emp-2", FirstName: "María", LastName: "García", Salary: decimal.NewFromInt(1500000), IsActive: true},
	}

	var persistedPeriod payroll.PayrollPeriod
	var persistedItems []payroll.PayrollItem

	payrollRepo := &fakePayrollRepo{
		createPeriodWithItemsFn: func(ctx context.Context, period payroll.PayrollPeriod, items []payroll.PayrollItem) (payroll.PayrollPeriod, []payroll.PayrollItem, error) {
			period.ID = "pay-1"
			persistedPeriod = period
			persistedItems = items
			return period, items, nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		listFn: func(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
			require.True(t, activeOnly, "calculation only covers the active roster")
			return employees, nil
		},
	}
	eventRepo := &fakeWorkEventRepo{
		listFn: func(ctx context.Context, filter workevent.WorkEventFilter) ([]workevent.WorkEvent, error) {
			return nil, nil
		},
	}

	svc := NewPayrollService(payrollRepo, employeeRepo, eventRepo, defaultSettingsRepo())

	result, err := svc.BuildPayroll(ctx, payroll.BuildPayrollRequest{
		Period:    "Noviembre 2025",
		StartDate: "2025-11-01",
		EndDate:   "2025-11-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "pay-1", result.Payroll.ID)
	assert.Equal(t, string(payroll.PayrollStatusPendiente), result.Payroll.Status)
	require.Len(t, result.Items, 2)

	// 1,200,000 + 1,500,000 fully worked
	assert.True(t, decimal.NewFromInt(2700000).Equal(persistedPeriod.TotalGross))
	// 8% of gross
	assert.True(t, decimal.NewFromInt(216000).Equal(persistedPeriod.TotalDeductions))
	assert.True(t, decimal.NewFromInt(2484000).Equal(persistedPeriod.TotalNet))
	require.Len(t, persistedItems, 2)
	assert.Equal(t, payroll.PayrollStatusPendiente, persistedPeriod.Status)
}

func TestBuildPayrollValidation(t *testing.T) {
	svc := NewPayrollService(&fakePayrollRepo{}, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

	tests := []struct {
		name string
		req  payroll.BuildPayrollRequest
	}{
		{"empty period", payroll.BuildPayrollRequest{Period: " ", StartDate: "2025-11-01", EndDate: "2025-11-30"}},
		{"bad start date", payroll.BuildPayrollRequest{Period: "Nov", StartDate: "01/11/2025", EndDate: "2025-11-30"}},
		{"end before start", payroll.BuildPayrollRequest{Period: "Nov", StartDate: "2025-11-30", EndDate: "2025-11-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BuildPayroll(context.Background(), tt.req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
		})
	}
}

func TestBuildPayrollNoActiveEmployees(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{
		listFn: func(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
			return nil, nil
		},
	}
	svc := NewPayrollService(&fakePayrollRepo{}, employeeRepo, &fakeWorkEventRepo{}, defaultSettingsRepo())

	_, err := svc.BuildPayroll(context.Background(), payroll.BuildPayrollRequest{
		Period:    "Noviembre 2025",
		StartDate: "2025-11-01",
		EndDate:   "2025-11-30",
	})
	require.ErrorIs(t, err, payroll.ErrNoActiveEmployees)
}

// ========== EDIT ==========

func pendingPeriod(id string) payroll.PayrollPeriod {
	return payroll.PayrollPeriod{
		ID:        id,
		Period:    "Noviembre 2025",
		StartDate: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC),
		Status:    payroll.PayrollStatusPendiente,
	}
}

func TestEditItemRecomputesLine(t *testing.T) {
	item := payroll.PayrollItem{
		ID:         "item-1",
		PayrollID:  "pay-1",
		EmployeeID: "emp-1",
		BaseSalary: decimal.NewFromInt(1200000),
		DaysWorked: 30,
	}

	var savedItem payroll.PayrollItem
	payrollRepo := &fakePayrollRepo{
		getItemByIDFn: func(ctx context.Context, id string) (payroll.PayrollItem, error) {
			return item, nil
		},
		getPeriodByIDFn: func(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
			return pendingPeriod("pay-1"), nil
		},
		updateItemFn: func(ctx context.Context, i payroll.PayrollItem) error {
			savedItem = i
			return nil
		},
	}
	svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

	result, err := svc.EditItem(context.Background(), "item-1", payroll.EditPayrollItemRequest{
		Field: "workedDays",
		Value: "26",
	})
	require.NoError(t, err)

	assert.Equal(t, 26, result.DaysWorked)
	assert.True(t, decimal.NewFromInt(1040000).Equal(result.GrossSalary))
	assert.True(t, decimal.NewFromInt(956800).Equal(result.NetSalary))
	assert.Equal(t, 26, savedItem.DaysWorked)
}

func TestEditItemRejectedWhenProcessed(t *testing.T) {
	for _, status := range []payroll.PayrollStatus{payroll.PayrollStatusAprobado, payroll.PayrollStatusRechazado} {
		payrollRepo := &fakePayrollRepo{
			getItemByIDFn: func(ctx context.Context, id string) (payroll.PayrollItem, error) {
				return payroll.PayrollItem{ID: "item-1", PayrollID: "pay-1"}, nil
			},
			getPeriodByIDFn: func(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
				p := pendingPeriod("pay-1")
				p.Status = status
				return p, nil
			},
		}
		svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

		_, err := svc.EditItem(context.Background(), "item-1", payroll.EditPayrollItemRequest{
			Field: "workedDays",
			Value: "26",
		})
		require.ErrorIs(t, err, payroll.ErrPayrollAlreadyProcessed, "status %s", status)
	}
}

func TestEditItemUnknownField(t *testing.T) {
	svc := NewPayrollService(&fakePayrollRepo{}, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

	_, err := svc.EditItem(context.Background(), "item-1", payroll.EditPayrollItemRequest{
		Field: "netSalary",
		Value: "1",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestEditItemNotFound(t *testing.T) {
	payrollRepo := &fakePayrollRepo{
		getItemByIDFn: func(ctx context.Context, id string) (payroll.PayrollItem, error) {
			return payroll.PayrollItem{}, payroll.ErrPayrollItemNotFound
		},
	}
	svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

	_, err := svc.EditItem(context.Background(), "missing", payroll.EditPayrollItemRequest{
		Field: "workedDays",
		Value: "26",
	})
	require.ErrorIs(t, err, payroll.ErrPayrollItemNotFound)
}

// ========== APPROVE / REJECT ==========

func TestApproveRecomputesTotalsAndStamps(t *testing.T) {
	items := []payroll.PayrollItem{
		{
			GrossSalary:      decimal.NewFromInt(1040000),
			HealthDeduction:  decimal.NewFromInt(41600),
			PensionDeduction: decimal.NewFromInt(41600),
			OtherDeductions:  decimal.NewFromInt(50000),
			NetSalary:        decimal.NewFromInt(906800),
		},
	}

	var savedPeriod payroll.PayrollPeriod
	payrollRepo := &fakePayrollRepo{
		getPeriodByIDFn: func(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
			return pendingPeriod("pay-1"), nil
		},
		listItemsByPayrollFn: func(ctx context.Context, payrollID string) ([]payroll.PayrollItem, error) {
			return items, nil
		},
		updatePeriodFn: func(ctx context.Context, p payroll.PayrollPeriod) error {
			savedPeriod = p
			return nil
		},
	}
	svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

	result, err := svc.Approve(context.Background(), "pay-1", "Padre Francisco", "Revisado")
	require.NoError(t, err)

	assert.Equal(t, string(payroll.PayrollStatusAprobado), result.Status)
	require.NotNil(t, savedPeriod.ApprovedBy)
	assert.Equal(t, "Padre Francisco", *savedPeriod.ApprovedBy)
	require.NotNil(t, savedPeriod.ApprovedAt)
	require.NotNil(t, savedPeriod.ApprovalNotes)
	assert.Equal(t, "Revisado", *savedPeriod.ApprovalNotes)

	// Totals reflect the edited items, not the draft snapshot.
	assert.True(t, decimal.NewFromInt(1040000).Equal(savedPeriod.TotalGross))
	assert.True(t, decimal.NewFromInt(133200).Equal(savedPeriod.TotalDeductions))
	assert.True(t, decimal.NewFromInt(906800).Equal(savedPeriod.TotalNet))
}

func TestApproveTerminalStates(t *testing.T) {
	for _, status := range []payroll.PayrollStatus{payroll.PayrollStatusAprobado, payroll.PayrollStatusRechazado} {
		payrollRepo := &fakePayrollRepo{
			getPeriodByIDFn: func(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
				p := pendingPeriod("pay-1")
				p.Status = status
				return p, nil
			},
		}
		svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

		_, err := svc.Approve(context.Background(), "pay-1", "admin", "")
		require.ErrorIs(t, err, payroll.ErrPayrollAlreadyProcessed, "status %s", status)
	}
}

func TestRejectRequiresNotes(t *testing.T) {
	updateCalled := false
	payrollRepo := &fakePayrollRepo{
		getPeriodByIDFn: func(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
			return pendingPeriod("pay-1"), nil
		},
		updatePeriodFn: func(ctx context.Context, p payroll.PayrollPeriod) error {
			updateCalled = true
			return nil
		},
	}
	svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

	for _, notes := range []string{"", "   "} {
		_, err := svc.Reject(context.Background(), "pay-1", "admin", notes)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
	}
	assert.False(t, updateCalled, "nothing persists when notes are missing")
}

func TestRejectStampsAndKeepsTotals(t *testing.T) {
	period := pendingPeriod("pay-1")
	period.TotalGross = decimal.NewFromInt(2700000)
	period.TotalDeductions = decimal.NewFromInt(216000)
	period.TotalNet = decimal.NewFromInt(2484000)

	var savedPeriod payroll.PayrollPeriod
	payrollRepo := &fakePayrollRepo{
		getPeriodByIDFn: func(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
			return period, nil
		},
		updatePeriodFn: func(ctx context.Context, p payroll.PayrollPeriod) error {
			savedPeriod = p
			return nil
		},
	}
	svc := NewPayrollService(payrollRepo, &fakeEmployeeRepo{}, &fakeWorkEventRepo{}, defaultSettingsRepo())

	result, err := svc.Reject(context.Background(), "pay-1", "Padre Francisco", "Faltan soportes")
	require.NoError(t, err)

	assert.Equal(t, string(payroll.PayrollStatusRechazado), result.Status)
	require.NotNil(t, savedPeriod.RejectedBy)
	assert.Equal(t, "Padre Francisco", *savedPeriod.RejectedBy)
	require.NotNil(t, savedPeriod.RejectionNotes)
	assert.Equal(t, "Faltan soportes", *savedPeriod.RejectionNotes)
	require.NotNil(t, savedPeriod.RejectedAt)

	// Totals stay as calculated.
	assert.True(t, decimal.NewFromInt(2700000).Equal(savedPeriod.TotalGross))
	assert.True(t, decimal.NewFromInt(2484000).Equal(savedPeriod.TotalNet))
}
