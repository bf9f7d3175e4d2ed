package workevent

import "context"

// WorkEventFilter narrows List results; empty fields match everything.
type WorkEventFilter struct {
	EmployeeID string
	Type       EventType
	Status     EventStatus
}

type WorkEventRepository interface {
	Create(ctx context.Context, e WorkEvent) (WorkEvent, error)
	GetByID(ctx context.Context, id string) (WorkEvent, error)
	List(ctx context.Context, filter WorkEventFilter) ([]WorkEvent, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkEvent, error)
	Update(ctx context.Context, e WorkEvent) error
}
