package workevent

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType enumerates the kinds of novedades an employee can register.
// "Horas Extra" is the only type measured in hours; every other type is
// measured in whole days.
type EventType string

const (
	EventTypeIncapacidad EventType = "Incapacidad"
	EventTypePermiso     EventType = "Permiso"
	EventTypeLicencia    EventType = "Licencia"
	EventTypeHorasExtra  EventType = "Horas Extra"
	EventTypeVacaciones  EventType = "Vacaciones"
	EventTypeOtro        EventType = "Otro"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeIncapacidad, EventTypePermiso, EventTypeLicencia,
		EventTypeHorasExtra, EventTypeVacaciones, EventTypeOtro:
		return true
	}
	return false
}

// UsesHours reports whether the type carries an hours payload instead of days.
func (t EventType) UsesHours() bool {
	return t == EventTypeHorasExtra
}

type EventStatus string

const (
	EventStatusPendiente EventStatus = "Pendiente"
	EventStatusAprobado  EventStatus = "Aprobado"
	EventStatusRechazado EventStatus = "Rechazado"
)

// WorkEvent is a recorded absence, leave or overtime occurrence for one
// employee. Only Aprobado events participate in payroll calculation.
type WorkEvent struct {
	ID          string
	EmployeeID  string
	Type        EventType
	StartDate   time.Time
	EndDate     *time.Time
	Days        int
	Hours       decimal.Decimal
	Description string
	DocumentRef *string

	Status     EventStatus
	ApprovedBy *string
	ApprovedAt *time.Time
	RejectedBy *string
	RejectedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined field
	EmployeeName *string
}

// OverlapsPeriod reports whether the event falls inside [start, end].
// Ranged events overlap when the ranges intersect; events without an end
// date use single-day semantics (the start date itself must be in range).
func (e WorkEvent) OverlapsPeriod(start, end time.Time) bool {
	if e.EndDate != nil {
		return !e.StartDate.After(end) && !e.EndDate.Before(start)
	}
	return !e.StartDate.Before(start) && !e.StartDate.After(end)
}
