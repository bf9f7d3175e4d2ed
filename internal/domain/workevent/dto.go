package workevent

import (
	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

type CreateWorkEventRequest struct {
	EmployeeID  string           `json:"employee_id"`
	Type        string           `json:"type"`
	StartDate   string           `json:"start_date"`
	EndDate     *string          `json:"end_date,omitempty"`
	Days        *int             `json:"days,omitempty"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
	Description string           `json:"description"`
	DocumentRef *string          `json:"document_ref,omitempty"`
}

// Validate enforces the days/hours exclusivity invariant: "Horas Extra"
// carries hours and no days, every other type carries days and no hours.
func (r *CreateWorkEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	eventType := EventType(r.Type)
	if !eventType.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of Incapacidad, Permiso, Licencia, Horas Extra, Vacaciones, Otro"})
	}

	startDate, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}

	if r.EndDate != nil {
		endDate, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		} else if endDate.Before(startDate) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
		}
	}

	if eventType.Valid() {
		if eventType.UsesHours() {
			if r.Hours == nil || r.Hours.LessThanOrEqual(decimal.Zero) {
				errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive for Horas Extra"})
			}
			if r.Days != nil {
				errs = append(errs, validator.ValidationError{Field: "days", Message: "days must be absent for Horas Extra"})
			}
		} else {
			if r.Days == nil || *r.Days < 1 {
				errs = append(errs, validator.ValidationError{Field: "days", Message: "days must be at least 1"})
			}
			if r.Hours != nil {
				errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be absent for this event type"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkEventRequest struct {
	ID          string           `json:"id"`
	Type        *string          `json:"type,omitempty"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
	Days        *int             `json:"days,omitempty"`
	Hours       *decimal.Decimal `json:"hours,omitempty"`
	Description *string          `json:"description,omitempty"`
	DocumentRef *string          `json:"document_ref,omitempty"`
}

func (r *UpdateWorkEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Type != nil && !EventType(*r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is not a valid event type"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}
	if r.Days != nil && *r.Days < 1 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "days must be at least 1"})
	}
	if r.Hours != nil && r.Hours.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkEventResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	Type         string           `json:"type"`
	StartDate    string           `json:"start_date"`
	EndDate      *string          `json:"end_date,omitempty"`
	Days         *int             `json:"days,omitempty"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	Description  string           `json:"description"`
	DocumentRef  *string          `json:"document_ref,omitempty"`
	Status       string           `json:"status"`
	ApprovedBy   *string          `json:"approved_by,omitempty"`
	ApprovedAt   *string          `json:"approved_at,omitempty"`
	RejectedBy   *string          `json:"rejected_by,omitempty"`
	RejectedAt   *string          `json:"rejected_at,omitempty"`
}
