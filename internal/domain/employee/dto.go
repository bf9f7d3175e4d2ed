package employee

import (
	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Document    string          `json:"document"`
	Position    string          `json:"position"`
	Department  string          `json:"department"`
	JoinDate    string          `json:"join_date"`
	Salary      decimal.Decimal `json:"salary"`
	BankAccount *string         `json:"bank_account,omitempty"`
	BankName    *string         `json:"bank_name,omitempty"`
	AccountType *string         `json:"account_type,omitempty"`
	Email       *string         `json:"email,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if validator.IsEmpty(r.Document) {
		errs = append(errs, validator.ValidationError{Field: "document", Message: "document is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be YYYY-MM-DD"})
	}
	if r.Salary.IsNegative() || r.Salary.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be positive"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"id"`
	FirstName   *string          `json:"first_name,omitempty"`
	LastName    *string          `json:"last_name,omitempty"`
	Position    *string          `json:"position,omitempty"`
	Department  *string          `json:"department,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	BankAccount *string          `json:"bank_account,omitempty"`
	BankName    *string          `json:"bank_name,omitempty"`
	AccountType *string          `json:"account_type,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name must not be empty"})
	}
	if r.Salary != nil && (r.Salary.IsNegative() || r.Salary.IsZero()) {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be positive"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Document    string          `json:"document"`
	Position    string          `json:"position"`
	Department  string          `json:"department"`
	JoinDate    string          `json:"join_date"`
	Salary      decimal.Decimal `json:"salary"`
	BankAccount *string         `json:"bank_account,omitempty"`
	BankName    *string         `json:"bank_name,omitempty"`
	AccountType *string         `json:"account_type,omitempty"`
	Email       *string         `json:"email,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	IsActive    bool            `json:"is_active"`
}
