package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the roster record payroll is computed from. The calculator
// never mutates it; the monthly salary is snapshotted into each payroll item.
type Employee struct {
	ID          string
	FirstName   string
	LastName    string
	Document    string
	Position    string
	Department  string
	JoinDate    time.Time
	Salary      decimal.Decimal
	BankAccount *string
	BankName    *string
	AccountType *string
	Email       *string
	Phone       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
