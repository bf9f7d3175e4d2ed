package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmpleado Role = "empleado"
)

// User is a login account. Admin accounts drive the approval workflow;
// empleado accounts are linked to an employee record for self-service reads.
type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
