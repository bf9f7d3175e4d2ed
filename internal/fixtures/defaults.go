package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/user"
)

// SeedDefaults makes a fresh database usable: the settings row with the
// statutory rate table and a first admin account. Both are idempotent so
// the seed can run on every startup.
func SeedDefaults(ctx context.Context, settingsRepo settings.SettingsRepository, userRepo user.UserRepository) error {
	if _, err := settingsRepo.Get(ctx); err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return fmt.Errorf("check settings: %w", err)
		}
		if _, err := settingsRepo.Upsert(ctx, settings.Default()); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
	}

	count, err := userRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = userRepo.Create(ctx, user.User{
		Username:     "admin",
		Name:         "Administrador",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

// SeedDemoData loads a small sample roster for local development.
func SeedDemoData(ctx context.Context, employeeRepo employee.EmployeeRepository) error {
	existing, err := employeeRepo.List(ctx, false)
	if err != nil {
		return fmt.Errorf("list employees: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	joinDate := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	samples := []employee.Employee{
		{
			FirstName:  "Juan",
			LastName:   "Pérez",
			Document:   "12345678",
			Position:   "Sacristán",
			Department: "Servicios Litúrgicos",
			JoinDate:   joinDate,
			Salary:     decimal.NewFromInt(1200000),
			IsActive:   true,
		},
		{
			FirstName:  "María",
			LastName:   "García",
			Document:   "87654321",
			Position:   "Secretaria",
			Department: "Administración",
			JoinDate:   joinDate.AddDate(0, 3, 0),
			Salary:     decimal.NewFromInt(1500000),
			IsActive:   true,
		},
		{
			FirstName:  "Carlos",
			LastName:   "Mosquera",
			Document:   "11223344",
			Position:   "Coordinador de Pastoral",
			Department: "Pastoral",
			JoinDate:   joinDate.AddDate(1, 0, 0),
			Salary:     decimal.NewFromInt(1800000),
			IsActive:   true,
		},
	}
	for _, emp := range samples {
		if _, err := employeeRepo.Create(ctx, emp); err != nil {
			return fmt.Errorf("seed employee %s: %w", emp.Document, err)
		}
	}
	return nil
}
