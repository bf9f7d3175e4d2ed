package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
	"github.com/nomina-hq/nomina-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Settings is a single-row table; the fixed id keeps upserts idempotent.
const settingsRowID = "default"

func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_name, nit, address, phone, email,
			   health_contribution_rate, pension_contribution_rate,
			   overtime_rate, holiday_overtime_rate, night_overtime_rate,
			   created_at, updated_at
		FROM settings
		WHERE id = $1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.ID,
		&s.OrganizationName,
		&s.NIT,
		&s.Address,
		&s.Phone,
		&s.Email,
		&s.HealthContributionRate,
		&s.PensionContributionRate,
		&s.OvertimeRate,
		&s.HolidayOvertimeRate,
		&s.NightOvertimeRate,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, err
	}
	return s, nil
}

func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (
			id, organization_name, nit, address, phone, email,
			health_contribution_rate, pension_contribution_rate,
			overtime_rate, holiday_overtime_rate, night_overtime_rate,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8,
			$9, $10, $11,
			NOW(), NOW()
		)
		ON CONFLICT (id) DO UPDATE SET
			organization_name         = EXCLUDED.organization_name,
			nit                       = EXCLUDED.nit,
			address                   = EXCLUDED.address,
			phone                     = EXCLUDED.phone,
			email                     = EXCLUDED.email,
			health_contribution_rate  = EXCLUDED.health_contribution_rate,
			pension_contribution_rate = EXCLUDED.pension_contribution_rate,
			overtime_rate             = EXCLUDED.overtime_rate,
			holiday_overtime_rate     = EXCLUDED.holiday_overtime_rate,
			night_overtime_rate       = EXCLUDED.night_overtime_rate,
			updated_at                = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, settingsRowID,
		s.OrganizationName, s.NIT, s.Address, s.Phone, s.Email,
		s.HealthContributionRate, s.PensionContributionRate,
		s.OvertimeRate, s.HolidayOvertimeRate, s.NightOvertimeRate,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}
