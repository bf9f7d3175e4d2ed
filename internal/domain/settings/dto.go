package settings

import (
	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/pkg/validator"
)

type SettingsResponse struct {
	ID                      string          `json:"id"`
	OrganizationName        string          `json:"organization_name"`
	NIT                     string          `json:"nit"`
	Address                 string          `json:"address"`
	Phone                   string          `json:"phone"`
	Email                   string          `json:"email"`
	HealthContributionRate  decimal.Decimal `json:"health_contribution_rate"`
	PensionContributionRate decimal.Decimal `json:"pension_contribution_rate"`
	OvertimeRate            decimal.Decimal `json:"overtime_rate"`
	HolidayOvertimeRate     decimal.Decimal `json:"holiday_overtime_rate"`
	NightOvertimeRate       decimal.Decimal `json:"night_overtime_rate"`
}

type UpdateSettingsRequest struct {
	OrganizationName        *string          `json:"organization_name,omitempty"`
	NIT                     *string          `json:"nit,omitempty"`
	Address                 *string          `json:"address,omitempty"`
	Phone                   *string          `json:"phone,omitempty"`
	Email                   *string          `json:"email,omitempty"`
	HealthContributionRate  *decimal.Decimal `json:"health_contribution_rate,omitempty"`
	PensionContributionRate *decimal.Decimal `json:"pension_contribution_rate,omitempty"`
	OvertimeRate            *decimal.Decimal `json:"overtime_rate,omitempty"`
	HolidayOvertimeRate     *decimal.Decimal `json:"holiday_overtime_rate,omitempty"`
	NightOvertimeRate       *decimal.Decimal `json:"night_overtime_rate,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OrganizationName != nil && validator.IsEmpty(*r.OrganizationName) {
		errs = append(errs, validator.ValidationError{Field: "organization_name", Message: "organization_name must not be empty"})
	}
	if r.NIT != nil && !validator.IsValidNIT(*r.NIT) {
		errs = append(errs, validator.ValidationError{Field: "nit", Message: "nit must look like 123456789-0"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}

	percentages := map[string]*decimal.Decimal{
		"health_contribution_rate":  r.HealthContributionRate,
		"pension_contribution_rate": r.PensionContributionRate,
	}
	for field, rate := range percentages {
		if rate == nil {
			continue
		}
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be between 0 and 100"})
		}
	}

	multipliers := map[string]*decimal.Decimal{
		"overtime_rate":         r.OvertimeRate,
		"holiday_overtime_rate": r.HolidayOvertimeRate,
		"night_overtime_rate":   r.NightOvertimeRate,
	}
	for field, rate := range multipliers {
		if rate != nil && rate.LessThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be at least 1"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
