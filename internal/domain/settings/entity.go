package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the single process-wide configuration record: organization
// metadata plus the statutory rate table read by every payroll calculation.
type Settings struct {
	ID               string
	OrganizationName string
	NIT              string
	Address          string
	Phone            string
	Email            string

	// Rate table. Contribution rates are percentages (4 means 4%),
	// overtime rates are multipliers applied to the hourly rate.
	HealthContributionRate  decimal.Decimal
	PensionContributionRate decimal.Decimal
	OvertimeRate            decimal.Decimal
	HolidayOvertimeRate     decimal.Decimal
	NightOvertimeRate       decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Default returns the statutory defaults used when no settings row exists yet.
func Default() Settings {
	return Settings{
		OrganizationName:        "Parroquia San Francisco de Asís",
		NIT:                     "123456789-0",
		Address:                 "Calle Principal #123, Quibdó, Chocó",
		Phone:                   "(4) 123-4567",
		Email:                   "parroquia.sanfrancisco@ejemplo.com",
		HealthContributionRate:  decimal.NewFromInt(4),
		PensionContributionRate: decimal.NewFromInt(4),
		OvertimeRate:            decimal.NewFromFloat(1.25),
		HolidayOvertimeRate:     decimal.NewFromFloat(1.75),
		NightOvertimeRate:       decimal.NewFromFloat(1.35),
	}
}
