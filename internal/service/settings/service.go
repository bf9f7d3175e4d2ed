package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get returns the stored settings, falling back to the statutory defaults
// when no row has been written yet.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return mapToResponse(settings.Default()), nil
		}
		return settings.SettingsResponse{}, err
	}
	return mapToResponse(current), nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.SettingsResponse{}, err
		}
		current = settings.Default()
	}

	if req.OrganizationName != nil {
		current.OrganizationName = *req.OrganizationName
	}
	if req.NIT != nil {
		current.NIT = *req.NIT
	}
	if req.Address != nil {
		current.Address = *req.Address
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}
	if req.Email != nil {
		current.Email = *req.Email
	}
	if req.HealthContributionRate != nil {
		current.HealthContributionRate = *req.HealthContributionRate
	}
	if req.PensionContributionRate != nil {
		current.PensionContributionRate = *req.PensionContributionRate
	}
	if req.OvertimeRate != nil {
		current.OvertimeRate = *req.OvertimeRate
	}
	if req.HolidayOvertimeRate != nil {
		current.HolidayOvertimeRate = *req.HolidayOvertimeRate
	}
	if req.NightOvertimeRate != nil {
		current.NightOvertimeRate = *req.NightOvertimeRate
	}

	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return mapToResponse(saved), nil
}

func mapToResponse(s settings.Settings) settings.SettingsResponse {
	return settings.SettingsResponse{
		ID:                      s.ID,
		OrganizationName:        s.OrganizationName,
		NIT:                     s.NIT,
		Address:                 s.Address,
		Phone:                   s.Phone,
		Email:                   s.Email,
		HealthContributionRate:  s.HealthContributionRate,
		PensionContributionRate: s.PensionContributionRate,
		OvertimeRate:            s.OvertimeRate,
		HolidayOvertimeRate:     s.HolidayOvertimeRate,
		NightOvertimeRate:       s.NightOvertimeRate,
	}
}
