package services

import (
	"context"
	"fmt"

	"squadbot/domain/entities"
	"squadbot/domain/interfaces"
)

// guildSettingsService implements the GuildSettingsService interface
type guildSettingsService struct {
	guildSettingsRepo interfaces.GuildSettingsRepository
}

// NewGuildSettingsService creates a new guild settings service
func NewGuildSettingsService(guildSettingsRepo interfaces.GuildSettingsRepository) interfaces.GuildSettingsService {
	return &guildSettingsService{
		guildSettingsRepo: guildSettingsRepo,
	}
}

// GetOrCreateSettings retrieves guild settings or creates default ones if not found
func (s *guildSettingsService) GetOrCreateSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	settings, err := s.guildSettingsRepo.GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create guild settings: %w", err)
	}

	return settings, nil
}

// UpdateATeamRole sets the A team role for a guild
func (s *guildSettingsService) UpdateATeamRole(ctx context.Context, guildID int64, roleID int64) error {
	if err := s.guildSettingsRepo.UpdateATeamRole(ctx, guildID, roleID); err != nil {
		return fmt.Errorf("failed to update A team role: %w", err)
	}

	return nil
}

// UpdateBTeamRole sets the B team role for a guild
func (s *guildSettingsService) UpdateBTeamRole(ctx context.Context, guildID int64, roleID int64) error {
	if err := s.guildSettingsRepo.UpdateBTeamRole(ctx, guildID, roleID); err != nil {
		return fmt.Errorf("failed to update B team role: %w", err)
	}

	return nil
}

// UpdateFriendlyFinderRole sets the friendly finder role for a guild
func (s *guildSettingsService) UpdateFriendlyFinderRole(ctx context.Context, guildID int64, roleID int64) error {
	if err := s.guildSettingsRepo.UpdateFriendlyFinderRole(ctx, guildID, roleID); err != nil {
		return fmt.Errorf("failed to update friendly finder role: %w", err)
	}

	return nil
}
