package interfaces

import (
	"context"

	"squadbot/domain/entities"
)

// GuildSettingsService manages guild role configuration
type GuildSettingsService interface {
	// GetOrCreateSettings retrieves guild settings, creating defaults if absent
	GetOrCreateSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpdateATeamRole sets the A team role for a guild
	UpdateATeamRole(ctx context.Context, guildID int64, roleID int64) error

	// UpdateBTeamRole sets the B team role for a guild
	UpdateBTeamRole(ctx context.Context, guildID int64, roleID int64) error

	// UpdateFriendlyFinderRole sets the friendly finder role for a guild
	UpdateFriendlyFinderRole(ctx context.Context, guildID int64, roleID int64) error
}

// MatchService manages scheduled matches
type MatchService interface {
	// ScheduleMatch validates the input and stores a new match record
	ScheduleMatch(ctx context.Context, guildID int64, date, timeOfDay, opponent, league string, createdBy int64) (*entities.ScheduledMatch, error)

	// ListMatches returns all matches stored for a guild in insertion order
	ListMatches(ctx context.Context, guildID int64) ([]*entities.ScheduledMatch, error)
}
