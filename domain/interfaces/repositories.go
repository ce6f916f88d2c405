package interfaces

import (
	"context"

	"squadbot/domain/entities"
)

// GuildSettingsRepository manages per-guild role configuration records.
// All writes are single-row upserts; last write wins.
type GuildSettingsRepository interface {
	// GetOrCreateGuildSettings returns the settings row for a guild,
	// inserting a default row if none exists. Safe for concurrent
	// first-access: creation is a single atomic upsert.
	GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpdateATeamRole upserts the row, overwriting the A team role
	UpdateATeamRole(ctx context.Context, guildID int64, roleID int64) error

	// UpdateBTeamRole upserts the row, overwriting the B team role
	UpdateBTeamRole(ctx context.Context, guildID int64, roleID int64) error

	// UpdateFriendlyFinderRole upserts the row, overwriting the friendly finder role
	UpdateFriendlyFinderRole(ctx context.Context, guildID int64, roleID int64) error
}

// MatchRepository manages the append-only scheduled match collection
type MatchRepository interface {
	// Create inserts a new match record
	Create(ctx context.Context, match *entities.ScheduledMatch) error

	// ListByGuild returns all matches for a guild in insertion order
	ListByGuild(ctx context.Context, guildID int64) ([]*entities.ScheduledMatch, error)
}
