package repository

import (
	"context"
	"fmt"

	"squadbot/database"
	"squadbot/domain/entities"
)

// GuildSettingsRepository implements the GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q Queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// NewGuildSettingsRepositoryWithQueryable creates a repository over an arbitrary queryable (e.g. a tx)
func NewGuildSettingsRepositoryWithQueryable(q Queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: q}
}

// GetOrCreateGuildSettings retrieves guild settings or creates default ones
// if not found. The no-op DO UPDATE makes the insert return the existing row
// under concurrent first-access, so at most one row per guild ever exists
// and both racers see the same record.
func (r *GuildSettingsRepository) GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	query := `
		INSERT INTO guild_settings (guild_id, a_team_role_id, b_team_role_id, friendly_finder_role_id)
		VALUES ($1, NULL, NULL, NULL)
		ON CONFLICT (guild_id) DO UPDATE SET guild_id = EXCLUDED.guild_id
		RETURNING guild_id, a_team_role_id, b_team_role_id, friendly_finder_role_id
	`

	var settings entities.GuildSettings
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&settings.GuildID,
		&settings.ATeamRoleID,
		&settings.BTeamRoleID,
		&settings.FriendlyFinderRoleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create guild settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

// UpdateATeamRole upserts the settings row, overwriting the A team role
func (r *GuildSettingsRepository) UpdateATeamRole(ctx context.Context, guildID int64, roleID int64) error {
	return r.upsertRole(ctx, guildID, "a_team_role_id", roleID)
}

// UpdateBTeamRole upserts the settings row, overwriting the B team role
func (r *GuildSettingsRepository) UpdateBTeamRole(ctx context.Context, guildID int64, roleID int64) error {
	return r.upsertRole(ctx, guildID, "b_team_role_id", roleID)
}

// UpdateFriendlyFinderRole upserts the settings row, overwriting the friendly finder role
func (r *GuildSettingsRepository) UpdateFriendlyFinderRole(ctx context.Context, guildID int64, roleID int64) error {
	return r.upsertRole(ctx, guildID, "friendly_finder_role_id", roleID)
}

// upsertRole writes one role column unconditionally. The column name comes
// from the fixed set above, never from user input.
func (r *GuildSettingsRepository) upsertRole(ctx context.Context, guildID int64, column string, roleID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO guild_settings (guild_id, %s)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO UPDATE SET %s = EXCLUDED.%s
	`, column, column, column)

	if _, err := r.q.Exec(ctx, query, guildID, roleID); err != nil {
		return fmt.Errorf("failed to update %s for guild %d: %w", column, guildID, err)
	}

	return nil
}
