package entities

// GuildSettings represents per-guild role configuration
type GuildSettings struct {
	GuildID              int64  `db:"guild_id"`
	ATeamRoleID          *int64 `db:"a_team_role_id"`          // Nullable - unset until /setateam
	BTeamRoleID          *int64 `db:"b_team_role_id"`          // Nullable - unset until /setbteam
	FriendlyFinderRoleID *int64 `db:"friendly_finder_role_id"` // Nullable - unset until /setffrole
}

// HasATeamRole checks if an A team role is configured
func (gs *GuildSettings) HasATeamRole() bool {
	return gs.ATeamRoleID != nil && *gs.ATeamRoleID > 0
}

// HasBTeamRole checks if a B team role is configured
func (gs *GuildSettings) HasBTeamRole() bool {
	return gs.BTeamRoleID != nil && *gs.BTeamRoleID > 0
}

// HasFriendlyFinderRole checks if a friendly finder role is configured
func (gs *GuildSettings) HasFriendlyFinderRole() bool {
	return gs.FriendlyFinderRoleID != nil && *gs.FriendlyFinderRoleID > 0
}

// HasTeamRoles checks if both team roles are configured
func (gs *GuildSettings) HasTeamRoles() bool {
	return gs.HasATeamRole() && gs.HasBTeamRole()
}

// TeamRoleID returns the configured role ID for the given team, or nil if unset
func (gs *GuildSettings) TeamRoleID(team Team) *int64 {
	if team == TeamA {
		return gs.ATeamRoleID
	}
	return gs.BTeamRoleID
}
