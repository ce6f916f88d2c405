package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// GetDisplayName returns the server-specific display name for a user
// Falls back to username if nickname is not set or if there's an error
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// ParseSnowflake converts a Discord ID string to int64
func ParseSnowflake(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// FormatSnowflake converts an int64 Discord ID to string
func FormatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}

// UserMention returns a Discord mention string for a user
func UserMention(userID int64) string {
	return "<@" + FormatSnowflake(userID) + ">"
}

// RoleMention returns a Discord mention string for a role
func RoleMention(roleID int64) string {
	return "<@&" + FormatSnowflake(roleID) + ">"
}

// MemberRoleIDs parses a member's role ID strings to int64, dropping
// anything that does not parse
func MemberRoleIDs(member *discordgo.Member) []int64 {
	ids := make([]int64, 0, len(member.Roles))
	for _, r := range member.Roles {
		id, err := ParseSnowflake(r)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// IsUserAdmin checks if a user has administrator permissions in a guild
func IsUserAdmin(s *discordgo.Session, guildID, userID string) bool {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		log.Errorf("Failed to get guild member: %v", err)
		return false
	}

	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil {
			continue
		}
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}
