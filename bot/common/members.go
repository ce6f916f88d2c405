package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// memberPageSize is the maximum page size Discord allows for member listing
const memberPageSize = 1000

// ListAllMembers fetches the full member list for a guild, paginating
// through the members endpoint. The session state is not consulted, so the
// result reflects what the platform reports at call time.
func ListAllMembers(s *discordgo.Session, guildID string) ([]*discordgo.Member, error) {
	var all []*discordgo.Member

	after := ""
	for {
		page, err := s.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list members for guild %s: %w", guildID, err)
		}

		all = append(all, page...)

		if len(page) < memberPageSize {
			return all, nil
		}
		after = page[len(page)-1].User.ID
	}
}
