// Package broadcast implements best-effort fan-out direct messaging: send
// to every eligible member, count what happened, never let one unreachable
// member stop the rest.
package broadcast

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// SendTimeout bounds each individual DM attempt so a stalled send is
// counted as failed instead of hanging the whole broadcast.
const SendTimeout = 10 * time.Second

// Sender delivers a direct message to one user
type Sender interface {
	SendDM(ctx context.Context, userID string, content string) error
}

// Predicate decides whether a member is an eligible recipient
type Predicate func(*discordgo.Member) bool

// Result is the final tally of a broadcast. A partial failure is
// success-with-a-count, never an error.
type Result struct {
	Sent   int
	Failed int
}

// Run iterates the member list, skips members failing the filter, and
// attempts one DM per eligible member. Each eligible member contributes
// exactly one increment to the tally. Which specific members failed is
// not reported.
func Run(ctx context.Context, sender Sender, members []*discordgo.Member, content string, filter Predicate) Result {
	var result Result

	for _, member := range members {
		if member.User == nil {
			continue
		}
		if filter != nil && !filter(member) {
			continue
		}

		sendCtx, cancel := context.WithTimeout(ctx, SendTimeout)
		err := sender.SendDM(sendCtx, member.User.ID, content)
		cancel()

		if err != nil {
			result.Failed++
			log.WithFields(log.Fields{
				"user_id": member.User.ID,
			}).Debugf("Broadcast DM failed: %v", err)
			continue
		}
		result.Sent++
	}

	return result
}

// NonBot is the default recipient filter: every human member
func NonBot(m *discordgo.Member) bool {
	return m.User != nil && !m.User.Bot
}

// AdminRoleIDs extracts the IDs of roles carrying administrator permission
func AdminRoleIDs(roles []*discordgo.Role) map[string]struct{} {
	admin := make(map[string]struct{})
	for _, r := range roles {
		if r.Permissions&discordgo.PermissionAdministrator != 0 {
			admin[r.ID] = struct{}{}
		}
	}
	return admin
}

// AdminOnly restricts recipients to human members holding an admin role
// or owning the guild
func AdminOnly(adminRoles map[string]struct{}, ownerID string) Predicate {
	return func(m *discordgo.Member) bool {
		if !NonBot(m) {
			return false
		}
		if ownerID != "" && m.User.ID == ownerID {
			return true
		}
		for _, roleID := range m.Roles {
			if _, ok := adminRoles[roleID]; ok {
				return true
			}
		}
		return false
	}
}
