package settings

import (
	"context"
	"fmt"

	"squadbot/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// roleKind selects which settings field a set-role command writes
type roleKind int

const (
	roleKindATeam roleKind = iota
	roleKindBTeam
	roleKindFriendlyFinder
)

// handleSetRole handles /setateam, /setbteam and /setffrole. All three
// share the same shape: admin gate, role option, single-field upsert,
// ephemeral confirmation mentioning the role.
func (f *Feature) handleSetRole(s *discordgo.Session, i *discordgo.InteractionCreate, kind roleKind) {
	if i.GuildID == "" {
		common.RespondWithError(s, i, f.msgs.GuildOnly)
		return
	}

	if !common.IsUserAdmin(s, i.GuildID, i.Member.User.ID) {
		common.RespondWithError(s, i, f.msgs.AdminOnly)
		return
	}

	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "A role is required")
		return
	}

	role := options[0].RoleValue(s, i.GuildID)
	if role == nil {
		common.RespondWithError(s, i, "Invalid role selected")
		return
	}

	roleID, err := common.ParseSnowflake(role.ID)
	if err != nil {
		log.Errorf("Failed to parse role ID %s: %v", role.ID, err)
		common.RespondWithError(s, i, "Invalid role selected")
		return
	}

	ctx := context.Background()

	var confirmation string
	switch kind {
	case roleKindATeam:
		err = f.settingsService.UpdateATeamRole(ctx, guildID, roleID)
		confirmation = fmt.Sprintf(f.msgs.ATeamSetFmt, role.Mention())
	case roleKindBTeam:
		err = f.settingsService.UpdateBTeamRole(ctx, guildID, roleID)
		confirmation = fmt.Sprintf(f.msgs.BTeamSetFmt, role.Mention())
	case roleKindFriendlyFinder:
		err = f.settingsService.UpdateFriendlyFinderRole(ctx, guildID, roleID)
		confirmation = fmt.Sprintf(f.msgs.FFRoleSetFmt, role.Mention())
	}

	if err != nil {
		log.WithFields(log.Fields{
			"guild_id": guildID,
			"role_id":  roleID,
		}).Errorf("Failed to update guild settings: %v", err)
		common.RespondWithError(s, i, "Failed to update settings")
		return
	}

	if err := common.RespondWithMessage(s, i, confirmation, true); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}
