package team

import (
	"context"
	"errors"
	"fmt"

	"squadbot/bot/common"
	"squadbot/domain/entities"
	"squadbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handlePromote handles /promote: B team -> A team.
// The remove and add are two independent platform calls with no rollback;
// if the add fails after the remove, the user ends with neither role and
// the invoker is told what happened.
func (f *Feature) handlePromote(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, settings, ok := f.resolveTransition(s, i)
	if !ok {
		return
	}

	if err := services.CheckPromote(settings, common.MemberRoleIDs(target)); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamRolesNotConfigured):
			common.RespondWithError(s, i, f.msgs.TeamRolesNotSet)
		case errors.Is(err, services.ErrMissingBTeamRole):
			common.RespondWithError(s, i, fmt.Sprintf(f.msgs.MissingBTeamRoleFmt, target.User.Mention()))
		default:
			common.RespondWithError(s, i, "Failed to process command")
		}
		return
	}

	if err := f.moveBetweenRoles(s, i.GuildID, target.User.ID, *settings.BTeamRoleID, *settings.ATeamRoleID); err != nil {
		log.WithFields(log.Fields{
			"guild_id": i.GuildID,
			"user_id":  target.User.ID,
		}).Errorf("Promotion failed: %v", err)
		common.RespondWithError(s, i, fmt.Sprintf(f.msgs.PromoteFailedFmt, target.User.Mention(), err))
		return
	}

	// Successful promotions are public
	if err := common.RespondWithMessage(s, i, fmt.Sprintf(f.msgs.PromotedFmt, target.User.Mention()), false); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// handleDemote handles /demote: A team -> B team, symmetric to promote
func (f *Feature) handleDemote(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, settings, ok := f.resolveTransition(s, i)
	if !ok {
		return
	}

	if err := services.CheckDemote(settings, common.MemberRoleIDs(target)); err != nil {
		switch {
		case errors.Is(err, services.ErrTeamRolesNotConfigured):
			common.RespondWithError(s, i, f.msgs.TeamRolesNotSet)
		case errors.Is(err, services.ErrMissingATeamRole):
			common.RespondWithError(s, i, fmt.Sprintf(f.msgs.MissingATeamRoleFmt, target.User.Mention()))
		default:
			common.RespondWithError(s, i, "Failed to process command")
		}
		return
	}

	if err := f.moveBetweenRoles(s, i.GuildID, target.User.ID, *settings.ATeamRoleID, *settings.BTeamRoleID); err != nil {
		log.WithFields(log.Fields{
			"guild_id": i.GuildID,
			"user_id":  target.User.ID,
		}).Errorf("Demotion failed: %v", err)
		common.RespondWithError(s, i, fmt.Sprintf(f.msgs.DemoteFailedFmt, target.User.Mention(), err))
		return
	}

	if err := common.RespondWithMessage(s, i, fmt.Sprintf(f.msgs.DemotedFmt, target.User.Mention()), false); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// handlePromoteToFF handles /promotetoff: grant the friendly finder role
func (f *Feature) handlePromoteToFF(s *discordgo.Session, i *discordgo.InteractionCreate) {
	target, settings, ok := f.resolveTransition(s, i)
	if !ok {
		return
	}

	if err := services.CheckFriendlyFinderGrant(settings, common.MemberRoleIDs(target)); err != nil {
		switch {
		case errors.Is(err, services.ErrFriendlyFinderNotConfigured):
			common.RespondWithError(s, i, f.msgs.FFRoleNotSet)
		case errors.Is(err, services.ErrAlreadyFriendlyFinder):
			common.RespondWithError(s, i, fmt.Sprintf(f.msgs.AlreadyFFFmt, target.User.Mention()))
		default:
			common.RespondWithError(s, i, "Failed to process command")
		}
		return
	}

	roleID := common.FormatSnowflake(*settings.FriendlyFinderRoleID)
	if err := s.GuildMemberRoleAdd(i.GuildID, target.User.ID, roleID); err != nil {
		log.WithFields(log.Fields{
			"guild_id": i.GuildID,
			"user_id":  target.User.ID,
		}).Errorf("Friendly finder grant failed: %v", err)
		common.RespondWithError(s, i, fmt.Sprintf(f.msgs.FFGrantFailedFmt, target.User.Mention(), err))
		return
	}

	if err := common.RespondWithMessage(s, i, fmt.Sprintf(f.msgs.FFGrantedFmt, target.User.Mention()), false); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// handleRoster handles /roaster: list members holding the resolved team role
func (f *Feature) handleRoster(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		common.RespondWithError(s, i, f.msgs.GuildOnly)
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, f.msgs.InvalidTeam)
		return
	}

	team, err := entities.ParseTeam(options[0].StringValue())
	if err != nil {
		common.RespondWithError(s, i, f.msgs.InvalidTeam)
		return
	}

	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	ctx := context.Background()
	settings, err := f.settingsService.GetOrCreateSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to load guild settings: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	roleID := settings.TeamRoleID(team)
	if roleID == nil || *roleID <= 0 {
		// No role lookup happens for an unset role
		common.RespondWithError(s, i, fmt.Sprintf(f.msgs.TeamRoleNotSetFmt, team))
		return
	}

	// Member listing can exceed the initial response window on big guilds
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	members, err := common.ListAllMembers(s, i.GuildID)
	if err != nil {
		log.Errorf("Failed to list members: %v", err)
		common.FollowUpWithError(s, i, "Failed to fetch the member list")
		return
	}

	roleIDStr := common.FormatSnowflake(*roleID)
	var mentions []string
	for _, m := range members {
		if m.User == nil {
			continue
		}
		for _, r := range m.Roles {
			if r == roleIDStr {
				mentions = append(mentions, m.User.Mention())
				break
			}
		}
	}

	embed := rosterEmbed(team, mentions, f.msgs.NoTeamMembers)
	if _, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}); err != nil {
		log.Errorf("Failed to send roster follow-up: %v", err)
	}
}

// resolveTransition runs the shared preamble of the role transition
// commands: guild guard, target user option, target member fetch and
// settings load. Responds on failure and reports ok=false.
func (f *Feature) resolveTransition(s *discordgo.Session, i *discordgo.InteractionCreate) (*discordgo.Member, *entities.GuildSettings, bool) {
	if i.GuildID == "" {
		common.RespondWithError(s, i, f.msgs.GuildOnly)
		return nil, nil, false
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "A user is required")
		return nil, nil, false
	}

	user := options[0].UserValue(s)
	if user == nil {
		common.RespondWithError(s, i, "Invalid user selected")
		return nil, nil, false
	}

	target, err := s.GuildMember(i.GuildID, user.ID)
	if err != nil {
		log.Errorf("Failed to fetch member %s: %v", user.ID, err)
		common.RespondWithError(s, i, "Failed to fetch that member")
		return nil, nil, false
	}
	if target.User == nil {
		target.User = user
	}

	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Failed to process command")
		return nil, nil, false
	}

	settings, err := f.settingsService.GetOrCreateSettings(context.Background(), guildID)
	if err != nil {
		log.Errorf("Failed to load guild settings: %v", err)
		common.RespondWithError(s, i, "Failed to process command")
		return nil, nil, false
	}

	return target, settings, true
}

// moveBetweenRoles removes one role and adds another as two independent
// platform calls. An error from either call is returned as-is so the
// invoker sees the underlying cause.
func (f *Feature) moveBetweenRoles(s *discordgo.Session, guildID, userID string, removeRoleID, addRoleID int64) error {
	if err := s.GuildMemberRoleRemove(guildID, userID, common.FormatSnowflake(removeRoleID)); err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}
	if err := s.GuildMemberRoleAdd(guildID, userID, common.FormatSnowflake(addRoleID)); err != nil {
		return fmt.Errorf("failed to add role: %w", err)
	}
	return nil
}
