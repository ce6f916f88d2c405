package broadcasts

import (
	"context"
	"errors"
	"fmt"

	"squadbot/bot/broadcast"
	"squadbot/bot/common"
	"squadbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleDMAll handles /dmall: DM the message to every non-bot member
func (f *Feature) handleDMAll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		common.RespondWithError(s, i, f.msgs.GuildOnly)
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "A message is required")
		return
	}
	message := options[0].StringValue()

	// The fan-out loop can easily exceed the initial response window
	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	members, err := common.ListAllMembers(s, i.GuildID)
	if err != nil {
		log.Errorf("Failed to list members: %v", err)
		common.FollowUpWithError(s, i, "Failed to fetch the member list")
		return
	}

	result := broadcast.Run(context.Background(), f.sender, members, message, broadcast.NonBot)

	log.WithFields(log.Fields{
		"guild_id": i.GuildID,
		"sent":     result.Sent,
		"failed":   result.Failed,
	}).Info("Broadcast completed")

	reply := fmt.Sprintf(f.msgs.DMAllResultFmt, result.Sent, result.Failed)
	if _, err := common.FollowUpWithMessage(s, i, reply, true); err != nil {
		log.Errorf("Failed to send follow-up: %v", err)
	}
}

// handlePoll handles /poll: post a reactable announcement, gated by the
// friendly finder role, then DM the message link to all members
func (f *Feature) handlePoll(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" || i.ChannelID == "" {
		common.RespondWithError(s, i, f.msgs.GuildOnly)
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

	if err := services.CheckFriendlyFinderAccess(settings, common.MemberRoleIDs(i.Member)); err != nil {
		switch {
		case errors.Is(err, services.ErrFriendlyFinderNotConfigured):
			common.RespondWithError(s, i, f.msgs.FFRoleNotSet)
		case errors.Is(err, services.ErrMissingFriendlyFinderRole):
			common.RespondWithError(s, i, f.msgs.FFRoleRequired)
		default:
			common.RespondWithError(s, i, "Failed to process command")
		}
		return
	}

	pollMsg, err := s.ChannelMessageSend(i.ChannelID, f.msgs.PollAnnounce)
	if err != nil {
		log.Errorf("Failed to post poll message: %v", err)
		common.RespondWithError(s, i, "Failed to post the poll")
		return
	}

	if err := s.MessageReactionAdd(i.ChannelID, pollMsg.ID, "✅"); err != nil {
		// The poll still works without the seed reaction
		log.Warnf("Failed to add poll reaction: %v", err)
	}

	link := fmt.Sprintf("https://discord.com/channels/%s/%s/%s", i.GuildID, i.ChannelID, pollMsg.ID)

	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	members, err := common.ListAllMembers(s, i.GuildID)
	if err != nil {
		log.Errorf("Failed to list members: %v", err)
		common.FollowUpWithError(s, i, "Failed to fetch the member list")
		return
	}

	result := broadcast.Run(ctx, f.sender, members, fmt.Sprintf(f.msgs.PollDMFmt, link), broadcast.NonBot)

	log.WithFields(log.Fields{
		"guild_id": i.GuildID,
		"sent":     result.Sent,
		"failed":   result.Failed,
	}).Info("Poll broadcast completed")

	reply := fmt.Sprintf(f.msgs.PollResultFmt, result.Sent, result.Failed)
	if _, err := common.FollowUpWithMessage(s, i, reply, true); err != nil {
		log.Errorf("Failed to send follow-up: %v", err)
	}
}

// handleFeedback handles /feedback: DM the message to every administrator
func (f *Feature) handleFeedback(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		common.RespondWithError(s, i, f.msgs.GuildOnly)
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "A message is required")
		return
	}
	message := options[0].StringValue()

	if err := common.DeferResponse(s, i, true); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	guild, err := s.State.Guild(i.GuildID)
	if err != nil {
		guild, err = s.Guild(i.GuildID)
		if err != nil {
			log.Errorf("Failed to fetch guild %s: %v", i.GuildID, err)
			common.FollowUpWithError(s, i, "Failed to process command")
			return
		}
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Errorf("Failed to fetch roles for guild %s: %v", i.GuildID, err)
		common.FollowUpWithError(s, i, "Failed to process command")
		return
	}

	members, err := common.ListAllMembers(s, i.GuildID)
	if err != nil {
		log.Errorf("Failed to list members: %v", err)
		common.FollowUpWithError(s, i, "Failed to fetch the member list")
		return
	}

	content := fmt.Sprintf(f.msgs.FeedbackDMFmt, i.Member.User.Mention(), guild.Name, message)
	filter := broadcast.AdminOnly(broadcast.AdminRoleIDs(roles), guild.OwnerID)

	result := broadcast.Run(context.Background(), f.sender, members, content, filter)

	log.WithFields(log.Fields{
		"guild_id": i.GuildID,
		"sent":     result.Sent,
		"failed":   result.Failed,
	}).Info("Feedback broadcast completed")

	reply := fmt.Sprintf(f.msgs.FeedbackSentFmt, result.Sent)
	if _, err := common.FollowUpWithMessage(s, i, reply, true); err != nil {
		log.Errorf("Failed to send follow-up: %v", err)
	}
}
