package matches

import (
	"context"
	"errors"

	"squadbot/bot/common"
	"squadbot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleSchedule handles /schedule: validate date/time, store the match,
// post a formatted card. Malformed input stores nothing.
func (f *Feature) handleSchedule(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		common.RespondWithError(s, i, f.msgs.GuildOnly)
		return
	}

	var date, timeOfDay, opponent, league string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "date":
			date = opt.StringValue()
		case "time":
			timeOfDay = opt.StringValue()
		case "opponent":
			opponent = opt.StringValue()
		case "league":
			league = opt.StringValue()
		}
	}

	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	createdBy, err := common.ParseSnowflake(i.Member.User.ID)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Failed to process command")
		return
	}

	ctx := context.Background()
	match, err := f.matchService.ScheduleMatch(ctx, guildID, date, timeOfDay, opponent, league, createdBy)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidMatch) {
			common.RespondWithError(s, i, f.msgs.InvalidSchedule)
			return
		}
		log.WithFields(log.Fields{
			"guild_id": guildID,
		}).Errorf("Failed to schedule match: %v", err)
		common.RespondWithError(s, i, "Failed to store the match")
		return
	}

	displayName := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)
	if err := common.RespondWithEmbed(s, i, scheduledMatchEmbed(match, displayName), false); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}

// handleListMatches handles /listmatches
func (f *Feature) handleListMatches(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
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
	stored, err := f.matchService.ListMatches(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to list matches: %v", err)
		common.RespondWithError(s, i, "Failed to load matches")
		return
	}

	if len(stored) == 0 {
		if err := common.RespondWithMessage(s, i, f.msgs.NoMatches, true); err != nil {
			log.Errorf("Failed to respond to interaction: %v", err)
		}
		return
	}

	if err := common.RespondWithEmbed(s, i, matchListEmbed(stored), false); err != nil {
		log.Errorf("Failed to respond to interaction: %v", err)
	}
}
