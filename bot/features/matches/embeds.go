package matches

import (
	"fmt"

	"squadbot/bot/common"
	"squadbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// scheduledMatchEmbed builds the confirmation card for a stored match
func scheduledMatchEmbed(match *entities.ScheduledMatch, scheduledBy string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Scheduled Match",
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Date", Value: match.Date, Inline: true},
			{Name: "Time", Value: match.Time, Inline: true},
			{Name: "Opponent", Value: match.Opponent},
			{Name: "League", Value: match.League},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Scheduled by %s", scheduledBy),
		},
	}
}

// matchListEmbed builds the listing of all stored matches for a guild
func matchListEmbed(stored []*entities.ScheduledMatch) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Scheduled Matches",
		Color: common.ColorDanger,
	}

	for _, m := range stored {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s at %s", m.Date, m.Time),
			Value: fmt.Sprintf("Opponent: %s | League: %s", m.Opponent, m.League),
		})
	}

	return embed
}
