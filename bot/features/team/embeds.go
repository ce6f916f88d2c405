package team

import (
	"fmt"
	"strings"

	"squadbot/bot/common"
	"squadbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// rosterEmbed builds the roster display for one team
func rosterEmbed(team entities.Team, mentions []string, emptyText string) *discordgo.MessageEmbed {
	description := emptyText
	if len(mentions) > 0 {
		description = strings.Join(mentions, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Team Roster", team),
		Description: description,
		Color:       common.ColorPurple,
	}
}
