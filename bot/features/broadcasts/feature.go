package broadcasts

import (
	"squadbot/bot/broadcast"
	"squadbot/bot/messages"
	"squadbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the fan-out DM commands
type Feature struct {
	settingsService interfaces.GuildSettingsService
	sender          broadcast.Sender
	msgs            *messages.Catalog
}

// NewFeature creates a new broadcasts feature instance
func NewFeature(settingsService interfaces.GuildSettingsService, sender broadcast.Sender, msgs *messages.Catalog) *Feature {
	return &Feature{
		settingsService: settingsService,
		sender:          sender,
		msgs:            msgs,
	}
}

// HandleCommand routes broadcast commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "dmall":
		f.handleDMAll(s, i)
	case "poll":
		f.handlePoll(s, i)
	case "feedback":
		f.handleFeedback(s, i)
	}
}
