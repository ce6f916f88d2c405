package team

import (
	"squadbot/bot/messages"
	"squadbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles team tier transitions and roster display
type Feature struct {
	settingsService interfaces.GuildSettingsService
	msgs            *messages.Catalog
}

// NewFeature creates a new team feature instance
func NewFeature(settingsService interfaces.GuildSettingsService, msgs *messages.Catalog) *Feature {
	return &Feature{
		settingsService: settingsService,
		msgs:            msgs,
	}
}

// HandleCommand routes team commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "promote":
		f.handlePromote(s, i)
	case "demote":
		f.handleDemote(s, i)
	case "promotetoff":
		f.handlePromoteToFF(s, i)
	case "roaster":
		f.handleRoster(s, i)
	}
}
