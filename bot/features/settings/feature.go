package settings

import (
	"squadbot/bot/messages"
	"squadbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles guild role configuration commands
type Feature struct {
	settingsService interfaces.GuildSettingsService
	msgs            *messages.Catalog
}

// NewFeature creates a new settings feature instance
func NewFeature(settingsService interfaces.GuildSettingsService, msgs *messages.Catalog) *Feature {
	return &Feature{
		settingsService: settingsService,
		msgs:            msgs,
	}
}

// HandleCommand routes settings commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "setateam":
		f.handleSetRole(s, i, roleKindATeam)
	case "setbteam":
		f.handleSetRole(s, i, roleKindBTeam)
	case "setffrole":
		f.handleSetRole(s, i, roleKindFriendlyFinder)
	}
}
