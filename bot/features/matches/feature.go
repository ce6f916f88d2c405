package matches

import (
	"squadbot/bot/messages"
	"squadbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// Feature handles match scheduling and listing
type Feature struct {
	matchService interfaces.MatchService
	msgs         *messages.Catalog
}

// NewFeature creates a new matches feature instance
func NewFeature(matchService interfaces.MatchService, msgs *messages.Catalog) *Feature {
	return &Feature{
		matchService: matchService,
		msgs:         msgs,
	}
}

// HandleCommand routes match commands to appropriate handlers
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "schedule":
		f.handleSchedule(s, i)
	case "listmatches":
		f.handleListMatches(s, i)
	}
}
