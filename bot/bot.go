package bot

import (
	"context"
	"fmt"

	"squadbot/bot/broadcast"
	"squadbot/bot/common"
	"squadbot/bot/features/broadcasts"
	"squadbot/bot/features/matches"
	"squadbot/bot/features/settings"
	"squadbot/bot/features/team"
	"squadbot/bot/messages"
	"squadbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string // Optional: register commands for one guild only
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config          Config
	session         *discordgo.Session
	settingsService interfaces.GuildSettingsService

	// Feature modules
	settings   *settings.Feature
	team       *team.Feature
	matches    *matches.Feature
	broadcasts *broadcasts.Feature
}

// New creates a new bot instance with all features
func New(config Config, settingsService interfaces.GuildSettingsService, matchService interfaces.MatchService, msgs *messages.Catalog) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:          config,
		session:         dg,
		settingsService: settingsService,
	}

	sender := broadcast.NewDiscordSender(dg)

	bot.settings = settings.NewFeature(settingsService, msgs)
	bot.team = team.NewFeature(settingsService, msgs)
	bot.matches = matches.NewFeature(matchService, msgs)
	bot.broadcasts = broadcasts.NewFeature(settingsService, sender, msgs)

	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleGuildCreate)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate feature handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "setateam", "setbteam", "setffrole":
		b.settings.HandleCommand(s, i)
	case "promote", "demote", "promotetoff", "roaster":
		b.team.HandleCommand(s, i)
	case "schedule", "listmatches":
		b.matches.HandleCommand(s, i)
	case "dmall", "poll", "feedback":
		b.broadcasts.HandleCommand(s, i)
	}
}

// handleGuildCreate seeds the settings row when the bot joins a guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	guildID, err := common.ParseSnowflake(g.ID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	ctx := context.Background()
	guildSettings, err := b.settingsService.GetOrCreateSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to track guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	log.WithFields(log.Fields{
		"guild_id":   guildSettings.GuildID,
		"guild_name": g.Name,
	}).Info("Guild settings loaded")
}
