package cmd

import (
	"context"
	"fmt"
	"time"

	"squadbot/bot"
	"squadbot/bot/messages"
	"squadbot/config"
	"squadbot/database"
	"squadbot/domain/services"
	"squadbot/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting squadbot...")

	cfg := config.Get()

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	guildSettingsService := services.NewGuildSettingsService(repository.NewGuildSettingsRepository(db))
	matchService := services.NewMatchService(repository.NewMatchRepository(db))

	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.GuildID,
	}
	discordBot, err := bot.New(botConfig, guildSettingsService, matchService, messages.Default())
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized")

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
