package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord. When a guild
// ID is configured the commands are scoped to it, which makes them visible
// immediately instead of after global propagation.
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "dmall",
			Description: "Send a DM to every member of the team server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "The message to send via DM",
					Required:    true,
				},
			},
		},
		{
			Name:        "poll",
			Description: "Create a friendly poll message and DM everyone the link",
		},
		{
			Name:        "setateam",
			Description: "Set the pinged role as the A TEAM for this guild",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "The role to assign as A TEAM",
					Required:    true,
				},
			},
		},
		{
			Name:        "setbteam",
			Description: "Set the pinged role as the B TEAM for this guild",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "The role to assign as B TEAM",
					Required:    true,
				},
			},
		},
		{
			Name:        "setffrole",
			Description: "Set the Friendly Finder role for this guild",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "The role to assign as Friendly Finder",
					Required:    true,
				},
			},
		},
		{
			Name:        "promote",
			Description: "Promote a user from B TEAM to A TEAM",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to promote",
					Required:    true,
				},
			},
		},
		{
			Name:        "demote",
			Description: "Demote a user from A TEAM to B TEAM",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to demote",
					Required:    true,
				},
			},
		},
		{
			Name:        "promotetoff",
			Description: "Give the Friendly Finder role to a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to promote to Friendly Finder",
					Required:    true,
				},
			},
		},
		{
			Name:        "schedule",
			Description: "Schedule a match",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Format: DD/MM/YYYY",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "Format: HH:MM",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "opponent",
					Description: "Name of the opponent",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "league",
					Description: "Optional league name",
					Required:    false,
				},
			},
		},
		{
			Name:        "listmatches",
			Description: "List all scheduled matches for this guild",
		},
		{
			Name:        "roaster",
			Description: "List the members of a team",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "team",
					Description: "A or B",
					Required:    true,
				},
			},
		},
		{
			Name:        "feedback",
			Description: "Send feedback to the server admins",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "Your feedback to admins",
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
