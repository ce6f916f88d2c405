package common

import (
	"github.com/bwmarrin/discordgo"
)

// DeferResponse sends a deferred response to give more time for processing
func DeferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) error {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: flags,
		},
	})
}

// RespondWithMessage sends a plain text interaction response
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Content: content,
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithEmbed sends an embed as an interaction response
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// FollowUpWithMessage sends a plain text follow-up to a deferred interaction
func FollowUpWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) (*discordgo.Message, error) {
	params := &discordgo.WebhookParams{
		Content: content,
	}

	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.FollowupMessageCreate(i.Interaction, false, params)
}
