package broadcast

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordSender sends direct messages through a discordgo session
type DiscordSender struct {
	session *discordgo.Session
}

// NewDiscordSender creates a sender backed by the given session
func NewDiscordSender(session *discordgo.Session) *DiscordSender {
	return &DiscordSender{session: session}
}

// SendDM opens (or reuses) the DM channel with the user and sends the
// message. Fails if the user blocks DMs, shares no mutual server anymore,
// or the platform call errors out.
func (d *DiscordSender) SendDM(ctx context.Context, userID string, content string) error {
	channel, err := d.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel with user %s: %w", userID, err)
	}

	if _, err := d.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send DM to user %s: %w", userID, err)
	}

	return nil
}
