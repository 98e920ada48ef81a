package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// Messages from the last day are pruned alongside the ban itself.
const banPurgeWindow = 24 * time.Hour

type discordGateway struct {
	client bot.Client
}

// NewDiscordGateway wraps a disgo client in the Gateway contract.
func NewDiscordGateway(client bot.Client) Gateway {
	return &discordGateway{client: client}
}

func (g *discordGateway) DeleteMessage(ctx context.Context, channelID, messageID snowflake.ID) error {
	return g.client.Rest().DeleteMessage(channelID, messageID, rest.WithCtx(ctx))
}

func (g *discordGateway) SendDirectEmbed(ctx context.Context, userID snowflake.ID, embed discord.Embed) error {
	dmChannel, err := g.client.Rest().CreateDMChannel(userID, rest.WithCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to create DM channel: %w", err)
	}
	_, err = g.client.Rest().CreateMessage(dmChannel.ID(), discord.MessageCreate{
		Embeds: []discord.Embed{embed},
	}, rest.WithCtx(ctx))
	return err
}

func (g *discordGateway) BanMember(ctx context.Context, guildID, userID snowflake.ID, reason string) error {
	return g.client.Rest().AddBan(guildID, userID, banPurgeWindow, rest.WithCtx(ctx), rest.WithReason(reason))
}
