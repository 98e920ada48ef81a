package autoclean

import (
	"context"
	"fmt"
	"strings"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

type discordGateway struct {
	client bot.Client
}

// NewDiscordGateway adapts a disgo client to the scheduler's ChannelGateway.
func NewDiscordGateway(client bot.Client) ChannelGateway {
	return &discordGateway{client: client}
}

func (g *discordGateway) ResolveChannel(ctx context.Context, guildID snowflake.ID, name string) (snowflake.ID, bool, error) {
	channels, err := g.client.Rest().GetGuildChannels(guildID, rest.WithCtx(ctx))
	if err != nil {
		return 0, false, fmt.Errorf("failed to fetch guild channels: %w", err)
	}

	want := models.NormalizeChannelName(name)
	for _, ch := range channels {
		if ch.Type() != discord.ChannelTypeGuildText {
			continue
		}
		if strings.ToLower(ch.Name()) == want {
			return ch.ID(), true, nil
		}
	}
	return 0, false, nil
}

func (g *discordGateway) SendEmbed(ctx context.Context, channelID snowflake.ID, embed discord.Embed) error {
	_, err := g.client.Rest().CreateMessage(channelID,
		discord.NewMessageCreateBuilder().SetEmbeds(embed).Build(),
		rest.WithCtx(ctx))
	return err
}

func (g *discordGateway) PurgeRecent(ctx context.Context, channelID snowflake.ID, limit int) (int, error) {
	messages, err := g.client.Rest().GetMessages(channelID, 0, 0, 0, limit, rest.WithCtx(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch messages: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if len(messages) == 1 {
		if err := g.client.Rest().DeleteMessage(channelID, messages[0].ID, rest.WithCtx(ctx)); err != nil {
			return 0, fmt.Errorf("failed to delete message: %w", err)
		}
		return 1, nil
	}

	ids := make([]snowflake.ID, 0, len(messages))
	for _, msg := range messages {
		ids = append(ids, msg.ID)
	}
	if err := g.client.Rest().BulkDeleteMessages(channelID, ids, rest.WithCtx(ctx)); err != nil {
		return 0, fmt.Errorf("failed to bulk delete messages: %w", err)
	}
	return len(ids), nil
}
