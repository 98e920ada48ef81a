package admin

import (
	"context"
	"fmt"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/json"
	"github.com/disgoorg/snowflake/v2"
)

var Clean = discord.SlashCommandCreate{
	Name:        "clean",
	Description: "Delete the most recent messages in this channel",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageMessages),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "How many messages to delete",
			Required:    true,
			MinValue:    &[]int{1}[0],
			MaxValue:    &[]int{config.PurgeMessageLimit}[0],
		},
	},
}

func CleanHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		amount := e.SlashCommandInteractionData().Int("amount")
		if amount < 1 || amount > config.PurgeMessageLimit {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
				"Amount must be between 1 and %d.", config.PurgeMessageLimit))
		}

		if err := e.DeferCreateMessage(true); err != nil {
			return fmt.Errorf("failed to defer message: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.GatewayCallTimeout)
		defer cancel()

		messages, err := b.Client.Rest().GetMessages(e.ChannelID(), 0, 0, 0, amount, rest.WithCtx(ctx))
		if err != nil {
			_, uerr := e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{{
				Description: fmt.Sprintf("Failed to fetch messages: %s", err),
				Color:       config.ErrorColor,
			}}})
			return uerr
		}

		deleted := len(messages)
		switch {
		case deleted == 0:
		case deleted == 1:
			err = b.Client.Rest().DeleteMessage(e.ChannelID(), messages[0].ID, rest.WithCtx(ctx))
		default:
			ids := make([]snowflake.ID, 0, deleted)
			for _, msg := range messages {
				ids = append(ids, msg.ID)
			}
			err = b.Client.Rest().BulkDeleteMessages(e.ChannelID(), ids, rest.WithCtx(ctx))
		}
		if err != nil {
			_, uerr := e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{{
				Description: fmt.Sprintf("Failed to delete messages: %s", err),
				Color:       config.ErrorColor,
			}}})
			return uerr
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{{
			Description: fmt.Sprintf("Deleted %d messages.", deleted),
			Color:       config.CleanColor,
		}}})
		return err
	}
}
