package system

import (
	"context"
	"fmt"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
)

var Prefix = discord.SlashCommandCreate{
	Name:        "prefix",
	Description: "Show or change this server's text command prefix",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageGuild),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "new",
			Description: "The new prefix",
			Required:    false,
		},
	},
}

func PrefixHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		newPrefix, ok := e.SlashCommandInteractionData().OptString("new")
		if !ok {
			prefix, err := b.GuildRepo.GetPrefix(ctx, e.GuildID().String())
			if err != nil {
				return utils.EH.CreateErrorEmbed(e, "Failed to look up the prefix.")
			}
			if prefix == "" {
				return utils.EH.CreateInfoEmbed(e, "This server has no custom prefix.")
			}
			return utils.EH.CreateInfoEmbed(e, fmt.Sprintf("The current prefix is `%s`.", prefix))
		}

		if len(newPrefix) == 0 || len(newPrefix) > config.MaxPrefixLength {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
				"Prefix must be between 1 and %d characters.", config.MaxPrefixLength))
		}

		if err := b.GuildRepo.SetPrefix(ctx, e.GuildID().String(), newPrefix); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to save the prefix.")
		}
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("Prefix changed to `%s`.", newPrefix))
	}
}
