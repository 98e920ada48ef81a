package system

import (
	"context"
	"fmt"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
)

const defaultDelayMinutes = 5

var Delay = discord.SlashCommandCreate{
	Name:        "delay",
	Description: "Push back the next scheduled clean of a channel",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageGuild),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "channel",
			Description: "Name of the scheduled channel",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "minutes",
			Description: "How many minutes to add (default 5)",
			Required:    false,
			MinValue:    &[]int{1}[0],
		},
	},
}

func DelayHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		data := e.SlashCommandInteractionData()
		channel := data.String("channel")
		minutes := int64(defaultDelayMinutes)
		if m, ok := data.OptInt("minutes"); ok {
			minutes = int64(m)
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		cfg, err := b.CleanRepo.Get(ctx, e.GuildID().String(), channel)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to look up the cleaning schedule.")
		}
		if cfg == nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
				"**#%s** is not on the cleaning schedule.", models.NormalizeChannelName(channel)))
		}

		cfg.RemainingTime += minutes
		if err := b.CleanRepo.Set(ctx, cfg); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to update the cleaning schedule.")
		}

		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
			"Next clean of **#%s** pushed back %d minutes (now in %d minutes).",
			cfg.ChannelName, minutes, cfg.RemainingTime))
	}
}
