package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
)

var AutoClean = discord.SlashCommandCreate{
	Name:        "autoclean",
	Description: "Manage scheduled channel cleaning",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageGuild),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "add",
			Description: "Schedule a channel for periodic cleaning",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "channel",
					Description: "Name of the channel to clean",
					Required:    true,
				},
				discord.ApplicationCommandOptionInt{
					Name:        "hours",
					Description: "Hours between cleans",
					Required:    true,
					MinValue:    &[]int{1}[0],
				},
				discord.ApplicationCommandOptionInt{
					Name:        "warning_minutes",
					Description: "Minutes of warning before each clean",
					Required:    true,
					MinValue:    &[]int{1}[0],
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Stop cleaning a channel",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "channel",
					Description: "Name of the channel to stop cleaning",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "Show this server's cleaning schedule",
		},
	},
}

func AutoCleanHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		data := e.SlashCommandInteractionData()
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		switch *data.SubCommandName {
		case "add":
			return autoCleanAdd(ctx, b, e)
		case "remove":
			return autoCleanRemove(ctx, b, e)
		case "list":
			return autoCleanList(ctx, b, e)
		default:
			return utils.EH.CreateErrorEmbed(e, "Invalid subcommand")
		}
	}
}

func autoCleanAdd(ctx context.Context, b *yuno.Bot, e *handler.CommandEvent) error {
	data := e.SlashCommandInteractionData()
	channel := data.String("channel")
	hours := int64(data.Int("hours"))
	warningMinutes := int64(data.Int("warning_minutes"))

	if hours < 1 {
		return utils.EH.CreateErrorEmbed(e, "Hours between cleans must be at least 1.")
	}
	// A warning at or beyond the cycle length would never fire.
	if warningMinutes < 1 || warningMinutes >= hours*60 {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
			"Warning time must be between 1 and %d minutes for a %d hour cycle.",
			hours*60-1, hours))
	}

	cfg := &models.CleanConfig{
		GuildID:           e.GuildID().String(),
		ChannelName:       channel,
		TimeBetweenCleans: hours,
		WarningTime:       warningMinutes,
	}
	if err := b.CleanRepo.Set(ctx, cfg); err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to save the cleaning schedule.")
	}

	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
		"**#%s** will be cleaned every %d hours with a %d minute warning.",
		models.NormalizeChannelName(channel), hours, warningMinutes))
}

func autoCleanRemove(ctx context.Context, b *yuno.Bot, e *handler.CommandEvent) error {
	channel := e.SlashCommandInteractionData().String("channel")

	err := b.CleanRepo.Delete(ctx, e.GuildID().String(), channel)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
			"**#%s** is not on the cleaning schedule.", models.NormalizeChannelName(channel)))
	}
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to update the cleaning schedule.")
	}

	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf(
		"**#%s** will no longer be cleaned.", models.NormalizeChannelName(channel)))
}

func autoCleanList(ctx context.Context, b *yuno.Bot, e *handler.CommandEvent) error {
	cfgs, err := b.CleanRepo.GetByGuild(ctx, e.GuildID().String())
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to load the cleaning schedule.")
	}
	if len(cfgs) == 0 {
		return utils.EH.CreateInfoEmbed(e, "No channels are scheduled for cleaning.")
	}

	var sb strings.Builder
	for _, cfg := range cfgs {
		sb.WriteString(fmt.Sprintf("**#%s** — every %d hours, %d minute warning, next clean in %d minutes\n",
			cfg.ChannelName, cfg.TimeBetweenCleans, cfg.WarningTime, cfg.RemainingTime))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "Cleaning Schedule",
			Description: sb.String(),
			Color:       config.CleanColor,
		}},
	})
}
