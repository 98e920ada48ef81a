package admin

import (
	"context"
	"fmt"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/json"
)

var Kick = discord.SlashCommandCreate{
	Name:        "kick",
	Description: "Kick a user from the server",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionKickMembers),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user to kick",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    false,
		},
	},
}

func KickHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		reason := "No reason provided"
		if r, ok := data.OptString("reason"); ok {
			reason = r
		}

		if target.ID == e.User().ID {
			return utils.EH.CreateErrorEmbed(e, "You cannot kick yourself.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.GatewayCallTimeout)
		defer cancel()

		if err := b.Client.Rest().RemoveMember(*e.GuildID(), target.ID,
			rest.WithCtx(ctx),
			rest.WithReason(fmt.Sprintf("%s (by %s)", reason, e.User().Username))); err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Failed to kick %s: %s", target.Username, err))
		}

		action := &models.ModAction{
			GuildID:     e.GuildID().String(),
			ModeratorID: e.User().ID.String(),
			TargetID:    target.ID.String(),
			Action:      models.ActionKick,
			Reason:      reason,
		}
		if err := b.ModActionRepo.Add(ctx, action); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Kicked, but failed to record the action.")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "User Kicked",
				Description: fmt.Sprintf("**%s** has been kicked.\n**Reason:** %s", target.Username, reason),
				Color:       config.WarningColor,
			}},
		})
	}
}
