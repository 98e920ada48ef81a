package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/json"
)

var Ban = discord.SlashCommandCreate{
	Name:        "ban",
	Description: "Ban a user from the server",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionBanMembers),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user to ban",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "reason",
			Description: "Reason for the ban",
			Required:    false,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "delete_days",
			Description: "Days of messages to delete (0-7)",
			Required:    false,
			MinValue:    &[]int{0}[0],
			MaxValue:    &[]int{7}[0],
		},
	},
}

func BanHandler(b *yuno.Bot) handler.CommandHandler {
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
		deleteDays := 0
		if d, ok := data.OptInt("delete_days"); ok {
			deleteDays = d
		}

		if target.ID == e.User().ID {
			return utils.EH.CreateErrorEmbed(e, "You cannot ban yourself.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.GatewayCallTimeout)
		defer cancel()

		if err := b.Client.Rest().AddBan(*e.GuildID(), target.ID,
			time.Duration(deleteDays)*24*time.Hour,
			rest.WithCtx(ctx),
			rest.WithReason(fmt.Sprintf("%s (by %s)", reason, e.User().Username))); err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Failed to ban %s: %s", target.Username, err))
		}

		action := &models.ModAction{
			GuildID:     e.GuildID().String(),
			ModeratorID: e.User().ID.String(),
			TargetID:    target.ID.String(),
			Action:      models.ActionBan,
			Reason:      reason,
		}
		if err := b.ModActionRepo.Add(ctx, action); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Banned, but failed to record the action.")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "User Banned",
				Description: fmt.Sprintf("**%s** has been banned.\n**Reason:** %s", target.Username, reason),
				Color:       config.BanColor,
			}},
		})
	}
}
