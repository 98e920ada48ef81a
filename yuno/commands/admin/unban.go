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
	"github.com/disgoorg/snowflake/v2"
)

var Unban = discord.SlashCommandCreate{
	Name:        "unban",
	Description: "Remove a ban by user id",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionBanMembers),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "user_id",
			Description: "The id of the banned user",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "reason",
			Description: "Reason for the unban",
			Required:    false,
		},
	},
}

func UnbanHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		data := e.SlashCommandInteractionData()
		userID, err := snowflake.Parse(data.String("user_id"))
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "That doesn't look like a valid user id.")
		}
		reason := "No reason provided"
		if r, ok := data.OptString("reason"); ok {
			reason = r
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.GatewayCallTimeout)
		defer cancel()

		if err := b.Client.Rest().DeleteBan(*e.GuildID(), userID,
			rest.WithCtx(ctx),
			rest.WithReason(fmt.Sprintf("%s (by %s)", reason, e.User().Username))); err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Failed to unban <@%d>: %s", userID, err))
		}

		action := &models.ModAction{
			GuildID:     e.GuildID().String(),
			ModeratorID: e.User().ID.String(),
			TargetID:    userID.String(),
			Action:      models.ActionUnban,
			Reason:      reason,
		}
		if err := b.ModActionRepo.Add(ctx, action); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Unbanned, but failed to record the action.")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "User Unbanned",
				Description: fmt.Sprintf("<@%d> has been unbanned.\n**Reason:** %s", userID, reason),
				Color:       config.SuccessColor,
			}},
		})
	}
}
