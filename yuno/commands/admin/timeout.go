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

var Timeout = discord.SlashCommandCreate{
	Name:        "timeout",
	Description: "Time a user out",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionModerateMembers),
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The user to time out",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "minutes",
			Description: "Timeout length in minutes (up to 28 days)",
			Required:    true,
			MinValue:    &[]int{config.MinTimeoutMinutes}[0],
			MaxValue:    &[]int{config.MaxTimeoutMinutes}[0],
		},
		discord.ApplicationCommandOptionString{
			Name:        "reason",
			Description: "Reason for the timeout",
			Required:    false,
		},
	},
}

func TimeoutHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		minutes := data.Int("minutes")
		reason := "No reason provided"
		if r, ok := data.OptString("reason"); ok {
			reason = r
		}

		if minutes < config.MinTimeoutMinutes || minutes > config.MaxTimeoutMinutes {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf(
				"Timeout must be between %d and %d minutes.",
				config.MinTimeoutMinutes, config.MaxTimeoutMinutes))
		}

		until := time.Now().Add(time.Duration(minutes) * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), config.GatewayCallTimeout)
		defer cancel()

		if _, err := b.Client.Rest().UpdateMember(*e.GuildID(), target.ID,
			discord.MemberUpdate{
				CommunicationDisabledUntil: json.NewNullablePtr(until),
			},
			rest.WithCtx(ctx),
			rest.WithReason(fmt.Sprintf("%s (by %s)", reason, e.User().Username))); err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Failed to time out %s: %s", target.Username, err))
		}

		action := &models.ModAction{
			GuildID:     e.GuildID().String(),
			ModeratorID: e.User().ID.String(),
			TargetID:    target.ID.String(),
			Action:      models.ActionTimeout,
			Reason:      reason,
		}
		if err := b.ModActionRepo.Add(ctx, action); err != nil {
			return utils.EH.CreateErrorEmbed(e, "Timed out, but failed to record the action.")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "User Timed Out",
				Description: fmt.Sprintf("**%s** is timed out until %s.\n**Reason:** %s",
					target.Username, utils.FormatTimestamp(until), reason),
				Color: config.WarningColor,
			}},
		})
	}
}
