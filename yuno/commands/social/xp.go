package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/leveling"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

const leaderboardSize = 10

var XP = discord.SlashCommandCreate{
	Name:        "xp",
	Description: "Chat experience and levels",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "show",
			Description: "Show a user's level and XP",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{
					Name:        "user",
					Description: "Whose XP to show (defaults to you)",
					Required:    false,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "top",
			Description: "Show this server's XP leaderboard",
		},
	},
}

func XPHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
		defer cancel()

		data := e.SlashCommandInteractionData()
		switch *data.SubCommandName {
		case "show":
			return xpShow(ctx, b, e)
		case "top":
			return xpTop(ctx, b, e)
		default:
			return utils.EH.CreateErrorEmbed(e, "Invalid subcommand")
		}
	}
}

func xpShow(ctx context.Context, b *yuno.Bot, e *handler.CommandEvent) error {
	data := e.SlashCommandInteractionData()
	target := e.User()
	if u, ok := data.OptUser("user"); ok {
		target = u
	}

	exp, err := b.ExpRepo.Get(ctx, e.GuildID().String(), target.ID.String())
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to look up experience.")
	}

	nextLevelXP := leveling.XPForLevel(exp.Level + 1)

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title: fmt.Sprintf("%s's Experience", target.Username),
			Description: fmt.Sprintf("**Level:** %d\n**XP:** %d\n**Next level at:** %d XP",
				exp.Level, exp.XP, nextLevelXP),
			Color: config.LevelUpColor,
		}},
	})
}

func xpTop(ctx context.Context, b *yuno.Bot, e *handler.CommandEvent) error {
	top, err := b.ExpRepo.GetTop(ctx, e.GuildID().String(), leaderboardSize)
	if err != nil {
		return utils.EH.CreateErrorEmbed(e, "Failed to load the leaderboard.")
	}
	if len(top) == 0 {
		return utils.EH.CreateInfoEmbed(e, "Nobody has earned XP here yet.")
	}

	var sb strings.Builder
	for i, exp := range top {
		sb.WriteString(fmt.Sprintf("%d. <@%s> — level %d (%d XP)\n",
			i+1, exp.UserID, exp.Level, exp.XP))
	}

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "XP Leaderboard",
			Description: sb.String(),
			Color:       config.LevelUpColor,
		}},
	})
}
