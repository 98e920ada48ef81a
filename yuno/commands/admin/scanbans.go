package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/json"
	"github.com/disgoorg/paginator"
)

const bansPerPage = 10

var ScanBans = discord.SlashCommandCreate{
	Name:        "scanbans",
	Description: "List the server's ban entries",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionBanMembers),
}

func ScanBansHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.GatewayCallTimeout)
		defer cancel()

		bans, err := b.Client.Rest().GetBans(*e.GuildID(), 0, 0, 1000, rest.WithCtx(ctx))
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Failed to fetch bans: %s", err))
		}
		if len(bans) == 0 {
			return utils.EH.CreateInfoEmbed(e, "This server has no bans.")
		}

		totalPages := (len(bans) + bansPerPage - 1) / bansPerPage

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				startIdx := page * bansPerPage
				endIdx := min(startIdx+bansPerPage, len(bans))

				var sb strings.Builder
				for _, ban := range bans[startIdx:endIdx] {
					reason := "no reason recorded"
					if ban.Reason != nil && *ban.Reason != "" {
						reason = *ban.Reason
					}
					sb.WriteString(fmt.Sprintf("**%s** (%s)\n%s\n\n",
						ban.User.Username, ban.User.ID, utils.Truncate(reason, 100)))
				}

				embed.SetTitle(fmt.Sprintf("Ban List (%d total)", len(bans))).
					SetDescription(sb.String()).
					SetColor(config.BanColor).
					SetFooter(fmt.Sprintf("Page %d/%d", page+1, totalPages), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
