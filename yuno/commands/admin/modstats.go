package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/json"
	"github.com/disgoorg/paginator"
)

const moderatorsPerPage = 5

var ModStats = discord.SlashCommandCreate{
	Name:        "modstats",
	Description: "Show moderation statistics for this server",
	DefaultMemberPermissions: json.NewNullablePtr(discord.PermissionManageGuild),
}

func ModStatsHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if e.GuildID() == nil {
			return utils.EH.CreateErrorEmbed(e, "This command can only be used in a server.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.StatsQueryTimeout)
		defer cancel()

		stats, err := b.ModActionRepo.Stats(ctx, e.GuildID().String())
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load moderation statistics.")
		}
		if stats.Total == 0 {
			return utils.EH.CreateInfoEmbed(e, "No moderation actions recorded yet.")
		}

		totalPages := (len(stats.TopModerators) + moderatorsPerPage - 1) / moderatorsPerPage
		if totalPages == 0 {
			totalPages = 1
		}

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				embed.SetTitle("Moderation Statistics").
					SetColor(config.InfoColor).
					AddField("Total Actions", fmt.Sprintf("%d", stats.Total), true).
					AddField("Breakdown", formatActionCounts(stats.ActionCounts), true)

				startIdx := page * moderatorsPerPage
				endIdx := min(startIdx+moderatorsPerPage, len(stats.TopModerators))
				if startIdx < endIdx {
					var sb strings.Builder
					for i, mod := range stats.TopModerators[startIdx:endIdx] {
						sb.WriteString(fmt.Sprintf("%d. <@%s> — %d actions\n",
							startIdx+i+1, mod.ModeratorID, mod.Count))
					}
					embed.AddField("Top Moderators", sb.String(), false)
				}
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func formatActionCounts(counts map[string]int64) string {
	order := []string{models.ActionBan, models.ActionUnban, models.ActionKick, models.ActionTimeout}
	var sb strings.Builder
	for _, action := range order {
		if n, ok := counts[action]; ok && n > 0 {
			sb.WriteString(fmt.Sprintf("%s: %d\n", action, n))
		}
	}
	if sb.Len() == 0 {
		return "none"
	}
	return sb.String()
}
