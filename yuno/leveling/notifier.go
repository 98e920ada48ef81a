package leveling

import (
	"context"
	"fmt"

	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

type discordNotifier struct {
	client bot.Client
}

// NewDiscordNotifier announces level-ups in the channel the user last spoke in.
func NewDiscordNotifier(client bot.Client) Notifier {
	return &discordNotifier{client: client}
}

func (n *discordNotifier) NotifyLevelUp(ctx context.Context, guildID, channelID, userID snowflake.ID, level int64) error {
	embed := discord.NewEmbedBuilder().
		SetTitle("Level up!").
		SetDescriptionf("Congratulations <@%d>, you reached level %d!", userID, level).
		SetColor(config.LevelUpColor).
		Build()

	_, err := n.client.Rest().CreateMessage(channelID,
		discord.NewMessageCreateBuilder().
			SetEmbeds(embed).
			SetAllowedMentions(&discord.AllowedMentions{Users: []snowflake.ID{userID}}).
			Build(),
		rest.WithCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to send level-up message: %w", err)
	}
	return nil
}
