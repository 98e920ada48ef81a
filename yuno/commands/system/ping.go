package system

import (
	"fmt"
	"time"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Ping = discord.SlashCommandCreate{
	Name:        "ping",
	Description: "Check whether Yuno is alive",
}

func PingHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		latency := b.Client.Gateway().Latency()
		uptime := utils.FormatDuration(time.Since(b.StartedAt))

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "Pong!",
				Description: fmt.Sprintf("Gateway latency: %dms\nUptime: %s", latency.Milliseconds(), uptime),
				Color:       config.InfoColor,
			}},
		})
	}
}
