package system

import (
	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Source = discord.SlashCommandCreate{
	Name:        "source",
	Description: "Where Yuno's code lives",
}

func SourceHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "Source",
				Description: "https://github.com/blubskye/yuno-go",
				Color:       config.InfoColor,
			}},
		})
	}
}
