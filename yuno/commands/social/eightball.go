package social

import (
	"fmt"
	"math/rand"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var eightBallAnswers = []string{
	"It is certain.",
	"Without a doubt.",
	"Yes, definitely.",
	"Most likely.",
	"Outlook good.",
	"Signs point to yes.",
	"Reply hazy, try again.",
	"Ask again later.",
	"Better not tell you now.",
	"Cannot predict now.",
	"Don't count on it.",
	"My reply is no.",
	"My sources say no.",
	"Outlook not so good.",
	"Very doubtful.",
}

var EightBall = discord.SlashCommandCreate{
	Name:        "8ball",
	Description: "Ask the magic 8-ball a question",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "question",
			Description: "Your question",
			Required:    true,
		},
	},
}

func EightBallHandler(b *yuno.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		question := e.SlashCommandInteractionData().String("question")
		answer := eightBallAnswers[rand.Intn(len(eightBallAnswers))]

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "Magic 8-Ball",
				Description: fmt.Sprintf("**Q:** %s\n**A:** %s", question, answer),
				Color:       config.InfoColor,
			}},
		})
	}
}
