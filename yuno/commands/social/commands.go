package social

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	XP,
	EightBall,
}
