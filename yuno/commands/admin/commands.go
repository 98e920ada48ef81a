package admin

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Ban,
	Kick,
	Unban,
	Timeout,
	Clean,
	ModStats,
	ScanBans,
	AutoClean,
}
