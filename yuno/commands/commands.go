package commands

import (
	"github.com/blubskye/yuno-go/yuno/commands/admin"
	"github.com/blubskye/yuno-go/yuno/commands/social"
	"github.com/blubskye/yuno-go/yuno/commands/system"
	"github.com/disgoorg/disgo/discord"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands, admin.Commands...)
	Commands = append(Commands, social.Commands...)
	Commands = append(Commands, system.Commands...)
}
