package yuno

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blubskye/yuno-go/yuno/database"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log        LogConfig         `toml:"log"`
	Bot        BotConfig         `toml:"bot"`
	DB         database.DBConfig `toml:"db"`
	Moderation ModerationConfig  `toml:"moderation"`
	Leveling   LevelingConfig    `toml:"leveling"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	// Master receives forwarded inbox notifications and owns the terminal.
	MasterID snowflake.ID `toml:"master_id"`
	// DMAckMessage is the reply sent for inbound DMs. Empty picks the default.
	DMAckMessage string `toml:"dm_ack_message"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type ModerationConfig struct {
	// MaxWarnings is the warning count that triggers an automatic ban.
	MaxWarnings int `toml:"max_warnings"`
}

type LevelingConfig struct {
	// FlushSeconds is how often batched XP is written to the database.
	FlushSeconds int `toml:"flush_seconds"`
}
