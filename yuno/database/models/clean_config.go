package models

import (
	"strings"
	"time"

	"github.com/uptrace/bun"
)

// CleanConfig is one scheduled channel clean. Channels are keyed by lowercased
// name within their guild so an admin can recreate a channel without losing
// the schedule. RemainingTime counts down in minutes; the scheduler decrements
// it by one per tick.
type CleanConfig struct {
	bun.BaseModel `bun:"table:channel_cleans,alias:cc"`

	ID                int64     `bun:"id,pk,autoincrement"`
	GuildID           string    `bun:"guild_id,notnull"`
	ChannelName       string    `bun:"channel_name,notnull"`
	TimeBetweenCleans int64     `bun:"time_between_cleans,notnull"` // hours
	WarningTime       int64     `bun:"warning_time,notnull"`        // minutes before the clean
	RemainingTime     int64     `bun:"remaining_time,notnull"`      // minutes until the clean
	UpdatedAt         time.Time `bun:"updated_at,notnull"`
}

// CycleMinutes returns the full countdown length for one clean cycle.
func (c *CleanConfig) CycleMinutes() int64 {
	return c.TimeBetweenCleans * 60
}

// NormalizeChannelName lowercases a channel name for use as a config key.
func NormalizeChannelName(name string) string {
	return strings.ToLower(name)
}
