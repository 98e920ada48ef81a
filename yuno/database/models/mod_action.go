package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Moderation action kinds recorded in the audit log.
const (
	ActionBan     = "ban"
	ActionUnban   = "unban"
	ActionKick    = "kick"
	ActionTimeout = "timeout"
)

// ModAction is one append-only audit record. ModeratorID is the acting
// identity; for automated consequences it is the bot's own user ID.
type ModAction struct {
	bun.BaseModel `bun:"table:mod_actions,alias:ma"`

	ID          int64     `bun:"id,pk,autoincrement"`
	GuildID     string    `bun:"guild_id,notnull"`
	ModeratorID string    `bun:"moderator_id,notnull"`
	TargetID    string    `bun:"target_id,notnull"`
	Action      string    `bun:"action,notnull"`
	Reason      string    `bun:"reason"`
	Timestamp   time.Time `bun:"timestamp,notnull"`
}

// ModeratorCount is one row of the per-moderator aggregate.
type ModeratorCount struct {
	ModeratorID string `bun:"moderator_id"`
	Count       int64  `bun:"count"`
}

// ModStats aggregates the audit log for one guild.
type ModStats struct {
	Total         int64
	ActionCounts  map[string]int64
	TopModerators []ModeratorCount
}
