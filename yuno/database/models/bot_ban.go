package models

import (
	"time"

	"github.com/uptrace/bun"
)

// BotBan excludes a user from interacting with the bot entirely. Messages from
// bot-banned users are dropped before they reach moderation or leveling.
type BotBan struct {
	bun.BaseModel `bun:"table:bot_bans,alias:bb"`

	ID       int64     `bun:"id,pk,autoincrement"`
	UserID   string    `bun:"user_id,notnull,unique"`
	BannedBy string    `bun:"banned_by,notnull"`
	Reason   string    `bun:"reason"`
	BannedAt time.Time `bun:"banned_at,notnull"`
}
