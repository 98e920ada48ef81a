package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Guild holds the per-guild settings owned by the bot.
type Guild struct {
	bun.BaseModel `bun:"table:guilds,alias:g"`

	ID        int64     `bun:"id,pk,autoincrement"`
	GuildID   string    `bun:"guild_id,notnull,unique"`
	Prefix    string    `bun:"prefix"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
