package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Experience is the persisted XP record for one (guild, user) pair. Level is
// always derived from XP by the leveling calculator, never mutated on its own.
type Experience struct {
	bun.BaseModel `bun:"table:experiences,alias:e"`

	ID        int64     `bun:"id,pk,autoincrement"`
	GuildID   string    `bun:"guild_id,notnull"`
	UserID    string    `bun:"user_id,notnull"`
	XP        int64     `bun:"xp,notnull,default:0"`
	Level     int64     `bun:"level,notnull,default:0"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
