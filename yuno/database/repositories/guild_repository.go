package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/uptrace/bun"
)

type GuildRepository interface {
	GetPrefix(ctx context.Context, guildID string) (string, error)
	SetPrefix(ctx context.Context, guildID string, prefix string) error
}

type guildRepository struct {
	db *bun.DB
}

func NewGuildRepository(db *bun.DB) GuildRepository {
	return &guildRepository{db: db}
}

// GetPrefix returns the guild's custom prefix, or "" when the guild has none.
func (r *guildRepository) GetPrefix(ctx context.Context, guildID string) (string, error) {
	guild := new(models.Guild)
	err := r.db.NewSelect().
		Model(guild).
		Where("guild_id = ?", guildID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return guild.Prefix, nil
}

func (r *guildRepository) SetPrefix(ctx context.Context, guildID string, prefix string) error {
	guild := &models.Guild{
		GuildID:   guildID,
		Prefix:    prefix,
		UpdatedAt: time.Now(),
	}
	_, err := r.db.NewInsert().
		Model(guild).
		On("CONFLICT (guild_id) DO UPDATE").
		Set("prefix = EXCLUDED.prefix").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}
