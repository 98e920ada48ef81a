package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/uptrace/bun"
)

type CleanRepository interface {
	Get(ctx context.Context, guildID, channelName string) (*models.CleanConfig, error)
	Set(ctx context.Context, cfg *models.CleanConfig) error
	Delete(ctx context.Context, guildID, channelName string) error
	GetAll(ctx context.Context) ([]*models.CleanConfig, error)
	GetByGuild(ctx context.Context, guildID string) ([]*models.CleanConfig, error)
}

type cleanRepository struct {
	db *bun.DB
}

func NewCleanRepository(db *bun.DB) CleanRepository {
	return &cleanRepository{db: db}
}

func (r *cleanRepository) Get(ctx context.Context, guildID, channelName string) (*models.CleanConfig, error) {
	cfg := new(models.CleanConfig)
	err := r.db.NewSelect().
		Model(cfg).
		Where("guild_id = ?", guildID).
		Where("channel_name = ?", models.NormalizeChannelName(channelName)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Set upserts a clean config. A zero RemainingTime starts a fresh cycle.
func (r *cleanRepository) Set(ctx context.Context, cfg *models.CleanConfig) error {
	cfg.ChannelName = models.NormalizeChannelName(cfg.ChannelName)
	if cfg.RemainingTime <= 0 {
		cfg.RemainingTime = cfg.CycleMinutes()
	}
	cfg.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(cfg).
		On("CONFLICT (guild_id, channel_name) DO UPDATE").
		Set("time_between_cleans = EXCLUDED.time_between_cleans").
		Set("warning_time = EXCLUDED.warning_time").
		Set("remaining_time = EXCLUDED.remaining_time").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// Delete returns sql.ErrNoRows when no config matched.
func (r *cleanRepository) Delete(ctx context.Context, guildID, channelName string) error {
	res, err := r.db.NewDelete().
		Model((*models.CleanConfig)(nil)).
		Where("guild_id = ?", guildID).
		Where("channel_name = ?", models.NormalizeChannelName(channelName)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *cleanRepository) GetAll(ctx context.Context) ([]*models.CleanConfig, error) {
	var cfgs []*models.CleanConfig
	err := r.db.NewSelect().
		Model(&cfgs).
		Scan(ctx)
	return cfgs, err
}

func (r *cleanRepository) GetByGuild(ctx context.Context, guildID string) ([]*models.CleanConfig, error) {
	var cfgs []*models.CleanConfig
	err := r.db.NewSelect().
		Model(&cfgs).
		Where("guild_id = ?", guildID).
		Order("channel_name ASC").
		Scan(ctx)
	return cfgs, err
}
