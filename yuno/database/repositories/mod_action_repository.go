package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/uptrace/bun"
)

type ModActionRepository interface {
	Add(ctx context.Context, action *models.ModAction) error
	Stats(ctx context.Context, guildID string) (*models.ModStats, error)
}

type modActionRepository struct {
	db *bun.DB
}

func NewModActionRepository(db *bun.DB) ModActionRepository {
	return &modActionRepository{db: db}
}

func (r *modActionRepository) Add(ctx context.Context, action *models.ModAction) error {
	if action.Timestamp.IsZero() {
		action.Timestamp = time.Now()
	}
	_, err := r.db.NewInsert().Model(action).Exec(ctx)
	if err != nil {
		slog.Error("Failed to append mod action",
			slog.String("type", "db"),
			slog.String("operation", "Add"),
			slog.String("guild_id", action.GuildID),
			slog.String("action", action.Action),
			slog.Any("error", err))
	}
	return err
}

func (r *modActionRepository) Stats(ctx context.Context, guildID string) (*models.ModStats, error) {
	stats := &models.ModStats{
		ActionCounts: make(map[string]int64),
	}

	total, err := r.db.NewSelect().
		Model((*models.ModAction)(nil)).
		Where("guild_id = ?", guildID).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.Total = int64(total)

	var actionCounts []struct {
		Action string `bun:"action"`
		Count  int64  `bun:"count"`
	}
	err = r.db.NewSelect().
		Model((*models.ModAction)(nil)).
		ColumnExpr("action").
		ColumnExpr("COUNT(*) AS count").
		Where("guild_id = ?", guildID).
		GroupExpr("action").
		Scan(ctx, &actionCounts)
	if err != nil {
		return nil, err
	}
	for _, row := range actionCounts {
		stats.ActionCounts[row.Action] = row.Count
	}

	err = r.db.NewSelect().
		Model((*models.ModAction)(nil)).
		ColumnExpr("moderator_id").
		ColumnExpr("COUNT(*) AS count").
		Where("guild_id = ?", guildID).
		GroupExpr("moderator_id").
		OrderExpr("count DESC").
		Limit(10).
		Scan(ctx, &stats.TopModerators)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
