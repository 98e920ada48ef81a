package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/uptrace/bun"
)

type ExperienceRepository interface {
	Get(ctx context.Context, guildID, userID string) (*models.Experience, error)
	Upsert(ctx context.Context, exp *models.Experience) error
	GetTop(ctx context.Context, guildID string, limit int) ([]*models.Experience, error)
}

type experienceRepository struct {
	db *bun.DB
}

func NewExperienceRepository(db *bun.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

// Get returns the stored record for (guild, user), or a zero-valued record
// when the pair has never earned XP.
func (r *experienceRepository) Get(ctx context.Context, guildID, userID string) (*models.Experience, error) {
	exp := new(models.Experience)
	err := r.db.NewSelect().
		Model(exp).
		Where("guild_id = ?", guildID).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Experience{GuildID: guildID, UserID: userID}, nil
		}
		slog.Error("Database error when getting experience",
			slog.String("type", "db"),
			slog.String("operation", "Get"),
			slog.String("guild_id", guildID),
			slog.String("user_id", userID),
			slog.Any("error", err))
		return nil, err
	}
	return exp, nil
}

func (r *experienceRepository) Upsert(ctx context.Context, exp *models.Experience) error {
	exp.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(exp).
		On("CONFLICT (guild_id, user_id) DO UPDATE").
		Set("xp = EXCLUDED.xp").
		Set("level = EXCLUDED.level").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (r *experienceRepository) GetTop(ctx context.Context, guildID string, limit int) ([]*models.Experience, error) {
	var exps []*models.Experience
	err := r.db.NewSelect().
		Model(&exps).
		Where("guild_id = ?", guildID).
		OrderExpr("xp DESC").
		Limit(limit).
		Scan(ctx)
	return exps, err
}
