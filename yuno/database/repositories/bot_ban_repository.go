package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blubskye/yuno-go/yuno/database/models"
	lru "github.com/hashicorp/golang-lru"
	"github.com/uptrace/bun"
)

type BotBanRepository interface {
	Add(ctx context.Context, ban *models.BotBan) error
	Remove(ctx context.Context, userID string) error
	IsBanned(ctx context.Context, userID string) (bool, error)
	List(ctx context.Context, limit int) ([]*models.BotBan, error)
}

// botBanRepository answers IsBanned from an LRU cache so the message hot path
// does not hit the database for every event.
type botBanRepository struct {
	db    *bun.DB
	cache *lru.Cache // userID -> bool
}

func NewBotBanRepository(db *bun.DB, cacheSize int) (BotBanRepository, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot-ban cache: %w", err)
	}
	return &botBanRepository{db: db, cache: cache}, nil
}

func (r *botBanRepository) Add(ctx context.Context, ban *models.BotBan) error {
	if ban.BannedAt.IsZero() {
		ban.BannedAt = time.Now()
	}
	_, err := r.db.NewInsert().
		Model(ban).
		On("CONFLICT (user_id) DO UPDATE").
		Set("banned_by = EXCLUDED.banned_by").
		Set("reason = EXCLUDED.reason").
		Set("banned_at = EXCLUDED.banned_at").
		Exec(ctx)
	if err != nil {
		return err
	}
	r.cache.Add(ban.UserID, true)
	return nil
}

func (r *botBanRepository) Remove(ctx context.Context, userID string) error {
	res, err := r.db.NewDelete().
		Model((*models.BotBan)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return sql.ErrNoRows
	}
	r.cache.Add(userID, false)
	return nil
}

func (r *botBanRepository) IsBanned(ctx context.Context, userID string) (bool, error) {
	if banned, ok := r.cache.Get(userID); ok {
		return banned.(bool), nil
	}

	ban := new(models.BotBan)
	err := r.db.NewSelect().
		Model(ban).
		Where("user_id = ?", userID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.cache.Add(userID, false)
			return false, nil
		}
		return false, err
	}
	r.cache.Add(userID, true)
	return true, nil
}

func (r *botBanRepository) List(ctx context.Context, limit int) ([]*models.BotBan, error) {
	var bans []*models.BotBan
	err := r.db.NewSelect().
		Model(&bans).
		Order("banned_at DESC").
		Limit(limit).
		Scan(ctx)
	return bans, err
}
