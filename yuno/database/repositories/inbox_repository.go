package repositories

import (
	"context"
	"time"

	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/uptrace/bun"
)

type InboxRepository interface {
	Save(ctx context.Context, msg *models.InboxMessage) error
	List(ctx context.Context, limit int) ([]*models.InboxMessage, error)
	MarkRead(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context) (int, error)
}

type inboxRepository struct {
	db *bun.DB
}

func NewInboxRepository(db *bun.DB) InboxRepository {
	return &inboxRepository{db: db}
}

func (r *inboxRepository) Save(ctx context.Context, msg *models.InboxMessage) error {
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now()
	}
	_, err := r.db.NewInsert().Model(msg).Exec(ctx)
	return err
}

func (r *inboxRepository) List(ctx context.Context, limit int) ([]*models.InboxMessage, error) {
	var msgs []*models.InboxMessage
	err := r.db.NewSelect().
		Model(&msgs).
		Order("received_at DESC").
		Limit(limit).
		Scan(ctx)
	return msgs, err
}

func (r *inboxRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.db.NewUpdate().
		Model((*models.InboxMessage)(nil)).
		Set("read_status = true").
		Where("id = ?", id).
		Exec(ctx)
	return err
}

func (r *inboxRepository) UnreadCount(ctx context.Context) (int, error) {
	return r.db.NewSelect().
		Model((*models.InboxMessage)(nil)).
		Where("read_status = false").
		Count(ctx)
}
