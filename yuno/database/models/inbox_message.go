package models

import (
	"time"

	"github.com/uptrace/bun"
)

// InboxMessage is a direct message captured for asynchronous review from the
// terminal console. DMs are never moderated; they land here instead.
type InboxMessage struct {
	bun.BaseModel `bun:"table:inbox_messages,alias:im"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     string    `bun:"user_id,notnull"`
	Username   string    `bun:"username,notnull"`
	Content    string    `bun:"content,notnull"`
	ReadStatus bool      `bun:"read_status,notnull,default:false"`
	ReceivedAt time.Time `bun:"received_at,notnull"`
}
