package terminal

import (
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/blubskye/yuno-go/yuno"
	"github.com/blubskye/yuno-go/yuno/database/models"
)

type fakeBotBanRepo struct {
	bans map[string]*models.BotBan
}

func (r *fakeBotBanRepo) Add(_ context.Context, ban *models.BotBan) error {
	r.bans[ban.UserID] = ban
	return nil
}

func (r *fakeBotBanRepo) Remove(_ context.Context, userID string) error {
	if _, ok := r.bans[userID]; !ok {
		return sql.ErrNoRows
	}
	delete(r.bans, userID)
	return nil
}

func (r *fakeBotBanRepo) IsBanned(_ context.Context, userID string) (bool, error) {
	_, ok := r.bans[userID]
	return ok, nil
}

func (r *fakeBotBanRepo) List(_ context.Context, _ int) ([]*models.BotBan, error) {
	var out []*models.BotBan
	for _, ban := range r.bans {
		out = append(out, ban)
	}
	return out, nil
}

type fakeInboxRepo struct {
	msgs   []*models.InboxMessage
	marked []int64
}

func (r *fakeInboxRepo) Save(_ context.Context, msg *models.InboxMessage) error {
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *fakeInboxRepo) List(_ context.Context, limit int) ([]*models.InboxMessage, error) {
	if limit > len(r.msgs) {
		limit = len(r.msgs)
	}
	return r.msgs[:limit], nil
}

func (r *fakeInboxRepo) MarkRead(_ context.Context, id int64) error {
	r.marked = append(r.marked, id)
	return nil
}

func (r *fakeInboxRepo) UnreadCount(_ context.Context) (int, error) {
	n := 0
	for _, msg := range r.msgs {
		if !msg.ReadStatus {
			n++
		}
	}
	return n, nil
}

func newTestTerminal(b *yuno.Bot) (*Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	term := New(b, func() {})
	term.out = out
	return term, out
}

func TestTerminal_SuggestsNearMisses(t *testing.T) {
	term, out := newTestTerminal(&yuno.Bot{})

	term.suggest("serverz")

	got := out.String()
	if !strings.Contains(got, "servers") {
		t.Errorf("suggest output %q does not mention servers", got)
	}
}

func TestTerminal_UnknownCommandWithoutMatch(t *testing.T) {
	term, out := newTestTerminal(&yuno.Bot{})

	term.suggest("zzzzzz")

	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("output %q does not flag the unknown command", out.String())
	}
}

func TestTerminal_BotBanAndUnban(t *testing.T) {
	repo := &fakeBotBanRepo{bans: make(map[string]*models.BotBan)}
	term, out := newTestTerminal(&yuno.Bot{BotBanRepo: repo})
	ctx := context.Background()

	term.botBan(ctx, []string{"123", "being", "rude"})
	if ban := repo.bans["123"]; ban == nil || ban.Reason != "being rude" {
		t.Fatalf("ban not recorded: %+v", repo.bans)
	}
	if ban := repo.bans["123"]; ban.BannedBy != "terminal" {
		t.Errorf("BannedBy = %q, want terminal", ban.BannedBy)
	}

	term.botUnban(ctx, []string{"123"})
	if _, ok := repo.bans["123"]; ok {
		t.Error("ban was not removed")
	}

	out.Reset()
	term.botUnban(ctx, []string{"123"})
	if !strings.Contains(out.String(), "not banned") {
		t.Errorf("output %q does not report a missing ban", out.String())
	}
}

func TestTerminal_BotBanUsage(t *testing.T) {
	repo := &fakeBotBanRepo{bans: make(map[string]*models.BotBan)}
	term, out := newTestTerminal(&yuno.Bot{BotBanRepo: repo})

	term.botBan(context.Background(), nil)

	if !strings.Contains(out.String(), "usage:") {
		t.Errorf("output %q does not show usage", out.String())
	}
	if len(repo.bans) != 0 {
		t.Error("ban recorded without a user id")
	}
}

func TestTerminal_InboxMarksRead(t *testing.T) {
	repo := &fakeInboxRepo{msgs: []*models.InboxMessage{
		{ID: 1, UserID: "10", Username: "alice", Content: "hi"},
		{ID: 2, UserID: "11", Username: "bob", Content: "hello", ReadStatus: true},
	}}
	term, out := newTestTerminal(&yuno.Bot{InboxRepo: repo})

	term.printInbox(context.Background(), nil)

	if !strings.Contains(out.String(), "alice") || !strings.Contains(out.String(), "bob") {
		t.Errorf("output %q is missing messages", out.String())
	}
	if len(repo.marked) != 1 || repo.marked[0] != 1 {
		t.Errorf("marked = %v, want [1]", repo.marked)
	}
}

func TestTerminal_InboxBadLimit(t *testing.T) {
	term, out := newTestTerminal(&yuno.Bot{InboxRepo: &fakeInboxRepo{}})

	term.printInbox(context.Background(), []string{"zero"})

	if !strings.Contains(out.String(), "usage:") {
		t.Errorf("output %q does not show usage", out.String())
	}
}
