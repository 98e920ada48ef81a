package leveling

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/models"
	"github.com/disgoorg/snowflake/v2"
)

type fakeExperienceRepo struct {
	mu      sync.Mutex
	rows    map[string]*models.Experience
	failFor map[string]bool
	upserts int
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{
		rows:    make(map[string]*models.Experience),
		failFor: make(map[string]bool),
	}
}

func (r *fakeExperienceRepo) key(guildID, userID string) string {
	return guildID + "/" + userID
}

func (r *fakeExperienceRepo) Get(_ context.Context, guildID, userID string) (*models.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if exp, ok := r.rows[r.key(guildID, userID)]; ok {
		cp := *exp
		return &cp, nil
	}
	return &models.Experience{GuildID: guildID, UserID: userID}, nil
}

func (r *fakeExperienceRepo) Upsert(_ context.Context, exp *models.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFor[exp.UserID] {
		return errors.New("write refused")
	}
	cp := *exp
	r.rows[r.key(exp.GuildID, exp.UserID)] = &cp
	r.upserts++
	return nil
}

func (r *fakeExperienceRepo) GetTop(_ context.Context, _ string, _ int) ([]*models.Experience, error) {
	return nil, nil
}

func (r *fakeExperienceRepo) get(guildID, userID string) *models.Experience {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[r.key(guildID, userID)]
}

type fakeNotifier struct {
	mu       sync.Mutex
	levels   []int64
	channels []snowflake.ID
}

func (n *fakeNotifier) NotifyLevelUp(_ context.Context, _, channelID, _ snowflake.ID, level int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.levels = append(n.levels, level)
	n.channels = append(n.channels, channelID)
	return nil
}

func TestAggregator_RecordMergesCredits(t *testing.T) {
	a := NewAggregator(newFakeExperienceRepo(), nil, 0)

	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.Record(snowflake.ID(1), snowflake.ID(9), snowflake.ID(3))

	if got := a.PendingCount(); got != 2 {
		t.Errorf("PendingCount() = %d, want 2", got)
	}

	a.mu.Lock()
	p := a.pending[xpKey{guildID: snowflake.ID(1), userID: snowflake.ID(2)}]
	a.mu.Unlock()
	if p == nil {
		t.Fatal("no pending entry for merged user")
	}
	if p.amount < 2*config.XPMinPerMessage || p.amount > 2*config.XPMaxPerMessage {
		t.Errorf("merged amount = %d, want within [%d, %d]",
			p.amount, 2*config.XPMinPerMessage, 2*config.XPMaxPerMessage)
	}
}

func TestAggregator_MergeKeepsLastChannelAndFirstSeen(t *testing.T) {
	a := NewAggregator(newFakeExperienceRepo(), nil, 0)
	key := xpKey{guildID: snowflake.ID(1), userID: snowflake.ID(2)}

	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.mu.Lock()
	firstSeen := a.pending[key].firstSeen
	a.mu.Unlock()
	if firstSeen.IsZero() {
		t.Fatal("firstSeen not set on first credit")
	}

	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(7))

	a.mu.Lock()
	p := a.pending[key]
	a.mu.Unlock()
	if p.channelID != snowflake.ID(7) {
		t.Errorf("channelID after merge = %d, want 7", p.channelID)
	}
	if !p.firstSeen.Equal(firstSeen) {
		t.Errorf("firstSeen after merge = %v, want %v", p.firstSeen, firstSeen)
	}
}

func TestAggregator_RollXPStaysInRange(t *testing.T) {
	a := NewAggregator(newFakeExperienceRepo(), nil, 0)
	for i := 0; i < 1000; i++ {
		got := a.rollXP()
		if got < config.XPMinPerMessage || got > config.XPMaxPerMessage {
			t.Fatalf("rollXP() = %d, want within [%d, %d]",
				got, config.XPMinPerMessage, config.XPMaxPerMessage)
		}
	}
}

func TestAggregator_FlushCommitsAndClears(t *testing.T) {
	repo := newFakeExperienceRepo()
	a := NewAggregator(repo, nil, 0)

	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.Flush(context.Background())

	if got := a.PendingCount(); got != 0 {
		t.Errorf("PendingCount() after flush = %d, want 0", got)
	}
	exp := repo.get("1", "2")
	if exp == nil {
		t.Fatal("no row committed")
	}
	if exp.XP < config.XPMinPerMessage || exp.XP > config.XPMaxPerMessage {
		t.Errorf("committed XP = %d, want one message's worth", exp.XP)
	}
}

func TestAggregator_FlushEmptyIsNoOp(t *testing.T) {
	repo := newFakeExperienceRepo()
	a := NewAggregator(repo, nil, 0)

	a.Flush(context.Background())

	if repo.upserts != 0 {
		t.Errorf("upserts = %d, want 0", repo.upserts)
	}
}

func TestAggregator_FlushIsolatesFailures(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.failFor["2"] = true
	a := NewAggregator(repo, nil, 0)

	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.Record(snowflake.ID(1), snowflake.ID(4), snowflake.ID(3))
	a.Flush(context.Background())

	if repo.get("1", "2") != nil {
		t.Error("failing user's row was committed")
	}
	if repo.get("1", "4") == nil {
		t.Error("healthy user's row was not committed")
	}
}

func TestAggregator_FlushNotifiesLevelUp(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.rows["1/2"] = &models.Experience{GuildID: "1", UserID: "2", XP: 95, Level: 0}
	notifier := &fakeNotifier{}
	a := NewAggregator(repo, notifier, 0)

	// Any roll (15 to 25) pushes 95 XP past the level 1 threshold.
	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.Flush(context.Background())

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.levels) != 1 || notifier.levels[0] != 1 {
		t.Errorf("notified levels = %v, want [1]", notifier.levels)
	}
}

func TestAggregator_LevelUpAnnouncesInLastChannel(t *testing.T) {
	repo := newFakeExperienceRepo()
	repo.rows["1/2"] = &models.Experience{GuildID: "1", UserID: "2", XP: 95, Level: 0}
	notifier := &fakeNotifier{}
	a := NewAggregator(repo, notifier, 0)

	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(7))
	a.Flush(context.Background())

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.channels) != 1 || notifier.channels[0] != snowflake.ID(7) {
		t.Errorf("notified channels = %v, want [7]", notifier.channels)
	}
}

func TestAggregator_FlushDoesNotNotifyWithoutLevelUp(t *testing.T) {
	repo := newFakeExperienceRepo()
	notifier := &fakeNotifier{}
	a := NewAggregator(repo, notifier, 0)

	// One message from zero XP (at most 25) cannot reach level 1.
	a.Record(snowflake.ID(1), snowflake.ID(2), snowflake.ID(3))
	a.Flush(context.Background())

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.levels) != 0 {
		t.Errorf("notified levels = %v, want none", notifier.levels)
	}
}
