package leveling

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/blubskye/yuno-go/yuno/config"
	"github.com/blubskye/yuno-go/yuno/database/repositories"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/semaphore"
)

type xpKey struct {
	guildID snowflake.ID
	userID  snowflake.ID
}

type pendingXP struct {
	amount int64
	// channelID is where the user last spoke, used for level-up announcements.
	channelID snowflake.ID
	// firstSeen is when the batch started accruing; merges never touch it.
	firstSeen time.Time
}

// Notifier announces level-ups. Implementations must tolerate failure; the
// aggregator treats announcement errors as advisory.
type Notifier interface {
	NotifyLevelUp(ctx context.Context, guildID, channelID, userID snowflake.ID, level int64) error
}

// Aggregator batches per-message XP credits in memory and flushes them to the
// store on an interval, so chat bursts cost one write per user instead of one
// per message.
type Aggregator struct {
	repo     repositories.ExperienceRepository
	notifier Notifier
	interval time.Duration

	mu      sync.Mutex
	pending map[xpKey]*pendingXP

	randMu sync.Mutex
	rng    *rand.Rand
}

func NewAggregator(repo repositories.ExperienceRepository, notifier Notifier, interval time.Duration) *Aggregator {
	if interval <= 0 {
		interval = config.XPFlushInterval
	}
	return &Aggregator{
		repo:     repo,
		notifier: notifier,
		interval: interval,
		pending:  make(map[xpKey]*pendingXP),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Record credits a random amount of XP for one message. Credits merge in
// memory until the next flush.
func (a *Aggregator) Record(guildID, userID, channelID snowflake.ID) {
	amount := a.rollXP()

	key := xpKey{guildID: guildID, userID: userID}

	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pending[key]; ok {
		p.amount += amount
		p.channelID = channelID
		return
	}
	a.pending[key] = &pendingXP{amount: amount, channelID: channelID, firstSeen: time.Now()}
}

func (a *Aggregator) rollXP() int64 {
	a.randMu.Lock()
	defer a.randMu.Unlock()
	return config.XPMinPerMessage + a.rng.Int63n(config.XPMaxPerMessage-config.XPMinPerMessage+1)
}

// PendingCount reports how many users have uncommitted XP.
func (a *Aggregator) PendingCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Run flushes on the configured interval until the context is cancelled,
// then performs one final flush for the credits still in memory.
func (a *Aggregator) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	slog.Info("XP aggregator started",
		slog.Duration("interval", a.interval))

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), config.DefaultQueryTimeout)
			a.Flush(flushCtx)
			cancel()
			slog.Info("XP aggregator stopped")
			return
		case <-ticker.C:
			a.Flush(ctx)
		}
	}
}

// Flush commits every pending credit. The pending map is swapped out under
// the lock so new messages keep accruing while commits run. Commits are
// bounded in concurrency and one failed user never blocks the rest; failed
// credits are dropped with a log rather than retried.
func (a *Aggregator) Flush(ctx context.Context) {
	a.mu.Lock()
	batch := a.pending
	a.pending = make(map[xpKey]*pendingXP)
	a.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	start := time.Now()
	oldest := start
	for _, p := range batch {
		if p.firstSeen.Before(oldest) {
			oldest = p.firstSeen
		}
	}

	sem := semaphore.NewWeighted(config.XPFlushMaxConcurrent)
	var wg sync.WaitGroup
	var committed, failed int64

	for key, p := range batch {
		if err := sem.Acquire(ctx, 1); err != nil {
			slog.Warn("XP flush interrupted",
				slog.Any("error", err))
			break
		}
		wg.Add(1)
		go func(key xpKey, p *pendingXP) {
			defer wg.Done()
			defer sem.Release(1)
			if err := a.commit(ctx, key, p); err != nil {
				atomic.AddInt64(&failed, 1)
				slog.Error("Failed to commit XP",
					slog.String("type", "db"),
					slog.String("guild_id", key.guildID.String()),
					slog.String("user_id", key.userID.String()),
					slog.Any("error", err))
				return
			}
			atomic.AddInt64(&committed, 1)
		}(key, p)
	}
	wg.Wait()

	slog.Debug("XP flush complete",
		slog.String("type", "db"),
		slog.Int64("committed", committed),
		slog.Int64("failed", failed),
		slog.Duration("oldest_credit", start.Sub(oldest)),
		slog.Duration("took", time.Since(start)))
}

func (a *Aggregator) commit(ctx context.Context, key xpKey, p *pendingXP) error {
	exp, err := a.repo.Get(ctx, key.guildID.String(), key.userID.String())
	if err != nil {
		return fmt.Errorf("failed to load experience: %w", err)
	}

	oldLevel := exp.Level
	exp.XP += p.amount
	exp.Level = Level(exp.XP)

	if err := a.repo.Upsert(ctx, exp); err != nil {
		return fmt.Errorf("failed to save experience: %w", err)
	}

	if exp.Level > oldLevel && a.notifier != nil {
		if err := a.notifier.NotifyLevelUp(ctx, key.guildID, p.channelID, key.userID, exp.Level); err != nil {
			slog.Warn("Failed to announce level-up",
				slog.String("user_id", key.userID.String()),
				slog.Int64("level", exp.Level),
				slog.Any("error", err))
		}
	}
	return nil
}
