package moderation

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// WarningLedger counts spam-filter warnings per user for the lifetime of the
// process. Counts are not persisted; a restart grants everyone a clean slate.
type WarningLedger struct {
	mu       sync.Mutex
	warnings map[snowflake.ID]int
}

func NewWarningLedger() *WarningLedger {
	return &WarningLedger{
		warnings: make(map[snowflake.ID]int),
	}
}

// Escalate increments the user's warning count and reports whether the count
// reached maxWarnings. Reaching the ceiling removes the entry instead of
// storing it, so stored counts stay in [1, maxWarnings) and the ban decision
// fires exactly once even under concurrent violations: the increment, the
// threshold check and the removal are a single guarded step.
func (l *WarningLedger) Escalate(userID snowflake.ID, maxWarnings int) (count int, banned bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.warnings[userID]++
	count = l.warnings[userID]
	if count >= maxWarnings {
		delete(l.warnings, userID)
		return count, true
	}
	return count, false
}

// Count returns the user's current warning count, zero when absent.
func (l *WarningLedger) Count(userID snowflake.ID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warnings[userID]
}
