// Package warns implements the warn ledger: per-user warn history keyed by
// guild, with an injectable storage backend and the auto-escalation policy.
package warns

import (
	"sync"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/google/uuid"
)

// Store is the storage port for the warn ledger. Record appends a warn and
// returns the new total for that user in one atomic operation, so callers can
// decide escalation without re-reading the ledger.
type Store interface {
	Record(guildID, userID, reason, moderatorTag string) (count int, warn models.Warn, err error)
	List(guildID, userID string) ([]models.Warn, error)
	Count(guildID, userID string) (int, error)
}

// newWarn builds a warn record with a fresh ID and the current timestamp
func newWarn(reason, moderatorTag string) models.Warn {
	return models.Warn{
		ID:        uuid.NewString(),
		Reason:    reason,
		Moderator: moderatorTag,
		Timestamp: time.Now().Unix(),
	}
}

// MemoryStore keeps warn history in process memory. State is lost on restart;
// it is the fallback backend when the database is unreachable.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]models.Warn
}

// NewMemoryStore creates an empty in-memory warn store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]models.Warn),
	}
}

func memoryKey(guildID, userID string) string {
	return guildID + "/" + userID
}

// Record appends a warn and returns the new total for the user
func (s *MemoryStore) Record(guildID, userID, reason, moderatorTag string) (int, models.Warn, error) {
	warn := newWarn(reason, moderatorTag)

	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryKey(guildID, userID)
	s.entries[key] = append(s.entries[key], warn)
	return len(s.entries[key]), warn, nil
}

// List returns the user's warns in insertion order. Users without warns have
// no entry, so the result is empty rather than nil-vs-present ambiguity.
func (s *MemoryStore) List(guildID, userID string) ([]models.Warn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.entries[memoryKey(guildID, userID)]
	out := make([]models.Warn, len(stored))
	copy(out, stored)
	return out, nil
}

// Count returns the number of warns recorded for the user
func (s *MemoryStore) Count(guildID, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries[memoryKey(guildID, userID)]), nil
}
