package session

import (
	"sync"

	"github.com/mixelka/tempmailbot/pkg/models"
)

// historyLimit caps how many previously issued addresses are kept per user.
const historyLimit = 10

// Store maps a chat user to their currently active mailbox address.
//
// State is process-wide and in-memory only: sessions live until the process
// exits, and there is no eviction. Unbounded growth over very long uptimes is
// a known limitation.
type Store struct {
	mu      sync.RWMutex
	active  map[int64]models.Address
	history map[int64][]models.Address
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		active:  make(map[int64]models.Address),
		history: make(map[int64][]models.Address),
	}
}

// Set unconditionally replaces the user's active address. The previous
// address (if any) stays retrievable only through History.
func (s *Store) Set(userID int64, addr models.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active[userID] = addr

	h := append([]models.Address{addr}, s.history[userID]...)
	if len(h) > historyLimit {
		h = h[:historyLimit]
	}
	s.history[userID] = h
}

// Get returns the user's active address. The second value is false when the
// user has never created a mailbox.
func (s *Store) Get(userID int64) (models.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addr, ok := s.active[userID]
	return addr, ok
}

// Domain returns the domain of the user's active address, if any.
func (s *Store) Domain(userID int64) (string, bool) {
	addr, ok := s.Get(userID)
	if !ok {
		return "", false
	}
	return addr.Domain, true
}

// History returns the user's previously issued addresses, newest first.
func (s *Store) History(userID int64) []models.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := s.history[userID]
	out := make([]models.Address, len(h))
	copy(out, h)
	return out
}
